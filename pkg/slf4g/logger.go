// Package slf4g — фасад логирования: код приложения пишет в стабильный интерфейс Logger,
// а конкретный бэкенд (console, zap, logrus, slog) выбирается при развёртывании —
// через переменную окружения SLF4G_BINDING или поле в ближайшем файле-манифесте.
// Если привязку найти или загрузить не удалось, используется no-op логгер.
package slf4g

import (
	"context"
	"runtime"
	"strings"
)

// Logger — контракт, который реализует каждый адаптер бэкенда.
// Сообщение — шаблон с плейсхолдерами {N}, args подставляются через Format.
type Logger interface {
	Trace(msg any, args ...any)
	Debug(msg any, args ...any)
	Info(msg any, args ...any)
	Warn(msg any, args ...any)
	Error(msg any, args ...any)

	IsTraceEnabled() bool
	IsDebugEnabled() bool
	IsInfoEnabled() bool
	IsWarnEnabled() bool
	IsErrorEnabled() bool

	// Name — имя реализации (например, "nop", "zap").
	Name() string
}

// LoggerFactory — выдаёт Logger по хэндлу вызывающего кода.
// Один и тот же хэндл всегда даёт один и тот же экземпляр.
type LoggerFactory interface {
	Get(handle string) Logger
}

// LoggerFactoryFunc — адаптер функции к LoggerFactory.
type LoggerFactoryFunc func(handle string) Logger

func (f LoggerFactoryFunc) Get(handle string) Logger { return f(handle) }

// ContextLogger — необязательная возможность: логгер, обогащённый метаданными из контекста.
type ContextLogger interface {
	Logger
	WithContext(ctx context.Context) Logger
}

// CallerSkipper — необязательная возможность логгеров, печатающих место вызова.
// Обёртка над таким логгером сдвигает его на число своих кадров стека.
type CallerSkipper interface {
	AddCallerSkip(skip int) Logger
}

// Syncer — необязательная возможность фабрик с буферизацией.
type Syncer interface {
	Sync() error
}

// FromContext — логгер с метаданными запроса, если бэкенд это умеет; иначе сам l.
func FromContext(ctx context.Context, l Logger) Logger {
	if cl, ok := l.(ContextLogger); ok && ctx != nil {
		return cl.WithContext(ctx)
	}
	return l
}

// Here — хэндл пакета, из которого вызвана функция.
func Here() string {
	return callerPackage(2)
}

func callerPackage(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	return packageOf(fn.Name())
}

// packageOf — "github.com/a/b.(*T).M" → "github.com/a/b".
func packageOf(funcName string) string {
	slash := strings.LastIndex(funcName, "/")
	if dot := strings.Index(funcName[slash+1:], "."); dot >= 0 {
		return funcName[:slash+1+dot]
	}
	return funcName
}
