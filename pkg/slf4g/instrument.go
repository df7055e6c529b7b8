package slf4g

import (
	"context"

	"github.com/Gunvolt24/slf4g/internal/cache/memory"
	"github.com/Gunvolt24/slf4g/pkg/metrics"
)

// Instrument — оборачивает фабрику: каждое сообщение, прошедшее проверку уровня,
// увеличивает slf4g_log_messages_total{binding,level}.
func Instrument(f LoggerFactory) LoggerFactory {
	if f == nil {
		return nil
	}
	if _, ok := f.(*instrumentedFactory); ok {
		return f
	}
	return &instrumentedFactory{inner: f, cache: memory.NewCache[Logger]("instrumented")}
}

type instrumentedFactory struct {
	inner LoggerFactory
	cache *memory.Cache[Logger]
}

func (f *instrumentedFactory) Get(handle string) Logger {
	return f.cache.GetOrCreate(handle, func(h string) Logger {
		return instrumented(f.inner.Get(h))
	})
}

func (f *instrumentedFactory) Sync() error {
	if s, ok := f.inner.(Syncer); ok {
		return s.Sync()
	}
	return nil
}

// instrumented — обёртка добавляет один кадр между вызывающим кодом и бэкендом.
func instrumented(l Logger) Logger {
	if cs, ok := l.(CallerSkipper); ok {
		l = cs.AddCallerSkip(1)
	}
	return &instrumentedLogger{Logger: l}
}

type instrumentedLogger struct {
	Logger
}

func (l *instrumentedLogger) count(level Level) {
	metrics.LogMessages.WithLabelValues(l.Logger.Name(), level.String()).Inc()
}

func (l *instrumentedLogger) Trace(msg any, args ...any) {
	if l.Logger.IsTraceEnabled() {
		l.count(LevelTrace)
	}
	l.Logger.Trace(msg, args...)
}

func (l *instrumentedLogger) Debug(msg any, args ...any) {
	if l.Logger.IsDebugEnabled() {
		l.count(LevelDebug)
	}
	l.Logger.Debug(msg, args...)
}

func (l *instrumentedLogger) Info(msg any, args ...any) {
	if l.Logger.IsInfoEnabled() {
		l.count(LevelInfo)
	}
	l.Logger.Info(msg, args...)
}

func (l *instrumentedLogger) Warn(msg any, args ...any) {
	if l.Logger.IsWarnEnabled() {
		l.count(LevelWarn)
	}
	l.Logger.Warn(msg, args...)
}

func (l *instrumentedLogger) Error(msg any, args ...any) {
	if l.Logger.IsErrorEnabled() {
		l.count(LevelError)
	}
	l.Logger.Error(msg, args...)
}

// WithContext — внутренний логгер уже сдвинут, повторно не оборачиваем через instrumented.
func (l *instrumentedLogger) WithContext(ctx context.Context) Logger {
	return &instrumentedLogger{Logger: FromContext(ctx, l.Logger)}
}
