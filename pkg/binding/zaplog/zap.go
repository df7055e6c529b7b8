// Пакет zaplog — привязка к go.uber.org/zap.
// Каждый хэндл получает именованный SugaredLogger; trace пишется как debug с полем trace=true.
package zaplog

import (
	"context"
	"errors"
	"os"
	"syscall"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Gunvolt24/slf4g/config"
	"github.com/Gunvolt24/slf4g/internal/cache/memory"
	"github.com/Gunvolt24/slf4g/pkg/ctxmeta"
	"github.com/Gunvolt24/slf4g/pkg/slf4g"
)

// Name — имя привязки в реестре.
const Name = "zap"

func init() {
	slf4g.Register(Name, New)
}

// CallerSkip — Logger.<Level> и Logger.log между вызывающим кодом и zap.
// Обёртки фасада добавляют свои кадры через AddCallerSkip.
const CallerSkip = 2

// New — dev- или prod-конфигурация zap в зависимости от IsProd.
func New(opts config.Logger) (slf4g.LoggerFactory, error) {
	threshold, err := slf4g.ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	var cfg zap.Config
	if opts.IsProd {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(threshold))
	if opts.JSON() {
		cfg.Encoding = "json"
	} else {
		cfg.Encoding = "console"
	}
	cfg.OutputPaths = []string{output(opts)}

	base, err := cfg.Build(zap.AddCallerSkip(CallerSkip))
	if err != nil {
		return nil, err
	}
	return NewWithLogger(base, threshold), nil
}

// Factory — фабрика поверх одного базового *zap.Logger.
type Factory struct {
	base      *zap.Logger
	threshold slf4g.Level
	cache     *memory.Cache[*Logger]
}

// NewWithLogger — фабрика поверх готового логгера (например, с zaptest/observer).
func NewWithLogger(base *zap.Logger, threshold slf4g.Level) *Factory {
	return &Factory{
		base:      base,
		threshold: threshold,
		cache:     memory.NewCache[*Logger](Name),
	}
}

func (f *Factory) Get(handle string) slf4g.Logger {
	return f.cache.GetOrCreate(handle, func(h string) *Logger {
		named := f.base
		if h != "" {
			named = named.Named(h)
		}
		return &Logger{sugar: named.Sugar(), threshold: f.threshold}
	})
}

func (f *Factory) Base() *zap.Logger { return f.base }

// Sync — сбрасывает буферы базового и всех выданных логгеров.
// Ошибки sync на терминалах (EINVAL, ENOTTY) не считаются ошибками.
func (f *Factory) Sync() error {
	err := f.base.Sync()
	f.cache.Range(func(_ string, l *Logger) {
		err = multierr.Append(err, l.sugar.Sync())
	})

	var kept error
	for _, e := range multierr.Errors(err) {
		if errors.Is(e, syscall.EINVAL) || errors.Is(e, syscall.ENOTTY) {
			continue
		}
		kept = multierr.Append(kept, e)
	}
	return kept
}

// Logger — логгер одного хэндла.
type Logger struct {
	sugar     *zap.SugaredLogger
	threshold slf4g.Level
}

func (l *Logger) log(level slf4g.Level, msg any, args []any) {
	if !level.Enabled(l.threshold) {
		return
	}
	text := slf4g.Sprint(msg, args...)
	switch level {
	case slf4g.LevelTrace:
		l.sugar.Debugw(text, "trace", true)
	case slf4g.LevelDebug:
		l.sugar.Debugw(text)
	case slf4g.LevelInfo:
		l.sugar.Infow(text)
	case slf4g.LevelWarn:
		l.sugar.Warnw(text)
	default:
		l.sugar.Errorw(text)
	}
}

func (l *Logger) Trace(msg any, args ...any) { l.log(slf4g.LevelTrace, msg, args) }
func (l *Logger) Debug(msg any, args ...any) { l.log(slf4g.LevelDebug, msg, args) }
func (l *Logger) Info(msg any, args ...any)  { l.log(slf4g.LevelInfo, msg, args) }
func (l *Logger) Warn(msg any, args ...any)  { l.log(slf4g.LevelWarn, msg, args) }
func (l *Logger) Error(msg any, args ...any) { l.log(slf4g.LevelError, msg, args) }

func (l *Logger) IsTraceEnabled() bool { return slf4g.LevelTrace.Enabled(l.threshold) }
func (l *Logger) IsDebugEnabled() bool { return slf4g.LevelDebug.Enabled(l.threshold) }
func (l *Logger) IsInfoEnabled() bool  { return slf4g.LevelInfo.Enabled(l.threshold) }
func (l *Logger) IsWarnEnabled() bool  { return slf4g.LevelWarn.Enabled(l.threshold) }
func (l *Logger) IsErrorEnabled() bool { return slf4g.LevelError.Enabled(l.threshold) }

func (l *Logger) Name() string { return Name }

// WithContext — логгер с полями request_id/trace_id/span_id.
func (l *Logger) WithContext(ctx context.Context) slf4g.Logger {
	fields := ctxmeta.Fields(ctx)
	if len(fields) == 0 {
		return l
	}
	kv := make([]any, 0, 2*len(fields))
	for _, fld := range fields {
		kv = append(kv, fld.Key, fld.Value)
	}
	return &Logger{sugar: l.sugar.With(kv...), threshold: l.threshold}
}

// AddCallerSkip — логгер, пропускающий ещё skip кадров при определении места вызова.
func (l *Logger) AddCallerSkip(skip int) slf4g.Logger {
	return &Logger{sugar: l.sugar.WithOptions(zap.AddCallerSkip(skip)), threshold: l.threshold}
}

func (l *Logger) Sugared() *zap.SugaredLogger { return l.sugar }

func zapLevel(l slf4g.Level) zapcore.Level {
	switch l {
	case slf4g.LevelTrace, slf4g.LevelDebug:
		return zapcore.DebugLevel
	case slf4g.LevelInfo:
		return zapcore.InfoLevel
	case slf4g.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

func output(opts config.Logger) string {
	if opts.Writer() == os.Stdout {
		return "stdout"
	}
	return "stderr"
}
