// Пакет sloglog — привязка к log/slog.
// slog не знает уровня trace: он пишется как slog.Level(-8) с меткой TRACE.
package sloglog

import (
	"context"
	"io"
	"log/slog"

	"github.com/Gunvolt24/slf4g/config"
	"github.com/Gunvolt24/slf4g/internal/cache/memory"
	"github.com/Gunvolt24/slf4g/pkg/ctxmeta"
	"github.com/Gunvolt24/slf4g/pkg/slf4g"
)

// Name — имя привязки в реестре.
const Name = "slog"

// LevelTrace — trace в терминах slog.
const LevelTrace = slog.Level(-8)

// AttrLogger — атрибут записи с хэндлом.
const AttrLogger = "logger"

func init() {
	slf4g.Register(Name, New)
}

func New(opts config.Logger) (slf4g.LoggerFactory, error) {
	threshold, err := slf4g.ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	return NewWithWriter(opts.Writer(), threshold, opts.JSON()), nil
}

// NewWithWriter — text- или JSON-обработчик поверх w.
func NewWithWriter(w io.Writer, threshold slf4g.Level, json bool) *Factory {
	hopts := &slog.HandlerOptions{
		Level:       slogLevel(threshold),
		ReplaceAttr: replaceLevel,
	}
	var h slog.Handler
	if json {
		h = slog.NewJSONHandler(w, hopts)
	} else {
		h = slog.NewTextHandler(w, hopts)
	}
	return NewWithHandler(h, threshold)
}

// Factory — фабрика поверх одного slog.Handler.
type Factory struct {
	base      *slog.Logger
	threshold slf4g.Level
	cache     *memory.Cache[*Logger]
}

func NewWithHandler(h slog.Handler, threshold slf4g.Level) *Factory {
	return &Factory{
		base:      slog.New(h),
		threshold: threshold,
		cache:     memory.NewCache[*Logger](Name),
	}
}

func (f *Factory) Get(handle string) slf4g.Logger {
	return f.cache.GetOrCreate(handle, func(h string) *Logger {
		lg := f.base
		if h != "" {
			lg = lg.With(AttrLogger, h)
		}
		return &Logger{logger: lg, threshold: f.threshold, ctx: context.Background()}
	})
}

type Logger struct {
	logger    *slog.Logger
	threshold slf4g.Level
	ctx       context.Context
}

func (l *Logger) log(level slf4g.Level, msg any, args []any) {
	if !level.Enabled(l.threshold) {
		return
	}
	l.logger.Log(l.ctx, slogLevel(level), slf4g.Sprint(msg, args...))
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

// WithContext — атрибуты из ctxmeta; сам ctx передаётся обработчику.
func (l *Logger) WithContext(ctx context.Context) slf4g.Logger {
	if ctx == nil {
		return l
	}
	lg := l.logger
	for _, fld := range ctxmeta.Fields(ctx) {
		lg = lg.With(fld.Key, fld.Value)
	}
	return &Logger{logger: lg, threshold: l.threshold, ctx: ctx}
}

func slogLevel(l slf4g.Level) slog.Level {
	switch l {
	case slf4g.LevelTrace:
		return LevelTrace
	case slf4g.LevelDebug:
		return slog.LevelDebug
	case slf4g.LevelInfo:
		return slog.LevelInfo
	case slf4g.LevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func replaceLevel(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.LevelKey {
		if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
			a.Value = slog.StringValue("TRACE")
		}
	}
	return a
}
