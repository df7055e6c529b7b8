// Пакет logruslog — привязка к github.com/sirupsen/logrus.
package logruslog

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Gunvolt24/slf4g/config"
	"github.com/Gunvolt24/slf4g/internal/cache/memory"
	"github.com/Gunvolt24/slf4g/pkg/ctxmeta"
	"github.com/Gunvolt24/slf4g/pkg/slf4g"
)

// Name — имя привязки в реестре.
const Name = "logrus"

// FieldLogger — поле записи с хэндлом.
const FieldLogger = "logger"

func init() {
	slf4g.Register(Name, New)
}

func New(opts config.Logger) (slf4g.LoggerFactory, error) {
	threshold, err := slf4g.ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	base := logrus.New()
	base.SetOutput(opts.Writer())
	if opts.JSON() {
		base.SetFormatter(&logrus.JSONFormatter{})
	} else {
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return NewWithLogger(base, threshold), nil
}

// Factory — фабрика поверх одного *logrus.Logger.
type Factory struct {
	base      *logrus.Logger
	threshold slf4g.Level
	cache     *memory.Cache[*Logger]
}

// NewWithLogger — уровень base выставляется по threshold.
func NewWithLogger(base *logrus.Logger, threshold slf4g.Level) *Factory {
	base.SetLevel(logrusLevel(threshold))
	return &Factory{
		base:      base,
		threshold: threshold,
		cache:     memory.NewCache[*Logger](Name),
	}
}

func (f *Factory) Get(handle string) slf4g.Logger {
	return f.cache.GetOrCreate(handle, func(h string) *Logger {
		entry := logrus.NewEntry(f.base)
		if h != "" {
			entry = entry.WithField(FieldLogger, h)
		}
		return &Logger{entry: entry, threshold: f.threshold}
	})
}

type Logger struct {
	entry     *logrus.Entry
	threshold slf4g.Level
}

func (l *Logger) log(level slf4g.Level, msg any, args []any) {
	if !level.Enabled(l.threshold) {
		return
	}
	l.entry.Log(logrusLevel(level), slf4g.Sprint(msg, args...))
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

func (l *Logger) WithContext(ctx context.Context) slf4g.Logger {
	fields := ctxmeta.Fields(ctx)
	if len(fields) == 0 {
		return l
	}
	lf := make(logrus.Fields, len(fields))
	for _, fld := range fields {
		lf[fld.Key] = fld.Value
	}
	return &Logger{entry: l.entry.WithContext(ctx).WithFields(lf), threshold: l.threshold}
}

func logrusLevel(l slf4g.Level) logrus.Level {
	switch l {
	case slf4g.LevelTrace:
		return logrus.TraceLevel
	case slf4g.LevelDebug:
		return logrus.DebugLevel
	case slf4g.LevelInfo:
		return logrus.InfoLevel
	case slf4g.LevelWarn:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}
