// Пакет console — простая привязка: строка "<handle> <level>: <msg>" на сообщение,
// тег уровня подсвечивается цветом, если вывод — терминал.
package console

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/Gunvolt24/slf4g/config"
	"github.com/Gunvolt24/slf4g/internal/cache/memory"
	"github.com/Gunvolt24/slf4g/pkg/ctxmeta"
	"github.com/Gunvolt24/slf4g/pkg/slf4g"
)

// Name — имя привязки в реестре.
const Name = "console"

func init() {
	slf4g.Register(Name, New)
}

// New — конструктор для реестра.
func New(opts config.Logger) (slf4g.LoggerFactory, error) {
	threshold, err := slf4g.ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	w := opts.Writer()
	return NewWithWriter(w, threshold, colorable(w)), nil
}

// Factory — фабрика консольных логгеров; все логгеры пишут в один w.
type Factory struct {
	threshold slf4g.Level
	colored   bool

	mu  sync.Mutex
	out io.Writer

	cache *memory.Cache[*Logger]
}

func NewWithWriter(w io.Writer, threshold slf4g.Level, colored bool) *Factory {
	return &Factory{
		threshold: threshold,
		colored:   colored,
		out:       w,
		cache:     memory.NewCache[*Logger](Name),
	}
}

func (f *Factory) Get(handle string) slf4g.Logger {
	return f.cache.GetOrCreate(handle, func(h string) *Logger {
		return &Logger{handle: h, f: f}
	})
}

// Цвет включается явно: решение о терминале принимает colorable, а не color.NoColor.
var levelColors = map[slf4g.Level]*color.Color{
	slf4g.LevelTrace: forced(color.Faint),
	slf4g.LevelDebug: forced(color.FgMagenta),
	slf4g.LevelInfo:  forced(color.FgCyan),
	slf4g.LevelWarn:  forced(color.FgYellow),
	slf4g.LevelError: forced(color.FgRed, color.Bold),
}

func forced(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

func (f *Factory) tag(level slf4g.Level) string {
	c, ok := levelColors[level]
	if !f.colored || !ok {
		return level.String()
	}
	return c.Sprint(level.String())
}

func (f *Factory) write(handle string, level slf4g.Level, msg string, fields []ctxmeta.Field) {
	var b strings.Builder
	if handle != "" {
		b.WriteString(handle)
		b.WriteByte(' ')
	}
	b.WriteString(f.tag(level))
	b.WriteString(": ")
	b.WriteString(msg)
	for _, fld := range fields {
		b.WriteByte(' ')
		b.WriteString(fld.Key)
		b.WriteByte('=')
		b.WriteString(fld.Value)
	}
	b.WriteByte('\n')

	f.mu.Lock()
	defer f.mu.Unlock()
	_, _ = io.WriteString(f.out, b.String())
}

// Logger — логгер одного хэндла.
type Logger struct {
	handle string
	fields []ctxmeta.Field
	f      *Factory
}

func (l *Logger) log(level slf4g.Level, msg any, args []any) {
	if !level.Enabled(l.f.threshold) {
		return
	}
	l.f.write(l.handle, level, slf4g.Sprint(msg, args...), l.fields)
}

func (l *Logger) Trace(msg any, args ...any) { l.log(slf4g.LevelTrace, msg, args) }
func (l *Logger) Debug(msg any, args ...any) { l.log(slf4g.LevelDebug, msg, args) }
func (l *Logger) Info(msg any, args ...any)  { l.log(slf4g.LevelInfo, msg, args) }
func (l *Logger) Warn(msg any, args ...any)  { l.log(slf4g.LevelWarn, msg, args) }
func (l *Logger) Error(msg any, args ...any) { l.log(slf4g.LevelError, msg, args) }

func (l *Logger) IsTraceEnabled() bool { return slf4g.LevelTrace.Enabled(l.f.threshold) }
func (l *Logger) IsDebugEnabled() bool { return slf4g.LevelDebug.Enabled(l.f.threshold) }
func (l *Logger) IsInfoEnabled() bool  { return slf4g.LevelInfo.Enabled(l.f.threshold) }
func (l *Logger) IsWarnEnabled() bool  { return slf4g.LevelWarn.Enabled(l.f.threshold) }
func (l *Logger) IsErrorEnabled() bool { return slf4g.LevelError.Enabled(l.f.threshold) }

func (l *Logger) Name() string { return Name }

// WithContext — копия логгера, дописывающая к строке request_id/trace_id/span_id.
func (l *Logger) WithContext(ctx context.Context) slf4g.Logger {
	fields := ctxmeta.Fields(ctx)
	if len(fields) == 0 {
		return l
	}
	return &Logger{handle: l.handle, fields: fields, f: l.f}
}

// colorable — терминал и не задан NO_COLOR (https://no-color.org).
func colorable(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
