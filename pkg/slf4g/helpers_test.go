package slf4g_test

import (
	"fmt"
	"sync"

	"github.com/Gunvolt24/slf4g/config"
	"github.com/Gunvolt24/slf4g/pkg/slf4g"
)

// recordingLogger — пишет отформатированные сообщения в общий журнал.
type recordingLogger struct {
	slf4g.NopLogger
	handle    string
	threshold slf4g.Level
	sink      *journal
}

type journal struct {
	mu    sync.Mutex
	lines []string
}

func (j *journal) add(line string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.lines = append(j.lines, line)
}

func (j *journal) snapshot() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.lines...)
}

func (l *recordingLogger) log(level slf4g.Level, msg any, args ...any) {
	if !level.Enabled(l.threshold) {
		return
	}
	l.sink.add(fmt.Sprintf("%s %s: %s", l.handle, level, slf4g.Sprint(msg, args...)))
}

func (l *recordingLogger) Trace(msg any, args ...any) { l.log(slf4g.LevelTrace, msg, args...) }
func (l *recordingLogger) Debug(msg any, args ...any) { l.log(slf4g.LevelDebug, msg, args...) }
func (l *recordingLogger) Info(msg any, args ...any)  { l.log(slf4g.LevelInfo, msg, args...) }
func (l *recordingLogger) Warn(msg any, args ...any)  { l.log(slf4g.LevelWarn, msg, args...) }
func (l *recordingLogger) Error(msg any, args ...any) { l.log(slf4g.LevelError, msg, args...) }

func (l *recordingLogger) IsTraceEnabled() bool { return slf4g.LevelTrace.Enabled(l.threshold) }
func (l *recordingLogger) IsDebugEnabled() bool { return slf4g.LevelDebug.Enabled(l.threshold) }
func (l *recordingLogger) IsInfoEnabled() bool  { return slf4g.LevelInfo.Enabled(l.threshold) }
func (l *recordingLogger) IsWarnEnabled() bool  { return slf4g.LevelWarn.Enabled(l.threshold) }
func (l *recordingLogger) IsErrorEnabled() bool { return slf4g.LevelError.Enabled(l.threshold) }

func (l *recordingLogger) Name() string { return "recording" }

// recordingFactory — фабрика с кэшем по хэндлу.
type recordingFactory struct {
	threshold slf4g.Level
	sink      *journal

	mu      sync.Mutex
	loggers map[string]*recordingLogger
	synced  int
}

func newRecordingFactory(threshold slf4g.Level) *recordingFactory {
	return &recordingFactory{threshold: threshold, sink: &journal{}, loggers: map[string]*recordingLogger{}}
}

func (f *recordingFactory) Get(handle string) slf4g.Logger {
	f.mu.Lock()
	defer f.mu.Unlock()

	if l, ok := f.loggers[handle]; ok {
		return l
	}
	l := &recordingLogger{handle: handle, threshold: f.threshold, sink: f.sink}
	f.loggers[handle] = l
	return l
}

func (f *recordingFactory) Sync() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.synced++
	return nil
}

// registryWith — отдельный реестр с одной привязкой.
func registryWith(name string, factory slf4g.LoggerFactory) *slf4g.Registry {
	reg := slf4g.NewRegistry()
	reg.Register(name, func(config.Logger) (slf4g.LoggerFactory, error) { return factory, nil })
	return reg
}
