package slf4g

// NopLogger — логгер-заглушка: ничего не пишет, все уровни выключены.
// Используется по умолчанию, когда привязка не найдена.
type NopLogger struct{}

func (NopLogger) Trace(any, ...any) {}
func (NopLogger) Debug(any, ...any) {}
func (NopLogger) Info(any, ...any)  {}
func (NopLogger) Warn(any, ...any)  {}
func (NopLogger) Error(any, ...any) {}

func (NopLogger) IsTraceEnabled() bool { return false }
func (NopLogger) IsDebugEnabled() bool { return false }
func (NopLogger) IsInfoEnabled() bool  { return false }
func (NopLogger) IsWarnEnabled() bool  { return false }
func (NopLogger) IsErrorEnabled() bool { return false }

func (NopLogger) Name() string { return "nop" }

var nopLogger Logger = &NopLogger{}

// NopLoggerFactory — всегда возвращает один и тот же NopLogger.
type NopLoggerFactory struct{}

func (NopLoggerFactory) Get(string) Logger { return nopLogger }

// Nop — фабрика по умолчанию.
func Nop() LoggerFactory { return NopLoggerFactory{} }

// IsNop — true, если l — логгер-заглушка.
func IsNop(l Logger) bool {
	switch l.(type) {
	case *NopLogger, NopLogger:
		return true
	}
	return false
}
