package slf4g

import (
	"errors"
	"fmt"
)

var (
	// ErrBindingNotFound — ни переменная окружения, ни манифест не назвали привязку.
	ErrBindingNotFound = errors.New("failed to determine binding")
	// ErrBindingLoad — привязку не удалось загрузить.
	ErrBindingLoad = errors.New("failed to load binding")
	// ErrBindingInvalid — загруженное значение не является LoggerFactory.
	ErrBindingInvalid = errors.New("binding does not provide a logger factory")
	// ErrUnknownBinding — загрузчик не знает такого имени.
	ErrUnknownBinding = errors.New("binding is not registered")
	// ErrNoResolver — для платформы не задан резолвер.
	ErrNoResolver = errors.New("no logger factory resolver found")
	// ErrUnknownLevel — нераспознанное имя уровня.
	ErrUnknownLevel = errors.New("unknown log level")
)

// Stage — шаг разрешения привязки, на котором произошла ошибка.
type Stage string

const (
	StageEnv      Stage = "env"
	StageManifest Stage = "manifest"
	StageLoad     Stage = "load"
)

// BindingError — ошибка разрешения привязки.
// errors.Is срабатывает и на вид ошибки (Kind), и на причину (Err).
type BindingError struct {
	Stage  Stage
	Name   string // имя привязки, если уже известно
	Source string // откуда взято имя: переменная окружения или путь манифеста
	Kind   error  // ErrBindingNotFound | ErrBindingLoad | ErrBindingInvalid
	Err    error
}

func (e *BindingError) Error() string {
	switch {
	case e.Name == "" && e.Err == nil:
		return e.Kind.Error()
	case e.Name == "":
		return fmt.Sprintf("%s (%v)", e.Kind, e.Err)
	case e.Err == nil:
		return fmt.Sprintf("%s %q", e.Kind, e.Name)
	default:
		return fmt.Sprintf("%s %q (%v)", e.Kind, e.Name, e.Err)
	}
}

func (e *BindingError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// outcome — метка исхода разрешения для метрик.
func outcome(err error) string {
	switch {
	case err == nil:
		return "resolved"
	case errors.Is(err, ErrNoResolver):
		return "no_resolver"
	case errors.Is(err, ErrBindingNotFound):
		return "not_found"
	case errors.Is(err, ErrBindingInvalid):
		return "invalid"
	default:
		return "load_failed"
	}
}

// kindError — причина, помеченная видом ошибки; в тексте только причина.
type kindError struct {
	kind error
	err  error
}

func (e *kindError) Error() string   { return e.err.Error() }
func (e *kindError) Unwrap() []error { return []error{e.kind, e.err} }

func withKind(kind, err error) error {
	return &kindError{kind: kind, err: err}
}
