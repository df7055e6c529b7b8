package slf4g

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/Gunvolt24/slf4g/config"
	"github.com/Gunvolt24/slf4g/pkg/metrics"
)

// DocsURL — куда отправляет диагностика при откате на NOP.
const DocsURL = "https://github.com/Gunvolt24/slf4g"

// PlatformGo — имя платформы резолвера по умолчанию.
const PlatformGo = "go"

// Reporter — получатель диагностических строк фасада.
type Reporter func(msg string)

// WriterReporter — по строке на сообщение в w.
func WriterReporter(w io.Writer) Reporter {
	return func(msg string) { _, _ = fmt.Fprintln(w, msg) }
}

// StderrReporter — WriterReporter(os.Stderr).
func StderrReporter(msg string) { WriterReporter(os.Stderr)(msg) }

// Facade — владеет единственной активной фабрикой.
// Разрешение выполняется один раз; Reset сбрасывает кэш (для тестов).
// Пока идёт разрешение, Get отдаёт NOP-логгеры: резолвер и код привязки
// могут логировать через тот же фасад.
type Facade struct {
	resolver Resolver
	platform string
	report   Reporter
	metrics  bool

	mu        sync.Mutex
	factory   LoggerFactory
	err       error
	origin    Origin
	resolving bool
	gen       uint64 // поколение, увеличивается на Reset
}

// Option — настройка Facade.
type Option func(*Facade)

// WithMetrics — считать исходы разрешения и сообщения по уровням (Prometheus).
func WithMetrics() Option {
	return func(f *Facade) { f.metrics = true }
}

func New(resolver Resolver, platform string, report Reporter, opts ...Option) *Facade {
	if report == nil {
		report = func(string) {}
	}
	f := &Facade{resolver: resolver, platform: platform, report: report}
	for _, opt := range opts {
		opt(f)
	}
	if f.metrics {
		metrics.MustRegister()
	}
	return f
}

// Init — разрешает фабрику, если это ещё не сделано, и возвращает её.
// При ошибке сообщает о ней тремя строками и возвращает NOP-фабрику.
// Вызов во время разрешения (в том числе из самого резолвера) сразу возвращает NOP.
func (f *Facade) Init() LoggerFactory {
	f.mu.Lock()
	if f.factory != nil {
		factory := f.factory
		f.mu.Unlock()
		return factory
	}
	if f.resolving {
		f.mu.Unlock()
		return Nop()
	}
	f.resolving = true
	gen := f.gen
	f.mu.Unlock()

	factory, origin, err := f.resolve()
	if f.metrics {
		metrics.BindingResolutions.WithLabelValues(outcome(err)).Inc()
	}
	switch {
	case err != nil:
		factory = Nop()
	case f.metrics:
		factory = Instrument(factory)
	}

	f.mu.Lock()
	current := gen == f.gen
	if current {
		f.resolving = false
		f.factory, f.err, f.origin = factory, err, origin
	}
	f.mu.Unlock()

	// результат, устаревший из-за Reset, не сохраняется и не сообщается
	if current && err != nil {
		f.report(fmt.Sprintf("SLF4G: %s.", strings.TrimSuffix(err.Error(), ".")))
		f.report("SLF4G: Defaulting to no-operation (NOP) logger implementation.")
		f.report("SLF4G: See " + DocsURL + " for further details.")
	}
	return factory
}

func (f *Facade) resolve() (factory LoggerFactory, origin Origin, err error) {
	if f.resolver == nil {
		return nil, Origin{}, fmt.Errorf("%w for platform %q", ErrNoResolver, f.platform)
	}

	// Резолвер не должен ронять процесс: паника превращается в ошибку загрузки.
	defer func() {
		if r := recover(); r != nil {
			factory, err = nil, withKind(ErrBindingLoad, fmt.Errorf("resolver panic: %v", r))
		}
	}()

	if src, ok := f.resolver.(OriginResolver); ok {
		factory, origin, err = src.ResolveOrigin()
	} else {
		factory, err = f.resolver.Resolve()
	}

	var be *BindingError
	if errors.As(err, &be) && origin == (Origin{}) {
		origin = Origin{Name: be.Name, Source: be.Source}
	}
	if err == nil && factory == nil {
		err = &BindingError{Stage: StageLoad, Name: origin.Name, Source: origin.Source, Kind: ErrBindingInvalid}
	}
	return factory, origin, err
}

// Get — логгер для handle; при первом вызове синхронно запускает разрешение.
func (f *Facade) Get(handle string) Logger {
	return f.Init().Get(handle)
}

// Factory — текущая фабрика (разрешает при необходимости).
func (f *Facade) Factory() LoggerFactory {
	return f.Init()
}

// Err — ошибка последнего разрешения, nil если привязка найдена или разрешения ещё не было.
func (f *Facade) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *Facade) Platform() string { return f.platform }

// Origin — имя и источник привязки последнего разрешения; разрешение не запускает.
func (f *Facade) Origin() Origin {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.origin
}

// Reset — забывает разрешённую фабрику; следующий Get разрешит заново.
func (f *Facade) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.factory = nil
	f.err = nil
	f.origin = Origin{}
	f.resolving = false
	f.gen++
}

// Sync — сбрасывает буферы фабрики, если она это поддерживает.
func (f *Facade) Sync() error {
	f.mu.Lock()
	factory := f.factory
	f.mu.Unlock()

	if s, ok := factory.(Syncer); ok {
		return s.Sync()
	}
	return nil
}

// Init — однократное разрешение без сохранения состояния между вызовами.
func Init(resolver Resolver, platform string, report Reporter) LoggerFactory {
	return New(resolver, platform, report).Init()
}

var (
	defaultMu     sync.Mutex
	defaultFacade *Facade
)

// Default — фасад процесса; создаётся лениво из конфигурации окружения (SLF4G_*).
func Default() *Facade {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultFacade == nil {
		defaultFacade = newDefault()
	}
	return defaultFacade
}

// SetDefault — подменяет фасад процесса (nil — вернуть фасад по умолчанию при следующем Default).
func SetDefault(f *Facade) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultFacade = f
}

func newDefault() *Facade {
	cfg, err := config.Load()
	if err != nil {
		StderrReporter(fmt.Sprintf("SLF4G: invalid configuration (%v), using defaults.", err))
		cfg = config.Defaults()
	}

	var opts []Option
	if cfg.Metrics.Enabled {
		opts = append(opts, WithMetrics())
	}
	resolver := NewEnvResolver(cfg.Manifest, DefaultLoader(cfg.Logger))
	return New(resolver, PlatformGo, StderrReporter, opts...)
}

// Get — логгер из фасада процесса.
func Get(handle string) Logger {
	return Default().Get(handle)
}

// Reset — сброс фасада процесса (для тестов).
func Reset() {
	Default().Reset()
}
