package slf4g

import (
	"errors"

	"github.com/Gunvolt24/slf4g/config"
)

// Loader — загрузка фабрики по имени привязки.
// Ошибки: ErrUnknownBinding (имя неизвестно), ErrBindingLoad, ErrBindingInvalid.
type Loader interface {
	Load(name string) (LoggerFactory, error)
}

// LoaderFunc — адаптер функции к Loader.
type LoaderFunc func(name string) (LoggerFactory, error)

func (f LoaderFunc) Load(name string) (LoggerFactory, error) { return f(name) }

// RegistryLoader — статическая загрузка из Registry.
type RegistryLoader struct {
	registry *Registry
	opts     config.Logger
}

func NewRegistryLoader(registry *Registry, opts config.Logger) *RegistryLoader {
	if registry == nil {
		registry = DefaultRegistry
	}
	return &RegistryLoader{registry: registry, opts: opts}
}

func (l *RegistryLoader) Load(name string) (LoggerFactory, error) {
	ctor, ok := l.registry.Lookup(name)
	if !ok {
		return nil, ErrUnknownBinding
	}

	factory, err := ctor(l.opts)
	if err != nil {
		return nil, withKind(ErrBindingLoad, err)
	}
	if factory == nil {
		return nil, withKind(ErrBindingInvalid, errors.New("constructor returned nil"))
	}
	return factory, nil
}

// ChainLoader — пробует загрузчики по очереди.
// ErrUnknownBinding означает "не мой" и передаёт имя следующему.
type ChainLoader []Loader

func (c ChainLoader) Load(name string) (LoggerFactory, error) {
	for _, loader := range c {
		factory, err := loader.Load(name)
		if err == nil {
			return factory, nil
		}
		if !errors.Is(err, ErrUnknownBinding) {
			return nil, err
		}
	}
	return nil, ErrUnknownBinding
}

// DefaultLoader — реестр по умолчанию, затем Go-плагины (*.so).
func DefaultLoader(opts config.Logger) Loader {
	return ChainLoader{
		NewRegistryLoader(DefaultRegistry, opts),
		PluginLoader{},
	}
}
