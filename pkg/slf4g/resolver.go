package slf4g

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/slf4g/config"
	"github.com/Gunvolt24/slf4g/internal/manifest"
)

// BindingEnv — переменная окружения с именем привязки.
const BindingEnv = "SLF4G_BINDING"

// Resolver — стратегия выбора фабрики для платформы.
// Ошибка не паникует и не выбрасывается наружу: решение принимает вызывающий (Facade).
type Resolver interface {
	Resolve() (LoggerFactory, error)
}

// ResolverFunc — адаптер функции к Resolver.
type ResolverFunc func() (LoggerFactory, error)

func (f ResolverFunc) Resolve() (LoggerFactory, error) { return f() }

// Origin — откуда взята привязка.
type Origin struct {
	Name   string // имя привязки
	Source string // переменная окружения или путь манифеста
}

// OriginResolver — резолвер, сообщающий вместе с фабрикой имя и источник привязки.
// Facade сохраняет их, чтобы описание совпадало с фактически разрешённой фабрикой.
type OriginResolver interface {
	Resolver
	ResolveOrigin() (LoggerFactory, Origin, error)
}

// EnvResolver — резолвер платформы "go":
// переменная окружения → ближайший манифест → загрузка через Loader.
type EnvResolver struct {
	EnvVar        string
	StartDir      string // пусто — директория исполняемого файла
	ManifestFiles []string
	ManifestField string
	Loader        Loader

	lookupEnv func(string) (string, bool)
}

// NewEnvResolver — резолвер с настройками манифеста из конфигурации.
func NewEnvResolver(cfg config.Manifest, loader Loader) *EnvResolver {
	return &EnvResolver{
		EnvVar:        BindingEnv,
		StartDir:      cfg.Dir,
		ManifestFiles: cfg.Files,
		ManifestField: cfg.Field,
		Loader:        loader,
		lookupEnv:     os.LookupEnv,
	}
}

// Resolve — один проход без повторов.
func (r *EnvResolver) Resolve() (LoggerFactory, error) {
	factory, _, err := r.ResolveOrigin()
	return factory, err
}

// ResolveOrigin — Resolve плюс имя и источник найденной привязки.
func (r *EnvResolver) ResolveOrigin() (LoggerFactory, Origin, error) {
	name, source, err := r.Lookup()
	if err != nil {
		return nil, Origin{}, err
	}
	origin := Origin{Name: name, Source: source}
	factory, err := r.load(name, source)
	return factory, origin, err
}

// Lookup — находит имя привязки и его источник, ничего не загружая.
func (r *EnvResolver) Lookup() (name, source string, err error) {
	envVar := r.EnvVar
	if envVar == "" {
		envVar = BindingEnv
	}
	lookup := r.lookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(envVar); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), envVar, nil
	}

	m, err := manifest.Find(r.startDir(), r.manifestFiles())
	if err != nil {
		kind := ErrBindingNotFound
		if !errors.Is(err, manifest.ErrNotFound) {
			kind = ErrBindingLoad
		}
		return "", "", &BindingError{Stage: StageManifest, Kind: kind, Err: err}
	}

	field := r.ManifestField
	if field == "" {
		field = "slf4g"
	}
	name, ok := m.Binding(field)
	if !ok {
		return "", m.Path, &BindingError{
			Stage:  StageManifest,
			Source: m.Path,
			Kind:   ErrBindingNotFound,
			Err:    errors.New("no \"" + field + "\" field in " + m.Path),
		}
	}
	return name, m.Path, nil
}

func (r *EnvResolver) load(name, source string) (LoggerFactory, error) {
	if r.Loader == nil {
		return nil, &BindingError{Stage: StageLoad, Name: name, Source: source, Kind: ErrBindingLoad, Err: errors.New("no loader configured")}
	}

	factory, err := r.Loader.Load(name)
	if err != nil {
		kind := ErrBindingLoad
		if errors.Is(err, ErrBindingInvalid) {
			kind = ErrBindingInvalid
		}
		return nil, &BindingError{Stage: StageLoad, Name: name, Source: source, Kind: kind, Err: err}
	}
	if factory == nil {
		return nil, &BindingError{Stage: StageLoad, Name: name, Source: source, Kind: ErrBindingInvalid}
	}
	return factory, nil
}

func (r *EnvResolver) startDir() string {
	if r.StartDir != "" {
		return r.StartDir
	}
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Dir(exe)
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return ""
}

func (r *EnvResolver) manifestFiles() []string {
	if len(r.ManifestFiles) == 0 {
		return []string{"manifest.yaml", "manifest.json"}
	}
	return r.ManifestFiles
}
