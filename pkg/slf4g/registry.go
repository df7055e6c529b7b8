package slf4g

import (
	"sort"
	"sync"

	"github.com/Gunvolt24/slf4g/config"
)

// Constructor — создаёт фабрику бэкенда по общим настройкам логгера.
type Constructor func(opts config.Logger) (LoggerFactory, error)

// Registry — соответствие "имя привязки → конструктор".
// Бэкенды регистрируются из init(), как драйверы database/sql.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// Register — паникует на пустом имени, nil-конструкторе и повторной регистрации.
func (r *Registry) Register(name string, ctor Constructor) {
	if name == "" {
		panic("slf4g: Register binding with empty name")
	}
	if ctor == nil {
		panic("slf4g: Register binding " + name + " with nil constructor")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.ctors[name]; dup {
		panic("slf4g: Register called twice for binding " + name)
	}
	r.ctors[name] = ctor
}

func (r *Registry) Lookup(name string) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ctor, ok := r.ctors[name]
	return ctor, ok
}

// Names — зарегистрированные имена по алфавиту.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry — реестр, в который регистрируются пакеты pkg/binding/*.
var DefaultRegistry = NewRegistry()

func init() {
	DefaultRegistry.Register("nop", func(config.Logger) (LoggerFactory, error) { return Nop(), nil })
}

// Register — регистрация в DefaultRegistry.
func Register(name string, ctor Constructor) {
	DefaultRegistry.Register(name, ctor)
}

// Bindings — имена из DefaultRegistry.
func Bindings() []string {
	return DefaultRegistry.Names()
}
