package memory

import (
	"sync"

	"github.com/Gunvolt24/slf4g/pkg/metrics"
)

// Cache — кэш логгеров по хэндлу без вытеснения:
// один хэндл всегда даёт один и тот же экземпляр.
type Cache[V any] struct {
	binding string // метка для метрик

	index map[string]V
	mu    sync.Mutex
}

func NewCache[V any](binding string) *Cache[V] {
	return &Cache[V]{
		binding: binding,
		index:   make(map[string]V),
	}
}

// GetOrCreate — значение из кэша или результат create, сохранённый под handle.
// create вызывается под блокировкой, поэтому не более одного раза на хэндл.
func (c *Cache[V]) GetOrCreate(handle string, create func(handle string) V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.index[handle]; ok {
		metrics.CacheOps.WithLabelValues(c.binding, "hit").Inc()
		return v
	}

	v := create(handle)
	c.index[handle] = v
	metrics.CacheOps.WithLabelValues(c.binding, "miss").Inc()
	metrics.CacheSize.WithLabelValues(c.binding).Set(float64(len(c.index)))
	return v
}

// Get — значение без создания.
func (c *Cache[V]) Get(handle string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.index[handle]
	return v, ok
}

func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.index)
}

// Range — обход снимка значений (порядок не определён).
func (c *Cache[V]) Range(fn func(handle string, v V)) {
	c.mu.Lock()
	snapshot := make(map[string]V, len(c.index))
	for k, v := range c.index {
		snapshot[k] = v
	}
	c.mu.Unlock()

	for k, v := range snapshot {
		fn(k, v)
	}
}
