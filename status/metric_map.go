package status

import (
	"sort"
	"sync"
)

// metricMap lazily allocates one T per name; returned pointers stay valid
type metricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func newMetricMap[T any]() *metricMap[T] {
	return &metricMap[T]{items: make(map[string]*T)}
}

func (m *metricMap[T]) get(name string) *T {
	m.mu.RLock()
	ptr, ok := m.items[name]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[name]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[name] = ptr
	return ptr
}

// each visits metrics in name order
func (m *metricMap[T]) each(fn func(name string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.items))
	for name := range m.items {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fn(name, m.items[name])
	}
}

func (m *metricMap[T]) count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
