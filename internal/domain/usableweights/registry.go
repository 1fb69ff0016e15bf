package usableweights

import "sync"

// Registry держит текущую таблицу. Чтение идёт из HTTP и бота параллельно,
// импорт подменяет таблицу целиком.
type Registry struct {
	mu    sync.RWMutex
	table *Table
}

func NewRegistry(t *Table) *Registry {
	if t == nil {
		t, _ = NewTable(nil)
	}
	return &Registry{table: t}
}

func (r *Registry) Current() *Table {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.table
}

func (r *Registry) Replace(t *Table) {
	r.mu.Lock()
	r.table = t
	r.mu.Unlock()
}

func (r *Registry) UsableWeight(form, modifier string) (float64, error) {
	return r.Current().UsableWeight(form, modifier)
}
