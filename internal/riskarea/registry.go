package riskarea

import (
	"sync"
	"sync/atomic"

	"github.com/shenikar/safe_route_system/internal/models"
)

// Registry хранит ссылку на текущий набор геозон.
// Читатели получают целый снимок, изменения выполняются по одному и подменяют ссылку атомарно.
type Registry struct {
	mu      sync.Mutex
	current atomic.Pointer[Set]
}

// NewRegistry создает реестр с начальным набором (nil означает пустой набор)
func NewRegistry(initial *Set) *Registry {
	r := &Registry{}
	if initial == nil {
		initial = EmptySet()
	}
	r.current.Store(initial)
	return r
}

// Current возвращает текущий снимок набора
func (r *Registry) Current() *Set {
	return r.current.Load()
}

// Replace целиком заменяет набор
func (r *Registry) Replace(areas []models.RiskArea) (*Set, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := NewSet(areas...)
	if err != nil {
		return nil, err
	}
	r.current.Store(next)
	return next, nil
}

// Add добавляет геозоны в конец набора
func (r *Registry) Add(areas ...models.RiskArea) (*Set, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := r.current.Load().With(areas...)
	if err != nil {
		return nil, err
	}
	r.current.Store(next)
	return next, nil
}

// Delete удаляет геозону по идентификатору и сообщает, была ли она найдена
func (r *Registry) Delete(id string) (*Set, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, removed := r.current.Load().Without(id)
	if removed {
		r.current.Store(next)
	}
	return next, removed
}

// Update выполняет произвольное изменение под блокировкой реестра.
// fn получает текущий снимок и возвращает новый; при ошибке набор не меняется.
func (r *Registry) Update(fn func(*Set) (*Set, error)) (*Set, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := fn(r.current.Load())
	if err != nil {
		return nil, err
	}
	if next == nil {
		next = EmptySet()
	}
	r.current.Store(next)
	return next, nil
}
