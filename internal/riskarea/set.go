package riskarea

import (
	"errors"
	"fmt"

	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/models"
)

// ErrDuplicateID - в наборе уже есть геозона с таким идентификатором
var ErrDuplicateID = errors.New("duplicate risk area id")

// Set - неизменяемый упорядоченный набор геозон с уникальными идентификаторами.
// Изменения возвращают новый набор.
type Set struct {
	areas []models.RiskArea
	index map[string]int
}

// EmptySet возвращает пустой набор. Пустой набор допустим: ни один маршрут не будет опасным.
func EmptySet() *Set {
	return &Set{index: map[string]int{}}
}

// NewSet создает набор из геозон, отклоняя повторяющиеся идентификаторы
func NewSet(areas ...models.RiskArea) (*Set, error) {
	s := &Set{
		areas: make([]models.RiskArea, 0, len(areas)),
		index: make(map[string]int, len(areas)),
	}
	for _, a := range areas {
		if _, ok := s.index[a.ID]; ok {
			return nil, fmt.Errorf("riskarea: %q: %w", a.ID, ErrDuplicateID)
		}
		s.index[a.ID] = len(s.areas)
		s.areas = append(s.areas, a)
	}
	return s, nil
}

// Len возвращает количество геозон
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.areas)
}

// Areas возвращает копию списка геозон
func (s *Set) Areas() []models.RiskArea {
	if s == nil {
		return []models.RiskArea{}
	}
	out := make([]models.RiskArea, len(s.areas))
	copy(out, s.areas)
	return out
}

// Get ищет геозону по идентификатору
func (s *Set) Get(id string) (models.RiskArea, bool) {
	if s == nil {
		return models.RiskArea{}, false
	}
	i, ok := s.index[id]
	if !ok {
		return models.RiskArea{}, false
	}
	return s.areas[i], true
}

// With возвращает новый набор с добавленной в конец геозоной
func (s *Set) With(areas ...models.RiskArea) (*Set, error) {
	return NewSet(append(s.Areas(), areas...)...)
}

// Without возвращает новый набор без геозоны id и признак того, что она была удалена
func (s *Set) Without(id string) (*Set, bool) {
	if _, ok := s.Get(id); !ok {
		return s, false
	}
	kept := make([]models.RiskArea, 0, s.Len()-1)
	for _, a := range s.areas {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	out, _ := NewSet(kept...)
	return out, true
}

// Rings возвращает полигоны всех геозон в порядке набора
func (s *Set) Rings() []geo.Ring {
	rings := make([]geo.Ring, 0, s.Len())
	for _, a := range s.Areas() {
		rings = append(rings, a.Polygon)
	}
	return rings
}
