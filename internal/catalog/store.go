package catalog

import (
	"strings"
	"sync"

	"github.com/ilomarket/shop-backend/internal/models"
)

// Store holds the live product set in memory. The slice preserves insertion
// order for listings; the map serves id lookups. All stock mutations happen
// under the write lock, so the check-then-decrement in ReduceStock is atomic
// per product.
type Store struct {
	mu       sync.RWMutex
	products []models.Product
	index    map[string]int
}

func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// SetAll replaces the entire held set. Duplicate ids follow last-write-wins:
// the later record overwrites the earlier one in place.
func (s *Store) SetAll(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = make([]models.Product, 0, len(products))
	s.index = make(map[string]int, len(products))
	for _, p := range products {
		if i, ok := s.index[p.ID]; ok {
			s.products[i] = p
			continue
		}
		s.index[p.ID] = len(s.products)
		s.products = append(s.products, p)
	}
}

func (s *Store) GetAll() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) GetByID(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return models.Product{}, false
	}
	return s.products[i], true
}

func (s *Store) GetByStoreID(storeID string) []models.Product {
	return s.filter(func(p models.Product) bool {
		return p.StoreID == storeID
	})
}

func (s *Store) GetByCategory(category string) []models.Product {
	return s.filter(func(p models.Product) bool {
		return strings.EqualFold(p.Category, category)
	})
}

func (s *Store) GetByBrand(brand string) []models.Product {
	return s.filter(func(p models.Product) bool {
		return strings.EqualFold(p.Brand, brand)
	})
}

func (s *Store) filter(keep func(models.Product) bool) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0)
	for _, p := range s.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// ReduceStock decrements stock by quantity if the product exists and has at
// least that much. Returns false and leaves stock unchanged otherwise.
func (s *Store) ReduceStock(id string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok || s.products[i].Stock < quantity {
		return false
	}
	s.products[i].Stock -= quantity
	return true
}

// RestoreStock adds quantity back to a product's stock. Used to compensate
// reservations when a later item of the same order fails to reserve.
func (s *Store) RestoreStock(id string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.products[i].Stock += quantity
	return true
}

// UpdateStock sets stock to the given non-negative value.
func (s *Store) UpdateStock(id string, stock int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok || stock < 0 {
		return false
	}
	s.products[i].Stock = stock
	return true
}

// CheckAvailability reports whether the product exists with stock >= quantity.
func (s *Store) CheckAvailability(id string, quantity int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	return ok && s.products[i].Stock >= quantity
}
