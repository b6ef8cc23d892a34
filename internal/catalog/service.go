package catalog

import (
	"fmt"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/ilomarket/shop-backend/internal/models"
)

// cacheTTL is how long read results stay valid. Entries expire by age only;
// stock writes do not evict them. Callers that need fresh stock must use
// ValidateStock/ReduceStock, which always hit the live store.
const cacheTTL = 15 * time.Minute

type ProductFilter struct {
	StoreID  string
	Category string
	Search   string
	Brand    string
	MinPrice *float64
	MaxPrice *float64
	Limit    int
	Offset   int
}

type FilteredProducts struct {
	Products   []models.Product
	TotalCount int
	Limit      int
	Offset     int
	HasMore    bool
}

// Service owns catalog initialization, the short-lived read cache and the
// stock primitives order placement depends on.
type Service struct {
	store    *Store
	cache    *gocache.Cache
	initOnce sync.Once
}

func NewService(store *Store) *Service {
	return &Service{
		store: store,
		cache: gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// Initialize seeds the store from the built-in product set at most once per
// process, also under concurrent first calls.
func (s *Service) Initialize() {
	s.initOnce.Do(func() {
		products := seedProducts()
		now := time.Now()
		for i := range products {
			products[i].CreatedAt = now
		}
		s.store.SetAll(products)
	})
}

func (s *Service) GetAll() []models.Product {
	const cacheKey = "all_products"
	if v, ok := s.cache.Get(cacheKey); ok {
		return v.([]models.Product)
	}

	s.Initialize()
	products := s.store.GetAll()
	s.cache.SetDefault(cacheKey, products)
	return products
}

func (s *Service) GetByID(id string) (models.Product, bool) {
	s.Initialize()
	return s.store.GetByID(id)
}

func (s *Service) GetByStoreID(storeID string) []models.Product {
	return s.cachedRead("store_products_"+storeID, func() []models.Product {
		return s.store.GetByStoreID(storeID)
	})
}

func (s *Service) GetByCategory(category string) []models.Product {
	return s.cachedRead("category_products_"+strings.ToLower(category), func() []models.Product {
		return s.store.GetByCategory(category)
	})
}

func (s *Service) GetByBrand(brand string) []models.Product {
	return s.cachedRead("brand_products_"+strings.ToLower(brand), func() []models.Product {
		return s.store.GetByBrand(brand)
	})
}

// GetFiltered applies, in order, store id and category equality, substring
// search across name+description, brand equality and inclusive price bounds,
// then paginates. TotalCount is the match count before pagination.
func (s *Service) GetFiltered(f ProductFilter) FilteredProducts {
	if f.Limit <= 0 {
		f.Limit = 10
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	cacheKey := filterCacheKey(f)
	if v, ok := s.cache.Get(cacheKey); ok {
		return v.(FilteredProducts)
	}

	s.Initialize()
	matched := make([]models.Product, 0)
	for _, p := range s.store.GetAll() {
		if f.StoreID != "" && p.StoreID != f.StoreID {
			continue
		}
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.Search != "" {
			q := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(p.Name), q) &&
				!strings.Contains(strings.ToLower(p.Description), q) {
				continue
			}
		}
		if f.Brand != "" && !strings.EqualFold(p.Brand, f.Brand) {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		matched = append(matched, p)
	}

	total := len(matched)
	start := f.Offset
	if start > total {
		start = total
	}
	end := start + f.Limit
	if end > total {
		end = total
	}

	result := FilteredProducts{
		Products:   matched[start:end],
		TotalCount: total,
		Limit:      f.Limit,
		Offset:     f.Offset,
		HasMore:    f.Offset+f.Limit < total,
	}
	s.cache.SetDefault(cacheKey, result)
	return result
}

// ValidateStock reports whether the product exists with enough stock. Never
// served from cache.
func (s *Service) ValidateStock(productID string, quantity int) bool {
	s.Initialize()
	return s.store.CheckAvailability(productID, quantity)
}

// ReduceStock atomically reserves stock for one product.
func (s *Service) ReduceStock(productID string, quantity int) bool {
	s.Initialize()
	return s.store.ReduceStock(productID, quantity)
}

// RestoreStock returns previously reserved stock to a product.
func (s *Service) RestoreStock(productID string, quantity int) bool {
	s.Initialize()
	return s.store.RestoreStock(productID, quantity)
}

// UpdateStock sets a product's stock to a non-negative level.
func (s *Service) UpdateStock(productID string, stock int) bool {
	s.Initialize()
	return s.store.UpdateStock(productID, stock)
}

func (s *Service) ClearCache() {
	s.cache.Flush()
}

func (s *Service) cachedRead(key string, read func() []models.Product) []models.Product {
	if v, ok := s.cache.Get(key); ok {
		return v.([]models.Product)
	}

	s.Initialize()
	products := read()
	s.cache.SetDefault(key, products)
	return products
}

func filterCacheKey(f ProductFilter) string {
	minPrice, maxPrice := "", ""
	if f.MinPrice != nil {
		minPrice = fmt.Sprintf("%g", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		maxPrice = fmt.Sprintf("%g", *f.MaxPrice)
	}
	return fmt.Sprintf("filtered_%s_%s_%s_%s_%s_%s_%d_%d",
		f.StoreID, strings.ToLower(f.Category), strings.ToLower(f.Search),
		strings.ToLower(f.Brand), minPrice, maxPrice, f.Limit, f.Offset)
}
