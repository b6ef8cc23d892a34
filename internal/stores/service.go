package stores

import (
	"context"
	"sync"
	"time"

	"github.com/ilomarket/shop-backend/internal/maps"
	"github.com/ilomarket/shop-backend/internal/models"
)

// seedStores is the fixed store directory. Coordinates are filled in by the
// geocoder during Initialize.
func seedStores() []models.Store {
	return []models.Store{
		{ID: "1", Name: "TechHub Iloilo", Address: "Diversion Road, Mandurriao", City: "Iloilo City", State: "Iloilo", Country: "Philippines"},
		{ID: "2", Name: "Digital World Superstore", Address: "SM City Iloilo, Benigno Aquino Ave", City: "Iloilo City", State: "Iloilo", Country: "Philippines"},
		{ID: "3", Name: "Gadget Zone Plus", Address: "Robinsons Place Iloilo, Quezon St", City: "Iloilo City", State: "Iloilo", Country: "Philippines"},
		{ID: "4", Name: "PC Central Iloilo", Address: "Iznart Street, City Proper", City: "Iloilo City", State: "Iloilo", Country: "Philippines"},
		{ID: "5", Name: "Mobile Tech Express", Address: "Festive Walk Mall, Megaworld Blvd", City: "Iloilo City", State: "Iloilo", Country: "Philippines"},
	}
}

// Service serves the store directory, seeded once per process with
// geocode-enriched records.
type Service struct {
	Maps *maps.Client

	mu       sync.RWMutex
	stores   []models.Store
	initOnce sync.Once
}

func NewService(mapsClient *maps.Client) *Service {
	return &Service{Maps: mapsClient}
}

func (s *Service) Initialize(ctx context.Context) {
	s.initOnce.Do(func() {
		seeded := seedStores()
		now := time.Now()

		enhanced := make([]models.Store, 0, len(seeded))
		for _, store := range seeded {
			store = s.Maps.GeocodeStore(ctx, store)
			store.CreatedAt = now
			enhanced = append(enhanced, store)
		}

		s.mu.Lock()
		s.stores = enhanced
		s.mu.Unlock()
	})
}

func (s *Service) GetAll(ctx context.Context) []models.Store {
	s.Initialize(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Store, len(s.stores))
	copy(out, s.stores)
	return out
}

func (s *Service) GetByID(ctx context.Context, id string) (models.Store, bool) {
	s.Initialize(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, store := range s.stores {
		if store.ID == id {
			return store, true
		}
	}
	return models.Store{}, false
}
