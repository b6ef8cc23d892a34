package order

import (
	"sync"

	"github.com/ilomarket/shop-backend/internal/models"
)

// Ledger is the append-only in-memory collection of placed orders.
type Ledger struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Append stores the order and returns it unchanged.
func (l *Ledger) Append(order models.Order) models.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.orders = append(l.orders, order)
	return order
}

// GetByUserID returns the user's orders in insertion order. An unknown user
// yields an empty slice, never an error.
func (l *Ledger) GetByUserID(userID string) []models.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Order, 0)
	for _, o := range l.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

func (l *Ledger) GetByID(id string) (models.Order, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, o := range l.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}
