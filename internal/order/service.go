package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ilomarket/shop-backend/internal/catalog"
	"github.com/ilomarket/shop-backend/internal/logging"
	"github.com/ilomarket/shop-backend/internal/models"
)

var (
	ErrValidation        = errors.New("validation")             // 400
	ErrInsufficientStock = errors.New("insufficient stock")     // 400
	ErrStockReduceFailed = errors.New("failed to reduce stock") // 400
)

// EnrichedOrderItem is a line item with the current product record attached.
// Product is nil when the referenced product can no longer be resolved.
type EnrichedOrderItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     float64         `json:"price"`
	Product   *models.Product `json:"product,omitempty"`
}

type EnrichedOrder struct {
	ID          string              `json:"id"`
	UserID      string              `json:"user_id"`
	Items       []EnrichedOrderItem `json:"items"`
	TotalAmount float64             `json:"total_amount"`
	CreatedAt   time.Time           `json:"created_at"`
}

// Service implements the stock-safe order placement protocol on top of the
// catalog service and the ledger.
type Service struct {
	Catalog *catalog.Service
	Ledger  *Ledger
}

// PlaceOrder validates stock for every line item, reserves it, computes the
// total from the submitted prices and persists the order. Validation failures
// leave the catalog untouched; a reservation failure rolls back stock already
// taken for earlier items of the same order before returning.
func (s *Service) PlaceOrder(ctx context.Context, userID string, items []models.OrderItem) (models.Order, error) {
	l := logging.FromContext(ctx).With("service", "order.place_order")

	if userID == "" {
		return models.Order{}, fmt.Errorf("%w: user_id required", ErrValidation)
	}
	if len(items) == 0 {
		return models.Order{}, fmt.Errorf("%w: items required", ErrValidation)
	}
	for i := range items {
		if items[i].ProductID == "" {
			return models.Order{}, fmt.Errorf("%w: product_id required", ErrValidation)
		}
		if items[i].Quantity <= 0 {
			return models.Order{}, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
		}
		if items[i].Price < 0 {
			return models.Order{}, fmt.Errorf("%w: price must be >= 0", ErrValidation)
		}
	}

	// Validate every item before touching stock, so an order that is known
	// upfront to be unsatisfiable never leaves a partial reservation.
	for i := range items {
		if !s.Catalog.ValidateStock(items[i].ProductID, items[i].Quantity) {
			l.Warn("place_order_rejected", "reason", "insufficient stock", "product_id", items[i].ProductID)
			return models.Order{}, fmt.Errorf("%w for %s", ErrInsufficientStock, s.productLabel(items[i].ProductID))
		}
	}

	for i := range items {
		if !s.Catalog.ReduceStock(items[i].ProductID, items[i].Quantity) {
			// A stock change raced in between validation and here. Give back
			// what this order already took.
			for j := 0; j < i; j++ {
				s.Catalog.RestoreStock(items[j].ProductID, items[j].Quantity)
			}
			l.Warn("place_order_rejected", "reason", "stock reduce failed", "product_id", items[i].ProductID)
			return models.Order{}, fmt.Errorf("%w for %s", ErrStockReduceFailed, s.productLabel(items[i].ProductID))
		}
	}

	var total float64
	for i := range items {
		total += items[i].Price * float64(items[i].Quantity)
	}

	order := models.Order{
		ID:          uuid.NewString(),
		UserID:      userID,
		Items:       items,
		TotalAmount: total,
		CreatedAt:   time.Now(),
	}

	stored := s.Ledger.Append(order)
	l.Info("place_order_success", "order_id", stored.ID, "user_id", userID, "total_amount", total)
	return stored, nil
}

// GetOrdersByUserID fetches the user's orders and enriches each line item
// with the current product record. Enrichment is best effort: an item whose
// product cannot be resolved keeps a nil attachment.
func (s *Service) GetOrdersByUserID(ctx context.Context, userID string) []EnrichedOrder {
	orders := s.Ledger.GetByUserID(userID)

	out := make([]EnrichedOrder, 0, len(orders))
	for _, o := range orders {
		enriched := EnrichedOrder{
			ID:          o.ID,
			UserID:      o.UserID,
			TotalAmount: o.TotalAmount,
			CreatedAt:   o.CreatedAt,
			Items:       make([]EnrichedOrderItem, 0, len(o.Items)),
		}
		for _, item := range o.Items {
			ei := EnrichedOrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			}
			if p, ok := s.Catalog.GetByID(item.ProductID); ok {
				ei.Product = &p
			}
			enriched.Items = append(enriched.Items, ei)
		}
		out = append(out, enriched)
	}
	return out
}

// GetOrderByID looks up a single order in the ledger.
func (s *Service) GetOrderByID(ctx context.Context, id string) (models.Order, bool) {
	return s.Ledger.GetByID(id)
}

func (s *Service) productLabel(productID string) string {
	if p, ok := s.Catalog.GetByID(productID); ok {
		return p.Name
	}
	return "Product " + productID
}
