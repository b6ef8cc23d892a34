package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilomarket/shop-backend/internal/catalog"
	"github.com/ilomarket/shop-backend/internal/models"
)

func newTestService(products []models.Product) (*Service, *catalog.Store) {
	store := catalog.NewStore()
	catalogSvc := catalog.NewService(store)
	catalogSvc.Initialize()
	store.SetAll(products)

	return &Service{Catalog: catalogSvc, Ledger: NewLedger()}, store
}

func TestService_PlaceOrder_Success(t *testing.T) {
	t.Parallel()

	svc, store := newTestService([]models.Product{
		{ID: "P1", Name: "Keyboard", Price: 100, Stock: 5},
	})

	placed, err := svc.PlaceOrder(context.Background(), "u1", []models.OrderItem{
		{ProductID: "P1", Quantity: 3, Price: 100},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, placed.ID)
	assert.Equal(t, "u1", placed.UserID)
	assert.Equal(t, float64(300), placed.TotalAmount)
	assert.False(t, placed.CreatedAt.IsZero())

	p, _ := store.GetByID("P1")
	assert.Equal(t, 2, p.Stock)

	ledger := svc.Ledger.GetByUserID("u1")
	require.Len(t, ledger, 1)
	assert.Equal(t, placed.ID, ledger[0].ID)
}

func TestService_PlaceOrder_MultiItemTotal(t *testing.T) {
	t.Parallel()

	svc, store := newTestService([]models.Product{
		{ID: "P1", Name: "Keyboard", Price: 999, Stock: 10},
		{ID: "P2", Name: "Mouse", Price: 899, Stock: 10},
	})

	// caller-supplied prices differ from the catalog's on purpose
	placed, err := svc.PlaceOrder(context.Background(), "u1", []models.OrderItem{
		{ProductID: "P1", Quantity: 1, Price: 500},
		{ProductID: "P2", Quantity: 2, Price: 250},
	})
	require.NoError(t, err)
	assert.Equal(t, float64(1000), placed.TotalAmount)

	p1, _ := store.GetByID("P1")
	p2, _ := store.GetByID("P2")
	assert.Equal(t, 9, p1.Stock)
	assert.Equal(t, 8, p2.Stock)
}

func TestService_PlaceOrder_InsufficientStockLeavesCatalogUntouched(t *testing.T) {
	t.Parallel()

	svc, store := newTestService([]models.Product{
		{ID: "P1", Name: "Keyboard", Price: 100, Stock: 5},
		{ID: "P2", Name: "Mouse", Price: 50, Stock: 1},
	})

	_, err := svc.PlaceOrder(context.Background(), "u1", []models.OrderItem{
		{ProductID: "P1", Quantity: 2, Price: 100},
		{ProductID: "P2", Quantity: 2, Price: 50},
	})
	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.EqualError(t, err, "insufficient stock for Mouse")

	// full abort: the item that validated fine was not reserved either
	p1, _ := store.GetByID("P1")
	p2, _ := store.GetByID("P2")
	assert.Equal(t, 5, p1.Stock)
	assert.Equal(t, 1, p2.Stock)
	assert.Empty(t, svc.Ledger.GetByUserID("u1"))
}

func TestService_PlaceOrder_UnknownProductUsesFallbackLabel(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService([]models.Product{
		{ID: "P1", Name: "Keyboard", Price: 100, Stock: 5},
	})

	_, err := svc.PlaceOrder(context.Background(), "u1", []models.OrderItem{
		{ProductID: "P404", Quantity: 1, Price: 10},
	})
	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.EqualError(t, err, "insufficient stock for Product P404")
}

func TestService_PlaceOrder_ReserveFailureRollsBackEarlierItems(t *testing.T) {
	t.Parallel()

	svc, store := newTestService([]models.Product{
		{ID: "P1", Name: "Keyboard", Price: 100, Stock: 3},
	})

	// Both lines pass validation independently (2 <= 3), but reserving the
	// second exceeds what is left, which is exactly the mid-phase failure.
	_, err := svc.PlaceOrder(context.Background(), "u1", []models.OrderItem{
		{ProductID: "P1", Quantity: 2, Price: 100},
		{ProductID: "P1", Quantity: 2, Price: 100},
	})
	require.ErrorIs(t, err, ErrStockReduceFailed)
	assert.EqualError(t, err, "failed to reduce stock for Keyboard")

	// the first line's reservation was compensated
	p, _ := store.GetByID("P1")
	assert.Equal(t, 3, p.Stock)
	assert.Empty(t, svc.Ledger.GetByUserID("u1"))
}

func TestService_PlaceOrder_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService([]models.Product{
		{ID: "P1", Name: "Keyboard", Price: 100, Stock: 5},
	})
	ctx := context.Background()

	tests := []struct {
		name   string
		userID string
		items  []models.OrderItem
	}{
		{name: "empty user id", userID: "", items: []models.OrderItem{{ProductID: "P1", Quantity: 1, Price: 1}}},
		{name: "no items", userID: "u1", items: nil},
		{name: "missing product id", userID: "u1", items: []models.OrderItem{{Quantity: 1, Price: 1}}},
		{name: "zero quantity", userID: "u1", items: []models.OrderItem{{ProductID: "P1", Quantity: 0, Price: 1}}},
		{name: "negative price", userID: "u1", items: []models.OrderItem{{ProductID: "P1", Quantity: 1, Price: -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.PlaceOrder(ctx, tt.userID, tt.items)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestService_GetOrdersByUserID_EnrichesItems(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService([]models.Product{
		{ID: "P1", Name: "Keyboard", Price: 100, Stock: 5},
	})
	ctx := context.Background()

	_, err := svc.PlaceOrder(ctx, "u1", []models.OrderItem{
		{ProductID: "P1", Quantity: 1, Price: 100},
	})
	require.NoError(t, err)

	orders := svc.GetOrdersByUserID(ctx, "u1")
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
	require.NotNil(t, orders[0].Items[0].Product)
	assert.Equal(t, "Keyboard", orders[0].Items[0].Product.Name)
}

func TestService_GetOrdersByUserID_DanglingProductIsNotAnError(t *testing.T) {
	t.Parallel()

	svc, store := newTestService([]models.Product{
		{ID: "P1", Name: "Keyboard", Price: 100, Stock: 5},
		{ID: "P2", Name: "Mouse", Price: 50, Stock: 5},
	})
	ctx := context.Background()

	_, err := svc.PlaceOrder(ctx, "u1", []models.OrderItem{
		{ProductID: "P1", Quantity: 1, Price: 100},
		{ProductID: "P2", Quantity: 1, Price: 50},
	})
	require.NoError(t, err)

	// the product set moves on and P2 disappears
	store.SetAll([]models.Product{{ID: "P1", Name: "Keyboard", Price: 100, Stock: 4}})

	orders := svc.GetOrdersByUserID(ctx, "u1")
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 2)
	assert.NotNil(t, orders[0].Items[0].Product)
	assert.Nil(t, orders[0].Items[1].Product)
}

func TestService_GetOrdersByUserID_UnknownUserEmpty(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService([]models.Product{
		{ID: "P1", Name: "Keyboard", Price: 100, Stock: 5},
	})

	orders := svc.GetOrdersByUserID(context.Background(), "nonexistent")
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}
