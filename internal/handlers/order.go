package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ilomarket/shop-backend/internal/jwtauth"
	"github.com/ilomarket/shop-backend/internal/logging"
	"github.com/ilomarket/shop-backend/internal/models"
	"github.com/ilomarket/shop-backend/internal/mykafka"
	"github.com/ilomarket/shop-backend/internal/order"
)

type OrderHandler struct {
	Orders   *order.Service
	Producer *mykafka.Producer
}

func (h *OrderHandler) publish(c echo.Context, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "order_events", key, event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	userID, ok := jwtauth.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "token required")
	}

	var req struct {
		UserID string             `json:"user_id"`
		Items  []models.OrderItem `json:"items"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, failure("invalid body"))
	}
	if req.UserID == "" {
		req.UserID = userID
	}

	placed, err := h.Orders.PlaceOrder(ctx, req.UserID, req.Items)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInsufficientStock),
			errors.Is(err, order.ErrStockReduceFailed),
			errors.Is(err, order.ErrValidation):
			l.Warn("create_order_error", "status", 400, "reason", err.Error())
			return c.JSON(http.StatusBadRequest, failure(err.Error()))
		default:
			l.Error("create_order_error", "status", 500, "reason", "internal error", "error", err)
			return c.JSON(http.StatusInternalServerError, failure("Failed to create order"))
		}
	}

	h.publish(c, placed.ID, map[string]any{
		"type":         "order_created",
		"order_id":     placed.ID,
		"user_id":      placed.UserID,
		"total_amount": placed.TotalAmount,
	})

	return c.JSON(http.StatusCreated, success(placed))
}

func (h *OrderHandler) GetMyOrders(c echo.Context) error {
	userID, ok := jwtauth.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "token required")
	}
	return h.respondOrders(c, userID)
}

func (h *OrderHandler) GetOrdersByUser(c echo.Context) error {
	return h.respondOrders(c, c.Param("userId"))
}

func (h *OrderHandler) respondOrders(c echo.Context, userID string) error {
	orders := h.Orders.GetOrdersByUserID(c.Request().Context(), userID)

	return c.JSON(http.StatusOK, envelope{
		"success": true,
		"data":    orders,
		"count":   len(orders),
		"user_id": userID,
	})
}
