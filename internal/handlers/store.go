package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ilomarket/shop-backend/internal/logging"
	"github.com/ilomarket/shop-backend/internal/stores"
)

type StoreHandler struct {
	Stores *stores.Service
}

func (h *StoreHandler) GetStores(c echo.Context) error {
	all := h.Stores.GetAll(c.Request().Context())
	return c.JSON(http.StatusOK, success(all))
}

func (h *StoreHandler) GetStore(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "store.get_store")

	id := c.Param("id")
	store, ok := h.Stores.GetByID(ctx, id)
	if !ok {
		l.Warn("get_store_error", "status", 404, "store_id", id)
		return c.JSON(http.StatusNotFound, failure("Store not found"))
	}

	return c.JSON(http.StatusOK, success(store))
}
