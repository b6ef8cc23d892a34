package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ilomarket/shop-backend/internal/catalog"
	"github.com/ilomarket/shop-backend/internal/logging"
)

type ProductHandler struct {
	Catalog *catalog.Service
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func parsePriceParam(s string) (*float64, bool) {
	if s == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return nil, false
	}
	return &v, true
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	minPrice, ok := parsePriceParam(c.QueryParam("min_price"))
	if !ok {
		l.Warn("get_products_error", "status", 400, "reason", "invalid min_price")
		return c.JSON(http.StatusBadRequest, failure("Min price must be a valid number"))
	}
	maxPrice, ok := parsePriceParam(c.QueryParam("max_price"))
	if !ok {
		l.Warn("get_products_error", "status", 400, "reason", "invalid max_price")
		return c.JSON(http.StatusBadRequest, failure("Max price must be a valid number"))
	}
	if minPrice != nil && maxPrice != nil && *minPrice > *maxPrice {
		l.Warn("get_products_error", "status", 400, "reason", "min_price > max_price")
		return c.JSON(http.StatusBadRequest, failure("Min price must be less than or equal to max price"))
	}

	result := h.Catalog.GetFiltered(catalog.ProductFilter{
		StoreID:  c.QueryParam("store_id"),
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Brand:    c.QueryParam("brand"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Limit:    parseIntDefault(c.QueryParam("limit"), 10),
		Offset:   parseIntDefault(c.QueryParam("offset"), 0),
	})

	return c.JSON(http.StatusOK, envelope{
		"success": true,
		"data":    result.Products,
		"count":   result.TotalCount,
		"limit":   result.Limit,
		"offset":  result.Offset,
		"hasMore": result.HasMore,
	})
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id := c.Param("id")
	product, ok := h.Catalog.GetByID(id)
	if !ok {
		l.Warn("get_product_error", "status", 404, "product_id", id)
		return c.JSON(http.StatusNotFound, failure("Product not found"))
	}

	return c.JSON(http.StatusOK, success(product))
}

func (h *ProductHandler) GetProductsByStore(c echo.Context) error {
	storeID := c.Param("storeId")
	products := h.Catalog.GetByStoreID(storeID)

	return c.JSON(http.StatusOK, envelope{
		"success":  true,
		"data":     products,
		"count":    len(products),
		"store_id": storeID,
	})
}
