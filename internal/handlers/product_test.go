package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilomarket/shop-backend/internal/catalog"
	"github.com/ilomarket/shop-backend/internal/models"
)

func newProductHandler() *ProductHandler {
	svc := catalog.NewService(catalog.NewStore())
	svc.Initialize()
	return &ProductHandler{Catalog: svc}
}

func doGET(t *testing.T, target string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func TestGetProducts_Defaults(t *testing.T) {
	t.Parallel()

	h := newProductHandler()
	rec, c := doGET(t, "/api/v1/products")
	require.NoError(t, h.GetProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool             `json:"success"`
		Data    []models.Product `json:"data"`
		Count   int              `json:"count"`
		Limit   int              `json:"limit"`
		Offset  int              `json:"offset"`
		HasMore bool             `json:"hasMore"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 10)
	assert.Equal(t, 50, resp.Count)
	assert.Equal(t, 10, resp.Limit)
	assert.Equal(t, 0, resp.Offset)
	assert.True(t, resp.HasMore)
}

func TestGetProducts_Filtered(t *testing.T) {
	t.Parallel()

	h := newProductHandler()
	q := url.Values{}
	q.Set("category", "Laptops")
	q.Set("brand", "asus")
	q.Set("limit", "50")
	rec, c := doGET(t, "/api/v1/products?"+q.Encode())
	require.NoError(t, h.GetProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data    []models.Product `json:"data"`
		Count   int              `json:"count"`
		HasMore bool             `json:"hasMore"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 3, resp.Count)
	assert.False(t, resp.HasMore)
	for _, p := range resp.Data {
		assert.Equal(t, "ASUS", p.Brand)
		assert.Equal(t, "Laptops", p.Category)
	}
}

func TestGetProducts_InvalidPriceParams(t *testing.T) {
	t.Parallel()

	h := newProductHandler()

	rec, c := doGET(t, "/api/v1/products?min_price=abc")
	require.NoError(t, h.GetProducts(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, c = doGET(t, "/api/v1/products?min_price=500&max_price=100")
	require.NoError(t, h.GetProducts(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProduct_ByID(t *testing.T) {
	t.Parallel()

	h := newProductHandler()
	rec, c := doGET(t, "/api/v1/products/1")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.GetProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "iPhone 15 Pro", resp.Data.Name)
}

func TestGetProduct_NotFound(t *testing.T) {
	t.Parallel()

	h := newProductHandler()
	rec, c := doGET(t, "/api/v1/products/999")
	c.SetParamNames("id")
	c.SetParamValues("999")
	require.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Product not found", resp.Message)
}

func TestGetProductsByStore(t *testing.T) {
	t.Parallel()

	h := newProductHandler()
	rec, c := doGET(t, "/api/v1/products/store/2")
	c.SetParamNames("storeId")
	c.SetParamValues("2")
	require.NoError(t, h.GetProductsByStore(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data    []models.Product `json:"data"`
		Count   int              `json:"count"`
		StoreID string           `json:"store_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.Count)
	assert.Equal(t, "2", resp.StoreID)
}
