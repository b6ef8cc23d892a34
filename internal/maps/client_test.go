package maps

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ilomarket/shop-backend/internal/models"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func fakeResponder(body string) *http.Client {
	return &http.Client{
		Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(body)),
				Header:     make(http.Header),
			}, nil
		}),
	}
}

func testStore() models.Store {
	return models.Store{ID: "1", Name: "TechHub Iloilo", Address: "Diversion Road", City: "Iloilo City", State: "Iloilo", Country: "Philippines"}
}

func TestClient_GeocodeStore_OK(t *testing.T) {
	t.Parallel()

	c := NewClient("test-key")
	c.HTTPClient = fakeResponder(`{
		"status": "OK",
		"results": [{"geometry": {"location": {"lat": 10.71, "lng": 122.56}}, "place_id": "place-123"}]
	}`)

	got := c.GeocodeStore(context.Background(), testStore())
	assert.Equal(t, 10.71, got.Latitude)
	assert.Equal(t, 122.56, got.Longitude)
	assert.Equal(t, "place-123", got.LocationID)
}

func TestClient_GeocodeStore_NoAPIKeyFallsBack(t *testing.T) {
	t.Parallel()

	c := NewClient("")

	got := c.GeocodeStore(context.Background(), testStore())
	assert.Equal(t, fallbackLatitude, got.Latitude)
	assert.Equal(t, fallbackLongitude, got.Longitude)
	assert.Empty(t, got.LocationID)
}

func TestClient_GeocodeStore_ZeroResultsFallsBack(t *testing.T) {
	t.Parallel()

	c := NewClient("test-key")
	c.HTTPClient = fakeResponder(`{"status": "ZERO_RESULTS", "results": []}`)

	got := c.GeocodeStore(context.Background(), testStore())
	assert.Equal(t, fallbackLatitude, got.Latitude)
	assert.Equal(t, fallbackLongitude, got.Longitude)
}

func TestClient_GeocodeStore_TransportErrorFallsBack(t *testing.T) {
	t.Parallel()

	c := NewClient("test-key")
	c.HTTPClient = &http.Client{
		Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
			return nil, io.ErrUnexpectedEOF
		}),
	}

	got := c.GeocodeStore(context.Background(), testStore())
	assert.Equal(t, fallbackLatitude, got.Latitude)
	assert.Equal(t, fallbackLongitude, got.Longitude)
}
