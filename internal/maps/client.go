package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ilomarket/shop-backend/internal/logging"
	"github.com/ilomarket/shop-backend/internal/models"
)

const geocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"

// Fallback coordinates: Iloilo City proper. Used whenever the geocoding
// lookup cannot produce a result.
const (
	fallbackLatitude  = 10.7202
	fallbackLongitude = 122.5621
)

type Client struct {
	APIKey     string
	HTTPClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		PlaceID string `json:"place_id"`
	} `json:"results"`
}

// GeocodeStore resolves a store's address to coordinates and a place id.
// Lookup failures of any kind degrade to the Iloilo fallback coordinates;
// GeocodeStore never returns an error for a store it cannot resolve.
func (c *Client) GeocodeStore(ctx context.Context, store models.Store) models.Store {
	l := logging.FromContext(ctx).With("client", "maps.geocode_store")

	if c.APIKey == "" {
		return withFallback(store)
	}

	address := fmt.Sprintf("%s, %s, %s, %s", store.Address, store.City, store.State, store.Country)
	u := fmt.Sprintf("%s?address=%s&key=%s", geocodeURL, url.QueryEscape(address), url.QueryEscape(c.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		l.Warn("geocode_failed", "store_id", store.ID, "error", err)
		return withFallback(store)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		l.Warn("geocode_failed", "store_id", store.ID, "error", err)
		return withFallback(store)
	}
	defer resp.Body.Close()

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		l.Warn("geocode_failed", "store_id", store.ID, "error", err)
		return withFallback(store)
	}

	if body.Status != "OK" || len(body.Results) == 0 {
		l.Warn("geocode_no_result", "store_id", store.ID, "status", body.Status)
		return withFallback(store)
	}

	result := body.Results[0]
	store.Latitude = result.Geometry.Location.Lat
	store.Longitude = result.Geometry.Location.Lng
	store.LocationID = result.PlaceID
	return store
}

func withFallback(store models.Store) models.Store {
	store.Latitude = fallbackLatitude
	store.Longitude = fallbackLongitude
	store.LocationID = ""
	return store
}
