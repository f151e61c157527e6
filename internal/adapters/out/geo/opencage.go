// Package geo implements the Geocoder port against the OpenCage forward
// geocoding API. Every call is bounded by both the http.Client timeout and
// the caller's context deadline so a slow upstream never stalls matching.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/core/ports"
	"mediorder/internal/pkg/errs"
)

const defaultBaseURL = "https://api.opencagedata.com/geocode/v1/json"

// OpenCageGeocoder resolves free-form queries (addresses, pincodes) into
// coordinates via the OpenCage API.
type OpenCageGeocoder struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewOpenCageGeocoder creates a geocoder client.
// An empty baseURL selects the public OpenCage endpoint; tests point it at a
// local server. The timeout caps every request regardless of caller context.
func NewOpenCageGeocoder(baseURL string, apiKey string, timeout time.Duration) (*OpenCageGeocoder, error) {
	if apiKey == "" {
		return nil, errs.NewValueIsRequiredError("apiKey")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &OpenCageGeocoder{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

type openCageResponse struct {
	Results []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves the query to a coordinate pair.
// Returns ports.ErrLocationNotResolved when the API answers successfully but
// finds no match; transport and non-200 failures come back as plain errors.
func (g *OpenCageGeocoder) Geocode(ctx context.Context, query string) (kernel.GeoPoint, error) {
	if query == "" {
		return kernel.GeoPoint{}, errs.NewValueIsRequiredError("query")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("key", g.apiKey)
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return kernel.GeoPoint{}, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return kernel.GeoPoint{}, fmt.Errorf("geocoding request failed: status %d", resp.StatusCode)
	}

	var payload openCageResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("geocoding response malformed: %w", err)
	}

	if len(payload.Results) == 0 {
		return kernel.GeoPoint{}, fmt.Errorf("%w: %q", ports.ErrLocationNotResolved, query)
	}

	geometry := payload.Results[0].Geometry
	return kernel.NewGeoPoint(geometry.Lat, geometry.Lng)
}
