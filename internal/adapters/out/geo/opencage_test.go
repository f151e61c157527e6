package geo_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediorder/internal/adapters/out/geo"
	"mediorder/internal/core/ports"
)

func TestOpenCageGeocoder_Geocode(t *testing.T) {
	t.Run("resolves coordinates", func(t *testing.T) {
		var gotQuery, gotKey string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query().Get("q")
			gotKey = r.URL.Query().Get("key")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"results":[{"geometry":{"lat":12.9716,"lng":77.5946}}]}`))
		}))
		defer server.Close()

		geocoder, err := geo.NewOpenCageGeocoder(server.URL, "test-key", time.Second)
		require.NoError(t, err)

		point, err := geocoder.Geocode(t.Context(), "560001")
		require.NoError(t, err)

		assert.Equal(t, "560001", gotQuery)
		assert.Equal(t, "test-key", gotKey)
		assert.InDelta(t, 12.9716, point.Latitude(), 1e-9)
		assert.InDelta(t, 77.5946, point.Longitude(), 1e-9)
	})

	t.Run("empty result set maps to ErrLocationNotResolved", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"results":[]}`))
		}))
		defer server.Close()

		geocoder, err := geo.NewOpenCageGeocoder(server.URL, "test-key", time.Second)
		require.NoError(t, err)

		_, err = geocoder.Geocode(t.Context(), "nowhere")
		require.ErrorIs(t, err, ports.ErrLocationNotResolved)
	})

	t.Run("non-200 status is a transport error, not a resolution miss", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		geocoder, err := geo.NewOpenCageGeocoder(server.URL, "test-key", time.Second)
		require.NoError(t, err)

		_, err = geocoder.Geocode(t.Context(), "560001")
		require.Error(t, err)
		require.NotErrorIs(t, err, ports.ErrLocationNotResolved)
	})

	t.Run("slow upstream is cut off by the client timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(`{"results":[]}`))
		}))
		defer server.Close()

		geocoder, err := geo.NewOpenCageGeocoder(server.URL, "test-key", 20*time.Millisecond)
		require.NoError(t, err)

		start := time.Now()
		_, err = geocoder.Geocode(t.Context(), "560001")
		require.Error(t, err)
		require.Less(t, time.Since(start), 150*time.Millisecond)
	})

	t.Run("missing api key is rejected", func(t *testing.T) {
		_, err := geo.NewOpenCageGeocoder("", "", time.Second)
		require.Error(t, err)
	})

	t.Run("empty query is rejected", func(t *testing.T) {
		geocoder, err := geo.NewOpenCageGeocoder("http://localhost", "test-key", time.Second)
		require.NoError(t, err)

		_, err = geocoder.Geocode(t.Context(), "")
		require.Error(t, err)
	})
}
