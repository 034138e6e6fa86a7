package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"maxcleaners/geo"

	"github.com/stretchr/testify/assert"
)

func newTestAvailabilityService(t *testing.T, handler http.HandlerFunc) *AvailabilityService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &AvailabilityService{
		geocoder:    geo.NewGeocoder(srv.URL),
		store:       geo.Coordinate{Lat: 40.7128, Lon: -74.0060},
		radiusMiles: 10,
	}
}

func TestCheckAddress(t *testing.T) {
	t.Run("address inside radius is serviceable", func(t *testing.T) {
		s := newTestAvailabilityService(t, func(w http.ResponseWriter, r *http.Request) {
			// Hoboken, a couple of miles from the store.
			w.Write([]byte(`{"result": {"addressMatches": [{"coordinates": {"x": -74.0324, "y": 40.7440}}]}}`))
		})

		result := s.CheckAddress(context.Background(), "1 Main St, Hoboken, NJ")
		assert.True(t, result.ServiceStatus)
		assert.Equal(t, addressServiceableMsg, result.Message)
	})

	t.Run("address outside radius is not serviceable", func(t *testing.T) {
		s := newTestAvailabilityService(t, func(w http.ResponseWriter, r *http.Request) {
			// Mountain View, far outside a 10 mile radius.
			w.Write([]byte(`{"result": {"addressMatches": [{"coordinates": {"x": -122.0856, "y": 37.4224}}]}}`))
		})

		result := s.CheckAddress(context.Background(), "1600 Amphitheatre Pkwy, Mountain View, CA")
		assert.False(t, result.ServiceStatus)
		assert.Equal(t, addressUnserviceableMsg, result.Message)
	})

	t.Run("unmatched address is not serviceable", func(t *testing.T) {
		s := newTestAvailabilityService(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"result": {"addressMatches": []}}`))
		})

		result := s.CheckAddress(context.Background(), "gibberish")
		assert.False(t, result.ServiceStatus)
	})

	t.Run("geocoder failure degrades to not serviceable", func(t *testing.T) {
		s := newTestAvailabilityService(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		result := s.CheckAddress(context.Background(), "1 Main St")
		assert.False(t, result.ServiceStatus)
		assert.Contains(t, result.Message, "Error")
	})
}
