package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocoderLocate(t *testing.T) {
	t.Run("extracts first candidate coordinate", func(t *testing.T) {
		var gotQuery map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = map[string]string{
				"address":   r.URL.Query().Get("address"),
				"benchmark": r.URL.Query().Get("benchmark"),
				"format":    r.URL.Query().Get("format"),
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"result": {
					"addressMatches": [
						{"coordinates": {"x": -122.0856, "y": 37.4224}},
						{"coordinates": {"x": -121.0, "y": 36.0}}
					]
				}
			}`))
		}))
		defer srv.Close()

		g := NewGeocoder(srv.URL)
		coord, ok, err := g.Locate(context.Background(), "1600 Amphitheatre Pkwy, Mountain View, CA")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.InDelta(t, 37.4224, coord.Lat, 1e-9)
		assert.InDelta(t, -122.0856, coord.Lon, 1e-9)

		assert.Equal(t, "1600 Amphitheatre Pkwy, Mountain View, CA", gotQuery["address"])
		assert.Equal(t, "Public_AR_Current", gotQuery["benchmark"])
		assert.Equal(t, "json", gotQuery["format"])
	})

	t.Run("no match is not an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"result": {"addressMatches": []}}`))
		}))
		defer srv.Close()

		g := NewGeocoder(srv.URL)
		_, ok, err := g.Locate(context.Background(), "nowhere at all")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("zero coordinate counts as no match", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"result": {"addressMatches": [{"coordinates": {"x": 0, "y": 0}}]}}`))
		}))
		defer srv.Close()

		g := NewGeocoder(srv.URL)
		_, ok, err := g.Locate(context.Background(), "null island")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("server error is a transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		g := NewGeocoder(srv.URL)
		_, _, err := g.Locate(context.Background(), "some address")
		assert.Error(t, err)
	})

	t.Run("malformed body is a failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		g := NewGeocoder(srv.URL)
		_, _, err := g.Locate(context.Background(), "some address")
		assert.Error(t, err)
	})

	t.Run("unreachable host is a failure", func(t *testing.T) {
		g := NewGeocoder("http://127.0.0.1:1")
		_, _, err := g.Locate(context.Background(), "some address")
		assert.Error(t, err)
	})
}
