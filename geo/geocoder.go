package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	geocoderPath      = "/geocoder/locations/onelineaddress"
	geocoderBenchmark = "Public_AR_Current"
	geocoderFormat    = "json"
	geocoderTimeout   = 10 * time.Second
)

// Geocoder resolves a free-text address against the US Census geocoding
// service.
type Geocoder struct {
	baseURL    string
	httpClient *http.Client
}

func NewGeocoder(baseURL string) *Geocoder {
	return &Geocoder{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: geocoderTimeout,
		},
	}
}

// geocodeResponse mirrors the slice of the census response we care about:
// result.addressMatches[].coordinates, where x is longitude and y latitude.
type geocodeResponse struct {
	Result struct {
		AddressMatches []struct {
			Coordinates struct {
				X float64 `json:"x"`
				Y float64 `json:"y"`
			} `json:"coordinates"`
		} `json:"addressMatches"`
	} `json:"result"`
}

// Locate issues a single geocode request for the given address. A response
// with no candidate match returns ok=false and no error; only transport or
// decode failures return an error.
func (g *Geocoder) Locate(ctx context.Context, address string) (Coordinate, bool, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("benchmark", geocoderBenchmark)
	params.Set("format", geocoderFormat)

	reqURL := g.baseURL + geocoderPath + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Coordinate{}, false, err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return Coordinate{}, false, fmt.Errorf("geocoder request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coordinate{}, false, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Coordinate{}, false, fmt.Errorf("failed to decode geocoder response: %w", err)
	}

	if len(decoded.Result.AddressMatches) == 0 {
		return Coordinate{}, false, nil
	}

	coords := decoded.Result.AddressMatches[0].Coordinates
	candidate := Coordinate{Lat: coords.Y, Lon: coords.X}
	if candidate.IsZero() {
		return Coordinate{}, false, nil
	}

	return candidate, true, nil
}
