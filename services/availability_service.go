package services

import (
	"context"
	"log"

	"maxcleaners/config"
	"maxcleaners/geo"
	"maxcleaners/models"
)

const (
	addressServiceableMsg   = "Great news! Your address is within our service area"
	addressUnserviceableMsg = "Sorry, your address is outside our service area"
)

type AvailabilityService struct {
	geocoder    *geo.Geocoder
	store       geo.Coordinate
	radiusMiles float64
}

func NewAvailabilityService() *AvailabilityService {
	return &AvailabilityService{
		geocoder: geo.NewGeocoder(config.AppConfig.GeocoderBaseURL),
		store: geo.Coordinate{
			Lat: config.AppConfig.StoreLat,
			Lon: config.AppConfig.StoreLon,
		},
		radiusMiles: config.AppConfig.ServiceRadiusMiles,
	}
}

// CheckAddress resolves an address and decides serviceability. It never
// fails: geocoder trouble degrades to a non-serviceable result with an
// explanatory message.
func (s *AvailabilityService) CheckAddress(ctx context.Context, address string) models.AvailabilityResponse {
	candidate, matched, err := s.geocoder.Locate(ctx, address)
	if err != nil {
		log.Printf("Geocode failed for address %q: %v", address, err)
		return models.AvailabilityResponse{
			ServiceStatus: false,
			Message:       "Error: unable to verify address, please try again later",
		}
	}
	if !matched {
		return models.AvailabilityResponse{
			ServiceStatus: false,
			Message:       addressUnserviceableMsg,
		}
	}

	if geo.WithinRadius(s.store, candidate, s.radiusMiles) {
		return models.AvailabilityResponse{
			ServiceStatus: true,
			Message:       addressServiceableMsg,
		}
	}

	log.Printf("Address %q resolved %.2f miles from store, outside %.1f mile radius",
		address, geo.DistanceMiles(s.store, candidate), s.radiusMiles)
	return models.AvailabilityResponse{
		ServiceStatus: false,
		Message:       addressUnserviceableMsg,
	}
}
