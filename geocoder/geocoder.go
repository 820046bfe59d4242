package geocoder

import (
	"context"
	"errors"
	"fmt"

	"googlemaps.github.io/maps"

	"github.com/linesmerrill/devcamper-api/models"
)

// ErrLocationNotFound is returned when an address resolves to nothing
var ErrLocationNotFound = errors.New("location not found")

// Geocoder resolves a free-form address into a location
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*models.Location, error)
}

// Google geocodes through the Google Maps geocoding api
type Google struct {
	client *maps.Client
}

// NewGoogle returns a Google geocoder authenticated with apiKey
func NewGoogle(apiKey string) (*Google, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Google{client: client}, nil
}

// Geocode returns the best match for address
func (g *Google) Geocode(ctx context.Context, address string) (*models.Location, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, fmt.Errorf("failed to geocode %q: %w", address, err)
	}
	if len(results) == 0 {
		return nil, ErrLocationNotFound
	}
	return LocationFromResult(results[0]), nil
}

// LocationFromResult converts a geocoding result into a GeoJSON point with its
// address parts. State and country use their short codes.
func LocationFromResult(res maps.GeocodingResult) *models.Location {
	loc := models.NewPoint(res.Geometry.Location.Lat, res.Geometry.Location.Lng)
	loc.FormattedAddress = res.FormattedAddress

	var number, route string
	for _, c := range res.AddressComponents {
		for _, t := range c.Types {
			switch t {
			case "street_number":
				number = c.LongName
			case "route":
				route = c.LongName
			case "locality":
				loc.City = c.LongName
			case "administrative_area_level_1":
				loc.State = c.ShortName
			case "postal_code":
				loc.Zipcode = c.LongName
			case "country":
				loc.Country = c.ShortName
			}
		}
	}
	switch {
	case number != "" && route != "":
		loc.Street = number + " " + route
	default:
		loc.Street = route
	}
	return loc
}
