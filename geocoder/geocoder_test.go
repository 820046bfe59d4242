package geocoder_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"

	"github.com/linesmerrill/devcamper-api/geocoder"
)

func loadFixture(t *testing.T) []maps.GeocodingResult {
	f, err := os.Open("testdata/geo_result_boston.json")
	require.NoError(t, err)
	defer f.Close()

	var fixture struct {
		Results []maps.GeocodingResult `json:"results"`
	}
	require.NoError(t, json.NewDecoder(f).Decode(&fixture))
	return fixture.Results
}

func TestLocationFromResult(t *testing.T) {
	results := loadFixture(t)
	require.Len(t, results, 1)

	loc := geocoder.LocationFromResult(results[0])

	assert.Equal(t, "Point", loc.Type)
	assert.Equal(t, []float64{-71.105494, 42.350846}, loc.Coordinates)
	assert.Equal(t, "233 Bay State Rd, Boston, MA 02215, USA", loc.FormattedAddress)
	assert.Equal(t, "233 Bay State Road", loc.Street)
	assert.Equal(t, "Boston", loc.City)
	assert.Equal(t, "MA", loc.State)
	assert.Equal(t, "02215", loc.Zipcode)
	assert.Equal(t, "US", loc.Country)
}

func TestLocationFromResult_NoStreetNumber(t *testing.T) {
	res := maps.GeocodingResult{
		AddressComponents: []maps.AddressComponent{
			{LongName: "Main Street", Types: []string{"route"}},
		},
	}

	loc := geocoder.LocationFromResult(res)

	assert.Equal(t, "Main Street", loc.Street)
}

func TestNewGoogle_RequiresKey(t *testing.T) {
	_, err := geocoder.NewGoogle("")
	assert.Error(t, err)
}
