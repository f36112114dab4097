package placedirectory

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nearbySearchFixture = `{
	"status": "OK",
	"results": [
		{
			"place_id": "place-longshan",
			"name": "Longshan Temple",
			"vicinity": "No. 211, Guangzhou St",
			"rating": 4.5,
			"geometry": {"location": {"lat": 25.0372, "lng": 121.4997}},
			"photos": [{"photo_reference": "photoref-1"}, {"photo_reference": "photoref-2"}]
		}
	]
}`

func TestNearbySearchResponseDecode(t *testing.T) {
	searchResponse := nearbySearchResponse{}
	require.NoError(t, json.Unmarshal([]byte(nearbySearchFixture), &searchResponse))

	assert.Equal(t, "OK", searchResponse.Status)
	require.Len(t, searchResponse.Results, 1)

	candidate := searchResponse.Results[0].AsCandidatePlace()
	assert.Equal(t, "place-longshan", candidate.PlaceRef)
	assert.Equal(t, "Longshan Temple", candidate.PrimaryName)
	assert.Equal(t, "No. 211, Guangzhou St", candidate.Address)
	assert.Equal(t, 4.5, candidate.Rating)
	assert.Equal(t, []string{"photoref-1", "photoref-2"}, candidate.Photos)

	require.NotNil(t, candidate.Location)
	assert.Equal(t, 25.0372, candidate.Location.Latitude())
	assert.Equal(t, 121.4997, candidate.Location.Longitude())
}

func TestPlaceDetailPrefersFormattedAddress(t *testing.T) {
	result := placeResult{
		PlaceID:          "place-longshan",
		Vicinity:         "No. 211, Guangzhou St",
		FormattedAddress: "No. 211, Guangzhou Street, Wanhua District, Taipei",
	}

	candidate := result.AsCandidatePlace()
	assert.Equal(t, "No. 211, Guangzhou Street, Wanhua District, Taipei", candidate.Address)

	result.FormattedAddress = ""
	candidate = result.AsCandidatePlace()
	assert.Equal(t, "No. 211, Guangzhou St", candidate.Address)
}
