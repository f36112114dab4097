package dataimporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const seedFixture = `
journeys:
  - owner: user-1
    title: Taipei weekend
    description: Two days around Wanhua & Zhongzheng
    stops:
      - name: Longshan Temple
        address: No. 211, Guangzhou St
        place_ref: place-longshan
        lat: 25.0372
        lon: 121.4997
        date: "2024-05-01"
        start_time: "09:00"
        photos:
          - photoref-1
      - name: Chiang Kai-shek Memorial Hall
        address: No. 21, Zhongshan S Rd
        place_ref: place-chiangkaishek
        lat: 25.0347
        lon: 121.5217
        date: "2024-05-01"
        start_time: "14:00"
`

func TestSeedFileParse(t *testing.T) {
	var seed seedFile
	require.NoError(t, yaml.Unmarshal([]byte(seedFixture), &seed))

	require.Len(t, seed.Journeys, 1)
	journey := seed.Journeys[0]

	assert.Equal(t, "user-1", journey.Owner)
	assert.Equal(t, "Taipei weekend", journey.Title)
	require.Len(t, journey.Stops, 2)

	assert.Equal(t, "place-longshan", journey.Stops[0].PlaceRef)
	assert.Equal(t, "2024-05-01", journey.Stops[0].Date)
	assert.Equal(t, "09:00", journey.Stops[0].StartTime)
	assert.Equal(t, 25.0372, journey.Stops[0].Latitude)
	assert.Equal(t, []string{"photoref-1"}, journey.Stops[0].Photos)

	assert.Equal(t, "14:00", journey.Stops[1].StartTime)
}
