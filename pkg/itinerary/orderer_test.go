package itinerary

import (
	"testing"

	"github.com/roamplan/roam/pkg/travelplan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStop(identifier string, date string, startTime string, latitude float64, longitude float64) travelplan.Stop {
	return travelplan.Stop{
		PrimaryIdentifier: identifier,
		PrimaryName:       identifier,
		Date:              date,
		StartTime:         startTime,
		Location:          travelplan.NewLocation(latitude, longitude),
	}
}

func TestOrderSameDay(t *testing.T) {
	stops := []travelplan.Stop{
		testStop("roam-stop-first", "2024-05-01", "09:00", 25.0330, 121.5654),
		testStop("roam-stop-second", "2024-05-01", "14:00", 25.0478, 121.5170),
	}

	ordered := Order(stops)

	require.Len(t, ordered.Stops, 2)
	assert.Equal(t, "roam-stop-first", ordered.Stops[0].PrimaryIdentifier)
	assert.Equal(t, "roam-stop-second", ordered.Stops[1].PrimaryIdentifier)

	assert.Equal(t, 1, ordered.Labels["roam-stop-first"])
	assert.Equal(t, 2, ordered.Labels["roam-stop-second"])

	require.Len(t, ordered.Gaps, 2)
	require.NotNil(t, ordered.Gaps[0].Duration)
	assert.Equal(t, "5 hours", *ordered.Gaps[0].Duration)
	assert.Nil(t, ordered.Gaps[1].Duration)
}

func TestOrderAcrossDays(t *testing.T) {
	// Deliberately unsorted input
	stops := []travelplan.Stop{
		testStop("roam-stop-c", "2024-05-02", "09:00", 25.10, 121.50),
		testStop("roam-stop-a", "2024-05-01", "14:00", 25.20, 121.60),
		testStop("roam-stop-b", "2024-05-01", "09:30", 25.30, 121.70),
	}

	ordered := Order(stops)

	require.Len(t, ordered.Stops, 3)
	assert.Equal(t, "roam-stop-b", ordered.Stops[0].PrimaryIdentifier)
	assert.Equal(t, "roam-stop-a", ordered.Stops[1].PrimaryIdentifier)
	assert.Equal(t, "roam-stop-c", ordered.Stops[2].PrimaryIdentifier)

	require.Len(t, ordered.Days, 2)
	assert.Equal(t, "2024-05-01", ordered.Days[0].Date)
	assert.Equal(t, "Wed May 01 2024", ordered.Days[0].DayLabel)
	assert.Len(t, ordered.Days[0].Stops, 2)
	assert.Equal(t, "2024-05-02", ordered.Days[1].Date)
	assert.Len(t, ordered.Days[1].Stops, 1)

	// Path follows the global visit order
	require.Len(t, ordered.Path, 3)
	assert.Equal(t, 25.30, ordered.Path[0].Latitude())
	assert.Equal(t, 25.20, ordered.Path[1].Latitude())
	assert.Equal(t, 25.10, ordered.Path[2].Latitude())
}

func TestOrderLabelsAreABijection(t *testing.T) {
	stops := []travelplan.Stop{
		testStop("roam-stop-1", "2024-05-03", "10:00", 25.0, 121.0),
		testStop("roam-stop-2", "2024-05-01", "10:00", 25.1, 121.1),
		testStop("roam-stop-3", "2024-05-02", "10:00", 25.2, 121.2),
		testStop("roam-stop-4", "2024-05-01", "08:00", 25.3, 121.3),
	}

	ordered := Order(stops)

	seen := map[int]bool{}
	for _, label := range ordered.Labels {
		assert.False(t, seen[label])
		seen[label] = true
	}

	for position := 1; position <= len(stops); position++ {
		assert.True(t, seen[position], "missing label %d", position)
	}
}

func TestOrderStableOnDuplicateKeys(t *testing.T) {
	// Duplicate (date, time) pairs are excluded by the uniqueness
	// invariant but must not reorder if they ever appear
	stops := []travelplan.Stop{
		testStop("roam-stop-x", "2024-05-01", "10:00", 25.0, 121.0),
		testStop("roam-stop-y", "2024-05-01", "10:00", 25.1, 121.1),
	}

	ordered := Order(stops)

	require.Len(t, ordered.Stops, 2)
	assert.Equal(t, "roam-stop-x", ordered.Stops[0].PrimaryIdentifier)
	assert.Equal(t, "roam-stop-y", ordered.Stops[1].PrimaryIdentifier)
}

func TestOrderSkipsMalformedStops(t *testing.T) {
	stops := []travelplan.Stop{
		testStop("roam-stop-good", "2024-05-01", "09:00", 25.0, 121.0),
		testStop("roam-stop-bad", "May 2nd", "09:00", 25.1, 121.1),
		testStop("roam-stop-worse", "2024-05-03", "9am", 25.2, 121.2),
	}

	ordered := Order(stops)

	require.Len(t, ordered.Stops, 1)
	assert.Equal(t, "roam-stop-good", ordered.Stops[0].PrimaryIdentifier)
	assert.Len(t, ordered.Labels, 1)
}

func TestLabelIndex(t *testing.T) {
	stops := []travelplan.Stop{
		testStop("roam-stop-1", "2024-05-01", "09:00", 25.0, 121.0),
		testStop("roam-stop-2", "2024-05-01", "14:00", 25.1, 121.1),
	}

	ordered := Order(stops)

	assert.Equal(t, 1, LabelIndex(ordered.Stops, "roam-stop-1"))
	assert.Equal(t, 2, LabelIndex(ordered.Stops, "roam-stop-2"))
	assert.Equal(t, 0, LabelIndex(ordered.Stops, "roam-stop-unknown"))
}

func TestBuildPathDegenerate(t *testing.T) {
	assert.Len(t, BuildPath(nil), 0)

	single := []travelplan.Stop{
		testStop("roam-stop-only", "2024-05-01", "09:00", 25.0, 121.0),
	}
	assert.Len(t, BuildPath(single), 1)
}

func TestGapBetweenConsecutiveCrossDay(t *testing.T) {
	stops := []travelplan.Stop{
		testStop("roam-stop-1", "2024-05-01", "10:00", 25.0, 121.0),
		testStop("roam-stop-2", "2024-05-02", "10:00", 25.1, 121.1),
	}

	gaps := GapBetweenConsecutive(Order(stops).Stops)

	require.Len(t, gaps, 2)
	require.NotNil(t, gaps[0].Duration)
	assert.Equal(t, "0 hours", *gaps[0].Duration)
	assert.Nil(t, gaps[1].Duration)
}
