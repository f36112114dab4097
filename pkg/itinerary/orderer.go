package itinerary

import (
	"sort"

	"github.com/roamplan/roam/pkg/travelplan"
	"github.com/rs/zerolog/log"
)

// OrderedItinerary is the derived view over a journey's stops. It is
// recomputed from the authoritative stop list on every change & never
// stored - the map markers and the list cards both read their sequence
// numbers from Labels, which is what keeps the two surfaces in sync.
type OrderedItinerary struct {
	Stops []travelplan.Stop `groups:"basic"`

	// Stop identifier -> 1-based position in Stops
	Labels map[string]int `groups:"basic"`

	Days []DayGroup `groups:"basic"`

	Path []travelplan.Location `groups:"basic"`

	Gaps []Gap `groups:"basic"`
}

type DayGroup struct {
	Date     string            `groups:"basic"`
	DayLabel string            `groups:"basic"`
	Stops    []travelplan.Stop `groups:"basic"`
}

// Gap is the gap duration shown after a stop in the rendered list.
// Duration is nil for the final stop.
type Gap struct {
	AfterStopRef string  `groups:"basic"`
	Duration     *string `groups:"basic"`
}

// Order sorts stops ascending by (date, startTime) and derives the day
// grouping, marker labels, polyline path & gap durations. Stops with a
// malformed date or start time are dropped from the view rather than
// failing the whole pass.
func Order(stops []travelplan.Stop) OrderedItinerary {
	ordered := OrderedItinerary{
		Labels: map[string]int{},
	}

	for _, stop := range stops {
		if err := stop.ValidateSchedule(); err != nil {
			log.Warn().
				Err(err).
				Str("stop", stop.PrimaryIdentifier).
				Msg("Skipping stop with malformed schedule")

			continue
		}

		ordered.Stops = append(ordered.Stops, stop)
	}

	// The fixed width formats make lexicographic order chronological
	// order. Identical keys cannot occur within one journey, but keep the
	// sort stable so duplicates retain input order instead of jittering.
	sort.SliceStable(ordered.Stops, func(i, j int) bool {
		a := ordered.Stops[i]
		b := ordered.Stops[j]

		if a.Date != b.Date {
			return a.Date < b.Date
		}

		return a.StartTime < b.StartTime
	})

	for index, stop := range ordered.Stops {
		ordered.Labels[stop.PrimaryIdentifier] = index + 1
	}

	ordered.Path = BuildPath(ordered.Stops)
	ordered.Days = GroupByDate(ordered.Stops)
	ordered.Gaps = GapBetweenConsecutive(ordered.Stops)

	return ordered
}

// GroupByDate buckets already ordered stops by calendar date, keeping
// the global order within each bucket.
func GroupByDate(orderedStops []travelplan.Stop) []DayGroup {
	var days []DayGroup

	for _, stop := range orderedStops {
		if len(days) == 0 || days[len(days)-1].Date != stop.Date {
			dayLabel, _ := travelplan.FormatDayLabel(stop.Date)

			days = append(days, DayGroup{
				Date:     stop.Date,
				DayLabel: dayLabel,
			})
		}

		days[len(days)-1].Stops = append(days[len(days)-1].Stops, stop)
	}

	return days
}

// LabelIndex returns the 1-based position of a stop in the ordered
// sequence, or 0 when the stop is not part of it.
func LabelIndex(orderedStops []travelplan.Stop, stopRef string) int {
	for index, stop := range orderedStops {
		if stop.PrimaryIdentifier == stopRef {
			return index + 1
		}
	}

	return 0
}

// BuildPath returns one coordinate per stop in visit order. A path of
// fewer than 2 points is still returned - rendering it as a line is the
// map surface's problem, not ours.
func BuildPath(orderedStops []travelplan.Stop) []travelplan.Location {
	var path []travelplan.Location

	for _, stop := range orderedStops {
		if stop.Location != nil {
			path = append(path, *stop.Location)
		}
	}

	return path
}

// GapBetweenConsecutive computes the gap duration after every stop in
// the global order. Day boundaries are not reset - the gap between the
// last stop of one day and the first of the next is still shown, which
// matches the rendered list.
func GapBetweenConsecutive(orderedStops []travelplan.Stop) []Gap {
	var gaps []Gap

	for index, stop := range orderedStops {
		gap := Gap{
			AfterStopRef: stop.PrimaryIdentifier,
		}

		if index+1 < len(orderedStops) {
			duration, err := travelplan.DurationBetween(stop.StartTime, orderedStops[index+1].StartTime)
			if err == nil {
				gap.Duration = &duration
			}
		}

		gaps = append(gaps, gap)
	}

	return gaps
}
