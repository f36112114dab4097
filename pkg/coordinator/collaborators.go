package coordinator

import (
	"context"

	"github.com/roamplan/roam/pkg/travelplan"
)

// AttractionStore persists journeys & their scheduled stops. The
// coordinator only cares about the contract - the production
// implementation is mongo backed but tests run against an in-memory
// double.
type AttractionStore interface {
	ListStops(ctx context.Context, journeyRef string) ([]travelplan.Stop, error)
	CreateStop(ctx context.Context, journeyRef string, candidate travelplan.CandidatePlace, date string, startTime string) (string, error)
	UpdateStop(ctx context.Context, journeyRef string, stopRef string, date string, startTime string) error
	DeleteStop(ctx context.Context, journeyRef string, stopRef string) error

	GetJourney(ctx context.Context, journeyRef string) (*travelplan.Journey, error)
	CreateJourney(ctx context.Context, owner string, title string, description string) (string, error)
	SaveJourney(ctx context.Context, journeyRef string, title string, description string) error
	DeleteJourney(ctx context.Context, journeyRef string) error
}

// PlaceDirectory returns nearby points of interest & place detail.
type PlaceDirectory interface {
	NearbySearch(ctx context.Context, center travelplan.Location, radiusMeters int, category string) ([]travelplan.CandidatePlace, error)
	PlaceDetail(ctx context.Context, placeRef string) (*travelplan.CandidatePlace, error)
}

// Notifier surfaces the outcome of a mutation to the user. Validation
// failures never go through it - they are returned to the caller before
// any store call happens.
type Notifier interface {
	Success(message string)
	Failure(message string)
}
