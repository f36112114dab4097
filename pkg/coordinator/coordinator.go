package coordinator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/roamplan/roam/pkg/itinerary"
	"github.com/roamplan/roam/pkg/selection"
	"github.com/roamplan/roam/pkg/travelplan"
	"github.com/roamplan/roam/pkg/util"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
)

var ErrNoActiveJourney = errors.New("no journey is active")
var ErrMissingDateTime = errors.New("a date and start time are required")

// Coordinator drives one itinerary screen: it owns the selection state
// machine, validates every write against the scheduling invariants and
// mediates mutations against the Attraction Store. One instance per
// screen, bound to a single journey.
//
// It never patches the stop list locally - after every successful
// mutation it refetches from the store and re-derives the ordered view,
// so what the user sees next always reflects the stored state.
type Coordinator struct {
	journeyRef string

	store     AttractionStore
	directory PlaceDirectory
	notifier  Notifier

	// Invoked with the fresh ordered view after every refetch. The map &
	// list surfaces hang off this.
	viewListener func(itinerary.OrderedItinerary)

	mutex     sync.Mutex
	selection *selection.Selection

	prefetch conc.WaitGroup
}

func New(journeyRef string, store AttractionStore, directory PlaceDirectory, notifier Notifier) *Coordinator {
	return &Coordinator{
		journeyRef: journeyRef,
		store:      store,
		directory:  directory,
		notifier:   notifier,
		selection:  selection.New(),
	}
}

func (c *Coordinator) OnViewChange(listener func(itinerary.OrderedItinerary)) {
	c.viewListener = listener
}

func (c *Coordinator) Selection() *selection.Selection {
	return c.selection
}

// Wait blocks until any in-flight place detail prefetch has settled.
func (c *Coordinator) Wait() {
	c.prefetch.Wait()
}

// HandleSelect reacts to a marker or list card click from either
// surface. An unscheduled candidate opens the create editor & kicks off
// an asynchronous place detail fetch; an already scheduled stop opens
// the update editor directly since the Stop carries everything the
// editor needs.
func (c *Coordinator) HandleSelect(ctx context.Context, candidate *travelplan.CandidatePlace, stop *travelplan.Stop, alreadyScheduled bool) error {
	if c.journeyRef == "" {
		return ErrNoActiveJourney
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if alreadyScheduled {
		c.selection.OpenForEdit(stop)
		return nil
	}

	c.selection.OpenForCreate(candidate)

	placeRef := candidate.PlaceRef
	c.prefetch.Go(func() {
		detail, err := c.directory.PlaceDetail(ctx, placeRef)
		if err != nil {
			log.Debug().Err(err).Str("place", placeRef).Msg("Place detail fetch failed")
			return
		}

		c.mutex.Lock()
		defer c.mutex.Unlock()

		// Discarded if the editor has moved on in the meantime
		c.selection.ReplaceCandidate(detail)
	})

	return nil
}

// RequestCreate schedules a candidate place at the given date & start
// time. Validation failures are detected before any store call and are
// always safe to retry; on a store failure the selection stays open so
// the user keeps their in-progress input.
func (c *Coordinator) RequestCreate(ctx context.Context, candidate travelplan.CandidatePlace, date string, startTime string) error {
	if c.journeyRef == "" {
		return ErrNoActiveJourney
	}

	if err := validateSchedule(date, startTime); err != nil {
		return err
	}

	stops, err := c.store.ListStops(ctx, c.journeyRef)
	if err != nil {
		c.notifier.Failure("Could not load the journey's stops")
		return fmt.Errorf("listing stops: %w", err)
	}

	if itinerary.HasConflict(stops, date, startTime) {
		return itinerary.ErrSchedulingConflict
	}

	if _, err := c.store.CreateStop(ctx, c.journeyRef, candidate, date, startTime); err != nil {
		c.notifier.Failure("Could not add the place to the journey")
		return fmt.Errorf("creating stop: %w", err)
	}

	c.settle(ctx)
	c.notifier.Success(fmt.Sprintf("%s added to the journey", candidate.PrimaryName))

	return nil
}

// RequestUpdate re-schedules an existing stop. The stop being edited is
// excluded from the conflict comparison set, otherwise a no-op edit
// would always report a conflict against itself.
func (c *Coordinator) RequestUpdate(ctx context.Context, stopRef string, newDate string, newStartTime string) error {
	if c.journeyRef == "" {
		return ErrNoActiveJourney
	}

	if err := validateSchedule(newDate, newStartTime); err != nil {
		return err
	}

	stops, err := c.store.ListStops(ctx, c.journeyRef)
	if err != nil {
		c.notifier.Failure("Could not load the journey's stops")
		return fmt.Errorf("listing stops: %w", err)
	}

	util.InPlaceFilter(&stops, func(stop travelplan.Stop) bool {
		return stop.PrimaryIdentifier != stopRef
	})

	if itinerary.HasConflict(stops, newDate, newStartTime) {
		return itinerary.ErrSchedulingConflict
	}

	if err := c.store.UpdateStop(ctx, c.journeyRef, stopRef, newDate, newStartTime); err != nil {
		c.notifier.Failure("Could not update the stop")
		return fmt.Errorf("updating stop: %w", err)
	}

	c.settle(ctx)
	c.notifier.Success("Stop re-scheduled")

	return nil
}

// RequestDelete removes a stop. No validation beyond existence, which
// the store itself enforces.
func (c *Coordinator) RequestDelete(ctx context.Context, stopRef string) error {
	if c.journeyRef == "" {
		return ErrNoActiveJourney
	}

	if err := c.store.DeleteStop(ctx, c.journeyRef, stopRef); err != nil {
		c.notifier.Failure("Could not delete the stop")
		return fmt.Errorf("deleting stop: %w", err)
	}

	c.settle(ctx)
	c.notifier.Success("Stop deleted")

	return nil
}

// RequestDeleteJourney removes the whole journey. On success the caller
// is expected to navigate away from the screen.
func (c *Coordinator) RequestDeleteJourney(ctx context.Context) error {
	if c.journeyRef == "" {
		return ErrNoActiveJourney
	}

	if err := c.store.DeleteJourney(ctx, c.journeyRef); err != nil {
		c.notifier.Failure("Could not delete the journey")
		return fmt.Errorf("deleting journey: %w", err)
	}

	c.notifier.Success("Journey deleted")

	return nil
}

// CurrentView derives the ordered itinerary for a stop list. Recomputed
// on every call - the stops belong to the store & can change outside
// our control, so nothing is cached.
func (c *Coordinator) CurrentView(stops []travelplan.Stop) itinerary.OrderedItinerary {
	return itinerary.Order(stops)
}

// settle is the read-after-write step: refetch the stop list, re-derive
// the ordered view and only then close the selection, so the next thing
// the user sees reflects the mutation.
func (c *Coordinator) settle(ctx context.Context) {
	stops, err := c.store.ListStops(ctx, c.journeyRef)
	if err != nil {
		log.Error().Err(err).Str("journey", c.journeyRef).Msg("Refetch after mutation failed")
	} else if c.viewListener != nil {
		c.viewListener(itinerary.Order(stops))
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.selection.Close()
}

func validateSchedule(date string, startTime string) error {
	if date == "" || startTime == "" {
		return ErrMissingDateTime
	}

	if _, err := travelplan.ParseDate(date); err != nil {
		return err
	}
	if _, err := travelplan.ParseClock(startTime); err != nil {
		return err
	}

	return nil
}
