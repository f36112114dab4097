package routes

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/roamplan/roam/pkg/coordinator"
	"github.com/roamplan/roam/pkg/itinerary"
	"github.com/roamplan/roam/pkg/travelplan"

	iso8601 "github.com/senseyeio/duration"
)

func StopsRouter(router fiber.Router) {
	router.Get("/:identifier/itinerary", getItinerary)
	router.Get("/:identifier/upcoming", getUpcomingStops)
	router.Post("/:identifier/stops", createStop)
	router.Put("/:identifier/stops/:stop", updateStop)
	router.Delete("/:identifier/stops/:stop", deleteStop)
}

func getItinerary(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	stops, err := attractionStore.ListStops(c.Context(), identifier)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not list the Journey's Stops",
		})
	}

	orderedItinerary := itinerary.Order(stops)

	itineraryReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, orderedItinerary)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce Itinerary",
		})
	}

	return c.JSON(itineraryReduced)
}

func getUpcomingStops(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	var startDateTime time.Time
	var err error

	startDateTimeString := c.Query("datetime")
	if startDateTimeString == "" {
		startDateTime = time.Now()
	} else {
		startDateTime, err = time.Parse(time.RFC3339, startDateTimeString)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter datetime should be an RFC3339/ISO8601 datetime",
			})
		}
	}

	window, err := iso8601.ParseISO8601(c.Query("window", "P1D"))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter window should be an ISO8601 duration",
		})
	}
	endDateTime := window.Shift(startDateTime)

	stops, err := attractionStore.ListStops(c.Context(), identifier)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not list the Journey's Stops",
		})
	}

	var upcomingStops []travelplan.Stop
	for _, stop := range itinerary.Order(stops).Stops {
		stopDateTime, err := stop.DateTime(startDateTime.Location())
		if err != nil {
			continue
		}

		if !stopDateTime.Before(startDateTime) && stopDateTime.Before(endDateTime) {
			upcomingStops = append(upcomingStops, stop)
		}
	}

	stopsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, upcomingStops)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce Stops",
		})
	}

	return c.JSON(stopsReduced)
}

type createStopRequest struct {
	Place     travelplan.CandidatePlace `json:"place"`
	Date      string                    `json:"date"`
	StartTime string                    `json:"start_time"`
}

type updateStopRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
}

func createStop(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	var request createStopRequest
	if err := c.BodyParser(&request); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	coord := newCoordinator(c, identifier)
	if err := coord.RequestCreate(c.Context(), request.Place, request.Date, request.StartTime); err != nil {
		return scheduleFailure(c, err)
	}

	c.SendStatus(fiber.StatusCreated)
	return c.JSON(fiber.Map{
		"journey": identifier,
	})
}

func updateStop(c *fiber.Ctx) error {
	identifier := c.Params("identifier")
	stopRef := c.Params("stop")

	var request updateStopRequest
	if err := c.BodyParser(&request); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	coord := newCoordinator(c, identifier)
	if err := coord.RequestUpdate(c.Context(), stopRef, request.Date, request.StartTime); err != nil {
		return scheduleFailure(c, err)
	}

	return c.JSON(fiber.Map{
		"identifier": stopRef,
	})
}

func deleteStop(c *fiber.Ctx) error {
	identifier := c.Params("identifier")
	stopRef := c.Params("stop")

	coord := newCoordinator(c, identifier)
	if err := coord.RequestDelete(c.Context(), stopRef); err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not delete Stop",
		})
	}

	return c.JSON(fiber.Map{
		"identifier": stopRef,
	})
}

// Validation failures are the user's to fix & always safe to retry;
// anything else is a store failure.
func scheduleFailure(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, itinerary.ErrSchedulingConflict):
		c.SendStatus(fiber.StatusConflict)
	case errors.Is(err, coordinator.ErrMissingDateTime),
		errors.Is(err, travelplan.ErrMalformedTimeValue),
		errors.Is(err, coordinator.ErrNoActiveJourney):
		c.SendStatus(fiber.StatusBadRequest)
	default:
		c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{
		"error": err.Error(),
	})
}
