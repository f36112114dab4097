package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/roamplan/roam/pkg/coordinator"
	"github.com/roamplan/roam/pkg/notify"
)

func JourneysRouter(router fiber.Router) {
	router.Get("/", listJourneys)
	router.Post("/", createJourney)
	router.Get("/search", searchJourneys)
	router.Get("/:identifier", getJourney)
	router.Put("/:identifier", saveJourney)
	router.Delete("/:identifier", deleteJourney)

	StopsRouter(router)
}

func newCoordinator(c *fiber.Ctx, journeyRef string) *coordinator.Coordinator {
	notifier := notify.NewUserNotifier(c.Query("user"), pushManager)

	return coordinator.New(journeyRef, attractionStore, placeDirectory, notifier)
}

func listJourneys(c *fiber.Ctx) error {
	owner := c.Query("user")
	if owner == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "A user must be provided",
		})
	}

	journeys, err := attractionStore.ListJourneys(c.Context(), owner)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not list Journeys",
		})
	}

	journeysReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, journeys)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce Journeys",
		})
	}

	return c.JSON(journeysReduced)
}

func searchJourneys(c *fiber.Ctx) error {
	owner := c.Query("user")
	if owner == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "A user must be provided",
		})
	}

	journeys, err := attractionStore.SearchJourneys(c.Context(), owner, c.Query("date"), c.Query("title"))
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not search Journeys",
		})
	}

	return c.JSON(journeys)
}

type journeyRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func createJourney(c *fiber.Ctx) error {
	owner := c.Query("user")
	if owner == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "A user must be provided",
		})
	}

	var request journeyRequest
	if err := c.BodyParser(&request); err != nil || request.Title == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "A Journey requires a title",
		})
	}

	journeyRef, err := attractionStore.CreateJourney(c.Context(), owner, request.Title, request.Description)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not create Journey",
		})
	}

	c.SendStatus(fiber.StatusCreated)
	return c.JSON(fiber.Map{
		"identifier": journeyRef,
	})
}

func getJourney(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	journey, err := attractionStore.GetJourney(c.Context(), identifier)
	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Journey matching Journey Identifier",
		})
	}

	journeyReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, journey)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce Journey",
		})
	}

	return c.JSON(journeyReduced)
}

func saveJourney(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	var request journeyRequest
	if err := c.BodyParser(&request); err != nil || request.Title == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "A Journey requires a title",
		})
	}

	if err := attractionStore.SaveJourney(c.Context(), identifier, request.Title, request.Description); err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not save Journey",
		})
	}

	return c.JSON(fiber.Map{
		"identifier": identifier,
	})
}

func deleteJourney(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	coord := newCoordinator(c, identifier)
	if err := coord.RequestDeleteJourney(c.Context()); err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not delete Journey",
		})
	}

	return c.JSON(fiber.Map{
		"identifier": identifier,
	})
}
