package routes

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/roamplan/roam/pkg/travelplan"
)

func PlacesRouter(router fiber.Router) {
	router.Get("/nearby", nearbyPlaces)
	router.Get("/:identifier", getPlaceDetail)
}

func nearbyPlaces(c *fiber.Ctx) error {
	latitude, latitudeErr := strconv.ParseFloat(c.Query("lat"), 64)
	longitude, longitudeErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latitudeErr != nil || longitudeErr != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameters lat and lon must be coordinates",
		})
	}

	radius, err := strconv.Atoi(c.Query("radius", "5000"))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter radius should be an integer",
		})
	}

	center := travelplan.NewLocation(latitude, longitude)

	candidates, err := placeDirectory.NearbySearch(c.Context(), *center, radius, c.Query("category"))
	if err != nil {
		c.SendStatus(fiber.StatusBadGateway)
		return c.JSON(fiber.Map{
			"error": "Place Directory lookup failed",
		})
	}

	return c.JSON(candidates)
}

func getPlaceDetail(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	candidate, err := placeDirectory.PlaceDetail(c.Context(), identifier)
	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Place matching Place Identifier",
		})
	}

	return c.JSON(candidate)
}
