package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/roamplan/roam/pkg/api/routes"
	"github.com/roamplan/roam/pkg/attractionstore"
	"github.com/roamplan/roam/pkg/notify"
	"github.com/roamplan/roam/pkg/placedirectory"
	"github.com/roamplan/roam/pkg/redis_client"
	"github.com/rs/zerolog/log"
)

func SetupServer(listen string) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	directory := placedirectory.NewDirectory()
	if redis_client.Client != nil {
		directory.EnableCache()
	}

	pushManager := &notify.PushManager{}
	if err := pushManager.Setup(); err != nil {
		log.Info().Err(err).Msg("Push notifications disabled")
		pushManager = nil
	}

	routes.Setup(attractionstore.NewStore(), directory, pushManager)

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.JourneysRouter(group.Group("/journeys"))
	routes.PlacesRouter(group.Group("/places"))

	return webApp.Listen(listen)
}
