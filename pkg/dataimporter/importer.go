package dataimporter

import (
	"context"
	"fmt"
	"os"

	"github.com/roamplan/roam/pkg/attractionstore"
	"github.com/roamplan/roam/pkg/itinerary"
	"github.com/roamplan/roam/pkg/travelplan"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Journeys []seedJourney `yaml:"journeys"`
}

type seedJourney struct {
	Owner       string     `yaml:"owner"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Stops       []seedStop `yaml:"stops"`
}

type seedStop struct {
	Name      string   `yaml:"name"`
	Address   string   `yaml:"address"`
	PlaceRef  string   `yaml:"place_ref"`
	Latitude  float64  `yaml:"lat"`
	Longitude float64  `yaml:"lon"`
	Date      string   `yaml:"date"`
	StartTime string   `yaml:"start_time"`
	Photos    []string `yaml:"photos"`
}

// ImportFile loads journeys & stops from a YAML fixture into the
// Attraction Store. Stops that violate the scheduling invariants are
// skipped with a warning rather than aborting the import.
func ImportFile(path string) error {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var seed seedFile
	if err := yaml.Unmarshal(fileBytes, &seed); err != nil {
		return fmt.Errorf("parsing seed file: %w", err)
	}

	store := attractionstore.NewStore()

	for _, journey := range seed.Journeys {
		journeyRef, err := store.CreateJourney(context.Background(), journey.Owner, journey.Title, journey.Description)
		if err != nil {
			return err
		}

		imported := 0

		for _, stop := range journey.Stops {
			existingStops, err := store.ListStops(context.Background(), journeyRef)
			if err != nil {
				return err
			}

			if itinerary.HasConflict(existingStops, stop.Date, stop.StartTime) {
				log.Warn().
					Str("journey", journey.Title).
					Str("stop", stop.Name).
					Msg("Skipping stop - another stop already occupies that date & time")

				continue
			}

			candidate := travelplan.CandidatePlace{
				PlaceRef:    stop.PlaceRef,
				PrimaryName: stop.Name,
				Address:     stop.Address,
				Location:    travelplan.NewLocation(stop.Latitude, stop.Longitude),
				Photos:      stop.Photos,
			}

			if _, err := store.CreateStop(context.Background(), journeyRef, candidate, stop.Date, stop.StartTime); err != nil {
				log.Warn().Err(err).Str("stop", stop.Name).Msg("Skipping stop")
				continue
			}

			imported += 1
		}

		log.Info().
			Str("journey", journey.Title).
			Str("identifier", journeyRef).
			Int("stops", imported).
			Msg("Imported journey")
	}

	return nil
}
