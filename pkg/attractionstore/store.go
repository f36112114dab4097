package attractionstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/roamplan/roam/pkg/database"
	"github.com/roamplan/roam/pkg/travelplan"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the mongo backed Attraction Store. Journeys & stops live in
// separate collections, linked by JourneyRef; deleting a journey
// cascades to its stops.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) ListStops(ctx context.Context, journeyRef string) ([]travelplan.Stop, error) {
	stopsCollection := database.GetCollection("stops")

	cursor, err := stopsCollection.Find(ctx, bson.M{"journeyref": journeyRef})
	if err != nil {
		return nil, fmt.Errorf("listing stops: %w", err)
	}
	defer cursor.Close(ctx)

	stops := []travelplan.Stop{}
	for cursor.Next(ctx) {
		var stop travelplan.Stop
		if err := cursor.Decode(&stop); err != nil {
			log.Error().Err(err).Str("journey", journeyRef).Msg("Failed to decode stop")
			continue
		}

		stops = append(stops, stop)
	}

	return stops, nil
}

func (s *Store) CreateStop(ctx context.Context, journeyRef string, candidate travelplan.CandidatePlace, date string, startTime string) (string, error) {
	var stop travelplan.Stop
	if err := copier.Copy(&stop, &candidate); err != nil {
		return "", err
	}

	now := time.Now()

	stop.PrimaryIdentifier = fmt.Sprintf("roam-stop-%s", uuid.New().String())
	stop.JourneyRef = journeyRef
	stop.Date = date
	stop.StartTime = startTime
	stop.CreationDateTime = now
	stop.ModificationDateTime = now

	if err := stop.ValidateSchedule(); err != nil {
		return "", err
	}

	stopsCollection := database.GetCollection("stops")
	if _, err := stopsCollection.InsertOne(ctx, stop); err != nil {
		return "", fmt.Errorf("inserting stop: %w", err)
	}

	s.touchJourney(ctx, journeyRef)

	return stop.PrimaryIdentifier, nil
}

// UpdateStop only ever touches the schedule - a stop's identity, name,
// address & location are immutable after creation.
func (s *Store) UpdateStop(ctx context.Context, journeyRef string, stopRef string, date string, startTime string) error {
	stop := travelplan.Stop{Date: date, StartTime: startTime}
	if err := stop.ValidateSchedule(); err != nil {
		return err
	}

	stopsCollection := database.GetCollection("stops")

	result, err := stopsCollection.UpdateOne(ctx,
		bson.M{"primaryidentifier": stopRef, "journeyref": journeyRef},
		bson.M{"$set": bson.M{
			"date":                 date,
			"starttime":            startTime,
			"modificationdatetime": time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("updating stop: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("stop %s not found in journey %s", stopRef, journeyRef)
	}

	s.touchJourney(ctx, journeyRef)

	return nil
}

func (s *Store) DeleteStop(ctx context.Context, journeyRef string, stopRef string) error {
	stopsCollection := database.GetCollection("stops")

	result, err := stopsCollection.DeleteOne(ctx, bson.M{"primaryidentifier": stopRef, "journeyref": journeyRef})
	if err != nil {
		return fmt.Errorf("deleting stop: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("stop %s not found in journey %s", stopRef, journeyRef)
	}

	s.touchJourney(ctx, journeyRef)

	return nil
}

func (s *Store) GetJourney(ctx context.Context, journeyRef string) (*travelplan.Journey, error) {
	journeysCollection := database.GetCollection("journeys")

	var journey travelplan.Journey
	err := journeysCollection.FindOne(ctx, bson.M{"primaryidentifier": journeyRef}).Decode(&journey)
	if err != nil {
		return nil, fmt.Errorf("journey %s not found", journeyRef)
	}

	return &journey, nil
}

func (s *Store) CreateJourney(ctx context.Context, owner string, title string, description string) (string, error) {
	now := time.Now()

	journey := travelplan.Journey{
		PrimaryIdentifier:    fmt.Sprintf("roam-journey-%s", uuid.New().String()),
		Owner:                owner,
		Title:                title,
		Description:          description,
		CreationDateTime:     now,
		ModificationDateTime: now,
	}

	journeysCollection := database.GetCollection("journeys")
	if _, err := journeysCollection.InsertOne(ctx, journey); err != nil {
		return "", fmt.Errorf("inserting journey: %w", err)
	}

	return journey.PrimaryIdentifier, nil
}

func (s *Store) SaveJourney(ctx context.Context, journeyRef string, title string, description string) error {
	journeysCollection := database.GetCollection("journeys")

	result, err := journeysCollection.UpdateOne(ctx,
		bson.M{"primaryidentifier": journeyRef},
		bson.M{"$set": bson.M{
			"title":                title,
			"description":          description,
			"modificationdatetime": time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("saving journey: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("journey %s not found", journeyRef)
	}

	return nil
}

func (s *Store) DeleteJourney(ctx context.Context, journeyRef string) error {
	journeysCollection := database.GetCollection("journeys")

	result, err := journeysCollection.DeleteOne(ctx, bson.M{"primaryidentifier": journeyRef})
	if err != nil {
		return fmt.Errorf("deleting journey: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("journey %s not found", journeyRef)
	}

	stopsCollection := database.GetCollection("stops")
	if _, err := stopsCollection.DeleteMany(ctx, bson.M{"journeyref": journeyRef}); err != nil {
		log.Error().Err(err).Str("journey", journeyRef).Msg("Failed to cascade delete stops")
	}

	return nil
}

func (s *Store) touchJourney(ctx context.Context, journeyRef string) {
	journeysCollection := database.GetCollection("journeys")

	_, err := journeysCollection.UpdateOne(ctx,
		bson.M{"primaryidentifier": journeyRef},
		bson.M{"$set": bson.M{"modificationdatetime": time.Now()}},
	)
	if err != nil {
		log.Error().Err(err).Str("journey", journeyRef).Msg("Failed to touch journey")
	}
}

// ListJourneys returns a user's journeys ordered by creation time, each
// annotated with the derived start & end dates of its ordered stops.
func (s *Store) ListJourneys(ctx context.Context, owner string) ([]travelplan.Journey, error) {
	journeysCollection := database.GetCollection("journeys")

	findOptions := options.Find().SetSort(bson.D{{Key: "creationdatetime", Value: 1}})

	cursor, err := journeysCollection.Find(ctx, bson.M{"owner": owner}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("listing journeys: %w", err)
	}
	defer cursor.Close(ctx)

	journeys := []travelplan.Journey{}
	for cursor.Next(ctx) {
		var journey travelplan.Journey
		if err := cursor.Decode(&journey); err != nil {
			log.Error().Err(err).Msg("Failed to decode journey")
			continue
		}

		s.annotateDateRange(ctx, &journey)

		journeys = append(journeys, journey)
	}

	return journeys, nil
}

// SearchJourneys filters a user's journeys on exact stop date and/or a
// title substring.
func (s *Store) SearchJourneys(ctx context.Context, owner string, date string, title string) ([]travelplan.Journey, error) {
	filter := bson.M{"owner": owner}

	if title != "" {
		filter["title"] = bson.M{"$regex": title, "$options": "i"}
	}

	if date != "" {
		stopsCollection := database.GetCollection("stops")

		journeyRefs, err := stopsCollection.Distinct(ctx, "journeyref", bson.M{"date": date})
		if err != nil {
			return nil, fmt.Errorf("searching stops by date: %w", err)
		}

		filter["primaryidentifier"] = bson.M{"$in": journeyRefs}
	}

	journeysCollection := database.GetCollection("journeys")
	cursor, err := journeysCollection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("searching journeys: %w", err)
	}
	defer cursor.Close(ctx)

	journeys := []travelplan.Journey{}
	for cursor.Next(ctx) {
		var journey travelplan.Journey
		if err := cursor.Decode(&journey); err != nil {
			continue
		}

		s.annotateDateRange(ctx, &journey)

		journeys = append(journeys, journey)
	}

	return journeys, nil
}

func (s *Store) annotateDateRange(ctx context.Context, journey *travelplan.Journey) {
	stopsCollection := database.GetCollection("stops")

	sortAscending := options.FindOne().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "starttime", Value: 1}})
	sortDescending := options.FindOne().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "starttime", Value: -1}})

	var first travelplan.Stop
	err := stopsCollection.FindOne(ctx, bson.M{"journeyref": journey.PrimaryIdentifier}, sortAscending).Decode(&first)
	if err == mongo.ErrNoDocuments {
		return
	} else if err != nil {
		log.Error().Err(err).Str("journey", journey.PrimaryIdentifier).Msg("Failed to derive date range")
		return
	}

	var last travelplan.Stop
	if err := stopsCollection.FindOne(ctx, bson.M{"journeyref": journey.PrimaryIdentifier}, sortDescending).Decode(&last); err != nil {
		return
	}

	journey.StartDate = first.Date
	journey.EndDate = last.Date
}
