package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	createJourneysIndexes()
	createStopsIndexes()
	createNotificationIndexes()
}

func createJourneysIndexes() {
	journeysCollection := GetCollection("journeys")
	journeysIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "owner", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "creationdatetime", Value: 1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := journeysCollection.Indexes().CreateMany(context.Background(), journeysIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createStopsIndexes() {
	stopsCollection := GetCollection("stops")
	stopsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "journeyref", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "placeref", Value: 1}},
		},
		{
			// Conflict detection happens before every write, but the
			// lookup pattern is always (journey, date, time)
			Keys: bson.D{
				{Key: "journeyref", Value: 1},
				{Key: "date", Value: 1},
				{Key: "starttime", Value: 1},
			},
		},
		{
			Keys: bson.D{{Key: "location.coordinates", Value: "2d"}},
		},
	}

	opts := options.CreateIndexes()
	_, err := stopsCollection.Indexes().CreateMany(context.Background(), stopsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createNotificationIndexes() {
	userPushNotificationTargetCollection := GetCollection("user_push_notification_target")
	_, err := userPushNotificationTargetCollection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "userid", Value: 1}},
		},
	}, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
