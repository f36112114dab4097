package database

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/roamplan/roam/pkg/util"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoInstance struct {
	Client   *mongo.Client
	Database *mongo.Database
}

var MongoGlobalInstance *MongoInstance

const defaultMongoConnectionString = "mongodb://localhost:27017/"
const defaultMongoDatabase = "roam"

func Connect() error {
	connectionString := defaultMongoConnectionString
	dbName := defaultMongoDatabase

	env := util.GetEnvironmentVariables()

	if env["ROAM_MONGODB_CONNECTION"] != "" {
		connectionString = env["ROAM_MONGODB_CONNECTION"]
	}

	if env["ROAM_MONGODB_DATABASE"] != "" {
		dbName = env["ROAM_MONGODB_DATABASE"]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connectionString))
	if err != nil {
		return err
	}

	MongoGlobalInstance = &MongoInstance{
		Client:   client,
		Database: client.Database(dbName),
	}

	// Mongo may still be starting up alongside us
	connectBackoff := backoff.NewExponentialBackOff()
	connectBackoff.MaxElapsedTime = 2 * time.Minute

	err = backoff.RetryNotify(func() error {
		return client.Ping(context.Background(), nil)
	}, connectBackoff, func(err error, wait time.Duration) {
		log.Warn().Err(err).Dur("wait", wait).Msg("MongoDB not reachable yet")
	})
	if err != nil {
		return err
	}

	createIndexes()

	return nil
}

func GetCollection(collectionName string) *mongo.Collection {
	return MongoGlobalInstance.Database.Collection(collectionName)
}
