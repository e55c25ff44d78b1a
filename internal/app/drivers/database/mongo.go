package database

import (
	"context"
	"fmt"
	"hospadmin-service/internal/app/config"
	"hospadmin-service/internal/pkg/constvars"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Client {
	connectionString := fmt.Sprintf(
		"mongodb://%s:%s@%s:%s",
		driverConfig.MongoDB.Username,
		driverConfig.MongoDB.Password,
		driverConfig.MongoDB.Host,
		driverConfig.MongoDB.Port,
	)
	dbOptions := options.Client().ApplyURI(connectionString)
	client, err := mongo.Connect(context.TODO(), dbOptions)
	if err != nil {
		log.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}
	err = client.Ping(context.TODO(), nil)
	if err != nil {
		log.Fatalf("Failed to ping or test the connection to mongo database: %s", err.Error())
	}
	log.Println("Successfully connected to mongo database")
	return client
}

// EnsureIndexes creates the unique indexes backing the patient identity
// invariants. The pre-write lookups give friendly errors; these indexes close
// the check-then-act race between concurrent writers.
func EnsureIndexes(ctx context.Context, client *mongo.Client, dbName string) error {
	patients := client.Database(dbName).Collection(constvars.MongoCollectionPatients)
	_, err := patients.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "dni", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "sip", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "nhc", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	episodes := client.Database(dbName).Collection(constvars.MongoCollectionEpisodes)
	_, err = episodes.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "pacienteId", Value: 1}}},
		{Keys: bson.D{{Key: "alta.fechaAlta", Value: 1}}},
	})
	return err
}
