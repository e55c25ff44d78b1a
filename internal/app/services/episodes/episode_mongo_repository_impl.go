package episodes

import (
	"context"
	"errors"
	"hospadmin-service/internal/app/contracts"
	"hospadmin-service/internal/app/models"
	"hospadmin-service/internal/pkg/constvars"
	"hospadmin-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type episodeMongoRepository struct {
	Collection *mongo.Collection
}

func NewEpisodeMongoRepository(db *mongo.Client, dbName string) contracts.EpisodeRepository {
	return &episodeMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionEpisodes),
	}
}

func (r *episodeMongoRepository) Insert(ctx context.Context, episode *models.Episode) (string, error) {
	result, err := r.Collection.InsertOne(ctx, episode)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *episodeMongoRepository) FindByID(ctx context.Context, episodeID string) (*models.Episode, error) {
	objectID, err := primitive.ObjectIDFromHex(episodeID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var episode models.Episode
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&episode)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, exceptions.ErrEpisodeNotFound(err)
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	episode.NormalizeStatus()
	return &episode, nil
}

func (r *episodeMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Episode, error) {
	return r.findMany(ctx, bson.M{"pacienteId": patientID})
}

func (r *episodeMongoRepository) FindActive(ctx context.Context) ([]models.Episode, error) {
	return r.findMany(ctx, bson.M{"alta": nil})
}

func (r *episodeMongoRepository) FindAll(ctx context.Context) ([]models.Episode, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *episodeMongoRepository) findMany(ctx context.Context, filter bson.M) ([]models.Episode, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "fechaIngreso", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	episodes := make([]models.Episode, 0)
	if err := cursor.All(ctx, &episodes); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	for i := range episodes {
		episodes[i].NormalizeStatus()
	}
	return episodes, nil
}

func (r *episodeMongoRepository) PushEvolutionNote(ctx context.Context, episodeID string, note models.EvolutionNote, updatedBy string) error {
	return r.push(ctx, episodeID, "evoluciones", note, updatedBy)
}

func (r *episodeMongoRepository) PushClinicalEntry(ctx context.Context, episodeID, listField string, entry models.ClinicalEntry, updatedBy string) error {
	return r.push(ctx, episodeID, listField, entry, updatedBy)
}

func (r *episodeMongoRepository) PushVitalSigns(ctx context.Context, episodeID string, vitals models.VitalSigns, updatedBy string) error {
	return r.push(ctx, episodeID, "constantes", vitals, updatedBy)
}

func (r *episodeMongoRepository) push(ctx context.Context, episodeID, listField string, entry interface{}, updatedBy string) error {
	objectID, err := primitive.ObjectIDFromHex(episodeID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{
		"$push": bson.M{listField: entry},
		"$set": bson.M{
			"actualizadoPor": updatedBy,
			"updatedAt":      time.Now(),
		},
	}

	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrEpisodeNotFound(nil)
	}
	return nil
}

// Discharge closes the episode with a single filtered FindOneAndUpdate: the
// filter only matches while alta is unset, so a concurrent or repeated
// discharge loses the race and is rejected instead of overwriting the block.
func (r *episodeMongoRepository) Discharge(ctx context.Context, episodeID string, discharge models.DischargeData, updatedBy string) (*models.Episode, error) {
	objectID, err := primitive.ObjectIDFromHex(episodeID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "alta": nil}
	update := bson.M{"$set": bson.M{
		"alta":           discharge,
		"estado":         constvars.EpisodeStatusDischarged,
		"actualizadoPor": updatedBy,
		"updatedAt":      time.Now(),
	}}
	findOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var episode models.Episode
	err = r.Collection.FindOneAndUpdate(ctx, filter, update, findOptions).Decode(&episode)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// The id may be unknown, or the episode was already closed.
		existing, findErr := r.FindByID(ctx, episodeID)
		if findErr != nil {
			return nil, findErr
		}
		if existing.Discharge != nil {
			return nil, exceptions.ErrEpisodeAlreadyDischarged(nil)
		}
		return nil, exceptions.ErrEpisodeNotFound(nil)
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	episode.NormalizeStatus()
	return &episode, nil
}
