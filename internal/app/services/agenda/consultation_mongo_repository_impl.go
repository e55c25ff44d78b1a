package agenda

import (
	"context"
	"errors"
	"hospadmin-service/internal/app/contracts"
	"hospadmin-service/internal/app/models"
	"hospadmin-service/internal/pkg/constvars"
	"hospadmin-service/internal/pkg/dto/requests"
	"hospadmin-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type consultationMongoRepository struct {
	Collection *mongo.Collection
}

func NewConsultationMongoRepository(db *mongo.Client, dbName string) contracts.ConsultationRepository {
	return &consultationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionConsultations),
	}
}

func (r *consultationMongoRepository) Insert(ctx context.Context, consultation *models.Consultation) (string, error) {
	result, err := r.Collection.InsertOne(ctx, consultation)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *consultationMongoRepository) FindByID(ctx context.Context, consultationID string) (*models.Consultation, error) {
	objectID, err := primitive.ObjectIDFromHex(consultationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var consultation models.Consultation
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&consultation)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, exceptions.ErrConsultationNotFound(err)
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	consultation.NormalizeStatus()
	return &consultation, nil
}

func (r *consultationMongoRepository) Find(ctx context.Context, filter *requests.ConsultationFilter) ([]models.Consultation, error) {
	query := bson.M{}
	if filter.Specialty != "" {
		query["especialidad"] = filter.Specialty
	}
	if filter.Priority != "" {
		query["prioridad"] = filter.Priority
	}
	if filter.Status != "" {
		query["estado"] = filter.Status
	}
	if dateRange := buildDateRange(filter.DateFrom, filter.DateTo); dateRange != nil {
		query["fecha"] = dateRange
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "fecha", Value: 1}, {Key: "hora", Value: 1}})
	cursor, err := r.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	consultations := make([]models.Consultation, 0)
	if err := cursor.All(ctx, &consultations); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	for i := range consultations {
		consultations[i].NormalizeStatus()
	}
	return consultations, nil
}

func (r *consultationMongoRepository) SetArrived(ctx context.Context, consultationID, updatedBy string) error {
	return r.updateFields(ctx, consultationID, bson.M{"llegado": true}, updatedBy)
}

func (r *consultationMongoRepository) UpdateStatus(ctx context.Context, consultationID, status, updatedBy string) error {
	return r.updateFields(ctx, consultationID, bson.M{"estado": status}, updatedBy)
}

func (r *consultationMongoRepository) updateFields(ctx context.Context, consultationID string, fields bson.M, updatedBy string) error {
	objectID, err := primitive.ObjectIDFromHex(consultationID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	fields["actualizadoPor"] = updatedBy
	fields["updatedAt"] = time.Now()

	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": fields})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrConsultationNotFound(nil)
	}
	return nil
}
