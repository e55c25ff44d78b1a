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

type slotMongoRepository struct {
	Collection *mongo.Collection
}

func NewSlotMongoRepository(db *mongo.Client, dbName string) contracts.SlotRepository {
	return &slotMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAgendaSlots),
	}
}

func (r *slotMongoRepository) Insert(ctx context.Context, slot *models.AgendaSlot) (string, error) {
	result, err := r.Collection.InsertOne(ctx, slot)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *slotMongoRepository) FindByID(ctx context.Context, slotID string) (*models.AgendaSlot, error) {
	objectID, err := primitive.ObjectIDFromHex(slotID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var slot models.AgendaSlot
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&slot)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, exceptions.ErrSlotNotFound(err)
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	slot.NormalizeStatus()
	return &slot, nil
}

func (r *slotMongoRepository) Find(ctx context.Context, filter *requests.SlotFilter) ([]models.AgendaSlot, error) {
	query := bson.M{}
	if filter.Specialty != "" {
		query["especialidad"] = filter.Specialty
	}
	if filter.Doctor != "" {
		query["medico"] = filter.Doctor
	}
	if filter.Status != "" {
		query["estado"] = filter.Status
	}
	if dateRange := buildDateRange(filter.DateFrom, filter.DateTo); dateRange != nil {
		query["fecha"] = dateRange
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "fecha", Value: 1}, {Key: "horaInicio", Value: 1}})
	cursor, err := r.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	slots := make([]models.AgendaSlot, 0)
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	for i := range slots {
		slots[i].NormalizeStatus()
	}
	return slots, nil
}

// Reserve writes the reservation unconditionally: the previous status is not
// part of the filter, so reserving an already reserved slot replaces the
// earlier booking. Reception relies on this to rebook walk-ins.
func (r *slotMongoRepository) Reserve(ctx context.Context, slotID, patientID string, consultationID *string, updatedBy string) (*models.AgendaSlot, error) {
	objectID, err := primitive.ObjectIDFromHex(slotID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"estado":         constvars.SlotStatusReserved,
		"pacienteId":     patientID,
		"consultaId":     consultationID,
		"actualizadoPor": updatedBy,
		"updatedAt":      time.Now(),
	}}
	findOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var slot models.AgendaSlot
	err = r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, findOptions).Decode(&slot)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, exceptions.ErrSlotNotFound(err)
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	slot.NormalizeStatus()
	return &slot, nil
}

func (r *slotMongoRepository) UpdateStatus(ctx context.Context, slotID, status, updatedBy string) error {
	objectID, err := primitive.ObjectIDFromHex(slotID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"estado":         status,
		"actualizadoPor": updatedBy,
		"updatedAt":      time.Now(),
	}}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrSlotNotFound(nil)
	}
	return nil
}

func buildDateRange(from, to string) bson.M {
	dateRange := bson.M{}
	if from != "" {
		dateRange["$gte"] = from
	}
	if to != "" {
		dateRange["$lte"] = to
	}
	if len(dateRange) == 0 {
		return nil
	}
	return dateRange
}
