package patients

import (
	"context"
	"errors"
	"hospadmin-service/internal/app/contracts"
	"hospadmin-service/internal/app/models"
	"hospadmin-service/internal/pkg/constvars"
	"hospadmin-service/internal/pkg/exceptions"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type patientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) contracts.PatientRepository {
	return &patientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (r *patientMongoRepository) Insert(ctx context.Context, patient *models.Patient) (string, error) {
	result, err := r.Collection.InsertOne(ctx, patient)
	if err != nil {
		return "", mapPatientWriteError(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *patientMongoRepository) Update(ctx context.Context, patient *models.Patient) error {
	objectID, err := primitive.ObjectIDFromHex(patient.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"nombre":          patient.Name,
		"apellido1":       patient.Surname1,
		"apellido2":       patient.Surname2,
		"dni":             patient.DNI,
		"sip":             patient.SIP,
		"nss":             patient.NSS,
		"nhc":             patient.NHC,
		"fechaNacimiento": patient.BirthDate,
		"sexo":            patient.Sex,
		"direccion":       patient.Address,
		"codigoPostal":    patient.PostalCode,
		"telefono":        patient.Phone,
		"actualizadoPor":  patient.UpdatedBy,
		"updatedAt":       patient.UpdatedAt,
	}}

	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return mapPatientWriteError(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrPatientNotFound(nil)
	}
	return nil
}

func (r *patientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var patient models.Patient
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&patient)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *patientMongoRepository) FindByField(ctx context.Context, field, value string) (*models.Patient, error) {
	var patient models.Patient
	err := r.Collection.FindOne(ctx, bson.M{field: value}).Decode(&patient)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *patientMongoRepository) FindAllByField(ctx context.Context, field, value string) ([]models.Patient, error) {
	filter := bson.M{field: primitive.Regex{Pattern: "^" + value, Options: "i"}}
	findOptions := options.Find().SetSort(bson.D{{Key: "apellido1", Value: 1}, {Key: "apellido2", Value: 1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	patients := make([]models.Patient, 0)
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, nil
}

// FindAll pages by creation time, newest first. A pageSize of zero or less
// returns the whole collection.
func (r *patientMongoRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Patient, int, error) {
	total, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if pageSize > 0 {
		findOptions.SetSkip(int64((page - 1) * pageSize)).SetLimit(int64(pageSize))
	}

	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	patients := make([]models.Patient, 0)
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, int(total), nil
}

// mapPatientWriteError turns a unique-index violation into the matching
// conflict error so the client learns which identifier collided.
func mapPatientWriteError(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return exceptions.ErrMongoDBInsertDocument(err)
	}

	message := err.Error()
	switch {
	case strings.Contains(message, "dni"):
		return exceptions.ErrDNIAlreadyExists(err)
	case strings.Contains(message, "sip"):
		return exceptions.ErrSIPAlreadyExists(err)
	case strings.Contains(message, "nhc"):
		return exceptions.ErrNHCAlreadyExists(err)
	}
	return exceptions.ErrMongoDBInsertDocument(err)
}
