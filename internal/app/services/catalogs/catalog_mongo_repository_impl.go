package catalogs

import (
	"context"
	"hospadmin-service/internal/app/contracts"
	"hospadmin-service/internal/app/models"
	"hospadmin-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type catalogMongoRepository struct {
	DB *mongo.Database
}

func NewCatalogMongoRepository(db *mongo.Client, dbName string) contracts.CatalogRepository {
	return &catalogMongoRepository{
		DB: db.Database(dbName),
	}
}

func (r *catalogMongoRepository) FindActive(ctx context.Context, collection string) ([]models.CatalogItem, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}})

	cursor, err := r.DB.Collection(collection).Find(ctx, bson.M{"activo": true}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	items := make([]models.CatalogItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return items, nil
}

func (r *catalogMongoRepository) Count(ctx context.Context, collection string) (int64, error) {
	count, err := r.DB.Collection(collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *catalogMongoRepository) InsertMany(ctx context.Context, collection string, items []models.CatalogItem) error {
	documents := make([]interface{}, 0, len(items))
	for i := range items {
		items[i].SetCreatedAtUpdatedAt()
		documents = append(documents, items[i])
	}

	if _, err := r.DB.Collection(collection).InsertMany(ctx, documents); err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}
