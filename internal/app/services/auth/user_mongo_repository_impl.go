package auth

import (
	"context"
	"errors"
	"hospadmin-service/internal/app/contracts"
	"hospadmin-service/internal/app/models"
	"hospadmin-service/internal/pkg/constvars"
	"hospadmin-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type userMongoRepository struct {
	db *mongo.Database
}

func NewUserMongoRepository(db *mongo.Database) contracts.UserRepository {
	return &userMongoRepository{db: db}
}

func (r *userMongoRepository) collection() *mongo.Collection {
	return r.db.Collection(constvars.MongoCollectionUsers)
}

func (r *userMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user := new(models.User)
	err := r.collection().FindOne(ctx, bson.M{"email": email}).Decode(user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return user, nil
}

func (r *userMongoRepository) Insert(ctx context.Context, user *models.User) (string, error) {
	user.SetCreatedAtUpdatedAt()
	result, err := r.collection().InsertOne(ctx, user)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBInsertDocument(nil)
	}
	return objectID.Hex(), nil
}
