package users

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Database) contracts.UserRepository {
	return &userMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionUsers),
	}
}

func EnsureUserIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(constvars.MongoCollectionUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(constvars.MongoIndexUserEmail),
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (repo *userMongoRepository) FindAll(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &users)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return users, nil
}

func (repo *userMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := repo.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

// SetRole never creates a user.
func (repo *userMongoRepository) SetRole(ctx context.Context, email string, role models.Role) (*responses.UpdateResult, error) {
	update := bson.M{
		"$set": bson.M{
			"role":      role,
			"updatedAt": time.Now(),
		},
	}
	result, err := repo.Collection.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return toUpdateResult(result), nil
}

// UpsertProfile writes profile fields only. The role is left to SetRole.
func (repo *userMongoRepository) UpsertProfile(ctx context.Context, email string, request *requests.UpsertUser) (*responses.UpdateResult, error) {
	now := time.Now()
	set := bson.M{
		"email":     request.Email,
		"updatedAt": now,
	}
	if request.Name != "" {
		set["name"] = request.Name
	}
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"createdAt": now},
	}

	result, err := repo.Collection.UpdateOne(ctx, bson.M{"email": email}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return toUpdateResult(result), nil
}

func toUpdateResult(result *mongo.UpdateResult) *responses.UpdateResult {
	return &responses.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
		UpsertedID:    result.UpsertedID,
	}
}
