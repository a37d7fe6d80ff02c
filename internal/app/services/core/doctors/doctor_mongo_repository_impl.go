package doctors

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type doctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Database) contracts.DoctorRepository {
	return &doctorMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionDoctors),
	}
}

func EnsureDoctorIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(constvars.MongoCollectionDoctors).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(constvars.MongoIndexDoctorEmail),
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (repo *doctorMongoRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	doctors := []models.Doctor{}
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &doctors)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctors, nil
}

func (repo *doctorMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := repo.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (repo *doctorMongoRepository) Insert(ctx context.Context, doctor *models.Doctor) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, doctor)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrDoctorAlreadyExist(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}

	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return objectID.Hex(), nil
}

func (repo *doctorMongoRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result, err := repo.Collection.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}
