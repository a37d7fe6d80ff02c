package treatments

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type treatmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewTreatmentMongoRepository(db *mongo.Database) contracts.TreatmentRepository {
	return &treatmentMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionServices),
	}
}

func (repo *treatmentMongoRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	services := []models.Service{}
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &services)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return services, nil
}

// ReplaceAll swaps the whole catalog for services and returns how many were
// written.
func (repo *treatmentMongoRepository) ReplaceAll(ctx context.Context, services []models.Service) (int, error) {
	_, err := repo.Collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	if len(services) == 0 {
		return 0, nil
	}

	documents := make([]interface{}, len(services))
	for i := range services {
		documents[i] = services[i]
	}
	result, err := repo.Collection.InsertMany(ctx, documents)
	if err != nil {
		return 0, exceptions.ErrMongoDBInsertDocument(err)
	}
	return len(result.InsertedIDs), nil
}
