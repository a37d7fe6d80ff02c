package bookings

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

type bookingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingMongoRepository(db *mongo.Database) contracts.BookingRepository {
	return &bookingMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionBookings),
	}
}

// EnsureBookingIndexes creates the unique (treatment, date, patient) index
// that backs admission when two requests slip past the lock.
func EnsureBookingIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(constvars.MongoCollectionBookings).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "treatment", Value: 1},
				{Key: "date", Value: 1},
				{Key: "patient", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName(constvars.MongoIndexBookingTriple),
		},
		{
			Keys: bson.D{{Key: "date", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "patient", Value: 1}},
		},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (repo *bookingMongoRepository) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	bookings := []models.Booking{}
	cursor, err := repo.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &bookings)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

func (repo *bookingMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Booking, error) {
	var booking models.Booking
	err := repo.Collection.FindOne(ctx, filter).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}

func (repo *bookingMongoRepository) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return repo.find(ctx, bson.M{"date": date})
}

func (repo *bookingMongoRepository) FindByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	return repo.find(ctx, bson.M{"patient": patient})
}

func (repo *bookingMongoRepository) FindByTreatmentDatePatient(ctx context.Context, treatment, date, patient string) (*models.Booking, error) {
	return repo.findOne(ctx, bson.M{"treatment": treatment, "date": date, "patient": patient})
}

func (repo *bookingMongoRepository) FindByTreatmentDateSlot(ctx context.Context, treatment, date, slot string) (*models.Booking, error) {
	return repo.findOne(ctx, bson.M{"treatment": treatment, "date": date, "slot": slot})
}

func (repo *bookingMongoRepository) Insert(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	stored := *booking
	result, err := repo.Collection.InsertOne(ctx, stored)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, contracts.ErrDuplicateBooking
		}
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}

	if objectID, ok := result.InsertedID.(primitive.ObjectID); ok {
		stored.ID = objectID
	}
	return &stored, nil
}
