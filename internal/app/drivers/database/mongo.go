package database

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func mongoConnectionString(driverConfig *config.DriverConfig) string {
	if driverConfig.MongoDB.URI != "" {
		return driverConfig.MongoDB.URI
	}
	if driverConfig.MongoDB.Username == "" {
		return fmt.Sprintf("mongodb://%s:%s", driverConfig.MongoDB.Host, driverConfig.MongoDB.Port)
	}
	return fmt.Sprintf(
		"mongodb://%s:%s@%s:%s",
		driverConfig.MongoDB.Username,
		driverConfig.MongoDB.Password,
		driverConfig.MongoDB.Host,
		driverConfig.MongoDB.Port,
	)
}

func NewMongoDB(ctx context.Context, driverConfig *config.DriverConfig, log *zap.Logger) *mongo.Database {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	dbOptions := options.Client().ApplyURI(mongoConnectionString(driverConfig))
	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		log.Fatal("Failed to connect to mongo database", zap.Error(err))
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal("Failed to ping or test the connection to mongo database", zap.Error(err))
	}
	log.Info("Successfully connected to mongo database", zap.String("db_name", driverConfig.MongoDB.DbName))
	return client.Database(driverConfig.MongoDB.DbName)
}
