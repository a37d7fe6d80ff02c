package config

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Database
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Minio          *minio.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.MongoDB != nil {
		err := b.MongoDB.Client().Disconnect(ctx)
		if err != nil {
			return err
		}
		b.Logger.Info("Successfully closing MongoDB")
	}

	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		b.Logger.Info("Successfully closing Redis")
	}

	if b.RabbitMQ != nil {
		err := b.RabbitMQ.Close()
		if err != nil {
			return err
		}
		b.Logger.Info("Successfully closing RabbitMQ")
	}

	b.Logger.Info("Flushing logger")
	// Sync fails on stdout/stderr for some terminals, nothing to recover there.
	_ = b.Logger.Sync()

	return nil
}
