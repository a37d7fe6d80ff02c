package messaging

import (
	"doctors-portal-service/internal/app/config"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// NewRabbitMQ dials the broker and tags the connection with connectionName
// so the http and notifier processes are told apart in the management UI.
func NewRabbitMQ(driverConfig *config.DriverConfig, connectionName string, log *zap.Logger) *amqp091.Connection {
	url := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)

	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName(connectionName)

	conn, err := amqp091.DialConfig(url, amqp091.Config{Properties: properties})
	if err != nil {
		log.Fatal("Failed to connect to rabbitMQ",
			zap.String("connection_name", connectionName),
			zap.Error(err),
		)
	}
	log.Info("Successfully connected to rabbitMQ", zap.String("connection_name", connectionName))
	return conn
}
