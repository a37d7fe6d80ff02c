package mailer

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// mailerService queues booking confirmations for the notifier process. The
// default exchange routes straight to Queue.
type mailerService struct {
	mu      sync.Mutex
	Channel publisher
	Queue   string
	Log     *zap.Logger
}

func NewMailerService(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.BookingNotifier, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		_ = channel.Close()
		return nil, err
	}

	return newMailerService(channel, queue, logger), nil
}

func newMailerService(channel publisher, queue string, logger *zap.Logger) *mailerService {
	return &mailerService{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}
}

func (s *mailerService) EnqueueBookingConfirmation(ctx context.Context, message *requests.BookingConfirmedMessage) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("mailerService.EnqueueBookingConfirmation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, s.Queue),
		zap.String(constvars.LoggingBookingIDKey, message.BookingID),
	)

	message.Type = constvars.MessageTypeBookingConfirmed
	message.RequestID = requestID
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	publishing := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Type:         constvars.MessageTypeBookingConfirmed,
		MessageId:    message.BookingID,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Headers:      headers,
	}

	s.mu.Lock()
	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, publishing)
	s.mu.Unlock()
	if err != nil {
		s.Log.Error("mailerService.EnqueueBookingConfirmation error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	s.Log.Info("mailerService.EnqueueBookingConfirmation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoutingKey, s.Queue),
	)
	return nil
}
