package notification

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"errors"
	"fmt"
	"html"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const consumerTag = constvars.AppServiceName + "-notifier"

var errDeliveriesClosed = errors.New("deliveries channel closed")

type consumerChannel interface {
	Qos(prefetchCount, prefetchSize int, global bool) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp091.Table) (amqp091.Queue, error)
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp091.Table) (<-chan amqp091.Delivery, error)
}

// BookingConfirmationConsumer turns queued booking confirmations into e-mails.
type BookingConfirmationConsumer struct {
	MailerService contracts.MailerService
	Sender        string
	ClinicAddress string
	Log           *zap.Logger
}

func NewBookingConfirmationConsumer(mailerService contracts.MailerService, sender, clinicAddress string, logger *zap.Logger) *BookingConfirmationConsumer {
	return &BookingConfirmationConsumer{
		MailerService: mailerService,
		Sender:        sender,
		ClinicAddress: clinicAddress,
		Log:           logger,
	}
}

// Run consumes queue until ctx is done or the broker closes the channel.
func (c *BookingConfirmationConsumer) Run(ctx context.Context, channel consumerChannel, queue string, prefetch int) error {
	err := channel.Qos(prefetch, 0, false)
	if err != nil {
		return err
	}
	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return err
	}
	deliveries, err := channel.Consume(queue, consumerTag, false, false, false, false, nil)
	if err != nil {
		return err
	}

	c.Log.Info("BookingConfirmationConsumer.Run consuming",
		zap.String(constvars.LoggingQueueKey, queue),
		zap.Int("prefetch", prefetch),
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				return errDeliveriesClosed
			}
			c.HandleDelivery(ctx, delivery)
		}
	}
}

// HandleDelivery acks a sent e-mail. A malformed body is dropped; a failed
// send is requeued once and dropped on redelivery.
func (c *BookingConfirmationConsumer) HandleDelivery(ctx context.Context, delivery amqp091.Delivery) {
	var message requests.BookingConfirmedMessage
	err := json.Unmarshal(delivery.Body, &message)
	if err != nil || message.Patient == "" {
		c.Log.Error("BookingConfirmationConsumer.HandleDelivery dropping malformed message",
			zap.String("message_id", delivery.MessageId),
			zap.Error(err),
		)
		c.settle(delivery.Nack(false, false))
		return
	}

	if message.RequestID != "" {
		ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, message.RequestID)
	}

	err = c.MailerService.SendEmail(ctx, c.RenderEmail(&message))
	if err != nil {
		requeue := !delivery.Redelivered
		c.Log.Error("BookingConfirmationConsumer.HandleDelivery error calling MailerService.SendEmail",
			zap.String(constvars.LoggingRequestIDKey, message.RequestID),
			zap.String(constvars.LoggingBookingIDKey, message.BookingID),
			zap.Bool("requeue", requeue),
			zap.Error(err),
		)
		c.settle(delivery.Nack(false, requeue))
		return
	}

	c.Log.Info("BookingConfirmationConsumer.HandleDelivery succeeded",
		zap.String(constvars.LoggingRequestIDKey, message.RequestID),
		zap.String(constvars.LoggingBookingIDKey, message.BookingID),
	)
	c.settle(delivery.Ack(false))
}

func (c *BookingConfirmationConsumer) RenderEmail(message *requests.BookingConfirmedMessage) *requests.EmailPayload {
	return &requests.EmailPayload{
		Subject: fmt.Sprintf(constvars.EmailBookingConfirmedSubjectFormat, message.Treatment, message.Date, message.Slot),
		From:    c.Sender,
		To:      []string{message.Patient},
		HTMLCode: fmt.Sprintf(constvars.EmailBookingConfirmedHTMLFormat,
			html.EscapeString(message.PatientName),
			html.EscapeString(message.Treatment),
			html.EscapeString(message.Date),
			html.EscapeString(message.Slot),
			html.EscapeString(c.ClinicAddress),
		),
	}
}

func (c *BookingConfirmationConsumer) settle(err error) {
	if err != nil {
		c.Log.Error("BookingConfirmationConsumer failed to settle delivery", zap.Error(err))
	}
}
