package smtp

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/drivers/mailer"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/exceptions"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpService struct {
	Client   *mailer.SMTPClient
	Log      *zap.Logger
	sendMail sendMailFunc
}

func NewSmtpService(client *mailer.SMTPClient, logger *zap.Logger) contracts.MailerService {
	return &smtpService{
		Client:   client,
		Log:      logger,
		sendMail: smtp.SendMail,
	}
}

func (svc *smtpService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	svc.Log.Info("smtpService.SendEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Strings(constvars.LoggingEmailKey, request.To),
	)

	if len(request.To) == 0 {
		return exceptions.ErrSMTPSendEmail(errors.New("no recipient"), svc.Client.Host)
	}

	recipients := append(append(append([]string{}, request.To...), request.Cc...), request.Bcc...)
	msg := []byte(fmt.Sprintf(constvars.EmailSendHTMLFormat, request.From, strings.Join(request.To, ", "), request.Subject, request.HTMLCode))
	addr := fmt.Sprintf("%s:%d", svc.Client.Host, svc.Client.Port)

	err := svc.sendMail(addr, svc.Client.Auth, request.From, recipients, msg)
	if err != nil {
		svc.Log.Error("smtpService.SendEmail error calling smtp.SendMail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}

	svc.Log.Info("smtpService.SendEmail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
