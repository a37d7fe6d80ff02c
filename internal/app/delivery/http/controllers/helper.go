package controllers

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

func requestIDFrom(log *zap.Logger, w http.ResponseWriter, r *http.Request, handlerName string) (string, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		log.Error(handlerName + " requestID not found in context")
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}
	return requestID, true
}

func withRequestTimeout(r *http.Request, cfg *config.InternalConfig) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), time.Duration(cfg.App.RequestTimeoutInSeconds)*time.Second)
}

func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, ctx context.Context, err error) {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
