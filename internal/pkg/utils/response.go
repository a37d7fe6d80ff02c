package utils

import (
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/exceptions"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// BuildErrorResponse writes err in the same envelope as successes. Dev
// messages and locations are only exposed outside production.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	response := exceptions.CustomError{
		StatusCode:    constvars.StatusInternalServerError,
		ClientMessage: constvars.ErrClientSomethingWrongWithApplication,
	}

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		response.StatusCode = customErr.StatusCode
		response.ClientMessage = customErr.ClientMessage
		log.Error(customErr.DevMessage,
			zap.Int("status_code", customErr.StatusCode),
			zap.Any("locations", customErr.Locations),
		)
		if GetEnvString("APP_ENV", constvars.AppEnvDevelopment) != constvars.AppEnvProduction {
			response.DevMessage = customErr.DevMessage
			response.Locations = customErr.Locations
		}
	} else {
		log.Error("unclassified error", zap.Error(err))
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(response.StatusCode)
	json.NewEncoder(w).Encode(response)
}
