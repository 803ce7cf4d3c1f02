package utils

import (
	"errors"
	"mediboard-service/internal/pkg/constvars"
	"mediboard-service/internal/pkg/dto/responses"
	"mediboard-service/internal/pkg/exceptions"
	"net/http"
	"time"

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

// BuildSuccessResponseWithNotification attaches the toast payload the console
// renders after a mutation.
func BuildSuccessResponseWithNotification(w http.ResponseWriter, code int, notification *responses.Notification, data interface{}) {
	response := responses.ResponseDTO{
		Success:      true,
		Message:      notification.Message,
		Data:         data,
		Notification: notification,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// BuildErrorResponse renders the error envelope. Error outcomes carry a
// notification just like successes do, so the console always has a toast to
// show.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		log.Error(customErr.DevMessage,
			zap.String("file", customErr.Location.File),
			zap.Int("line", customErr.Location.Line),
			zap.String("function_name", customErr.Location.FunctionName),
		)
	} else {
		log.Error(err.Error())
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	response := responses.ResponseDTO{
		Success: false,
		Message: clientMessage,
		Notification: &responses.Notification{
			ID:        GenerateNotificationID(),
			Level:     constvars.NotificationLevelError,
			Message:   clientMessage,
			CreatedAt: time.Now(),
		},
	}
	json.NewEncoder(w).Encode(response)
}
