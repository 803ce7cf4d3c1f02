package notifier

import (
	"mediboard-service/internal/pkg/constvars"
	"mediboard-service/internal/pkg/dto/responses"
	"mediboard-service/internal/pkg/utils"
	"time"
)

func NewSuccessNotification(message, resource string) responses.Notification {
	return responses.Notification{
		ID:        utils.GenerateNotificationID(),
		Level:     constvars.NotificationLevelSuccess,
		Message:   message,
		Resource:  resource,
		CreatedAt: time.Now(),
	}
}

func NewErrorNotification(message, resource string) responses.Notification {
	return responses.Notification{
		ID:        utils.GenerateNotificationID(),
		Level:     constvars.NotificationLevelError,
		Message:   message,
		Resource:  resource,
		CreatedAt: time.Now(),
	}
}
