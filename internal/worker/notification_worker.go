package worker

import (
	"github.com/spec-kit/newsletter-service/internal/service"
)

// StartNotificationWorker subscribes the notification handlers to subscription events.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
