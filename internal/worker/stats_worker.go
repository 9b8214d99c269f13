package worker

import (
	"github.com/spec-kit/civic-voice/internal/service"
)

// StartStatsWorker registers best-effort stat handlers on the event bus.
func StartStatsWorker(statsService *service.StatsService) {
	if statsService == nil {
		return
	}
	statsService.RegisterHandlers()
}

// StartNotificationWorker registers notification handlers.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
