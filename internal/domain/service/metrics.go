package service

// EngagementMetrics records engine outcomes for observability.
type EngagementMetrics interface {
	NotificationSelected(notificationType string)
	SourceFailed(source string)
	ProximityAlert()
	ReminderFired()
	ReminderSuppressed()
	HistoryPruned(count int)
}
