package constants

const (
	NotificationTaskAssigned        = "TASK_ASSIGNED"
	NotificationCompletionRequested = "COMPLETION_REQUESTED"
	NotificationCompletionApproved  = "COMPLETION_APPROVED"
	NotificationCompletionRejected  = "COMPLETION_REJECTED"
)
