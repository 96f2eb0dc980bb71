package constants

// NATS Subjects
const (
	// Report intake
	SubjectReportCreated = "report.created"

	// Broadcast dispatcher
	SubjectBroadcastRequested = "broadcast.requested"
)
