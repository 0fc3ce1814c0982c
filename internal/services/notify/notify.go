package notify

import "log"

// Notifier delivers applicant-facing messages. The delivery channel
// (email/SMS) is an external collaborator; the core only invokes it.
type Notifier interface {
	ApplicationReceived(email, referenceID string)
	InterviewScheduled(email, referenceID string)
	RoundScheduled(email, referenceID, roundLabel, scheduledDate string)
}

// LogNotifier writes notifications to the process log. It stands in for
// a real mail provider in every environment this system ships to.
type LogNotifier struct{}

// NewLogNotifier returns the log-backed notifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) ApplicationReceived(email, referenceID string) {
	log.Printf("[EMAIL SENT] To: %s | Subject: Application Received %s", email, referenceID)
}

func (n *LogNotifier) InterviewScheduled(email, referenceID string) {
	log.Printf("[EMAIL SENT] To: %s | Subject: Interview Scheduled. Check your portal. (%s)", email, referenceID)
}

func (n *LogNotifier) RoundScheduled(email, referenceID, roundLabel, scheduledDate string) {
	log.Printf("[EMAIL SENT] To: %s | Subject: %s scheduled for %s. Check your portal. (%s)",
		email, roundLabel, scheduledDate, referenceID)
}
