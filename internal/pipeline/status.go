package pipeline

// Status is the hiring pipeline position of an application. The set is
// open: admins may set any value at any time, and the progression below
// is a display order, not an enforced order.
type Status string

const (
	StatusReceived           Status = "Received"
	StatusUnderReview        Status = "Under Review"
	StatusShortlisted        Status = "Shortlisted"
	StatusInterviewScheduled Status = "Interview Scheduled"
	StatusFinalReview        Status = "Final Review"
	StatusOnHold             Status = "On Hold"
	StatusOfferSent          Status = "Offer Sent"
	StatusRejected           Status = "Rejected"
)

// displayOrder is the happy-path timeline rendered to candidates.
// On Hold and Rejected sit outside the timeline.
var displayOrder = []Status{
	StatusReceived,
	StatusUnderReview,
	StatusShortlisted,
	StatusInterviewScheduled,
	StatusFinalReview,
	StatusOfferSent,
}

// AllStatuses lists every status an admin may assign.
func AllStatuses() []Status {
	return []Status{
		StatusReceived,
		StatusUnderReview,
		StatusShortlisted,
		StatusInterviewScheduled,
		StatusFinalReview,
		StatusOnHold,
		StatusOfferSent,
		StatusRejected,
	}
}

// IsKnown reports whether s is one of the defined statuses.
func (s Status) IsKnown() bool {
	for _, known := range AllStatuses() {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s ends the pipeline.
func (s Status) IsTerminal() bool {
	return s == StatusOfferSent || s == StatusRejected
}

// DisplayStepIndex returns the zero-based position of s on the progress
// timeline, or -1 for statuses outside it (On Hold, Rejected, unknown).
func DisplayStepIndex(s Status) int {
	for i, step := range displayOrder {
		if s == step {
			return i
		}
	}
	return -1
}
