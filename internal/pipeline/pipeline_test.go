package pipeline

import "testing"

func TestDisplayStepIndex(t *testing.T) {
	cases := []struct {
		status Status
		want   int
	}{
		{StatusReceived, 0},
		{StatusUnderReview, 1},
		{StatusShortlisted, 2},
		{StatusInterviewScheduled, 3},
		{StatusFinalReview, 4},
		{StatusOfferSent, 5},
		{StatusOnHold, -1},
		{StatusRejected, -1},
		{Status("Bogus"), -1},
	}

	for _, c := range cases {
		if got := DisplayStepIndex(c.status); got != c.want {
			t.Errorf("DisplayStepIndex(%q) = %d, want %d", c.status, got, c.want)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	if !StatusOfferSent.IsTerminal() || !StatusRejected.IsTerminal() {
		t.Error("Offer Sent and Rejected should be terminal")
	}
	if StatusOnHold.IsTerminal() || StatusReceived.IsTerminal() {
		t.Error("On Hold and Received should not be terminal")
	}
}

func TestStatusIsKnown(t *testing.T) {
	for _, s := range AllStatuses() {
		if !s.IsKnown() {
			t.Errorf("%q should be known", s)
		}
	}
	if Status("Archived").IsKnown() {
		t.Error("Archived is not a valid status")
	}
}

func TestParseRound(t *testing.T) {
	for _, r := range Rounds() {
		parsed, err := ParseRound(r.Key())
		if err != nil {
			t.Fatalf("ParseRound(%q): %v", r.Key(), err)
		}
		if parsed != r {
			t.Errorf("ParseRound(%q) = %v, want %v", r.Key(), parsed, r)
		}
	}

	if _, err := ParseRound("round4"); err == nil {
		t.Error("round4 should not parse")
	}
}

func TestRoundKindsAndLinks(t *testing.T) {
	cases := []struct {
		round Round
		kind  string
		link  string
	}{
		{Round1, "mcq", "/test/mcq/WCR-2025-1234"},
		{Round2, "coding", "/test/coding/WCR-2025-1234"},
		{Round3, "interview", "/test/interview/WCR-2025-1234"},
	}

	for _, c := range cases {
		if c.round.Kind() != c.kind {
			t.Errorf("Round %d kind = %q, want %q", c.round, c.round.Kind(), c.kind)
		}
		if got := c.round.TestLink("WCR-2025-1234"); got != c.link {
			t.Errorf("Round %d link = %q, want %q", c.round, got, c.link)
		}
		back, err := ParseRoundKind(c.kind)
		if err != nil || back != c.round {
			t.Errorf("ParseRoundKind(%q) = %v, %v", c.kind, back, err)
		}
	}
}

func TestRoundTransitions(t *testing.T) {
	// Assigning is allowed from Pending and Scheduled, closed once Completed.
	if err := CanSchedule(RoundPending); err != nil {
		t.Errorf("schedule from Pending: %v", err)
	}
	if err := CanSchedule(RoundScheduled); err != nil {
		t.Errorf("reschedule from Scheduled: %v", err)
	}
	if err := CanSchedule(RoundCompleted); err != ErrRoundFinished {
		t.Errorf("schedule from Completed: got %v, want ErrRoundFinished", err)
	}

	// Completion requires a prior assignment.
	if err := CanComplete(RoundScheduled); err != nil {
		t.Errorf("complete from Scheduled: %v", err)
	}
	if err := CanComplete(RoundPending); err != ErrRoundNotAssigned {
		t.Errorf("complete from Pending: got %v, want ErrRoundNotAssigned", err)
	}
	if err := CanComplete(RoundCompleted); err != ErrRoundFinished {
		t.Errorf("complete from Completed: got %v, want ErrRoundFinished", err)
	}
}
