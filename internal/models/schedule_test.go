package models

import (
	"testing"

	"github.com/wisecrew/careers/internal/pipeline"
)

func TestNewSchedule(t *testing.T) {
	s := NewSchedule()
	for _, r := range pipeline.Rounds() {
		if s.Round(r).Status != pipeline.RoundPending {
			t.Errorf("round %d should start Pending, got %s", r, s.Round(r).Status)
		}
	}
}

func TestScheduleScanRoundTrip(t *testing.T) {
	s := NewSchedule()
	s.Round1.Status = pipeline.RoundScheduled
	s.Round1.ScheduledDate = "2026-09-01 10:00"
	s.Round1.Link = "/test/mcq/WCR-2026-1234"
	s.Round1.Config = &TestConfig{Difficulty: "Medium", Topic: "Go", QuestionCount: 10}

	value, err := s.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}

	var loaded Schedule
	if err := loaded.Scan(value); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if loaded.Round1.Status != pipeline.RoundScheduled {
		t.Errorf("round1 status lost: %s", loaded.Round1.Status)
	}
	if loaded.Round1.Config == nil || loaded.Round1.Config.QuestionCount != 10 {
		t.Errorf("round1 config lost: %+v", loaded.Round1.Config)
	}
	if loaded.Round2.Status != pipeline.RoundPending {
		t.Errorf("untouched round should stay Pending, got %s", loaded.Round2.Status)
	}
}

func TestScheduleScanFillsMissingRounds(t *testing.T) {
	var s Schedule
	payload := `{"round1":{"status":"Completed","score":"8/10"}}`
	if err := s.Scan([]byte(payload)); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if s.Round1.Status != pipeline.RoundCompleted || s.Round1.Score != "8/10" {
		t.Errorf("round1 not loaded: %+v", s.Round1)
	}
	if s.Round2.Status != pipeline.RoundPending || s.Round3.Status != pipeline.RoundPending {
		t.Error("missing rounds should default to Pending")
	}

	var fromNil Schedule
	if err := fromNil.Scan(nil); err != nil {
		t.Fatalf("nil scan failed: %v", err)
	}
	if fromNil.Round1.Status != pipeline.RoundPending {
		t.Error("nil column should yield a fresh schedule")
	}

	var bad Schedule
	if err := bad.Scan([]byte("{broken")); err == nil {
		t.Error("malformed payload should error")
	}
}
