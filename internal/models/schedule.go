package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wisecrew/careers/internal/pipeline"
)

// TestConfig drives AI question generation for a scheduled round.
// The question count is ignored for the interview round.
type TestConfig struct {
	Difficulty    string `json:"difficulty"` // Easy, Medium, Hard
	Domain        string `json:"domain"`
	Topic         string `json:"topic"`
	QuestionCount int    `json:"questionCount"`
}

// RoundDetails is the state of a single assessment round.
type RoundDetails struct {
	Status        pipeline.RoundStatus `json:"status"`
	ScheduledDate string               `json:"scheduledDate,omitempty"` // "<date> <time>"
	Link          string               `json:"link,omitempty"`
	Score         string               `json:"score,omitempty"`
	Feedback      string               `json:"feedback,omitempty"`
	Config        *TestConfig          `json:"config,omitempty"`
}

// Schedule is the fixed 3-round assessment plan of one application.
// A fixed record accessed through the Round enum, never a dynamic map.
type Schedule struct {
	Round1 RoundDetails `json:"round1"` // MCQ
	Round2 RoundDetails `json:"round2"` // Coding
	Round3 RoundDetails `json:"round3"` // Video interview
}

// NewSchedule returns the default schedule: all three rounds Pending.
func NewSchedule() Schedule {
	pending := RoundDetails{Status: pipeline.RoundPending}
	return Schedule{Round1: pending, Round2: pending, Round3: pending}
}

// Round returns a pointer to the details of the given round.
func (s *Schedule) Round(r pipeline.Round) *RoundDetails {
	switch r {
	case pipeline.Round1:
		return &s.Round1
	case pipeline.Round2:
		return &s.Round2
	case pipeline.Round3:
		return &s.Round3
	}
	return nil
}

// normalize fills missing round statuses so every schedule read from
// storage always carries all three rounds.
func (s *Schedule) normalize() {
	for _, r := range pipeline.Rounds() {
		if d := s.Round(r); d.Status == "" {
			d.Status = pipeline.RoundPending
		}
	}
}

// Value implements driver.Valuer so the schedule persists as jsonb.
func (s Schedule) Value() (driver.Value, error) {
	s.normalize()
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *Schedule) Scan(value interface{}) error {
	if value == nil {
		*s = NewSchedule()
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported schedule column type %T", value)
	}

	if err := json.Unmarshal(data, s); err != nil {
		return errors.New("malformed schedule payload")
	}
	s.normalize()
	return nil
}

// GormDataType tells GORM the column type for migrations.
func (Schedule) GormDataType() string {
	return "jsonb"
}
