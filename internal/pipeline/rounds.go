package pipeline

import (
	"errors"
	"fmt"
)

// Round identifies one of the three fixed assessment stages.
type Round int

const (
	Round1 Round = 1 // MCQ
	Round2 Round = 2 // Coding
	Round3 Round = 3 // Video interview
)

// RoundStatus is the sub-state of a single round.
type RoundStatus string

const (
	RoundPending   RoundStatus = "Pending"
	RoundScheduled RoundStatus = "Scheduled"
	RoundCompleted RoundStatus = "Completed"
)

var (
	ErrUnknownRound     = errors.New("unknown round")
	ErrRoundNotAssigned = errors.New("round is not scheduled")
	ErrRoundFinished    = errors.New("round already completed")
)

// Rounds lists the three stages in order.
func Rounds() []Round {
	return []Round{Round1, Round2, Round3}
}

// ParseRound maps the wire keys round1/round2/round3 to a Round.
func ParseRound(key string) (Round, error) {
	switch key {
	case "round1":
		return Round1, nil
	case "round2":
		return Round2, nil
	case "round3":
		return Round3, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRound, key)
}

// ParseRoundKind maps a test kind (mcq/coding/interview) to its round.
func ParseRoundKind(kind string) (Round, error) {
	for _, r := range Rounds() {
		if r.Kind() == kind {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: kind %q", ErrUnknownRound, kind)
}

// Key returns the wire key used in schedule payloads.
func (r Round) Key() string {
	return fmt.Sprintf("round%d", int(r))
}

// Kind returns the test kind segment used in access links.
func (r Round) Kind() string {
	switch r {
	case Round1:
		return "mcq"
	case Round2:
		return "coding"
	case Round3:
		return "interview"
	}
	return ""
}

// Label is the human-readable stage name.
func (r Round) Label() string {
	switch r {
	case Round1:
		return "MCQ Assessment"
	case Round2:
		return "Coding Assessment"
	case Round3:
		return "Virtual Interview"
	}
	return ""
}

// TestLink builds the candidate-facing access link for a round.
func (r Round) TestLink(referenceID string) string {
	return fmt.Sprintf("/test/%s/%s", r.Kind(), referenceID)
}

// CanSchedule reports whether a round in state from may be (re)assigned.
// Rescheduling an already-scheduled round is allowed; a completed round
// is closed.
func CanSchedule(from RoundStatus) error {
	if from == RoundCompleted {
		return ErrRoundFinished
	}
	return nil
}

// CanComplete reports whether a round in state from may record a result.
func CanComplete(from RoundStatus) error {
	switch from {
	case RoundScheduled:
		return nil
	case RoundCompleted:
		return ErrRoundFinished
	default:
		return ErrRoundNotAssigned
	}
}
