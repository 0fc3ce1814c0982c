package recruiting

import (
	"errors"
	"fmt"
	"testing"

	"github.com/wisecrew/careers/internal/models"
	"github.com/wisecrew/careers/internal/pipeline"
)

func statusPtr(s pipeline.Status) *pipeline.Status { return &s }

func TestSubmitRequestValidate(t *testing.T) {
	valid := SubmitRequest{
		FullName:        "Asha Nair",
		Email:           "asha@example.com",
		Phone:           "+91 9000000000",
		Location:        "Kochi",
		JobID:           "general",
		ExperienceYears: "3",
		Skills:          "Go, SQL",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	missing := valid
	missing.Email = ""
	missing.Skills = "   "
	err := missing.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	ve, ok := AsValidation(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if _, found := ve.Fields["email"]; !found {
		t.Error("email should be flagged")
	}
	if _, found := ve.Fields["skills"]; !found {
		t.Error("blank skills should be flagged")
	}
	if _, found := ve.Fields["fullName"]; found {
		t.Error("fullName was provided and should not be flagged")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		"phone": "required",
		"email": "required",
	}}
	want := "validation failed: email, phone"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestAsValidation(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", NewValidationError("resume", "required"))
	ve, ok := AsValidation(wrapped)
	if !ok {
		t.Fatal("wrapped ValidationError not recognized")
	}
	if ve.Fields["resume"] != "required" {
		t.Errorf("unexpected fields: %v", ve.Fields)
	}

	if _, ok := AsValidation(errors.New("plain")); ok {
		t.Error("plain error should not match")
	}
}

func TestApplyPatchTerminalStatusNeedsForce(t *testing.T) {
	app := &models.Application{Status: pipeline.StatusOfferSent}

	_, err := applyPatch(app, UpdatePatch{Status: statusPtr(pipeline.StatusUnderReview)}, "6/1/2025")
	if !errors.Is(err, ErrTerminalStatus) {
		t.Fatalf("expected ErrTerminalStatus, got %v", err)
	}
	if app.Status != pipeline.StatusOfferSent {
		t.Errorf("refused patch must not mutate the status, got %s", app.Status)
	}

	if _, err := applyPatch(app, UpdatePatch{Status: statusPtr(pipeline.StatusUnderReview), Force: true}, "6/1/2025"); err != nil {
		t.Fatalf("forced update should pass: %v", err)
	}
	if app.Status != pipeline.StatusUnderReview {
		t.Errorf("forced status not applied, got %s", app.Status)
	}

	// Re-asserting the same terminal status needs no force
	rejected := &models.Application{Status: pipeline.StatusRejected}
	if _, err := applyPatch(rejected, UpdatePatch{Status: statusPtr(pipeline.StatusRejected)}, "6/1/2025"); err != nil {
		t.Errorf("same-status update on terminal application refused: %v", err)
	}
}

func TestApplyPatchUnknownStatus(t *testing.T) {
	app := &models.Application{Status: pipeline.StatusReceived}

	_, err := applyPatch(app, UpdatePatch{Status: statusPtr(pipeline.Status("Promoted"))}, "6/1/2025")
	ve, ok := AsValidation(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, found := ve.Fields["status"]; !found {
		t.Errorf("status should be flagged: %v", ve.Fields)
	}
}

func TestApplyPatchStampsAndFlags(t *testing.T) {
	notes := "strong portfolio"
	app := &models.Application{Status: pipeline.StatusShortlisted, LastUpdated: "5/20/2025"}

	becameScheduled, err := applyPatch(app, UpdatePatch{
		Status: statusPtr(pipeline.StatusInterviewScheduled),
		Notes:  &notes,
	}, "6/2/2025")
	if err != nil {
		t.Fatalf("patch failed: %v", err)
	}
	if !becameScheduled {
		t.Error("transition into Interview Scheduled should be reported")
	}
	if app.LastUpdated != "6/2/2025" {
		t.Errorf("lastUpdated not stamped, got %s", app.LastUpdated)
	}
	if app.Notes != notes {
		t.Errorf("notes not applied, got %q", app.Notes)
	}

	// Re-applying the same status must not re-report the transition
	becameScheduled, err = applyPatch(app, UpdatePatch{Status: statusPtr(pipeline.StatusInterviewScheduled)}, "6/3/2025")
	if err != nil {
		t.Fatalf("repeat patch failed: %v", err)
	}
	if becameScheduled {
		t.Error("unchanged status should not re-report the transition")
	}
}

func TestApplyProfileResumeHandling(t *testing.T) {
	req := SubmitRequest{
		FullName:        "Asha Nair",
		Email:           "asha@example.com",
		Phone:           "+91 9000000000",
		Location:        "Kochi",
		ExperienceYears: "3",
		Skills:          "Go, SQL",
	}

	// First submission without a file is refused
	fresh := &models.Candidate{Email: req.Email}
	if err := applyProfile(fresh, req); err == nil {
		t.Fatal("new candidate without a resume should be refused")
	}

	req.ResumePath = "/uploads/1-cv.pdf"
	if err := applyProfile(fresh, req); err != nil {
		t.Fatalf("applyProfile failed: %v", err)
	}
	if fresh.Name != "Asha Nair" || fresh.ResumePath != "/uploads/1-cv.pdf" {
		t.Errorf("profile not copied: %+v", fresh)
	}

	// Returning candidate keeps the stored file when none is uploaded
	returning := &models.Candidate{Email: req.Email, ResumePath: "/uploads/old-cv.pdf"}
	noFile := req
	noFile.ResumePath = ""
	noFile.Location = "Bengaluru"
	if err := applyProfile(returning, noFile); err != nil {
		t.Fatalf("returning candidate refused: %v", err)
	}
	if returning.ResumePath != "/uploads/old-cv.pdf" {
		t.Errorf("stored resume was dropped, got %q", returning.ResumePath)
	}
	if returning.Location != "Bengaluru" {
		t.Errorf("profile fields not refreshed, got %q", returning.Location)
	}

	// A new upload replaces the stored file
	if err := applyProfile(returning, req); err != nil {
		t.Fatalf("applyProfile failed: %v", err)
	}
	if returning.ResumePath != "/uploads/1-cv.pdf" {
		t.Errorf("new resume not stored, got %q", returning.ResumePath)
	}
}

func TestMatchesCandidateEmail(t *testing.T) {
	app := &models.Application{Candidate: &models.Candidate{Email: "asha@example.com"}}

	if !matchesCandidateEmail(app, "Asha@Example.COM") {
		t.Error("email match should be case-insensitive")
	}
	if matchesCandidateEmail(app, "other@example.com") {
		t.Error("different email should not match")
	}
	if matchesCandidateEmail(&models.Application{}, "asha@example.com") {
		t.Error("application without a loaded candidate should not match")
	}
}
