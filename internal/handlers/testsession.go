package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/wisecrew/careers/internal/ai"
	"github.com/wisecrew/careers/internal/models"
	"github.com/wisecrew/careers/internal/pipeline"
)

// getTestSession opens a scheduled assessment: it validates that the
// round exists and is in the Scheduled state, then returns the session
// details along with a generated question set for MCQ and coding
// rounds.
func (r *Router) getTestSession(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	refID := vars["refId"]

	round, err := pipeline.ParseRoundKind(vars["kind"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Unknown assessment kind")
		return
	}

	app, err := r.service.FindByReference(req.Context(), refID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	details := app.Schedule.Round(round)
	switch details.Status {
	case pipeline.RoundScheduled:
		// open
	case pipeline.RoundCompleted:
		respondError(w, http.StatusConflict, "This assessment has already been submitted")
		return
	default:
		respondError(w, http.StatusForbidden, "This assessment has not been scheduled")
		return
	}

	session := map[string]interface{}{
		"referenceId":   app.ReferenceID,
		"kind":          round.Kind(),
		"label":         round.Label(),
		"scheduledDate": details.ScheduledDate,
		"config":        details.Config,
	}

	// The interview round has no generated question set; peers meet in
	// the signaling room instead.
	if round != pipeline.Round3 {
		timeout := time.Duration(r.cfg.AI.TimeoutSecs) * time.Second
		ctx, cancel := context.WithTimeout(req.Context(), timeout)
		defer cancel()

		aiReq := questionRequestFromConfig(details.Config)
		if round == pipeline.Round1 {
			session["questions"] = r.questions.MCQs(ctx, aiReq)
		} else {
			session["questions"] = r.questions.Coding(ctx, aiReq)
		}
	} else {
		session["room"] = "/ws/interview/" + app.ReferenceID
	}

	respondJSON(w, http.StatusOK, session)
}

// SubmitTestRequest records an assessment result
type SubmitTestRequest struct {
	Score    string `json:"score"`
	Feedback string `json:"feedback,omitempty"`
}

// submitTest completes the round with the submitted result
func (r *Router) submitTest(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	refID := vars["refId"]

	round, err := pipeline.ParseRoundKind(vars["kind"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Unknown assessment kind")
		return
	}

	var body SubmitTestRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	app, err := r.service.CompleteRound(req.Context(), refID, round, body.Score, body.Feedback)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "submitted",
		"schedule": app.Schedule,
	})
}

func questionRequestFromConfig(cfg *models.TestConfig) ai.QuestionRequest {
	if cfg == nil {
		return ai.QuestionRequest{}
	}
	return ai.QuestionRequest{
		Difficulty: cfg.Difficulty,
		Domain:     cfg.Domain,
		Topic:      cfg.Topic,
		Count:      cfg.QuestionCount,
	}
}
