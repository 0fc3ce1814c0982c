package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/wisecrew/careers/internal/ai"
)

// GenerateQuestionsRequest asks for an assessment question set
type GenerateQuestionsRequest struct {
	Type       string `json:"type"` // mcq or coding
	Difficulty string `json:"difficulty"`
	Domain     string `json:"domain"`
	Topic      string `json:"topic"`
	Count      int    `json:"count"`
}

// generateQuestions produces a question set. Generation problems fall
// back to the built-in bank, so this endpoint always answers 200.
func (r *Router) generateQuestions(w http.ResponseWriter, req *http.Request) {
	var body GenerateQuestionsRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	timeout := time.Duration(r.cfg.AI.TimeoutSecs) * time.Second
	ctx, cancel := context.WithTimeout(req.Context(), timeout)
	defer cancel()

	aiReq := ai.QuestionRequest{
		Difficulty: body.Difficulty,
		Domain:     body.Domain,
		Topic:      body.Topic,
		Count:      body.Count,
	}

	switch body.Type {
	case "coding":
		respondJSON(w, http.StatusOK, r.questions.Coding(ctx, aiReq))
	case "", "mcq":
		respondJSON(w, http.StatusOK, r.questions.MCQs(ctx, aiReq))
	default:
		respondError(w, http.StatusBadRequest, "Unknown question type")
	}
}
