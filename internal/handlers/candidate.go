package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/wisecrew/careers/internal/pipeline"
)

// CandidateLoginRequest is the tracker login payload: the candidate
// proves knowledge of their reference ID and the email it was filed
// under.
type CandidateLoginRequest struct {
	ReferenceID string `json:"referenceId"`
	Email       string `json:"email"`
}

// candidateLogin verifies the (referenceId, email) pair and returns
// the application with its progress position
func (r *Router) candidateLogin(w http.ResponseWriter, req *http.Request) {
	var loginReq CandidateLoginRequest
	if err := json.NewDecoder(req.Body).Decode(&loginReq); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	loginReq.ReferenceID = strings.TrimSpace(loginReq.ReferenceID)
	loginReq.Email = strings.TrimSpace(loginReq.Email)
	if loginReq.ReferenceID == "" || loginReq.Email == "" {
		respondError(w, http.StatusBadRequest, "Reference ID and email are required")
		return
	}

	app, err := r.service.Authenticate(req.Context(), loginReq.ReferenceID, loginReq.Email)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"candidate":   app.Candidate,
		"application": app,
		"currentStep": pipeline.DisplayStepIndex(app.Status),
	})
}

// candidateDashboard returns the profile and all applications filed
// under an email
func (r *Router) candidateDashboard(w http.ResponseWriter, req *http.Request) {
	email := strings.TrimSpace(req.URL.Query().Get("email"))
	if email == "" {
		respondError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	candidate, apps, err := r.service.FindByCandidateEmail(req.Context(), email)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"candidate":    candidate,
		"applications": apps,
	})
}
