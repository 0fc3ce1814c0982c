package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/wisecrew/careers/internal/models"
	"github.com/wisecrew/careers/internal/pipeline"
	"github.com/wisecrew/careers/internal/services/printer"
	"github.com/wisecrew/careers/internal/services/recruiting"
	"github.com/wisecrew/careers/internal/utils"
)

// LoginRequest represents a console login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// adminLogin handles console user login
func (r *Router) adminLogin(w http.ResponseWriter, req *http.Request) {
	var loginReq LoginRequest
	if err := json.NewDecoder(req.Body).Decode(&loginReq); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	// 1. Find User
	var user models.UserAuth
	if err := r.db.Where("email = ? AND is_active = ?", loginReq.Email, true).First(&user).Error; err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	// 2. Check Password
	if !utils.CheckPasswordHash(loginReq.Password, user.Password) {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	// 3. Update Last Login
	now := time.Now()
	user.LastLogin = &now
	r.db.Save(&user)

	// 4. Generate Tokens
	accessToken, refreshToken, err := utils.GenerateTokens(&user, r.cfg.JWTSecret)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate tokens")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"tokens": map[string]string{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		},
		"user": user,
	})
}

// listApplications returns every application flattened for the console
func (r *Router) listApplications(w http.ResponseWriter, req *http.Request) {
	items, err := r.service.ListAll(req.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load applications")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// UpdateApplicationRequest is the partial console update payload
type UpdateApplicationRequest struct {
	Status   *pipeline.Status `json:"status,omitempty"`
	Schedule *models.Schedule `json:"schedule,omitempty"`
	Notes    *string          `json:"notes,omitempty"`
	Force    bool             `json:"force,omitempty"`
}

// updateApplication applies a partial update to one application
func (r *Router) updateApplication(w http.ResponseWriter, req *http.Request) {
	refID := mux.Vars(req)["refId"]

	var body UpdateApplicationRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	app, err := r.service.Update(req.Context(), refID, recruiting.UpdatePatch{
		Status:   body.Status,
		Schedule: body.Schedule,
		Notes:    body.Notes,
		Force:    body.Force,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, app)
}

// ScheduleRoundRequest assigns one assessment round
type ScheduleRoundRequest struct {
	Round  string             `json:"round"` // round1, round2, round3
	Date   string             `json:"date"`
	Time   string             `json:"time"`
	Config *models.TestConfig `json:"config,omitempty"`
}

// scheduleRound assigns a round and moves the application to
// Interview Scheduled
func (r *Router) scheduleRound(w http.ResponseWriter, req *http.Request) {
	refID := mux.Vars(req)["refId"]

	var body ScheduleRoundRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	round, err := pipeline.ParseRound(body.Round)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Unknown assessment round")
		return
	}

	app, err := r.service.ScheduleRound(req.Context(), refID, round, body.Date, body.Time, body.Config)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, app)
}

// applicationSummaryPDF streams a printable summary for the panel
func (r *Router) applicationSummaryPDF(w http.ResponseWriter, req *http.Request) {
	refID := mux.Vars(req)["refId"]

	app, err := r.service.FindByReference(req.Context(), refID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	baseURL := "http://" + req.Host
	pdf, err := printer.GenerateApplicationSummaryPDF(app, baseURL)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s-summary.pdf", refID))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
