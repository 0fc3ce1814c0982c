package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/wisecrew/careers/internal/ai"
	"github.com/wisecrew/careers/internal/config"
	"github.com/wisecrew/careers/internal/database"
	"github.com/wisecrew/careers/internal/middleware"
	"github.com/wisecrew/careers/internal/pipeline"
	"github.com/wisecrew/careers/internal/services/hrimport"
	"github.com/wisecrew/careers/internal/services/recruiting"
	"github.com/wisecrew/careers/internal/websocket"
)

// Router wraps the mux router with the portal's collaborators
type Router struct {
	*mux.Router
	db        *database.DB
	cfg       *config.Config
	service   *recruiting.Service
	questions *ai.QuestionGenerator
	hub       *websocket.Hub
	importer  *hrimport.Service
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(db *database.DB, cfg *config.Config, service *recruiting.Service, questions *ai.QuestionGenerator, hub *websocket.Hub, importer *hrimport.Service) *Router {
	r := &Router{
		Router:    mux.NewRouter(),
		db:        db,
		cfg:       cfg,
		service:   service,
		questions: questions,
		hub:       hub,
		importer:  importer,
	}

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	// Public job board
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/jobs", r.listJobs).Methods("GET")
	api.HandleFunc("/jobs/{id}", r.getJob).Methods("GET")

	// Application intake and candidate portal
	api.HandleFunc("/apply", r.submitApplication).Methods("POST")
	api.HandleFunc("/candidate/dashboard", r.candidateDashboard).Methods("GET")

	limiter := middleware.NewRateLimiter()
	clientKey := middleware.ClientIP
	if cfg.TrustProxy {
		clientKey = middleware.ForwardedClientIP
	}
	loginLimit := middleware.RateLimit(limiter, clientKey, 10, 15*time.Minute)
	api.Handle("/candidate/login", loginLimit(http.HandlerFunc(r.candidateLogin))).Methods("POST")

	// Assessment surface
	api.HandleFunc("/generate-questions", r.generateQuestions).Methods("POST")
	api.HandleFunc("/test/{kind}/{refId}", r.getTestSession).Methods("GET")
	api.HandleFunc("/test/{kind}/{refId}/submit", r.submitTest).Methods("POST")

	// Console auth
	api.HandleFunc("/auth/login", r.adminLogin).Methods("POST")

	// Admin console (protected)
	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	admin.HandleFunc("/applications", r.listApplications).Methods("GET")
	admin.HandleFunc("/application/{refId}", r.updateApplication).Methods("PUT")
	admin.HandleFunc("/application/{refId}/schedule", r.scheduleRound).Methods("POST")
	admin.HandleFunc("/application/{refId}/summary.pdf", r.applicationSummaryPDF).Methods("GET")
	admin.HandleFunc("/jobs", r.adminListJobs).Methods("GET")
	admin.HandleFunc("/jobs", r.createJob).Methods("POST")
	admin.HandleFunc("/jobs/{id}", r.updateJob).Methods("PUT")
	admin.HandleFunc("/jobs/{id}", r.deleteJob).Methods("DELETE")
	admin.HandleFunc("/import/jobs", r.importJobs).Methods("POST")

	// Interview signaling
	r.HandleFunc("/ws/interview/{refId}", r.interviewRoom)

	// Uploaded resumes
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir))))

	return r
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// interviewRoom joins a peer to the signaling room of one application
func (r *Router) interviewRoom(w http.ResponseWriter, req *http.Request) {
	refID := mux.Vars(req)["refId"]
	websocket.ServeWs(r.hub, refID, w, req)
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}

// respondServiceError maps recruiting errors onto HTTP statuses
func respondServiceError(w http.ResponseWriter, err error) {
	if ve, ok := recruiting.AsValidation(err); ok {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": ve.Fields,
		})
		return
	}
	switch {
	case errors.Is(err, recruiting.ErrNotFound):
		respondError(w, http.StatusNotFound, "Record not found")
	case errors.Is(err, recruiting.ErrAuthFailed):
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, recruiting.ErrTerminalStatus):
		respondError(w, http.StatusConflict, "Application is in a terminal status")
	case errors.Is(err, pipeline.ErrUnknownRound):
		respondError(w, http.StatusBadRequest, "Unknown assessment round")
	case errors.Is(err, pipeline.ErrRoundFinished), errors.Is(err, pipeline.ErrRoundNotAssigned):
		respondError(w, http.StatusConflict, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
