package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/wisecrew/careers/internal/models"
	"gorm.io/gorm"
)

// listJobs returns the active postings, newest first
func (r *Router) listJobs(w http.ResponseWriter, req *http.Request) {
	var jobs []models.Job
	query := r.db.Where("is_active = ?", true).Order("created_at DESC")

	if dept := req.URL.Query().Get("department"); dept != "" {
		query = query.Where("department = ?", dept)
	}
	if jobType := req.URL.Query().Get("type"); jobType != "" {
		query = query.Where("type = ?", jobType)
	}

	if err := query.Find(&jobs).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load jobs")
		return
	}
	respondJSON(w, http.StatusOK, jobs)
}

// getJob returns one posting by ID
func (r *Router) getJob(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]

	var job models.Job
	if err := r.db.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Job not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to load job")
		return
	}
	respondJSON(w, http.StatusOK, job)
}

// adminListJobs returns every posting, inactive included
func (r *Router) adminListJobs(w http.ResponseWriter, req *http.Request) {
	var jobs []models.Job
	if err := r.db.Order("created_at DESC").Find(&jobs).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load jobs")
		return
	}
	respondJSON(w, http.StatusOK, jobs)
}

// createJob adds a posting from the console
func (r *Router) createJob(w http.ResponseWriter, req *http.Request) {
	var job models.Job
	if err := json.NewDecoder(req.Body).Decode(&job); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if job.Title == "" || job.Type == "" {
		respondError(w, http.StatusBadRequest, "Title and type are required")
		return
	}

	// ID and timestamps come from the database
	job.ID = ""
	job.ExternalID = nil

	if err := r.db.Create(&job).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create job")
		return
	}
	respondJSON(w, http.StatusCreated, job)
}

// updateJob edits a posting
func (r *Router) updateJob(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]

	var job models.Job
	if err := r.db.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Job not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to load job")
		return
	}

	var patch models.Job
	if err := json.NewDecoder(req.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	// Identity columns never change through this endpoint
	patch.ID = job.ID
	patch.ExternalID = job.ExternalID
	patch.CreatedAt = job.CreatedAt

	if err := r.db.Save(&patch).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update job")
		return
	}
	respondJSON(w, http.StatusOK, patch)
}

// deleteJob soft-deletes a posting; applications keep their snapshot
// of the job title either way
func (r *Router) deleteJob(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]

	result := r.db.Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete job")
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Job not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// importJobs triggers an on-demand HRIS import
func (r *Router) importJobs(w http.ResponseWriter, req *http.Request) {
	if r.importer == nil || !r.importer.Enabled() {
		respondError(w, http.StatusConflict, "HRIS import is not configured")
		return
	}
	if err := r.importer.RunImport(); err != nil {
		respondError(w, http.StatusBadGateway, "HRIS import failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "imported"})
}
