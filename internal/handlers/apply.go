package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wisecrew/careers/internal/services/recruiting"
)

const (
	maxResumeSize  = 5 << 20              // 5MB
	maxRequestSize = maxResumeSize + 1<<20 // resume plus form fields
)

var errResumeTooLarge = errors.New("resume exceeds the size limit")

// submitApplication handles the multipart application form
func (r *Router) submitApplication(w http.ResponseWriter, req *http.Request) {
	req.Body = http.MaxBytesReader(w, req.Body, maxRequestSize)
	if err := req.ParseMultipartForm(maxResumeSize); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid form payload")
		return
	}

	submit := recruiting.SubmitRequest{
		FullName:        req.FormValue("fullName"),
		Email:           strings.TrimSpace(req.FormValue("email")),
		Phone:           req.FormValue("phone"),
		Location:        req.FormValue("location"),
		JobID:           req.FormValue("jobId"),
		JobType:         req.FormValue("jobType"),
		JobTitle:        req.FormValue("jobTitle"),
		ExperienceYears: req.FormValue("experienceYears"),
		Skills:          req.FormValue("skills"),
		Education:       req.FormValue("education"),
		PortfolioURL:    req.FormValue("portfolioUrl"),
		LinkedInURL:     req.FormValue("linkedinUrl"),
		CoverLetter:     req.FormValue("coverLetter"),
	}

	// The resume file is optional for returning candidates; the service
	// rejects the submission when no stored resume exists either.
	file, header, err := req.FormFile("resume")
	if err == nil {
		defer file.Close()
		path, saveErr := r.saveResume(file, header.Filename)
		if saveErr != nil {
			if errors.Is(saveErr, errResumeTooLarge) {
				respondError(w, http.StatusRequestEntityTooLarge, "Resume file is too large (5MB limit)")
				return
			}
			respondError(w, http.StatusInternalServerError, "Failed to store resume")
			return
		}
		submit.ResumePath = path
	}

	referenceID, err := r.service.Submit(req.Context(), submit)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success":     true,
		"referenceId": referenceID,
		"message":     "Application received",
	})
}

// saveResume writes the uploaded file under the uploads directory with
// a collision-free name and returns the public path. Files over the
// size limit are rejected, never stored truncated.
func (r *Router) saveResume(file io.Reader, original string) (string, error) {
	if err := os.MkdirAll(r.cfg.UploadsDir, 0755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixNano(), sanitizeFilename(original))
	fullPath := filepath.Join(r.cfg.UploadsDir, name)
	dst, err := os.Create(fullPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	n, err := io.Copy(dst, io.LimitReader(file, maxResumeSize+1))
	if err != nil {
		os.Remove(fullPath)
		return "", err
	}
	if n > maxResumeSize {
		os.Remove(fullPath)
		return "", errResumeTooLarge
	}
	return "/uploads/" + name, nil
}

// sanitizeFilename strips path separators and odd characters from a
// client-supplied file name.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) {
		return "resume"
	}
	var b strings.Builder
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9',
			c == '.', c == '-', c == '_':
			b.WriteRune(c)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "resume"
	}
	return b.String()
}
