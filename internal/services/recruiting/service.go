package recruiting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wisecrew/careers/internal/database"
	"github.com/wisecrew/careers/internal/models"
	"github.com/wisecrew/careers/internal/pipeline"
	"github.com/wisecrew/careers/internal/services/notify"
	"github.com/wisecrew/careers/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service is the application record store plus the status/schedule
// state machine layered on top of it. It is the single persistence
// path for applications; handlers never touch the tables directly.
type Service struct {
	db       *database.DB
	notifier notify.Notifier
	now      func() time.Time
}

// NewService wires the store with its notification collaborator.
func NewService(db *database.DB, notifier notify.Notifier) *Service {
	return &Service{
		db:       db,
		notifier: notifier,
		now:      time.Now,
	}
}

// SubmitRequest is the parsed application form.
type SubmitRequest struct {
	FullName        string
	Email           string
	Phone           string
	Location        string
	JobID           string // posting ID, or "general" for an open application
	JobType         string
	JobTitle        string
	ExperienceYears string
	Skills          string
	Education       string
	PortfolioURL    string
	LinkedInURL     string
	CoverLetter     string
	ResumePath      string // empty when no new file was uploaded
}

// Validate checks the required form fields. The resume is checked in
// Submit because a returning candidate may reuse a stored file.
func (r *SubmitRequest) Validate() error {
	fields := map[string]string{}
	required := []struct{ name, value string }{
		{"fullName", r.FullName},
		{"email", r.Email},
		{"phone", r.Phone},
		{"location", r.Location},
		{"jobId", r.JobID},
		{"experienceYears", r.ExperienceYears},
		{"skills", r.Skills},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			fields[f.name] = "this field is required"
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Submit creates the application: candidate upsert plus application
// insert in one transaction, so neither exists without the other.
// Returns the generated reference ID.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	now := s.now()
	date := utils.CalendarDate(now)

	// Resolve the posting. "general" (or no selection) files a general
	// application with a nil job association.
	var jobID *string
	jobTitle := req.JobTitle
	internship := strings.EqualFold(req.JobType, "Internship")

	if req.JobID != "" && req.JobID != "general" {
		var job models.Job
		if err := s.db.WithContext(ctx).First(&job, "id = ?", req.JobID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", NewValidationError("jobId", "unknown job posting")
			}
			return "", fmt.Errorf("job lookup: %w", err)
		}
		jobID = &job.ID
		if jobTitle == "" {
			jobTitle = job.Title
		}
		internship = internship || job.IsInternship()
	}
	if jobTitle == "" {
		jobTitle = models.GeneralApplicationTitle
	}

	var referenceID string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Candidate upsert by email (profile reuse)
		var candidate models.Candidate
		err := tx.Where("email = ?", req.Email).First(&candidate).Error
		switch {
		case err == nil:
			if err := applyProfile(&candidate, req); err != nil {
				return err
			}
			if err := tx.Save(&candidate).Error; err != nil {
				return fmt.Errorf("candidate update: %w", err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			candidate = models.Candidate{Email: req.Email}
			if err := applyProfile(&candidate, req); err != nil {
				return err
			}
			if err := tx.Create(&candidate).Error; err != nil {
				return fmt.Errorf("candidate create: %w", err)
			}
		default:
			return fmt.Errorf("candidate lookup: %w", err)
		}

		// Reference IDs are random; re-roll on the rare collision.
		for attempt := 0; attempt < 5; attempt++ {
			id := utils.GenerateReferenceID(internship, now)
			var count int64
			if err := tx.Model(&models.Application{}).Where("reference_id = ?", id).Count(&count).Error; err != nil {
				return fmt.Errorf("reference check: %w", err)
			}
			if count == 0 {
				referenceID = id
				break
			}
		}
		if referenceID == "" {
			return errors.New("could not allocate a unique reference id")
		}

		app := models.Application{
			ReferenceID: referenceID,
			Status:      pipeline.StatusReceived,
			AppliedDate: date,
			LastUpdated: date,
			JobTitle:    jobTitle,
			CoverLetter: req.CoverLetter,
			Schedule:    models.NewSchedule(),
			JobID:       jobID,
			CandidateID: candidate.ID,
		}
		if err := tx.Create(&app).Error; err != nil {
			return fmt.Errorf("application create: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.notifier.ApplicationReceived(req.Email, referenceID)
	return referenceID, nil
}

// applyProfile copies the form fields onto the candidate profile. A
// stored resume is kept when the submission carries no new file; when
// neither exists the submission is refused.
func applyProfile(c *models.Candidate, req SubmitRequest) error {
	c.Name = req.FullName
	c.Phone = req.Phone
	c.Location = req.Location
	c.Skills = req.Skills
	c.ExperienceYears = req.ExperienceYears
	c.Education = req.Education
	c.LinkedInURL = req.LinkedInURL
	c.PortfolioURL = req.PortfolioURL
	if req.ResumePath != "" {
		c.ResumePath = req.ResumePath
	}
	if c.ResumePath == "" {
		return NewValidationError("resume", "a resume file is required")
	}
	return nil
}

// FindByReference loads one application with its candidate and job.
func (s *Service) FindByReference(ctx context.Context, referenceID string) (*models.Application, error) {
	var app models.Application
	err := s.db.WithContext(ctx).
		Preload("Candidate").
		Preload("Job").
		First(&app, "reference_id = ?", referenceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// FindByCandidateEmail returns the candidate profile and all of their
// applications, newest first. Unknown email yields ErrNotFound.
func (s *Service) FindByCandidateEmail(ctx context.Context, email string) (*models.Candidate, []models.Application, error) {
	var candidate models.Candidate
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&candidate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	var apps []models.Application
	if err := s.db.WithContext(ctx).
		Where("candidate_id = ?", candidate.ID).
		Order("created_at DESC").
		Find(&apps).Error; err != nil {
		return nil, nil, err
	}
	return &candidate, apps, nil
}

// ApplicationListItem is the flattened admin-console row combining
// application, candidate, and job display fields.
type ApplicationListItem struct {
	ReferenceID   string          `json:"referenceId"`
	Status        pipeline.Status `json:"status"`
	AppliedDate   string          `json:"appliedDate"`
	LastUpdated   string          `json:"lastUpdated"`
	JobTitle      string          `json:"jobTitle"`
	JobID         string          `json:"jobId,omitempty"`
	ApplicantName string          `json:"applicantName"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Notes         string          `json:"notes,omitempty"`
	Schedule      models.Schedule `json:"schedule"`
	FormData      FormData        `json:"formData"`
}

// FormData mirrors the original application form for the detail view.
type FormData struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Location        string `json:"location"`
	Skills          string `json:"skills"`
	ExperienceYears string `json:"experienceYears"`
	Education       string `json:"education,omitempty"`
	LinkedInURL     string `json:"linkedInUrl"`
	PortfolioURL    string `json:"portfolioUrl"`
	ResumePath      string `json:"resumePath"`
	CoverLetter     string `json:"coverLetter"`
}

// ListAll returns every application joined with candidate and job
// fields, flattened for the admin console.
func (s *Service) ListAll(ctx context.Context) ([]ApplicationListItem, error) {
	var apps []models.Application
	if err := s.db.WithContext(ctx).
		Preload("Candidate").
		Preload("Job").
		Order("created_at DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	items := make([]ApplicationListItem, 0, len(apps))
	for _, app := range apps {
		item := ApplicationListItem{
			ReferenceID: app.ReferenceID,
			Status:      app.Status,
			AppliedDate: app.AppliedDate,
			LastUpdated: app.LastUpdated,
			JobTitle:    app.JobTitle,
			Notes:       app.Notes,
			Schedule:    app.Schedule,
		}
		if app.JobID != nil {
			item.JobID = *app.JobID
		}
		if c := app.Candidate; c != nil {
			item.ApplicantName = c.Name
			item.Email = c.Email
			item.Phone = c.Phone
			item.FormData = FormData{
				FullName:        c.Name,
				Email:           c.Email,
				Phone:           c.Phone,
				Location:        c.Location,
				Skills:          c.Skills,
				ExperienceYears: c.ExperienceYears,
				Education:       c.Education,
				LinkedInURL:     c.LinkedInURL,
				PortfolioURL:    c.PortfolioURL,
				ResumePath:      c.ResumePath,
				CoverLetter:     app.CoverLetter,
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// UpdatePatch is a partial admin update. Nil fields are untouched.
type UpdatePatch struct {
	Status   *pipeline.Status
	Schedule *models.Schedule
	Notes    *string

	// Force allows moving an application out of a terminal status
	// (Offer Sent / Rejected). Without it such updates are refused.
	Force bool
}

// Update applies a partial update and stamps lastUpdated. Unknown
// reference IDs fail with ErrNotFound and nothing is written.
func (s *Service) Update(ctx context.Context, referenceID string, patch UpdatePatch) (*models.Application, error) {
	app, err := s.FindByReference(ctx, referenceID)
	if err != nil {
		return nil, err
	}

	becameScheduled, err := applyPatch(app, patch, utils.CalendarDate(s.now()))
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(app).Error; err != nil {
		return nil, fmt.Errorf("application update: %w", err)
	}

	if becameScheduled && app.Candidate != nil {
		s.notifier.InterviewScheduled(app.Candidate.Email, app.ReferenceID)
	}
	return app, nil
}

// applyPatch mutates the application per the patch and stamps
// lastUpdated. It reports whether the status transitioned into
// Interview Scheduled so the caller can notify the candidate.
func applyPatch(app *models.Application, patch UpdatePatch, stamp string) (becameScheduled bool, err error) {
	if patch.Status != nil {
		next := *patch.Status
		if !next.IsKnown() {
			return false, NewValidationError("status", fmt.Sprintf("unknown status %q", next))
		}
		if app.Status.IsTerminal() && next != app.Status && !patch.Force {
			return false, ErrTerminalStatus
		}
		becameScheduled = next == pipeline.StatusInterviewScheduled && app.Status != next
		app.Status = next
	}
	if patch.Schedule != nil {
		app.Schedule = *patch.Schedule
	}
	if patch.Notes != nil {
		app.Notes = *patch.Notes
	}
	app.LastUpdated = stamp
	return becameScheduled, nil
}

// ScheduleRound assigns a round: stores date/time, synthesizes the
// test-access link, stores the AI config, and forces the application
// status to Interview Scheduled regardless of its previous value.
func (s *Service) ScheduleRound(ctx context.Context, referenceID string, round pipeline.Round, date, timeOfDay string, cfg *models.TestConfig) (*models.Application, error) {
	if strings.TrimSpace(date) == "" || strings.TrimSpace(timeOfDay) == "" {
		return nil, NewValidationError("schedule", "date and time are required")
	}

	app, err := s.FindByReference(ctx, referenceID)
	if err != nil {
		return nil, err
	}

	details := app.Schedule.Round(round)
	if details == nil {
		return nil, pipeline.ErrUnknownRound
	}
	if err := pipeline.CanSchedule(details.Status); err != nil {
		return nil, err
	}

	if round == pipeline.Round3 && cfg != nil {
		// The interview round has no generated question set.
		cfg.QuestionCount = 0
	}

	details.Status = pipeline.RoundScheduled
	details.ScheduledDate = date + " " + timeOfDay
	details.Link = round.TestLink(referenceID)
	details.Config = cfg

	app.Status = pipeline.StatusInterviewScheduled
	app.LastUpdated = utils.CalendarDate(s.now())

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(app).Error; err != nil {
		return nil, fmt.Errorf("round schedule: %w", err)
	}

	if app.Candidate != nil {
		s.notifier.RoundScheduled(app.Candidate.Email, referenceID, round.Label(), details.ScheduledDate)
	}
	return app, nil
}

// CompleteRound records a submission result. Only a Scheduled round may
// complete; Pending and Completed rounds are refused.
func (s *Service) CompleteRound(ctx context.Context, referenceID string, round pipeline.Round, score, feedback string) (*models.Application, error) {
	app, err := s.FindByReference(ctx, referenceID)
	if err != nil {
		return nil, err
	}

	details := app.Schedule.Round(round)
	if details == nil {
		return nil, pipeline.ErrUnknownRound
	}
	if err := pipeline.CanComplete(details.Status); err != nil {
		return nil, err
	}

	details.Status = pipeline.RoundCompleted
	details.Score = score
	details.Feedback = feedback
	app.LastUpdated = utils.CalendarDate(s.now())

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(app).Error; err != nil {
		return nil, fmt.Errorf("round completion: %w", err)
	}
	return app, nil
}

// Authenticate is the candidate session gate: knowledge of the
// (referenceId, email) pair. Every failure is the same ErrAuthFailed so
// reference IDs cannot be enumerated. On success the loaded application
// is returned so the caller does not query twice.
func (s *Service) Authenticate(ctx context.Context, referenceID, email string) (*models.Application, error) {
	app, err := s.FindByReference(ctx, referenceID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrAuthFailed
		}
		return nil, err
	}
	if !matchesCandidateEmail(app, email) {
		return nil, ErrAuthFailed
	}
	return app, nil
}

// matchesCandidateEmail reports whether the application belongs to the
// candidate with the given email. The comparison is case-insensitive.
func matchesCandidateEmail(app *models.Application, email string) bool {
	return app.Candidate != nil && strings.EqualFold(app.Candidate.Email, email)
}
