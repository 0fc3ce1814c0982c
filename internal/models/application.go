package models

import (
	"time"

	"github.com/wisecrew/careers/internal/pipeline"
	"gorm.io/gorm"
)

// Application is the central record of one candidate submission.
// The human-readable reference ID acts as primary key and is the
// external handle for login and tracking.
type Application struct {
	ReferenceID string          `gorm:"primaryKey" json:"referenceId"`
	Status      pipeline.Status `gorm:"default:'Received';index" json:"status"`
	AppliedDate string          `json:"appliedDate"`
	LastUpdated string          `json:"lastUpdated"`
	JobTitle    string          `json:"jobTitle"`
	CoverLetter string          `gorm:"type:text" json:"coverLetter,omitempty"`
	Notes       string          `gorm:"type:text" json:"notes,omitempty"`
	Schedule    Schedule        `gorm:"type:jsonb" json:"schedule"`

	// nil JobID denotes a general application not tied to a posting
	JobID       *string `gorm:"type:uuid;index" json:"jobId,omitempty"`
	CandidateID string  `gorm:"type:uuid;not null;index" json:"candidateId"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Job       *Job       `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Candidate *Candidate `gorm:"foreignKey:CandidateID" json:"candidate,omitempty"`
}

// TableName specifies the table name for Application model
func (Application) TableName() string {
	return "applications"
}

// GeneralApplicationTitle is the job title recorded when a candidate
// applies without selecting a posting.
const GeneralApplicationTitle = "General Application"
