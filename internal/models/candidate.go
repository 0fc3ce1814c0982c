package models

import (
	"time"

	"gorm.io/gorm"
)

// Candidate is one applicant profile, unique by email. Repeat
// submissions upsert the same row (profile reuse).
type Candidate struct {
	ID              string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Email           string `gorm:"unique;not null;index" json:"email"`
	Name            string `gorm:"not null" json:"name"`
	Phone           string `json:"phone"`
	Location        string `json:"location"`
	Skills          string `gorm:"type:text" json:"skills"` // comma-separated, as entered
	ExperienceYears string `json:"experienceYears"`
	Education       string `json:"education,omitempty"`
	LinkedInURL     string `json:"linkedInUrl"`
	PortfolioURL    string `json:"portfolioUrl"`
	ResumePath      string `json:"resumePath"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Candidate model
func (Candidate) TableName() string {
	return "candidates"
}
