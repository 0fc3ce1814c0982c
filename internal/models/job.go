package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Job represents one posting in the careers catalog
// Standardized: Go (PascalCase) -> DB (snake_case) -> JSON (camelCase)
type Job struct {
	ID               string                      `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Title            string                      `gorm:"not null" json:"title"`
	Department       string                      `gorm:"index" json:"department"`
	Location         string                      `json:"location"`
	Type             string                      `gorm:"index" json:"type"` // Full-time, Part-time, Contract, Internship, Freelance
	Level            string                      `json:"level"`             // Intern, Junior, Mid-Level, Senior, Lead
	ShortDescription string                      `gorm:"type:text" json:"shortDescription"`
	Description      string                      `gorm:"type:text" json:"description"`
	Responsibilities datatypes.JSONSlice[string] `json:"responsibilities"`
	Requirements     datatypes.JSONSlice[string] `json:"requirements"`
	Perks            datatypes.JSONSlice[string] `json:"perks"`
	HiringSteps      datatypes.JSONSlice[string] `json:"hiringSteps,omitempty"`
	IsActive         bool                        `gorm:"default:true" json:"isActive"`
	IsUnpaid         bool                        `gorm:"default:false" json:"isUnpaid,omitempty"`
	PostedDate       string                      `json:"postedDate"`
	ExternalID       *int64                      `gorm:"uniqueIndex" json:"-"` // HRIS source record, when imported

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Job model
func (Job) TableName() string {
	return "jobs"
}

// IsInternship reports whether applications to this job use the
// internship reference ID format.
func (j *Job) IsInternship() bool {
	return j.Type == "Internship"
}
