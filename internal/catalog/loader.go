package catalog

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wisecrew/careers/internal/models"
)

// jobFile is the YAML structure of the seed catalog.
type jobFile struct {
	Jobs []jobEntry `yaml:"jobs"`
}

// jobEntry is one posting in the seed file.
type jobEntry struct {
	Title            string   `yaml:"title"`
	Department       string   `yaml:"department"`
	Location         string   `yaml:"location"`
	Type             string   `yaml:"type"`
	Level            string   `yaml:"level"`
	ShortDescription string   `yaml:"short_description"`
	Description      string   `yaml:"description"`
	Responsibilities []string `yaml:"responsibilities"`
	Requirements     []string `yaml:"requirements"`
	Perks            []string `yaml:"perks"`
	HiringSteps      []string `yaml:"hiring_steps"`
	IsUnpaid         bool     `yaml:"is_unpaid"`
	PostedDate       string   `yaml:"posted_date"`
}

func (e *jobEntry) validate() error {
	if e.Title == "" {
		return fmt.Errorf("job title is required")
	}
	if e.Type == "" {
		return fmt.Errorf("job type is required")
	}
	return nil
}

// LoadFile parses a YAML seed catalog into Job models. Malformed
// entries are logged and skipped; a missing or unparseable file is an
// error.
func LoadFile(path string) ([]models.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var file jobFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	jobs := make([]models.Job, 0, len(file.Jobs))
	for i, entry := range file.Jobs {
		if err := entry.validate(); err != nil {
			log.Printf("⚠️ Skipping seed job %d: %v", i+1, err)
			continue
		}
		jobs = append(jobs, models.Job{
			Title:            entry.Title,
			Department:       entry.Department,
			Location:         entry.Location,
			Type:             entry.Type,
			Level:            entry.Level,
			ShortDescription: entry.ShortDescription,
			Description:      entry.Description,
			Responsibilities: entry.Responsibilities,
			Requirements:     entry.Requirements,
			Perks:            entry.Perks,
			HiringSteps:      entry.HiringSteps,
			IsActive:         true,
			IsUnpaid:         entry.IsUnpaid,
			PostedDate:       entry.PostedDate,
		})
	}

	return jobs, nil
}
