package hrimport

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/wisecrew/careers/internal/database"
	"github.com/wisecrew/careers/internal/models"
	"github.com/wisecrew/careers/internal/utils"
	"gorm.io/gorm/clause"
)

// Service mirrors open positions from the HR system into the local
// jobs catalog on a background schedule.
type Service struct {
	client *Client
	db     *database.DB
	cfg    Config
	stop   chan struct{}
}

// Config holds HRIS connection settings
type Config struct {
	URL          string
	Database     string
	Username     string
	Password     string
	SyncInterval int // in minutes
}

// NewService creates a new import service
func NewService(db *database.DB, cfg Config) *Service {
	return &Service{
		client: NewClient(cfg.URL, cfg.Database, cfg.Username, cfg.Password),
		db:     db,
		cfg:    cfg,
		stop:   make(chan struct{}),
	}
}

// Enabled reports whether an HRIS endpoint is configured.
func (s *Service) Enabled() bool {
	return s.cfg.URL != ""
}

// Start begins the background import loop
func (s *Service) Start() {
	if !s.Enabled() {
		log.Println("HRIS import disabled: HRIS_URL not configured")
		return
	}

	go func() {
		log.Println("📡 HRIS import service started")

		if _, err := s.client.Authenticate(); err != nil {
			log.Printf("❌ HRIS authentication failed: %v", err)
			return
		}

		// Initial import delay
		time.Sleep(5 * time.Second)
		if err := s.RunImport(); err != nil {
			log.Printf("❌ HRIS import failed: %v", err)
		}

		interval := time.Duration(s.cfg.SyncInterval) * time.Minute
		if s.cfg.SyncInterval <= 0 {
			interval = 60 * time.Minute
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := s.RunImport(); err != nil {
					log.Printf("❌ HRIS import failed: %v", err)
				}
			case <-s.stop:
				log.Println("🛑 HRIS import service stopped")
				return
			}
		}
	}()
}

// Stop halts the service
func (s *Service) Stop() {
	close(s.stop)
}

// many2one decodes an Odoo relation field, which arrives as either
// [id, "display name"] or false when unset.
type many2one struct {
	ID   int64
	Name string
}

func (m *many2one) UnmarshalJSON(data []byte) error {
	var pair []interface{}
	if err := json.Unmarshal(data, &pair); err != nil {
		// false means "not set"
		*m = many2one{}
		return nil
	}
	if len(pair) >= 1 {
		if id, ok := pair[0].(float64); ok {
			m.ID = int64(id)
		}
	}
	if len(pair) >= 2 {
		if name, ok := pair[1].(string); ok {
			m.Name = name
		}
	}
	return nil
}

// hrJob is the subset of hr.job fields the catalog needs.
type hrJob struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	State       string   `json:"state"` // "recruit" or "open"
	Department  many2one `json:"department_id"`
}

// RunImport fetches hr.job records and upserts them into the jobs
// table keyed on the HRIS record ID. Returns the first hard error;
// per-record save failures are logged and skipped.
func (s *Service) RunImport() error {
	log.Println("🔄 HRIS: Importing job positions...")

	domain := []interface{}{}
	var positions []hrJob
	err := s.client.SearchRead("hr.job", domain, []string{
		"name", "description", "state", "department_id",
	}, 500, 0, &positions)
	if err != nil {
		return fmt.Errorf("hr.job fetch: %w", err)
	}

	if len(positions) == 0 {
		log.Println("HRIS: No positions found")
		return nil
	}

	count := 0
	for _, p := range positions {
		externalID := p.ID
		job := models.Job{
			Title:       p.Name,
			Department:  p.Department.Name,
			Description: p.Description,
			Type:        "Full-time",
			IsActive:    p.State == "recruit",
			PostedDate:  utils.CalendarDate(time.Now()),
			ExternalID:  &externalID,
		}

		// Only the HRIS-owned columns are overwritten on re-import, so
		// fields edited in the admin console survive.
		if err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "department", "description", "is_active"}),
		}).Create(&job).Error; err != nil {
			log.Printf("Failed to save position %d: %v", p.ID, err)
		} else {
			count++
		}
	}

	log.Printf("✅ HRIS: Imported %d positions", count)
	return nil
}
