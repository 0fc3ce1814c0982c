package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wisecrew/careers/internal/ai"
	"github.com/wisecrew/careers/internal/catalog"
	"github.com/wisecrew/careers/internal/config"
	"github.com/wisecrew/careers/internal/database"
	"github.com/wisecrew/careers/internal/handlers"
	"github.com/wisecrew/careers/internal/models"
	"github.com/wisecrew/careers/internal/services/hrimport"
	"github.com/wisecrew/careers/internal/services/notify"
	"github.com/wisecrew/careers/internal/services/recruiting"
	"github.com/wisecrew/careers/internal/utils"
	"github.com/wisecrew/careers/internal/websocket"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize database (Detects Embedded vs External automatically)
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	// Note: db.Close() is called manually in shutdown handler below

	// 3. Auto-Migrate Schema (Critical for Zero-Config)
	log.Println("🚀 Synchronizing database schema...")
	err = db.AutoMigrate(
		&models.UserAuth{},
		&models.Job{},
		&models.Candidate{},
		&models.Application{},
	)
	if err != nil {
		log.Printf("⚠️ Migration warning: %v\n", err)
	} else {
		log.Println("✅ Schema synchronized successfully")
	}

	// 4. Bootstrap console account and seed catalog on first run
	bootstrapAdmin(db, cfg)
	seedJobs(db, cfg.SeedFile)

	// 5. Question generation (optional, falls back to built-in bank)
	var generator *ai.QuestionGenerator
	if cfg.AI.GeminiAPIKey != "" {
		client, err := ai.NewGeminiClient(context.Background(), cfg.AI.GeminiAPIKey, cfg.AI.Model)
		if err != nil {
			log.Printf("⚠️ AI client init failed, using fallback questions: %v", err)
			generator = ai.NewQuestionGenerator(nil)
		} else {
			defer client.Close()
			generator = ai.NewQuestionGenerator(client)
			log.Printf("✅ AI question generation enabled (%s)", cfg.AI.Model)
		}
	} else {
		log.Println("AI question generation disabled: GEMINI_API_KEY not configured")
		generator = ai.NewQuestionGenerator(nil)
	}

	// 6. Core services
	service := recruiting.NewService(db, notify.NewLogNotifier())

	importer := hrimport.NewService(db, hrimport.Config{
		URL:          cfg.HRIS.URL,
		Database:     cfg.HRIS.Database,
		Username:     cfg.HRIS.Username,
		Password:     cfg.HRIS.Password,
		SyncInterval: cfg.HRIS.SyncInterval,
	})
	importer.Start()

	hub := websocket.NewHub()
	go hub.Run()

	// 7. HTTP router
	router := handlers.NewRouter(db, cfg, service, generator, hub, importer)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Channel to listen for shutdown signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Careers portal starting on port %s [%s]\n", cfg.Port, cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sig := <-shutdown
	log.Printf("\n⚠️  Received signal: %v. Shutting down gracefully...\n", sig)

	// Create context with timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	// Stop HRIS import loop
	importer.Stop()

	// Close database (this also stops embedded PostgreSQL)
	log.Println("🛑 Closing database connection...")
	if err := db.Close(); err != nil {
		log.Printf("Database close error: %v", err)
	}

	log.Println("✅ Shutdown complete")
}

// bootstrapAdmin creates the first console account from environment
// variables when the table is empty.
func bootstrapAdmin(db *database.DB, cfg *config.Config) {
	var count int64
	if err := db.Model(&models.UserAuth{}).Count(&count).Error; err != nil {
		log.Printf("⚠️ Admin bootstrap check failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	if cfg.Bootstrap.Email == "" || cfg.Bootstrap.Password == "" {
		log.Println("⚠️ No console accounts exist and ADMIN_EMAIL/ADMIN_PASSWORD are not set")
		return
	}

	hash, err := utils.HashPassword(cfg.Bootstrap.Password)
	if err != nil {
		log.Printf("⚠️ Admin bootstrap failed: %v", err)
		return
	}

	admin := models.UserAuth{
		Email:    cfg.Bootstrap.Email,
		Password: hash,
		Name:     cfg.Bootstrap.Name,
		Role:     "admin",
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("⚠️ Admin bootstrap failed: %v", err)
		return
	}
	log.Printf("✅ Bootstrap admin account created: %s", admin.Email)
}

// seedJobs loads the YAML catalog into an empty jobs table.
func seedJobs(db *database.DB, seedFile string) {
	var count int64
	if err := db.Model(&models.Job{}).Count(&count).Error; err != nil {
		log.Printf("⚠️ Job seed check failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	jobs, err := catalog.LoadFile(seedFile)
	if err != nil {
		log.Printf("⚠️ Job seeding skipped: %v", err)
		return
	}

	seeded := 0
	for i := range jobs {
		if err := db.Create(&jobs[i]).Error; err != nil {
			log.Printf("Failed to seed job %q: %v", jobs[i].Title, err)
		} else {
			seeded++
		}
	}
	log.Printf("✅ Seeded %d job postings", seeded)
}
