package main

import (
	"fmt"
	"log"
	"os"

	"github.com/wisecrew/careers/internal/catalog"
	"github.com/wisecrew/careers/internal/config"
	"github.com/wisecrew/careers/internal/database"
	"github.com/wisecrew/careers/internal/models"
)

func main() {
	fmt.Println("🌱 Wisecrew Careers Catalog Seeder")

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	seedFile := cfg.SeedFile
	if len(os.Args) > 1 {
		seedFile = os.Args[1]
	}

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	fmt.Println("✅ Connected to database")

	// Run migrations first
	fmt.Println("🔨 Running database migrations...")
	if err := db.AutoMigrate(&models.Job{}); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	fmt.Println("✅ Migrations complete")

	// Check if data already exists
	var jobCount int64
	db.Model(&models.Job{}).Count(&jobCount)
	if jobCount > 0 {
		fmt.Printf("⚠️  Database already has %d jobs. Clear them first? (y/N): ", jobCount)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("❌ Aborted. Database not modified.")
			return
		}

		fmt.Println("🗑️  Clearing existing postings...")
		db.Exec("TRUNCATE TABLE jobs CASCADE")
		fmt.Println("✅ Postings cleared")
	}

	fmt.Printf("📋 Loading catalog from %s...\n", seedFile)
	jobs, err := catalog.LoadFile(seedFile)
	if err != nil {
		log.Fatalf("❌ Failed to load catalog: %v", err)
	}

	seeded := 0
	for i := range jobs {
		if err := db.Create(&jobs[i]).Error; err != nil {
			log.Printf("Failed to seed %q: %v", jobs[i].Title, err)
		} else {
			seeded++
		}
	}

	fmt.Printf("✅ Seeded %d of %d job postings\n", seeded, len(jobs))
}
