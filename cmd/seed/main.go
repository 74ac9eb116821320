package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ideadrop/internal/config"
	"ideadrop/internal/db"
	"ideadrop/internal/model"
	"ideadrop/internal/repository"
)

const seedUserEmail = "seed@ideadrop.local"

// SeedIdeaData represents one entry in data-import/ideas.json.
type SeedIdeaData struct {
	Title       string        `json:"title"`
	Summary     string        `json:"summary"`
	Description string        `json:"description"`
	Tags        model.TagList `json:"tags"`
}

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Idea{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	filePath := filepath.Join("data-import", "ideas.json")
	if len(os.Args) > 1 {
		filePath = os.Args[1]
	}

	log.Printf("Reading ideas from: %s", filePath)
	entries, err := readIdeasFile(filePath)
	if err != nil {
		log.Fatalf("Failed to read ideas: %v", err)
	}
	log.Printf("Read %d ideas from file", len(entries))

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	ideaRepo := repository.NewIdeaRepository(gormDB)

	owner, err := ensureSeedUser(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to ensure seed user: %v", err)
	}

	ideas := make([]model.Idea, 0, len(entries))
	skipped := 0
	for _, entry := range entries {
		if entry.Title == "" || entry.Summary == "" || entry.Description == "" {
			log.Printf("Skipping idea with missing fields: %q", entry.Title)
			skipped++
			continue
		}
		ideas = append(ideas, model.Idea{
			Title:       entry.Title,
			Summary:     entry.Summary,
			Description: entry.Description,
			Tags:        entry.Tags.Normalize(),
			UserID:      owner.ID,
		})
	}
	if skipped > 0 {
		log.Printf("Skipped %d invalid ideas", skipped)
	}

	// Replace existing ideas with the file contents
	log.Println("Replacing ideas in database...")
	if err := ideaRepo.DeleteAll(ctx); err != nil {
		log.Fatalf("Failed to clear ideas: %v", err)
	}
	if err := ideaRepo.CreateBatch(ctx, ideas); err != nil {
		log.Fatalf("Failed to insert ideas: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Ideas inserted: %d", len(ideas))
}

// readIdeasFile parses the seed JSON file.
func readIdeasFile(path string) ([]SeedIdeaData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var entries []SeedIdeaData
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	return entries, nil
}

// ensureSeedUser finds or creates the user that owns seeded ideas.
func ensureSeedUser(ctx context.Context, repo repository.UserRepository) (*model.User, error) {
	existing, err := repo.FindByEmail(ctx, seedUserEmail)
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("seed-password"), 10)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &model.User{
		Name:         "Seed User",
		Email:        seedUserEmail,
		PasswordHash: string(hash),
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create seed user: %w", err)
	}
	return user, nil
}
