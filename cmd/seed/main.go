package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sreeja24H51A66DH/lendahand1/internal/auth"
	"github.com/sreeja24H51A66DH/lendahand1/internal/config"
	"github.com/sreeja24H51A66DH/lendahand1/internal/db"
	"github.com/sreeja24H51A66DH/lendahand1/internal/model"
	"gorm.io/gorm"
)

type seedUser struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

type seedItem struct {
	Title       string
	Description string
	Category    string
	Location    string
	OwnerEmail  string
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	gdb, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := gdb.AutoMigrate(&model.User{}, &model.Item{}, &model.Conversation{}, &model.Message{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	canSeed, err := shouldSeed(ctx, gdb)
	if err != nil {
		return err
	}
	if !canSeed {
		log.Printf("users already exist; skipping seed (set FORCE_SEED=true to override)")
		return nil
	}

	users := []seedUser{
		{Name: "Asha Rao", Email: "asha" + cfg.EmailDomain, Phone: "9000000001", Password: "changeme1"},
		{Name: "Vikram Singh", Email: "vikram" + cfg.EmailDomain, Phone: "9000000002", Password: "changeme2"},
	}
	items := []seedItem{
		{Title: "Engineering Mechanics textbook", Description: "Third-year textbook, lightly used.", Category: "Books", Location: "Block C hostel", OwnerEmail: users[0].Email},
		{Title: "Scientific calculator", Description: "Casio fx-991, works fine, spare one.", Category: "Electronics", Location: "Library desk 12", OwnerEmail: users[1].Email},
		{Title: "Badminton racket", Description: "Giving away before graduation.", Category: "Sports", Location: "Sports complex", OwnerEmail: users[1].Email},
	}

	return gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		byEmail := make(map[string]*model.User, len(users))
		for _, su := range users {
			hash, err := auth.HashPassword(su.Password)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			u := &model.User{
				ID:           uuid.NewString(),
				Name:         su.Name,
				Email:        su.Email,
				Phone:        su.Phone,
				PasswordHash: hash,
			}
			if err := tx.Create(u).Error; err != nil {
				return fmt.Errorf("create user %s: %w", su.Email, err)
			}
			byEmail[su.Email] = u
		}

		for _, si := range items {
			owner := byEmail[si.OwnerEmail]
			item := &model.Item{
				ID:           uuid.NewString(),
				Title:        si.Title,
				Description:  si.Description,
				Category:     si.Category,
				ImageURL:     fmt.Sprintf("https://picsum.photos/seed/%s/800/600", uuid.NewString()[:8]),
				Location:     si.Location,
				ContactName:  owner.Name,
				ContactEmail: owner.Email,
				ContactPhone: owner.Phone,
				OwnerID:      owner.ID,
				Status:       model.ItemStatusAvailable,
			}
			if err := tx.Create(item).Error; err != nil {
				return fmt.Errorf("create item %s: %w", si.Title, err)
			}
		}
		log.Printf("seeded %d users and %d items", len(users), len(items))
		return nil
	})
}

func shouldSeed(ctx context.Context, gdb *gorm.DB) (bool, error) {
	if os.Getenv("FORCE_SEED") == "true" {
		return true, nil
	}
	var count int64
	if err := gdb.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return count == 0, nil
}
