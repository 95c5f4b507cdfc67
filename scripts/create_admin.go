// Recovery tool: creates or promotes a super admin account directly in the
// database, for when the web setup flow is unusable (lost credentials, locked
// out of the only admin account).
//
// Usage: go run scripts/create_admin.go -email admin@example.com -username admin -password secret

package main

import (
	"errors"
	"flag"
	"log"

	"lms_backend/internal/config"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/pkg/database"
	"lms_backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	email := flag.String("email", "", "admin email address")
	username := flag.String("username", "admin", "admin username")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	users := repository.NewUserRepository(db)

	existing, err := users.FindByEmail(*email)
	switch {
	case err == nil:
		existing.Password = string(hash)
		existing.Role = model.SuperAdmin
		existing.IsActive = true
		if err := users.Update(existing); err != nil {
			log.Fatalf("failed to update user: %v", err)
		}
		log.Printf("promoted existing user %s to super admin", *email)
	case errors.Is(err, gorm.ErrRecordNotFound):
		user := &model.User{
			Email:      *email,
			Username:   *username,
			Password:   string(hash),
			Role:       model.SuperAdmin,
			IsActive:   true,
			IsVerified: true,
		}
		if err := users.Create(user); err != nil {
			log.Fatalf("failed to create user: %v", err)
		}
		log.Printf("created super admin %s", *email)
	default:
		log.Fatalf("failed to look up user: %v", err)
	}
}
