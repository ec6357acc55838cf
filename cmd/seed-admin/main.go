// Command seed-admin makes sure an ADMIN account exists.  It reads
// ADMIN_EMAIL and ADMIN_PASSWORD from the environment and creates the
// account when missing; an existing account is left untouched, so the
// command is safe to run on every deploy:
//
//	ADMIN_EMAIL=beheer@uitjes.nl ADMIN_PASSWORD=... seed-admin
//
// Registration only hands out the USER role, so a fresh database needs
// this once before city management and imports can happen.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Marcob7/uitjes-backend/internal/config"
	"github.com/Marcob7/uitjes-backend/internal/database"
	"github.com/Marcob7/uitjes-backend/internal/repository"
)

func main() {
	_ = godotenv.Load()
	email, password, err := adminCreds(os.Getenv)
	if err != nil {
		log.Fatal(err)
	}
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	users := repository.NewUserRepo(db)
	ctx := context.Background()

	u, err := users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if u.Role != "ADMIN" {
			log.Fatalf("user %s already exists with role %s; not changing it", u.Email, u.Role)
		}
		fmt.Println("Admin already present. Nothing to do.")
	case errors.Is(err, sql.ErrNoRows):
		id, err := users.Create(ctx, email, password, "ADMIN", cfg.BcryptCost)
		if err != nil {
			log.Fatalf("create admin: %v", err)
		}
		fmt.Printf("Admin %s created (id=%d).\n", email, id)
	default:
		log.Fatalf("lookup admin: %v", err)
	}
}

// adminCreds reads and normalises the bootstrap credentials.  The email
// gets the same trim/lowercase treatment the user repository applies.
func adminCreds(getenv func(string) string) (string, string, error) {
	email := strings.ToLower(strings.TrimSpace(getenv("ADMIN_EMAIL")))
	password := getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return "", "", errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}
	return email, password, nil
}
