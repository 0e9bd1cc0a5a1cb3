package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/talentbase/talentbase/pkg/auth"
)

func main() {
	fmt.Println("adding admin into database...")

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	dsn := os.Getenv("DB_DSN")
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	query := `
		INSERT INTO users (id, name, email, role, password_hash)
		VALUES ($1, 'Admin', $2, 'admin', $3)
		ON CONFLICT (email) DO UPDATE SET password_hash = $3
	`
	_, err = pool.Exec(context.Background(), query, uuid.New(), adminEmail, hash)
	if err != nil {
		log.Fatalf("cannot add user: %v", err)
	}

	fmt.Printf("added or updated admin '%s' successfully!\n", adminEmail)
}
