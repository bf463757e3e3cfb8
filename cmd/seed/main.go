package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/campverse/campground-service/config"
	"github.com/campverse/campground-service/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@campverse.dev"
	username := "demoCamper"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET username = EXCLUDED.username
		RETURNING id
	`, username, email, hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s username=%s password=%s\n", userID, email, username, password)

	campgrounds := []struct {
		title    string
		price    float64
		desc     string
		location string
		image    string
	}{
		{"Misty Pines", 24.50, "Quiet forest site beside a creek, pines all around.", "Bend, Oregon", "https://images.unsplash.com/photo-1504280390367-361c6d9f38f4"},
		{"Granite Shore", 38.00, "Lakeside pitches with granite slabs and open sky.", "Tahoe, California", "https://images.unsplash.com/photo-1487730116645-74489c95b41b"},
		{"Dune Hollow", 18.75, "Sheltered hollow behind the dunes, short walk to the beach.", "Florence, Oregon", "https://images.unsplash.com/photo-1471115853179-bb1d604434e0"},
	}

	for _, cgr := range campgrounds {
		var id string
		err := db.QueryRow(`
			INSERT INTO campgrounds (title, price, description, location, image_url, owner_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, cgr.title, cgr.price, cgr.desc, cgr.location, cgr.image, userID).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed campground %q: %v", cgr.title, err)
		}
		fmt.Printf("seeded campground: id=%s title=%q\n", id, cgr.title)
	}
}
