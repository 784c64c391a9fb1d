package main

import (
	"context"
	"log"
	"os"

	"github.com/doug-martin/goqu/v9"

	"github.com/clinscribe/transcript-correction/backend/internal/adapters/dictionary"
	"github.com/clinscribe/transcript-correction/backend/internal/infrastructure/clients/postgres"
	"github.com/clinscribe/transcript-correction/backend/pkg/config"
)

// Seeds the corrections table from the configured CSV file so a Postgres
// deployment can start from the same dictionary as a CSV one.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	ctx := context.Background()

	if _, err := pgClient.DB().ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS `+cfg.Dictionary.Table+` (
			id SERIAL PRIMARY KEY,
			incorrect TEXT NOT NULL UNIQUE,
			correct TEXT NOT NULL
		)
	`); err != nil {
		log.Fatalf("Failed to create corrections table: %v", err)
	}

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating corrections before seeding")
		if _, err := pgClient.DB().ExecContext(ctx, "TRUNCATE TABLE "+cfg.Dictionary.Table+" RESTART IDENTITY"); err != nil {
			log.Fatalf("Failed to truncate corrections table: %v", err)
		}
	}

	dict, err := dictionary.NewCSVAdapter(cfg.Dictionary.CSVPath).Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load corrections CSV: %v", err)
	}
	if dict.Len() == 0 {
		log.Println("Corrections CSV is empty, nothing to seed")
		return
	}

	db := goqu.New("postgres", pgClient.DB())
	inserted := 0
	for _, key := range dict.Keys() {
		value, _ := dict.Lookup(key)
		query, args, err := db.Insert(cfg.Dictionary.Table).
			Rows(goqu.Record{"incorrect": key, "correct": value}).
			OnConflict(goqu.DoNothing()).
			ToSQL()
		if err != nil {
			log.Fatalf("Failed to build insert for %q: %v", key, err)
		}
		if _, err := pgClient.DB().ExecContext(ctx, query, args...); err != nil {
			log.Fatalf("Failed to insert %q: %v", key, err)
		}
		inserted++
	}

	log.Printf("Seeded %d corrections into %s", inserted, cfg.Dictionary.Table)
}
