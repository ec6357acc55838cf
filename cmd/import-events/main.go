// Command import-events loads one city's events from an Excel file into
// the database, with dedupe and upsert semantics.  It is invoked by
// hand (or from a deploy script) whenever a municipality sends a new
// sheet:
//
//	import-events --file uitjes_apeldoorn.xlsx --city apeldoorn --source excel_apeldoorn
//
// The city must already exist.  The run prints a one-line summary of
// row counts and exits non-zero on fatal errors; individual bad rows
// are logged and skipped without aborting the batch.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/Marcob7/uitjes-backend/internal/config"
	"github.com/Marcob7/uitjes-backend/internal/database"
	"github.com/Marcob7/uitjes-backend/internal/importer"
	"github.com/Marcob7/uitjes-backend/internal/repository"
)

func main() {
	var (
		file   = flag.String("file", "", "path to the .xlsx file (required)")
		city   = flag.String("city", "", "city slug, e.g. apeldoorn or deventer (required)")
		source = flag.String("source", "excel", "provenance tag, e.g. excel_apeldoorn")
	)
	flag.Parse()
	if *file == "" || *city == "" {
		flag.Usage()
		log.Fatal("both --file and --city are required")
	}

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	im := importer.New(db,
		repository.NewCityRepo(db),
		repository.NewVenueRepo(db),
		repository.NewEventRepo(db),
	)

	rep, err := im.Run(context.Background(), *file, *city, *source)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}
	fmt.Println("Done. " + rep.String())
}
