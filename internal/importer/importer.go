// Package importer reads one city's event rows from an Excel sheet and
// upserts them into the database without creating duplicates.  The whole
// batch runs inside a single transaction; individual bad rows are
// counted and logged but never abort the run.
package importer

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Marcob7/uitjes-backend/internal/dates"
	"github.com/Marcob7/uitjes-backend/internal/metrics"
	"github.com/Marcob7/uitjes-backend/internal/model"
	"github.com/Marcob7/uitjes-backend/internal/repository"
)

// Column names as they appear in the Apeldoorn/Deventer sheets.  Date
// and description each have two possible headers; first non-empty wins.
const (
	colTitle       = "Naam/Activiteit"
	colWebsite     = "Website"
	colDate        = "Datum"
	colDatePeriod  = "Datum/Periode"
	colDescription = "Omschrijving"
	colLocation    = "Locatie/Omschrijving"
)

// Report summarizes one import run.
type Report struct {
	Rows    int // data rows read from the sheet
	Unique  int // distinct identity tokens seen
	Created int
	Updated int
	Skipped int
	Errors  int
}

func (r Report) String() string {
	return fmt.Sprintf("rows=%d unique=%d created=%d updated=%d skipped=%d errors=%d",
		r.Rows, r.Unique, r.Created, r.Updated, r.Skipped, r.Errors)
}

// Importer wires the repositories the job needs.  One Importer serves
// one Run at a time; concurrent runs against the same city would race
// on venue get-or-create and upsert matching.
type Importer struct {
	DB     *sql.DB
	Cities *repository.CityRepo
	Venues *repository.VenueRepo
	Events *repository.EventRepo
}

func New(db *sql.DB, cities *repository.CityRepo, venues *repository.VenueRepo, events *repository.EventRepo) *Importer {
	return &Importer{DB: db, Cities: cities, Venues: venues, Events: events}
}

// Run imports the given xlsx file into the city identified by slug.
// The city must already exist; the importer never creates cities.  The
// source tag is stored on every written event for provenance.
func (im *Importer) Run(ctx context.Context, path, citySlug, source string) (Report, error) {
	citySlug = strings.ToLower(dates.Norm(citySlug))
	source = dates.Norm(source)

	city, err := im.Cities.GetBySlug(ctx, citySlug)
	if err != nil {
		return Report{}, fmt.Errorf("city %q: %w", citySlug, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Report{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return Report{}, nil
	}

	cols := headerIndex(rows[0])
	data := rows[1:]

	tx, err := im.DB.BeginTx(ctx, nil)
	if err != nil {
		return Report{}, err
	}
	// Rollback is a no-op after a successful commit.
	defer func() { _ = tx.Rollback() }()

	rep := Report{Rows: len(data)}
	seen := map[string]struct{}{}           // identity tokens, dedupe within the file
	venueCache := map[string]*model.Venue{} // venue name -> venue, scoped to this run

	for i, cells := range data {
		outcome, err := im.processRow(ctx, tx, city, source, row{cells: cells, cols: cols}, seen, venueCache)
		if err != nil {
			rep.Errors++
			metrics.ImportRows.WithLabelValues("error").Inc()
			// +2: sheet rows are 1-based and the header occupies row 1.
			log.Printf("row %d: ERROR %v", i+2, err)
			continue
		}
		switch outcome {
		case rowCreated:
			rep.Created++
		case rowUpdated:
			rep.Updated++
		case rowSkipped:
			rep.Skipped++
		}
		metrics.ImportRows.WithLabelValues(string(outcome)).Inc()
	}
	rep.Unique = len(seen)

	if err := tx.Commit(); err != nil {
		return Report{}, err
	}
	return rep, nil
}

type rowOutcome string

const (
	rowCreated rowOutcome = "created"
	rowUpdated rowOutcome = "updated"
	rowSkipped rowOutcome = "skipped"
)

// row is one data row plus the header index of its sheet.
type row struct {
	cells []string
	cols  map[string]int
}

// get returns the normalized cell under the named column, or "" when
// the column is absent or the row is short.
func (r row) get(name string) string {
	idx, ok := r.cols[name]
	if !ok || idx >= len(r.cells) {
		return ""
	}
	return dates.Norm(r.cells[idx])
}

// headerIndex maps normalized header names to their column positions.
func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		if name := dates.Norm(h); name != "" {
			cols[name] = i
		}
	}
	return cols
}

func (im *Importer) processRow(ctx context.Context, tx *sql.Tx, city *model.City, source string,
	r row, seen map[string]struct{}, venueCache map[string]*model.Venue) (rowOutcome, error) {

	title := r.get(colTitle)
	if title == "" {
		return rowSkipped, nil
	}

	sourceURL := r.get(colWebsite)

	dateText := r.get(colDate)
	if dateText == "" {
		dateText = r.get(colDatePeriod)
	}

	description := r.get(colDescription)
	if description == "" {
		description = r.get(colLocation)
	}

	// Venue resolution only applies to URL-less rows: when a source URL
	// exists we prefer not to guess a venue out of a description column.
	var venue *model.Venue
	if sourceURL == "" {
		if name := r.get(colLocation); name != "" {
			var err error
			venue, err = im.resolveVenue(ctx, tx, city.ID, name, venueCache)
			if err != nil {
				return "", err
			}
		}
	}

	// Unparseable or absent date text both land here as nil/nil; the
	// event is then indistinguishable from a deliberately undated one.
	var startAt, endAt *time.Time
	if dateText != "" {
		startAt, endAt = dates.ParseRange(dateText)
	}

	dedupeKey := BuildDedupeKey(city.Slug, title, dateText)
	token := IdentityToken(city.Slug, sourceURL, dedupeKey)
	if _, dup := seen[token]; dup {
		return rowSkipped, nil
	}
	seen[token] = struct{}{}

	ev := model.Event{
		Title:   title,
		CityID:  city.ID,
		StartAt: startAt,
		EndAt:   endAt,
	}
	if venue != nil {
		ev.VenueID = &venue.ID
	}
	if description != "" {
		ev.Description = &description
	}
	if dateText != "" {
		ev.DateText = &dateText
	}
	if source != "" {
		ev.Source = &source
	}
	if sourceURL != "" {
		ev.SourceURL = &sourceURL
		// dedupe_key stays NULL so the per-city unique constraint only
		// bites for URL-less rows.
	} else {
		ev.DedupeKey = &dedupeKey
	}

	var existingID uint64
	var err error
	if sourceURL != "" {
		existingID, err = im.Events.FindIDBySourceURLTx(ctx, tx, sourceURL)
	} else {
		existingID, err = im.Events.FindIDByDedupeKeyTx(ctx, tx, city.ID, dedupeKey)
	}
	if err != nil {
		return "", err
	}

	if existingID != 0 {
		if err := im.Events.UpdateTx(ctx, tx, existingID, &ev); err != nil {
			return "", err
		}
		return rowUpdated, nil
	}
	if err := im.Events.InsertTx(ctx, tx, &ev); err != nil {
		return "", err
	}
	return rowCreated, nil
}

// resolveVenue consults the per-run cache before hitting the database,
// making the get-or-create semantics explicit within one invocation.
func (im *Importer) resolveVenue(ctx context.Context, tx *sql.Tx, cityID uint64, name string,
	cache map[string]*model.Venue) (*model.Venue, error) {
	if v, ok := cache[name]; ok {
		return v, nil
	}
	v, err := im.Venues.GetOrCreateTx(ctx, tx, cityID, name)
	if err != nil {
		return nil, err
	}
	cache[name] = v
	return v, nil
}
