package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Marcob7/uitjes-backend/internal/model"
)

// EventRepo encapsulates database queries for events.  Reads serve the
// public API; the Tx upsert methods serve the import job, which runs an
// entire batch inside one transaction.
type EventRepo struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

// EventRow is the public API shape of an event: the city flattened to
// its slug, the venue to its name, and the derived is_ongoing flag.
type EventRow struct {
	ID        uint64     `json:"id"`
	Title     string     `json:"title"`
	City      string     `json:"city"`
	Venue     *string    `json:"venue"`
	StartAt   *time.Time `json:"start_at"`
	EndAt     *time.Time `json:"end_at"`
	DateText  *string    `json:"date_text"`
	IsOngoing bool       `json:"is_ongoing"`
	IsFree    bool       `json:"is_free"`
	PriceMin  *float64   `json:"price_min"`
	SourceURL *string    `json:"source_url"`
}

// eventSelect is the column list shared by GetByID, Search and the
// favorites event view.  Scanning must match scanEventRow.
const eventSelect = `SELECT e.id, e.title, c.slug, v.name,
       e.start_at, e.end_at, e.date_text, e.is_free, e.price_min, e.source_url
  FROM events e
  JOIN cities c ON c.id = e.city_id
  LEFT JOIN venues v ON v.id = e.venue_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEventRow(s rowScanner) (EventRow, error) {
	var (
		row       EventRow
		venue     sql.NullString
		startAt   sql.NullTime
		endAt     sql.NullTime
		dateText  sql.NullString
		priceMin  sql.NullFloat64
		sourceURL sql.NullString
	)
	if err := s.Scan(&row.ID, &row.Title, &row.City, &venue,
		&startAt, &endAt, &dateText, &row.IsFree, &priceMin, &sourceURL); err != nil {
		return EventRow{}, err
	}
	if venue.Valid {
		row.Venue = &venue.String
	}
	if startAt.Valid {
		t := startAt.Time
		row.StartAt = &t
	}
	if endAt.Valid {
		t := endAt.Time
		row.EndAt = &t
	}
	if dateText.Valid {
		row.DateText = &dateText.String
	}
	if priceMin.Valid {
		row.PriceMin = &priceMin.Float64
	}
	if sourceURL.Valid {
		row.SourceURL = &sourceURL.String
	}
	row.IsOngoing = row.StartAt == nil
	return row, nil
}

// GetByID returns one event in API shape or ErrNotFound.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (*EventRow, error) {
	row, err := scanEventRow(r.db.QueryRowContext(ctx, eventSelect+" WHERE e.id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// Exists reports whether an event with the given id is present.
func (r *EventRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, "SELECT 1 FROM events WHERE id = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FindIDBySourceURLTx returns the id of the event matching the given
// source URL, or 0 when none exists.
func (r *EventRepo) FindIDBySourceURLTx(ctx context.Context, tx *sql.Tx, sourceURL string) (uint64, error) {
	const q = "SELECT id FROM events WHERE source_url = ? LIMIT 1"
	var id uint64
	err := tx.QueryRowContext(ctx, q, sourceURL).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return id, err
}

// FindIDByDedupeKeyTx returns the id of the event matching the per-city
// fallback identity, or 0 when none exists.
func (r *EventRepo) FindIDByDedupeKeyTx(ctx context.Context, tx *sql.Tx, cityID uint64, dedupeKey string) (uint64, error) {
	const q = "SELECT id FROM events WHERE city_id = ? AND dedupe_key = ? LIMIT 1"
	var id uint64
	err := tx.QueryRowContext(ctx, q, cityID, dedupeKey).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return id, err
}

// InsertTx creates an event row inside the transaction and populates
// its ID.  is_free and price_min are not sheet columns, so inserts
// leave them on their database defaults and updates never touch them;
// values curated by hand survive re-imports.
func (r *EventRepo) InsertTx(ctx context.Context, tx *sql.Tx, e *model.Event) error {
	const q = `INSERT INTO events
		(title, city_id, venue_id, description, start_at, end_at,
		 source_url, date_text, source, dedupe_key)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q,
		e.Title, e.CityID, e.VenueID, e.Description, e.StartAt, e.EndAt,
		e.SourceURL, e.DateText, e.Source, e.DedupeKey)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	return nil
}

// UpdateTx overwrites all imported fields of an existing event and
// bumps updated_at.
func (r *EventRepo) UpdateTx(ctx context.Context, tx *sql.Tx, id uint64, e *model.Event) error {
	const q = `UPDATE events
		SET title = ?, city_id = ?, venue_id = ?, description = ?,
		    start_at = ?, end_at = ?,
		    source_url = ?, date_text = ?, source = ?, dedupe_key = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`
	_, err := tx.ExecContext(ctx, q,
		e.Title, e.CityID, e.VenueID, e.Description, e.StartAt, e.EndAt,
		e.SourceURL, e.DateText, e.Source, e.DedupeKey, id)
	if err == nil {
		e.ID = id
	}
	return err
}
