package model

import "time"

// Event is a single listing: a concert, exhibition, market and so on.
// Not every event has a fixed date — year-round and seasonal items keep
// StartAt nil and are presented as "ongoing".  Rows are written by the
// Excel import job (upsert semantics) or by administrative action.
// Corresponds to a row in the `events` table.
//
// Fields:
//  ID          – primary key identifier.
//  Title       – event title.
//  CityID      – owning city (required).
//  VenueID     – optional venue; nil when none could be resolved.
//  Description – optional free text from the source sheet.
//  StartAt     – optional start timestamp; nil means "ongoing".
//  EndAt       – optional end timestamp (range imports only).
//  IsFree      – whether admission is free.
//  PriceMin    – optional lowest known price.
//  SourceURL   – canonical source page; the preferred upsert match key.
//  DateText    – the original free-text date from the source.
//  Source      – provenance tag, e.g. "excel_apeldoorn".
//  DedupeKey   – fallback identity, unique per city when SourceURL is
//                absent; nil for rows that carry a SourceURL.
//  UpdatedAt   – refreshed on every write.
type Event struct {
	ID          uint64     // events.id
	Title       string     // events.title
	CityID      uint64     // events.city_id
	VenueID     *uint64    // events.venue_id (nullable)
	Description *string    // events.description (nullable)
	StartAt     *time.Time // events.start_at (nullable)
	EndAt       *time.Time // events.end_at (nullable)
	IsFree      bool       // events.is_free
	PriceMin    *float64   // events.price_min (nullable)
	SourceURL   *string    // events.source_url (nullable)
	DateText    *string    // events.date_text (nullable)
	Source      *string    // events.source (nullable)
	DedupeKey   *string    // events.dedupe_key (nullable)
	UpdatedAt   time.Time  // events.updated_at
}
