package repository

import (
	"context"
	"strings"
	"time"
)

// EventSearchQuery defines filters & pagination for the public events
// listing.  All filters are optional and combine with AND; the free-text
// Q filter matches title OR description OR venue name.
type EventSearchQuery struct {
	CitySlug string     // exact match on cities.slug
	FreeOnly bool       // restrict to is_free events
	Q        string     // case-insensitive substring search
	DateFrom string     // inclusive lower bound on DATE(start_at), "YYYY-MM-DD"
	DateTo   string     // inclusive upper bound on DATE(start_at), "YYYY-MM-DD"
	Ongoing  *bool      // true: only undated events; false: only dated
	When     string     // "", "tonight" or "weekend"
	Now      time.Time  // reference instant for When windows
	Limit    int
	Offset   int
}

// eventOrderBy sorts dated events before ongoing ones, then by start
// date, then title.
const eventOrderBy = "(e.start_at IS NULL), e.start_at, e.title"

// likeEscaper neutralises LIKE metacharacters in user input so a typed
// "%" or "_" matches the literal character instead of acting as a
// wildcard.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// buildEventFilters assembles the WHERE conditions and their bind
// arguments for one search.  The count and the page query both run
// against this result so the two cannot drift.
func buildEventFilters(q EventSearchQuery) ([]string, []any) {
	where := []string{}
	args := []any{}

	if q.CitySlug != "" {
		where = append(where, "c.slug = ?")
		args = append(args, q.CitySlug)
	}
	if q.FreeOnly {
		where = append(where, "e.is_free = 1")
	}
	if q.Q != "" {
		needle := "%" + likeEscaper.Replace(strings.ToLower(q.Q)) + "%"
		where = append(where, "(LOWER(e.title) LIKE ? OR LOWER(e.description) LIKE ? OR LOWER(v.name) LIKE ?)")
		args = append(args, needle, needle, needle)
	}
	if q.DateFrom != "" {
		where = append(where, "DATE(e.start_at) >= ?")
		args = append(args, q.DateFrom)
	}
	if q.DateTo != "" {
		where = append(where, "DATE(e.start_at) <= ?")
		args = append(args, q.DateTo)
	}
	if q.Ongoing != nil {
		if *q.Ongoing {
			where = append(where, "e.start_at IS NULL")
		} else {
			where = append(where, "e.start_at IS NOT NULL")
		}
	}
	switch q.When {
	case "tonight":
		lo, hi := tonightWindow(q.Now)
		where = append(where, "e.start_at >= ?", "e.start_at <= ?")
		args = append(args, lo, hi)
	case "weekend":
		lo, hi := weekendWindow(q.Now)
		where = append(where, "e.start_at >= ?", "e.start_at < ?")
		args = append(args, lo, hi)
	}
	return where, args
}

// Search returns one page of events plus the total count of matching
// rows with no pagination applied.  All filters combine with AND;
// sorting follows eventOrderBy.
func (r *EventRepo) Search(ctx context.Context, q EventSearchQuery) ([]EventRow, int64, error) {
	where, args := buildEventFilters(q)

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	var total int64
	countSQL := `SELECT COUNT(*)
	  FROM events e
	  JOIN cities c ON c.id = e.city_id
	  LEFT JOIN venues v ON v.id = e.venue_id
	  WHERE ` + cond
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := eventSelect + `
	  WHERE ` + cond + `
	  ORDER BY ` + eventOrderBy + `
	  LIMIT ? OFFSET ?`
	dataArgs := append(append([]any{}, args...), q.Limit, q.Offset)

	rows, err := r.db.QueryContext(ctx, dataSQL, dataArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]EventRow, 0, q.Limit)
	for rows.Next() {
		row, err := scanEventRow(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// tonightWindow returns the [lo, hi] bounds for when=tonight: from
// 18:00 today (or "now", once the evening has started) until the last
// microsecond of the day.  The filter works on start_at only, so events
// that started before "now" drop out even if they are still running.
func tonightWindow(now time.Time) (time.Time, time.Time) {
	lo := time.Date(now.Year(), now.Month(), now.Day(), 18, 0, 0, 0, now.Location())
	if now.After(lo) {
		lo = now
	}
	hi := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999000, now.Location())
	return lo, hi
}

// weekendWindow returns the [lo, hi) bounds for when=weekend: the
// upcoming Saturday 00:00 through the following Monday 00:00.  When
// "now" already falls inside a weekend the lower bound advances to
// "now" so past starts are excluded.
func weekendWindow(now time.Time) (time.Time, time.Time) {
	// Monday=0 .. Sunday=6, so Saturday is 5.
	weekday := (int(now.Weekday()) + 6) % 7
	daysUntilSaturday := (5 - weekday) % 7

	sat := now.AddDate(0, 0, daysUntilSaturday)
	satStart := time.Date(sat.Year(), sat.Month(), sat.Day(), 0, 0, 0, 0, now.Location())
	monStart := satStart.AddDate(0, 0, 2)

	lo := satStart
	if (weekday == 5 || weekday == 6) && now.After(satStart) {
		lo = now
	}
	return lo, monStart
}
