package repository

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func boolPtr(b bool) *bool { return &b }

func TestBuildEventFilters(t *testing.T) {
	// 2026-03-04 is a Wednesday.
	now := at(2026, time.March, 4, 14, 30)

	tests := []struct {
		name      string
		q         EventSearchQuery
		wantWhere []string
		wantArgs  []any
	}{
		{
			name:      "no filters",
			q:         EventSearchQuery{},
			wantWhere: []string{},
			wantArgs:  []any{},
		},
		{
			name:      "city and free",
			q:         EventSearchQuery{CitySlug: "deventer", FreeOnly: true},
			wantWhere: []string{"c.slug = ?", "e.is_free = 1"},
			wantArgs:  []any{"deventer"},
		},
		{
			name: "free text matches title, description and venue",
			q:    EventSearchQuery{Q: "Jazz"},
			wantWhere: []string{
				"(LOWER(e.title) LIKE ? OR LOWER(e.description) LIKE ? OR LOWER(v.name) LIKE ?)",
			},
			wantArgs: []any{"%jazz%", "%jazz%", "%jazz%"},
		},
		{
			name: "free text escapes wildcards",
			q:    EventSearchQuery{Q: `50%_korting\`},
			wantWhere: []string{
				"(LOWER(e.title) LIKE ? OR LOWER(e.description) LIKE ? OR LOWER(v.name) LIKE ?)",
			},
			wantArgs: []any{`%50\%\_korting\\%`, `%50\%\_korting\\%`, `%50\%\_korting\\%`},
		},
		{
			name:      "date range",
			q:         EventSearchQuery{DateFrom: "2026-03-01", DateTo: "2026-03-31"},
			wantWhere: []string{"DATE(e.start_at) >= ?", "DATE(e.start_at) <= ?"},
			wantArgs:  []any{"2026-03-01", "2026-03-31"},
		},
		{
			name:      "ongoing only",
			q:         EventSearchQuery{Ongoing: boolPtr(true)},
			wantWhere: []string{"e.start_at IS NULL"},
			wantArgs:  []any{},
		},
		{
			name:      "dated only",
			q:         EventSearchQuery{Ongoing: boolPtr(false)},
			wantWhere: []string{"e.start_at IS NOT NULL"},
			wantArgs:  []any{},
		},
		{
			name:      "tonight window is inclusive on both ends",
			q:         EventSearchQuery{When: "tonight", Now: now},
			wantWhere: []string{"e.start_at >= ?", "e.start_at <= ?"},
			wantArgs: []any{
				at(2026, time.March, 4, 18, 0),
				time.Date(2026, time.March, 4, 23, 59, 59, 999999000, time.Local),
			},
		},
		{
			name:      "weekend window is half-open",
			q:         EventSearchQuery{When: "weekend", Now: now},
			wantWhere: []string{"e.start_at >= ?", "e.start_at < ?"},
			wantArgs: []any{
				at(2026, time.March, 7, 0, 0),
				at(2026, time.March, 9, 0, 0),
			},
		},
		{
			name: "filters combine in declaration order",
			q: EventSearchQuery{
				CitySlug: "apeldoorn",
				FreeOnly: true,
				Q:        "markt",
				DateFrom: "2026-03-01",
				Ongoing:  boolPtr(false),
			},
			wantWhere: []string{
				"c.slug = ?",
				"e.is_free = 1",
				"(LOWER(e.title) LIKE ? OR LOWER(e.description) LIKE ? OR LOWER(v.name) LIKE ?)",
				"DATE(e.start_at) >= ?",
				"e.start_at IS NOT NULL",
			},
			wantArgs: []any{"apeldoorn", "%markt%", "%markt%", "%markt%", "2026-03-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildEventFilters(tt.q)
			if !reflect.DeepEqual(where, tt.wantWhere) {
				t.Errorf("where = %q, want %q", where, tt.wantWhere)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestEventOrderClause(t *testing.T) {
	nullRank := strings.Index(eventOrderBy, "e.start_at IS NULL")
	start := strings.Index(eventOrderBy, "e.start_at,")
	title := strings.Index(eventOrderBy, "e.title")
	if nullRank == -1 || start == -1 || title == -1 {
		t.Fatalf("order clause %q is missing a sort key", eventOrderBy)
	}
	if !(nullRank < start && start < title) {
		t.Errorf("order clause %q must rank dated-first, then start date, then title", eventOrderBy)
	}
}

func TestTonightWindow(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		wantLo time.Time
	}{
		{
			name:   "afternoon keeps 18:00 lower bound",
			now:    at(2026, time.March, 4, 14, 30),
			wantLo: at(2026, time.March, 4, 18, 0),
		},
		{
			name:   "evening advances lower bound to now",
			now:    at(2026, time.March, 4, 20, 15),
			wantLo: at(2026, time.March, 4, 20, 15),
		},
		{
			name:   "exactly 18:00 keeps 18:00",
			now:    at(2026, time.March, 4, 18, 0),
			wantLo: at(2026, time.March, 4, 18, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := tonightWindow(tt.now)
			if !lo.Equal(tt.wantLo) {
				t.Errorf("lo = %v, want %v", lo, tt.wantLo)
			}
			wantHi := time.Date(2026, time.March, 4, 23, 59, 59, 999999000, time.Local)
			if !hi.Equal(wantHi) {
				t.Errorf("hi = %v, want %v", hi, wantHi)
			}
		})
	}
}

func TestWeekendWindow(t *testing.T) {
	// 2026-03-07 is a Saturday.
	satStart := at(2026, time.March, 7, 0, 0)
	monStart := at(2026, time.March, 9, 0, 0)

	tests := []struct {
		name   string
		now    time.Time
		wantLo time.Time
		wantHi time.Time
	}{
		{
			name:   "wednesday points at upcoming saturday",
			now:    at(2026, time.March, 4, 12, 0),
			wantLo: satStart,
			wantHi: monStart,
		},
		{
			name:   "friday evening still points at saturday",
			now:    at(2026, time.March, 6, 22, 0),
			wantLo: satStart,
			wantHi: monStart,
		},
		{
			name:   "saturday afternoon advances lower bound to now",
			now:    at(2026, time.March, 7, 15, 0),
			wantLo: at(2026, time.March, 7, 15, 0),
			wantHi: monStart,
		},
		{
			name:   "sunday advances lower bound to now",
			now:    at(2026, time.March, 8, 11, 0),
			wantLo: at(2026, time.March, 8, 11, 0),
			wantHi: monStart,
		},
		{
			name:   "monday rolls over to next weekend",
			now:    at(2026, time.March, 9, 9, 0),
			wantLo: at(2026, time.March, 14, 0, 0),
			wantHi: at(2026, time.March, 16, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := weekendWindow(tt.now)
			if !lo.Equal(tt.wantLo) {
				t.Errorf("lo = %v, want %v", lo, tt.wantLo)
			}
			if !hi.Equal(tt.wantHi) {
				t.Errorf("hi = %v, want %v", hi, tt.wantHi)
			}
		})
	}
}
