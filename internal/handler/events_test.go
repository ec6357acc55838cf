package handler

import "testing"

func TestParseLimitOffset(t *testing.T) {
	tests := []struct {
		name       string
		limit      string
		offset     string
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", limit: "", offset: "", wantLimit: 20, wantOffset: 0},
		{name: "explicit", limit: "50", offset: "10", wantLimit: 50, wantOffset: 10},
		{name: "limit clamped high", limit: "500", offset: "0", wantLimit: 100, wantOffset: 0},
		{name: "limit clamped low", limit: "0", offset: "0", wantLimit: 1, wantOffset: 0},
		{name: "negative offset", limit: "20", offset: "-5", wantLimit: 20, wantOffset: 0},
		{name: "garbage falls back", limit: "abc", offset: "xyz", wantLimit: 20, wantOffset: 0},
		{name: "garbage limit keeps offset", limit: "abc", offset: "40", wantLimit: 20, wantOffset: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := parseLimitOffset(tt.limit, tt.offset)
			if limit != tt.wantLimit || offset != tt.wantOffset {
				t.Fatalf("parseLimitOffset(%q, %q) = (%d, %d), want (%d, %d)",
					tt.limit, tt.offset, limit, offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestHasMoreArithmetic(t *testing.T) {
	// has_more must be true iff offset+limit < count, and next_offset
	// only reported in that case.
	tests := []struct {
		name    string
		count   int64
		limit   int
		offset  int
		hasMore bool
	}{
		{name: "first of three pages", count: 3, limit: 1, offset: 0, hasMore: true},
		{name: "last page", count: 3, limit: 1, offset: 2, hasMore: false},
		{name: "exact fit", count: 20, limit: 20, offset: 0, hasMore: false},
		{name: "empty result", count: 0, limit: 20, offset: 0, hasMore: false},
		{name: "offset past end", count: 5, limit: 20, offset: 40, hasMore: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := tt.offset + tt.limit
			got := int64(next) < tt.count
			if got != tt.hasMore {
				t.Fatalf("has_more = %v, want %v", got, tt.hasMore)
			}
		})
	}
}
