package handler

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestValidateFeedback(t *testing.T) {
	tests := []struct {
		name       string
		req        feedbackReq
		wantFields []string
	}{
		{
			name: "valid minimal",
			req:  feedbackReq{Message: "0123456789"},
		},
		{
			name: "valid full",
			req:  feedbackReq{Message: "werkt goed, bedankt!", Email: "jan@example.com", PageURL: "https://uitjes.nl/apeldoorn"},
		},
		{
			name:       "message too short",
			req:        feedbackReq{Message: "012345678"},
			wantFields: []string{"message"},
		},
		{
			name:       "message missing",
			req:        feedbackReq{},
			wantFields: []string{"message"},
		},
		{
			name:       "bad email",
			req:        feedbackReq{Message: "0123456789", Email: "not-an-email"},
			wantFields: []string{"email"},
		},
		{
			name:       "bad url scheme",
			req:        feedbackReq{Message: "0123456789", PageURL: "ftp://example.com/x"},
			wantFields: []string{"page_url"},
		},
		{
			name:       "url without host",
			req:        feedbackReq{Message: "0123456789", PageURL: "https://"},
			wantFields: []string{"page_url"},
		},
		{
			name:       "multiple fields",
			req:        feedbackReq{Message: "kort", Email: "nope", PageURL: "nope"},
			wantFields: []string{"message", "email", "page_url"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validateFeedback(tt.req)
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("got errors on %d fields (%v), want %d", len(errs), errs, len(tt.wantFields))
			}
			for _, f := range tt.wantFields {
				if len(errs[f]) == 0 {
					t.Errorf("expected an error on field %q, got %v", f, errs)
				}
			}
		})
	}
}

func TestValidateFeedbackTenRunesNotBytes(t *testing.T) {
	// 10 multibyte runes must pass the minimum length check.
	req := feedbackReq{Message: "éééééééééé"}
	if errs := validateFeedback(req); len(errs) != 0 {
		t.Fatalf("10-rune message rejected: %v", errs)
	}
}

func TestClampUserAgent(t *testing.T) {
	tests := []struct {
		name      string
		ua        string
		wantRunes int
	}{
		{name: "short stays intact", ua: "curl/8.5.0", wantRunes: 10},
		{name: "ascii clamped to limit", ua: strings.Repeat("a", maxUserAgentLen+50), wantRunes: maxUserAgentLen},
		{name: "multibyte clamped without splitting a rune", ua: strings.Repeat("é", maxUserAgentLen+1), wantRunes: maxUserAgentLen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clampUserAgent(tt.ua)
			if n := len([]rune(got)); n != tt.wantRunes {
				t.Errorf("len = %d runes, want %d", n, tt.wantRunes)
			}
			if !utf8.ValidString(got) {
				t.Errorf("result is not valid UTF-8: %q", got)
			}
		})
	}
}
