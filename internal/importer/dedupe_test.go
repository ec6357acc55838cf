package importer

import (
	"strings"
	"testing"
)

func TestBuildDedupeKey(t *testing.T) {
	tests := []struct {
		name     string
		city     string
		title    string
		dateText string
		want     string
	}{
		{
			name: "plain", city: "apeldoorn",
			title: "Koningsdag Markt", dateText: "27 april 2026",
			want: "apeldoorn|koningsdag-markt|27-april-2026",
		},
		{
			name: "empty date", city: "deventer",
			title: "Museum", dateText: "",
			want: "deventer|museum|",
		},
		{
			name: "diacritics and punctuation", city: "apeldoorn",
			title: "Café-concert: André!", dateText: "jaarrond",
			want: "apeldoorn|cafe-concert-andre|jaarrond",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildDedupeKey(tt.city, tt.title, tt.dateText)
			if got != tt.want {
				t.Fatalf("BuildDedupeKey = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildDedupeKeyDeterministicAndBounded(t *testing.T) {
	long := strings.Repeat("heel lang evenement ", 30)
	first := BuildDedupeKey("apeldoorn", long, long)
	if len(first) > 255 {
		t.Fatalf("key length = %d, want <= 255", len(first))
	}
	for i := 0; i < 5; i++ {
		if got := BuildDedupeKey("apeldoorn", long, long); got != first {
			t.Fatalf("key not deterministic: %q vs %q", got, first)
		}
	}
}

func TestIdentityToken(t *testing.T) {
	if got := IdentityToken("apeldoorn", "https://example.com/x", "apeldoorn|x|"); got != "https://example.com/x" {
		t.Errorf("token with source URL = %q, want the URL itself", got)
	}
	if got := IdentityToken("apeldoorn", "", "apeldoorn|x|"); got != "apeldoorn|apeldoorn|x|" {
		t.Errorf("token without source URL = %q, want city-prefixed dedupe key", got)
	}
}
