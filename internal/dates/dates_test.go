package dates

import (
	"testing"
	"time"
)

func TestParseSingle(t *testing.T) {
	tests := []struct {
		name string
		text string
		want time.Time
		ok   bool
	}{
		{name: "plain", text: "7 februari 2026", want: time.Date(2026, time.February, 7, 9, 0, 0, 0, time.Local), ok: true},
		{name: "uppercase", text: "7 Februari 2026", want: time.Date(2026, time.February, 7, 9, 0, 0, 0, time.Local), ok: true},
		{name: "embedded", text: "za 7 februari 2026 vanaf 20:00", want: time.Date(2026, time.February, 7, 9, 0, 0, 0, time.Local), ok: true},
		{name: "extra whitespace", text: "  7   maart\t2026 ", want: time.Date(2026, time.March, 7, 9, 0, 0, 0, time.Local), ok: true},
		{name: "unknown month", text: "7 smarch 2026", ok: false},
		{name: "no year", text: "7 februari", ok: false},
		{name: "empty", text: "", ok: false},
		{name: "period text", text: "jaarrond geopend", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSingle(tt.text)
			if ok != tt.ok {
				t.Fatalf("ParseSingle(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Fatalf("ParseSingle(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseRange(t *testing.T) {
	start := time.Date(2026, time.February, 14, 9, 0, 0, 0, time.Local)
	end := time.Date(2026, time.March, 2, 17, 0, 0, 0, time.Local)

	seps := []string{"-", "–", "—", "t/m", "tot en met"}
	for _, sep := range seps {
		t.Run("separator "+sep, func(t *testing.T) {
			gotStart, gotEnd := ParseRange("14 februari " + sep + " 2 maart 2026")
			if gotStart == nil || gotEnd == nil {
				t.Fatalf("ParseRange returned nil, want %v / %v", start, end)
			}
			if !gotStart.Equal(start) {
				t.Errorf("start = %v, want %v", gotStart, start)
			}
			if !gotEnd.Equal(end) {
				t.Errorf("end = %v, want %v", gotEnd, end)
			}
		})
	}

	t.Run("falls back to single date", func(t *testing.T) {
		gotStart, gotEnd := ParseRange("7 februari 2026")
		if gotStart == nil || gotEnd != nil {
			t.Fatalf("ParseRange = %v / %v, want single start and nil end", gotStart, gotEnd)
		}
		want := time.Date(2026, time.February, 7, 9, 0, 0, 0, time.Local)
		if !gotStart.Equal(want) {
			t.Errorf("start = %v, want %v", gotStart, want)
		}
	})

	t.Run("unknown month in range", func(t *testing.T) {
		gotStart, gotEnd := ParseRange("14 blergh - 2 maart 2026")
		if gotStart != nil || gotEnd != nil {
			t.Fatalf("ParseRange = %v / %v, want nil / nil", gotStart, gotEnd)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		gotStart, gotEnd := ParseRange("april tot november, alleen weekenden")
		if gotStart != nil || gotEnd != nil {
			t.Fatalf("ParseRange = %v / %v, want nil / nil", gotStart, gotEnd)
		}
	})
}

func TestNorm(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  7  februari   2026 ", want: "7 februari 2026"},
		{in: "a\t\nb", want: "a b"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		if got := Norm(tt.in); got != tt.want {
			t.Errorf("Norm(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
