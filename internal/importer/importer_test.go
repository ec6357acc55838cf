package importer

import "testing"

func TestHeaderIndex(t *testing.T) {
	cols := headerIndex([]string{" Naam/Activiteit ", "Datum", "", "Locatie/Omschrijving", "Website"})
	want := map[string]int{
		"Naam/Activiteit":      0,
		"Datum":                1,
		"Locatie/Omschrijving": 3,
		"Website":              4,
	}
	if len(cols) != len(want) {
		t.Fatalf("headerIndex has %d entries, want %d", len(cols), len(want))
	}
	for name, idx := range want {
		if got, ok := cols[name]; !ok || got != idx {
			t.Errorf("cols[%q] = %d (present=%v), want %d", name, got, ok, idx)
		}
	}
}

func TestRowGet(t *testing.T) {
	cols := headerIndex([]string{colTitle, colDate, colLocation})
	r := row{cells: []string{"  Zomerfestival   Deventer ", "7 juni 2026"}, cols: cols}

	if got := r.get(colTitle); got != "Zomerfestival Deventer" {
		t.Errorf("title = %q, want normalized text", got)
	}
	if got := r.get(colDate); got != "7 juni 2026" {
		t.Errorf("date = %q", got)
	}
	// Row shorter than the header: missing trailing cells read as empty.
	if got := r.get(colLocation); got != "" {
		t.Errorf("location = %q, want empty", got)
	}
	// Unknown column name reads as empty too.
	if got := r.get("Prijs"); got != "" {
		t.Errorf("unknown column = %q, want empty", got)
	}
}

func TestReportString(t *testing.T) {
	rep := Report{Rows: 10, Unique: 8, Created: 5, Updated: 3, Skipped: 1, Errors: 1}
	want := "rows=10 unique=8 created=5 updated=3 skipped=1 errors=1"
	if got := rep.String(); got != want {
		t.Fatalf("Report.String() = %q, want %q", got, want)
	}
}
