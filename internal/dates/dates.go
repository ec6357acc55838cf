// Package dates parses the free-text Dutch date expressions that appear
// in the source spreadsheets, such as "7 februari 2026" or
// "14 februari – 2 maart 2026".  Parsing is deliberately total: text
// that does not match any known form yields no value rather than an
// error, because undated ("jaarrond") items are a normal part of the
// data and the caller treats missing dates as "ongoing".
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dutchMonths maps full lowercase Dutch month names to month numbers.
var dutchMonths = map[string]time.Month{
	"januari": time.January, "februari": time.February, "maart": time.March,
	"april": time.April, "mei": time.May, "juni": time.June,
	"juli": time.July, "augustus": time.August, "september": time.September,
	"oktober": time.October, "november": time.November, "december": time.December,
}

var (
	wsRe     = regexp.MustCompile(`\s+`)
	singleRe = regexp.MustCompile(`\b(\d{1,2})\s+([a-z]+)\s+(\d{4})\b`)
	rangeRe  = regexp.MustCompile(`(\d{1,2})\s+([a-z]+)\s*-\s*(\d{1,2})\s+([a-z]+)\s+(\d{4})`)
)

// Norm collapses whitespace runs to a single space and trims the result.
// Import code normalizes every cell through this before matching.
func Norm(s string) string {
	return strings.TrimSpace(wsRe.ReplaceAllString(s, " "))
}

// ParseSingle parses "<day> <month> <year>" into a timestamp at 09:00
// local time.  The boolean is false when the text contains no such
// pattern or the month name is not a Dutch month.
func ParseSingle(text string) (time.Time, bool) {
	t := strings.ToLower(Norm(text))
	m := singleRe.FindStringSubmatch(t)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, ok := dutchMonths[m[2]]
	if !ok {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(m[3])
	return time.Date(year, month, day, 9, 0, 0, 0, time.Local), true
}

// ParseRange parses "<d1> <month1> - <d2> <month2> <year>" into a
// (start, end) pair: start at 09:00 on the first date, end at 17:00 on
// the second.  The separators "–", "—", "t/m" and "tot en met" are
// accepted alongside a plain hyphen.  When the range pattern does not
// match, it falls back to single-date parsing and returns (start, nil).
// Unknown month names yield (nil, nil).
func ParseRange(text string) (*time.Time, *time.Time) {
	raw := strings.ToLower(Norm(text))
	raw = strings.ReplaceAll(raw, "–", "-")
	raw = strings.ReplaceAll(raw, "—", "-")
	raw = strings.ReplaceAll(raw, "t/m", "-")
	raw = strings.ReplaceAll(raw, "tot en met", "-")

	m := rangeRe.FindStringSubmatch(raw)
	if m == nil {
		if single, ok := ParseSingle(text); ok {
			return &single, nil
		}
		return nil, nil
	}

	d1, _ := strconv.Atoi(m[1])
	d2, _ := strconv.Atoi(m[3])
	year, _ := strconv.Atoi(m[5])
	mo1, ok1 := dutchMonths[m[2]]
	mo2, ok2 := dutchMonths[m[4]]
	if !ok1 || !ok2 {
		return nil, nil
	}

	start := time.Date(year, mo1, d1, 9, 0, 0, 0, time.Local)
	end := time.Date(year, mo2, d2, 17, 0, 0, 0, time.Local)
	return &start, &end
}
