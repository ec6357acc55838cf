package importer

import "github.com/Marcob7/uitjes-backend/internal/utils"

// maxDedupeKeyLen matches the VARCHAR(255) column the key lands in.
const maxDedupeKeyLen = 255

// BuildDedupeKey derives the fallback identity for an event row that
// carries no source URL: slugified city, title and date text joined by
// "|".  The function is pure and total — identical inputs always yield
// identical keys — which is what makes it usable as an upsert match key
// within one city.
func BuildDedupeKey(citySlug, title, dateText string) string {
	key := citySlug + "|" + utils.Slugify(title) + "|" + utils.Slugify(dateText)
	if len(key) > maxDedupeKeyLen {
		key = key[:maxDedupeKeyLen]
	}
	return key
}

// IdentityToken is the in-batch duplicate detector for a row: the source
// URL when present, otherwise city plus dedupe key.  Rows repeating a
// token within one file are skipped, since the database upsert matches
// per statement and would happily write the same row twice.
func IdentityToken(citySlug, sourceURL, dedupeKey string) string {
	if sourceURL != "" {
		return sourceURL
	}
	return citySlug + "|" + dedupeKey
}
