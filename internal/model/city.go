package model

// City is a municipality that events and venues belong to.  Cities are
// created by an administrator (or seeded by hand) and are effectively
// immutable afterwards; the import job refuses to run against a slug
// that does not exist yet.  This struct corresponds to a row in the
// `cities` table.
//
// Fields:
//  ID   – primary key identifier.
//  Name – display name, e.g. "Apeldoorn".
//  Slug – unique URL-safe identifier, e.g. "apeldoorn".
type City struct {
	ID   uint64 // cities.id
	Name string // cities.name
	Slug string // cities.slug
}
