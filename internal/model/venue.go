package model

// Venue is a location inside one city where events take place.  Venues
// are created lazily by the import job when a row carries a plausible
// venue name; the query/import paths never delete them.  Corresponds
// to a row in the `venues` table.
//
// Fields:
//  ID      – primary key identifier.
//  CityID  – owning city.
//  Name    – venue name, unique together with the city in practice.
//  Address – street address, empty when unknown.
type Venue struct {
	ID      uint64 // venues.id
	CityID  uint64 // venues.city_id
	Name    string // venues.name
	Address string // venues.address (empty allowed)
}
