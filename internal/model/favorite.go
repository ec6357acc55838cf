package model

import "time"

// Favorite pairs one user with one event.  At most one row exists per
// (user, event); rows cascade away when either side is deleted.
type Favorite struct {
	ID        uint64    // favorites.id
	UserID    uint64    // favorites.user_id
	EventID   uint64    // favorites.event_id
	CreatedAt time.Time // favorites.created_at
}
