package model

import "time"

// Feedback is a free-text submission from an end user.  Records are
// immutable once created; the user agent is captured server-side and
// truncated to 300 characters before storage.
type Feedback struct {
	ID        uint64    // feedback.id
	Message   string    // feedback.message
	Email     string    // feedback.email (empty allowed)
	PageURL   string    // feedback.page_url (empty allowed)
	UserAgent string    // feedback.user_agent (empty allowed)
	CreatedAt time.Time // feedback.created_at
}
