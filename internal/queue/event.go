// Package queue defines message payloads exchanged over the message
// broker and the background consumer that processes them.
package queue

// FeedbackReceivedEvent is published when a feedback submission has been
// stored.  It carries enough for downstream consumers (notification,
// triage tooling) to act without querying the primary database.
type FeedbackReceivedEvent struct {
	FeedbackID uint64 `json:"feedback_id"`
	Message    string `json:"message"`
	Email      string `json:"email,omitempty"`
	PageURL    string `json:"page_url,omitempty"`
	ReceivedAt string `json:"received_at"`
}
