package entity

import "time"

// EventType names a workflow transition.
type EventType string

const (
	EventSubmitted EventType = "article.submitted"
	EventModerated EventType = "article.moderated"
	EventPromoted  EventType = "article.promoted"
	EventRejected  EventType = "article.rejected"
)

// WorkflowEvent describes one transition of a submission between stores.
type WorkflowEvent struct {
	Type       EventType      `json:"type"`
	ArticleID  string         `json:"articleId"`
	DOI        string         `json:"doi"`
	Title      string         `json:"title"`
	Stage      RejectionStage `json:"stage,omitempty"`
	Reason     string         `json:"reason,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}
