package models

import "time"

// EventData is the audit payload of one extraction batch.
type EventData struct {
	// ProfileDelta holds the net-new content of the batch: planned adds plus
	// the update deltas, not the whole merged rows.
	ProfileDelta []AddProfile `json:"profile_delta,omitempty"`
	// EventTip is the short natural-language summary of the batch.
	EventTip string `json:"event_tip,omitempty"`
	// MergePlan records which rows the batch touched.
	MergePlan *MergePlanAudit `json:"merge_plan,omitempty"`
}

// MergePlanAudit is the applied merge plan by profile id.
type MergePlanAudit struct {
	AddIDs    []string `json:"add_ids,omitempty"`
	UpdateIDs []string `json:"update_ids,omitempty"`
	DeleteIDs []string `json:"delete_ids,omitempty"`
}

// Event is one append-only audit record.
type Event struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Data      EventData `json:"event_data"`
	CreatedAt time.Time `json:"created_at"`
}

// Gist is one retrieval-time fact derived from an event.
type Gist struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	EventID   string    `json:"event_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// GistHit is a gist scored against a query embedding.
type GistHit struct {
	Gist
	Similarity float64 `json:"similarity"`
}
