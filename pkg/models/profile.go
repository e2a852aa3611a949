// Package models contains the business domain types shared across the memory
// engine: profile rows, events, gists, merge plans, and retrieval options.
package models

import "time"

// ProfileAttributes locates a profile entry in the topic taxonomy.
type ProfileAttributes struct {
	Topic    string `json:"topic"`
	SubTopic string `json:"sub_topic"`
}

// SlotKey returns the logical identity of the entry. (user, SlotKey) is
// unique in a healthy profile store.
func (a ProfileAttributes) SlotKey() string {
	return a.Topic + "::" + a.SubTopic
}

// ProfileEntry is one durable profile row.
type ProfileEntry struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	Content    string            `json:"content"`
	Attributes ProfileAttributes `json:"attributes"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// AddProfile is a pending insert produced by the merge planner.
type AddProfile struct {
	Content    string            `json:"content"`
	Attributes ProfileAttributes `json:"attributes"`
}

// UpdateProfile is a pending rewrite of an existing row. Attributes is nil
// when the slot is unchanged.
type UpdateProfile struct {
	ProfileID  string             `json:"profile_id"`
	Content    string             `json:"content"`
	Attributes *ProfileAttributes `json:"attributes,omitempty"`
}
