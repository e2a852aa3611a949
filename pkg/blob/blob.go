// Package blob defines the ingestion payload types and the deterministic
// token accounting shared by buffer sizing, summary truncation, and context
// packing.
package blob

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// BlobType identifies the payload kind carried by a blob.
type BlobType string

// Supported blob types.
const (
	TypeChat BlobType = "chat"
	TypeDoc  BlobType = "doc"
	TypeCode BlobType = "code"
)

// Valid reports whether the blob type is one of the supported kinds.
func (t BlobType) Valid() bool {
	switch t {
	case TypeChat, TypeDoc, TypeCode:
		return true
	}
	return false
}

// Message roles for chat payloads.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is a single turn inside a chat blob.
type Message struct {
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	Alias     string     `json:"alias,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// ChatPayload is an ordered sequence of conversation turns.
type ChatPayload struct {
	Messages []Message `json:"messages"`
}

// DocPayload is a single document text with optional title.
type DocPayload struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
}

// CodePayload is a single code block with optional language tag.
type CodePayload struct {
	Language string `json:"language,omitempty"`
	Content  string `json:"content"`
}

// Blob is an immutable ingestion unit. Exactly one payload field matching
// Type is set.
type Blob struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      BlobType  `json:"type"`
	CreatedAt time.Time `json:"created_at"`

	Chat *ChatPayload `json:"chat,omitempty"`
	Doc  *DocPayload  `json:"doc,omitempty"`
	Code *CodePayload `json:"code,omitempty"`
}

// NewChatBlob builds a chat blob from conversation turns.
func NewChatBlob(userID string, messages ...Message) *Blob {
	return &Blob{
		UserID:    userID,
		Type:      TypeChat,
		CreatedAt: time.Now(),
		Chat:      &ChatPayload{Messages: messages},
	}
}

// Validate checks that the blob carries exactly the payload its type declares.
func (b *Blob) Validate() error {
	if !b.Type.Valid() {
		return fmt.Errorf("unknown blob type %q", b.Type)
	}
	switch b.Type {
	case TypeChat:
		if b.Chat == nil || len(b.Chat.Messages) == 0 {
			return fmt.Errorf("chat blob requires at least one message")
		}
		for i, m := range b.Chat.Messages {
			switch m.Role {
			case RoleUser, RoleAssistant, RoleSystem:
			default:
				return fmt.Errorf("message %d: unknown role %q", i, m.Role)
			}
		}
	case TypeDoc:
		if b.Doc == nil || b.Doc.Content == "" {
			return fmt.Errorf("doc blob requires content")
		}
	case TypeCode:
		if b.Code == nil || b.Code.Content == "" {
			return fmt.Errorf("code blob requires content")
		}
	}
	return nil
}

// PayloadJSON serializes the active payload for the blob_content table.
func (b *Blob) PayloadJSON() (json.RawMessage, error) {
	var payload any
	switch b.Type {
	case TypeChat:
		payload = b.Chat
	case TypeDoc:
		payload = b.Doc
	case TypeCode:
		payload = b.Code
	default:
		return nil, fmt.Errorf("unknown blob type %q", b.Type)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", b.Type, err)
	}
	return data, nil
}

// FromPayloadJSON reconstructs a blob from a stored payload.
func FromPayloadJSON(id, userID string, blobType BlobType, createdAt time.Time, raw json.RawMessage) (*Blob, error) {
	b := &Blob{ID: id, UserID: userID, Type: blobType, CreatedAt: createdAt}
	var err error
	switch blobType {
	case TypeChat:
		b.Chat = &ChatPayload{}
		err = json.Unmarshal(raw, b.Chat)
	case TypeDoc:
		b.Doc = &DocPayload{}
		err = json.Unmarshal(raw, b.Doc)
	case TypeCode:
		b.Code = &CodePayload{}
		err = json.Unmarshal(raw, b.Code)
	default:
		return nil, fmt.Errorf("unknown blob type %q", blobType)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s payload: %w", blobType, err)
	}
	return b, nil
}

// RenderText flattens the blob to the plain text used for token counting and
// prompt composition. Chat messages render as "<role>: <content>\n" per turn.
func (b *Blob) RenderText() string {
	switch b.Type {
	case TypeChat:
		if b.Chat == nil {
			return ""
		}
		var sb strings.Builder
		for _, m := range b.Chat.Messages {
			sb.WriteString(m.Role)
			sb.WriteString(": ")
			sb.WriteString(m.Content)
			sb.WriteString("\n")
		}
		return sb.String()
	case TypeDoc:
		if b.Doc == nil {
			return ""
		}
		if b.Doc.Title != "" {
			return b.Doc.Title + "\n" + b.Doc.Content
		}
		return b.Doc.Content
	case TypeCode:
		if b.Code == nil {
			return ""
		}
		return b.Code.Content
	}
	return ""
}
