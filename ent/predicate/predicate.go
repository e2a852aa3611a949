// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BlobRecord is the predicate function for blobrecord builders.
type BlobRecord func(*sql.Selector)

// BufferEntry is the predicate function for bufferentry builders.
type BufferEntry func(*sql.Selector)

// EventGist is the predicate function for eventgist builders.
type EventGist func(*sql.Selector)

// MemoryEvent is the predicate function for memoryevent builders.
type MemoryEvent func(*sql.Selector)

// UserProfile is the predicate function for userprofile builders.
type UserProfile func(*sql.Selector)
