// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/AlwaysBluer/lindorm-memobase/ent/blobrecord"
	"github.com/AlwaysBluer/lindorm-memobase/ent/bufferentry"
	"github.com/AlwaysBluer/lindorm-memobase/ent/eventgist"
	"github.com/AlwaysBluer/lindorm-memobase/ent/memoryevent"
	"github.com/AlwaysBluer/lindorm-memobase/ent/schema"
	"github.com/AlwaysBluer/lindorm-memobase/ent/userprofile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	blobrecordFields := schema.BlobRecord{}.Fields()
	_ = blobrecordFields
	// blobrecordDescCreatedAt is the schema descriptor for created_at field.
	blobrecordDescCreatedAt := blobrecordFields[4].Descriptor()
	// blobrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	blobrecord.DefaultCreatedAt = blobrecordDescCreatedAt.Default.(func() time.Time)
	bufferentryFields := schema.BufferEntry{}.Fields()
	_ = bufferentryFields
	// bufferentryDescTokenSize is the schema descriptor for token_size field.
	bufferentryDescTokenSize := bufferentryFields[5].Descriptor()
	// bufferentry.TokenSizeValidator is a validator for the "token_size" field. It is called by the builders before save.
	bufferentry.TokenSizeValidator = bufferentryDescTokenSize.Validators[0].(func(int) error)
	// bufferentryDescCreatedAt is the schema descriptor for created_at field.
	bufferentryDescCreatedAt := bufferentryFields[6].Descriptor()
	// bufferentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	bufferentry.DefaultCreatedAt = bufferentryDescCreatedAt.Default.(func() time.Time)
	// bufferentryDescUpdatedAt is the schema descriptor for updated_at field.
	bufferentryDescUpdatedAt := bufferentryFields[7].Descriptor()
	// bufferentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	bufferentry.DefaultUpdatedAt = bufferentryDescUpdatedAt.Default.(func() time.Time)
	eventgistFields := schema.EventGist{}.Fields()
	_ = eventgistFields
	// eventgistDescCreatedAt is the schema descriptor for created_at field.
	eventgistDescCreatedAt := eventgistFields[5].Descriptor()
	// eventgist.DefaultCreatedAt holds the default value on creation for the created_at field.
	eventgist.DefaultCreatedAt = eventgistDescCreatedAt.Default.(func() time.Time)
	memoryeventFields := schema.MemoryEvent{}.Fields()
	_ = memoryeventFields
	// memoryeventDescCreatedAt is the schema descriptor for created_at field.
	memoryeventDescCreatedAt := memoryeventFields[4].Descriptor()
	// memoryevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	memoryevent.DefaultCreatedAt = memoryeventDescCreatedAt.Default.(func() time.Time)
	userprofileFields := schema.UserProfile{}.Fields()
	_ = userprofileFields
	// userprofileDescCreatedAt is the schema descriptor for created_at field.
	userprofileDescCreatedAt := userprofileFields[4].Descriptor()
	// userprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	userprofile.DefaultCreatedAt = userprofileDescCreatedAt.Default.(func() time.Time)
	// userprofileDescUpdatedAt is the schema descriptor for updated_at field.
	userprofileDescUpdatedAt := userprofileFields[5].Descriptor()
	// userprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userprofile.DefaultUpdatedAt = userprofileDescUpdatedAt.Default.(func() time.Time)
}
