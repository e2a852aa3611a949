// Code generated by ent, DO NOT EDIT.

package bufferentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/AlwaysBluer/lindorm-memobase/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldEQ(FieldUserID, v))
}

// BlobID applies equality check predicate on the "blob_id" field. It's identical to BlobIDEQ.
func BlobID(v string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldEQ(FieldBlobID, v))
}

// TokenSize applies equality check predicate on the "token_size" field. It's identical to TokenSizeEQ.
func TokenSize(v int) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldEQ(FieldTokenSize, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldContainsFold(FieldUserID, v))
}

// BlobIDEQ applies the EQ predicate on the "blob_id" field.
func BlobIDEQ(v string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldEQ(FieldBlobID, v))
}

// BlobIDNEQ applies the NEQ predicate on the "blob_id" field.
func BlobIDNEQ(v string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldNEQ(FieldBlobID, v))
}

// BlobIDIn applies the In predicate on the "blob_id" field.
func BlobIDIn(vs ...string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldIn(FieldBlobID, vs...))
}

// BlobIDNotIn applies the NotIn predicate on the "blob_id" field.
func BlobIDNotIn(vs ...string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldNotIn(FieldBlobID, vs...))
}

// BlobIDGT applies the GT predicate on the "blob_id" field.
func BlobIDGT(v string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldGT(FieldBlobID, v))
}

// BlobIDGTE applies the GTE predicate on the "blob_id" field.
func BlobIDGTE(v string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldGTE(FieldBlobID, v))
}

// BlobIDLT applies the LT predicate on the "blob_id" field.
func BlobIDLT(v string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldLT(FieldBlobID, v))
}

// BlobIDLTE applies the LTE predicate on the "blob_id" field.
func BlobIDLTE(v string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldLTE(FieldBlobID, v))
}

// BlobIDContains applies the Contains predicate on the "blob_id" field.
func BlobIDContains(v string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldContains(FieldBlobID, v))
}

// BlobIDHasPrefix applies the HasPrefix predicate on the "blob_id" field.
func BlobIDHasPrefix(v string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldHasPrefix(FieldBlobID, v))
}

// BlobIDHasSuffix applies the HasSuffix predicate on the "blob_id" field.
func BlobIDHasSuffix(v string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldHasSuffix(FieldBlobID, v))
}

// BlobIDEqualFold applies the EqualFold predicate on the "blob_id" field.
func BlobIDEqualFold(v string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldEqualFold(FieldBlobID, v))
}

// BlobIDContainsFold applies the ContainsFold predicate on the "blob_id" field.
func BlobIDContainsFold(v string) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldContainsFold(FieldBlobID, v))
}

// BlobTypeEQ applies the EQ predicate on the "blob_type" field.
func BlobTypeEQ(v BlobType) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldEQ(FieldBlobType, v))
}

// BlobTypeNEQ applies the NEQ predicate on the "blob_type" field.
func BlobTypeNEQ(v BlobType) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldNEQ(FieldBlobType, v))
}

// BlobTypeIn applies the In predicate on the "blob_type" field.
func BlobTypeIn(vs ...BlobType) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldIn(FieldBlobType, vs...))
}

// BlobTypeNotIn applies the NotIn predicate on the "blob_type" field.
func BlobTypeNotIn(vs ...BlobType) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldNotIn(FieldBlobType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldNotIn(FieldStatus, vs...))
}

// TokenSizeEQ applies the EQ predicate on the "token_size" field.
func TokenSizeEQ(v int) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldEQ(FieldTokenSize, v))
}

// TokenSizeNEQ applies the NEQ predicate on the "token_size" field.
func TokenSizeNEQ(v int) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldNEQ(FieldTokenSize, v))
}

// TokenSizeIn applies the In predicate on the "token_size" field.
func TokenSizeIn(vs ...int) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldIn(FieldTokenSize, vs...))
}

// TokenSizeNotIn applies the NotIn predicate on the "token_size" field.
func TokenSizeNotIn(vs ...int) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldNotIn(FieldTokenSize, vs...))
}

// TokenSizeGT applies the GT predicate on the "token_size" field.
func TokenSizeGT(v int) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldGT(FieldTokenSize, v))
}

// TokenSizeGTE applies the GTE predicate on the "token_size" field.
func TokenSizeGTE(v int) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldGTE(FieldTokenSize, v))
}

// TokenSizeLT applies the LT predicate on the "token_size" field.
func TokenSizeLT(v int) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldLT(FieldTokenSize, v))
}

// TokenSizeLTE applies the LTE predicate on the "token_size" field.
func TokenSizeLTE(v int) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldLTE(FieldTokenSize, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BufferEntry {
	return predicate.BufferEntry(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BufferEntry) predicate.BufferEntry {
	return predicate.BufferEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BufferEntry) predicate.BufferEntry {
	return predicate.BufferEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BufferEntry) predicate.BufferEntry {
	return predicate.BufferEntry(sql.NotPredicates(p))
}
