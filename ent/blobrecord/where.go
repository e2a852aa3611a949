// Code generated by ent, DO NOT EDIT.

package blobrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/AlwaysBluer/lindorm-memobase/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldEQ(FieldUserID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldContainsFold(FieldUserID, v))
}

// BlobTypeEQ applies the EQ predicate on the "blob_type" field.
func BlobTypeEQ(v BlobType) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldEQ(FieldBlobType, v))
}

// BlobTypeNEQ applies the NEQ predicate on the "blob_type" field.
func BlobTypeNEQ(v BlobType) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldNEQ(FieldBlobType, v))
}

// BlobTypeIn applies the In predicate on the "blob_type" field.
func BlobTypeIn(vs ...BlobType) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldIn(FieldBlobType, vs...))
}

// BlobTypeNotIn applies the NotIn predicate on the "blob_type" field.
func BlobTypeNotIn(vs ...BlobType) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldNotIn(FieldBlobType, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BlobRecord {
	return predicate.BlobRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BlobRecord) predicate.BlobRecord {
	return predicate.BlobRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BlobRecord) predicate.BlobRecord {
	return predicate.BlobRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BlobRecord) predicate.BlobRecord {
	return predicate.BlobRecord(sql.NotPredicates(p))
}
