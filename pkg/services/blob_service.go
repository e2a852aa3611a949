package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/AlwaysBluer/lindorm-memobase/ent"
	"github.com/AlwaysBluer/lindorm-memobase/ent/blobrecord"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/blob"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/memerr"
)

// BlobService manages the append-only blob bodies. Deliberately no join to
// the buffer table: buffer rows and blob bodies are fetched by two separate
// queries so the tables may live in different physical stores.
type BlobService struct {
	client *ent.Client
}

// NewBlobService creates a new BlobService
func NewBlobService(client *ent.Client) *BlobService {
	return &BlobService{client: client}
}

// InsertBlob persists the blob body and returns its id. An empty b.ID gets a
// fresh uuid; the blob struct is updated in place so callers see the id.
func (s *BlobService) InsertBlob(ctx context.Context, userID string, b *blob.Blob) (string, error) {
	if userID == "" {
		return "", NewValidationError("user_id", "required")
	}
	if err := b.Validate(); err != nil {
		return "", NewValidationError("blob", err.Error())
	}

	payload, err := b.PayloadJSON()
	if err != nil {
		return "", memerr.E(memerr.ErrInternal, "blob.insert", err)
	}

	if b.ID == "" {
		b.ID = uuid.New().String()
	}

	_, err = s.client.BlobRecord.Create().
		SetID(b.ID).
		SetUserID(userID).
		SetBlobType(blobrecord.BlobType(b.Type)).
		SetBlobData(payload).
		SetCreatedAt(b.CreatedAt).
		Save(ctx)
	if err != nil {
		return "", storageErr("blob.insert", err)
	}
	return b.ID, nil
}

// GetBlobs loads the bodies for the given ids, keyed by blob id. Missing ids
// are simply absent from the result, not an error.
func (s *BlobService) GetBlobs(ctx context.Context, userID string, blobIDs []string) (map[string]*blob.Blob, error) {
	if len(blobIDs) == 0 {
		return map[string]*blob.Blob{}, nil
	}

	rows, err := s.client.BlobRecord.Query().
		Where(
			blobrecord.UserIDEQ(userID),
			blobrecord.IDIn(blobIDs...),
		).
		All(ctx)
	if err != nil {
		return nil, storageErr("blob.get", err)
	}

	out := make(map[string]*blob.Blob, len(rows))
	for _, row := range rows {
		b, err := blob.FromPayloadJSON(row.ID, row.UserID, blob.BlobType(row.BlobType), row.CreatedAt, row.BlobData)
		if err != nil {
			return nil, memerr.E(memerr.ErrInternal, "blob.get", err)
		}
		out[row.ID] = b
	}
	return out, nil
}

// GetBlob loads a single blob body.
func (s *BlobService) GetBlob(ctx context.Context, userID, blobID string) (*blob.Blob, error) {
	row, err := s.client.BlobRecord.Query().
		Where(
			blobrecord.UserIDEQ(userID),
			blobrecord.IDEQ(blobID),
		).
		Only(ctx)
	if err != nil {
		return nil, storageErr("blob.get", err)
	}

	b, err := blob.FromPayloadJSON(row.ID, row.UserID, blob.BlobType(row.BlobType), row.CreatedAt, row.BlobData)
	if err != nil {
		return nil, memerr.E(memerr.ErrInternal, "blob.get", err)
	}
	return b, nil
}

// DeleteBlobs removes blob bodies by id. Only the retention daemon calls
// this; the core never deletes blobs in-band.
func (s *BlobService) DeleteBlobs(ctx context.Context, blobIDs []string) (int, error) {
	if len(blobIDs) == 0 {
		return 0, nil
	}
	count, err := s.client.BlobRecord.Delete().
		Where(blobrecord.IDIn(blobIDs...)).
		Exec(ctx)
	if err != nil {
		return 0, storageErr("blob.delete", err)
	}
	return count, nil
}
