package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fluentpath/fluentpath/ent"
	"github.com/fluentpath/fluentpath/ent/progressdoc"
	"github.com/fluentpath/fluentpath/internal/progress"
)

// RecordRepo is the remote document store contract the sync engine
// writes through: one JSON progress document per user. Get returns
// (nil, nil) when the user has no document yet.
type RecordRepo interface {
	Get(ctx context.Context, userID string) (*progress.Record, error)
	Put(ctx context.Context, userID string, rec *progress.Record) error
}

// recordRepo implements RecordRepo using the ent client.
type recordRepo struct {
	client *ent.Client
}

func (r *recordRepo) Get(ctx context.Context, userID string) (*progress.Record, error) {
	doc, err := r.client.ProgressDoc.Query().
		Where(progressdoc.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress doc: %w", err)
	}
	return docDataToRecord(doc.Data)
}

func (r *recordRepo) Put(ctx context.Context, userID string, rec *progress.Record) error {
	dataMap, err := recordToDocData(rec)
	if err != nil {
		return fmt.Errorf("marshal progress record: %w", err)
	}

	existing, err := r.client.ProgressDoc.Query().
		Where(progressdoc.UserID(userID)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().SetData(dataMap).Save(ctx)
	case ent.IsNotFound(err):
		_, err = r.client.ProgressDoc.Create().
			SetUserID(userID).
			SetData(dataMap).
			Save(ctx)
	default:
		return fmt.Errorf("query progress doc: %w", err)
	}
	if err != nil {
		return fmt.Errorf("save progress doc: %w", err)
	}
	return nil
}

// recordToDocData converts a record to map[string]any for ent JSON storage.
func recordToDocData(rec *progress.Record) (map[string]any, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// docDataToRecord converts stored JSON back to a progress record.
func docDataToRecord(data map[string]any) (*progress.Record, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal doc data: %w", err)
	}
	var rec progress.Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal progress record: %w", err)
	}
	rec.Normalize()
	return &rec, nil
}
