package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Record is implemented by every document kept in a collection.
type Record interface {
	RecordID() string
	RecordArchived() bool
}

// Collection is a typed view over one KV collection. Every operation decodes
// the full snapshot, applies the change and writes the snapshot back.
type Collection[T Record] struct {
	kv   KV
	name string
}

// NewCollection binds a typed collection to its KV namespace.
func NewCollection[T Record](kv KV, name string) Collection[T] {
	return Collection[T]{kv: kv, name: name}
}

// All returns every record including archived ones.
func (c Collection[T]) All(ctx context.Context) ([]T, error) {
	payload, err := c.kv.Read(ctx, c.name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.name, err)
	}
	if len(payload) == 0 {
		return nil, nil
	}
	var records []T
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.name, err)
	}
	return records, nil
}

// List returns active records, or the full snapshot when includeArchived is set.
func (c Collection[T]) List(ctx context.Context, includeArchived bool) ([]T, error) {
	records, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	if includeArchived {
		return records, nil
	}
	active := make([]T, 0, len(records))
	for _, rec := range records {
		if !rec.RecordArchived() {
			active = append(active, rec)
		}
	}
	return active, nil
}

// Archived returns only archived records.
func (c Collection[T]) Archived(ctx context.Context) ([]T, error) {
	records, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	archived := make([]T, 0)
	for _, rec := range records {
		if rec.RecordArchived() {
			archived = append(archived, rec)
		}
	}
	return archived, nil
}

// Get looks a record up by id. The miss is explicit so callers can tell
// "not found" from "found" instead of silently falling back.
func (c Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	records, err := c.All(ctx)
	if err != nil {
		return zero, err
	}
	for _, rec := range records {
		if rec.RecordID() == id {
			return rec, nil
		}
	}
	return zero, ErrNotFound
}

// Save upserts a record by id.
func (c Collection[T]) Save(ctx context.Context, record T) error {
	records, err := c.All(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i, rec := range records {
		if rec.RecordID() == record.RecordID() {
			records[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, record)
	}
	return c.Replace(ctx, records)
}

// Delete removes a record permanently from both active and archived queries.
func (c Collection[T]) Delete(ctx context.Context, id string) error {
	records, err := c.All(ctx)
	if err != nil {
		return err
	}
	kept := records[:0]
	found := false
	for _, rec := range records {
		if rec.RecordID() == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return ErrNotFound
	}
	return c.Replace(ctx, kept)
}

// Replace writes a full snapshot of the collection.
func (c Collection[T]) Replace(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	if err := c.kv.Write(ctx, c.name, payload); err != nil {
		return fmt.Errorf("write %s: %w", c.name, err)
	}
	return nil
}
