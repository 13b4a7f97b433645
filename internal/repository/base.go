// Package repository provides the persistence layer. A generic insert-only
// base and a full CRUD base carry the entity-agnostic operations; per-entity
// repositories compose one of them behind an interface and add their own
// queries.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base holds the operations shared by every repository: lookups, counts,
// listing, and creation. "Not found" is returned as a nil record, never as an
// error, so callers can treat absence as a value.
//
// Create takes an optional transaction handle: with tx == nil the write goes
// through the repository's own DB and commits immediately; with a tx the row
// is only staged in that transaction and becomes durable when the top-level
// caller commits. This is how recipe creation batches its ingredient and food
// writes into a single all-or-nothing commit.
type Base[T any] struct {
	db *gorm.DB
}

func NewBase[T any](db *gorm.DB) Base[T] {
	return Base[T]{db: db}
}

// DB exposes the underlying handle so services can open transactions.
// Returns nil for in-memory test stubs.
func (b Base[T]) DB() *gorm.DB { return b.db }

// conn picks the caller's transaction when one is given.
func (b Base[T]) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return b.db
}

func (b Base[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	var rec T
	err := b.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// First returns the first row matching the condition, or nil when none does.
// It reads through the caller's transaction when one is given so that rows
// staged earlier in the same transaction are visible.
func (b Base[T]) First(ctx context.Context, tx *gorm.DB, query string, args ...interface{}) (*T, error) {
	var rec T
	err := b.conn(tx).WithContext(ctx).Where(query, args...).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Count returns the number of rows in the table; 0 for an empty table.
func (b Base[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	err := b.db.WithContext(ctx).Model(new(T)).Count(&n).Error
	return n, err
}

// List returns rows newest-first with id as a tiebreaker, so pages are stable
// across requests. limit <= 0 returns everything.
func (b Base[T]) List(ctx context.Context, offset, limit int) ([]T, error) {
	q := b.db.WithContext(ctx).Order("created_at desc, id")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	var list []T
	err := q.Find(&list).Error
	return list, err
}

func (b Base[T]) Create(ctx context.Context, tx *gorm.DB, rec *T) error {
	return b.conn(tx).WithContext(ctx).Create(rec).Error
}

// CRUD extends Base with partial update and idempotent delete.
type CRUD[T any] struct {
	Base[T]
}

func NewCRUD[T any](db *gorm.DB) CRUD[T] {
	return CRUD[T]{Base: NewBase[T](db)}
}

// Update applies only the given fields (PATCH semantics) and commits.
func (c CRUD[T]) Update(ctx context.Context, rec *T, fields map[string]interface{}) error {
	return c.db.WithContext(ctx).Model(rec).Updates(fields).Error
}

// Delete removes the row by id. A missing row is a silent no-op, so calling
// delete twice on the same id never errors.
func (c CRUD[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return c.db.WithContext(ctx).Delete(new(T), "id = ?", id).Error
}
