// Package domain holds the contracts shared by every entity package.
package domain

import (
	"context"
	"time"
)

// Entity is the capability set the generic CRUD layer needs: a store
// assigned id and a creation timestamp that survives updates.
type Entity interface {
	GetID() int64
	GetCreatedAt() time.Time
	SetCreatedAt(t time.Time)
}

// Repository is the storage contract of an entity. Get reports a missing
// row with an error marked ierr.ErrNotFound. Save inserts when the entity
// has no id and updates otherwise, returning the stored row.
type Repository[T Entity] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Save(ctx context.Context, entity T) (T, error)
	Delete(ctx context.Context, id int64) error
}
