package service

import (
	"context"

	"github.com/pedroramon/hotel-backend/internal/domain"
	ierr "github.com/pedroramon/hotel-backend/internal/errors"
	"github.com/pedroramon/hotel-backend/internal/logger"
)

// EntityService is the CRUD surface shared by every entity. Update is a
// read-then-write that never creates and keeps the stored creation time.
// Replace is the write half, for callers that already hold the stored row.
type EntityService[T domain.Entity] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Save(ctx context.Context, entity T) (T, error)
	Update(ctx context.Context, entity T) (T, error)
	Replace(ctx context.Context, existing, entity T) (T, error)
	Delete(ctx context.Context, id int64) error
}

type entityService[T domain.Entity] struct {
	repo   domain.Repository[T]
	logger *logger.Logger
}

func NewEntityService[T domain.Entity](repo domain.Repository[T], logger *logger.Logger) EntityService[T] {
	return &entityService[T]{
		repo:   repo,
		logger: logger,
	}
}

func (s *entityService[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

func (s *entityService[T]) Get(ctx context.Context, id int64) (T, error) {
	entity, err := s.repo.Get(ctx, id)
	if err != nil {
		if ierr.IsNotFound(err) {
			var zero T
			return zero, ierr.NewError("object not found").
				WithHintf("Object not found with id: %d", id).
				WithReportableDetails(map[string]any{"id": id}).
				WithCause(err).
				Mark(ierr.ErrNotFound)
		}
		return entity, err
	}
	return entity, nil
}

func (s *entityService[T]) Save(ctx context.Context, entity T) (T, error) {
	saved, err := s.repo.Save(ctx, entity)
	if err != nil {
		s.logger.Errorw("failed to save entity", "id", entity.GetID(), "error", err)
		var zero T
		return zero, saveError(err)
	}
	return saved, nil
}

func (s *entityService[T]) Update(ctx context.Context, entity T) (T, error) {
	var zero T

	existing, err := s.Get(ctx, entity.GetID())
	if err != nil {
		return zero, err
	}
	return s.Replace(ctx, existing, entity)
}

func (s *entityService[T]) Replace(ctx context.Context, existing, entity T) (T, error) {
	var zero T

	entity.SetCreatedAt(existing.GetCreatedAt())

	updated, err := s.repo.Save(ctx, entity)
	if err != nil {
		// the row went away after the lookup above
		if ierr.IsNotFound(err) {
			return zero, ierr.NewError("object not found").
				WithHintf("Object not found with id: %d", entity.GetID()).
				WithReportableDetails(map[string]any{"id": entity.GetID()}).
				WithCause(err).
				Mark(ierr.ErrNotFound)
		}
		s.logger.Errorw("failed to update entity", "id", entity.GetID(), "error", err)
		return zero, saveError(err)
	}
	return updated, nil
}

func (s *entityService[T]) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// saveError reports a storage failure as invalid data, quoting the cause.
func saveError(cause error) error {
	return ierr.NewError("failed to save object").
		WithHintf("Error saving object: %s", cause.Error()).
		WithCause(cause).
		Mark(ierr.ErrInvalidData)
}
