package room

import (
	"context"

	"github.com/pedroramon/hotel-backend/internal/domain"
)

type Repository interface {
	domain.Repository[*Room]

	// ListOrderedByID returns every room in ascending id order.
	ListOrderedByID(ctx context.Context) ([]*Room, error)
	// GetByRoomNumber reports a missing room with an ierr.ErrNotFound error.
	GetByRoomNumber(ctx context.Context, roomNumber int) (*Room, error)
}
