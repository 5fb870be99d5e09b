package testutil

import (
	"context"

	"github.com/pedroramon/hotel-backend/internal/domain/room"
	ierr "github.com/pedroramon/hotel-backend/internal/errors"
)

// InMemoryRoomStore behaves like the rooms table, including its unique
// index on room_number.
type InMemoryRoomStore struct {
	*InMemoryStore[*room.Room]
}

func NewInMemoryRoomStore() *InMemoryRoomStore {
	return &InMemoryRoomStore{
		InMemoryStore: NewInMemoryStore(
			func(r *room.Room) *room.Room {
				c := *r
				c.Type = nil
				c.Status = nil
				return &c
			},
			func(r *room.Room, id int64) { r.ID = id },
		),
	}
}

func (s *InMemoryRoomStore) ListOrderedByID(ctx context.Context) ([]*room.Room, error) {
	return s.List(ctx)
}

func (s *InMemoryRoomStore) GetByRoomNumber(ctx context.Context, roomNumber int) (*room.Room, error) {
	rooms, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range rooms {
		if r.RoomNumber == roomNumber {
			return r, nil
		}
	}
	return nil, ierr.NewError("room not found").
		WithHint("Room not found").
		WithReportableDetails(map[string]any{"room_number": roomNumber}).
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryRoomStore) Save(ctx context.Context, r *room.Room) (*room.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.items {
		if id != r.ID && existing.RoomNumber == r.RoomNumber {
			return nil, ierr.WithError(
				ierr.NewError("duplicate key value violates unique constraint \"idx_rooms_room_number\"").
					WithHint("Failed to save room").
					Mark(ierr.ErrAlreadyExists),
			).Mark(ierr.ErrDatabase)
		}
	}
	return s.saveLocked(r)
}
