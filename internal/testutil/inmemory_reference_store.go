package testutil

import (
	"github.com/pedroramon/hotel-backend/internal/domain/roomstatus"
	"github.com/pedroramon/hotel-backend/internal/domain/roomtype"
)

type InMemoryRoomTypeStore struct {
	*InMemoryStore[*roomtype.RoomType]
}

func NewInMemoryRoomTypeStore() *InMemoryRoomTypeStore {
	return &InMemoryRoomTypeStore{
		InMemoryStore: NewInMemoryStore(
			func(t *roomtype.RoomType) *roomtype.RoomType {
				c := *t
				return &c
			},
			func(t *roomtype.RoomType, id int64) { t.ID = id },
		),
	}
}

type InMemoryRoomStatusStore struct {
	*InMemoryStore[*roomstatus.RoomStatus]
}

func NewInMemoryRoomStatusStore() *InMemoryRoomStatusStore {
	return &InMemoryRoomStatusStore{
		InMemoryStore: NewInMemoryStore(
			func(s *roomstatus.RoomStatus) *roomstatus.RoomStatus {
				c := *s
				return &c
			},
			func(s *roomstatus.RoomStatus, id int64) { s.ID = id },
		),
	}
}
