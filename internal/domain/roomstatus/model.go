package roomstatus

import (
	"github.com/pedroramon/hotel-backend/internal/types"
)

// RoomStatus is reference data describing the state of a room, e.g. "Available".
type RoomStatus struct {
	ID          int64  `db:"status_rom_id" json:"id"`
	Description string `db:"description" json:"description"`

	types.BaseModel
}

func New(id int64, description string) *RoomStatus {
	return &RoomStatus{ID: id, Description: description}
}

func (s *RoomStatus) GetID() int64 {
	return s.ID
}
