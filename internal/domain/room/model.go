package room

import (
	"github.com/pedroramon/hotel-backend/internal/domain/roomstatus"
	"github.com/pedroramon/hotel-backend/internal/domain/roomtype"
	"github.com/pedroramon/hotel-backend/internal/types"
	"github.com/shopspring/decimal"
)

// Room is a rentable unit. Type and Status are resolved from TypeID and
// StatusID when a room is read or written; they are never persisted.
type Room struct {
	ID         int64           `db:"room_id" json:"id"`
	RoomNumber int             `db:"room_number" json:"roomNumber"`
	DailyRate  decimal.Decimal `db:"daily_rate" json:"dailyRate"`
	TypeID     int64           `db:"type_room_id" json:"typeId"`
	StatusID   int64           `db:"status_room_id" json:"statusId"`

	Type   *roomtype.RoomType     `db:"-" json:"type,omitempty"`
	Status *roomstatus.RoomStatus `db:"-" json:"status,omitempty"`

	types.BaseModel
}

// New builds an unresolved room from its persisted fields.
func New(id int64, roomNumber int, dailyRate decimal.Decimal, typeID, statusID int64) *Room {
	return &Room{
		ID:         id,
		RoomNumber: roomNumber,
		DailyRate:  dailyRate,
		TypeID:     typeID,
		StatusID:   statusID,
	}
}

func (r *Room) GetID() int64 {
	return r.ID
}

// Attach sets the resolved references of the room.
func (r *Room) Attach(t *roomtype.RoomType, s *roomstatus.RoomStatus) {
	r.Type = t
	r.Status = s
}

// IsComposed reports whether both references are attached.
func (r *Room) IsComposed() bool {
	return r.Type != nil && r.Status != nil
}
