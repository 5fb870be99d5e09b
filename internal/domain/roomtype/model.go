package roomtype

import (
	"github.com/pedroramon/hotel-backend/internal/types"
)

// RoomType is reference data describing a kind of room, e.g. "Single".
type RoomType struct {
	ID   int64  `db:"type_rom_id" json:"id"`
	Name string `db:"name" json:"name"`

	types.BaseModel
}

func New(id int64, name string) *RoomType {
	return &RoomType{ID: id, Name: name}
}

func (t *RoomType) GetID() int64 {
	return t.ID
}
