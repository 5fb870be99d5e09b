package dto

import (
	"encoding/json"
	"time"

	"github.com/pedroramon/hotel-backend/internal/domain/room"
	"github.com/pedroramon/hotel-backend/internal/validator"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// CreateRoomRequest is the room accepted on create. Pointers tell a missing
// field apart from a zero value.
type CreateRoomRequest struct {
	ID         *int64           `json:"id" validate:"isdefault" swaggerignore:"true"`
	RoomNumber *int             `json:"roomNumber" validate:"required,gte=0"`
	DailyRate  *decimal.Decimal `json:"dailyRate" validate:"required,gte=0,money" swaggertype:"number"`
	TypeID     *int64           `json:"typeId" validate:"required,gte=0"`
	StatusID   *int64           `json:"statusId" validate:"required,gte=0"`
}

type UpdateRoomRequest struct {
	ID         *int64           `json:"id" validate:"required,gte=0"`
	RoomNumber *int             `json:"roomNumber" validate:"required,gte=0"`
	DailyRate  *decimal.Decimal `json:"dailyRate" validate:"required,gte=0,money" swaggertype:"number"`
	TypeID     *int64           `json:"typeId" validate:"required,gte=0"`
	StatusID   *int64           `json:"statusId" validate:"required,gte=0"`
}

type RoomResponse struct {
	ID         int64               `json:"id"`
	RoomNumber int                 `json:"roomNumber"`
	DailyRate  json.Number         `json:"dailyRate" swaggertype:"number" example:"60.00"`
	TypeID     int64               `json:"typeId"`
	StatusID   int64               `json:"statusId"`
	Type       *RoomTypeResponse   `json:"type,omitempty"`
	Status     *RoomStatusResponse `json:"status,omitempty"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

func (r *CreateRoomRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateRoomRequest) ToRoom() *room.Room {
	return room.New(0, *r.RoomNumber, *r.DailyRate, *r.TypeID, *r.StatusID)
}

func (r *UpdateRoomRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *UpdateRoomRequest) ToRoom() *room.Room {
	return room.New(*r.ID, *r.RoomNumber, *r.DailyRate, *r.TypeID, *r.StatusID)
}

// NewRoomResponse renders the daily rate as a number with two decimals.
func NewRoomResponse(r *room.Room) *RoomResponse {
	return &RoomResponse{
		ID:         r.ID,
		RoomNumber: r.RoomNumber,
		DailyRate:  json.Number(r.DailyRate.StringFixed(2)),
		TypeID:     r.TypeID,
		StatusID:   r.StatusID,
		Type:       NewRoomTypeResponse(r.Type),
		Status:     NewRoomStatusResponse(r.Status),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func NewRoomListResponse(rooms []*room.Room) []*RoomResponse {
	return lo.Map(rooms, func(r *room.Room, _ int) *RoomResponse {
		return NewRoomResponse(r)
	})
}
