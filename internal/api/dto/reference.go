package dto

import (
	"time"

	"github.com/pedroramon/hotel-backend/internal/domain/roomstatus"
	"github.com/pedroramon/hotel-backend/internal/domain/roomtype"
	"github.com/pedroramon/hotel-backend/internal/validator"
	"github.com/samber/lo"
)

// CreateRoomTypeRequest carries a new room type; the id is assigned by the store.
type CreateRoomTypeRequest struct {
	ID   *int64 `json:"id" validate:"isdefault" swaggerignore:"true"`
	Name string `json:"name" validate:"notblank,max=100"`
}

type UpdateRoomTypeRequest struct {
	ID   *int64 `json:"id" validate:"required,gte=0"`
	Name string `json:"name" validate:"notblank,max=100"`
}

type RoomTypeResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *CreateRoomTypeRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateRoomTypeRequest) ToRoomType() *roomtype.RoomType {
	return roomtype.New(0, r.Name)
}

func (r *UpdateRoomTypeRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *UpdateRoomTypeRequest) ToRoomType() *roomtype.RoomType {
	return roomtype.New(*r.ID, r.Name)
}

func NewRoomTypeResponse(t *roomtype.RoomType) *RoomTypeResponse {
	if t == nil {
		return nil
	}
	return &RoomTypeResponse{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func NewRoomTypeListResponse(items []*roomtype.RoomType) []*RoomTypeResponse {
	return lo.Map(items, func(t *roomtype.RoomType, _ int) *RoomTypeResponse {
		return NewRoomTypeResponse(t)
	})
}

// CreateRoomStatusRequest carries a new room status; the id is assigned by the store.
type CreateRoomStatusRequest struct {
	ID          *int64 `json:"id" validate:"isdefault" swaggerignore:"true"`
	Description string `json:"description" validate:"notblank,max=100"`
}

type UpdateRoomStatusRequest struct {
	ID          *int64 `json:"id" validate:"required,gte=0"`
	Description string `json:"description" validate:"notblank,max=100"`
}

type RoomStatusResponse struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (r *CreateRoomStatusRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateRoomStatusRequest) ToRoomStatus() *roomstatus.RoomStatus {
	return roomstatus.New(0, r.Description)
}

func (r *UpdateRoomStatusRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *UpdateRoomStatusRequest) ToRoomStatus() *roomstatus.RoomStatus {
	return roomstatus.New(*r.ID, r.Description)
}

func NewRoomStatusResponse(s *roomstatus.RoomStatus) *RoomStatusResponse {
	if s == nil {
		return nil
	}
	return &RoomStatusResponse{
		ID:          s.ID,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func NewRoomStatusListResponse(items []*roomstatus.RoomStatus) []*RoomStatusResponse {
	return lo.Map(items, func(s *roomstatus.RoomStatus, _ int) *RoomStatusResponse {
		return NewRoomStatusResponse(s)
	})
}
