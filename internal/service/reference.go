package service

import (
	"github.com/pedroramon/hotel-backend/internal/domain/roomstatus"
	"github.com/pedroramon/hotel-backend/internal/domain/roomtype"
)

// RoomTypeService and RoomStatusService are plain CRUD over reference data.
type (
	RoomTypeService   = EntityService[*roomtype.RoomType]
	RoomStatusService = EntityService[*roomstatus.RoomStatus]
)

func NewRoomTypeService(params ServiceParams) RoomTypeService {
	return NewEntityService(params.RoomTypeRepo, params.Logger)
}

func NewRoomStatusService(params ServiceParams) RoomStatusService {
	return NewEntityService(params.RoomStatusRepo, params.Logger)
}
