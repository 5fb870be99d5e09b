package service

import (
	"github.com/pedroramon/hotel-backend/internal/config"
	"github.com/pedroramon/hotel-backend/internal/domain/room"
	"github.com/pedroramon/hotel-backend/internal/domain/roomstatus"
	"github.com/pedroramon/hotel-backend/internal/domain/roomtype"
	"github.com/pedroramon/hotel-backend/internal/logger"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	// Repositories
	RoomTypeRepo   roomtype.Repository
	RoomStatusRepo roomstatus.Repository
	RoomRepo       room.Repository
}

// Common service params
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	roomTypeRepo roomtype.Repository,
	roomStatusRepo roomstatus.Repository,
	roomRepo room.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:         logger,
		Config:         config,
		RoomTypeRepo:   roomTypeRepo,
		RoomStatusRepo: roomStatusRepo,
		RoomRepo:       roomRepo,
	}
}
