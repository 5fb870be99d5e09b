package repository

import (
	"github.com/pedroramon/hotel-backend/internal/domain/room"
	"github.com/pedroramon/hotel-backend/internal/domain/roomstatus"
	"github.com/pedroramon/hotel-backend/internal/domain/roomtype"
	"github.com/pedroramon/hotel-backend/internal/logger"
	"github.com/pedroramon/hotel-backend/internal/postgres"
	postgresRepo "github.com/pedroramon/hotel-backend/internal/repository/postgres"
)

func NewRoomTypeRepository(db *postgres.DB, logger *logger.Logger) roomtype.Repository {
	return postgresRepo.NewRoomTypeRepository(db, logger)
}

func NewRoomStatusRepository(db *postgres.DB, logger *logger.Logger) roomstatus.Repository {
	return postgresRepo.NewRoomStatusRepository(db, logger)
}

func NewRoomRepository(db *postgres.DB, logger *logger.Logger) room.Repository {
	return postgresRepo.NewRoomRepository(db, logger)
}
