package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pedroramon/hotel-backend/internal/domain/room"
	ierr "github.com/pedroramon/hotel-backend/internal/errors"
	"github.com/pedroramon/hotel-backend/internal/logger"
	"github.com/pedroramon/hotel-backend/internal/postgres"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RoomRepositorySuite struct {
	suite.Suite
	ctx  context.Context
	mock sqlmock.Sqlmock
	repo room.Repository
	now  time.Time
}

func TestRoomRepository(t *testing.T) {
	suite.Run(t, new(RoomRepositorySuite))
}

func (s *RoomRepositorySuite) SetupTest() {
	mockDB, mock, err := sqlmock.New()
	s.Require().NoError(err)

	s.ctx = context.Background()
	s.mock = mock
	s.now = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	db := postgres.NewFromSqlx(sqlx.NewDb(mockDB, "postgres"), logger.NewNopLogger())
	s.repo = NewRoomRepository(db, logger.NewNopLogger())
}

func (s *RoomRepositorySuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *RoomRepositorySuite) roomRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"room_id", "room_number", "daily_rate", "type_room_id", "status_room_id", "created_at", "updated_at",
	})
}

func (s *RoomRepositorySuite) TestListOrderedByID() {
	s.mock.ExpectQuery(`SELECT (.+) FROM rooms ORDER BY room_id ASC`).
		WillReturnRows(s.roomRows().
			AddRow(1, 101, "60.00", 1, 1, s.now, s.now).
			AddRow(2, 102, "150.50", 2, 1, s.now, s.now))

	rooms, err := s.repo.ListOrderedByID(s.ctx)
	s.NoError(err)
	s.Len(rooms, 2)
	s.Equal(int64(1), rooms[0].ID)
	s.Equal(101, rooms[0].RoomNumber)
	s.True(decimal.RequireFromString("150.50").Equal(rooms[1].DailyRate))
	s.Equal(int64(2), rooms[1].TypeID)
	s.Nil(rooms[0].Type)
}

func (s *RoomRepositorySuite) TestListEmpty() {
	s.mock.ExpectQuery(`SELECT (.+) FROM rooms`).WillReturnRows(s.roomRows())

	rooms, err := s.repo.List(s.ctx)
	s.NoError(err)
	s.NotNil(rooms)
	s.Empty(rooms)
}

func (s *RoomRepositorySuite) TestGet() {
	s.mock.ExpectQuery(`SELECT (.+) FROM rooms WHERE room_id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(s.roomRows().AddRow(7, 200, "100.00", 1, 1, s.now, s.now))

	rm, err := s.repo.Get(s.ctx, 7)
	s.NoError(err)
	s.Equal(int64(7), rm.ID)
	s.Equal(200, rm.RoomNumber)
	s.True(s.now.Equal(rm.CreatedAt))
}

func (s *RoomRepositorySuite) TestGetNotFound() {
	s.mock.ExpectQuery(`SELECT (.+) FROM rooms WHERE room_id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(s.roomRows())

	rm, err := s.repo.Get(s.ctx, 99)
	s.Nil(rm)
	s.True(ierr.IsNotFound(err))
}

func (s *RoomRepositorySuite) TestGetDatabaseError() {
	s.mock.ExpectQuery(`SELECT (.+) FROM rooms WHERE room_id = \$1`).
		WithArgs(int64(1)).
		WillReturnError(errors.New("connection reset"))

	_, err := s.repo.Get(s.ctx, 1)
	s.True(ierr.IsDatabase(err))
	s.False(ierr.IsNotFound(err))
}

func (s *RoomRepositorySuite) TestGetByRoomNumber() {
	s.mock.ExpectQuery(`SELECT (.+) FROM rooms WHERE room_number = \$1`).
		WithArgs(101).
		WillReturnRows(s.roomRows().AddRow(3, 101, "80.00", 1, 2, s.now, s.now))

	rm, err := s.repo.GetByRoomNumber(s.ctx, 101)
	s.NoError(err)
	s.Equal(int64(3), rm.ID)
	s.Equal(int64(2), rm.StatusID)
}

func (s *RoomRepositorySuite) TestGetByRoomNumberNotFound() {
	s.mock.ExpectQuery(`SELECT (.+) FROM rooms WHERE room_number = \$1`).
		WithArgs(404).
		WillReturnRows(s.roomRows())

	_, err := s.repo.GetByRoomNumber(s.ctx, 404)
	s.True(ierr.IsNotFound(err))
}

func (s *RoomRepositorySuite) TestSaveInsert() {
	s.mock.ExpectQuery(`INSERT INTO rooms \(room_number, daily_rate, type_room_id, status_room_id, created_at, updated_at\)`).
		WithArgs(101, decimal.RequireFromString("60.00"), int64(1), int64(1), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(s.roomRows().AddRow(1, 101, "60.00", 1, 1, s.now, s.now))

	saved, err := s.repo.Save(s.ctx, room.New(0, 101, decimal.RequireFromString("60.00"), 1, 1))
	s.NoError(err)
	s.Equal(int64(1), saved.ID)
	s.True(decimal.RequireFromString("60").Equal(saved.DailyRate))
}

func (s *RoomRepositorySuite) TestSaveUpdateWritesCreatedAt() {
	createdAt := s.now.Add(-48 * time.Hour)
	rm := room.New(7, 200, decimal.RequireFromString("150.00"), 1, 1)
	rm.CreatedAt = createdAt

	s.mock.ExpectQuery(`UPDATE rooms SET (.+) WHERE room_id = \$7`).
		WithArgs(200, decimal.RequireFromString("150.00"), int64(1), int64(1), createdAt, sqlmock.AnyArg(), int64(7)).
		WillReturnRows(s.roomRows().AddRow(7, 200, "150.00", 1, 1, createdAt, s.now))

	saved, err := s.repo.Save(s.ctx, rm)
	s.NoError(err)
	s.True(createdAt.Equal(saved.CreatedAt))
	s.False(rm.UpdatedAt.IsZero())
}

func (s *RoomRepositorySuite) TestSaveUpdateMissingRow() {
	s.mock.ExpectQuery(`UPDATE rooms SET (.+) WHERE room_id = \$7`).
		WillReturnRows(s.roomRows())

	_, err := s.repo.Save(s.ctx, room.New(9, 200, decimal.RequireFromString("150.00"), 1, 1))
	s.True(ierr.IsNotFound(err))
}

func (s *RoomRepositorySuite) TestSaveUniqueViolation() {
	s.mock.ExpectQuery(`INSERT INTO rooms`).
		WillReturnError(&pq.Error{Code: pqUniqueViolation, Constraint: "idx_rooms_room_number"})

	_, err := s.repo.Save(s.ctx, room.New(0, 101, decimal.RequireFromString("60.00"), 1, 1))
	s.True(ierr.IsAlreadyExists(err))
	s.True(ierr.IsDatabase(err))
}

func (s *RoomRepositorySuite) TestDelete() {
	s.mock.ExpectExec(`DELETE FROM rooms WHERE room_id = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s.NoError(s.repo.Delete(s.ctx, 7))
}

func (s *RoomRepositorySuite) TestDeleteAbsentIsNoop() {
	s.mock.ExpectExec(`DELETE FROM rooms WHERE room_id = \$1`).
		WithArgs(int64(42)).
		WillReturnResult(driver.RowsAffected(0))

	s.NoError(s.repo.Delete(s.ctx, 42))
}
