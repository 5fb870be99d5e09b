package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/pedroramon/hotel-backend/internal/domain/roomstatus"
	"github.com/pedroramon/hotel-backend/internal/domain/roomtype"
	ierr "github.com/pedroramon/hotel-backend/internal/errors"
	"github.com/pedroramon/hotel-backend/internal/logger"
	"github.com/pedroramon/hotel-backend/internal/postgres"
	"github.com/stretchr/testify/suite"
)

type ReferenceRepositorySuite struct {
	suite.Suite
	ctx        context.Context
	mock       sqlmock.Sqlmock
	typeRepo   roomtype.Repository
	statusRepo roomstatus.Repository
	now        time.Time
}

func TestReferenceRepositories(t *testing.T) {
	suite.Run(t, new(ReferenceRepositorySuite))
}

func (s *ReferenceRepositorySuite) SetupTest() {
	mockDB, mock, err := sqlmock.New()
	s.Require().NoError(err)

	s.ctx = context.Background()
	s.mock = mock
	s.now = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	db := postgres.NewFromSqlx(sqlx.NewDb(mockDB, "postgres"), logger.NewNopLogger())
	s.typeRepo = NewRoomTypeRepository(db, logger.NewNopLogger())
	s.statusRepo = NewRoomStatusRepository(db, logger.NewNopLogger())
}

func (s *ReferenceRepositorySuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *ReferenceRepositorySuite) TestRoomTypeList() {
	s.mock.ExpectQuery(`SELECT type_rom_id, name, created_at, updated_at FROM type_room ORDER BY type_rom_id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"type_rom_id", "name", "created_at", "updated_at"}).
			AddRow(1, "Single", s.now, s.now).
			AddRow(2, "Double", s.now, s.now))

	types, err := s.typeRepo.List(s.ctx)
	s.NoError(err)
	s.Len(types, 2)
	s.Equal("Double", types[1].Name)
}

func (s *ReferenceRepositorySuite) TestRoomTypeGetNotFound() {
	s.mock.ExpectQuery(`SELECT (.+) FROM type_room WHERE type_rom_id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"type_rom_id", "name", "created_at", "updated_at"}))

	_, err := s.typeRepo.Get(s.ctx, 99)
	s.True(ierr.IsNotFound(err))
}

func (s *ReferenceRepositorySuite) TestRoomTypeInsert() {
	s.mock.ExpectQuery(`INSERT INTO type_room \(name, created_at, updated_at\)`).
		WithArgs("Single", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"type_rom_id", "name", "created_at", "updated_at"}).
			AddRow(1, "Single", s.now, s.now))

	saved, err := s.typeRepo.Save(s.ctx, roomtype.New(0, "Single"))
	s.NoError(err)
	s.Equal(int64(1), saved.ID)
}

func (s *ReferenceRepositorySuite) TestRoomStatusGet() {
	s.mock.ExpectQuery(`SELECT (.+) FROM status_room WHERE status_rom_id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"status_rom_id", "description", "created_at", "updated_at"}).
			AddRow(1, "Available", s.now, s.now))

	st, err := s.statusRepo.Get(s.ctx, 1)
	s.NoError(err)
	s.Equal("Available", st.Description)
}

func (s *ReferenceRepositorySuite) TestRoomStatusUpdate() {
	createdAt := s.now.Add(-time.Hour)
	st := roomstatus.New(1, "Occupied")
	st.CreatedAt = createdAt

	s.mock.ExpectQuery(`UPDATE status_room SET description = \$1, created_at = \$2, updated_at = \$3`).
		WithArgs("Occupied", createdAt, sqlmock.AnyArg(), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"status_rom_id", "description", "created_at", "updated_at"}).
			AddRow(1, "Occupied", createdAt, s.now))

	saved, err := s.statusRepo.Save(s.ctx, st)
	s.NoError(err)
	s.Equal("Occupied", saved.Description)
	s.True(createdAt.Equal(saved.CreatedAt))
}

func (s *ReferenceRepositorySuite) TestRoomStatusDelete() {
	s.mock.ExpectExec(`DELETE FROM status_room WHERE status_rom_id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s.NoError(s.statusRepo.Delete(s.ctx, 3))
}
