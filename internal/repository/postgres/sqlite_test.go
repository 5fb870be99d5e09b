package postgres

import (
	"bytes"
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/pedroramon/hotel-backend/internal/domain/room"
	"github.com/pedroramon/hotel-backend/internal/domain/roomstatus"
	"github.com/pedroramon/hotel-backend/internal/domain/roomtype"
	ierr "github.com/pedroramon/hotel-backend/internal/errors"
	"github.com/pedroramon/hotel-backend/internal/logger"
	"github.com/pedroramon/hotel-backend/internal/postgres"
	"github.com/pedroramon/hotel-backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// SQLiteSuite runs the repositories against a migrated in-memory sqlite database.
type SQLiteSuite struct {
	suite.Suite
	ctx        context.Context
	db         *postgres.DB
	typeRepo   roomtype.Repository
	statusRepo roomstatus.Repository
	roomRepo   room.Repository
}

func TestSQLiteRepositories(t *testing.T) {
	suite.Run(t, new(SQLiteSuite))
}

func (s *SQLiteSuite) SetupTest() {
	s.ctx = context.Background()

	conn, err := sqlx.Open(string(types.DriverSQLite), "file:"+types.GenerateUUID()+"?mode=memory&cache=shared&_fk=1")
	s.Require().NoError(err)
	conn.SetMaxOpenConns(1)

	log := logger.NewNopLogger()
	s.db = postgres.NewFromSqlx(conn, log)
	s.Require().NoError(postgres.Migrate(s.ctx, s.db, log))

	s.typeRepo = NewRoomTypeRepository(s.db, log)
	s.statusRepo = NewRoomStatusRepository(s.db, log)
	s.roomRepo = NewRoomRepository(s.db, log)
}

func (s *SQLiteSuite) TearDownTest() {
	s.db.Close()
}

func (s *SQLiteSuite) seedReferences() (*roomtype.RoomType, *roomstatus.RoomStatus) {
	t, err := s.typeRepo.Save(s.ctx, roomtype.New(0, "Single"))
	s.Require().NoError(err)
	st, err := s.statusRepo.Save(s.ctx, roomstatus.New(0, "Available"))
	s.Require().NoError(err)
	return t, st
}

func (s *SQLiteSuite) TestRoomRoundTrip() {
	t, st := s.seedReferences()

	saved, err := s.roomRepo.Save(s.ctx, room.New(0, 101, decimal.RequireFromString("60.00"), t.ID, st.ID))
	s.Require().NoError(err)
	s.NotZero(saved.ID)
	s.False(saved.CreatedAt.IsZero())

	got, err := s.roomRepo.Get(s.ctx, saved.ID)
	s.NoError(err)
	s.Equal(101, got.RoomNumber)
	s.True(decimal.RequireFromString("60").Equal(got.DailyRate))
	s.Equal(t.ID, got.TypeID)
	s.Equal(st.ID, got.StatusID)

	byNumber, err := s.roomRepo.GetByRoomNumber(s.ctx, 101)
	s.NoError(err)
	s.Equal(saved.ID, byNumber.ID)
}

func (s *SQLiteSuite) TestUpdateKeepsCreatedAt() {
	t, st := s.seedReferences()

	saved, err := s.roomRepo.Save(s.ctx, room.New(0, 200, decimal.RequireFromString("100.00"), t.ID, st.ID))
	s.Require().NoError(err)

	update := room.New(saved.ID, 200, decimal.RequireFromString("150.25"), t.ID, st.ID)
	update.CreatedAt = saved.CreatedAt
	updated, err := s.roomRepo.Save(s.ctx, update)
	s.Require().NoError(err)
	s.True(saved.CreatedAt.Equal(updated.CreatedAt))
	s.True(decimal.RequireFromString("150.25").Equal(updated.DailyRate))
}

func (s *SQLiteSuite) TestUniqueRoomNumber() {
	t, st := s.seedReferences()

	_, err := s.roomRepo.Save(s.ctx, room.New(0, 300, decimal.RequireFromString("90.00"), t.ID, st.ID))
	s.Require().NoError(err)

	_, err = s.roomRepo.Save(s.ctx, room.New(0, 300, decimal.RequireFromString("95.00"), t.ID, st.ID))
	s.True(ierr.IsAlreadyExists(err))
}

func (s *SQLiteSuite) TestListOrderedByID() {
	t, st := s.seedReferences()
	for _, number := range []int{3, 1, 2} {
		_, err := s.roomRepo.Save(s.ctx, room.New(0, number, decimal.RequireFromString("70.00"), t.ID, st.ID))
		s.Require().NoError(err)
	}

	rooms, err := s.roomRepo.ListOrderedByID(s.ctx)
	s.NoError(err)
	s.Require().Len(rooms, 3)
	s.Equal([]int{3, 1, 2}, []int{rooms[0].RoomNumber, rooms[1].RoomNumber, rooms[2].RoomNumber})
}

func (s *SQLiteSuite) TestUpdateMissingRow() {
	_, err := s.typeRepo.Save(s.ctx, roomtype.New(55, "Ghost"))
	s.True(ierr.IsNotFound(err))
}

func (s *SQLiteSuite) TestRoomTypeRenameAndDelete() {
	t, _ := s.seedReferences()

	renamed := roomtype.New(t.ID, "Double")
	renamed.CreatedAt = t.CreatedAt
	_, err := s.typeRepo.Save(s.ctx, renamed)
	s.Require().NoError(err)

	got, err := s.typeRepo.Get(s.ctx, t.ID)
	s.NoError(err)
	s.Equal("Double", got.Name)

	s.Require().NoError(s.typeRepo.Delete(s.ctx, t.ID))
	_, err = s.typeRepo.Get(s.ctx, t.ID)
	s.True(ierr.IsNotFound(err))
}

func (s *SQLiteSuite) TestMigrationIsIdempotent() {
	s.NoError(postgres.Migrate(s.ctx, s.db, logger.NewNopLogger()))

	var out bytes.Buffer
	s.NoError(postgres.WriteTo(s.ctx, s.db, &out))
}

func (s *SQLiteSuite) TestDryRunOnEmptyDatabase() {
	conn, err := sqlx.Open(string(types.DriverSQLite), "file:"+types.GenerateUUID()+"?mode=memory&cache=shared&_fk=1")
	s.Require().NoError(err)
	empty := postgres.NewFromSqlx(conn, logger.NewNopLogger())
	defer empty.Close()

	var out bytes.Buffer
	s.Require().NoError(postgres.WriteTo(s.ctx, empty, &out))
	s.Contains(out.String(), "rooms")
	s.Contains(out.String(), "idx_rooms_room_number")

	// nothing was executed
	var count int
	s.NoError(conn.Get(&count, `SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'rooms'`))
	s.Zero(count)
}
