package testutil

import (
	"context"
	"time"

	"github.com/pedroramon/hotel-backend/internal/config"
	"github.com/pedroramon/hotel-backend/internal/domain/roomstatus"
	"github.com/pedroramon/hotel-backend/internal/domain/roomtype"
	"github.com/pedroramon/hotel-backend/internal/logger"
	"github.com/pedroramon/hotel-backend/internal/types"
	"github.com/pedroramon/hotel-backend/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds the in-memory repositories used by service tests
type Stores struct {
	RoomTypeRepo   *InMemoryRoomTypeStore
	RoomStatusRepo *InMemoryRoomStatusStore
	RoomRepo       *InMemoryRoomStore
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	logger *logger.Logger
	config *config.Configuration
	now    time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	s.config = config.GetDefaultConfig()
	s.config.Logging.Level = types.LogLevelInfo
	s.logger = logger.NewNopLogger()
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.stores = Stores{
		RoomTypeRepo:   NewInMemoryRoomTypeStore(),
		RoomStatusRepo: NewInMemoryRoomStatusStore(),
		RoomRepo:       NewInMemoryRoomStore(),
	}
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.ClearStores()
}

func (s *BaseServiceTestSuite) ClearStores() {
	s.stores.RoomTypeRepo.Clear()
	s.stores.RoomStatusRepo.Clear()
	s.stores.RoomRepo.Clear()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the current test time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now.UTC()
}

// SeedReferenceData stores a type and a status with the given ids
func (s *BaseServiceTestSuite) SeedReferenceData(typeID int64, name string, statusID int64, description string) {
	t := roomtype.New(typeID, name)
	t.Touch(s.now)
	s.stores.RoomTypeRepo.Put(t)

	st := roomstatus.New(statusID, description)
	st.Touch(s.now)
	s.stores.RoomStatusRepo.Put(st)
}
