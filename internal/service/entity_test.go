package service

import (
	"errors"
	"testing"
	"time"

	"github.com/pedroramon/hotel-backend/internal/domain/roomtype"
	ierr "github.com/pedroramon/hotel-backend/internal/errors"
	"github.com/pedroramon/hotel-backend/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type EntityServiceSuite struct {
	testutil.BaseServiceTestSuite
	service EntityService[*roomtype.RoomType]
}

func TestEntityService(t *testing.T) {
	suite.Run(t, new(EntityServiceSuite))
}

func (s *EntityServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewEntityService[*roomtype.RoomType](s.GetStores().RoomTypeRepo, s.GetLogger())
}

func (s *EntityServiceSuite) TestSaveAssignsIDAndTimestamps() {
	saved, err := s.service.Save(s.GetContext(), roomtype.New(0, "Single"))
	s.NoError(err)
	s.Equal(int64(1), saved.ID)
	s.Equal("Single", saved.Name)
	s.False(saved.CreatedAt.IsZero())
	s.False(saved.UpdatedAt.IsZero())
}

func (s *EntityServiceSuite) TestSaveStorageFailure() {
	s.GetStores().RoomTypeRepo.FailNextSave(errors.New("disk full"))

	_, err := s.service.Save(s.GetContext(), roomtype.New(0, "Single"))
	s.True(ierr.IsInvalidData(err))
	s.Equal("Error saving object: disk full", ierr.DisplayMessage(err))
}

func (s *EntityServiceSuite) TestGetNotFound() {
	_, err := s.service.Get(s.GetContext(), 42)
	s.True(ierr.IsNotFound(err))
	s.Equal("Object not found with id: 42", ierr.DisplayMessage(err))
}

func (s *EntityServiceSuite) TestList() {
	_, err := s.service.Save(s.GetContext(), roomtype.New(0, "Single"))
	s.Require().NoError(err)
	_, err = s.service.Save(s.GetContext(), roomtype.New(0, "Double"))
	s.Require().NoError(err)

	types, err := s.service.List(s.GetContext())
	s.NoError(err)
	s.Len(types, 2)
	s.Equal("Single", types[0].Name)
	s.Equal("Double", types[1].Name)
}

func (s *EntityServiceSuite) TestUpdatePreservesCreatedAt() {
	original := roomtype.New(3, "Single")
	original.CreatedAt = time.Date(2020, 5, 1, 12, 0, 0, 0, time.UTC)
	original.UpdatedAt = original.CreatedAt
	s.GetStores().RoomTypeRepo.Put(original)

	input := roomtype.New(3, "Suite")
	input.CreatedAt = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	updated, err := s.service.Update(s.GetContext(), input)
	s.NoError(err)
	s.Equal("Suite", updated.Name)
	s.True(original.CreatedAt.Equal(updated.CreatedAt))
	s.True(updated.UpdatedAt.After(original.UpdatedAt))

	stored, err := s.service.Get(s.GetContext(), 3)
	s.NoError(err)
	s.True(original.CreatedAt.Equal(stored.CreatedAt))
}

func (s *EntityServiceSuite) TestUpdateNeverCreates() {
	_, err := s.service.Update(s.GetContext(), roomtype.New(8, "Ghost"))
	s.True(ierr.IsNotFound(err))
	s.Equal("Object not found with id: 8", ierr.DisplayMessage(err))
	s.Equal(0, s.GetStores().RoomTypeRepo.Len())
}

func (s *EntityServiceSuite) TestUpdateStorageFailure() {
	s.GetStores().RoomTypeRepo.Put(roomtype.New(1, "Single"))
	s.GetStores().RoomTypeRepo.FailNextSave(errors.New("connection reset"))

	_, err := s.service.Update(s.GetContext(), roomtype.New(1, "Double"))
	s.True(ierr.IsInvalidData(err))
	s.Equal("Error saving object: connection reset", ierr.DisplayMessage(err))
}

func (s *EntityServiceSuite) TestDeleteAbsentIsNoop() {
	s.NoError(s.service.Delete(s.GetContext(), 99))
}

func (s *EntityServiceSuite) TestDelete() {
	saved, err := s.service.Save(s.GetContext(), roomtype.New(0, "Single"))
	s.Require().NoError(err)

	s.NoError(s.service.Delete(s.GetContext(), saved.ID))

	_, err = s.service.Get(s.GetContext(), saved.ID)
	s.True(ierr.IsNotFound(err))
}
