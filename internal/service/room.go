package service

import (
	"context"
	"runtime"

	"github.com/pedroramon/hotel-backend/internal/domain/room"
	"github.com/pedroramon/hotel-backend/internal/domain/roomstatus"
	"github.com/pedroramon/hotel-backend/internal/domain/roomtype"
	ierr "github.com/pedroramon/hotel-backend/internal/errors"
	"github.com/sourcegraph/conc/pool"
)

// RoomService enforces the room business rules on writes and returns rooms
// with their type and status resolved.
type RoomService interface {
	List(ctx context.Context) ([]*room.Room, error)
	Get(ctx context.Context, id int64) (*room.Room, error)
	GetByRoomNumber(ctx context.Context, roomNumber int) (*room.Room, error)
	Save(ctx context.Context, r *room.Room) (*room.Room, error)
	Update(ctx context.Context, r *room.Room) (*room.Room, error)
	Delete(ctx context.Context, id int64) error
}

type roomService struct {
	ServiceParams
	entities EntityService[*room.Room]
	types    RoomTypeService
	statuses RoomStatusService
}

func NewRoomService(params ServiceParams, types RoomTypeService, statuses RoomStatusService) RoomService {
	return &roomService{
		ServiceParams: params,
		entities:      NewEntityService(params.RoomRepo, params.Logger),
		types:         types,
		statuses:      statuses,
	}
}

// List returns every room in ascending id order. Rooms are composed
// concurrently and the first failure cancels the rest. The error returned
// is that of the lowest positioned room that failed on its own.
func (s *roomService) List(ctx context.Context) ([]*room.Room, error) {
	rooms, err := s.RoomRepo.ListOrderedByID(ctx)
	if err != nil {
		return nil, err
	}

	workers := s.Config.Room.CompositionConcurrency
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	errs := make([]error, len(rooms))
	p := pool.New().WithMaxGoroutines(workers).WithErrors().WithContext(ctx).WithCancelOnError()
	for i, r := range rooms {
		i, r := i, r
		p.Go(func(ctx context.Context) error {
			errs[i] = s.compose(ctx, r)
			return errs[i]
		})
	}
	poolErr := p.Wait()

	for _, err := range errs {
		if err != nil && !ierr.Is(err, context.Canceled) {
			return nil, err
		}
	}
	if poolErr != nil {
		return nil, poolErr
	}
	return rooms, nil
}

func (s *roomService) Get(ctx context.Context, id int64) (*room.Room, error) {
	r, err := s.entities.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.compose(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *roomService) GetByRoomNumber(ctx context.Context, roomNumber int) (*room.Room, error) {
	r, err := s.RoomRepo.GetByRoomNumber(ctx, roomNumber)
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, room.NewRoomNumberNotFoundError(roomNumber)
		}
		return nil, err
	}
	if err := s.compose(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *roomService) Save(ctx context.Context, r *room.Room) (*room.Room, error) {
	s.Logger.Debugw("creating room", "room_number", r.RoomNumber, "type_id", r.TypeID, "status_id", r.StatusID)

	if err := s.checkRoomNumberAvailable(ctx, r.RoomNumber); err != nil {
		return nil, err
	}
	if err := room.ValidateDailyRate(r.DailyRate); err != nil {
		return nil, err
	}
	if err := s.attachReferences(ctx, r); err != nil {
		return nil, err
	}

	saved, err := s.entities.Save(ctx, r)
	if err != nil {
		return nil, asInvalidData(err)
	}
	saved.Attach(r.Type, r.Status)

	s.Logger.Infow("room created", "room_id", saved.ID, "room_number", saved.RoomNumber)
	return saved, nil
}

func (s *roomService) Update(ctx context.Context, r *room.Room) (*room.Room, error) {
	s.Logger.Debugw("updating room", "room_id", r.ID, "room_number", r.RoomNumber)

	existing, err := s.entities.Get(ctx, r.ID)
	if err != nil {
		return nil, asInvalidData(err)
	}

	if existing.RoomNumber != r.RoomNumber {
		if err := s.checkRoomNumberAvailable(ctx, r.RoomNumber); err != nil {
			return nil, err
		}
	}
	if err := room.ValidateDailyRate(r.DailyRate); err != nil {
		return nil, err
	}
	if err := s.attachReferences(ctx, r); err != nil {
		return nil, err
	}

	// existing was read above; a row deleted since then fails the write
	updated, err := s.entities.Replace(ctx, existing, r)
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, room.NewNotFoundForUpdateError(r.ID, err)
		}
		return nil, asInvalidData(err)
	}
	updated.Attach(r.Type, r.Status)

	s.Logger.Infow("room updated", "room_id", updated.ID, "room_number", updated.RoomNumber)
	return updated, nil
}

func (s *roomService) Delete(ctx context.Context, id int64) error {
	s.Logger.Debugw("deleting room", "room_id", id)
	return s.entities.Delete(ctx, id)
}

// checkRoomNumberAvailable is advisory; concurrent writers are stopped by
// the unique index on rooms.room_number.
func (s *roomService) checkRoomNumberAvailable(ctx context.Context, roomNumber int) error {
	_, err := s.RoomRepo.GetByRoomNumber(ctx, roomNumber)
	switch {
	case err == nil:
		return room.NewDuplicateRoomNumberError(roomNumber)
	case ierr.IsNotFound(err):
		return nil
	default:
		return asInvalidData(err)
	}
}

// attachReferences resolves the type and status a room points at before it
// is written. Any failure means the room references something that does
// not exist.
func (s *roomService) attachReferences(ctx context.Context, r *room.Room) error {
	t, st, err := s.resolve(ctx, r.TypeID, r.StatusID)
	if err != nil {
		s.Logger.Debugw("room references not resolved", "type_id", r.TypeID, "status_id", r.StatusID, "error", err)
		return room.NewReferenceNotFoundError(r.TypeID, r.StatusID, err)
	}
	r.Attach(t, st)
	return nil
}

// compose attaches the resolved references to a room read from storage.
func (s *roomService) compose(ctx context.Context, r *room.Room) error {
	t, st, err := s.resolve(ctx, r.TypeID, r.StatusID)
	if err != nil {
		return err
	}
	r.Attach(t, st)
	return nil
}

// resolve looks up a type and a status in parallel. The first failure
// cancels the other lookup.
func (s *roomService) resolve(ctx context.Context, typeID, statusID int64) (*roomtype.RoomType, *roomstatus.RoomStatus, error) {
	var (
		t  *roomtype.RoomType
		st *roomstatus.RoomStatus
	)

	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		t, err = s.types.Get(ctx, typeID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		st, err = s.statuses.Get(ctx, statusID)
		return err
	})

	if err := p.Wait(); err != nil {
		return nil, nil, err
	}
	return t, st, nil
}

// asInvalidData leaves the room core's own error kinds untouched and
// reports anything else as invalid data.
func asInvalidData(err error) error {
	if ierr.IsCoreKind(err) {
		return err
	}
	return ierr.NewError("room operation failed").
		WithHint(err.Error()).
		WithCause(err).
		Mark(ierr.ErrInvalidData)
}
