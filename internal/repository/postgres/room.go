package postgres

import (
	"context"
	"time"

	"github.com/pedroramon/hotel-backend/internal/domain/room"
	ierr "github.com/pedroramon/hotel-backend/internal/errors"
	"github.com/pedroramon/hotel-backend/internal/logger"
	"github.com/pedroramon/hotel-backend/internal/postgres"
)

type roomRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewRoomRepository(db *postgres.DB, logger *logger.Logger) room.Repository {
	return &roomRepository{db: db, logger: logger}
}

const roomColumns = `room_id, room_number, daily_rate, type_room_id, status_room_id, created_at, updated_at`

// List returns rooms in storage order; use ListOrderedByID when order matters.
func (r *roomRepository) List(ctx context.Context) ([]*room.Room, error) {
	return r.list(ctx, "list", `SELECT `+roomColumns+` FROM rooms`)
}

func (r *roomRepository) ListOrderedByID(ctx context.Context) ([]*room.Room, error) {
	return r.list(ctx, "list_ordered", `SELECT `+roomColumns+` FROM rooms ORDER BY room_id ASC`)
}

func (r *roomRepository) list(ctx context.Context, operation, query string) ([]*room.Room, error) {
	span := postgres.StartRepositorySpan(ctx, "room", operation, nil)
	defer postgres.FinishSpan(span)

	rooms := make([]*room.Room, 0)
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &rooms, query); err != nil {
		postgres.SetSpanError(span, err)
		return nil, ierr.WithError(err).
			WithHint("Failed to list rooms").
			Mark(ierr.ErrDatabase)
	}

	postgres.SetSpanSuccess(span)
	return rooms, nil
}

func (r *roomRepository) Get(ctx context.Context, id int64) (*room.Room, error) {
	span := postgres.StartRepositorySpan(ctx, "room", "get", map[string]interface{}{
		"room_id": id,
	})
	defer postgres.FinishSpan(span)

	q := r.db.GetQuerier(ctx)
	query := q.Rebind(`SELECT ` + roomColumns + ` FROM rooms WHERE room_id = ?`)

	var rm room.Room
	if err := q.GetContext(ctx, &rm, query, id); err != nil {
		postgres.SetSpanError(span, err)
		if isNoRows(err) {
			return nil, ierr.WithError(err).
				WithHint("Room not found").
				WithReportableDetails(map[string]interface{}{"room_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve room").
			WithReportableDetails(map[string]interface{}{"room_id": id}).
			Mark(ierr.ErrDatabase)
	}

	postgres.SetSpanSuccess(span)
	return &rm, nil
}

func (r *roomRepository) GetByRoomNumber(ctx context.Context, roomNumber int) (*room.Room, error) {
	span := postgres.StartRepositorySpan(ctx, "room", "get_by_room_number", map[string]interface{}{
		"room_number": roomNumber,
	})
	defer postgres.FinishSpan(span)

	q := r.db.GetQuerier(ctx)
	query := q.Rebind(`SELECT ` + roomColumns + ` FROM rooms WHERE room_number = ? ORDER BY room_id ASC LIMIT 1`)

	var rm room.Room
	if err := q.GetContext(ctx, &rm, query, roomNumber); err != nil {
		postgres.SetSpanError(span, err)
		if isNoRows(err) {
			return nil, ierr.WithError(err).
				WithHint("Room not found").
				WithReportableDetails(map[string]interface{}{"room_number": roomNumber}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve room").
			WithReportableDetails(map[string]interface{}{"room_number": roomNumber}).
			Mark(ierr.ErrDatabase)
	}

	postgres.SetSpanSuccess(span)
	return &rm, nil
}

// Save inserts rooms without an id and rewrites every column of the others.
// Resolved Type and Status references are not persisted.
func (r *roomRepository) Save(ctx context.Context, rm *room.Room) (*room.Room, error) {
	span := postgres.StartRepositorySpan(ctx, "room", "save", map[string]interface{}{
		"room_id":     rm.ID,
		"room_number": rm.RoomNumber,
	})
	defer postgres.FinishSpan(span)

	rm.Touch(time.Now().UTC())
	q := r.db.GetQuerier(ctx)

	var (
		query string
		args  []interface{}
	)
	if rm.ID == 0 {
		r.logger.Debugw("creating room", "room_number", rm.RoomNumber)
		query = `INSERT INTO rooms (room_number, daily_rate, type_room_id, status_room_id, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
			RETURNING ` + roomColumns
		args = []interface{}{rm.RoomNumber, rm.DailyRate, rm.TypeID, rm.StatusID, rm.CreatedAt, rm.UpdatedAt}
	} else {
		r.logger.Debugw("updating room", "room_id", rm.ID, "room_number", rm.RoomNumber)
		query = `UPDATE rooms SET
				room_number = ?,
				daily_rate = ?,
				type_room_id = ?,
				status_room_id = ?,
				created_at = ?,
				updated_at = ?
			WHERE room_id = ?
			RETURNING ` + roomColumns
		args = []interface{}{rm.RoomNumber, rm.DailyRate, rm.TypeID, rm.StatusID, rm.CreatedAt, rm.UpdatedAt, rm.ID}
	}

	var saved room.Room
	if err := q.GetContext(ctx, &saved, q.Rebind(query), args...); err != nil {
		postgres.SetSpanError(span, err)
		if isNoRows(err) {
			return nil, ierr.WithError(err).
				WithHint("Room not found").
				WithReportableDetails(map[string]interface{}{"room_id": rm.ID}).
				Mark(ierr.ErrNotFound)
		}
		return nil, writeError(err, "Failed to save room", map[string]interface{}{
			"room_id":     rm.ID,
			"room_number": rm.RoomNumber,
		})
	}

	postgres.SetSpanSuccess(span)
	return &saved, nil
}

func (r *roomRepository) Delete(ctx context.Context, id int64) error {
	span := postgres.StartRepositorySpan(ctx, "room", "delete", map[string]interface{}{
		"room_id": id,
	})
	defer postgres.FinishSpan(span)

	r.logger.Debugw("deleting room", "room_id", id)

	q := r.db.GetQuerier(ctx)
	if _, err := q.ExecContext(ctx, q.Rebind(`DELETE FROM rooms WHERE room_id = ?`), id); err != nil {
		postgres.SetSpanError(span, err)
		return ierr.WithError(err).
			WithHint("Failed to delete room").
			WithReportableDetails(map[string]interface{}{"room_id": id}).
			Mark(ierr.ErrDatabase)
	}

	postgres.SetSpanSuccess(span)
	return nil
}
