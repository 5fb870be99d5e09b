package postgres

import (
	"context"
	"time"

	"github.com/pedroramon/hotel-backend/internal/domain/roomstatus"
	ierr "github.com/pedroramon/hotel-backend/internal/errors"
	"github.com/pedroramon/hotel-backend/internal/logger"
	"github.com/pedroramon/hotel-backend/internal/postgres"
)

type roomStatusRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewRoomStatusRepository(db *postgres.DB, logger *logger.Logger) roomstatus.Repository {
	return &roomStatusRepository{db: db, logger: logger}
}

const roomStatusColumns = `status_rom_id, description, created_at, updated_at`

func (r *roomStatusRepository) List(ctx context.Context) ([]*roomstatus.RoomStatus, error) {
	span := postgres.StartRepositorySpan(ctx, "room_status", "list", nil)
	defer postgres.FinishSpan(span)

	q := r.db.GetQuerier(ctx)
	query := `SELECT ` + roomStatusColumns + ` FROM status_room ORDER BY status_rom_id ASC`

	roomStatuses := make([]*roomstatus.RoomStatus, 0)
	if err := q.SelectContext(ctx, &roomStatuses, query); err != nil {
		postgres.SetSpanError(span, err)
		return nil, ierr.WithError(err).
			WithHint("Failed to list room statuses").
			Mark(ierr.ErrDatabase)
	}

	postgres.SetSpanSuccess(span)
	return roomStatuses, nil
}

func (r *roomStatusRepository) Get(ctx context.Context, id int64) (*roomstatus.RoomStatus, error) {
	span := postgres.StartRepositorySpan(ctx, "room_status", "get", map[string]interface{}{
		"status_id": id,
	})
	defer postgres.FinishSpan(span)

	q := r.db.GetQuerier(ctx)
	query := q.Rebind(`SELECT ` + roomStatusColumns + ` FROM status_room WHERE status_rom_id = ?`)

	var s roomstatus.RoomStatus
	if err := q.GetContext(ctx, &s, query, id); err != nil {
		postgres.SetSpanError(span, err)
		if isNoRows(err) {
			return nil, ierr.WithError(err).
				WithHint("Room status not found").
				WithReportableDetails(map[string]interface{}{"status_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve room status").
			WithReportableDetails(map[string]interface{}{"status_id": id}).
			Mark(ierr.ErrDatabase)
	}

	postgres.SetSpanSuccess(span)
	return &s, nil
}

func (r *roomStatusRepository) Save(ctx context.Context, s *roomstatus.RoomStatus) (*roomstatus.RoomStatus, error) {
	span := postgres.StartRepositorySpan(ctx, "room_status", "save", map[string]interface{}{
		"status_id": s.ID,
	})
	defer postgres.FinishSpan(span)

	s.Touch(time.Now().UTC())
	q := r.db.GetQuerier(ctx)

	var (
		query string
		args  []interface{}
	)
	if s.ID == 0 {
		r.logger.Debugw("creating room status", "description", s.Description)
		query = `INSERT INTO status_room (description, created_at, updated_at)
			VALUES (?, ?, ?)
			RETURNING ` + roomStatusColumns
		args = []interface{}{s.Description, s.CreatedAt, s.UpdatedAt}
	} else {
		r.logger.Debugw("updating room status", "status_id", s.ID)
		query = `UPDATE status_room SET description = ?, created_at = ?, updated_at = ?
			WHERE status_rom_id = ?
			RETURNING ` + roomStatusColumns
		args = []interface{}{s.Description, s.CreatedAt, s.UpdatedAt, s.ID}
	}

	var saved roomstatus.RoomStatus
	if err := q.GetContext(ctx, &saved, q.Rebind(query), args...); err != nil {
		postgres.SetSpanError(span, err)
		if isNoRows(err) {
			return nil, ierr.WithError(err).
				WithHint("Room status not found").
				WithReportableDetails(map[string]interface{}{"status_id": s.ID}).
				Mark(ierr.ErrNotFound)
		}
		return nil, writeError(err, "Failed to save room status", map[string]interface{}{
			"status_id": s.ID,
		})
	}

	postgres.SetSpanSuccess(span)
	return &saved, nil
}

func (r *roomStatusRepository) Delete(ctx context.Context, id int64) error {
	span := postgres.StartRepositorySpan(ctx, "room_status", "delete", map[string]interface{}{
		"status_id": id,
	})
	defer postgres.FinishSpan(span)

	r.logger.Debugw("deleting room status", "status_id", id)

	q := r.db.GetQuerier(ctx)
	if _, err := q.ExecContext(ctx, q.Rebind(`DELETE FROM status_room WHERE status_rom_id = ?`), id); err != nil {
		postgres.SetSpanError(span, err)
		return ierr.WithError(err).
			WithHint("Failed to delete room status").
			WithReportableDetails(map[string]interface{}{"status_id": id}).
			Mark(ierr.ErrDatabase)
	}

	postgres.SetSpanSuccess(span)
	return nil
}
