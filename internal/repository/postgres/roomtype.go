package postgres

import (
	"context"
	"time"

	"github.com/pedroramon/hotel-backend/internal/domain/roomtype"
	ierr "github.com/pedroramon/hotel-backend/internal/errors"
	"github.com/pedroramon/hotel-backend/internal/logger"
	"github.com/pedroramon/hotel-backend/internal/postgres"
)

type roomTypeRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewRoomTypeRepository(db *postgres.DB, logger *logger.Logger) roomtype.Repository {
	return &roomTypeRepository{db: db, logger: logger}
}

const roomTypeColumns = `type_rom_id, name, created_at, updated_at`

func (r *roomTypeRepository) List(ctx context.Context) ([]*roomtype.RoomType, error) {
	span := postgres.StartRepositorySpan(ctx, "room_type", "list", nil)
	defer postgres.FinishSpan(span)

	q := r.db.GetQuerier(ctx)
	query := `SELECT ` + roomTypeColumns + ` FROM type_room ORDER BY type_rom_id ASC`

	roomTypes := make([]*roomtype.RoomType, 0)
	if err := q.SelectContext(ctx, &roomTypes, query); err != nil {
		postgres.SetSpanError(span, err)
		return nil, ierr.WithError(err).
			WithHint("Failed to list room types").
			Mark(ierr.ErrDatabase)
	}

	postgres.SetSpanSuccess(span)
	return roomTypes, nil
}

func (r *roomTypeRepository) Get(ctx context.Context, id int64) (*roomtype.RoomType, error) {
	span := postgres.StartRepositorySpan(ctx, "room_type", "get", map[string]interface{}{
		"type_id": id,
	})
	defer postgres.FinishSpan(span)

	q := r.db.GetQuerier(ctx)
	query := q.Rebind(`SELECT ` + roomTypeColumns + ` FROM type_room WHERE type_rom_id = ?`)

	var t roomtype.RoomType
	if err := q.GetContext(ctx, &t, query, id); err != nil {
		postgres.SetSpanError(span, err)
		if isNoRows(err) {
			return nil, ierr.WithError(err).
				WithHint("Room type not found").
				WithReportableDetails(map[string]interface{}{"type_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve room type").
			WithReportableDetails(map[string]interface{}{"type_id": id}).
			Mark(ierr.ErrDatabase)
	}

	postgres.SetSpanSuccess(span)
	return &t, nil
}

func (r *roomTypeRepository) Save(ctx context.Context, t *roomtype.RoomType) (*roomtype.RoomType, error) {
	span := postgres.StartRepositorySpan(ctx, "room_type", "save", map[string]interface{}{
		"type_id": t.ID,
	})
	defer postgres.FinishSpan(span)

	t.Touch(time.Now().UTC())
	q := r.db.GetQuerier(ctx)

	var (
		query string
		args  []interface{}
	)
	if t.ID == 0 {
		r.logger.Debugw("creating room type", "name", t.Name)
		query = `INSERT INTO type_room (name, created_at, updated_at)
			VALUES (?, ?, ?)
			RETURNING ` + roomTypeColumns
		args = []interface{}{t.Name, t.CreatedAt, t.UpdatedAt}
	} else {
		r.logger.Debugw("updating room type", "type_id", t.ID)
		query = `UPDATE type_room SET name = ?, created_at = ?, updated_at = ?
			WHERE type_rom_id = ?
			RETURNING ` + roomTypeColumns
		args = []interface{}{t.Name, t.CreatedAt, t.UpdatedAt, t.ID}
	}

	var saved roomtype.RoomType
	if err := q.GetContext(ctx, &saved, q.Rebind(query), args...); err != nil {
		postgres.SetSpanError(span, err)
		if isNoRows(err) {
			return nil, ierr.WithError(err).
				WithHint("Room type not found").
				WithReportableDetails(map[string]interface{}{"type_id": t.ID}).
				Mark(ierr.ErrNotFound)
		}
		return nil, writeError(err, "Failed to save room type", map[string]interface{}{
			"type_id": t.ID,
		})
	}

	postgres.SetSpanSuccess(span)
	return &saved, nil
}

func (r *roomTypeRepository) Delete(ctx context.Context, id int64) error {
	span := postgres.StartRepositorySpan(ctx, "room_type", "delete", map[string]interface{}{
		"type_id": id,
	})
	defer postgres.FinishSpan(span)

	r.logger.Debugw("deleting room type", "type_id", id)

	q := r.db.GetQuerier(ctx)
	if _, err := q.ExecContext(ctx, q.Rebind(`DELETE FROM type_room WHERE type_rom_id = ?`), id); err != nil {
		postgres.SetSpanError(span, err)
		return ierr.WithError(err).
			WithHint("Failed to delete room type").
			WithReportableDetails(map[string]interface{}{"type_id": id}).
			Mark(ierr.ErrDatabase)
	}

	postgres.SetSpanSuccess(span)
	return nil
}
