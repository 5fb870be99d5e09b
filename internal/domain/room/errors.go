package room

import (
	ierr "github.com/pedroramon/hotel-backend/internal/errors"
	"github.com/pedroramon/hotel-backend/internal/types"
	"github.com/pedroramon/hotel-backend/internal/validator"
	"github.com/shopspring/decimal"
)

// MinDailyRate is the lowest daily rate a room may be offered at.
var MinDailyRate = decimal.RequireFromString("60.00")

// User-visible messages. Clients match on them, keep them verbatim.
const (
	MsgDuplicateRoomNumber   = "Já existe um quarto com o número informado!"
	MsgDailyRateBelowMinimum = "O valor mínimo da diária deve ser 60 reais"
	MsgReferenceNotFound     = "Tipo ou Status do quarto não encontrado para os IDs fornecidos"
	MsgNotFoundForUpdate     = "Quarto não encontrado para atualização!"
)

func NewDuplicateRoomNumberError(roomNumber int) error {
	return ierr.NewError("room number already in use").
		WithHint(MsgDuplicateRoomNumber).
		WithReportableDetails(map[string]any{
			"room_number": roomNumber,
		}).
		Mark(ierr.ErrInvalidData)
}

func NewDailyRateBelowMinimumError(dailyRate decimal.Decimal) error {
	return ierr.NewError("daily rate below minimum").
		WithHint(MsgDailyRateBelowMinimum).
		WithReportableDetails(map[string]any{
			"daily_rate":     dailyRate.String(),
			"min_daily_rate": MinDailyRate.String(),
		}).
		Mark(ierr.ErrInvalidData)
}

// NewReferenceNotFoundError reports that the type or status a room points
// at could not be resolved. cause is kept for logs only.
func NewReferenceNotFoundError(typeID, statusID int64, cause error) error {
	return ierr.NewError("room type or status not found").
		WithHint(MsgReferenceNotFound).
		WithReportableDetails(map[string]any{
			"type_id":   typeID,
			"status_id": statusID,
		}).
		WithCause(cause).
		Mark(ierr.ErrNotFound)
}

func NewNotFoundForUpdateError(id int64, cause error) error {
	return ierr.NewError("room disappeared before update").
		WithHint(MsgNotFoundForUpdate).
		WithReportableDetails(map[string]any{
			"room_id": id,
		}).
		WithCause(cause).
		Mark(ierr.ErrNotFound)
}

func NewRoomNumberNotFoundError(roomNumber int) error {
	return ierr.NewError("room not found").
		WithHintf("Room not found with number: %d", roomNumber).
		WithReportableDetails(map[string]any{
			"room_number": roomNumber,
		}).
		Mark(ierr.ErrNotFound)
}

func NewDailyRateOutOfBoundsError(dailyRate decimal.Decimal) error {
	return ierr.NewError("daily rate out of bounds").
		WithHint(validator.ValidationMessage).
		WithReportableDetails(map[string]any{
			"dailyRate": validator.MoneyOutOfBoundsMessage,
		}).
		Mark(ierr.ErrValidation)
}

// ValidateDailyRate enforces the daily rate floor, then the numeric(10,2)
// bounds. Nothing is rounded: 59.995 is below the floor and 60.001 is out
// of bounds.
func ValidateDailyRate(dailyRate decimal.Decimal) error {
	if dailyRate.LessThan(MinDailyRate) {
		return NewDailyRateBelowMinimumError(dailyRate)
	}
	if !types.FitsMoney(dailyRate) {
		return NewDailyRateOutOfBoundsError(dailyRate)
	}
	return nil
}
