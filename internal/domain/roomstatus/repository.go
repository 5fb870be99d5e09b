package roomstatus

import (
	"github.com/pedroramon/hotel-backend/internal/domain"
)

type Repository interface {
	domain.Repository[*RoomStatus]
}
