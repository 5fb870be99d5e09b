package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pedroramon/hotel-backend/internal/api/dto"
	"github.com/pedroramon/hotel-backend/internal/logger"
	"github.com/pedroramon/hotel-backend/internal/service"
)

type RoomHandler struct {
	service service.RoomService
	log     *logger.Logger
}

func NewRoomHandler(service service.RoomService, log *logger.Logger) *RoomHandler {
	return &RoomHandler{service: service, log: log}
}

// @Summary List rooms
// @Description List every room in ascending id order with its type and status
// @Tags Rooms
// @Produce json
// @Success 200 {array} dto.RoomResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /api/rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.service.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRoomListResponse(rooms))
}

// @Summary Get a room
// @Description Get a room by id
// @Tags Rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} dto.RoomResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /api/rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	r, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRoomResponse(r))
}

// @Summary Get a room by number
// @Description Get a room by its room number
// @Tags Rooms
// @Produce json
// @Param roomNumber path int true "Room number"
// @Success 200 {object} dto.RoomResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /api/rooms/number/{roomNumber} [get]
func (h *RoomHandler) GetRoomByNumber(c *gin.Context) {
	roomNumber, err := parseRoomNumber(c, "roomNumber")
	if err != nil {
		c.Error(err)
		return
	}

	r, err := h.service.GetByRoomNumber(c.Request.Context(), roomNumber)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRoomResponse(r))
}

// @Summary Create a room
// @Description Create a room. The room number must be unused, the daily rate at least 60.00 and the type and status must exist.
// @Tags Rooms
// @Accept json
// @Produce json
// @Param room body dto.CreateRoomRequest true "Room"
// @Success 201 {object} dto.RoomResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /api/rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	r, err := h.service.Save(c.Request.Context(), req.ToRoom())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewRoomResponse(r))
}

// @Summary Update a room
// @Description Update the room identified by the id in the body. The creation time is kept.
// @Tags Rooms
// @Accept json
// @Produce json
// @Param room body dto.UpdateRoomRequest true "Room"
// @Success 200 {object} dto.RoomResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /api/rooms [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	var req dto.UpdateRoomRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	r, err := h.service.Update(c.Request.Context(), req.ToRoom())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRoomResponse(r))
}

// @Summary Delete a room
// @Description Delete a room by id. Deleting an unknown id succeeds.
// @Tags Rooms
// @Param id path int true "Room ID"
// @Success 200
// @Failure 400 {object} ierr.ErrorResponse
// @Router /api/rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusOK)
}
