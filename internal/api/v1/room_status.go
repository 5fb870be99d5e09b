package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pedroramon/hotel-backend/internal/api/dto"
	"github.com/pedroramon/hotel-backend/internal/logger"
	"github.com/pedroramon/hotel-backend/internal/service"
)

type RoomStatusHandler struct {
	service service.RoomStatusService
	log     *logger.Logger
}

func NewRoomStatusHandler(service service.RoomStatusService, log *logger.Logger) *RoomStatusHandler {
	return &RoomStatusHandler{service: service, log: log}
}

// @Summary List room statuses
// @Tags Room Statuses
// @Produce json
// @Success 200 {array} dto.RoomStatusResponse
// @Router /api/status-rooms [get]
func (h *RoomStatusHandler) ListRoomStatuses(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRoomStatusListResponse(items))
}

// @Summary Get a room status
// @Tags Room Statuses
// @Produce json
// @Param id path int true "Room status ID"
// @Success 200 {object} dto.RoomStatusResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /api/status-rooms/{id} [get]
func (h *RoomStatusHandler) GetRoomStatus(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	st, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRoomStatusResponse(st))
}

// @Summary Create a room status
// @Tags Room Statuses
// @Accept json
// @Produce json
// @Param roomStatus body dto.CreateRoomStatusRequest true "Room status"
// @Success 201 {object} dto.RoomStatusResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /api/status-rooms [post]
func (h *RoomStatusHandler) CreateRoomStatus(c *gin.Context) {
	var req dto.CreateRoomStatusRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	st, err := h.service.Save(c.Request.Context(), req.ToRoomStatus())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewRoomStatusResponse(st))
}

// @Summary Update a room status
// @Tags Room Statuses
// @Accept json
// @Produce json
// @Param roomStatus body dto.UpdateRoomStatusRequest true "Room status"
// @Success 200 {object} dto.RoomStatusResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /api/status-rooms [put]
func (h *RoomStatusHandler) UpdateRoomStatus(c *gin.Context) {
	var req dto.UpdateRoomStatusRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	st, err := h.service.Update(c.Request.Context(), req.ToRoomStatus())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRoomStatusResponse(st))
}

// @Summary Delete a room status
// @Tags Room Statuses
// @Param id path int true "Room status ID"
// @Success 200
// @Failure 400 {object} ierr.ErrorResponse
// @Router /api/status-rooms/{id} [delete]
func (h *RoomStatusHandler) DeleteRoomStatus(c *gin.Context) {
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
