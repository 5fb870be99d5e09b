package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pedroramon/hotel-backend/internal/api/dto"
	"github.com/pedroramon/hotel-backend/internal/logger"
	"github.com/pedroramon/hotel-backend/internal/service"
)

type RoomTypeHandler struct {
	service service.RoomTypeService
	log     *logger.Logger
}

func NewRoomTypeHandler(service service.RoomTypeService, log *logger.Logger) *RoomTypeHandler {
	return &RoomTypeHandler{service: service, log: log}
}

// @Summary List room types
// @Tags Room Types
// @Produce json
// @Success 200 {array} dto.RoomTypeResponse
// @Router /api/type-rooms [get]
func (h *RoomTypeHandler) ListRoomTypes(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRoomTypeListResponse(items))
}

// @Summary Get a room type
// @Tags Room Types
// @Produce json
// @Param id path int true "Room type ID"
// @Success 200 {object} dto.RoomTypeResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /api/type-rooms/{id} [get]
func (h *RoomTypeHandler) GetRoomType(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	t, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRoomTypeResponse(t))
}

// @Summary Create a room type
// @Tags Room Types
// @Accept json
// @Produce json
// @Param roomType body dto.CreateRoomTypeRequest true "Room type"
// @Success 201 {object} dto.RoomTypeResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /api/type-rooms [post]
func (h *RoomTypeHandler) CreateRoomType(c *gin.Context) {
	var req dto.CreateRoomTypeRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	t, err := h.service.Save(c.Request.Context(), req.ToRoomType())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewRoomTypeResponse(t))
}

// @Summary Update a room type
// @Tags Room Types
// @Accept json
// @Produce json
// @Param roomType body dto.UpdateRoomTypeRequest true "Room type"
// @Success 200 {object} dto.RoomTypeResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /api/type-rooms [put]
func (h *RoomTypeHandler) UpdateRoomType(c *gin.Context) {
	var req dto.UpdateRoomTypeRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	t, err := h.service.Update(c.Request.Context(), req.ToRoomType())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRoomTypeResponse(t))
}

// @Summary Delete a room type
// @Tags Room Types
// @Param id path int true "Room type ID"
// @Success 200
// @Failure 400 {object} ierr.ErrorResponse
// @Router /api/type-rooms/{id} [delete]
func (h *RoomTypeHandler) DeleteRoomType(c *gin.Context) {
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
