package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hotelhq/hotel_folio_app/internal/apperrors"
	portssvc "github.com/hotelhq/hotel_folio_app/internal/core/ports/services"
	"github.com/hotelhq/hotel_folio_app/internal/dto"
	"github.com/hotelhq/hotel_folio_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// roomHandler handles HTTP requests related to rooms and room types.
type roomHandler struct {
	roomService portssvc.RoomSvcFacade
}

// newRoomHandler creates a new roomHandler.
func newRoomHandler(rs portssvc.RoomSvcFacade) *roomHandler {
	return &roomHandler{
		roomService: rs,
	}
}

// registerRoomRoutes registers routes related to rooms and room types.
func registerRoomRoutes(rg *gin.RouterGroup, roomService portssvc.RoomSvcFacade) {
	h := newRoomHandler(roomService)

	roomTypes := rg.Group("/room-types")
	{
		roomTypes.POST("", h.createRoomType)
		roomTypes.GET("", h.listRoomTypes)
		roomTypes.GET("/:id", h.getRoomType)
		roomTypes.PUT("/:id", h.updateRoomType)
	}

	rooms := rg.Group("/rooms")
	{
		rooms.POST("", h.createRoom)
		rooms.GET("", h.listRooms)
		rooms.GET("/:id", h.getRoom)
		rooms.PUT("/:id", h.updateRoom)
	}
}

// createRoomType godoc
// @Summary Create a room type
// @Description Creates a room type with a nightly rate. Requires the manager role
// @Tags rooms
// @Accept  json
// @Produce  json
// @Param   roomType body dto.CreateRoomTypeRequest true "Room type details"
// @Success 201 {object} dto.RoomTypeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to create room type"
// @Security BearerAuth
// @Router /room-types [post]
func (h *roomHandler) createRoomType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRoomType", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	roomType, err := h.roomService.CreateRoomType(c.Request.Context(), req, creatorUserID)
	if err != nil {
		h.writeError(c, logger, err, "Failed to create room type")
		return
	}

	logger.Info("Room type created", slog.String("room_type_id", roomType.RoomTypeID), slog.String("name", roomType.Name))
	c.JSON(http.StatusCreated, dto.ToRoomTypeResponse(roomType))
}

// getRoomType godoc
// @Summary Get a room type by ID
// @Tags rooms
// @Produce  json
// @Param   id path string true "Room type ID"
// @Success 200 {object} dto.RoomTypeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Room type not found"
// @Security BearerAuth
// @Router /room-types/{id} [get]
func (h *roomHandler) getRoomType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	roomTypeID := c.Param("id")

	roomType, err := h.roomService.GetRoomType(c.Request.Context(), roomTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room type not found"})
		} else {
			logger.Error("Failed to get room type", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve room type"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomTypeResponse(roomType))
}

// listRoomTypes godoc
// @Summary List room types
// @Tags rooms
// @Produce  json
// @Param   includeInactive query bool false "Include inactive room types" default(false)
// @Success 200 {array} dto.RoomTypeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /room-types [get]
func (h *roomHandler) listRoomTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	includeInactive := c.Query("includeInactive") == "true"

	roomTypes, err := h.roomService.ListRoomTypes(c.Request.Context(), includeInactive)
	if err != nil {
		logger.Error("Failed to list room types", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list room types"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRoomTypeResponse(roomTypes))
}

// updateRoomType godoc
// @Summary Update a room type
// @Description Updates a room type. Rate changes apply to future check-ins only; open folios keep their captured rate
// @Tags rooms
// @Accept  json
// @Produce  json
// @Param   id path string true "Room type ID"
// @Param   roomType body dto.UpdateRoomTypeRequest true "Fields to update"
// @Success 200 {object} dto.RoomTypeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Room type not found"
// @Security BearerAuth
// @Router /room-types/{id} [put]
func (h *roomHandler) updateRoomType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	roomTypeID := c.Param("id")

	var req dto.UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRoomType", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	roomType, err := h.roomService.UpdateRoomType(c.Request.Context(), roomTypeID, req, requestingUserID)
	if err != nil {
		h.writeError(c, logger, err, "Failed to update room type")
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomTypeResponse(roomType))
}

// createRoom godoc
// @Summary Create a room
// @Description Creates a room belonging to a room type. Requires the manager role
// @Tags rooms
// @Accept  json
// @Produce  json
// @Param   room body dto.CreateRoomRequest true "Room details"
// @Success 201 {object} dto.RoomResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /rooms [post]
func (h *roomHandler) createRoom(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRoom", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	room, err := h.roomService.CreateRoom(c.Request.Context(), req, creatorUserID)
	if err != nil {
		h.writeError(c, logger, err, "Failed to create room")
		return
	}

	logger.Info("Room created", slog.String("room_id", room.RoomID), slog.String("name", room.Name))
	c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

// getRoom godoc
// @Summary Get a room by ID
// @Tags rooms
// @Produce  json
// @Param   id path string true "Room ID"
// @Success 200 {object} dto.RoomResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Room not found"
// @Security BearerAuth
// @Router /rooms/{id} [get]
func (h *roomHandler) getRoom(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	roomID := c.Param("id")

	room, err := h.roomService.GetRoom(c.Request.Context(), roomID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		} else {
			logger.Error("Failed to get room", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve room"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

// listRooms godoc
// @Summary List rooms
// @Tags rooms
// @Produce  json
// @Param   status query string false "Filter by status (AVAILABLE, OCCUPIED, MAINTENANCE)"
// @Param   limit query int false "Limit number of results" default(50)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {array} dto.RoomResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /rooms [get]
func (h *roomHandler) listRooms(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListRoomsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListRooms", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	rooms, err := h.roomService.ListRooms(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list rooms", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rooms"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRoomResponse(rooms))
}

// updateRoom godoc
// @Summary Update a room
// @Description Updates a room's details or status (front desk sets MAINTENANCE/AVAILABLE)
// @Tags rooms
// @Accept  json
// @Produce  json
// @Param   id path string true "Room ID"
// @Param   room body dto.UpdateRoomRequest true "Fields to update"
// @Success 200 {object} dto.RoomResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Room not found"
// @Security BearerAuth
// @Router /rooms/{id} [put]
func (h *roomHandler) updateRoom(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	roomID := c.Param("id")

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRoom", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	room, err := h.roomService.UpdateRoom(c.Request.Context(), roomID, req, requestingUserID)
	if err != nil {
		h.writeError(c, logger, err, "Failed to update room")
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

// writeError maps the service errors shared by the room handlers.
func (h *roomHandler) writeError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
