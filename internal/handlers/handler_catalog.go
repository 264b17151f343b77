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

// catalogHandler handles HTTP requests for the billing catalog: billable
// services, penalty types, and surcharge types.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

// newCatalogHandler creates a new catalogHandler.
func newCatalogHandler(cs portssvc.CatalogSvcFacade) *catalogHandler {
	return &catalogHandler{
		catalogService: cs,
	}
}

// registerCatalogRoutes registers routes related to the billing catalog.
func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newCatalogHandler(catalogService)

	servicesGroup := rg.Group("/services")
	{
		servicesGroup.POST("", h.createServiceItem)
		servicesGroup.GET("", h.listServiceItems)
		servicesGroup.GET("/:id", h.getServiceItem)
		servicesGroup.PUT("/:id", h.updateServiceItem)
	}

	penalties := rg.Group("/penalty-types")
	{
		penalties.POST("", h.createPenaltyType)
		penalties.GET("", h.listPenaltyTypes)
		penalties.GET("/:id", h.getPenaltyType)
	}

	surcharges := rg.Group("/surcharge-types")
	{
		surcharges.POST("", h.createSurchargeType)
		surcharges.GET("", h.listSurchargeTypes)
		surcharges.GET("/:id", h.getSurchargeType)
		surcharges.POST("/resolve", h.resolveSurcharge)
	}
}

// createServiceItem godoc
// @Summary Create a billable service
// @Description Adds a service (laundry, minibar, ...) to the catalog. Requires the manager role
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   service body dto.CreateServiceItemRequest true "Service details"
// @Success 201 {object} dto.ServiceItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /services [post]
func (h *catalogHandler) createServiceItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateServiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateServiceItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	item, err := h.catalogService.CreateServiceItem(c.Request.Context(), req, creatorUserID)
	if err != nil {
		h.writeError(c, logger, err, "Failed to create service")
		return
	}

	logger.Info("Service created", slog.String("service_id", item.ServiceID), slog.String("name", item.Name))
	c.JSON(http.StatusCreated, dto.ToServiceItemResponse(item))
}

// getServiceItem godoc
// @Summary Get a billable service by ID
// @Tags catalog
// @Produce  json
// @Param   id path string true "Service ID"
// @Success 200 {object} dto.ServiceItemResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Service not found"
// @Security BearerAuth
// @Router /services/{id} [get]
func (h *catalogHandler) getServiceItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	serviceID := c.Param("id")

	item, err := h.catalogService.GetServiceItem(c.Request.Context(), serviceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		} else {
			logger.Error("Failed to get service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve service"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceItemResponse(item))
}

// listServiceItems godoc
// @Summary List billable services
// @Tags catalog
// @Produce  json
// @Param   includeInactive query bool false "Include inactive services" default(false)
// @Success 200 {array} dto.ServiceItemResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /services [get]
func (h *catalogHandler) listServiceItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	includeInactive := c.Query("includeInactive") == "true"

	items, err := h.catalogService.ListServiceItems(c.Request.Context(), includeInactive)
	if err != nil {
		logger.Error("Failed to list services", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list services"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListServiceItemResponse(items))
}

// updateServiceItem godoc
// @Summary Update a billable service
// @Description Updates a catalog service. Requires the manager role
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   id path string true "Service ID"
// @Param   service body dto.UpdateServiceItemRequest true "Fields to update"
// @Success 200 {object} dto.ServiceItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Service not found"
// @Security BearerAuth
// @Router /services/{id} [put]
func (h *catalogHandler) updateServiceItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	serviceID := c.Param("id")

	var req dto.UpdateServiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateServiceItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	item, err := h.catalogService.UpdateServiceItem(c.Request.Context(), serviceID, req, requestingUserID)
	if err != nil {
		h.writeError(c, logger, err, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceItemResponse(item))
}

// createPenaltyType godoc
// @Summary Create a penalty type
// @Description Adds a penalty (smoking, broken item, ...) to the catalog. Requires the manager role
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   penalty body dto.CreatePenaltyTypeRequest true "Penalty details"
// @Success 201 {object} dto.PenaltyTypeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /penalty-types [post]
func (h *catalogHandler) createPenaltyType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePenaltyTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePenaltyType", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	penalty, err := h.catalogService.CreatePenaltyType(c.Request.Context(), req, creatorUserID)
	if err != nil {
		h.writeError(c, logger, err, "Failed to create penalty type")
		return
	}

	logger.Info("Penalty type created", slog.String("penalty_type_id", penalty.PenaltyTypeID), slog.String("name", penalty.Name))
	c.JSON(http.StatusCreated, dto.ToPenaltyTypeResponse(penalty))
}

// getPenaltyType godoc
// @Summary Get a penalty type by ID
// @Tags catalog
// @Produce  json
// @Param   id path string true "Penalty type ID"
// @Success 200 {object} dto.PenaltyTypeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Penalty type not found"
// @Security BearerAuth
// @Router /penalty-types/{id} [get]
func (h *catalogHandler) getPenaltyType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	penaltyTypeID := c.Param("id")

	penalty, err := h.catalogService.GetPenaltyType(c.Request.Context(), penaltyTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Penalty type not found"})
		} else {
			logger.Error("Failed to get penalty type", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve penalty type"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPenaltyTypeResponse(penalty))
}

// listPenaltyTypes godoc
// @Summary List penalty types
// @Tags catalog
// @Produce  json
// @Param   includeInactive query bool false "Include inactive penalty types" default(false)
// @Success 200 {array} dto.PenaltyTypeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /penalty-types [get]
func (h *catalogHandler) listPenaltyTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	includeInactive := c.Query("includeInactive") == "true"

	penalties, err := h.catalogService.ListPenaltyTypes(c.Request.Context(), includeInactive)
	if err != nil {
		logger.Error("Failed to list penalty types", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list penalty types"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPenaltyTypeResponse(penalties))
}

// createSurchargeType godoc
// @Summary Create a surcharge type
// @Description Adds a surcharge to the catalog, defined as either a flat amount or a percentage rate. Requires the manager role
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   surcharge body dto.CreateSurchargeTypeRequest true "Surcharge details"
// @Success 201 {object} dto.SurchargeTypeResponse
// @Failure 400 {object} map[string]string "Invalid input (must set exactly one of amount/rate)"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /surcharge-types [post]
func (h *catalogHandler) createSurchargeType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSurchargeTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSurchargeType", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	surcharge, err := h.catalogService.CreateSurchargeType(c.Request.Context(), req, creatorUserID)
	if err != nil {
		h.writeError(c, logger, err, "Failed to create surcharge type")
		return
	}

	logger.Info("Surcharge type created", slog.String("surcharge_type_id", surcharge.SurchargeTypeID), slog.String("name", surcharge.Name))
	c.JSON(http.StatusCreated, dto.ToSurchargeTypeResponse(surcharge))
}

// getSurchargeType godoc
// @Summary Get a surcharge type by ID
// @Tags catalog
// @Produce  json
// @Param   id path string true "Surcharge type ID"
// @Success 200 {object} dto.SurchargeTypeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Surcharge type not found"
// @Security BearerAuth
// @Router /surcharge-types/{id} [get]
func (h *catalogHandler) getSurchargeType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	surchargeTypeID := c.Param("id")

	surcharge, err := h.catalogService.GetSurchargeType(c.Request.Context(), surchargeTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Surcharge type not found"})
		} else {
			logger.Error("Failed to get surcharge type", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve surcharge type"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSurchargeTypeResponse(surcharge))
}

// listSurchargeTypes godoc
// @Summary List surcharge types
// @Tags catalog
// @Produce  json
// @Param   includeInactive query bool false "Include inactive surcharge types" default(false)
// @Success 200 {array} dto.SurchargeTypeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /surcharge-types [get]
func (h *catalogHandler) listSurchargeTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	includeInactive := c.Query("includeInactive") == "true"

	surcharges, err := h.catalogService.ListSurchargeTypes(c.Request.Context(), includeInactive)
	if err != nil {
		logger.Error("Failed to list surcharge types", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list surcharge types"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSurchargeTypeResponse(surcharges))
}

// resolveSurcharge godoc
// @Summary Resolve a surcharge against a base amount
// @Description Turns a surcharge type into a concrete flat amount. Percentage surcharges resolve as base * rate / 100; the result is what gets posted to a folio
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   resolve body dto.ResolveSurchargeRequest true "Surcharge type and base amount"
// @Success 200 {object} dto.ResolveSurchargeResponse
// @Failure 400 {object} map[string]string "Invalid input or inactive surcharge"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Surcharge type not found"
// @Security BearerAuth
// @Router /surcharge-types/resolve [post]
func (h *catalogHandler) resolveSurcharge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ResolveSurchargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ResolveSurcharge", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	surcharge, amount, err := h.catalogService.ResolveSurcharge(c.Request.Context(), req.SurchargeTypeID, req.BaseAmount)
	if err != nil {
		h.writeError(c, logger, err, "Failed to resolve surcharge")
		return
	}

	c.JSON(http.StatusOK, dto.ResolveSurchargeResponse{
		SurchargeTypeID: surcharge.SurchargeTypeID,
		Name:            surcharge.Name,
		Amount:          amount,
	})
}

// writeError maps the service errors shared by the catalog handlers.
func (h *catalogHandler) writeError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
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
