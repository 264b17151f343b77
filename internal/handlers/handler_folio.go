package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hotelhq/hotel_folio_app/internal/apperrors"
	portssvc "github.com/hotelhq/hotel_folio_app/internal/core/ports/services"
	"github.com/hotelhq/hotel_folio_app/internal/core/services"
	"github.com/hotelhq/hotel_folio_app/internal/dto"
	"github.com/hotelhq/hotel_folio_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// folioHandler handles HTTP requests related to folios and their ledger entries.
type folioHandler struct {
	folioService portssvc.FolioSvcFacade
}

// newFolioHandler creates a new folioHandler.
func newFolioHandler(fs portssvc.FolioSvcFacade) *folioHandler {
	return &folioHandler{
		folioService: fs,
	}
}

// RegisterFolioRoutes registers routes related to folios.
func RegisterFolioRoutes(rg *gin.RouterGroup, folioService portssvc.FolioSvcFacade) {
	h := newFolioHandler(folioService)

	folios := rg.Group("/folios")
	{
		folios.POST("", h.openFolio)
		folios.GET("", h.listFolios)
		folios.GET("/:folio_id", h.getFolio)
		folios.GET("/:folio_id/entries", h.listEntries)
		folios.POST("/:folio_id/charges", h.postCharge)
		folios.POST("/:folio_id/payments", h.postPayment)
		folios.POST("/:folio_id/entries/:entry_id/void", h.voidEntry)
		folios.GET("/:folio_id/totals", h.getTotals)
		folios.POST("/:folio_id/close", h.closeFolio)
		folios.GET("/:folio_id/checkout-summary", h.getCheckoutSummary)
		folios.POST("/:folio_id/checkout-summary/charges", h.addAdHocCharge)
	}
}

// openFolio godoc
// @Summary Open a folio (guest check-in)
// @Description Creates a folio for a room, posting the first night's room charge and marking the room occupied
// @Tags folios
// @Accept  json
// @Produce  json
// @Param   folio body dto.OpenFolioRequest true "Check-in details"
// @Success 201 {object} dto.FolioResponse
// @Failure 400 {object} map[string]string "Invalid input or room unavailable"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to open folio"
// @Security BearerAuth
// @Router /folios [post]
func (h *folioHandler) openFolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.OpenFolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for OpenFolio", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to open folio", slog.String("room_id", req.RoomID), slog.String("customer_name", req.CustomerName))

	folio, err := h.folioService.OpenFolio(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomUnavailable):
			logger.Warn("Room unavailable for check-in", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Room not found for check-in", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error opening folio", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to open folio in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open folio"})
		}
		return
	}

	logger.Info("Folio opened successfully", slog.String("folio_id", folio.FolioID))
	c.JSON(http.StatusCreated, dto.ToFolioResponse(folio))
}

// getFolio godoc
// @Summary Get a folio by ID
// @Description Retrieves details for a specific folio
// @Tags folios
// @Produce  json
// @Param   folio_id path string true "Folio ID"
// @Success 200 {object} dto.FolioResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Folio not found"
// @Failure 500 {object} map[string]string "Failed to retrieve folio"
// @Security BearerAuth
// @Router /folios/{folio_id} [get]
func (h *folioHandler) getFolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	folioID := c.Param("folio_id")

	folio, err := h.folioService.GetFolio(c.Request.Context(), folioID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Folio not found"})
		} else {
			logger.Error("Failed to get folio from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve folio"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFolioResponse(folio))
}

// listFolios godoc
// @Summary List folios
// @Description Retrieves a paginated list of folios, optionally filtered by status
// @Tags folios
// @Produce  json
// @Param   status query string false "Filter by status (OPEN or CLOSED)"
// @Param   limit query int false "Limit number of results" default(20)
// @Param   nextToken query string false "Pagination token from a previous response"
// @Success 200 {object} dto.ListFoliosResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list folios"
// @Security BearerAuth
// @Router /folios [get]
func (h *folioHandler) listFolios(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListFoliosParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListFolios", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	folios, nextToken, err := h.folioService.ListFolios(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list folios from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list folios"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListFoliosResponse(folios, nextToken))
}

// listEntries godoc
// @Summary List a folio's ledger entries
// @Description Retrieves a paginated list of a folio's entries in posting order
// @Tags folios
// @Produce  json
// @Param   folio_id path string true "Folio ID"
// @Param   includeVoided query bool false "Include voided entries" default(true)
// @Param   limit query int false "Limit number of results" default(50)
// @Param   nextToken query string false "Pagination token from a previous response"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Folio not found"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Security BearerAuth
// @Router /folios/{folio_id}/entries [get]
func (h *folioHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	folioID := c.Param("folio_id")

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, nextToken, err := h.folioService.ListEntries(c.Request.Context(), folioID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Folio not found"})
		} else {
			logger.Error("Failed to list entries from service", slog.String("error", err.Error()), slog.String("folio_id", folioID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListEntriesResponse{Entries: dto.ToLedgerEntryResponses(entries), NextToken: nextToken})
}

// postCharge godoc
// @Summary Post a charge entry
// @Description Appends a charge (room, service, penalty or surcharge) to an open folio
// @Tags folios
// @Accept  json
// @Produce  json
// @Param   folio_id path string true "Folio ID"
// @Param   charge body dto.PostChargeRequest true "Charge details"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Folio not found"
// @Failure 409 {object} map[string]string "Folio is closed"
// @Failure 500 {object} map[string]string "Failed to post charge"
// @Security BearerAuth
// @Router /folios/{folio_id}/charges [post]
func (h *folioHandler) postCharge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	folioID := c.Param("folio_id")

	var req dto.PostChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostCharge", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.folioService.PostCharge(c.Request.Context(), folioID, req, creatorUserID)
	if err != nil {
		h.writeEntryError(c, logger, err, "Failed to post charge")
		return
	}

	logger.Info("Charge posted", slog.String("folio_id", folioID), slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}

// postPayment godoc
// @Summary Post a payment or refund entry
// @Description Appends a payment or refund to an open folio
// @Tags folios
// @Accept  json
// @Produce  json
// @Param   folio_id path string true "Folio ID"
// @Param   payment body dto.PostPaymentRequest true "Payment details"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Folio not found"
// @Failure 409 {object} map[string]string "Folio is closed"
// @Failure 500 {object} map[string]string "Failed to post payment"
// @Security BearerAuth
// @Router /folios/{folio_id}/payments [post]
func (h *folioHandler) postPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	folioID := c.Param("folio_id")

	var req dto.PostPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.folioService.PostPayment(c.Request.Context(), folioID, req, creatorUserID)
	if err != nil {
		h.writeEntryError(c, logger, err, "Failed to post payment")
		return
	}

	logger.Info("Payment posted", slog.String("folio_id", folioID), slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}

// voidEntry godoc
// @Summary Void a ledger entry
// @Description Marks an entry voided with a reason; amounts are never altered and the entry stays on the folio
// @Tags folios
// @Accept  json
// @Produce  json
// @Param   folio_id path string true "Folio ID"
// @Param   entry_id path string true "Entry ID"
// @Param   void body dto.VoidEntryRequest true "Void reason"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid input or entry already voided"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Folio or entry not found"
// @Failure 409 {object} map[string]string "Folio is closed"
// @Failure 500 {object} map[string]string "Failed to void entry"
// @Security BearerAuth
// @Router /folios/{folio_id}/entries/{entry_id}/void [post]
func (h *folioHandler) voidEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	folioID := c.Param("folio_id")
	entryID := c.Param("entry_id")

	var req dto.VoidEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for VoidEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.folioService.VoidEntry(c.Request.Context(), folioID, entryID, req.Reason, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Folio or entry not found"})
		case errors.Is(err, services.ErrEntryNotInFolio):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrFolioClosed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error voiding entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to void entry in service", slog.String("error", err.Error()), slog.String("entry_id", entryID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to void entry"})
		}
		return
	}

	logger.Info("Entry voided", slog.String("folio_id", folioID), slog.String("entry_id", entryID))
	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}

// getTotals godoc
// @Summary Get folio totals
// @Description Recomputes the folio's debit/credit totals and balance from its non-voided entries
// @Tags folios
// @Produce  json
// @Param   folio_id path string true "Folio ID"
// @Success 200 {object} dto.FolioTotalsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Folio not found"
// @Failure 500 {object} map[string]string "Failed to compute totals"
// @Security BearerAuth
// @Router /folios/{folio_id}/totals [get]
func (h *folioHandler) getTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	folioID := c.Param("folio_id")

	totals, err := h.folioService.GetTotals(c.Request.Context(), folioID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Folio not found"})
		} else {
			logger.Error("Failed to compute folio totals", slog.String("error", err.Error()), slog.String("folio_id", folioID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute totals"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFolioTotalsResponse(folioID, *totals))
}

// closeFolio godoc
// @Summary Close a folio (guest check-out)
// @Description Transitions an open folio to CLOSED and frees the room. A non-zero balance is rejected unless force is set, which requires the manager role
// @Tags folios
// @Accept  json
// @Produce  json
// @Param   folio_id path string true "Folio ID"
// @Param   close body dto.CloseFolioRequest false "Close options"
// @Success 200 {object} dto.FolioResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Force close requires manager role"
// @Failure 404 {object} map[string]string "Folio not found"
// @Failure 409 {object} map[string]string "Folio already closed or balance outstanding"
// @Failure 500 {object} map[string]string "Failed to close folio"
// @Security BearerAuth
// @Router /folios/{folio_id}/close [post]
func (h *folioHandler) closeFolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	folioID := c.Param("folio_id")

	var req dto.CloseFolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CloseFolio", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("folio_id", folioID), slog.String("user_id", requestingUserID))
	logger.Info("Received request to close folio", slog.Bool("force", req.Force))

	folio, err := h.folioService.CloseFolio(c.Request.Context(), folioID, req.Force, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Folio not found"})
		case errors.Is(err, services.ErrFolioClosed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrFolioNotSettled):
			logger.Warn("Close rejected, balance outstanding", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrForbidden):
			logger.Warn("Force close forbidden", slog.String("error", err.Error()))
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to close folio in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close folio"})
		}
		return
	}

	logger.Info("Folio closed successfully")
	c.JSON(http.StatusOK, dto.ToFolioResponse(folio))
}

// getCheckoutSummary godoc
// @Summary Get the checkout summary for a folio
// @Description Assembles the printable checkout summary. Reprinting a closed folio yields an identical document
// @Tags folios
// @Produce  json
// @Param   folio_id path string true "Folio ID"
// @Success 200 {object} dto.CheckoutSummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Folio not found"
// @Failure 500 {object} map[string]string "Failed to build checkout summary"
// @Security BearerAuth
// @Router /folios/{folio_id}/checkout-summary [get]
func (h *folioHandler) getCheckoutSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	folioID := c.Param("folio_id")

	summary, err := h.folioService.BuildCheckoutSummary(c.Request.Context(), folioID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Folio not found"})
		} else {
			logger.Error("Failed to build checkout summary", slog.String("error", err.Error()), slog.String("folio_id", folioID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build checkout summary"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckoutSummaryResponse(summary))
}

// addAdHocCharge godoc
// @Summary Add an ad-hoc charge to the checkout summary
// @Description Posts a late charge to the folio and returns the checkout summary rebuilt with it included
// @Tags folios
// @Accept  json
// @Produce  json
// @Param   folio_id path string true "Folio ID"
// @Param   charge body dto.AddAdHocChargeRequest true "Charge details"
// @Success 200 {object} dto.CheckoutSummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Folio not found"
// @Failure 409 {object} map[string]string "Folio is closed"
// @Failure 500 {object} map[string]string "Failed to add charge"
// @Security BearerAuth
// @Router /folios/{folio_id}/checkout-summary/charges [post]
func (h *folioHandler) addAdHocCharge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	folioID := c.Param("folio_id")

	var req dto.AddAdHocChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddAdHocCharge", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, err := h.folioService.AddAdHocCharge(c.Request.Context(), folioID, req, creatorUserID)
	if err != nil {
		h.writeEntryError(c, logger, err, "Failed to add charge")
		return
	}

	logger.Info("Ad-hoc charge added to checkout summary", slog.String("folio_id", folioID), slog.String("description", req.Description))
	c.JSON(http.StatusOK, dto.ToCheckoutSummaryResponse(summary))
}

// writeEntryError maps posting errors shared by the charge and payment paths.
func (h *folioHandler) writeEntryError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Folio not found"})
	case errors.Is(err, services.ErrFolioClosed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error posting entry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
