package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hotelhq/hotel_folio_app/internal/apperrors"
	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	portsrepo "github.com/hotelhq/hotel_folio_app/internal/core/ports/repositories"
	portssvc "github.com/hotelhq/hotel_folio_app/internal/core/ports/services"
	"github.com/hotelhq/hotel_folio_app/internal/dto"
	"github.com/hotelhq/hotel_folio_app/internal/utils/billing"
)

var (
	ErrFolioClosed     = errors.New("folio is closed")
	ErrFolioNotSettled = errors.New("folio balance is not settled")
	ErrRoomUnavailable = errors.New("room is not available for check-in")
	ErrEntryNotInFolio = errors.New("entry does not belong to this folio")
)

// folioService implements the FolioSvcFacade interface
type folioService struct {
	BaseService
	folioRepo portsrepo.FolioRepositoryFacade
	roomSvc   portssvc.RoomSvcFacade
}

// FolioServiceOption is a functional option for configuring the folio service
type FolioServiceOption func(*folioService)

// WithRoomService adds the room service dependency
func WithRoomService(svc portssvc.RoomSvcFacade) FolioServiceOption {
	return func(s *folioService) {
		s.roomSvc = svc
	}
}

// WithFolioRoleAuthorizer adds the role authorizer dependency
func WithFolioRoleAuthorizer(authorizer portssvc.RoleAuthorizerSvc) FolioServiceOption {
	return func(s *folioService) {
		s.RoleAuthorizer = authorizer
	}
}

// NewFolioService creates a new folio service with the provided options
func NewFolioService(folioRepo portsrepo.FolioRepositoryFacade, options ...FolioServiceOption) portssvc.FolioSvcFacade {
	svc := &folioService{
		folioRepo: folioRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure folioService implements the FolioSvcFacade interface
var _ portssvc.FolioSvcFacade = (*folioService)(nil)

// OpenFolio checks a guest in: it creates the folio, posts the first night's
// room charge, and marks the room occupied, all in one repository transaction.
func (s *folioService) OpenFolio(ctx context.Context, req dto.OpenFolioRequest, creatorUserID string) (*domain.Folio, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, domain.RoleReceptionist); err != nil {
		s.LogError(ctx, err, "User not authorized to open folio", slog.String("user_id", creatorUserID))
		return nil, err
	}

	room, err := s.roomSvc.GetRoom(ctx, req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to find room %s: %w", req.RoomID, err)
	}
	if !room.IsActive || room.Status != domain.RoomAvailable {
		return nil, fmt.Errorf("%w: room %s is %s", ErrRoomUnavailable, room.Name, room.Status)
	}

	roomType, err := s.roomSvc.GetRoomType(ctx, room.RoomTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find room type for room %s: %w", req.RoomID, err)
	}

	if open, err := s.folioRepo.FindOpenFolioByRoomID(ctx, req.RoomID); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for open folio on room %s: %w", req.RoomID, err)
	} else if open != nil {
		return nil, fmt.Errorf("%w: room already has open folio %s", ErrRoomUnavailable, open.FolioID)
	}

	now := time.Now().UTC()
	checkIn := now
	if req.CheckInDate != nil {
		checkIn = req.CheckInDate.UTC()
	}

	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	folio := domain.Folio{
		FolioID:      uuid.NewString(),
		CustomerName: req.CustomerName,
		RoomID:       room.RoomID,
		RoomName:     room.Name,
		RoomTypeName: roomType.Name,
		RoomRate:     roomType.NightlyRate,
		CheckInDate:  checkIn,
		Status:       domain.FolioOpen,
		AuditFields:  audit,
	}

	// First night accrues at check-in; remaining nights accrue at close.
	roomCharge, err := domain.NewChargeEntry(domain.KindRoomCharge, "Room "+room.Name+" night 1", roomType.NightlyRate, checkIn, creatorUserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	roomCharge.FolioID = folio.FolioID
	roomCharge.AuditFields = audit

	if err := s.folioRepo.SaveFolio(ctx, folio, []domain.LedgerEntry{roomCharge}); err != nil {
		s.LogError(ctx, err, "Failed to save folio", slog.String("room_id", req.RoomID))
		return nil, fmt.Errorf("failed to save folio: %w", err)
	}

	s.LogInfo(ctx, "Folio opened", slog.String("folio_id", folio.FolioID), slog.String("room_id", room.RoomID))
	return &folio, nil
}

// GetFolio retrieves a folio by ID, without its entries.
func (s *folioService) GetFolio(ctx context.Context, folioID string) (*domain.Folio, error) {
	folio, err := s.folioRepo.FindFolioByID(ctx, folioID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find folio by ID", slog.String("folio_id", folioID))
		}
		return nil, fmt.Errorf("failed to find folio %s: %w", folioID, err)
	}
	return folio, nil
}

// ListFolios retrieves a paginated list of folios.
func (s *folioService) ListFolios(ctx context.Context, params dto.ListFoliosParams) ([]domain.Folio, *string, error) {
	var status *domain.FolioStatus
	if params.Status != "" {
		st := domain.FolioStatus(params.Status)
		status = &st
	}
	var nextToken *string
	if params.NextToken != "" {
		nextToken = &params.NextToken
	}
	folios, next, err := s.folioRepo.ListFolios(ctx, status, params.Limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list folios")
		return nil, nil, fmt.Errorf("failed to retrieve folios: %w", err)
	}
	return folios, next, nil
}

// ListEntries retrieves a paginated list of a folio's ledger entries.
func (s *folioService) ListEntries(ctx context.Context, folioID string, params dto.ListEntriesParams) ([]domain.LedgerEntry, *string, error) {
	if _, err := s.folioRepo.FindFolioByID(ctx, folioID); err != nil {
		return nil, nil, fmt.Errorf("failed to find folio %s: %w", folioID, err)
	}
	var nextToken *string
	if params.NextToken != "" {
		nextToken = &params.NextToken
	}
	entries, next, err := s.folioRepo.ListEntriesByFolioID(ctx, folioID, params.IncludeVoided, params.Limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list folio entries", slog.String("folio_id", folioID))
		return nil, nil, fmt.Errorf("failed to retrieve entries: %w", err)
	}
	return entries, next, nil
}

// GetTotals recomputes the folio's totals from its non-voided entries.
// Totals are never stored; this is always a fresh computation.
func (s *folioService) GetTotals(ctx context.Context, folioID string) (*domain.FolioTotals, error) {
	if _, err := s.folioRepo.FindFolioByID(ctx, folioID); err != nil {
		return nil, fmt.Errorf("failed to find folio %s: %w", folioID, err)
	}
	entries, err := s.folioRepo.FindEntriesByFolioID(ctx, folioID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch entries for totals", slog.String("folio_id", folioID))
		return nil, fmt.Errorf("failed to retrieve entries for folio %s: %w", folioID, err)
	}
	totals, err := billing.ComputeTotals(entries)
	if err != nil {
		s.LogError(ctx, err, "Stored entries failed validation", slog.String("folio_id", folioID))
		return nil, fmt.Errorf("failed to compute totals for folio %s: %w", folioID, err)
	}
	return &totals, nil
}

// PostCharge appends a charge entry to an open folio.
func (s *folioService) PostCharge(ctx context.Context, folioID string, req dto.PostChargeRequest, creatorUserID string) (*domain.LedgerEntry, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, domain.RoleReceptionist); err != nil {
		return nil, err
	}

	folio, err := s.requireOpenFolio(ctx, folioID)
	if err != nil {
		return nil, err
	}

	occurredAt := time.Now().UTC()
	if req.OccurredAt != nil {
		occurredAt = req.OccurredAt.UTC()
	}

	entry, err := domain.NewChargeEntry(req.Kind, req.Description, req.Amount, occurredAt, creatorUserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	if req.Quantity != nil && req.UnitPrice != nil {
		entry, err = entry.WithItemization(*req.Quantity, *req.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
	}

	return s.saveEntry(ctx, folio, entry, creatorUserID)
}

// PostPayment appends a payment or refund entry to an open folio.
func (s *folioService) PostPayment(ctx context.Context, folioID string, req dto.PostPaymentRequest, creatorUserID string) (*domain.LedgerEntry, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, domain.RoleReceptionist); err != nil {
		return nil, err
	}

	folio, err := s.requireOpenFolio(ctx, folioID)
	if err != nil {
		return nil, err
	}

	occurredAt := time.Now().UTC()
	if req.OccurredAt != nil {
		occurredAt = req.OccurredAt.UTC()
	}

	entry, err := domain.NewPaymentEntry(req.Kind, req.Amount, occurredAt, creatorUserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	entry.Description = string(req.Kind)

	return s.saveEntry(ctx, folio, entry, creatorUserID)
}

// VoidEntry marks an entry voided without altering its amounts. The voided
// entry stays on the folio for the audit trail; only totals stop counting it.
func (s *folioService) VoidEntry(ctx context.Context, folioID string, entryID string, reason string, requestingUserID string) (*domain.LedgerEntry, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, domain.RoleReceptionist); err != nil {
		return nil, err
	}

	if _, err := s.requireOpenFolio(ctx, folioID); err != nil {
		return nil, err
	}

	entry, err := s.folioRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	if entry.FolioID != folioID {
		return nil, fmt.Errorf("%w: entry %s", ErrEntryNotInFolio, entryID)
	}

	voided, err := entry.Void(reason, requestingUserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	now := time.Now().UTC()
	voided.LastUpdatedAt = now
	voided.LastUpdatedBy = requestingUserID

	if err := s.folioRepo.UpdateEntryVoid(ctx, voided); err != nil {
		s.LogError(ctx, err, "Failed to void entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to void entry %s: %w", entryID, err)
	}

	s.LogInfo(ctx, "Entry voided", slog.String("folio_id", folioID), slog.String("entry_id", entryID), slog.String("reason", reason))
	return &voided, nil
}

// CloseFolio transitions an open folio to CLOSED. Room nights not yet posted
// accrue first so the ledger covers the whole stay, then a non-zero balance is
// rejected unless force is set, which requires the MANAGER role. The
// repository frees the room in the same transaction.
func (s *folioService) CloseFolio(ctx context.Context, folioID string, force bool, requestingUserID string) (*domain.Folio, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, domain.RoleReceptionist); err != nil {
		return nil, err
	}

	folio, err := s.requireOpenFolio(ctx, folioID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entries, err := s.folioRepo.FindEntriesByFolioID(ctx, folioID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch entries for close", slog.String("folio_id", folioID))
		return nil, fmt.Errorf("failed to retrieve entries for folio %s: %w", folioID, err)
	}
	entries, err = s.accrueRoomNights(ctx, folio, entries, now, requestingUserID)
	if err != nil {
		return nil, err
	}

	totals, err := billing.ComputeTotals(entries)
	if err != nil {
		s.LogError(ctx, err, "Stored entries failed validation", slog.String("folio_id", folioID))
		return nil, fmt.Errorf("failed to compute totals for folio %s: %w", folioID, err)
	}
	if !totals.Settled() {
		if !force {
			return nil, fmt.Errorf("%w: balance is %s", ErrFolioNotSettled, totals.Balance.String())
		}
		if err := s.AuthorizeUser(ctx, requestingUserID, domain.RoleManager); err != nil {
			s.LogError(ctx, err, "Force close requires manager role", slog.String("user_id", requestingUserID), slog.String("folio_id", folioID))
			return nil, err
		}
		s.LogInfo(ctx, "Folio force-closed with outstanding balance",
			slog.String("folio_id", folioID),
			slog.String("balance", totals.Balance.String()),
			slog.String("user_id", requestingUserID))
	}

	if err := s.folioRepo.UpdateFolioStatus(ctx, folioID, domain.FolioClosed, &now, requestingUserID, now); err != nil {
		s.LogError(ctx, err, "Failed to close folio", slog.String("folio_id", folioID))
		return nil, fmt.Errorf("failed to close folio %s: %w", folioID, err)
	}

	folio.Status = domain.FolioClosed
	folio.CheckOutDate = &now
	folio.LastUpdatedAt = now
	folio.LastUpdatedBy = requestingUserID

	s.LogInfo(ctx, "Folio closed", slog.String("folio_id", folioID))
	return folio, nil
}

// BuildCheckoutSummary assembles the printable summary for a folio. Closed
// folios always produce the identical summary on reprint: every input comes
// from stored state and the receipt id derives from the folio id.
func (s *folioService) BuildCheckoutSummary(ctx context.Context, folioID string) (*domain.CheckoutSummary, error) {
	folio, err := s.folioRepo.FindFolioByID(ctx, folioID)
	if err != nil {
		return nil, fmt.Errorf("failed to find folio %s: %w", folioID, err)
	}
	entries, err := s.folioRepo.FindEntriesByFolioID(ctx, folioID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve entries for folio %s: %w", folioID, err)
	}

	checkOut := time.Now().UTC()
	if folio.CheckOutDate != nil {
		checkOut = *folio.CheckOutDate
	}
	nights := folio.Nights(checkOut)

	entries = billing.SortEntriesByTime(entries)
	summary, err := billing.BuildSummary(*folio, folio.RoomRate, nights,
		domain.ServiceItems(entries),
		domain.PenaltyItems(entries),
		domain.SurchargeItems(entries),
	)
	if err != nil {
		s.LogError(ctx, err, "Failed to build checkout summary", slog.String("folio_id", folioID))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return &summary, nil
}

// AddAdHocCharge posts a late charge to the folio and returns the summary
// rebuilt with it included, recomputing only the affected sub-total.
func (s *folioService) AddAdHocCharge(ctx context.Context, folioID string, req dto.AddAdHocChargeRequest, creatorUserID string) (*domain.CheckoutSummary, error) {
	summary, err := s.BuildCheckoutSummary(ctx, folioID)
	if err != nil {
		return nil, err
	}

	if _, err := s.PostCharge(ctx, folioID, dto.PostChargeRequest{
		Kind:        req.Kind,
		Description: req.Description,
		Amount:      req.Amount,
	}, creatorUserID); err != nil {
		return nil, err
	}

	updated, err := billing.AddAdHocCharge(*summary, req.Kind, req.Description, req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return &updated, nil
}

// accrueRoomNights posts room charges for every night of the stay that has no
// entry yet, so a multi-night folio is fully charged by checkout. Night 1 is
// posted at check-in; the rest accrue here. Returns the entries with the new
// charges appended.
func (s *folioService) accrueRoomNights(ctx context.Context, folio *domain.Folio, entries []domain.LedgerEntry, checkOut time.Time, creatorUserID string) ([]domain.LedgerEntry, error) {
	posted := 0
	for _, e := range entries {
		if e.Kind == domain.KindRoomCharge && !e.Voided {
			posted++
		}
	}

	for night := posted + 1; night <= folio.Nights(checkOut); night++ {
		description := fmt.Sprintf("Room %s night %d", folio.RoomName, night)
		occurredAt := folio.CheckInDate.UTC().AddDate(0, 0, night-1)
		charge, err := domain.NewChargeEntry(domain.KindRoomCharge, description, folio.RoomRate, occurredAt, creatorUserID)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
		saved, err := s.saveEntry(ctx, folio, charge, creatorUserID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *saved)
	}
	return entries, nil
}

// requireOpenFolio fetches a folio and rejects writes against closed ones.
func (s *folioService) requireOpenFolio(ctx context.Context, folioID string) (*domain.Folio, error) {
	folio, err := s.folioRepo.FindFolioByID(ctx, folioID)
	if err != nil {
		return nil, fmt.Errorf("failed to find folio %s: %w", folioID, err)
	}
	if folio.Status != domain.FolioOpen {
		return nil, fmt.Errorf("%w: folio %s", ErrFolioClosed, folioID)
	}
	return folio, nil
}

// saveEntry stamps audit fields on a constructed entry and persists it.
func (s *folioService) saveEntry(ctx context.Context, folio *domain.Folio, entry domain.LedgerEntry, creatorUserID string) (*domain.LedgerEntry, error) {
	now := time.Now().UTC()
	entry.FolioID = folio.FolioID
	entry.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	if err := s.folioRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save ledger entry", slog.String("folio_id", folio.FolioID), slog.String("kind", string(entry.Kind)))
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	s.LogInfo(ctx, "Entry posted",
		slog.String("folio_id", folio.FolioID),
		slog.String("entry_id", entry.EntryID),
		slog.String("kind", string(entry.Kind)),
		slog.String("amount", entry.Amount().String()))
	return &entry, nil
}
