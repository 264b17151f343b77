package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/hotelhq/hotel_folio_app/internal/apperrors"
	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	portsrepo "github.com/hotelhq/hotel_folio_app/internal/core/ports/repositories"
	portssvc "github.com/hotelhq/hotel_folio_app/internal/core/ports/services"
	"github.com/hotelhq/hotel_folio_app/internal/core/services"
	"github.com/hotelhq/hotel_folio_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock FolioRepository ---
type MockFolioRepository struct {
	mock.Mock
}

// Ensure MockFolioRepository implements portsrepo.FolioRepositoryFacade
var _ portsrepo.FolioRepositoryFacade = (*MockFolioRepository)(nil)

func (m *MockFolioRepository) FindFolioByID(ctx context.Context, folioID string) (*domain.Folio, error) {
	args := m.Called(ctx, folioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folio), args.Error(1)
}

func (m *MockFolioRepository) FindOpenFolioByRoomID(ctx context.Context, roomID string) (*domain.Folio, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folio), args.Error(1)
}

func (m *MockFolioRepository) ListFolios(ctx context.Context, status *domain.FolioStatus, limit int, nextToken *string) ([]domain.Folio, *string, error) {
	args := m.Called(ctx, status, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Folio), returnedNextToken, args.Error(2)
}

func (m *MockFolioRepository) SaveFolio(ctx context.Context, folio domain.Folio, entries []domain.LedgerEntry) error {
	args := m.Called(ctx, folio, entries)
	return args.Error(0)
}

func (m *MockFolioRepository) UpdateFolioStatus(ctx context.Context, folioID string, status domain.FolioStatus, checkOutDate *time.Time, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, folioID, status, checkOutDate, updatedByUserID, updatedAt)
	return args.Error(0)
}

func (m *MockFolioRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockFolioRepository) FindEntriesByFolioID(ctx context.Context, folioID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, folioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockFolioRepository) ListEntriesByFolioID(ctx context.Context, folioID string, includeVoided bool, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, folioID, includeVoided, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.LedgerEntry), returnedNextToken, args.Error(2)
}

func (m *MockFolioRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockFolioRepository) UpdateEntryVoid(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Mock RoomService (as used by FolioService) ---
type MockRoomService struct {
	mock.Mock
}

var _ portssvc.RoomSvcFacade = (*MockRoomService)(nil)

func (m *MockRoomService) CreateRoomType(ctx context.Context, req dto.CreateRoomTypeRequest, creatorUserID string) (*domain.RoomType, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomType), args.Error(1)
}

func (m *MockRoomService) UpdateRoomType(ctx context.Context, roomTypeID string, req dto.UpdateRoomTypeRequest, requestingUserID string) (*domain.RoomType, error) {
	args := m.Called(ctx, roomTypeID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomType), args.Error(1)
}

func (m *MockRoomService) GetRoomType(ctx context.Context, roomTypeID string) (*domain.RoomType, error) {
	args := m.Called(ctx, roomTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomType), args.Error(1)
}

func (m *MockRoomService) ListRoomTypes(ctx context.Context, includeInactive bool) ([]domain.RoomType, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoomType), args.Error(1)
}

func (m *MockRoomService) CreateRoom(ctx context.Context, req dto.CreateRoomRequest, creatorUserID string) (*domain.Room, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomService) UpdateRoom(ctx context.Context, roomID string, req dto.UpdateRoomRequest, requestingUserID string) (*domain.Room, error) {
	args := m.Called(ctx, roomID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomService) GetRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomService) ListRooms(ctx context.Context, params dto.ListRoomsParams) ([]domain.Room, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

// --- Mock RoleAuthorizer ---
type MockRoleAuthorizer struct {
	mock.Mock
}

var _ portssvc.RoleAuthorizerSvc = (*MockRoleAuthorizer)(nil)

func (m *MockRoleAuthorizer) AuthorizeUserAction(ctx context.Context, userID string, requiredRole domain.StaffRole) error {
	args := m.Called(ctx, userID, requiredRole)
	return args.Error(0)
}

// --- Test Suite Setup ---
type FolioServiceTestSuite struct {
	suite.Suite
	mockFolioRepo  *MockFolioRepository
	mockRoomSvc    *MockRoomService
	mockAuthorizer *MockRoleAuthorizer
	service        portssvc.FolioSvcFacade
	room           domain.Room
	roomType       domain.RoomType
	folio          domain.Folio
	userID         string
}

func (suite *FolioServiceTestSuite) SetupTest() {
	suite.mockFolioRepo = new(MockFolioRepository)
	suite.mockRoomSvc = new(MockRoomService)
	suite.mockAuthorizer = new(MockRoleAuthorizer)
	suite.service = services.NewFolioService(
		suite.mockFolioRepo,
		services.WithRoomService(suite.mockRoomSvc),
		services.WithFolioRoleAuthorizer(suite.mockAuthorizer),
	)

	suite.userID = uuid.NewString()

	suite.roomType = domain.RoomType{
		RoomTypeID:  uuid.NewString(),
		Name:        "Deluxe Double",
		NightlyRate: decimal.NewFromInt(650000),
		Capacity:    2,
		IsActive:    true,
	}
	suite.room = domain.Room{
		RoomID:     uuid.NewString(),
		Name:       "P.301",
		RoomTypeID: suite.roomType.RoomTypeID,
		Status:     domain.RoomAvailable,
		Floor:      3,
		IsActive:   true,
	}
	suite.folio = domain.Folio{
		FolioID:      uuid.NewString(),
		CustomerName: "Nguyen Van A",
		RoomID:       suite.room.RoomID,
		RoomName:     suite.room.Name,
		RoomTypeName: suite.roomType.Name,
		RoomRate:     suite.roomType.NightlyRate,
		CheckInDate:  time.Now().UTC().Add(-48 * time.Hour),
		Status:       domain.FolioOpen,
	}
}

// --- OpenFolio ---

func (suite *FolioServiceTestSuite) TestOpenFolio_Success() {
	ctx := context.Background()
	req := dto.OpenFolioRequest{CustomerName: "Nguyen Van A", RoomID: suite.room.RoomID}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleReceptionist).Return(nil).Once()
	suite.mockRoomSvc.On("GetRoom", ctx, suite.room.RoomID).Return(&suite.room, nil).Once()
	suite.mockRoomSvc.On("GetRoomType", ctx, suite.roomType.RoomTypeID).Return(&suite.roomType, nil).Once()
	suite.mockFolioRepo.On("FindOpenFolioByRoomID", ctx, suite.room.RoomID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockFolioRepo.On("SaveFolio", ctx, mock.AnythingOfType("domain.Folio"), mock.AnythingOfType("[]domain.LedgerEntry")).Return(nil).Once()

	folio, err := suite.service.OpenFolio(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(folio)
	suite.NotEmpty(folio.FolioID)
	suite.Equal(domain.FolioOpen, folio.Status)
	suite.Equal(suite.room.RoomID, folio.RoomID)
	suite.True(folio.RoomRate.Equal(suite.roomType.NightlyRate))
	suite.Equal(suite.userID, folio.CreatedBy)

	// The first night's room charge is persisted with the folio.
	savedEntries := suite.mockFolioRepo.Calls[1].Arguments.Get(2).([]domain.LedgerEntry)
	suite.Require().Len(savedEntries, 1)
	suite.Equal(domain.KindRoomCharge, savedEntries[0].Kind)
	suite.True(savedEntries[0].Debit.Equal(suite.roomType.NightlyRate))
	suite.Equal(folio.FolioID, savedEntries[0].FolioID)

	suite.mockAuthorizer.AssertExpectations(suite.T())
	suite.mockRoomSvc.AssertExpectations(suite.T())
	suite.mockFolioRepo.AssertExpectations(suite.T())
}

func (suite *FolioServiceTestSuite) TestOpenFolio_RoomOccupied() {
	ctx := context.Background()
	occupied := suite.room
	occupied.Status = domain.RoomOccupied

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleReceptionist).Return(nil).Once()
	suite.mockRoomSvc.On("GetRoom", ctx, suite.room.RoomID).Return(&occupied, nil).Once()

	_, err := suite.service.OpenFolio(ctx, dto.OpenFolioRequest{CustomerName: "G", RoomID: suite.room.RoomID}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrRoomUnavailable)
	suite.mockFolioRepo.AssertNotCalled(suite.T(), "SaveFolio", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FolioServiceTestSuite) TestOpenFolio_RoomAlreadyHasOpenFolio() {
	ctx := context.Background()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleReceptionist).Return(nil).Once()
	suite.mockRoomSvc.On("GetRoom", ctx, suite.room.RoomID).Return(&suite.room, nil).Once()
	suite.mockRoomSvc.On("GetRoomType", ctx, suite.roomType.RoomTypeID).Return(&suite.roomType, nil).Once()
	suite.mockFolioRepo.On("FindOpenFolioByRoomID", ctx, suite.room.RoomID).Return(&suite.folio, nil).Once()

	_, err := suite.service.OpenFolio(ctx, dto.OpenFolioRequest{CustomerName: "G", RoomID: suite.room.RoomID}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrRoomUnavailable)
	suite.mockFolioRepo.AssertNotCalled(suite.T(), "SaveFolio", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FolioServiceTestSuite) TestOpenFolio_AuthorizationFail() {
	ctx := context.Background()
	authErr := apperrors.ErrForbidden

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleReceptionist).Return(authErr).Once()

	_, err := suite.service.OpenFolio(ctx, dto.OpenFolioRequest{CustomerName: "G", RoomID: suite.room.RoomID}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, authErr)
	suite.mockRoomSvc.AssertNotCalled(suite.T(), "GetRoom", mock.Anything, mock.Anything)
}

// --- PostCharge / PostPayment ---

func (suite *FolioServiceTestSuite) TestPostCharge_Success() {
	ctx := context.Background()
	req := dto.PostChargeRequest{
		Kind:        domain.KindServiceCharge,
		Description: "Laundry",
		Amount:      decimal.NewFromInt(90000),
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleReceptionist).Return(nil).Once()
	suite.mockFolioRepo.On("FindFolioByID", ctx, suite.folio.FolioID).Return(&suite.folio, nil).Once()
	suite.mockFolioRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()

	entry, err := suite.service.PostCharge(ctx, suite.folio.FolioID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(domain.KindServiceCharge, entry.Kind)
	suite.Equal(suite.folio.FolioID, entry.FolioID)
	suite.True(entry.Debit.Equal(req.Amount))
	suite.True(entry.Credit.IsZero())
	suite.Equal(suite.userID, entry.PostedBy)
	suite.mockFolioRepo.AssertExpectations(suite.T())
}

func (suite *FolioServiceTestSuite) TestPostCharge_Itemized() {
	ctx := context.Background()
	qty := int64(3)
	unitPrice := decimal.NewFromInt(30000)
	req := dto.PostChargeRequest{
		Kind:        domain.KindServiceCharge,
		Description: "Mineral water",
		Amount:      decimal.NewFromInt(90000),
		Quantity:    &qty,
		UnitPrice:   &unitPrice,
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleReceptionist).Return(nil).Once()
	suite.mockFolioRepo.On("FindFolioByID", ctx, suite.folio.FolioID).Return(&suite.folio, nil).Once()
	suite.mockFolioRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()

	entry, err := suite.service.PostCharge(ctx, suite.folio.FolioID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(qty, entry.Quantity)
	suite.True(entry.UnitPrice.Equal(unitPrice))
}

func (suite *FolioServiceTestSuite) TestPostCharge_ItemizationMismatch() {
	ctx := context.Background()
	qty := int64(2)
	unitPrice := decimal.NewFromInt(30000)
	req := dto.PostChargeRequest{
		Kind:        domain.KindServiceCharge,
		Description: "Mineral water",
		Amount:      decimal.NewFromInt(90000), // 2 * 30000 != 90000
		Quantity:    &qty,
		UnitPrice:   &unitPrice,
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleReceptionist).Return(nil).Once()
	suite.mockFolioRepo.On("FindFolioByID", ctx, suite.folio.FolioID).Return(&suite.folio, nil).Once()

	_, err := suite.service.PostCharge(ctx, suite.folio.FolioID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockFolioRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *FolioServiceTestSuite) TestPostCharge_FolioClosed() {
	ctx := context.Background()
	closed := suite.folio
	closed.Status = domain.FolioClosed

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleReceptionist).Return(nil).Once()
	suite.mockFolioRepo.On("FindFolioByID", ctx, closed.FolioID).Return(&closed, nil).Once()

	_, err := suite.service.PostCharge(ctx, closed.FolioID, dto.PostChargeRequest{
		Kind:        domain.KindServiceCharge,
		Description: "Laundry",
		Amount:      decimal.NewFromInt(90000),
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrFolioClosed)
	suite.mockFolioRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *FolioServiceTestSuite) TestPostCharge_PaymentKindRejected() {
	ctx := context.Background()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleReceptionist).Return(nil).Once()
	suite.mockFolioRepo.On("FindFolioByID", ctx, suite.folio.FolioID).Return(&suite.folio, nil).Once()

	_, err := suite.service.PostCharge(ctx, suite.folio.FolioID, dto.PostChargeRequest{
		Kind:        domain.KindPayment,
		Description: "Cash",
		Amount:      decimal.NewFromInt(100000),
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, domain.ErrInvalidKind)
}

func (suite *FolioServiceTestSuite) TestPostPayment_Success() {
	ctx := context.Background()
	req := dto.PostPaymentRequest{Kind: domain.KindPayment, Amount: decimal.NewFromInt(1300000)}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleReceptionist).Return(nil).Once()
	suite.mockFolioRepo.On("FindFolioByID", ctx, suite.folio.FolioID).Return(&suite.folio, nil).Once()
	suite.mockFolioRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()

	entry, err := suite.service.PostPayment(ctx, suite.folio.FolioID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.KindPayment, entry.Kind)
	suite.True(entry.Credit.Equal(req.Amount))
	suite.True(entry.Debit.IsZero())
}

func (suite *FolioServiceTestSuite) TestPostPayment_NonPositiveAmount() {
	ctx := context.Background()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleReceptionist).Return(nil).Once()
	suite.mockFolioRepo.On("FindFolioByID", ctx, suite.folio.FolioID).Return(&suite.folio, nil).Once()

	_, err := suite.service.PostPayment(ctx, suite.folio.FolioID, dto.PostPaymentRequest{
		Kind:   domain.KindPayment,
		Amount: decimal.Zero,
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, domain.ErrInvalidAmount)
}

// --- VoidEntry ---

func (suite *FolioServiceTestSuite) TestVoidEntry_Success() {
	ctx := context.Background()
	entry, err := domain.NewChargeEntry(domain.KindServiceCharge, "Laundry", decimal.NewFromInt(90000), time.Now().UTC(), suite.userID)
	suite.Require().NoError(err)
	entry.FolioID = suite.folio.FolioID

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleReceptionist).Return(nil).Once()
	suite.mockFolioRepo.On("FindFolioByID", ctx, suite.folio.FolioID).Return(&suite.folio, nil).Once()
	suite.mockFolioRepo.On("FindEntryByID", ctx, entry.EntryID).Return(&entry, nil).Once()
	suite.mockFolioRepo.On("UpdateEntryVoid", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()

	voided, err := suite.service.VoidEntry(ctx, suite.folio.FolioID, entry.EntryID, "posted to wrong folio", suite.userID)

	suite.Require().NoError(err)
	suite.True(voided.Voided)
	suite.Equal("posted to wrong folio", voided.VoidReason)
	suite.Equal(suite.userID, voided.VoidedBy)
	// Amounts never change on void.
	suite.True(voided.Debit.Equal(entry.Debit))
	suite.False(entry.Voided) // original is untouched
	suite.mockFolioRepo.AssertExpectations(suite.T())
}

func (suite *FolioServiceTestSuite) TestVoidEntry_WrongFolio() {
	ctx := context.Background()
	entry, err := domain.NewChargeEntry(domain.KindServiceCharge, "Laundry", decimal.NewFromInt(90000), time.Now().UTC(), suite.userID)
	suite.Require().NoError(err)
	entry.FolioID = uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleReceptionist).Return(nil).Once()
	suite.mockFolioRepo.On("FindFolioByID", ctx, suite.folio.FolioID).Return(&suite.folio, nil).Once()
	suite.mockFolioRepo.On("FindEntryByID", ctx, entry.EntryID).Return(&entry, nil).Once()

	_, err = suite.service.VoidEntry(ctx, suite.folio.FolioID, entry.EntryID, "oops", suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrEntryNotInFolio)
	suite.mockFolioRepo.AssertNotCalled(suite.T(), "UpdateEntryVoid", mock.Anything, mock.Anything)
}

func (suite *FolioServiceTestSuite) TestVoidEntry_AlreadyVoided() {
	ctx := context.Background()
	entry, err := domain.NewChargeEntry(domain.KindServiceCharge, "Laundry", decimal.NewFromInt(90000), time.Now().UTC(), suite.userID)
	suite.Require().NoError(err)
	entry.FolioID = suite.folio.FolioID
	entry.Voided = true
	entry.VoidReason = "first void"

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleReceptionist).Return(nil).Once()
	suite.mockFolioRepo.On("FindFolioByID", ctx, suite.folio.FolioID).Return(&suite.folio, nil).Once()
	suite.mockFolioRepo.On("FindEntryByID", ctx, entry.EntryID).Return(&entry, nil).Once()

	_, err = suite.service.VoidEntry(ctx, suite.folio.FolioID, entry.EntryID, "second void", suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, domain.ErrAlreadyVoided)
}

func (suite *FolioServiceTestSuite) TestVoidEntry_BlankReason() {
	ctx := context.Background()
	entry, err := domain.NewChargeEntry(domain.KindServiceCharge, "Laundry", decimal.NewFromInt(90000), time.Now().UTC(), suite.userID)
	suite.Require().NoError(err)
	entry.FolioID = suite.folio.FolioID

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleReceptionist).Return(nil).Once()
	suite.mockFolioRepo.On("FindFolioByID", ctx, suite.folio.FolioID).Return(&suite.folio, nil).Once()
	suite.mockFolioRepo.On("FindEntryByID", ctx, entry.EntryID).Return(&entry, nil).Once()

	_, err = suite.service.VoidEntry(ctx, suite.folio.FolioID, entry.EntryID, "   ", suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, domain.ErrEmptyReason)
}

// --- GetTotals ---

func (suite *FolioServiceTestSuite) TestGetTotals_ExcludesVoided() {
	ctx := context.Background()
	now := time.Now().UTC()

	charge, _ := domain.NewChargeEntry(domain.KindRoomCharge, "Room night 1", decimal.NewFromInt(650000), now, suite.userID)
	voidedCharge, _ := domain.NewChargeEntry(domain.KindServiceCharge, "Laundry", decimal.NewFromInt(90000), now, suite.userID)
	voidedCharge, _ = voidedCharge.Void("wrong folio", suite.userID)
	payment, _ := domain.NewPaymentEntry(domain.KindPayment, decimal.NewFromInt(500000), now, suite.userID)

	suite.mockFolioRepo.On("FindFolioByID", ctx, suite.folio.FolioID).Return(&suite.folio, nil).Once()
	suite.mockFolioRepo.On("FindEntriesByFolioID", ctx, suite.folio.FolioID).Return([]domain.LedgerEntry{charge, voidedCharge, payment}, nil).Once()

	totals, err := suite.service.GetTotals(ctx, suite.folio.FolioID)

	suite.Require().NoError(err)
	suite.True(totals.TotalDebit.Equal(decimal.NewFromInt(650000)), "voided charge must not count")
	suite.True(totals.TotalCredit.Equal(decimal.NewFromInt(500000)))
	suite.True(totals.Balance.Equal(decimal.NewFromInt(150000)))
	suite.True(totals.GuestOwes())
	suite.False(totals.Settled())
}

// --- CloseFolio ---

func (suite *FolioServiceTestSuite) TestCloseFolio_Settled() {
	ctx := context.Background()
	now := time.Now().UTC()
	// The suite folio checked in two days ago: two nights are owed, one is
	// posted, so close accrues the second before checking the balance.
	charge, _ := domain.NewChargeEntry(domain.KindRoomCharge, "Room P.301 night 1", decimal.NewFromInt(650000), suite.folio.CheckInDate, suite.userID)
	payment, _ := domain.NewPaymentEntry(domain.KindPayment, decimal.NewFromInt(1300000), now, suite.userID)

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleReceptionist).Return(nil).Once()
	suite.mockFolioRepo.On("FindFolioByID", ctx, suite.folio.FolioID).Return(&suite.folio, nil).Once()
	suite.mockFolioRepo.On("FindEntriesByFolioID", ctx, suite.folio.FolioID).Return([]domain.LedgerEntry{charge, payment}, nil).Once()
	suite.mockFolioRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()
	suite.mockFolioRepo.On("UpdateFolioStatus", ctx, suite.folio.FolioID, domain.FolioClosed, mock.AnythingOfType("*time.Time"), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	closed, err := suite.service.CloseFolio(ctx, suite.folio.FolioID, false, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.FolioClosed, closed.Status)
	suite.NotNil(closed.CheckOutDate)
	suite.mockFolioRepo.AssertExpectations(suite.T())
}

func (suite *FolioServiceTestSuite) TestCloseFolio_AccruesRemainingNights() {
	ctx := context.Background()
	now := time.Now().UTC()
	charge, _ := domain.NewChargeEntry(domain.KindRoomCharge, "Room P.301 night 1", decimal.NewFromInt(650000), suite.folio.CheckInDate, suite.userID)
	payment, _ := domain.NewPaymentEntry(domain.KindPayment, decimal.NewFromInt(1300000), now, suite.userID)

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleReceptionist).Return(nil).Once()
	suite.mockFolioRepo.On("FindFolioByID", ctx, suite.folio.FolioID).Return(&suite.folio, nil).Once()
	suite.mockFolioRepo.On("FindEntriesByFolioID", ctx, suite.folio.FolioID).Return([]domain.LedgerEntry{charge, payment}, nil).Once()
	suite.mockFolioRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.Kind == domain.KindRoomCharge &&
			e.Description == "Room P.301 night 2" &&
			e.Debit.Equal(decimal.NewFromInt(650000)) &&
			e.FolioID == suite.folio.FolioID
	})).Return(nil).Once()
	suite.mockFolioRepo.On("UpdateFolioStatus", ctx, suite.folio.FolioID, domain.FolioClosed, mock.AnythingOfType("*time.Time"), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	_, err := suite.service.CloseFolio(ctx, suite.folio.FolioID, false, suite.userID)

	// The accrued night settles the ledger against the summary's room total:
	// debits 1,300,000 == credits 1,300,000 so the close goes through.
	suite.Require().NoError(err)
	suite.mockFolioRepo.AssertExpectations(suite.T())
}

func (suite *FolioServiceTestSuite) TestCloseFolio_NotSettled() {
	ctx := context.Background()
	charge, _ := domain.NewChargeEntry(domain.KindRoomCharge, "Room P.301 night 1", decimal.NewFromInt(650000), suite.folio.CheckInDate, suite.userID)

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleReceptionist).Return(nil).Once()
	suite.mockFolioRepo.On("FindFolioByID", ctx, suite.folio.FolioID).Return(&suite.folio, nil).Once()
	suite.mockFolioRepo.On("FindEntriesByFolioID", ctx, suite.folio.FolioID).Return([]domain.LedgerEntry{charge}, nil).Once()
	suite.mockFolioRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()

	_, err := suite.service.CloseFolio(ctx, suite.folio.FolioID, false, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrFolioNotSettled)
	suite.mockFolioRepo.AssertNotCalled(suite.T(), "UpdateFolioStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FolioServiceTestSuite) TestCloseFolio_ForceRequiresManager() {
	ctx := context.Background()
	charge, _ := domain.NewChargeEntry(domain.KindRoomCharge, "Room P.301 night 1", decimal.NewFromInt(650000), suite.folio.CheckInDate, suite.userID)
	forbidden := apperrors.ErrForbidden

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleReceptionist).Return(nil).Once()
	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleManager).Return(forbidden).Once()
	suite.mockFolioRepo.On("FindFolioByID", ctx, suite.folio.FolioID).Return(&suite.folio, nil).Once()
	suite.mockFolioRepo.On("FindEntriesByFolioID", ctx, suite.folio.FolioID).Return([]domain.LedgerEntry{charge}, nil).Once()
	suite.mockFolioRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()

	_, err := suite.service.CloseFolio(ctx, suite.folio.FolioID, true, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, forbidden)
	suite.mockFolioRepo.AssertNotCalled(suite.T(), "UpdateFolioStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FolioServiceTestSuite) TestCloseFolio_ForceByManager() {
	ctx := context.Background()
	charge, _ := domain.NewChargeEntry(domain.KindRoomCharge, "Room P.301 night 1", decimal.NewFromInt(650000), suite.folio.CheckInDate, suite.userID)

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleReceptionist).Return(nil).Once()
	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleManager).Return(nil).Once()
	suite.mockFolioRepo.On("FindFolioByID", ctx, suite.folio.FolioID).Return(&suite.folio, nil).Once()
	suite.mockFolioRepo.On("FindEntriesByFolioID", ctx, suite.folio.FolioID).Return([]domain.LedgerEntry{charge}, nil).Once()
	suite.mockFolioRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()
	suite.mockFolioRepo.On("UpdateFolioStatus", ctx, suite.folio.FolioID, domain.FolioClosed, mock.AnythingOfType("*time.Time"), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	closed, err := suite.service.CloseFolio(ctx, suite.folio.FolioID, true, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.FolioClosed, closed.Status)
	suite.mockAuthorizer.AssertExpectations(suite.T())
}

func (suite *FolioServiceTestSuite) TestCloseFolio_AlreadyClosed() {
	ctx := context.Background()
	closed := suite.folio
	closed.Status = domain.FolioClosed

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleReceptionist).Return(nil).Once()
	suite.mockFolioRepo.On("FindFolioByID", ctx, closed.FolioID).Return(&closed, nil).Once()

	_, err := suite.service.CloseFolio(ctx, closed.FolioID, false, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrFolioClosed)
}

// --- BuildCheckoutSummary ---

func (suite *FolioServiceTestSuite) TestBuildCheckoutSummary_Success() {
	ctx := context.Background()
	checkIn := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 13, 11, 0, 0, 0, time.UTC)

	folio := suite.folio
	folio.CheckInDate = checkIn
	folio.CheckOutDate = &checkOut
	folio.Status = domain.FolioClosed

	roomNight, _ := domain.NewChargeEntry(domain.KindRoomCharge, "Room P.301 night 1", folio.RoomRate, checkIn, suite.userID)
	laundry, _ := domain.NewChargeEntry(domain.KindServiceCharge, "Laundry", decimal.NewFromInt(90000), checkIn.Add(20*time.Hour), suite.userID)
	laundry, _ = laundry.WithItemization(3, decimal.NewFromInt(30000))
	smoking, _ := domain.NewChargeEntry(domain.KindPenaltyCharge, "Smoking in room", decimal.NewFromInt(500000), checkIn.Add(30*time.Hour), suite.userID)
	holiday, _ := domain.NewChargeEntry(domain.KindSurcharge, "Holiday surcharge", decimal.NewFromInt(130000), checkIn.Add(40*time.Hour), suite.userID)

	suite.mockFolioRepo.On("FindFolioByID", ctx, folio.FolioID).Return(&folio, nil).Once()
	suite.mockFolioRepo.On("FindEntriesByFolioID", ctx, folio.FolioID).Return([]domain.LedgerEntry{roomNight, laundry, smoking, holiday}, nil).Once()

	summary, err := suite.service.BuildCheckoutSummary(ctx, folio.FolioID)

	suite.Require().NoError(err)
	suite.Equal("RCPT-"+folio.FolioID, summary.ReceiptID)
	suite.Equal(3, summary.Nights)
	suite.True(summary.RoomTotal.Equal(folio.RoomRate.Mul(decimal.NewFromInt(3))))
	suite.True(summary.ServicesTotal.Equal(decimal.NewFromInt(90000)))
	suite.True(summary.PenaltiesTotal.Equal(decimal.NewFromInt(500000)))
	suite.True(summary.SurchargesTotal.Equal(decimal.NewFromInt(130000)))
	expectedGrand := summary.RoomTotal.
		Add(summary.ServicesTotal).
		Add(summary.PenaltiesTotal).
		Add(summary.SurchargesTotal)
	suite.True(summary.GrandTotal.Equal(expectedGrand))
	suite.Len(summary.Services, 1)
	suite.Equal(int64(3), summary.Services[0].Quantity)
}

func (suite *FolioServiceTestSuite) TestBuildCheckoutSummary_ReprintIsIdentical() {
	ctx := context.Background()
	checkIn := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 11, 11, 0, 0, 0, time.UTC)

	folio := suite.folio
	folio.CheckInDate = checkIn
	folio.CheckOutDate = &checkOut
	folio.Status = domain.FolioClosed

	roomNight, _ := domain.NewChargeEntry(domain.KindRoomCharge, "Room P.301 night 1", folio.RoomRate, checkIn, suite.userID)
	entries := []domain.LedgerEntry{roomNight}

	suite.mockFolioRepo.On("FindFolioByID", ctx, folio.FolioID).Return(&folio, nil).Twice()
	suite.mockFolioRepo.On("FindEntriesByFolioID", ctx, folio.FolioID).Return(entries, nil).Twice()

	first, err := suite.service.BuildCheckoutSummary(ctx, folio.FolioID)
	suite.Require().NoError(err)
	second, err := suite.service.BuildCheckoutSummary(ctx, folio.FolioID)
	suite.Require().NoError(err)

	suite.Equal(first, second)
}

// --- AddAdHocCharge ---

func (suite *FolioServiceTestSuite) TestAddAdHocCharge_Success() {
	ctx := context.Background()
	checkIn := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	folio := suite.folio
	folio.CheckInDate = checkIn

	roomNight, _ := domain.NewChargeEntry(domain.KindRoomCharge, "Room P.301 night 1", folio.RoomRate, checkIn, suite.userID)

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleReceptionist).Return(nil).Once()
	suite.mockFolioRepo.On("FindFolioByID", ctx, folio.FolioID).Return(&folio, nil).Twice()
	suite.mockFolioRepo.On("FindEntriesByFolioID", ctx, folio.FolioID).Return([]domain.LedgerEntry{roomNight}, nil).Once()
	suite.mockFolioRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()

	summary, err := suite.service.AddAdHocCharge(ctx, folio.FolioID, dto.AddAdHocChargeRequest{
		Kind:        domain.KindServiceCharge,
		Description: "Minibar",
		Amount:      decimal.NewFromInt(120000),
	}, suite.userID)

	suite.Require().NoError(err)
	suite.True(summary.ServicesTotal.Equal(decimal.NewFromInt(120000)))
	suite.True(summary.GrandTotal.Equal(summary.RoomTotal.Add(decimal.NewFromInt(120000))))
	suite.Len(summary.Services, 1)
	suite.Equal("Minibar", summary.Services[0].Description)
	suite.mockFolioRepo.AssertExpectations(suite.T())
}

func TestFolioServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FolioServiceTestSuite))
}
