package services_test

import (
	"context"
	"testing"

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

// --- Mock CatalogRepository ---
type MockCatalogRepository struct {
	mock.Mock
}

var _ portsrepo.CatalogRepositoryFacade = (*MockCatalogRepository)(nil)

func (m *MockCatalogRepository) FindServiceItemByID(ctx context.Context, serviceID string) (*domain.ServiceItem, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceItem), args.Error(1)
}

func (m *MockCatalogRepository) ListServiceItems(ctx context.Context, includeInactive bool) ([]domain.ServiceItem, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceItem), args.Error(1)
}

func (m *MockCatalogRepository) FindPenaltyTypeByID(ctx context.Context, penaltyTypeID string) (*domain.PenaltyType, error) {
	args := m.Called(ctx, penaltyTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PenaltyType), args.Error(1)
}

func (m *MockCatalogRepository) ListPenaltyTypes(ctx context.Context, includeInactive bool) ([]domain.PenaltyType, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PenaltyType), args.Error(1)
}

func (m *MockCatalogRepository) FindSurchargeTypeByID(ctx context.Context, surchargeTypeID string) (*domain.SurchargeType, error) {
	args := m.Called(ctx, surchargeTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SurchargeType), args.Error(1)
}

func (m *MockCatalogRepository) ListSurchargeTypes(ctx context.Context, includeInactive bool) ([]domain.SurchargeType, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SurchargeType), args.Error(1)
}

func (m *MockCatalogRepository) SaveServiceItem(ctx context.Context, item domain.ServiceItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpdateServiceItem(ctx context.Context, item domain.ServiceItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCatalogRepository) SavePenaltyType(ctx context.Context, penalty domain.PenaltyType) error {
	args := m.Called(ctx, penalty)
	return args.Error(0)
}

func (m *MockCatalogRepository) SaveSurchargeType(ctx context.Context, surcharge domain.SurchargeType) error {
	args := m.Called(ctx, surcharge)
	return args.Error(0)
}

// --- Test Suite Setup ---
type CatalogServiceTestSuite struct {
	suite.Suite
	mockCatalogRepo *MockCatalogRepository
	mockAuthorizer  *MockRoleAuthorizer
	service         portssvc.CatalogSvcFacade
	userID          string
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.mockCatalogRepo = new(MockCatalogRepository)
	suite.mockAuthorizer = new(MockRoleAuthorizer)
	suite.service = services.NewCatalogService(
		suite.mockCatalogRepo,
		services.WithCatalogRoleAuthorizer(suite.mockAuthorizer),
	)
	suite.userID = uuid.NewString()
}

func (suite *CatalogServiceTestSuite) TestCreateServiceItem_Success() {
	ctx := context.Background()
	req := dto.CreateServiceItemRequest{Name: "Laundry", UnitPrice: decimal.NewFromInt(30000), Unit: "kg"}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleManager).Return(nil).Once()
	suite.mockCatalogRepo.On("SaveServiceItem", ctx, mock.AnythingOfType("domain.ServiceItem")).Return(nil).Once()

	item, err := suite.service.CreateServiceItem(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(item.ServiceID)
	suite.Equal("Laundry", item.Name)
	suite.True(item.IsActive)
	suite.Equal(suite.userID, item.CreatedBy)
	suite.mockCatalogRepo.AssertExpectations(suite.T())
}

func (suite *CatalogServiceTestSuite) TestCreateServiceItem_RequiresManager() {
	ctx := context.Background()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleManager).Return(apperrors.ErrForbidden).Once()

	_, err := suite.service.CreateServiceItem(ctx, dto.CreateServiceItemRequest{Name: "Laundry", UnitPrice: decimal.NewFromInt(30000)}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCatalogRepo.AssertNotCalled(suite.T(), "SaveServiceItem", mock.Anything, mock.Anything)
}

func (suite *CatalogServiceTestSuite) TestCreateSurchargeType_BothAmountAndRate() {
	ctx := context.Background()
	amount := decimal.NewFromInt(100000)
	rate := decimal.NewFromInt(10)

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleManager).Return(nil).Once()

	_, err := suite.service.CreateSurchargeType(ctx, dto.CreateSurchargeTypeRequest{
		Name:   "Holiday",
		Amount: &amount,
		Rate:   &rate,
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrSurchargeDefinition)
}

func (suite *CatalogServiceTestSuite) TestCreateSurchargeType_NeitherAmountNorRate() {
	ctx := context.Background()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, domain.RoleManager).Return(nil).Once()

	_, err := suite.service.CreateSurchargeType(ctx, dto.CreateSurchargeTypeRequest{Name: "Holiday"}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrSurchargeDefinition)
}

func (suite *CatalogServiceTestSuite) TestResolveSurcharge_FlatAmount() {
	ctx := context.Background()
	amount := decimal.NewFromInt(200000)
	surcharge := &domain.SurchargeType{
		SurchargeTypeID: uuid.NewString(),
		Name:            "Extra bed",
		Amount:          &amount,
		IsActive:        true,
	}

	suite.mockCatalogRepo.On("FindSurchargeTypeByID", ctx, surcharge.SurchargeTypeID).Return(surcharge, nil).Once()

	_, resolved, err := suite.service.ResolveSurcharge(ctx, surcharge.SurchargeTypeID, decimal.NewFromInt(1000000))

	suite.Require().NoError(err)
	suite.True(resolved.Equal(amount), "flat surcharge ignores the base amount")
}

func (suite *CatalogServiceTestSuite) TestResolveSurcharge_Percentage() {
	ctx := context.Background()
	rate := decimal.NewFromInt(10)
	surcharge := &domain.SurchargeType{
		SurchargeTypeID: uuid.NewString(),
		Name:            "Holiday",
		Rate:            &rate,
		IsActive:        true,
	}

	suite.mockCatalogRepo.On("FindSurchargeTypeByID", ctx, surcharge.SurchargeTypeID).Return(surcharge, nil).Once()

	_, resolved, err := suite.service.ResolveSurcharge(ctx, surcharge.SurchargeTypeID, decimal.NewFromInt(1300000))

	suite.Require().NoError(err)
	suite.True(resolved.Equal(decimal.NewFromInt(130000)), "10%% of 1,300,000 is 130,000, got %s", resolved)
}

func (suite *CatalogServiceTestSuite) TestResolveSurcharge_PercentageRounds() {
	ctx := context.Background()
	rate := decimal.NewFromFloat(7.5)
	surcharge := &domain.SurchargeType{
		SurchargeTypeID: uuid.NewString(),
		Name:            "Service fee",
		Rate:            &rate,
		IsActive:        true,
	}

	suite.mockCatalogRepo.On("FindSurchargeTypeByID", ctx, surcharge.SurchargeTypeID).Return(surcharge, nil).Once()

	_, resolved, err := suite.service.ResolveSurcharge(ctx, surcharge.SurchargeTypeID, decimal.NewFromFloat(133.33))

	suite.Require().NoError(err)
	// 133.33 * 0.075 = 9.99975, rounded to 10.00
	suite.True(resolved.Equal(decimal.NewFromInt(10)), "got %s", resolved)
}

func (suite *CatalogServiceTestSuite) TestResolveSurcharge_Inactive() {
	ctx := context.Background()
	rate := decimal.NewFromInt(10)
	surcharge := &domain.SurchargeType{
		SurchargeTypeID: uuid.NewString(),
		Name:            "Holiday",
		Rate:            &rate,
		IsActive:        false,
	}

	suite.mockCatalogRepo.On("FindSurchargeTypeByID", ctx, surcharge.SurchargeTypeID).Return(surcharge, nil).Once()

	_, _, err := suite.service.ResolveSurcharge(ctx, surcharge.SurchargeTypeID, decimal.NewFromInt(1000000))

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrSurchargeInactive)
}

func (suite *CatalogServiceTestSuite) TestResolveSurcharge_NegativeBase() {
	ctx := context.Background()
	rate := decimal.NewFromInt(10)
	surcharge := &domain.SurchargeType{
		SurchargeTypeID: uuid.NewString(),
		Name:            "Holiday",
		Rate:            &rate,
		IsActive:        true,
	}

	suite.mockCatalogRepo.On("FindSurchargeTypeByID", ctx, surcharge.SurchargeTypeID).Return(surcharge, nil).Once()

	_, _, err := suite.service.ResolveSurcharge(ctx, surcharge.SurchargeTypeID, decimal.NewFromInt(-100))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CatalogServiceTestSuite) TestResolveSurcharge_NotFound() {
	ctx := context.Background()
	id := uuid.NewString()

	suite.mockCatalogRepo.On("FindSurchargeTypeByID", ctx, id).Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.ResolveSurcharge(ctx, id, decimal.NewFromInt(1000000))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
