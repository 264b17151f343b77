package services

import (
	portsrepo "github.com/hotelhq/hotel_folio_app/internal/core/ports/repositories"
	portssvc "github.com/hotelhq/hotel_folio_app/internal/core/ports/services"
	"github.com/hotelhq/hotel_folio_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	// Create the container structure first
	container := &portssvc.ServiceContainer{}

	// Initialize the user service first since role enforcement in the other
	// services depends on it
	container.User = NewUserService(repos.UserRepo)

	roleAuthorizer := container.User.(portssvc.RoleAuthorizerSvc)

	container.Room = NewRoomService(
		repos.RoomRepo,
		WithRoomRoleAuthorizer(roleAuthorizer),
	)

	container.Catalog = NewCatalogService(
		repos.CatalogRepo,
		WithCatalogRoleAuthorizer(roleAuthorizer),
	)

	container.Folio = NewFolioService(
		repos.FolioRepo,
		WithRoomService(container.Room),
		WithFolioRoleAuthorizer(roleAuthorizer),
	)

	container.Reporting = NewReportingService(
		repos.ReportingRepo,
		WithReportingRoleAuthorizer(roleAuthorizer),
	)

	// Initialize TokenService
	container.Token = NewTokenService(cfg, container.User)

	// Initialize GoogleOAuthHandlerSvcFacade
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.FolioSvcFacade    = (*folioService)(nil)
	_ portssvc.RoomSvcFacade     = (*roomService)(nil)
	_ portssvc.CatalogSvcFacade  = (*catalogService)(nil)
	_ portssvc.UserSvcFacade     = (*userService)(nil)
	_ portssvc.RoleAuthorizerSvc = (*userService)(nil)
)
