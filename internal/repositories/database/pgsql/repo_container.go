package pgsql

import (
	portsrepo "github.com/hotelhq/hotel_folio_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	folioRepo := newPgxFolioRepository(dbPool)
	roomRepo := newPgxRoomRepository(dbPool)
	catalogRepo := newPgxCatalogRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		FolioRepo:     folioRepo,
		RoomRepo:      roomRepo,
		CatalogRepo:   catalogRepo,
		UserRepo:      userRepo,
		ReportingRepo: reportingRepo,
	}
}
