package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/hotelhq/hotel_folio_app/internal/apperrors"
	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	portsrepo "github.com/hotelhq/hotel_folio_app/internal/core/ports/repositories"
	"github.com/hotelhq/hotel_folio_app/internal/models"
	"github.com/hotelhq/hotel_folio_app/internal/utils/mapping"
	"github.com/hotelhq/hotel_folio_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFolioRepository struct {
	BaseRepository
}

// newPgxFolioRepository creates a new repository for folio and ledger entry data.
func newPgxFolioRepository(pool *pgxpool.Pool) portsrepo.FolioRepositoryWithTx {
	return &PgxFolioRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxFolioRepository implements portsrepo.FolioRepositoryWithTx
var _ portsrepo.FolioRepositoryWithTx = (*PgxFolioRepository)(nil)

const folioSelectColumns = `
	f.folio_id, f.customer_name, f.room_id, r.name, rt.name, f.room_rate,
	f.check_in_date, f.check_out_date, f.status,
	f.created_at, f.created_by, f.last_updated_at, f.last_updated_by
`

const folioFromClause = `
	FROM folios f
	JOIN rooms r ON f.room_id = r.room_id
	JOIN room_types rt ON r.room_type_id = rt.room_type_id
`

// scanFolio scans one joined folio row. Room and room type names ride along so
// responses never need a second lookup.
func scanFolio(row pgx.Row) (*domain.Folio, error) {
	var m models.Folio
	var roomName, roomTypeName string

	err := row.Scan(
		&m.FolioID,
		&m.CustomerName,
		&m.RoomID,
		&roomName,
		&roomTypeName,
		&m.RoomRate,
		&m.CheckInDate,
		&m.CheckOutDate,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}

	folio := mapping.ToDomainFolio(m)
	folio.RoomName = roomName
	folio.RoomTypeName = roomTypeName
	return &folio, nil
}

// SaveFolio persists the folio and its initial entries and marks the room
// occupied, all within one database transaction.
func (r *PgxFolioRepository) SaveFolio(ctx context.Context, folio domain.Folio, entries []domain.LedgerEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelFolio := mapping.ToModelFolio(folio)
	folioQuery := `
		INSERT INTO folios (
			folio_id, customer_name, room_id, room_rate, check_in_date, check_out_date, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, folioQuery,
		modelFolio.FolioID,
		modelFolio.CustomerName,
		modelFolio.RoomID,
		modelFolio.RoomRate,
		modelFolio.CheckInDate,
		modelFolio.CheckOutDate,
		modelFolio.Status,
		modelFolio.CreatedAt,
		modelFolio.CreatedBy,
		modelFolio.LastUpdatedAt,
		modelFolio.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert folio "+modelFolio.FolioID, err)
	}

	// Occupy the room. RowsAffected guards against a room that vanished or was
	// taken between the service's availability check and this transaction.
	roomQuery := `
		UPDATE rooms
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE room_id = $1 AND status = $5;
	`
	cmdTag, err := tx.Exec(ctx, roomQuery,
		modelFolio.RoomID,
		models.RoomOccupied,
		modelFolio.CreatedAt,
		modelFolio.CreatedBy,
		models.RoomAvailable,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to occupy room "+modelFolio.RoomID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewAppError(409, "room "+modelFolio.RoomID+" is no longer available", apperrors.ErrConflict)
	}

	batch := &pgx.Batch{}
	for _, entry := range entries {
		queueEntryInsert(batch, mapping.ToModelLedgerEntry(entry))
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert initial entries for folio "+modelFolio.FolioID, err)
	}

	return r.Commit(ctx, tx)
}

const entryInsertQuery = `
	INSERT INTO ledger_entries (
		entry_id, folio_id, kind, description, debit, credit, quantity, unit_price,
		occurred_at, posted_by, voided, void_reason, voided_by,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
`

func queueEntryInsert(batch *pgx.Batch, m models.LedgerEntry) {
	batch.Queue(entryInsertQuery,
		m.EntryID,
		m.FolioID,
		m.Kind,
		m.Description,
		m.Debit,
		m.Credit,
		m.Quantity,
		m.UnitPrice,
		m.OccurredAt,
		m.PostedBy,
		m.Voided,
		m.VoidReason,
		m.VoidedBy,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
}

// FindFolioByID retrieves a folio by its ID. Entries are not loaded.
func (r *PgxFolioRepository) FindFolioByID(ctx context.Context, folioID string) (*domain.Folio, error) {
	query := `SELECT ` + folioSelectColumns + folioFromClause + ` WHERE f.folio_id = $1;`

	folio, err := scanFolio(r.Pool.QueryRow(ctx, query, folioID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find folio by ID "+folioID, err)
	}
	return folio, nil
}

// FindOpenFolioByRoomID retrieves the open folio for a room, if any.
func (r *PgxFolioRepository) FindOpenFolioByRoomID(ctx context.Context, roomID string) (*domain.Folio, error) {
	query := `SELECT ` + folioSelectColumns + folioFromClause + ` WHERE f.room_id = $1 AND f.status = $2;`

	folio, err := scanFolio(r.Pool.QueryRow(ctx, query, roomID, models.FolioOpen))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find open folio for room "+roomID, err)
	}
	return folio, nil
}

// ListFolios retrieves a paginated list of folios using token-based
// pagination, optionally filtered by status. Newest first.
func (r *PgxFolioRepository) ListFolios(ctx context.Context, status *domain.FolioStatus, limit int, nextToken *string) ([]domain.Folio, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + folioSelectColumns + folioFromClause
	filterClause := `WHERE 1=1`
	args := []interface{}{}
	if status != nil {
		args = append(args, *status)
		filterClause += ` AND f.status = $` + strconv.Itoa(len(args))
	}
	orderByClause := `ORDER BY f.created_at DESC`

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, decodeErr := pagination.DecodeDateBasedToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastCreatedAt)
		filterClause += ` AND f.created_at < $` + strconv.Itoa(len(args))
	}

	args = append(args, fetchLimit)
	query := baseQuery + " " + filterClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query folios", err)
	}
	defer rows.Close()

	folios := make([]domain.Folio, 0, fetchLimit)
	for rows.Next() {
		folio, scanErr := scanFolio(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan folio row", scanErr)
		}
		folios = append(folios, *folio)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating folio rows", err)
	}

	var nextTokenVal *string
	if len(folios) > limit {
		last := folios[limit-1]
		token := pagination.EncodeDateBasedToken(last.CreatedAt)
		nextTokenVal = &token
		folios = folios[:limit]
	}

	return folios, nextTokenVal, nil
}

// UpdateFolioStatus transitions a folio's status and records the checkout
// date. Closing a folio also frees its room, in the same transaction.
func (r *PgxFolioRepository) UpdateFolioStatus(ctx context.Context, folioID string, status domain.FolioStatus, checkOutDate *time.Time, updatedByUserID string, updatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE folios
		SET status = $2, check_out_date = $3, last_updated_at = $4, last_updated_by = $5
		WHERE folio_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, folioID, status, checkOutDate, updatedAt, updatedByUserID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update folio status for "+folioID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if status == domain.FolioClosed {
		roomQuery := `
			UPDATE rooms
			SET status = $2, last_updated_at = $3, last_updated_by = $4
			WHERE room_id = (SELECT room_id FROM folios WHERE folio_id = $1) AND status = $5;
		`
		if _, err := tx.Exec(ctx, roomQuery, folioID, models.RoomAvailable, updatedAt, updatedByUserID, models.RoomOccupied); err != nil {
			return apperrors.NewAppError(500, "failed to free room for folio "+folioID, err)
		}
	}

	return r.Commit(ctx, tx)
}

const entrySelectColumns = `
	entry_id, folio_id, kind, description, debit, credit, quantity, unit_price,
	occurred_at, posted_by, voided, void_reason, voided_by,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanEntry(row pgx.Row) (models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.EntryID,
		&m.FolioID,
		&m.Kind,
		&m.Description,
		&m.Debit,
		&m.Credit,
		&m.Quantity,
		&m.UnitPrice,
		&m.OccurredAt,
		&m.PostedBy,
		&m.Voided,
		&m.VoidReason,
		&m.VoidedBy,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindEntryByID retrieves a single ledger entry.
func (r *PgxFolioRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + entrySelectColumns + ` FROM ledger_entries WHERE entry_id = $1;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find entry by ID "+entryID, err)
	}

	entry := mapping.ToDomainLedgerEntry(m)
	return &entry, nil
}

// FindEntriesByFolioID retrieves all entries of a folio in posting order,
// voided entries included.
func (r *PgxFolioRepository) FindEntriesByFolioID(ctx context.Context, folioID string) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + entrySelectColumns + `
		FROM ledger_entries
		WHERE folio_id = $1
		ORDER BY occurred_at, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, folioID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entries for folio "+folioID, err)
	}
	defer rows.Close()

	modelEntries := []models.LedgerEntry{}
	for rows.Next() {
		m, scanErr := scanEntry(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entry row for folio "+folioID, scanErr)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating entry rows for folio "+folioID, err)
	}

	return mapping.ToDomainLedgerEntrySlice(modelEntries), nil
}

// ListEntriesByFolioID retrieves a paginated list of a folio's entries in
// posting order using token-based pagination.
func (r *PgxFolioRepository) ListEntriesByFolioID(ctx context.Context, folioID string, includeVoided bool, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + entrySelectColumns + ` FROM ledger_entries`
	filterClause := `WHERE folio_id = $1`
	if !includeVoided {
		filterClause += ` AND voided = FALSE`
	}
	orderByClause := `ORDER BY occurred_at, created_at`

	args := []interface{}{folioID}

	if nextToken != nil && *nextToken != "" {
		lastOccurredAt, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		filterClause += ` AND (occurred_at, created_at) > ($2, $3)`
		args = append(args, lastOccurredAt, lastCreatedAt)
	}

	args = append(args, fetchLimit)
	query := baseQuery + " " + filterClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query entries for folio "+folioID, err)
	}
	defer rows.Close()

	modelEntries := make([]models.LedgerEntry, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanEntry(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan entry row for folio "+folioID, scanErr)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating entry rows for folio "+folioID, err)
	}

	var nextTokenVal *string
	results := modelEntries
	if len(modelEntries) > limit {
		last := modelEntries[limit-1]
		token := pagination.EncodeToken(last.OccurredAt, last.CreatedAt)
		nextTokenVal = &token
		results = modelEntries[:limit]
	}

	return mapping.ToDomainLedgerEntrySlice(results), nextTokenVal, nil
}

// SaveEntry persists a new ledger entry. The folio row is locked for the
// duration of the insert so concurrent posts to one folio serialize.
func (r *PgxFolioRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var folioStatus models.FolioStatus
	lockQuery := `SELECT status FROM folios WHERE folio_id = $1 FOR UPDATE;`
	if err := tx.QueryRow(ctx, lockQuery, entry.FolioID).Scan(&folioStatus); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock folio "+entry.FolioID, err)
	}
	if folioStatus != models.FolioOpen {
		return apperrors.NewAppError(409, "folio "+entry.FolioID+" is not open", apperrors.ErrConflict)
	}

	m := mapping.ToModelLedgerEntry(entry)
	_, err = tx.Exec(ctx, entryInsertQuery,
		m.EntryID,
		m.FolioID,
		m.Kind,
		m.Description,
		m.Debit,
		m.Credit,
		m.Quantity,
		m.UnitPrice,
		m.OccurredAt,
		m.PostedBy,
		m.Voided,
		m.VoidReason,
		m.VoidedBy,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert entry "+m.EntryID, err)
	}

	return r.Commit(ctx, tx)
}

// UpdateEntryVoid marks an entry voided with the given reason. The entry's
// amounts are never touched.
func (r *PgxFolioRepository) UpdateEntryVoid(ctx context.Context, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)
	query := `
		UPDATE ledger_entries
		SET voided = TRUE, void_reason = $2, voided_by = $3, last_updated_at = $4, last_updated_by = $5
		WHERE entry_id = $1 AND voided = FALSE;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.EntryID,
		m.VoidReason,
		m.VoidedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to void entry "+m.EntryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewAppError(409, "entry "+m.EntryID+" not found or already voided", apperrors.ErrConflict)
	}
	return nil
}
