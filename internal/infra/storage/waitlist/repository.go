package waitlist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/WN-BookingService/internal/domain"
	"github.com/m04kA/WN-BookingService/pkg/dbmetrics"
	"github.com/m04kA/WN-BookingService/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

var entryColumns = []string{
	"id",
	"email",
	"redemption_code",
	"status",
	"created_at",
	"invited_at",
	"redeemed_at",
}

// Repository репозиторий листа ожидания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория листа ожидания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет email в лист ожидания
func (r *Repository) Create(ctx context.Context, entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("waitlist_entries").
		Columns("email", "redemption_code", "status").
		Values(entry.Email, entry.RedemptionCode, entry.Status).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrAlreadyOnWaitlist
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return entry, nil
}

// GetByEmail получает запись листа ожидания по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.WaitlistEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(entryColumns...).
		From("waitlist_entries").
		Where(squirrel.Eq{"email": email}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	entry, err := r.scanEntry(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan entry: %v", ErrScanRow, err)
	}

	return entry, nil
}

// GetByCode получает запись листа ожидания по коду приглашения
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.WaitlistEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(entryColumns...).
		From("waitlist_entries").
		Where(squirrel.Eq{"redemption_code": code}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	entry, err := r.scanEntry(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan entry: %v", ErrScanRow, err)
	}

	return entry, nil
}

// List возвращает весь лист ожидания в порядке записи
func (r *Repository) List(ctx context.Context) ([]*domain.WaitlistEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(entryColumns...).
		From("waitlist_entries").
		OrderBy("created_at ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.WaitlistEntry, 0)
	for rows.Next() {
		var entry domain.WaitlistEntry
		var invitedAt, redeemedAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.Email,
			&entry.RedemptionCode,
			&entry.Status,
			&entry.CreatedAt,
			&invitedAt,
			&redeemedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		if invitedAt.Valid {
			entry.InvitedAt = &invitedAt.Time
		}
		if redeemedAt.Valid {
			entry.RedeemedAt = &redeemedAt.Time
		}

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// MarkInvited переводит запись в статус "приглашен" и фиксирует момент приглашения
func (r *Repository) MarkInvited(ctx context.Context, id int64) error {
	return r.setStatus(ctx, id, domain.WaitlistInvited, "invited_at")
}

// MarkRedeemed переводит запись в статус "использован" и фиксирует момент погашения
func (r *Repository) MarkRedeemed(ctx context.Context, id int64) error {
	return r.setStatus(ctx, id, domain.WaitlistRedeemed, "redeemed_at")
}

func (r *Repository) setStatus(ctx context.Context, id int64, status domain.WaitlistStatus, timestampColumn string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("waitlist_entries").
		Set("status", status).
		Set(timestampColumn, squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: setStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: setStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: setStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// DeleteByEmail удаляет запись листа ожидания клиента (каскад удаления клиента)
func (r *Repository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("waitlist_entries").
		Where(squirrel.Eq{"email": email}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByEmail - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByEmail - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByEmail - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// scanEntry сканирует одну строку результата
func (r *Repository) scanEntry(row *sql.Row) (*domain.WaitlistEntry, error) {
	var entry domain.WaitlistEntry
	var invitedAt, redeemedAt sql.NullTime

	err := row.Scan(
		&entry.ID,
		&entry.Email,
		&entry.RedemptionCode,
		&entry.Status,
		&entry.CreatedAt,
		&invitedAt,
		&redeemedAt,
	)
	if err != nil {
		return nil, err
	}

	if invitedAt.Valid {
		entry.InvitedAt = &invitedAt.Time
	}
	if redeemedAt.Valid {
		entry.RedeemedAt = &redeemedAt.Time
	}

	return &entry, nil
}
