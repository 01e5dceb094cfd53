package customer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/WN-BookingService/pkg/dbmetrics"
	"github.com/m04kA/WN-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий черного списка клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория черного списка
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Block добавляет email в черный список. Повторная блокировка - no-op.
func (r *Repository) Block(ctx context.Context, email string, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_customers").
		Columns("email", "reason").
		Values(email, reason).
		Suffix("ON CONFLICT (email) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Block - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Block - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Unblock убирает email из черного списка
func (r *Repository) Unblock(ctx context.Context, email string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_customers").
		Where(squirrel.Eq{"email": email}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Unblock - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Unblock - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Unblock - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotBlocked
	}

	return nil
}

// IsBlocked проверяет, находится ли email в черном списке
func (r *Repository) IsBlocked(ctx context.Context, email string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("blocked_customers").
		Where(squirrel.Eq{"email": email}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsBlocked - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsBlocked - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}
