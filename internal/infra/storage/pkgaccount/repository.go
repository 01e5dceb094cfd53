package pkgaccount

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/WN-BookingService/internal/domain"
	"github.com/m04kA/WN-BookingService/pkg/dbmetrics"
	"github.com/m04kA/WN-BookingService/pkg/psqlbuilder"
)

var accountColumns = []string{
	"id",
	"name",
	"surname",
	"mobile",
	"email",
	"package_type",
	"total_sessions",
	"used_sessions",
	"activation_code",
	"activated",
	"payment_status",
	"purchased_at",
	"activated_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий пакетов занятий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пакетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый пакет занятий
func (r *Repository) Create(ctx context.Context, account *domain.PackageAccount) (*domain.PackageAccount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("package_accounts").
		Columns(
			"name",
			"surname",
			"mobile",
			"email",
			"package_type",
			"total_sessions",
			"used_sessions",
			"activation_code",
			"activated",
			"payment_status",
			"purchased_at",
		).
		Values(
			account.Name,
			account.Surname,
			account.Mobile,
			account.Email,
			account.Type,
			account.TotalSessions,
			account.UsedSessions,
			account.ActivationCode,
			account.Activated,
			account.Payment,
			account.PurchasedAt,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&account.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	account.CreatedAt = createdAt.Time
	account.UpdatedAt = updatedAt.Time

	return account, nil
}

// GetByID получает пакет по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.PackageAccount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(accountColumns...).
		From("package_accounts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	account, err := r.scanAccount(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan account: %v", ErrScanRow, err)
	}

	return account, nil
}

// GetByActivationCode получает пакет по коду активации
func (r *Repository) GetByActivationCode(ctx context.Context, code string) (*domain.PackageAccount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(accountColumns...).
		From("package_accounts").
		Where(squirrel.Eq{"activation_code": code}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByActivationCode - build select query: %v", ErrBuildQuery, err)
	}

	account, err := r.scanAccount(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByActivationCode - scan account: %v", ErrScanRow, err)
	}

	return account, nil
}

// ListByEmail получает все пакеты клиента, новые первыми
func (r *Repository) ListByEmail(ctx context.Context, email string) ([]*domain.PackageAccount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(accountColumns...).
		From("package_accounts").
		Where(squirrel.Eq{"email": email}).
		OrderBy("purchased_at DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmail - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmail - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAccounts(rows)
}

// GetActiveByEmail получает активированный пакет клиента с остатком занятий.
// Если таких несколько, берется самый ранний по дате покупки - занятия
// списываются в порядке приобретения пакетов.
func (r *Repository) GetActiveByEmail(ctx context.Context, email string) (*domain.PackageAccount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(accountColumns...).
		From("package_accounts").
		Where(squirrel.Eq{"email": email, "activated": true}).
		Where(squirrel.Expr("used_sessions < total_sessions")).
		OrderBy("purchased_at ASC, id ASC").
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByEmail - build select query: %v", ErrBuildQuery, err)
	}

	account, err := r.scanAccount(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByEmail - scan account: %v", ErrScanRow, err)
	}

	return account, nil
}

// Activate помечает пакет активированным и фиксирует момент активации
func (r *Repository) Activate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("package_accounts").
		Set("activated", true).
		Set("activated_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Activate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Activate - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Activate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// Debit атомарно списывает одно занятие с пакета.
// Условие used_sessions < total_sessions входит в сам UPDATE: два
// конкурентных списания последнего занятия не могут пройти оба.
func (r *Repository) Debit(ctx context.Context, id int64) (*domain.PackageAccount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("package_accounts").
		Set("used_sessions", squirrel.Expr("used_sessions + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("used_sessions < total_sessions")).
		Suffix("RETURNING " + joinColumns(accountColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Debit - build update query: %v", ErrBuildQuery, err)
	}

	account, err := r.scanAccount(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		// Различаем: пакета нет вообще или занятия закончились
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, ErrNoSessionsRemaining
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Debit - scan account: %v", ErrScanRow, err)
	}

	return account, nil
}

// Gift добавляет extra занятий к общему числу в пакете.
// Подарок только увеличивает total_sessions, счетчик использованных не трогается.
func (r *Repository) Gift(ctx context.Context, id int64, extra int) (*domain.PackageAccount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("package_accounts").
		Set("total_sessions", squirrel.Expr("total_sessions + ?", extra)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(accountColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Gift - build update query: %v", ErrBuildQuery, err)
	}

	account, err := r.scanAccount(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Gift - scan account: %v", ErrScanRow, err)
	}

	return account, nil
}

// SetPayment обновляет статус оплаты пакета
func (r *Repository) SetPayment(ctx context.Context, id int64, payment domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("package_accounts").
		Set("payment_status", payment).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetPayment - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetPayment - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetPayment - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// DeleteByEmail удаляет все пакеты клиента (каскад удаления клиента)
func (r *Repository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("package_accounts").
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

// scanAccount сканирует одну строку результата
func (r *Repository) scanAccount(row *sql.Row) (*domain.PackageAccount, error) {
	var account domain.PackageAccount
	var activatedAt sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Surname,
		&account.Mobile,
		&account.Email,
		&account.Type,
		&account.TotalSessions,
		&account.UsedSessions,
		&account.ActivationCode,
		&account.Activated,
		&account.Payment,
		&account.PurchasedAt,
		&activatedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if activatedAt.Valid {
		account.ActivatedAt = &activatedAt.Time
	}
	account.CreatedAt = createdAt.Time
	account.UpdatedAt = updatedAt.Time

	return &account, nil
}

// scanAccounts сканирует результаты запроса в слайс пакетов
func (r *Repository) scanAccounts(rows *sql.Rows) ([]*domain.PackageAccount, error) {
	accounts := make([]*domain.PackageAccount, 0)

	for rows.Next() {
		var account domain.PackageAccount
		var activatedAt sql.NullTime
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&account.ID,
			&account.Name,
			&account.Surname,
			&account.Mobile,
			&account.Email,
			&account.Type,
			&account.TotalSessions,
			&account.UsedSessions,
			&account.ActivationCode,
			&account.Activated,
			&account.Payment,
			&account.PurchasedAt,
			&activatedAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAccounts - scan row: %v", ErrScanRow, err)
		}

		if activatedAt.Valid {
			account.ActivatedAt = &activatedAt.Time
		}
		account.CreatedAt = createdAt.Time
		account.UpdatedAt = updatedAt.Time

		accounts = append(accounts, &account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAccounts - rows error: %v", ErrScanRow, err)
	}

	return accounts, nil
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
