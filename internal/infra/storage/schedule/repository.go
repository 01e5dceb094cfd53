package schedule

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/WN-BookingService/internal/domain"
	"github.com/m04kA/WN-BookingService/pkg/dbmetrics"
	"github.com/m04kA/WN-BookingService/pkg/psqlbuilder"
)

// Конфигурация расписания хранится единственной строкой с фиксированным id.
// Версия строки растет на каждом сохранении и служит оптимистичной блокировкой.
const configRowID = 1

// Repository репозиторий конфигурации расписания студии
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает текущую конфигурацию расписания
func (r *Repository) Get(ctx context.Context) (*domain.StudioSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("version", "config").
		From("schedule_config").
		Where(squirrel.Eq{"id": configRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var version int64
	var raw []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&version, &raw)
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - execute query: %v", ErrExecQuery, err)
	}

	var sched domain.StudioSchedule
	if err := json.Unmarshal(raw, &sched); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal config: %v", ErrUnmarshalConfig, err)
	}
	sched.Version = version

	return &sched, nil
}

// Save сохраняет конфигурацию, если её версия не изменилась с момента чтения.
// При конкурентном изменении возвращает ErrVersionConflict - вызывающий
// обязан перечитать конфигурацию и повторить изменение поверх свежей версии.
func (r *Repository) Save(ctx context.Context, sched *domain.StudioSchedule) (*domain.StudioSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	raw, err := json.Marshal(sched)
	if err != nil {
		return nil, fmt.Errorf("%w: Save - marshal config: %v", ErrMarshalConfig, err)
	}

	query, args, err := psqlbuilder.Update("schedule_config").
		Set("config", raw).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": configRowID, "version": sched.Version}).
		Suffix("RETURNING version").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Save - build update query: %v", ErrBuildQuery, err)
	}

	var newVersion int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&newVersion)
	if err == sql.ErrNoRows {
		return nil, ErrVersionConflict
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Save - execute update: %v", ErrExecQuery, err)
	}

	updated := *sched
	updated.Version = newVersion

	return &updated, nil
}
