package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/WN-BookingService/internal/domain"
)

const keyPrefix = "availability:day:"

// Cache кэш снапшотов доступности по датам.
// Снимает нагрузку повторных чтений журнала с БД; TTL короткий,
// чтобы окно устаревания не превышало пары обновлений страницы.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache создает новый кэш доступности
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get возвращает закэшированный снапшот дня или (nil, nil) при промахе.
// Ошибки соединения с redis тоже считаются промахом: кэш не должен
// ронять чтение доступности.
func (c *Cache) Get(ctx context.Context, date time.Time) (*domain.DayAvailability, error) {
	raw, err := c.client.Get(ctx, c.key(date)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("availability cache: get: %w", err)
	}

	var day domain.DayAvailability
	if err := json.Unmarshal(raw, &day); err != nil {
		return nil, fmt.Errorf("availability cache: unmarshal: %w", err)
	}

	return &day, nil
}

// Set сохраняет снапшот дня
func (c *Cache) Set(ctx context.Context, day *domain.DayAvailability) error {
	raw, err := json.Marshal(day)
	if err != nil {
		return fmt.Errorf("availability cache: marshal: %w", err)
	}

	if err := c.client.Set(ctx, c.key(day.Date), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("availability cache: set: %w", err)
	}

	return nil
}

// Invalidate сбрасывает снапшот даты. Вызывается после каждой записи,
// меняющей занятость: создание брони, смена статуса, удаление.
func (c *Cache) Invalidate(ctx context.Context, date time.Time) error {
	if err := c.client.Del(ctx, c.key(date)).Err(); err != nil {
		return fmt.Errorf("availability cache: invalidate: %w", err)
	}
	return nil
}

func (c *Cache) key(date time.Time) string {
	return keyPrefix + domain.DateKey(date)
}
