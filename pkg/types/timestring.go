package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const timeStringLayout = "15:04"

// minutesPerDay количество минут в сутках, используется для переноса через полночь
const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени (ожидается HH:MM)
	ErrInvalidTimeString = errors.New("types: invalid time string format")

	// ErrUnsupportedScanType возвращается, когда БД вернула неожиданный тип
	ErrUnsupportedScanType = errors.New("types: unsupported scan type for TimeString")
)

// TimeString время суток в формате "HH:MM" (локальное время студии, без таймзоны)
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что строка соответствует формату HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeStringLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// MinutesOfDay возвращает количество минут с начала суток
func (t TimeString) MinutesOfDay() (int, error) {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает время через minutes минут.
// Переход через полночь заворачивается (23:40 + 50 -> 00:30).
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.MinutesOfDay()
	if err != nil {
		return "", err
	}

	total = (total + minutes) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// At совмещает время суток с календарной датой в указанной таймзоне
func (t TimeString) At(date time.Time, loc *time.Location) (time.Time, error) {
	minutes, err := t.MinutesOfDay()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, loc), nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД.
// Postgres TIME может приехать как time.Time, string или []byte.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedScanType, src)
	}
}

func (t *TimeString) scanString(s string) error {
	// TIME колонка возвращает "15:04:05", обрезаем секунды
	if len(s) > len(timeStringLayout) {
		s = s[:len(timeStringLayout)]
	}
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}
