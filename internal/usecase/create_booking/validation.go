package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/WN-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if strings.TrimSpace(req.Surname) == "" {
		return fmt.Errorf("%w: surname is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Surname) > domain.MaxNameLength {
		return fmt.Errorf("%w: surname exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if strings.TrimSpace(req.Mobile) == "" {
		return fmt.Errorf("%w: mobile is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.Instructor) > domain.MaxInstructorLength {
		return fmt.Errorf("%w: instructor exceeds %d characters", ErrInvalidInput, domain.MaxInstructorLength)
	}

	if err := validateEmail(req.Email); err != nil {
		return err
	}

	if !domain.BookingKind(req.Kind).Valid() {
		return fmt.Errorf("%w: unknown booking kind %q", ErrInvalidInput, req.Kind)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateEmail проверяет минимальную корректность email.
// Полная RFC-валидация не нужна: письмо на несуществующий адрес просто не дойдет.
func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at+1:], ".") {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}

	return nil
}
