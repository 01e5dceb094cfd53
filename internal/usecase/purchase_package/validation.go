package purchase_package

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

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at+1:], ".") {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}

	if !domain.PackageType(req.Type).Valid() {
		return fmt.Errorf("%w: unknown package type %q", ErrInvalidInput, req.Type)
	}

	if req.RedemptionCode != nil && strings.TrimSpace(*req.RedemptionCode) == "" {
		return fmt.Errorf("%w: redemption code must not be empty", ErrInvalidInput)
	}

	return nil
}
