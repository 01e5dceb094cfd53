package models

import (
	"time"

	"github.com/m04kA/WN-BookingService/internal/domain"
)

// Response модели

// WaitlistEntryResponse ответ с записью листа ожидания
type WaitlistEntryResponse struct {
	ID         int64   `json:"id"`
	Email      string  `json:"email"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"createdAt"`
	InvitedAt  *string `json:"invitedAt,omitempty"`
	RedeemedAt *string `json:"redeemedAt,omitempty"`
}

// WaitlistResponse ответ со списком ожидания
type WaitlistResponse struct {
	Entries []WaitlistEntryResponse `json:"entries"`
	Total   int                     `json:"total"`
}

// FromDomainEntry конвертирует domain модель в response.
// Код приглашения наружу не отдается, он уходит только письмом.
func FromDomainEntry(e *domain.WaitlistEntry) *WaitlistEntryResponse {
	resp := &WaitlistEntryResponse{
		ID:        e.ID,
		Email:     e.Email,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}

	if e.InvitedAt != nil {
		formatted := e.InvitedAt.Format(time.RFC3339)
		resp.InvitedAt = &formatted
	}
	if e.RedeemedAt != nil {
		formatted := e.RedeemedAt.Format(time.RFC3339)
		resp.RedeemedAt = &formatted
	}

	return resp
}

// FromDomainEntryList конвертирует список domain моделей в response
func FromDomainEntryList(entries []*domain.WaitlistEntry) *WaitlistResponse {
	result := make([]WaitlistEntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, *FromDomainEntry(e))
	}
	return &WaitlistResponse{
		Entries: result,
		Total:   len(result),
	}
}
