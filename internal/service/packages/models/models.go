package models

import (
	"time"

	"github.com/m04kA/WN-BookingService/internal/domain"
)

// Response модели

// PackageResponse ответ с данными пакета
type PackageResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Surname           string  `json:"surname"`
	Mobile            string  `json:"mobile"`
	Email             string  `json:"email"`
	Type              string  `json:"type"`
	TotalSessions     int     `json:"totalSessions"`
	UsedSessions      int     `json:"usedSessions"`
	RemainingSessions int     `json:"remainingSessions"`
	Activated         bool    `json:"activated"`
	Payment           string  `json:"payment"`
	PurchasedAt       string  `json:"purchasedAt"`
	ActivatedAt       *string `json:"activatedAt,omitempty"`
}

// PackageListResponse ответ со списком пакетов
type PackageListResponse struct {
	Packages []PackageResponse `json:"packages"`
	Total    int               `json:"total"`
}

// FromDomainPackage конвертирует domain модель в response.
// Код активации наружу не отдается.
func FromDomainPackage(p *domain.PackageAccount) *PackageResponse {
	resp := &PackageResponse{
		ID:                p.ID,
		Name:              p.Name,
		Surname:           p.Surname,
		Mobile:            p.Mobile,
		Email:             p.Email,
		Type:              string(p.Type),
		TotalSessions:     p.TotalSessions,
		UsedSessions:      p.UsedSessions,
		RemainingSessions: p.RemainingSessions(),
		Activated:         p.Activated,
		Payment:           string(p.Payment),
		PurchasedAt:       p.PurchasedAt.Format(time.RFC3339),
	}

	if p.ActivatedAt != nil {
		formatted := p.ActivatedAt.Format(time.RFC3339)
		resp.ActivatedAt = &formatted
	}

	return resp
}

// FromDomainPackageList конвертирует список domain моделей в response
func FromDomainPackageList(accounts []*domain.PackageAccount) *PackageListResponse {
	result := make([]PackageResponse, 0, len(accounts))
	for _, p := range accounts {
		result = append(result, *FromDomainPackage(p))
	}
	return &PackageListResponse{
		Packages: result,
		Total:    len(result),
	}
}
