package models

import (
	"errors"
	"time"

	"github.com/m04kA/WN-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// ListForDateRequest запрос бронирований на дату
type ListForDateRequest struct {
	Date            time.Time
	Status          *string // Фильтр по статусу (опционально)
	IncludeInactive bool    // Включить отменённые и no-show
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListForDateRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Date:            &r.Date,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status := domain.ReservationStatus(*r.Status)
		if !status.Valid() {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email"`
	BookingDate string `json:"bookingDate"` // "2026-01-30"
	StartTime   string `json:"startTime"`   // "18:00"
	Instructor  string `json:"instructor,omitempty"`
	Kind        string `json:"kind"`
	PackageID   *int64 `json:"packageId,omitempty"`
	Status      string `json:"status"`
	Payment     string `json:"payment"`
	PayInStudio bool   `json:"payInStudio"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          b.ID,
		Name:        b.Name,
		Surname:     b.Surname,
		Mobile:      b.Mobile,
		Email:       b.Email,
		BookingDate: b.BookingDate.Format(domain.DateFormat),
		StartTime:   b.StartTime.String(),
		Instructor:  b.Instructor,
		Kind:        string(b.Kind),
		PackageID:   b.PackageID,
		Status:      string(b.Status),
		Payment:     string(b.Payment),
		PayInStudio: b.PayInStudio,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список domain моделей в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}
