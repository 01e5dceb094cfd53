package create_booking

import (
	"time"

	"github.com/m04kA/WN-BookingService/internal/domain"
	createBooking "github.com/m04kA/WN-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/WN-BookingService/pkg/types"
)

// CreateBookingRequest HTTP запрос на создание бронирования
type CreateBookingRequest struct {
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email"`
	Date        string `json:"date"`      // "2026-01-30"
	StartTime   string `json:"startTime"` // "18:00"
	Instructor  string `json:"instructor,omitempty"`
	Kind        string `json:"kind"`
	PayInStudio bool   `json:"payInStudio"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Name:        r.Name,
		Surname:     r.Surname,
		Mobile:      r.Mobile,
		Email:       r.Email,
		Date:        date,
		StartTime:   startTime,
		Instructor:  r.Instructor,
		Kind:        r.Kind,
		PayInStudio: r.PayInStudio,
	}, nil
}

// CreateBookingResponse HTTP ответ с созданным бронированием
type CreateBookingResponse struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Surname           string `json:"surname"`
	Email             string `json:"email"`
	Date              string `json:"date"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	Instructor        string `json:"instructor,omitempty"`
	Kind              string `json:"kind"`
	Status            string `json:"status"`
	Payment           string `json:"payment"`
	PackageID         *int64 `json:"packageId,omitempty"`
	SessionsRemaining *int   `json:"sessionsRemaining,omitempty"`
	CreatedAt         string `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:                resp.ID,
		Name:              resp.Name,
		Surname:           resp.Surname,
		Email:             resp.Email,
		Date:              resp.BookingDate.Format(domain.DateFormat),
		StartTime:         resp.StartTime.String(),
		EndTime:           resp.EndTime.String(),
		Instructor:        resp.Instructor,
		Kind:              resp.Kind,
		Status:            resp.Status,
		Payment:           resp.Payment,
		PackageID:         resp.PackageID,
		SessionsRemaining: resp.SessionsRemaining,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
	}
}
