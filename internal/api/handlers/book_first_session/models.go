package book_first_session

import (
	"time"

	"github.com/m04kA/WN-BookingService/internal/domain"
	packagesModels "github.com/m04kA/WN-BookingService/internal/service/packages/models"
	createBooking "github.com/m04kA/WN-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/WN-BookingService/pkg/types"
)

// FirstSessionRequest HTTP запрос на первую запись по пакету.
// Данные клиента берутся из самого пакета.
type FirstSessionRequest struct {
	Date        string `json:"date"`      // "2026-01-30"
	StartTime   string `json:"startTime"` // "18:00"
	Instructor  string `json:"instructor,omitempty"`
	PayInStudio bool   `json:"payInStudio"`
}

// ToUseCaseRequest собирает запрос use case из HTTP запроса и пакета
func (r *FirstSessionRequest) ToUseCaseRequest(pkg *packagesModels.PackageResponse) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Name:        pkg.Name,
		Surname:     pkg.Surname,
		Mobile:      pkg.Mobile,
		Email:       pkg.Email,
		Date:        date,
		StartTime:   startTime,
		Instructor:  r.Instructor,
		Kind:        string(domain.PackageType(pkg.Type).BookingKind()),
		PayInStudio: r.PayInStudio,
	}, nil
}

// FirstSessionResponse HTTP ответ с созданным бронированием
type FirstSessionResponse struct {
	ID                int64  `json:"id"`
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
func FromUseCaseResponse(resp *createBooking.Response) *FirstSessionResponse {
	return &FirstSessionResponse{
		ID:                resp.ID,
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
