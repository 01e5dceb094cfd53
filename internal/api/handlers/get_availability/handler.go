package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/WN-BookingService/internal/api/handlers"
	"github.com/m04kA/WN-BookingService/internal/domain"
	getAvailability "github.com/m04kA/WN-BookingService/internal/usecase/get_availability"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDays = "некорректное значение days"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?from=YYYY-MM-DD&days=N
// Параметр date=YYYY-MM-DD - сокращение для одной даты (from=date, days=1)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq := &getAvailability.Request{}

	query := r.URL.Query()

	if date := query.Get("date"); date != "" {
		parsed, err := time.Parse(domain.DateFormat, date)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid date=%s: %v", date, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		useCaseReq.From = parsed
		useCaseReq.Days = 1
	} else {
		if from := query.Get("from"); from != "" {
			parsed, err := time.Parse(domain.DateFormat, from)
			if err != nil {
				h.logger.Warn("GET /availability - Invalid from=%s: %v", from, err)
				handlers.RespondBadRequest(w, msgInvalidDate)
				return
			}
			useCaseReq.From = parsed
		}

		if days := query.Get("days"); days != "" {
			parsed, err := strconv.Atoi(days)
			if err != nil || parsed < 0 {
				h.logger.Warn("GET /availability - Invalid days=%s", days)
				handlers.RespondBadRequest(w, msgInvalidDays)
				return
			}
			useCaseReq.Days = parsed
		}
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)

		default:
			h.logger.Error("GET /availability - Failed to compute availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Returned %d days", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
