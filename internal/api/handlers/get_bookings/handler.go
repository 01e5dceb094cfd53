package get_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/WN-BookingService/internal/api/handlers"
	"github.com/m04kA/WN-BookingService/internal/domain"
	bookingsService "github.com/m04kA/WN-BookingService/internal/service/bookings"
	"github.com/m04kA/WN-BookingService/internal/service/bookings/models"
)

const (
	msgDateRequired  = "обязательный параметр date отсутствует"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus = "некорректный статус бронирования"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?date=YYYY-MM-DD&status=pending&includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /bookings - Missing date parameter")
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid date=%s: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var statusPtr *string
	if status := query.Get("status"); status != "" {
		statusPtr = &status
	}

	serviceReq := &models.ListForDateRequest{
		Date:            date,
		Status:          statusPtr,
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	result, err := h.service.ListForDate(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, bookingsService.ErrInvalidInput) {
			h.logger.Warn("GET /bookings - Invalid status=%v", statusPtr)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /bookings - Failed to get bookings: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved: date=%s, count=%d", dateStr, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
