package update_reservation_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/WN-BookingService/internal/api/handlers"
	"github.com/m04kA/WN-BookingService/internal/domain"
	bookingsService "github.com/m04kA/WN-BookingService/internal/service/bookings"
	"github.com/m04kA/WN-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный идентификатор бронирования"
	msgStatusRequired     = "нужно указать статус или статус оплаты"
	msgInvalidStatus      = "некорректный статус"
	msgBookingNotFound    = "бронирование не найдено"
	msgInvalidTransition  = "недопустимая смена статуса"
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

// Handle PATCH /api/v1/reservations/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{bookingId}/status - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/%d/status - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Status == "" && req.Payment == "" {
		h.logger.Warn("PATCH /reservations/%d/status - Empty request", bookingID)
		handlers.RespondBadRequest(w, msgStatusRequired)
		return
	}

	result, err := h.apply(r, bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("PATCH /reservations/%d/status - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrInvalidTransition):
			h.logger.Warn("PATCH /reservations/%d/status - Invalid transition: %v", bookingID, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/%d/status - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /reservations/%d/status - Failed to update: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/%d/status - Updated: status=%s, payment=%s",
		bookingID, result.Status, result.Payment)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// apply выбирает действие по сочетанию полей запроса
func (h *Handler) apply(r *http.Request, bookingID int64, req *UpdateStatusRequest) (*models.BookingResponse, error) {
	ctx := r.Context()

	// Посещение с оплатой - частый сценарий администратора, одно действие
	if req.Status == string(domain.StatusAttended) && req.Payment == string(domain.PaymentPaid) {
		return h.service.MarkAttendedAndPaid(ctx, bookingID)
	}

	if req.Status != "" {
		result, err := h.service.ChangeStatus(ctx, bookingID, req.Status)
		if err != nil || req.Payment == "" {
			return result, err
		}
	}

	return h.service.SetPayment(ctx, bookingID, req.Payment)
}
