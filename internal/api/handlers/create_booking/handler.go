package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/WN-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/WN-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateOrTime   = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput        = "некорректные данные бронирования"
	msgCustomerBlocked     = "бронирование для этого клиента недоступно"
	msgDateNotBookable     = "выбранная дата недоступна для бронирования"
	msgDateBlocked         = "выбранная дата закрыта администратором"
	msgSlotNotFound        = "выбранного времени нет в расписании"
	msgSlotFull            = "в выбранном слоте нет свободных мест"
	msgTooLateToBook       = "слишком поздно для бронирования этого слота"
	msgNoActivePackage     = "у клиента нет активированного пакета занятий"
	msgNoSessionsRemaining = "в пакете не осталось занятий"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: email=%s, error=%v", req.Email, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrCustomerBlocked):
			h.logger.Warn("POST /bookings - Customer blocked: email=%s", req.Email)
			handlers.RespondForbidden(w, msgCustomerBlocked)

		case errors.Is(err, createBooking.ErrDateNotBookable):
			h.logger.Warn("POST /bookings - Date not bookable: email=%s, date=%s", req.Email, req.Date)
			handlers.RespondBadRequest(w, msgDateNotBookable)

		case errors.Is(err, createBooking.ErrDateBlocked):
			h.logger.Warn("POST /bookings - Date blocked: email=%s, date=%s", req.Email, req.Date)
			handlers.RespondConflict(w, msgDateBlocked)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: email=%s, date=%s, time=%s", req.Email, req.Date, req.StartTime)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrSlotFull):
			h.logger.Warn("POST /bookings - Slot full: email=%s, date=%s, time=%s", req.Email, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotFull)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: email=%s, date=%s, time=%s", req.Email, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrNoActivePackage):
			h.logger.Warn("POST /bookings - No active package: email=%s", req.Email)
			handlers.RespondConflict(w, msgNoActivePackage)

		case errors.Is(err, createBooking.ErrNoSessionsRemaining):
			h.logger.Warn("POST /bookings - No sessions remaining: email=%s", req.Email)
			handlers.RespondConflict(w, msgNoSessionsRemaining)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, email=%s, date=%s",
		result.ID, req.Email, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
