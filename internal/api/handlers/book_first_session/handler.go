package book_first_session

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/WN-BookingService/internal/api/handlers"
	packagesService "github.com/m04kA/WN-BookingService/internal/service/packages"
	createBooking "github.com/m04kA/WN-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidPackageID    = "некорректный идентификатор пакета"
	msgInvalidDateOrTime   = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgPackageNotFound     = "пакет не найден"
	msgPackageNotActivated = "пакет еще не активирован администратором"
	msgDateNotBookable     = "выбранная дата недоступна для бронирования"
	msgDateBlocked         = "выбранная дата закрыта администратором"
	msgSlotNotFound        = "выбранного времени нет в расписании"
	msgSlotFull            = "в выбранном слоте нет свободных мест"
	msgTooLateToBook       = "слишком поздно для бронирования этого слота"
	msgNoSessionsRemaining = "в пакете не осталось занятий"
	msgCustomerBlocked     = "бронирование для этого клиента недоступно"
)

type Handler struct {
	useCase        CreateBookingUseCase
	packageService PackageService
	logger         Logger
}

func NewHandler(useCase CreateBookingUseCase, packageService PackageService, logger Logger) *Handler {
	return &Handler{
		useCase:        useCase,
		packageService: packageService,
		logger:         logger,
	}
}

// Handle POST /api/v1/packages/{packageId}/first-session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	packageID, err := strconv.ParseInt(mux.Vars(r)["packageId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /packages/{packageId}/first-session - Invalid package id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	var req FirstSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /packages/%d/first-session - Invalid request body: %v", packageID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Клиент и тип занятия определяются самим пакетом
	pkg, err := h.packageService.GetByID(r.Context(), packageID)
	if err != nil {
		if errors.Is(err, packagesService.ErrPackageNotFound) {
			h.logger.Warn("POST /packages/%d/first-session - Package not found", packageID)
			handlers.RespondNotFound(w, msgPackageNotFound)
			return
		}
		h.logger.Error("POST /packages/%d/first-session - Failed to fetch package: %v", packageID, err)
		handlers.RespondInternalError(w)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(pkg)
	if err != nil {
		h.logger.Warn("POST /packages/%d/first-session - Failed to parse request: %v", packageID, err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrNoActivePackage):
			h.logger.Warn("POST /packages/%d/first-session - Package not activated", packageID)
			handlers.RespondConflict(w, msgPackageNotActivated)

		case errors.Is(err, createBooking.ErrNoSessionsRemaining):
			h.logger.Warn("POST /packages/%d/first-session - No sessions remaining", packageID)
			handlers.RespondConflict(w, msgNoSessionsRemaining)

		case errors.Is(err, createBooking.ErrCustomerBlocked):
			h.logger.Warn("POST /packages/%d/first-session - Customer blocked: email=%s", packageID, pkg.Email)
			handlers.RespondForbidden(w, msgCustomerBlocked)

		case errors.Is(err, createBooking.ErrDateNotBookable):
			h.logger.Warn("POST /packages/%d/first-session - Date not bookable: date=%s", packageID, req.Date)
			handlers.RespondBadRequest(w, msgDateNotBookable)

		case errors.Is(err, createBooking.ErrDateBlocked):
			h.logger.Warn("POST /packages/%d/first-session - Date blocked: date=%s", packageID, req.Date)
			handlers.RespondConflict(w, msgDateBlocked)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /packages/%d/first-session - Slot not found: date=%s, time=%s", packageID, req.Date, req.StartTime)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrSlotFull):
			h.logger.Warn("POST /packages/%d/first-session - Slot full: date=%s, time=%s", packageID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotFull)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /packages/%d/first-session - Too late to book: date=%s, time=%s", packageID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /packages/%d/first-session - Invalid input: %v", packageID, err)
			handlers.RespondBadRequest(w, msgInvalidDateOrTime)

		default:
			h.logger.Error("POST /packages/%d/first-session - Failed to create booking: %v", packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /packages/%d/first-session - Booking created: booking_id=%d, email=%s",
		packageID, result.ID, pkg.Email)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
