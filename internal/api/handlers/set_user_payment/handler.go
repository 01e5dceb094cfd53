package set_user_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/WN-BookingService/internal/api/handlers"
	packagesService "github.com/m04kA/WN-BookingService/internal/service/packages"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPayment     = "некорректный статус оплаты"
	msgPackageNotFound    = "у клиента нет пакетов"
)

type Handler struct {
	service PackageService
	logger  Logger
}

func NewHandler(service PackageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/users/{email}/payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	var req SetPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/users/{email}/payment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetPayment(r.Context(), email, req.Payment)
	if err != nil {
		switch {
		case errors.Is(err, packagesService.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/users/{email}/payment - Invalid payment=%s: email=%s", req.Payment, email)
			handlers.RespondBadRequest(w, msgInvalidPayment)

		case errors.Is(err, packagesService.ErrPackageNotFound):
			h.logger.Warn("PATCH /admin/users/{email}/payment - No packages: email=%s", email)
			handlers.RespondNotFound(w, msgPackageNotFound)

		default:
			h.logger.Error("PATCH /admin/users/{email}/payment - Failed to set payment: email=%s, error=%v",
				email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/users/{email}/payment - Payment updated: email=%s, package_id=%d, payment=%s",
		email, result.ID, result.Payment)
	handlers.RespondJSON(w, http.StatusOK, result)
}
