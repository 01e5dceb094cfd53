package delete_user

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/WN-BookingService/internal/api/handlers"
	customersService "github.com/m04kA/WN-BookingService/internal/service/customers"
)

const (
	msgInvalidEmail = "некорректный email клиента"
)

type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/users/{email}
// Удаляет все данные клиента: брони, пакеты, запись листа ожидания
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	if err := h.service.Delete(r.Context(), email); err != nil {
		if errors.Is(err, customersService.ErrInvalidInput) {
			h.logger.Warn("DELETE /admin/users/{email} - Invalid email")
			handlers.RespondBadRequest(w, msgInvalidEmail)
			return
		}
		h.logger.Error("DELETE /admin/users/{email} - Failed to delete customer: email=%s, error=%v", email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/users/{email} - Customer deleted: email=%s", email)
	w.WriteHeader(http.StatusNoContent)
}
