package get_customer_bookings

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/WN-BookingService/internal/api/handlers"
)

const (
	msgInvalidEmail = "некорректный email клиента"
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

// Handle GET /api/v1/customers/{email}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(mux.Vars(r)["email"])
	if email == "" || !strings.Contains(email, "@") {
		h.logger.Warn("GET /customers/{email}/bookings - Invalid email")
		handlers.RespondBadRequest(w, msgInvalidEmail)
		return
	}

	result, err := h.service.ListForCustomer(r.Context(), email)
	if err != nil {
		h.logger.Error("GET /customers/{email}/bookings - Failed to get bookings: email=%s, error=%v",
			email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /customers/{email}/bookings - Bookings retrieved: email=%s, count=%d",
		email, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
