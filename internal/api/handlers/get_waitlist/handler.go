package get_waitlist

import (
	"net/http"

	"github.com/m04kA/WN-BookingService/internal/api/handlers"
)

type Handler struct {
	service WaitlistService
	logger  Logger
}

func NewHandler(service WaitlistService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/waitlist
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/waitlist - Failed to get waitlist: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/waitlist - Waitlist retrieved: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
