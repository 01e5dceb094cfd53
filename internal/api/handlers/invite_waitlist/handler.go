package invite_waitlist

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/WN-BookingService/internal/api/handlers"
	waitlistService "github.com/m04kA/WN-BookingService/internal/service/waitlist"
)

const (
	msgInvalidEmail    = "некорректный email клиента"
	msgAlreadyRedeemed = "клиент уже воспользовался приглашением"
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

// Handle POST /api/v1/admin/waitlist/{email}/invite
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	result, err := h.service.Invite(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, waitlistService.ErrInvalidInput):
			h.logger.Warn("POST /admin/waitlist/{email}/invite - Invalid email")
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, waitlistService.ErrAlreadyRedeemed):
			h.logger.Warn("POST /admin/waitlist/{email}/invite - Already redeemed: email=%s", email)
			handlers.RespondConflict(w, msgAlreadyRedeemed)

		default:
			h.logger.Error("POST /admin/waitlist/{email}/invite - Failed to invite: email=%s, error=%v",
				email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/waitlist/{email}/invite - Invited: email=%s, status=%s", email, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
