package gift_sessions

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/WN-BookingService/internal/api/handlers"
	packagesService "github.com/m04kA/WN-BookingService/internal/service/packages"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSessions    = "количество занятий должно быть положительным"
	msgPackageNotFound    = "у клиента нет активированных пакетов"
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

// Handle POST /api/v1/admin/users/{email}/gift
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	var req GiftSessionsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/users/{email}/gift - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Gift(r.Context(), email, req.Sessions)
	if err != nil {
		switch {
		case errors.Is(err, packagesService.ErrInvalidInput):
			h.logger.Warn("POST /admin/users/{email}/gift - Invalid sessions=%d: email=%s", req.Sessions, email)
			handlers.RespondBadRequest(w, msgInvalidSessions)

		case errors.Is(err, packagesService.ErrPackageNotFound):
			h.logger.Warn("POST /admin/users/{email}/gift - No activated packages: email=%s", email)
			handlers.RespondNotFound(w, msgPackageNotFound)

		default:
			h.logger.Error("POST /admin/users/{email}/gift - Failed to gift sessions: email=%s, error=%v",
				email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/users/{email}/gift - Sessions gifted: email=%s, package_id=%d, total=%d",
		email, result.ID, result.TotalSessions)
	handlers.RespondJSON(w, http.StatusOK, result)
}
