package activate_package

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/WN-BookingService/internal/api/handlers"
	packagesService "github.com/m04kA/WN-BookingService/internal/service/packages"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPackageID   = "некорректный идентификатор пакета"
	msgCodeRequired       = "код активации обязателен"
	msgPackageNotFound    = "пакет не найден"
	msgCodeMismatch       = "код активации не подходит к пакету"
	msgAlreadyActivated   = "пакет уже активирован другим кодом"
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

// Handle POST /api/v1/packages/{packageId}/activate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	packageID, err := strconv.ParseInt(mux.Vars(r)["packageId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /packages/{packageId}/activate - Invalid package id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	var req ActivatePackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /packages/%d/activate - Invalid request body: %v", packageID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Activate(r.Context(), packageID, req.ActivationCode)
	if err != nil {
		switch {
		case errors.Is(err, packagesService.ErrInvalidInput):
			h.logger.Warn("POST /packages/%d/activate - Missing activation code", packageID)
			handlers.RespondBadRequest(w, msgCodeRequired)

		case errors.Is(err, packagesService.ErrPackageNotFound):
			h.logger.Warn("POST /packages/%d/activate - Package not found", packageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, packagesService.ErrCodeMismatch):
			h.logger.Warn("POST /packages/%d/activate - Code mismatch", packageID)
			handlers.RespondConflict(w, msgCodeMismatch)

		case errors.Is(err, packagesService.ErrAlreadyActivated):
			h.logger.Warn("POST /packages/%d/activate - Already activated with another code", packageID)
			handlers.RespondConflict(w, msgAlreadyActivated)

		default:
			h.logger.Error("POST /packages/%d/activate - Failed to activate: %v", packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /packages/%d/activate - Package activated: email=%s", packageID, result.Email)
	handlers.RespondJSON(w, http.StatusOK, result)
}
