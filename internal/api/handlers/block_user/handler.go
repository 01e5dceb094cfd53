package block_user

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/WN-BookingService/internal/api/handlers"
	customersService "github.com/m04kA/WN-BookingService/internal/service/customers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidEmail       = "некорректный email клиента"
	msgNotBlocked         = "клиент не заблокирован"
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

// HandleBlock POST /api/v1/admin/users/{email}/block
func (h *Handler) HandleBlock(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	// Тело с причиной опционально
	var req BlockUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /admin/users/{email}/block - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Block(r.Context(), email, req.Reason); err != nil {
		if errors.Is(err, customersService.ErrInvalidInput) {
			h.logger.Warn("POST /admin/users/{email}/block - Invalid email")
			handlers.RespondBadRequest(w, msgInvalidEmail)
			return
		}
		h.logger.Error("POST /admin/users/{email}/block - Failed to block: email=%s, error=%v", email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/users/{email}/block - Customer blocked: email=%s", email)
	handlers.RespondJSON(w, http.StatusOK, BlockUserResponse{Email: email, Blocked: true})
}

// HandleUnblock DELETE /api/v1/admin/users/{email}/block
func (h *Handler) HandleUnblock(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	if err := h.service.Unblock(r.Context(), email); err != nil {
		if errors.Is(err, customersService.ErrNotBlocked) {
			h.logger.Warn("DELETE /admin/users/{email}/block - Not blocked: email=%s", email)
			handlers.RespondNotFound(w, msgNotBlocked)
			return
		}
		h.logger.Error("DELETE /admin/users/{email}/block - Failed to unblock: email=%s, error=%v", email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/users/{email}/block - Customer unblocked: email=%s", email)
	handlers.RespondJSON(w, http.StatusOK, BlockUserResponse{Email: email, Blocked: false})
}
