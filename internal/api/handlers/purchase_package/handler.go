package purchase_package

import (
	"errors"
	"net/http"

	"github.com/m04kA/WN-BookingService/internal/api/handlers"
	purchasePackage "github.com/m04kA/WN-BookingService/internal/usecase/purchase_package"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidInput           = "некорректные данные покупки"
	msgCustomerBlocked        = "покупка для этого клиента недоступна"
	msgRedemptionCodeNotFound = "код приглашения не найден"
	msgRedemptionCodeUsed     = "код приглашения уже использован"
)

type Handler struct {
	useCase PurchasePackageUseCase
	logger  Logger
}

func NewHandler(useCase PurchasePackageUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/packages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PurchasePackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /packages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, purchasePackage.ErrInvalidInput):
			h.logger.Warn("POST /packages - Invalid input: email=%s, error=%v", req.Email, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, purchasePackage.ErrCustomerBlocked):
			h.logger.Warn("POST /packages - Customer blocked: email=%s", req.Email)
			handlers.RespondForbidden(w, msgCustomerBlocked)

		case errors.Is(err, purchasePackage.ErrRedemptionCodeNotFound):
			h.logger.Warn("POST /packages - Redemption code not found: email=%s", req.Email)
			handlers.RespondNotFound(w, msgRedemptionCodeNotFound)

		case errors.Is(err, purchasePackage.ErrRedemptionCodeUsed):
			h.logger.Warn("POST /packages - Redemption code not redeemable: email=%s", req.Email)
			handlers.RespondConflict(w, msgRedemptionCodeUsed)

		default:
			h.logger.Error("POST /packages - Failed to purchase package: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /packages - Package purchased: package_id=%d, email=%s, type=%s",
		result.ID, req.Email, req.Type)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
