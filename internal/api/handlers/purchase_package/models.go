package purchase_package

import (
	"time"

	purchasePackage "github.com/m04kA/WN-BookingService/internal/usecase/purchase_package"
)

// PurchasePackageRequest HTTP запрос на покупку пакета занятий
type PurchasePackageRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Mobile  string `json:"mobile"`
	Email   string `json:"email"`
	Type    string `json:"type"` // single, package8, package10, package12

	RedemptionCode *string `json:"redemptionCode,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PurchasePackageRequest) ToUseCaseRequest() *purchasePackage.Request {
	return &purchasePackage.Request{
		Name:           r.Name,
		Surname:        r.Surname,
		Mobile:         r.Mobile,
		Email:          r.Email,
		Type:           r.Type,
		RedemptionCode: r.RedemptionCode,
	}
}

// PurchasePackageResponse HTTP ответ с купленным пакетом.
// Код активации возвращается один раз при покупке - он нужен
// администратору для активации.
type PurchasePackageResponse struct {
	ID             int64  `json:"id"`
	Email          string `json:"email"`
	Type           string `json:"type"`
	TotalSessions  int    `json:"totalSessions"`
	UsedSessions   int    `json:"usedSessions"`
	ActivationCode string `json:"activationCode"`
	Activated      bool   `json:"activated"`
	Payment        string `json:"payment"`
	PurchasedAt    string `json:"purchasedAt"`
	BonusGranted   bool   `json:"bonusGranted"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *purchasePackage.Response) *PurchasePackageResponse {
	return &PurchasePackageResponse{
		ID:             resp.ID,
		Email:          resp.Email,
		Type:           resp.Type,
		TotalSessions:  resp.TotalSessions,
		UsedSessions:   resp.UsedSessions,
		ActivationCode: resp.ActivationCode,
		Activated:      resp.Activated,
		Payment:        resp.Payment,
		PurchasedAt:    resp.PurchasedAt.Format(time.RFC3339),
		BonusGranted:   resp.BonusGranted,
	}
}
