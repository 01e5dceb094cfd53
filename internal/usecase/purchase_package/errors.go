package purchase_package

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("purchase_package: invalid input data")

	// ErrCustomerBlocked возвращается, когда клиент находится в черном списке
	ErrCustomerBlocked = errors.New("purchase_package: customer is blocked")

	// ErrRedemptionCodeNotFound возвращается, когда код приглашения не существует
	ErrRedemptionCodeNotFound = errors.New("purchase_package: redemption code not found")

	// ErrRedemptionCodeUsed возвращается, когда код приглашения уже погашен
	// или еще не выдан
	ErrRedemptionCodeUsed = errors.New("purchase_package: redemption code is not redeemable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("purchase_package: internal error")
)
