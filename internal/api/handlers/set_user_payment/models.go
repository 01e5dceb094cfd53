package set_user_payment

// SetPaymentRequest HTTP запрос на смену статуса оплаты пакета клиента
type SetPaymentRequest struct {
	Payment string `json:"payment"` // paid, unpaid
}
