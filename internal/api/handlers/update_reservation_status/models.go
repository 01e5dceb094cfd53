package update_reservation_status

// UpdateStatusRequest HTTP запрос на смену статуса бронирования.
// Оба поля опциональны, но хотя бы одно должно быть задано.
// Пара attended+paid применяется одним действием.
type UpdateStatusRequest struct {
	Status  string `json:"status,omitempty"`  // pending, confirmed, attended, no_show, cancelled
	Payment string `json:"payment,omitempty"` // paid, unpaid
}
