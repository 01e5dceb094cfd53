package block_user

// BlockUserRequest HTTP запрос на блокировку клиента
type BlockUserRequest struct {
	Reason string `json:"reason,omitempty"`
}

// BlockUserResponse HTTP ответ на блокировку/разблокировку
type BlockUserResponse struct {
	Email   string `json:"email"`
	Blocked bool   `json:"blocked"`
}
