package gift_sessions

// GiftSessionsRequest HTTP запрос на добавление подарочных занятий
type GiftSessionsRequest struct {
	Sessions int `json:"sessions"`
}
