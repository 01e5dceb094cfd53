package mailer

// Message письмо для отправки через сервис рассылки
type Message struct {
	To       string            `json:"to"`
	Template string            `json:"template"`
	Params   map[string]string `json:"params"`
}

// Шаблоны писем, известные сервису рассылки
const (
	TemplateBookingConfirmation = "booking_confirmation"
	TemplatePackagePurchased    = "package_purchased"
	TemplatePackageActivated    = "package_activated"
	TemplateWaitlistInvite      = "waitlist_invite"
)

// ErrorResponse модель ошибки от сервиса рассылки
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
