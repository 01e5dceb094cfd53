package purchase_package

import "time"

// Request модель запроса на покупку пакета занятий
type Request struct {
	Name    string // Имя клиента
	Surname string // Фамилия клиента
	Mobile  string // Телефон клиента
	Email   string // Email клиента

	Type string // Тип пакета: single, package8, package10, package12

	// Код приглашения из листа ожидания; погашение дает +1 занятие
	RedemptionCode *string
}

// Response модель ответа с купленным пакетом
type Response struct {
	ID             int64     // ID пакета
	Email          string    // Email клиента
	Type           string    // Тип пакета
	TotalSessions  int       // Всего занятий (с учетом бонуса за приглашение)
	UsedSessions   int       // Использовано занятий
	ActivationCode string    // Код активации для администратора
	Activated      bool      // Пакет активирован
	Payment        string    // Статус оплаты
	PurchasedAt    time.Time // Момент покупки

	BonusGranted bool // Был ли начислен бонус за код приглашения
}
