// Package models содержит доменные структуры, описывающие клиента тренера,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

// Client представляет собой основную модель клиента,
// используемую в бизнес-логике и хранилище.
// Даты хранятся строками в отображаемом формате DD/MM/YYYY —
// это единственное представление дат, пересекающее границу системы.
type Client struct {
	ID            int    // Идентификатор записи
	Name          string // Имя клиента (уникальное)
	InstructorUID string // UID тренера, которому принадлежит клиент
	PaymentID     int    // Ссылка на период оплаты в таблице payments
	StartDate     string // Дата начала абонемента в формате DD/MM/YYYY
	FinishDate    string // Дата окончания абонемента в формате DD/MM/YYYY, производная
	Notification  bool   // Начальное значение флага уведомления, при чтении не используется
}

// DummyClient используется для приёма данных из JSON-запроса на регистрацию клиента,
// прежде чем конвертировать их в Client.
// Дата приходит строкой, чтобы её можно было валидировать и парсить вручную.
type DummyClient struct {
	Name      string `json:"name" validate:"required"`       // Имя клиента
	Payment   string `json:"payment" validate:"required"`    // Метка периода оплаты
	StartDate string `json:"start_date" validate:"required"` // Дата начала в формате DD/MM/YYYY
}

// DummyUpdateClient используется для приёма частичного обновления клиента.
// Пустое поле означает "оставить значение из сохранённой записи".
type DummyUpdateClient struct {
	Name      string `json:"name"`       // Новое имя или пустая строка
	Payment   string `json:"payment"`    // Новая метка периода или пустая строка
	StartDate string `json:"start_date"` // Новая дата начала или пустая строка
}

// ClientInfo — обогащённое представление клиента для списочной выдачи.
// DaysLeft и Notification всегда вычисляются в момент чтения
// и никогда не берутся из хранилища.
type ClientInfo struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Payment    string `json:"payment"`
	StartDate  string `json:"start_date"`
	FinishDate string `json:"finish_date"`
	// DaysLeft — знаковая разница в целых днях между датой окончания и сегодняшним днём.
	DaysLeft     int  `json:"days_left"`
	Notification bool `json:"notification"`
}

// ExpiringClientInfo описывает клиента с истекающим абонементом
// для публикации в очередь уведомлений.
type ExpiringClientInfo struct {
	InstructorEmail    string `json:"instructor_email"`
	InstructorUsername string `json:"instructor_username"`
	ClientName         string `json:"client_name"`
	FinishDate         string `json:"finish_date"`
	DaysLeft           int    `json:"days_left"`
}
