package create_appointment

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	UserID        int64     // ID аутентифицированного владельца
	ServiceID     int64     // ID услуги
	StartAt       time.Time // Момент начала (дата + час)
	CustomerName  string    // Имя клиента (обязательно)
	CustomerPhone *string   // Телефон клиента (опционально)
	Notes         *string   // Заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	AppointmentID int64     // ID созданного бронирования
	BusinessID    int64     // ID бизнеса
	ServiceID     int64     // ID услуги
	StartAt       time.Time // Момент начала
	Status        string    // Статус бронирования
	CreatedAt     time.Time // Время создания
}
