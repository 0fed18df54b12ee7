package get_availability

import "time"

// Request модель запроса на получение доступности на день
type Request struct {
	UserID int64     // ID аутентифицированного владельца
	Date   time.Time // Календарная дата (без времени)
}

// Response модель ответа с доступностью по часам
type Response struct {
	Date  time.Time          // Дата, на которую запрашивалась доступность
	Slots []HourAvailability // По одной записи на каждый рабочий час, по возрастанию
}

// HourAvailability доступность одного часового слота
type HourAvailability struct {
	Hour      int  // Час начала слота (0-23)
	Available bool // true, если слот свободен
}
