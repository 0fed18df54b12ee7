package create_appointment

import "errors"

var (
	// ErrNoBusiness возвращается, когда у пользователя нет привязанного бизнеса
	ErrNoBusiness = errors.New("create_appointment: user has no linked business")

	// ErrServiceNotFound возвращается, когда услуга не найдена или принадлежит
	// другому бизнесу (различие намеренно не раскрывается)
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrSlotTaken возвращается, когда слот уже занят другим бронированием
	ErrSlotTaken = errors.New("create_appointment: time slot already booked")

	// ErrOutsideWorkingHours возвращается, когда час начала вне рабочего календаря
	ErrOutsideWorkingHours = errors.New("create_appointment: start time is outside working hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
