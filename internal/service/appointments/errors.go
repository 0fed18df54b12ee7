package appointments

import "errors"

var (
	// ErrNoBusiness возвращается, когда у пользователя нет привязанного бизнеса
	ErrNoBusiness = errors.New("user has no linked business")

	// ErrAppointmentNotFound возвращается, когда бронирование не найдено
	// или принадлежит другому бизнесу (различие намеренно не раскрывается)
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments service: internal error")
)
