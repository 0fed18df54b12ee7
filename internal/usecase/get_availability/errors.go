package get_availability

import "errors"

var (
	// ErrNoBusiness возвращается, когда у пользователя нет привязанного бизнеса
	ErrNoBusiness = errors.New("get_availability: user has no linked business")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
