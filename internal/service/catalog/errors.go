package catalog

import "errors"

var (
	// ErrNoBusiness возвращается, когда у пользователя нет привязанного бизнеса
	ErrNoBusiness = errors.New("user has no linked business")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog service: internal error")
)
