package auth

import "errors"

var (
	// ErrEmailTaken возвращается при регистрации с занятым email
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials возвращается при неверном email или пароле
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken возвращается при недействительном или просроченном токене
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth service: internal error")
)
