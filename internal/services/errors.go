package services

import "errors"

// Пользовательские ошибки четырёх потоков. Несуществующий логин и неверный
// пароль, как и просроченный/чужой/использованный токен, намеренно
// схлопываются в одну ошибку — чтобы по ответам нельзя было перебирать
// учётные записи и токены.
var (
	ErrInvalidCredentials = errors.New("неверный логин или пароль")
	ErrInvalidPassword    = errors.New("пароль не удовлетворяет политике")
	ErrInvalidUsername    = errors.New("недопустимое имя пользователя")
	ErrUsernameTaken      = errors.New("имя пользователя уже занято")
	ErrTokenInvalid       = errors.New("токен недействителен или просрочен")
)
