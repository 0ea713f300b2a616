package repository

import "errors"

// Закрытый набор ошибок хранилищ. Сервисный слой переводит их в
// пользовательские ошибки, сюда драйверные детали не протекают.
var (
	ErrNotFound         = errors.New("запись не найдена")
	ErrConflict         = errors.New("нарушение уникальности")
	ErrStoreUnavailable = errors.New("хранилище недоступно")
)
