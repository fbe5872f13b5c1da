package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены:
	// страница за пределами данных, ноль результатов поиска, неизвестный id.
	ErrNotFound = errors.New("record not found")

	// ErrBadRequest используется для ошибок валидации входных данных:
	// пустой поисковый запрос, отсутствующие поля запроса.
	ErrBadRequest = errors.New("bad request")

	// ErrUnprocessable используется для ошибок хранилища при мутирующих
	// операциях. Детализации нет: любая ошибка store трактуется одинаково.
	ErrUnprocessable = errors.New("unprocessable")
)
