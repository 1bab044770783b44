// Package apperr содержит единый тип ошибки конвейера получения данных.
// Каждый компонент возвращает наиболее конкретный вид ошибки, а преобразование
// вида в код ответа и текст для клиента выполняется только в пакете envelope.
package apperr

import (
	"errors"
	"fmt"
)

// Kind определяет категорию ошибки
type Kind int

const (
	// KindInternal - непредвиденная внутренняя ошибка
	KindInternal Kind = iota
	// KindDecryption - не удалось восстановить адрес upstream
	KindDecryption
	// KindValidation - некорректный ввод клиента
	KindValidation
	// KindNotFound - upstream вернул 404 или запись не найдена в коллекции
	KindNotFound
	// KindTimeout - upstream не ответил за отведённое время
	KindTimeout
	// KindConnection - не удалось установить соединение с upstream
	KindConnection
	// KindUnavailable - upstream вернул 5xx
	KindUnavailable
	// KindUpstream - upstream вернул прочий не-2xx ответ
	KindUpstream
	// KindInvalidPayload - тело ответа не JSON или имеет неверную форму
	KindInvalidPayload
)

var kindNames = map[Kind]string{
	KindInternal:       "internal",
	KindDecryption:     "decryption",
	KindValidation:     "validation",
	KindNotFound:       "not_found",
	KindTimeout:        "timeout",
	KindConnection:     "connection",
	KindUnavailable:    "upstream_unavailable",
	KindUpstream:       "upstream_error",
	KindInvalidPayload: "invalid_payload",
}

// String возвращает имя категории для логов
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error - ошибка конвейера с категорией и ресурсом, на котором она возникла
type Error struct {
	Kind     Kind
	Resource string
	Err      error
}

// New создаёт ошибку заданной категории
func New(kind Kind, resource string, err error) *Error {
	return &Error{Kind: kind, Resource: resource, Err: err}
}

// Error реализует интерфейс error
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Resource, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Resource, e.Kind, e.Err)
}

// Unwrap возвращает исходную причину
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf извлекает категорию из цепочки ошибок.
// Ошибки без категории считаются внутренними.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// ResourceOf извлекает имя ресурса из цепочки ошибок
func ResourceOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Resource
	}
	return ""
}

// Is проверяет, относится ли ошибка к указанной категории
func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
