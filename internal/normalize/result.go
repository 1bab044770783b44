package normalize

import "encoding/json"

// Outcome различает проверенную запись и исходные данные, отданные как есть
type Outcome int

const (
	Validated Outcome = iota
	Degraded
)

func (o Outcome) String() string {
	if o == Degraded {
		return "degraded"
	}
	return "validated"
}

// Warning описывает одно замечание проверки. Index указывает на элемент
// списка и отсутствует для одиночных записей.
type Warning struct {
	Index   *int   `json:"index,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Result - итог нормализации: либо Record, либо Raw с предупреждениями
type Result[T any] struct {
	Outcome  Outcome
	Record   T
	Raw      json.RawMessage
	Warnings []Warning
}

func validated[T any](record T, warnings []Warning) Result[T] {
	return Result[T]{Outcome: Validated, Record: record, Warnings: warnings}
}

func degraded[T any](raw json.RawMessage, warnings []Warning) Result[T] {
	return Result[T]{Outcome: Degraded, Raw: raw, Warnings: warnings}
}

// Data возвращает значение для поля data ответа
func (r Result[T]) Data() any {
	if r.Outcome == Degraded {
		return r.Raw
	}
	return r.Record
}
