// Package normalize проверяет и приводит сырые ответы провайдера к
// каноническим моделям. Несоответствие схеме здесь не считается ошибкой:
// одиночные записи деградируют до исходных данных, а списки теряют только
// непрошедшие проверку элементы.
package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ridwaanhall/SpaceX/internal/models"
	"go.uber.org/zap"
)

// Normalizer выполняет проверку схем ресурсов
type Normalizer struct {
	validate *validator.Validate
	logger   *zap.Logger
}

// New создаёт Normalizer
func New(logger *zap.Logger) *Normalizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Normalizer{validate: newValidator(), logger: logger}
}

// Stats проверяет объект статистики
func (n *Normalizer) Stats(raw json.RawMessage) Result[models.Stats] {
	return single[models.Stats](n, "stats", raw)
}

// Launch проверяет детальную запись запуска
func (n *Normalizer) Launch(raw json.RawMessage) Result[models.LaunchDetail] {
	return single[models.LaunchDetail](n, "launch-detail", raw)
}

// Upcoming проверяет одну запись расписания
func (n *Normalizer) Upcoming(raw json.RawMessage) Result[models.UpcomingLaunch] {
	return single[models.UpcomingLaunch](n, "upcoming", raw)
}

// UpcomingList проверяет каждый элемент расписания отдельно и считает
// счётчики по прошедшим проверку записям
func (n *Normalizer) UpcomingList(raw json.RawMessage) Result[models.UpcomingLaunches] {
	items, warnings, err := list[models.UpcomingLaunch](n, "upcoming", raw)
	if err != nil {
		return degraded[models.UpcomingLaunches](raw, warnings)
	}

	out := models.UpcomingLaunches{TotalCount: len(items), Launches: items}
	for _, item := range items {
		if item.MissionStatus == "upcoming" {
			out.UpcomingCount++
		}
		if item.MissionType != nil && *item.MissionType == "starlink" {
			out.StarlinkCount++
		}
	}
	return validated(out, warnings)
}

// LaunchList проверяет каждый прошедший запуск отдельно
func (n *Normalizer) LaunchList(raw json.RawMessage) Result[models.LaunchList] {
	items, warnings, err := list[models.Launch](n, "launches", raw)
	if err != nil {
		return degraded[models.LaunchList](raw, warnings)
	}
	return validated(models.LaunchList{TotalLaunches: len(items), Launches: items}, warnings)
}

// check декодирует и проверяет одну запись. Возвращает список замечаний,
// пустой при успехе.
func check[T any](n *Normalizer, raw json.RawMessage) (T, []Warning) {
	var record T
	if err := decodeStrict(raw, &record); err != nil {
		return record, []Warning{decodeWarning(err)}
	}
	if err := n.validate.Struct(&record); err != nil {
		return record, validationWarnings(err)
	}
	return record, nil
}

func single[T any](n *Normalizer, resource string, raw json.RawMessage) Result[T] {
	record, warnings := check[T](n, raw)
	if len(warnings) > 0 {
		n.logger.Warn("Payload failed schema validation, passing raw data through",
			zap.String("resource", resource),
			zap.Int("warnings", len(warnings)),
			zap.Any("details", warnings),
		)
		return degraded[T](raw, warnings)
	}
	return validated(record, nil)
}

var errNotArray = errors.New("payload is not a JSON array")

func list[T any](n *Normalizer, resource string, raw json.RawMessage) ([]T, []Warning, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil || elements == nil {
		n.logger.Warn("List payload is not an array", zap.String("resource", resource))
		return nil, []Warning{{Message: errNotArray.Error()}}, errNotArray
	}

	items := make([]T, 0, len(elements))
	var warnings []Warning
	for i, element := range elements {
		record, itemWarnings := check[T](n, element)
		if len(itemWarnings) > 0 {
			for _, w := range itemWarnings {
				w.Index = intPtr(i)
				warnings = append(warnings, w)
			}
			n.logger.Debug("List item dropped",
				zap.String("resource", resource),
				zap.Int("index", i),
				zap.Any("details", itemWarnings),
			)
			continue
		}
		items = append(items, record)
	}

	if dropped := len(elements) - len(items); dropped > 0 {
		n.logger.Warn("List items had validation issues",
			zap.String("resource", resource),
			zap.Int("dropped", dropped),
			zap.Int("total", len(elements)),
		)
	}
	return items, warnings, nil
}

func decodeStrict(raw json.RawMessage, dst any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return errors.New("expected a JSON object")
	}
	return json.Unmarshal(trimmed, dst)
}

func decodeWarning(err error) Warning {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return Warning{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
		}
	}
	return Warning{Message: err.Error()}
}

func validationWarnings(err error) []Warning {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Warning{{Message: err.Error()}}
	}
	warnings := make([]Warning, 0, len(verrs))
	for _, fe := range verrs {
		warnings = append(warnings, Warning{
			Field:   fieldPath(fe.Namespace()),
			Message: describe(fe),
		})
	}
	return warnings
}

// fieldPath убирает имя корневой структуры и встроенной Launch
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		namespace = namespace[i+1:]
	}
	return strings.TrimPrefix(namespace, "Launch.")
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "max":
		return "ensure this field has no more than " + fe.Param() + " characters"
	case "url":
		return "enter a valid URL"
	case "isodate":
		return "date has wrong format, use YYYY-MM-DD"
	case "isotime":
		return "time has wrong format, use hh:mm[:ss]"
	case "isodatetime":
		return "datetime has wrong format, use ISO 8601"
	default:
		return "failed on the '" + fe.Tag() + "' rule"
	}
}

func intPtr(i int) *int {
	return &i
}
