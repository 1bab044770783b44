package normalize

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	dateLayouts     = []string{"2006-01-02"}
	timeLayouts     = []string{"15:04:05", "15:04"}
	dateTimeLayouts = []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
	}
)

// newValidator настраивает валидатор: имена полей берутся из тегов json,
// форматы дат и времени проверяются отдельными тегами
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Ошибки регистрации возможны только при пустом имени тега
	_ = v.RegisterValidation("isodate", layoutValidator(dateLayouts))
	_ = v.RegisterValidation("isotime", layoutValidator(timeLayouts))
	_ = v.RegisterValidation("isodatetime", layoutValidator(dateTimeLayouts))
	return v
}

func layoutValidator(layouts []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return parsesWithAny(fl.Field().String(), layouts)
	}
}

func parsesWithAny(value string, layouts []string) bool {
	for _, layout := range layouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}
