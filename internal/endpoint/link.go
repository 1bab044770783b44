package endpoint

import (
	"errors"
	"regexp"
)

var linkPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,100}$`)

// ErrInvalidLink возвращается для ссылок, не подходящих под формат slug
var ErrInvalidLink = errors.New("link must match ^[A-Za-z0-9_-]{1,100}$")

// ValidateLink проверяет slug запуска перед подстановкой в путь upstream
func ValidateLink(link string) error {
	if !linkPattern.MatchString(link) {
		return ErrInvalidLink
	}
	return nil
}
