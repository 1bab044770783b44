// Package aggregate упорядочивает и подсчитывает записи о запусках.
package aggregate

import (
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	dateLayouts = []string{"2006-01-02", "01/02/2006"}
	timeLayouts = []string{"15:04:05", "15:04"}
)

// ValidOrders - допустимые направления сортировки
var ValidOrders = map[string]bool{
	"asc":  true,
	"desc": true,
}

// SortOptions задаёт сортировку списка запусков
type SortOptions struct {
	ByDateTime bool
	Descending bool
}

// ParseSortOptions разбирает параметры sort и order, подставляя значения
// по умолчанию для неизвестных значений
func ParseSortOptions(sortField, order string) SortOptions {
	options := SortOptions{Descending: true}
	if strings.EqualFold(sortField, "datetime") {
		options.ByDateTime = true
	}
	order = strings.ToLower(order)
	if ValidOrders[order] {
		options.Descending = order == "desc"
	}
	return options
}

// LaunchTimestamp объединяет дату и время запуска в одну метку.
// Нераспознанная дата даёт нулевое время, нераспознанное время - полночь.
func LaunchTimestamp(date, clock string) time.Time {
	day, ok := parseFirst(strings.TrimSpace(date), dateLayouts)
	if !ok {
		return time.Time{}
	}
	t, ok := parseFirst(strings.TrimSpace(clock), timeLayouts)
	if !ok {
		return day
	}
	return day.Add(time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond()))
}

func parseFirst(value string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortByLaunchDateTime возвращает новый срез, упорядоченный по дате и времени
// запуска. Сортировка стабильна. Если key паникует, возвращается копия входа
// в исходном порядке.
func SortByLaunchDateTime[T any](records []T, key func(T) (string, string), descending bool, logger *zap.Logger) (out []T) {
	out = make([]T, len(records))
	copy(out, records)

	defer func() {
		if r := recover(); r != nil {
			if logger != nil {
				logger.Warn("Sorting failed, returning input order", zap.Any("panic", r))
			}
			out = make([]T, len(records))
			copy(out, records)
		}
	}()

	stamps := make([]time.Time, len(records))
	for i, rec := range records {
		stamps[i] = LaunchTimestamp(key(rec))
	}

	idx := make([]int, len(records))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if descending {
			return stamps[idx[a]].After(stamps[idx[b]])
		}
		return stamps[idx[a]].Before(stamps[idx[b]])
	})

	for i, j := range idx {
		out[i] = records[j]
	}
	return out
}
