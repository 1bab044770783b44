package proto

import "encoding/json"

// Empty - запрос без параметров
type Empty struct{}

// GetUpcomingRequest представляет запрос предстоящего запуска по id
type GetUpcomingRequest struct {
	ID int `json:"id"`
}

// ListLaunchesRequest представляет запрос списка прошедших запусков
type ListLaunchesRequest struct {
	Sort  string `json:"sort,omitempty"`
	Order string `json:"order,omitempty"`
}

// GetLaunchRequest представляет запрос детальной информации о запуске
type GetLaunchRequest struct {
	Link string `json:"link"`
}

// Reply повторяет конверт HTTP-ответа. Warnings - число замечаний проверки схемы.
type Reply struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message"`
	Data     json.RawMessage `json:"data"`
	Warnings int             `json:"warnings,omitempty"`
}

// PingReply представляет ответ проверки состояния
type PingReply struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
