// Package envelope формирует ответ {success, message, data} и является
// единственным местом, где категория ошибки превращается в код ответа и
// текст для клиента.
package envelope

import (
	"net/http"
	"strconv"

	"github.com/ridwaanhall/SpaceX/internal/apperr"
	"google.golang.org/grpc/codes"
)

// WarningsHeader - заголовок с числом замечаний проверки схемы
const WarningsHeader = "X-Validation-Warnings"

const (
	MsgDecryption  = "Data decryption failed. Please try again later."
	MsgValidation  = "Invalid request data provided."
	MsgNotFound    = "The requested resource was not found."
	MsgPayload     = "Invalid data format received from SpaceX API."
	MsgUnavailable = "External service temporarily unavailable. Please try again later."
	MsgInternal    = "An unexpected error occurred. Please try again later."
)

// Сообщения об успехе по ресурсам
const (
	MsgStats         = "SpaceX statistics retrieved successfully"
	MsgUpcoming      = "Upcoming launches retrieved successfully"
	MsgUpcomingStats = "Upcoming launches statistics retrieved successfully"
	MsgUpcomingItem  = "Upcoming launch retrieved successfully"
	MsgLaunches      = "SpaceX launches data retrieved successfully"
	MsgLaunch        = "Launch details retrieved successfully"
	MsgDragon        = "Dragon tracking data retrieved successfully"
	MsgDragonSummary = "Dragon tracking summary retrieved successfully"
)

// Envelope - единый формат ответа
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Mapping - внешнее представление категории ошибки
type Mapping struct {
	Status  int
	Code    codes.Code
	Message string
}

// MapKind сопоставляет категории ошибки код HTTP, код gRPC и текст
func MapKind(kind apperr.Kind) Mapping {
	switch kind {
	case apperr.KindDecryption:
		return Mapping{http.StatusInternalServerError, codes.Internal, MsgDecryption}
	case apperr.KindValidation:
		return Mapping{http.StatusBadRequest, codes.InvalidArgument, MsgValidation}
	case apperr.KindNotFound:
		return Mapping{http.StatusNotFound, codes.NotFound, MsgNotFound}
	case apperr.KindInvalidPayload:
		return Mapping{http.StatusBadRequest, codes.FailedPrecondition, MsgPayload}
	case apperr.KindTimeout:
		return Mapping{http.StatusServiceUnavailable, codes.DeadlineExceeded, MsgUnavailable}
	case apperr.KindConnection, apperr.KindUnavailable, apperr.KindUpstream:
		return Mapping{http.StatusServiceUnavailable, codes.Unavailable, MsgUnavailable}
	case apperr.KindInternal:
		return Mapping{http.StatusInternalServerError, codes.Internal, MsgInternal}
	default:
		return Mapping{http.StatusInternalServerError, codes.Internal, MsgInternal}
	}
}

// Success формирует успешный ответ
func Success(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

// Failure формирует ответ об ошибке и возвращает код HTTP. Текст ошибки
// в ответ не попадает.
func Failure(err error) (Envelope, int) {
	m := MapKind(apperr.KindOf(err))
	return Envelope{Success: false, Message: m.Message, Data: nil}, m.Status
}

// SetWarnings выставляет заголовок с числом замечаний, если они есть
func SetWarnings(h http.Header, count int) {
	if count > 0 {
		h.Set(WarningsHeader, strconv.Itoa(count))
	}
}
