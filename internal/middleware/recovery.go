package middleware

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ridwaanhall/SpaceX/internal/apperr"
	"github.com/ridwaanhall/SpaceX/internal/envelope"
	"go.uber.org/zap"
)

var errPanic = errors.New("handler panic")

// committedWriter отмечает, что обработчик уже начал ответ
type committedWriter struct {
	http.ResponseWriter
	committed bool
}

func (w *committedWriter) WriteHeader(status int) {
	w.committed = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *committedWriter) Write(b []byte) (int, error) {
	w.committed = true
	return w.ResponseWriter.Write(b)
}

// RecoveryMiddleware перехватывает панику обработчика и отвечает конвертом 500.
// Подробности паники попадают только в лог. Если ответ уже начат, соединение
// обрывается через http.ErrAbortHandler.
func RecoveryMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			w := &committedWriter{ResponseWriter: rw}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("Handler panic recovered",
					zap.String("request_id", RequestIDFromContext(r.Context())),
					zap.String("path", r.URL.Path),
					zap.Any("panic", rec),
					zap.Bool("committed", w.committed),
					zap.Stack("stack"),
				)
				if w.committed {
					panic(http.ErrAbortHandler)
				}

				env, status := envelope.Failure(apperr.New(apperr.KindInternal, "", errPanic))
				data, _ := json.Marshal(env)
				rw.Header().Set("Content-Type", "application/json")
				rw.WriteHeader(status)
				_, _ = rw.Write(data)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
