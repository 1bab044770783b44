package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

var benchLogger = zap.NewNop()

// BenchmarkLoggingMiddleware измеряет производительность middleware логирования
func BenchmarkLoggingMiddleware(b *testing.B) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	loggingMiddleware := LoggingMiddleware(benchLogger)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodGet, "/stats", nil)
		w := httptest.NewRecorder()
		loggingMiddleware(handler).ServeHTTP(w, req)
	}
}

// BenchmarkRequestIDMiddleware измеряет назначение идентификатора запроса
func BenchmarkRequestIDMiddleware(b *testing.B) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodGet, "/stats", nil)
		w := httptest.NewRecorder()
		RequestIDMiddleware(handler).ServeHTTP(w, req)
	}
}

// BenchmarkGzipMiddleware измеряет производительность middleware сжатия с большим ответом
func BenchmarkGzipMiddleware(b *testing.B) {
	body := []byte(`[` + strings.Repeat(`{"vehicle":"Falcon 9","launchSite":"SLC-40"},`, 200) + `{}]`)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodGet, "/upcoming", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		w := httptest.NewRecorder()
		GzipMiddleware(handler).ServeHTTP(w, req)
	}
}

// BenchmarkConcurrentLoggingMiddleware измеряет производительность конкурентного middleware логирования
func BenchmarkConcurrentLoggingMiddleware(b *testing.B) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	loggingMiddleware := LoggingMiddleware(benchLogger)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req := httptest.NewRequest(http.MethodGet, "/stats", nil)
			w := httptest.NewRecorder()
			loggingMiddleware(handler).ServeHTTP(w, req)
		}
	})
}
