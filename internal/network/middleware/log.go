package middleware

import (
	"net/http"
	"time"

	"github.com/denmor86/solbanner/internal/logger"
)

// statusRecorder - обертка над http.ResponseWriter, запоминающая
// код ответа и размер тела для строки лога
type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	size, err := r.ResponseWriter.Write(b)
	r.size += size
	return size, err
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.status = statusCode
}

// LogHandle — middleware-логер для входящих HTTP-запросов.
func LogHandle(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// если обработчик не вызвал WriteHeader, net/http отдаёт 200
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		h.ServeHTTP(rec, r)

		logger.Info("got incoming HTTP request",
			"uri", r.RequestURI,
			"method", r.Method,
			"status", rec.status,
			"duration", time.Since(start),
			"size", rec.size,
		)
	})
}
