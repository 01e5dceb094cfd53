package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/WN-BookingService/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

const msgAdminTokenRequired = "требуется токен администратора"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// AdminAuth проверяет токен администратора в заголовке X-Admin-Token.
// Сравнение за константное время, чтобы не течь длиной совпадения.
func AdminAuth(token string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(adminTokenHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				logger.Warn("%s %s - Invalid admin token", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgAdminTokenRequired)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
