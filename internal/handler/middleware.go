package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/twilio/twilio-go/client"
	"go.uber.org/zap"

	"github.com/brightbeginnings/daycare-voice-service/pkg/logger"
)

// GlobalLoggingMiddleware logs all HTTP requests
func GlobalLoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Create a response writer wrapper to capture status code
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		logger.Base().Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.RequestURI),
			zap.String("remote_addr", r.RemoteAddr),
			zap.Int("status", wrapped.statusCode),
			zap.Duration("latency", time.Since(start)),
		)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// TwilioSignatureMiddleware rejects webhook requests whose X-Twilio-Signature
// does not match. Skipped when no auth token is configured so local testing
// with curl keeps working.
func TwilioSignatureMiddleware(authToken, publicBaseURL string, enabled bool) func(http.Handler) http.Handler {
	validator := client.NewRequestValidator(authToken)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enabled || authToken == "" {
				next.ServeHTTP(w, r)
				return
			}

			if err := r.ParseForm(); err != nil {
				http.Error(w, "bad form body", http.StatusBadRequest)
				return
			}

			params := make(map[string]string, len(r.PostForm))
			for key := range r.PostForm {
				params[key] = r.PostForm.Get(key)
			}

			url := strings.TrimRight(publicBaseURL, "/") + r.URL.RequestURI()
			signature := r.Header.Get("X-Twilio-Signature")
			if !validator.Validate(url, params, signature) {
				logger.Base().Warn("rejected webhook with invalid signature",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr))
				http.Error(w, "invalid signature", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
