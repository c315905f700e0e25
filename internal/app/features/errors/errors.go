// Package errors provides the JSON error surface shared by all features.
//
// Every failure body has the same envelope:
//
//	{ "success": false, "message": "..." }
//
// Validation problems use 400, missing/invalid credentials 401, valid
// credentials with insufficient role 403, missing reports 404, and
// repository failures 500 with a generic message so storage internals
// never reach the client.
package errors

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// Fail writes the standard failure envelope.
func Fail(w http.ResponseWriter, code int, message string) {
	JSON(w, code, map[string]any{
		"success": false,
		"message": message,
	})
}

// ErrorLogger logs internal failures and writes the client-safe body.
// Handlers pass it the real error for the log and a public message for the
// response.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger backed by the app logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// Internal logs err at error level and responds 500 with publicMsg.
func (e *ErrorLogger) Internal(w http.ResponseWriter, r *http.Request, publicMsg string, err error) {
	e.log.Error(publicMsg,
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	Fail(w, http.StatusInternalServerError, publicMsg)
}
