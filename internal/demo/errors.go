package demo

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/dashxhq/dashx-go/pkg/dashxerr"
)

var (
	// errMissingParam marks a required query parameter that was not supplied.
	errMissingParam = errors.New("missing required parameter")
	// errInvalidParam marks a query parameter that could not be parsed.
	errInvalidParam = errors.New("invalid parameter")
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Timestamp     string `json:"timestamp"`
	Status        int    `json:"status"`
	Error         string `json:"error"`
	Message       string `json:"message"`
	ExceptionType string `json:"exceptionType"`
	Path          string `json:"path"`
}

// classify maps err to an HTTP status and a short type name.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, errMissingParam):
		return http.StatusBadRequest, "MissingParameterError"
	case errors.Is(err, errInvalidParam):
		return http.StatusBadRequest, "InvalidParameterError"
	case dashxerr.IsKind(err, dashxerr.KindValidation):
		return http.StatusBadRequest, "ValidationError"
	case dashxerr.IsKind(err, dashxerr.KindConfiguration):
		return http.StatusInternalServerError, "ConfigurationError"
	case dashxerr.IsKind(err, dashxerr.KindGraphQL):
		return http.StatusInternalServerError, "GraphQLError"
	case dashxerr.IsKind(err, dashxerr.KindTransport):
		return http.StatusInternalServerError, "TransportError"
	}
	return http.StatusInternalServerError, "Error"
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, kind := classify(err)
	if status >= http.StatusInternalServerError {
		zap.L().Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	writeErrorResponse(w, r, status, err.Error(), kind)
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, message, kind string) {
	if message == "" {
		message = "An unexpected error occurred"
	}
	writeJSON(w, status, ErrorResponse{
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
		Status:        status,
		Error:         http.StatusText(status),
		Message:       message,
		ExceptionType: kind,
		Path:          r.URL.Path,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("error encoding response", zap.Error(err))
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeErrorResponse(w, r, http.StatusNotFound, "Route not found: "+r.URL.Path, "NotFound")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeErrorResponse(w, r, http.StatusMethodNotAllowed,
		"Method "+r.Method+" not allowed for "+r.URL.Path, "MethodNotAllowed")
}
