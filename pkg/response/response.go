package response

import (
	"encoding/json"
	"net/http"

	"github.com/dmelo/catalog/pkg/apperr"
	"github.com/dmelo/catalog/pkg/logger"
	"github.com/dmelo/catalog/pkg/orm"
)

type envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func write(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// Success sends a 200 JSON response with data.
func Success(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, envelope{Status: http.StatusOK, Data: data})
}

// Created sends a 201 JSON response with data.
func Created(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusCreated, envelope{Status: http.StatusCreated, Data: data})
}

// NoContent sends an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error sends a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, envelope{Status: status, Message: message})
}

// ValidationError sends a 400 with field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	write(w, http.StatusBadRequest, envelope{
		Status:  http.StatusBadRequest,
		Message: "Validation failed",
		Errors:  errs,
	})
}

// Paginated sends a 200 response with the page as the data payload.
func Paginated(w http.ResponseWriter, page orm.Page) {
	write(w, http.StatusOK, envelope{Status: http.StatusOK, Data: page})
}

// FromError maps a service error onto its HTTP representation. Unexpected
// errors are logged and surfaced as a generic 500; typed errors keep their
// message and, for validation, the field map.
func FromError(w http.ResponseWriter, err error) {
	e, ok := apperr.As(err)
	if !ok {
		logger.Error("unhandled error", "error", err.Error())
		Error(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	if e.Kind == apperr.KindInternal {
		logger.Error("internal error", "error", e.Error())
	}

	write(w, e.Status(), envelope{
		Status:  e.Status(),
		Message: e.Message,
		Errors:  fieldsOrNil(e.Fields),
	})
}

func fieldsOrNil(fields map[string]string) interface{} {
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Unauthorized sends a 401.
func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "Unauthorized")
}

// Forbidden sends a 403.
func Forbidden(w http.ResponseWriter) {
	Error(w, http.StatusForbidden, "Forbidden")
}

// NotFound sends a 404.
func NotFound(w http.ResponseWriter) {
	Error(w, http.StatusNotFound, "Not found")
}
