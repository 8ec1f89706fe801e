package controllers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"blogposts/app/validation"
)

// errorsResponse is the body of every 400 response
type errorsResponse struct {
	ErrorsMessages validation.FieldErrors `json:"errorsMessages"`
}

// Helper methods for consistent response handling

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendValidationErrors(w http.ResponseWriter, errs validation.FieldErrors) {
	sendJSON(w, http.StatusBadRequest, errorsResponse{ErrorsMessages: errs})
}

func sendNotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
}

func sendNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// sendError logs a store or service failure and answers 500 without leaking details
func sendError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, message string, err error) {
	logger.ErrorContext(r.Context(), message,
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	sendJSON(w, http.StatusInternalServerError, map[string]string{"error": message})
}

// decodeInput reads a JSON object body into the struct v one field at a time. A field that
// is missing or has the wrong JSON type is left empty so that validation reports just that
// field. A body that is not a JSON object leaves v empty.
func decodeInput[T any](r *http.Request, v *T) {
	if r.Body == nil {
		return
	}
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&raw); err != nil {
		return
	}

	rv := reflect.ValueOf(v).Elem()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		name := strings.SplitN(rt.Field(i).Tag.Get("json"), ",", 2)[0]
		msg, ok := raw[name]
		if !ok || name == "" || name == "-" {
			continue
		}
		field := reflect.New(rt.Field(i).Type)
		if err := json.Unmarshal(msg, field.Interface()); err != nil {
			continue
		}
		rv.Field(i).Set(field.Elem())
	}
}

const maxBodyBytes = 1 << 20
