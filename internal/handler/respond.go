package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report errors under the wire field names, not the Go ones.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type fieldErrors map[string]string

// validateStruct returns nil when v passes its validate tags, otherwise a
// field -> message map suitable for a 400 response.
func validateStruct(v any) fieldErrors {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	out := fieldErrors{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = messageForTag(fe.Tag(), fe.Param())
		}
		return out
	}

	out["_"] = "invalid payload"
	return out
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email"
	case "min":
		return "must be at least " + param + " characters"
	case "len":
		return "must be exactly " + param + " characters"
	case "gte":
		return "must be at least " + param
	case "oneof":
		return "must be one of: " + param
	case "datetime":
		return "must be a date in the form " + param
	default:
		return "invalid value"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeFieldErrors(w http.ResponseWriter, fe fieldErrors) {
	writeJSON(w, http.StatusBadRequest, map[string]any{"errors": fe})
}
