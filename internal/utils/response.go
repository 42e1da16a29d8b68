package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"PATHFINDER_BACK-END/internal/dto"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// WriteErrorResponse writes the standard error envelope
func WriteErrorResponse(w http.ResponseWriter, status int, error string, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: error, Message: message})
}

// DecodeJSONRequest decodes the body into v, rejecting unknown fields and trailing data.
// On failure it writes a 400 response and returns the error.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		msg := "Invalid JSON payload"
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			msg = "Request body is empty"
		case errors.As(err, &syntaxErr):
			msg = fmt.Sprintf("Malformed JSON at position %d", syntaxErr.Offset)
		case errors.As(err, &typeErr):
			msg = fmt.Sprintf("Field %q has the wrong type", typeErr.Field)
		case errors.As(err, &maxErr):
			msg = "Request body too large"
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			msg = "Unknown field " + strings.TrimPrefix(err.Error(), "json: unknown field ")
		}
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request", msg)
		return err
	}
	if dec.More() {
		err := errors.New("request body must contain a single JSON object")
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request", err.Error())
		return err
	}
	return nil
}

// DecodeAndValidate decodes the body into v and runs struct validation on it.
// On failure it writes a 400 response and returns the error.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if err := DecodeJSONRequest(w, r, v); err != nil {
		return err
	}
	if err := ValidateStruct(v); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return err
	}
	return nil
}
