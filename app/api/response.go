package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidBody is returned when a request body is not valid JSON for its target.
var ErrInvalidBody = errors.New("invalid JSON body")

// Response is the success envelope shared by every endpoint.
type Response struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorResponse is the failure envelope written by Handle.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteJSON writes v as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// OK writes data in the success envelope with status 200.
func OK(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

// Created writes data in the success envelope with status 201.
func Created(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusCreated, Response{Success: true, Data: data})
}

// DecodeJSON decodes the request body into v.
func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return nil
}
