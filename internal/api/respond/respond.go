package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

type result struct {
	Result interface{} `json:"result"`
}

type failure struct {
	Error string `json:"error"`
}

// JSON writes v as the response body with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

// OK responds with 200 and {"result": data}.
func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, result{Result: data})
}

// Created responds with 201 and {"result": data}.
func Created(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusCreated, result{Result: data})
}

// Fail responds with status and {"error": err}.
func Fail(w http.ResponseWriter, status int, err error) {
	JSON(w, status, failure{Error: err.Error()})
}
