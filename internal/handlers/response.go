package handlers

import (
	"encoding/json"
	"net/http"
)

type payload struct {
	key   string
	value any
}

func kv(key string, value any) payload {
	return payload{key: key, value: value}
}

// respondJSON writes v as the whole response body. Used for the list
// endpoint, which returns a bare JSON array.
func respondJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// respondWith assembles an object body out of key/value pairs.
func respondWith(w http.ResponseWriter, code int, payloads ...payload) {
	body := make(map[string]any, len(payloads))
	for _, pl := range payloads {
		body[pl.key] = pl.value
	}
	respondJSON(w, code, body)
}

func respondError(w http.ResponseWriter, code int, errCode, message string) {
	respondWith(w, code,
		kv("error", errCode),
		kv("message", message),
	)
}
