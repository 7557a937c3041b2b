package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// decodeBody decodes a JSON object body into a map so handlers can
// distinguish absent fields from fields of the wrong type. An empty body
// decodes to an empty map.
func decodeBody(r *http.Request) (map[string]any, error) {
	defer r.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, errors.New("request body must be a JSON object")
	}
	if body == nil {
		body = map[string]any{}
	}
	return body, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
