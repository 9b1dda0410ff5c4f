package rpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/evgeniy-krivenko/bookshelf/pkg/logger/slogx"
)

const maxBodyBytes = 1 << 20

type envelope struct {
	Result any    `json:"result,omitempty"`
	Error  *Error `json:"error,omitempty"`
}

// decodeInput reads a single strict JSON value from the body, or from ?input= on GET.
// An absent input decodes as an empty object.
func decodeInput(r *http.Request, dst any) error {
	var raw []byte
	if r.Method == http.MethodGet {
		raw = []byte(r.URL.Query().Get("input"))
	} else {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
		if err != nil {
			return fmt.Errorf("%w: read body: %v", errBadRequest, err)
		}
		if len(body) > maxBodyBytes {
			return fmt.Errorf("%w: body exceeds %d bytes", errBadRequest, maxBodyBytes)
		}
		raw = body
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("{}")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid input: %v", errBadRequest, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("%w: input must contain a single JSON value", errBadRequest)
	}

	return nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, code int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slogx.Error(r.Context(), "write response", slogx.Err(err))
	}
}

func writeResult(w http.ResponseWriter, r *http.Request, result any) {
	writeJSON(w, r, http.StatusOK, envelope{Result: result})
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code, body := toError(err)
	if code == http.StatusInternalServerError {
		slogx.Error(r.Context(), "procedure failed", slogx.Err(err))
	}

	writeJSON(w, r, code, envelope{Error: &body})
}
