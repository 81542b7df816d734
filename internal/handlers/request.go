package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/AlenaMolokova/nationalcode/internal/utils"
	"github.com/AlenaMolokova/nationalcode/internal/validation"
)

const maxBodyBytes = 4 << 10

var (
	errUnsupportedCode = errors.New("code must be a string, an integer or null")
	errBodyTooLarge    = errors.New("request body too large")
)

type codeRequest struct {
	Code json.RawMessage `json:"code"`
}

// readCodeInput turns a request body into a validator input. A text/plain body
// is taken verbatim; otherwise the body is JSON with an optional "code" field.
// A body over maxBodyBytes is rejected whole with errBodyTooLarge.
func readCodeInput(w http.ResponseWriter, r *http.Request) (validation.Input, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return validation.Input{}, fmt.Errorf("read body: %w", errBodyTooLarge)
		}
		return validation.Input{}, fmt.Errorf("read body: %w", err)
	}

	if mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mediaType == "text/plain" {
		return validation.Text(string(body)), nil
	}

	var req codeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return validation.Input{}, fmt.Errorf("decode body: %w", err)
	}
	return parseCode(req.Code)
}

func parseCode(raw json.RawMessage) (validation.Input, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return validation.Absent(), nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return validation.Input{}, errUnsupportedCode
		}
		return validation.Text(s), nil
	}

	lit := string(raw)
	n, err := strconv.ParseInt(lit, 10, 64)
	switch {
	case err == nil:
		return validation.Int(n), nil
	case errors.Is(err, strconv.ErrRange):
		// an integer literal too wide for int64 reads the same as text
		return validation.Text(lit), nil
	default:
		return validation.Input{}, errUnsupportedCode
	}
}

func writeReadError(w http.ResponseWriter, err error) {
	if errors.Is(err, errBodyTooLarge) {
		utils.WriteJSONError(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request format")
}
