package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRequest          = errors.New("request failed")
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrRejected         = errors.New("request rejected by server")
	ErrDecode           = errors.New("malformed response")
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method  string
	Path    string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: сервер вернул статус %d", e.Method, e.Path, e.Code)
	}
	return fmt.Sprintf("%s %s: сервер вернул статус %d: %s", e.Method, e.Path, e.Code, e.Message)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

const maxMessageLen = 200

// errorMessage extracts a human readable reason from an error body. FastAPI
// style {"detail": ...}, {"message": ...} and {"error": ...} are recognized;
// anything else is returned trimmed.
func errorMessage(body []byte) string {
	var payload struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
		Error   string          `json:"error"`
	}

	if err := json.Unmarshal(body, &payload); err == nil {
		if len(payload.Detail) > 0 {
			var detail string
			if err := json.Unmarshal(payload.Detail, &detail); err == nil {
				return detail
			}
			return truncate(string(payload.Detail))
		}
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}

	return truncate(strings.TrimSpace(string(body)))
}

func truncate(s string) string {
	if len(s) <= maxMessageLen {
		return s
	}
	return s[:maxMessageLen-3] + "..."
}
