package note

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// UserID is the backend's identifier of a user. The backend may send it as a
// JSON number or a JSON string; both decode to the same textual form.
type UserID string

func (id UserID) String() string {
	return string(id)
}

// IsZero reports whether the id is empty.
func (id UserID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

func (id *UserID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode user id: %w", err)
		}
		*id = UserID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode user id: %w", err)
	}
	*id = UserID(n.String())
	return nil
}

// MarshalJSON writes integer ids as JSON numbers so the backend receives the
// same type it issued.
func (id UserID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Session is the identity established once per client start. It is
// immutable and passed explicitly to whatever renders or persists notes.
type Session struct {
	UserID   UserID `json:"user_id" yaml:"user_id"`
	Username string `json:"username" yaml:"username"`
}

func (s Session) Validate() error {
	if s.UserID.IsZero() {
		return ErrNoSession
	}
	return nil
}

func (s Session) Greeting() string {
	return fmt.Sprintf("Hello, %s!", s.Username)
}

type Note struct {
	ID        string    `json:"id" yaml:"id"`
	UserID    UserID    `json:"user_id,omitempty" yaml:"user_id,omitempty"`
	Content   string    `json:"content" yaml:"content"`
	Timestamp Timestamp `json:"timestamp" yaml:"timestamp"`
}

// IsBlank reports whether the note has nothing worth persisting.
func (n Note) IsBlank() bool {
	return Blank(n.Content)
}

// Blank reports whether content is empty after trimming whitespace.
func Blank(content string) bool {
	return strings.TrimSpace(content) == ""
}
