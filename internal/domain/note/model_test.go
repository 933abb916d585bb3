package note

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    UserID
		wantErr bool
	}{
		{name: "integer", input: `1`, want: "1"},
		{name: "string", input: `"u-42"`, want: "u-42"},
		{name: "null", input: `null`, want: ""},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id UserID
			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestUserID_MarshalJSON(t *testing.T) {
	// Arrange
	payload := struct {
		Numeric UserID `json:"numeric"`
		Text    UserID `json:"text"`
	}{
		Numeric: "7",
		Text:    "abc",
	}

	// Act
	data, err := json.Marshal(payload)

	// Assert
	require.NoError(t, err)
	assert.JSONEq(t, `{"numeric": 7, "text": "abc"}`, string(data))
}

func TestSession(t *testing.T) {
	var s Session
	require.NoError(t, json.Unmarshal([]byte(`{"user_id": 1, "username": "alice"}`), &s))

	assert.NoError(t, s.Validate())
	assert.Equal(t, UserID("1"), s.UserID)
	assert.Contains(t, s.Greeting(), "alice")

	assert.ErrorIs(t, Session{Username: "bob"}.Validate(), ErrNoSession)
}

func TestBlank(t *testing.T) {
	assert.True(t, Blank(""))
	assert.True(t, Blank(" \n\t "))
	assert.False(t, Blank(" hi "))
	assert.True(t, Note{Content: "   "}.IsBlank())
}
