package board

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"notekeeper/internal/domain/note"
)

func TestRenderer_Greeting(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(true, time.UTC)

	r.Greeting(&buf, note.Session{UserID: "1", Username: "alice"})

	assert.Equal(t, "Hello, alice!\n", buf.String())
}

func TestRenderer_Board(t *testing.T) {
	tests := []struct {
		name     string
		cards    []Card
		contains []string
		absent   []string
	}{
		{
			name: "single saved note",
			cards: []Card{{
				Key:   1,
				Note:  note.Note{ID: "a", Content: "hi", Timestamp: note.ParseTimestamp("2024-03-05T14:07:09Z")},
				State: StateSaved,
			}},
			contains: []string{"[1] 2024-03-05 14:07:09 [x]", "    hi"},
			absent:   []string{"[2]", "(unsaved)", "(editing)"},
		},
		{
			name: "unsaved blank note",
			cards: []Card{{
				Key:     1,
				Note:    note.Note{ID: "n", Timestamp: note.NewTimestamp(time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC))},
				State:   StateUnsavedNew,
				Focused: true,
			}},
			contains: []string{"2024-03-05 09:00:00 (unsaved) [x]", "(empty)"},
		},
		{
			name: "editing multiline note",
			cards: []Card{{
				Key:     3,
				Note:    note.Note{ID: "m", Content: "one\ntwo\n", Timestamp: note.ParseTimestamp("not a date")},
				State:   StateEditing,
				Focused: true,
			}},
			contains: []string{"[1] not a date (editing) [x]", "    one\n    two\n"},
		},
		{
			name:     "empty board",
			contains: []string{"No notes yet."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewRenderer(true, time.UTC)

			r.Board(&buf, tt.cards)

			out := buf.String()
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRenderer_OneCardPerNote(t *testing.T) {
	var buf bytes.Buffer
	b := New(new(MockBackend), discardLogger())
	b.Populate([]note.Note{{ID: "a", Content: "hi", Timestamp: note.ParseTimestamp("2024-03-05T14:07:09Z")}})

	NewRenderer(true, time.UTC).Board(&buf, b.Cards())

	assert.Equal(t, 1, strings.Count(buf.String(), "[x]"))
	assert.Contains(t, buf.String(), "hi")
}
