package note

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDGenerator(t *testing.T) {
	now := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)

	tests := []struct {
		name    string
		scheme  string
		check   func(t *testing.T, id string)
		wantErr error
	}{
		{
			name:   "default is uuid",
			scheme: "",
			check: func(t *testing.T, id string) {
				_, err := uuid.Parse(id)
				assert.NoError(t, err)
			},
		},
		{
			name:   "uuid",
			scheme: "UUID",
			check: func(t *testing.T, id string) {
				_, err := uuid.Parse(id)
				assert.NoError(t, err)
			},
		},
		{
			name:   "clock is date space time",
			scheme: "clock",
			check: func(t *testing.T, id string) {
				assert.Equal(t, "3/5/2024 2:07:09 PM", id)
			},
		},
		{
			name:    "unknown",
			scheme:  "snowflake",
			wantErr: ErrUnknownIDScheme,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewIDGenerator(tt.scheme)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, gen.NewID(now))
		})
	}
}

func TestClockGenerator_CollidesWithinOneSecond(t *testing.T) {
	now := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)
	gen := ClockGenerator{}

	assert.Equal(t, gen.NewID(now), gen.NewID(now.Add(500*time.Millisecond)))
	assert.NotEqual(t, UUIDGenerator{}.NewID(now), UUIDGenerator{}.NewID(now))
}
