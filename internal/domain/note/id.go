package note

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	IDSchemeUUID  = "uuid"
	IDSchemeClock = "clock"
)

// ClockLayout reproduces a browser's en-US "date time" string, e.g.
// "3/5/2024 2:07:09 PM". Two notes created within one second collide.
const ClockLayout = "1/2/2006 3:04:05 PM"

// IDGenerator issues ids for notes created on the client.
type IDGenerator interface {
	NewID(now time.Time) string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(time.Time) string {
	return uuid.NewString()
}

type ClockGenerator struct{}

func (ClockGenerator) NewID(now time.Time) string {
	return now.Format(ClockLayout)
}

func NewIDGenerator(scheme string) (IDGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "", IDSchemeUUID:
		return UUIDGenerator{}, nil
	case IDSchemeClock:
		return ClockGenerator{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIDScheme, scheme)
	}
}
