package note

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DisplayLayout is how note timestamps are shown on a card.
const DisplayLayout = "2006-01-02 15:04:05"

// Layouts accepted from the backend. Zoneless layouts are read in the local
// zone.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	ClockLayout,
	"1/2/2006, 3:04:05 PM",
	"2006-01-02",
}

// Timestamp keeps the raw value received from the backend alongside the
// parsed time, so a value no layout understands is still shown as is.
type Timestamp struct {
	Raw  string
	Time time.Time
}

// ParseTimestamp never fails: an unknown format yields a Timestamp with a
// zero Time and the raw value preserved.
func ParseTimestamp(raw string) Timestamp {
	raw = strings.TrimSpace(raw)
	ts := Timestamp{Raw: raw}
	if raw == "" {
		return ts
	}

	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			ts.Time = t
			return ts
		}
	}

	return ts
}

// NewTimestamp builds a timestamp for a note created on this client.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Raw: t.Format(ClockLayout), Time: t}
}

func (t Timestamp) IsZero() bool {
	return t.Raw == "" && t.Time.IsZero()
}

// Format renders the timestamp in loc. Unparsed values come back verbatim.
func (t Timestamp) Format(loc *time.Location) string {
	if t.Time.IsZero() {
		return t.Raw
	}
	if loc == nil {
		loc = time.Local
	}
	return t.Time.In(loc).Format(DisplayLayout)
}

func (t Timestamp) String() string {
	return t.Format(time.Local)
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode timestamp: %w", err)
	}
	*t = ParseTimestamp(s)
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Raw != "" {
		return json.Marshal(t.Raw)
	}
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}

// MarshalYAML keeps YAML output in the same textual form as JSON.
func (t Timestamp) MarshalYAML() (interface{}, error) {
	if t.Raw != "" {
		return t.Raw, nil
	}
	if t.Time.IsZero() {
		return nil, nil
	}
	return t.Time.Format(time.RFC3339), nil
}
