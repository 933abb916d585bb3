package board

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"notekeeper/internal/domain/note"
)

const contentIndent = "    "

// Renderer draws the greeting and note cards as text.
type Renderer struct {
	loc      *time.Location
	greeting *color.Color
	index    *color.Color
	stamp    *color.Color
	marker   *color.Color
	remove   *color.Color
	faint    *color.Color
}

func NewRenderer(noColor bool, loc *time.Location) *Renderer {
	if loc == nil {
		loc = time.Local
	}

	r := &Renderer{
		loc:      loc,
		greeting: color.New(color.FgGreen, color.Bold),
		index:    color.New(color.FgCyan),
		stamp:    color.New(color.FgHiBlack),
		marker:   color.New(color.FgYellow),
		remove:   color.New(color.FgRed),
		faint:    color.New(color.Faint),
	}

	if noColor {
		for _, c := range []*color.Color{r.greeting, r.index, r.stamp, r.marker, r.remove, r.faint} {
			c.DisableColor()
		}
	}

	return r
}

func (r *Renderer) Greeting(w io.Writer, s note.Session) {
	_, _ = r.greeting.Fprintln(w, s.Greeting())
}

// Card prints one card: header with position, time, state marker and the
// delete control, then the content indented.
func (r *Renderer) Card(w io.Writer, index int, c Card) {
	header := r.index.Sprintf("[%d]", index) + " " + r.stamp.Sprint(c.Note.Timestamp.Format(r.loc))
	if m := marker(c); m != "" {
		header += " " + r.marker.Sprint(m)
	}
	header += " " + r.remove.Sprint("[x]")
	fmt.Fprintln(w, header)

	if note.Blank(c.Note.Content) {
		fmt.Fprintln(w, contentIndent+r.faint.Sprint("(empty)"))
		return
	}
	for _, line := range strings.Split(strings.TrimRight(c.Note.Content, "\n"), "\n") {
		fmt.Fprintln(w, contentIndent+line)
	}
}

func (r *Renderer) Board(w io.Writer, cards []Card) {
	if len(cards) == 0 {
		fmt.Fprintln(w, r.faint.Sprint("No notes yet."))
		return
	}
	for i, c := range cards {
		r.Card(w, i+1, c)
	}
}

func marker(c Card) string {
	switch {
	case c.State == StateUnsavedNew:
		return "(unsaved)"
	case c.Focused:
		return "(editing)"
	default:
		return ""
	}
}
