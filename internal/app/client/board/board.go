// Package board is the presentation layer of the notes client: an ordered
// set of note cards, their edit/delete/create interactions, and the
// synchronization of each interaction with the backend.
//
// The board never retries and never surfaces backend failures; outcomes are
// logged and the visible state only changes when the backend confirms.
package board

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/note"
)

var (
	ErrCardNotFound = errors.New("card not found")
	ErrNotFocused   = errors.New("card is not focused")
)

// Backend is the part of the data layer the board persists through.
type Backend interface {
	SaveNote(ctx context.Context, n note.Note) error
	UpdateNote(ctx context.Context, id, content string) error
	DeleteNote(ctx context.Context, id string) error
}

type CardState int

const (
	StateUnsavedNew CardState = iota
	StateSaved
	StateEditing
	StateDeleted
)

func (s CardState) String() string {
	switch s {
	case StateUnsavedNew:
		return "unsaved-new"
	case StateSaved:
		return "saved"
	case StateEditing:
		return "editing"
	case StateDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Card is a snapshot of one card.
type Card struct {
	Key     Key
	Note    note.Note
	State   CardState
	Focused bool
	Pending bool
}

type card struct {
	key   Key
	note  note.Note
	state CardState
	// save or delete in flight
	pending bool
	// tears down the outside-click listener of an unsaved card
	removeListener func()
}

type Board struct {
	backend   Backend
	ids       note.IDGenerator
	listeners *Listeners
	log       *slog.Logger
	now       func() time.Time

	mu      sync.Mutex
	session *note.Session
	cards   []*card
	lastKey Key
	focused Key

	wg sync.WaitGroup
}

type Option func(*Board)

func WithIDGenerator(g note.IDGenerator) Option {
	return func(b *Board) {
		b.ids = g
	}
}

func WithClock(now func() time.Time) Option {
	return func(b *Board) {
		b.now = now
	}
}

func WithListeners(l *Listeners) Option {
	return func(b *Board) {
		b.listeners = l
	}
}

func New(backend Backend, log *slog.Logger, opts ...Option) *Board {
	b := &Board{
		backend:   backend,
		ids:       note.UUIDGenerator{},
		listeners: NewListeners(),
		log:       log.With(slog.String("component", "board")),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetSession records the identity the board persists new notes for.
func (b *Board) SetSession(s note.Session) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.session = &s
}

func (b *Board) Session() (note.Session, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.session == nil {
		return note.Session{}, false
	}
	return *b.session, true
}

// Populate appends one saved card per note in the given order. Notes whose
// id is already on the board are skipped. It returns the number of cards
// added.
func (b *Board) Populate(notes []note.Note) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	added := 0
	for _, n := range notes {
		if b.hasIDLocked(n.ID) {
			b.log.Warn("duplicate note id skipped", slog.String("note_id", n.ID))
			continue
		}
		b.insertLocked(n, StateSaved)
		added++
	}
	return added
}

// Create inserts a blank focused card and registers its outside-click
// listener. The note is persisted by the first outside click that finds it
// non-blank.
func (b *Board) Create(ctx context.Context) Key {
	// The create control is itself a click on the page outside every card.
	b.click(ctx, Background, false)

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	id := b.ids.NewID(now)
	if b.hasIDLocked(id) {
		fallback := note.UUIDGenerator{}.NewID(now)
		b.log.Warn("note id collision, using uuid",
			slog.String("note_id", id),
			slog.String("fallback_id", fallback),
		)
		id = fallback
	}

	n := note.Note{ID: id, Timestamp: note.NewTimestamp(now)}
	if b.session != nil {
		n.UserID = b.session.UserID
	}

	c := b.insertLocked(n, StateUnsavedNew)
	b.focusLocked(c)

	key := c.key
	c.removeListener = b.listeners.AddOutside(key, func(ctx context.Context, _ Key) {
		b.persistNew(ctx, key)
	})

	return key
}

// Type replaces the content of the focused card.
func (b *Board) Type(key Key, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	c := b.findLocked(key)
	if c == nil {
		return ErrCardNotFound
	}
	if b.focused != key {
		return ErrNotFocused
	}
	c.note.Content = text
	return nil
}

// Click delivers a page-wide click at target: the focused card loses focus
// if the click lands elsewhere, a clicked card gains focus, and every
// outside-click listener not owned by target fires.
func (b *Board) Click(ctx context.Context, target Key) error {
	if target != Background {
		b.mu.Lock()
		c := b.findLocked(target)
		b.mu.Unlock()
		if c == nil {
			return ErrCardNotFound
		}
	}

	b.click(ctx, target, true)
	return nil
}

// Blur takes edit focus away from the focused card, if any.
func (b *Board) Blur(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.blurLocked(ctx)
}

// Delete activates the delete control of a card. A saved card disappears
// only after the backend confirms; an unsaved card was never persisted and
// is dropped at once.
func (b *Board) Delete(ctx context.Context, key Key) error {
	b.mu.Lock()
	c := b.findLocked(key)
	b.mu.Unlock()
	if c == nil {
		return ErrCardNotFound
	}

	b.click(ctx, key, false)

	b.mu.Lock()
	defer b.mu.Unlock()

	if c.state == StateDeleted {
		return nil
	}
	if c.pending {
		b.log.Debug("request already in flight, delete ignored", slog.String("note_id", c.note.ID))
		return nil
	}

	if c.state == StateUnsavedNew {
		b.removeLocked(c)
		b.log.Debug("unsaved note discarded", slog.String("note_id", c.note.ID))
		return nil
	}

	c.pending = true
	id := c.note.ID
	b.goAsync(ctx, func(ctx context.Context) error {
		return b.backend.DeleteNote(ctx, id)
	}, func(err error) {
		b.mu.Lock()
		defer b.mu.Unlock()

		c.pending = false
		if err != nil {
			b.log.Error("failed to delete note", slog.String("note_id", id), slog.String("error", err.Error()))
			return
		}
		b.log.Info("note deleted", slog.String("note_id", id))
		b.removeLocked(c)
	})

	return nil
}

// Cards returns the board in display order.
func (b *Board) Cards() []Card {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Card, 0, len(b.cards))
	for _, c := range b.cards {
		out = append(out, b.snapshotLocked(c))
	}
	return out
}

func (b *Board) Card(key Key) (Card, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c := b.findLocked(key)
	if c == nil {
		return Card{}, false
	}
	return b.snapshotLocked(c), true
}

// Focused returns the key of the focused card or Background.
func (b *Board) Focused() Key {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.focused
}

func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.cards)
}

// Listeners exposes the page-wide click dispatcher.
func (b *Board) Listeners() *Listeners {
	return b.listeners
}

// Wait blocks until every backend call started by the board has finished.
func (b *Board) Wait() {
	b.wg.Wait()
}

func (b *Board) click(ctx context.Context, target Key, focus bool) {
	b.mu.Lock()
	if b.focused != Background && (b.focused != target || !focus) {
		b.blurLocked(ctx)
	}
	if focus && target != Background {
		if c := b.findLocked(target); c != nil {
			b.focusLocked(c)
		}
	}
	b.mu.Unlock()

	b.listeners.Dispatch(ctx, target)
}

func (b *Board) focusLocked(c *card) {
	b.focused = c.key
	if c.state == StateSaved {
		c.state = StateEditing
	}
}

func (b *Board) blurLocked(ctx context.Context) {
	c := b.findLocked(b.focused)
	b.focused = Background
	if c == nil || c.state != StateEditing {
		return
	}

	c.state = StateSaved
	if c.note.IsBlank() {
		b.log.Debug("blank content not persisted", slog.String("note_id", c.note.ID))
		return
	}

	b.updateLocked(ctx, c)
}

func (b *Board) updateLocked(ctx context.Context, c *card) {
	id, content := c.note.ID, c.note.Content
	b.goAsync(ctx, func(ctx context.Context) error {
		return b.backend.UpdateNote(ctx, id, content)
	}, func(err error) {
		if err != nil {
			b.log.Error("failed to update note", slog.String("note_id", id), slog.String("error", err.Error()))
			return
		}
		b.log.Info("note updated", slog.String("note_id", id))
	})
}

// persistNew is the outside-click listener of an unsaved card.
func (b *Board) persistNew(ctx context.Context, key Key) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c := b.findLocked(key)
	if c == nil || c.state != StateUnsavedNew || c.pending {
		return
	}
	if c.note.IsBlank() {
		b.log.Debug("blank note not saved", slog.String("note_id", c.note.ID))
		return
	}
	if b.session == nil {
		b.log.Error("no session, note not saved", slog.String("note_id", c.note.ID))
		return
	}

	c.note.UserID = b.session.UserID
	c.pending = true
	n := c.note

	b.goAsync(ctx, func(ctx context.Context) error {
		return b.backend.SaveNote(ctx, n)
	}, func(err error) {
		b.mu.Lock()
		defer b.mu.Unlock()

		c.pending = false
		if err != nil {
			b.log.Error("failed to save note", slog.String("note_id", n.ID), slog.String("error", err.Error()))
			return
		}
		b.log.Info("note saved", slog.String("note_id", n.ID))

		if c.state != StateUnsavedNew {
			return
		}
		c.removeListener()
		if b.focused == c.key {
			// the pending edit goes out on blur
			c.state = StateEditing
			return
		}
		c.state = StateSaved

		// edited while the save was in flight
		if c.note.Content != n.Content && !c.note.IsBlank() {
			b.updateLocked(ctx, c)
		}
	})
}

func (b *Board) goAsync(ctx context.Context, call func(context.Context) error, done func(error)) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		done(call(ctx))
	}()
}

func (b *Board) insertLocked(n note.Note, state CardState) *card {
	b.lastKey++
	c := &card{key: b.lastKey, note: n, state: state}
	b.cards = append(b.cards, c)
	return c
}

func (b *Board) removeLocked(c *card) {
	c.state = StateDeleted
	if c.removeListener != nil {
		c.removeListener()
	}
	if b.focused == c.key {
		b.focused = Background
	}
	for i, other := range b.cards {
		if other == c {
			b.cards = append(b.cards[:i], b.cards[i+1:]...)
			break
		}
	}
}

func (b *Board) findLocked(key Key) *card {
	if key == Background {
		return nil
	}
	for _, c := range b.cards {
		if c.key == key {
			return c
		}
	}
	return nil
}

func (b *Board) hasIDLocked(id string) bool {
	for _, c := range b.cards {
		if c.note.ID == id {
			return true
		}
	}
	return false
}

func (b *Board) snapshotLocked(c *card) Card {
	return Card{
		Key:     c.key,
		Note:    c.note,
		State:   c.state,
		Focused: b.focused == c.key,
		Pending: c.pending,
	}
}
