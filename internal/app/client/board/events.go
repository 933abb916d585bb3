package board

import (
	"context"
	"sort"
	"sync"
)

// Key identifies a card on the board for its whole lifetime. Background is
// the page itself.
type Key int

const Background Key = 0

// ClickHandler receives a page-wide click at target.
type ClickHandler func(ctx context.Context, target Key)

type listener struct {
	owner   Key
	handler ClickHandler
}

// Listeners is a page-wide click dispatcher with scoped registrations: each
// listener belongs to a card and only hears clicks outside of it.
type Listeners struct {
	mu       sync.Mutex
	next     int
	handlers map[int]listener
}

func NewListeners() *Listeners {
	return &Listeners{handlers: make(map[int]listener)}
}

// AddOutside registers h for clicks whose target is not owner. The returned
// func removes the registration and is safe to call more than once.
func (l *Listeners) AddOutside(owner Key, h ClickHandler) (remove func()) {
	l.mu.Lock()
	l.next++
	id := l.next
	l.handlers[id] = listener{owner: owner, handler: h}
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.handlers, id)
			l.mu.Unlock()
		})
	}
}

// Dispatch calls, in registration order, every handler whose owner is not
// target. Handlers run without the dispatcher lock held and may remove
// themselves.
func (l *Listeners) Dispatch(ctx context.Context, target Key) {
	l.mu.Lock()
	ids := make([]int, 0, len(l.handlers))
	for id, h := range l.handlers {
		if h.owner != target {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	handlers := make([]ClickHandler, 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, l.handlers[id].handler)
	}
	l.mu.Unlock()

	for _, h := range handlers {
		h(ctx, target)
	}
}

// Len returns the number of live registrations.
func (l *Listeners) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.handlers)
}
