package ui

// Propagation tells the InputStack whether listeners behind the current one
// may observe the event.
type Propagation int

const (
	Continue Propagation = iota
	Stop
)

// KeyListener handles a key-down. Returning an error aborts the dispatch.
type KeyListener func(ev KeyEvent) (Propagation, error)

// ListenerID identifies a registration so it can be retired later.
type ListenerID uint64

type listenerEntry struct {
	id      ListenerID
	name    string
	fn      KeyListener
	removed bool
}

// InputStack orders the key-down listeners of the UI. The most recently
// prioritized listener runs first; application defaults registered with
// Register sit behind every prioritized listener.
//
// Entries are stored back to front so that promotion is an append.
type InputStack struct {
	entries []*listenerEntry
	nextID  ListenerID
}

// NewInputStack creates an empty stack.
func NewInputStack() *InputStack {
	return &InputStack{}
}

// RegisterTop puts fn in front of every listener currently registered.
func (s *InputStack) RegisterTop(name string, fn KeyListener) ListenerID {
	if fn == nil {
		return 0
	}
	e := s.newEntry(name, fn)
	s.entries = append(s.entries, e)
	return e.id
}

// Register puts fn behind every listener currently registered.
func (s *InputStack) Register(name string, fn KeyListener) ListenerID {
	if fn == nil {
		return 0
	}
	e := s.newEntry(name, fn)
	s.entries = append([]*listenerEntry{e}, s.entries...)
	return e.id
}

func (s *InputStack) newEntry(name string, fn KeyListener) *listenerEntry {
	s.nextID++
	return &listenerEntry{id: s.nextID, name: name, fn: fn}
}

// Unregister removes the listener registered under id.
// Returns false if it was not registered.
func (s *InputStack) Unregister(id ListenerID) bool {
	for i, e := range s.entries {
		if e.id == id {
			e.removed = true
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Dispatch delivers ev front to back until a listener stops it.
// handled is true when a listener returned Stop.
// Listeners unregistered by an earlier listener in the same dispatch are skipped.
func (s *InputStack) Dispatch(ev KeyEvent) (handled bool, err error) {
	snapshot := make([]*listenerEntry, len(s.entries))
	copy(snapshot, s.entries)
	for i := len(snapshot) - 1; i >= 0; i-- {
		e := snapshot[i]
		if e.removed {
			continue
		}
		p, err := e.fn(ev)
		if err != nil {
			return p == Stop, err
		}
		if p == Stop {
			return true, nil
		}
	}
	return false, nil
}

// Len returns the number of registered listeners.
func (s *InputStack) Len() int {
	return len(s.entries)
}

// Front returns the name of the listener that currently runs first.
func (s *InputStack) Front() (string, bool) {
	if len(s.entries) == 0 {
		return "", false
	}
	return s.entries[len(s.entries)-1].name, true
}

// Names lists listener names front to back.
func (s *InputStack) Names() []string {
	out := make([]string, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		out = append(out, s.entries[i].name)
	}
	return out
}
