package filters

import (
	"fmt"
	"sync"
	"time"

	time_parser "logquery/internal/util/time"
)

// Listener receives the state that resulted from a transition.
type Listener func(snapshot Snapshot)

type listenerEntry struct {
	id       uint64
	listener Listener
}

// FilterState holds the current value of every filter field. Transitions are
// serialized and each one notifies every subscriber exactly once, in order.
// Listeners run while the transition is still in progress, so they must not
// call SetField or Reset on the same state.
type FilterState struct {
	transitionMu sync.Mutex

	valuesMu sync.RWMutex
	values   [fieldCount]string

	listenersMu    sync.Mutex
	listeners      []listenerEntry
	nextListenerID uint64

	location *time.Location
}

type Option func(*FilterState)

// WithLocation sets the timezone date inputs are interpreted in.
func WithLocation(location *time.Location) Option {
	return func(s *FilterState) {
		if location != nil {
			s.location = location
		}
	}
}

func NewFilterState(options ...Option) *FilterState {
	state := &FilterState{
		location: time.Local,
	}

	for _, option := range options {
		option(state)
	}

	return state
}

func (s *FilterState) Get() map[FilterField]string {
	return s.Snapshot().Values()
}

func (s *FilterState) Snapshot() Snapshot {
	s.valuesMu.RLock()
	defer s.valuesMu.RUnlock()

	return Snapshot{values: s.values}
}

func (s *FilterState) Location() *time.Location {
	return s.location
}

func (s *FilterState) SetField(field FilterField, rawValue string, inputKind InputKind) error {
	i, value, err := s.prepare(field, rawValue, inputKind)
	if err != nil {
		return err
	}

	s.transition(func(values *[fieldCount]string) {
		values[i] = value
	})

	return nil
}

// Validate reports the error SetField would return, without changing state
// or notifying.
func (s *FilterState) Validate(field FilterField, rawValue string, inputKind InputKind) error {
	_, _, err := s.prepare(field, rawValue, inputKind)
	return err
}

func (s *FilterState) prepare(field FilterField, rawValue string, inputKind InputKind) (int, string, error) {
	i := field.index()
	if i < 0 {
		return -1, "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	if !inputKind.IsValid() {
		return -1, "", fmt.Errorf("%w: %q", ErrUnknownInputKind, inputKind)
	}

	value, err := s.normalize(field, rawValue, inputKind)
	if err != nil {
		return -1, "", err
	}

	return i, value, nil
}

// Reset clears every field. It notifies even when nothing was set.
func (s *FilterState) Reset() {
	s.transition(func(values *[fieldCount]string) {
		*values = [fieldCount]string{}
	})
}

// Subscribe registers listener and returns a function removing it.
func (s *FilterState) Subscribe(listener Listener) func() {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	s.nextListenerID++
	id := s.nextListenerID
	s.listeners = append(s.listeners, listenerEntry{id: id, listener: listener})

	return func() {
		s.listenersMu.Lock()
		defer s.listenersMu.Unlock()

		for i, entry := range s.listeners {
			if entry.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *FilterState) normalize(field FilterField, rawValue string, inputKind InputKind) (string, error) {
	if inputKind != InputKindDate || rawValue == "" {
		return rawValue, nil
	}

	date, err := time_parser.ParseCalendarDate(rawValue, s.location)
	if err != nil {
		return "", &InvalidDateError{Field: field, Value: rawValue, Err: err}
	}

	return time_parser.FormatInstant(date), nil
}

func (s *FilterState) transition(mutate func(values *[fieldCount]string)) {
	s.transitionMu.Lock()
	defer s.transitionMu.Unlock()

	s.valuesMu.Lock()
	mutate(&s.values)
	snapshot := Snapshot{values: s.values}
	s.valuesMu.Unlock()

	s.listenersMu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, entry := range s.listeners {
		listeners = append(listeners, entry.listener)
	}
	s.listenersMu.Unlock()

	for _, listener := range listeners {
		listener(snapshot)
	}
}
