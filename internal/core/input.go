package core

// Key identifies a physical key the game cares about, abstracted from the
// host's own key codes.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft        // Left arrow
	KeyRight       // Right arrow
	KeyA           // 'A' - alternate left
	KeyD           // 'D' - alternate right
	KeyEscape      // Esc - quit
	KeySpace
	KeyEnter
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyA:
		return "A"
	case KeyD:
		return "D"
	case KeyEscape:
		return "Escape"
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	default:
		return "Unknown"
	}
}

// EventType distinguishes host events.
type EventType int

const (
	EventQuit    EventType = iota + 1 // Window closed, Ctrl+C, session ended
	EventKeyDown                      // A key was pressed
)

// Event is a single host event returned by Host.PollEvents.
type Event struct {
	Type EventType
	Key  Key // Only meaningful for EventKeyDown
}

// QuitEvent returns a quit event.
func QuitEvent() Event {
	return Event{Type: EventQuit}
}

// KeyDownEvent returns a key press event for k.
func KeyDownEvent(k Key) Event {
	return Event{Type: EventKeyDown, Key: k}
}

// KeySet is the set of keys held down at the moment of a query.
type KeySet struct {
	keys map[Key]bool
}

// NewKeySet creates a key set holding the given keys.
func NewKeySet(keys ...Key) KeySet {
	s := KeySet{keys: make(map[Key]bool, len(keys))}
	for _, k := range keys {
		s.keys[k] = true
	}
	return s
}

// Set marks a key as held.
func (s *KeySet) Set(k Key) {
	if s.keys == nil {
		s.keys = make(map[Key]bool)
	}
	s.keys[k] = true
}

// Has returns true if the key is held.
func (s KeySet) Has(k Key) bool {
	if s.keys == nil {
		return false
	}
	return s.keys[k]
}

// Any returns true if at least one of the keys is held.
func (s KeySet) Any(keys ...Key) bool {
	for _, k := range keys {
		if s.Has(k) {
			return true
		}
	}
	return false
}

// Len returns the number of held keys.
func (s KeySet) Len() int {
	return len(s.keys)
}

// Clone creates a copy of this key set.
func (s KeySet) Clone() KeySet {
	clone := NewKeySet()
	for k, v := range s.keys {
		clone.keys[k] = v
	}
	return clone
}
