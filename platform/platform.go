// Package platform wraps the OS primitives the agent depends on: cursor
// position queries and synthetic keyboard input.
package platform

import "fmt"

// Point is a position in screen coordinates. Coordinates are signed and
// may be negative on multi-monitor layouts.
type Point struct {
	X int32
	Y int32
}

// KeyAction distinguishes press from release in a synthetic sequence.
type KeyAction int

const (
	KeyDown KeyAction = iota
	KeyUp
)

// KeyEvent is a single synthetic keyboard event.
type KeyEvent struct {
	VK     uint16
	Action KeyAction
}

// Cursor reports the current cursor position.
type Cursor interface {
	Position() (Point, error)
}

// Injector submits an ordered sequence of key events to the OS input
// stream. Send returns once the last event is submitted; it does not
// wait for the OS to act on them.
type Injector interface {
	Send(events []KeyEvent) error
}

// Chord builds the sequence that presses the given keys in order and
// releases them in reverse, e.g. Win down, Tab down, Tab up, Win up.
func Chord(vks ...uint16) []KeyEvent {
	events := make([]KeyEvent, 0, len(vks)*2)
	for _, vk := range vks {
		events = append(events, KeyEvent{VK: vk, Action: KeyDown})
	}
	for i := len(vks) - 1; i >= 0; i-- {
		events = append(events, KeyEvent{VK: vks[i], Action: KeyUp})
	}
	return events
}

// SequenceFromNames resolves key names to a chord sequence.
func SequenceFromNames(names []string) ([]KeyEvent, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("empty key sequence")
	}

	vks := make([]uint16, len(names))
	for i, name := range names {
		vk, err := VKCode(name)
		if err != nil {
			return nil, err
		}
		vks[i] = vk
	}

	return Chord(vks...), nil
}
