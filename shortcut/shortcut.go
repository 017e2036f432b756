// Package shortcut provides global exit hotkey registration.
package shortcut

// Listener is a registered global hotkey delivering keydown
// notifications.
type Listener interface {
	Register() error
	Unregister()
	Keydown() <-chan struct{}
}
