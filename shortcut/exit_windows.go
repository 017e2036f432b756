//go:build windows

package shortcut

import (
	"fmt"

	"golang.design/x/hotkey"

	"hotcorner/config"
	"hotcorner/platform"
)

// Exit wraps a golang.design/x/hotkey registration and relays keydown
// events into a small buffered channel the control loop can drain
// without blocking.
type Exit struct {
	hk      *hotkey.Hotkey
	keydown chan struct{}
}

// NewExit builds the exit listener for the given combo. The combo must
// carry at least one modifier and a base key.
func NewExit(combo config.KeyCombo) (*Exit, error) {
	var mods []hotkey.Modifier
	if combo.Ctrl {
		mods = append(mods, hotkey.ModCtrl)
	}
	if combo.Shift {
		mods = append(mods, hotkey.ModShift)
	}
	if combo.Alt {
		mods = append(mods, hotkey.ModAlt)
	}
	if combo.Win {
		mods = append(mods, hotkey.ModWin)
	}

	vk, err := platform.VKCode(combo.Key)
	if err != nil {
		return nil, fmt.Errorf("invalid exit key: %w", err)
	}

	return &Exit{
		// On Windows hotkey.Key values are virtual key codes.
		hk:      hotkey.New(mods, hotkey.Key(vk)),
		keydown: make(chan struct{}, 1),
	}, nil
}

// Register claims the combination with the OS. It fails if another
// process already owns the combination.
func (e *Exit) Register() error {
	if err := e.hk.Register(); err != nil {
		return err
	}

	go func() {
		for range e.hk.Keydown() {
			select {
			case e.keydown <- struct{}{}:
			default:
				// A shutdown is already pending; drop the duplicate.
			}
		}
	}()

	return nil
}

// Unregister releases the OS-level registration.
func (e *Exit) Unregister() {
	e.hk.Unregister()
}

// Keydown returns the channel notified when the combination is pressed.
func (e *Exit) Keydown() <-chan struct{} {
	return e.keydown
}
