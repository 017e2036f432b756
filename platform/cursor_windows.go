//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32       = windows.NewLazySystemDLL("user32.dll")
	getCursorPos = user32.NewProc("GetCursorPos")
)

type winPoint struct {
	x int32
	y int32
}

// WindowsCursor implements the Cursor interface via GetCursorPos
type WindowsCursor struct{}

// NewCursor creates a new Windows cursor provider
func NewCursor() Cursor {
	return &WindowsCursor{}
}

// Position returns the current cursor position in screen coordinates
func (c *WindowsCursor) Position() (Point, error) {
	var p winPoint
	r, _, err := getCursorPos.Call(uintptr(unsafe.Pointer(&p)))
	if r == 0 {
		return Point{}, fmt.Errorf("GetCursorPos failed: %w", err)
	}
	return Point{X: p.x, Y: p.y}, nil
}
