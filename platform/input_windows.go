//go:build windows

package platform

import (
	"fmt"
	"unsafe"
)

var (
	sendInput      = user32.NewProc("SendInput")
	mapVirtualKeyW = user32.NewProc("MapVirtualKeyW")
)

const (
	inputKeyboard  = 1
	keyeventfKeyup = 0x0002
	mapvkVkToVsc   = 0
)

type keyboardInput struct {
	wVk         uint16
	wScan       uint16
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

type input struct {
	inputType uint32
	ki        keyboardInput
	padding   [8]byte // Padding to match C struct size
}

// WindowsInjector implements the Injector interface via SendInput
type WindowsInjector struct{}

// NewInjector creates a new Windows input injector
func NewInjector() Injector {
	return &WindowsInjector{}
}

// Send submits the sequence in a single SendInput call, with scan codes
// for better compatibility with elevated applications. A partial
// submission is reported as an error and never retried.
func (j *WindowsInjector) Send(events []KeyEvent) error {
	if len(events) == 0 {
		return nil
	}

	inputs := make([]input, len(events))
	for i, evt := range events {
		scan, _, _ := mapVirtualKeyW.Call(uintptr(evt.VK), mapvkVkToVsc)

		var flags uint32
		if evt.Action == KeyUp {
			flags = keyeventfKeyup
		}

		inputs[i] = input{
			inputType: inputKeyboard,
			ki: keyboardInput{
				wVk:     evt.VK,
				wScan:   uint16(scan),
				dwFlags: flags,
			},
		}
	}

	ret, _, err := sendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		unsafe.Sizeof(inputs[0]),
	)

	if int(ret) != len(inputs) {
		return fmt.Errorf("SendInput submitted %d of %d events: %w", ret, len(inputs), err)
	}

	return nil
}
