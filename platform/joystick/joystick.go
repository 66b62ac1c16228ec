// This file is part of Strobe.
//
// Strobe is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Strobe is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Strobe.  If not, see <https://www.gnu.org/licenses/>.

//go:build linux

// Package joystick is a platform backend for the Linux joystick
// interface (the /dev/input/js* devices). It exists for headless use
// where no SDL window is wanted.
//
// The kernel delivers joystick events through a blocking read so each
// device runs a reader goroutine. The goroutine only forwards raw events
// into a channel; Service(), called from the main thread, drains the
// channel and makes the capture calls. The input subsystem itself is
// never touched from the reader goroutine.
package joystick

import (
	"encoding/binary"
	"fmt"
	"os"
	"unsafe"

	"github.com/kestrelgames/strobe/input"
	"github.com/kestrelgames/strobe/input/codes"
	"github.com/kestrelgames/strobe/logger"

	"golang.org/x/sys/unix"
)

// joystick interface ioctl requests
const (
	jsName    = 0x80006a13 + (128 << 16)
	jsAxes    = 0x80016a11
	jsButtons = 0x80016a12
	jsVersion = 0x80046a01
)

// event types reported by the kernel. the init flag marks the synthetic
// events that describe the device's state at open time
const (
	jsEventButton = 0x01
	jsEventAxis   = 0x02
	jsEventInit   = 0x80
)

// wire format of one joystick event
type jsEvent struct {
	Time   uint32
	Value  int16
	Type   uint8
	Number uint8
}

// depth of the channel between the reader goroutine and Service()
const eventChannelLen = 256

// Device is one open joystick device bound to a pad number.
type Device struct {
	inp  *input.Input
	pad  int
	file *os.File

	name    string
	axes    uint8
	buttons uint8

	events chan jsEvent
	done   chan struct{}
}

// Open the joystick device at path and bind it to the pad number. A
// reader goroutine is started; call Service() regularly to forward its
// events and Close() when done.
func Open(inp *input.Input, pad int, path string) (*Device, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("joystick: %w", err)
	}

	d := &Device{
		inp:    inp,
		pad:    pad,
		file:   f,
		events: make(chan jsEvent, eventChannelLen),
		done:   make(chan struct{}),
	}

	if err := d.identify(); err != nil {
		f.Close()
		return nil, err
	}
	logger.Logf("joystick", "%s: %s (%d axes, %d buttons)", path, d.name, d.axes, d.buttons)

	inp.HandlePadConnect(pad)

	go d.read()

	return d, nil
}

// identify queries the device with the joystick interface ioctls.
func (d *Device) identify() error {
	name := make([]byte, 128)
	if err := d.ioctl(jsName, unsafe.Pointer(&name[0])); err != nil {
		return err
	}
	for i, b := range name {
		if b == 0 {
			name = name[:i]
			break
		}
	}
	d.name = string(name)

	if err := d.ioctl(jsAxes, unsafe.Pointer(&d.axes)); err != nil {
		return err
	}
	if err := d.ioctl(jsButtons, unsafe.Pointer(&d.buttons)); err != nil {
		return err
	}
	return nil
}

func (d *Device) ioctl(request int, dest unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL,
		d.file.Fd(),
		uintptr(request),
		uintptr(dest),
	)
	if errno != 0 {
		return fmt.Errorf("joystick: ioctl: %w", errno)
	}
	return nil
}

// read runs in its own goroutine until the device is closed or the read
// fails (the usual sign of the device being unplugged).
func (d *Device) read() {
	for {
		var ev jsEvent
		if binary.Read(d.file, binary.LittleEndian, &ev) != nil {
			close(d.events)
			return
		}

		select {
		case <-d.done:
			close(d.events)
			return
		case d.events <- ev:
		default:
			// Service() is not keeping up. drop here rather than block
			// the kernel read
		}
	}
}

// Service forwards events gathered by the reader goroutine into capture
// calls. Call once per frame from the main thread, before
// input.Input.Update(). Returns false once the device has gone away.
func (d *Device) Service() bool {
	for {
		select {
		case ev, ok := <-d.events:
			if !ok {
				d.inp.HandlePadDisconnect(d.pad)
				return false
			}
			d.serviceEvent(ev)
		default:
			return true
		}
	}
}

func (d *Device) serviceEvent(ev jsEvent) {
	switch ev.Type &^ jsEventInit {
	case jsEventButton:
		button := translateButton(ev.Number)
		if button == codes.PadButtonNone {
			return
		}
		d.inp.HandlePadButton(d.pad, button, ev.Value != 0)

	case jsEventAxis:
		axis, trigger, ok := translateAxis(ev.Number)
		if !ok {
			// axes 6 and 7 are the dpad on most pads. convert to button
			// presses so the dpad behaves like its SDL counterpart
			d.serviceHat(ev)
			return
		}

		v := float32(ev.Value) / 32767
		if trigger {
			// the kernel reports triggers over the full signed range,
			// resting at the negative extreme
			v = (v + 1) / 2
		}
		d.inp.HandlePadAxis(d.pad, axis, v)
	}
}

// serviceHat converts a dpad axis report into presses and releases of
// the dpad buttons.
func (d *Device) serviceHat(ev jsEvent) {
	var neg, pos codes.PadButton

	switch ev.Number {
	case 6:
		neg = codes.PadButtonDPadLeft
		pos = codes.PadButtonDPadRight
	case 7:
		neg = codes.PadButtonDPadUp
		pos = codes.PadButtonDPadDown
	default:
		return
	}

	switch {
	case ev.Value < 0:
		d.inp.HandlePadButton(d.pad, neg, true)
		d.inp.HandlePadButton(d.pad, pos, false)
	case ev.Value > 0:
		d.inp.HandlePadButton(d.pad, neg, false)
		d.inp.HandlePadButton(d.pad, pos, true)
	default:
		d.inp.HandlePadButton(d.pad, neg, false)
		d.inp.HandlePadButton(d.pad, pos, false)
	}
}

// Close stops the reader goroutine and releases the device.
func (d *Device) Close() error {
	close(d.done)

	// closing the file unblocks the pending read
	err := d.file.Close()

	d.inp.HandlePadDisconnect(d.pad)
	return err
}

// Name returns the device name as reported by the kernel.
func (d *Device) Name() string {
	return d.name
}

// the standard Linux button numbering for xpad-style controllers
func translateButton(number uint8) codes.PadButton {
	switch number {
	case 0:
		return codes.PadButtonA
	case 1:
		return codes.PadButtonB
	case 2:
		return codes.PadButtonX
	case 3:
		return codes.PadButtonY
	case 4:
		return codes.PadButtonLeftBumper
	case 5:
		return codes.PadButtonRightBumper
	case 6:
		return codes.PadButtonBack
	case 7:
		return codes.PadButtonStart
	case 8:
		return codes.PadButtonGuide
	case 9:
		return codes.PadButtonLeftStick
	case 10:
		return codes.PadButtonRightStick
	}
	return codes.PadButtonNone
}

func translateAxis(number uint8) (codes.PadAxis, bool, bool) {
	switch number {
	case 0:
		return codes.PadAxisLeftX, false, true
	case 1:
		return codes.PadAxisLeftY, false, true
	case 2:
		return codes.PadAxisTriggerLeft, true, true
	case 3:
		return codes.PadAxisRightX, false, true
	case 4:
		return codes.PadAxisRightY, false, true
	case 5:
		return codes.PadAxisTriggerRight, true, true
	}
	return 0, false, false
}
