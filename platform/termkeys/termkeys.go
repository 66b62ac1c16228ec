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

// Package termkeys is a keyboard-only platform backend reading from a
// posix terminal in cbreak mode. It is a development convenience: the
// frame loop can be exercised over ssh with no window system at all.
//
// Terminals report keystrokes, not key state, so there is no way to
// observe a key being held or released. Every keystroke becomes a tap: a
// press captured immediately and the matching release synthesized on the
// following Service() call. The one-frame edge semantics survive intact,
// IsDown() is simply never true for longer than a frame.
package termkeys

import (
	"os"

	"github.com/kestrelgames/strobe/input"
	"github.com/kestrelgames/strobe/input/codes"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// depth of the channel between the reader goroutine and Service()
const keyChannelLen = 64

// Tap drives keyboard capture from the controlling terminal. Call
// Service() once per frame, before input.Input.Update(), and Restore()
// before the process exits.
type Tap struct {
	inp   *input.Input
	tty   *os.File
	owned bool

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	keys chan byte
	done chan struct{}

	// presses captured last frame, to be released this frame
	pending []tapKey
}

type tapKey struct {
	key codes.Key
	mod codes.Mod
}

// New puts the terminal into cbreak mode and starts the reader
// goroutine. A nil tty reads from the controlling terminal.
func New(inp *input.Input, tty *os.File) (*Tap, error) {
	t := &Tap{
		inp:  inp,
		tty:  tty,
		keys: make(chan byte, keyChannelLen),
		done: make(chan struct{}),
	}

	if t.tty == nil {
		f, err := os.Open("/dev/tty")
		if err != nil {
			return nil, err
		}
		t.tty = f
		t.owned = true
	}

	if err := termios.Tcgetattr(t.tty.Fd(), &t.canAttr); err != nil {
		if t.owned {
			t.tty.Close()
		}
		return nil, err
	}
	t.cbreakAttr = t.canAttr
	termios.Cfmakecbreak(&t.cbreakAttr)
	if err := termios.Tcsetattr(t.tty.Fd(), termios.TCIFLUSH, &t.cbreakAttr); err != nil {
		if t.owned {
			t.tty.Close()
		}
		return nil, err
	}

	go t.read()

	return t, nil
}

// read runs in its own goroutine until the terminal is restored.
func (t *Tap) read() {
	buf := make([]byte, 1)
	for {
		n, err := t.tty.Read(buf)
		if err != nil {
			close(t.keys)
			return
		}
		if n == 0 {
			continue
		}

		select {
		case <-t.done:
			close(t.keys)
			return
		case t.keys <- buf[0]:
		default:
			// drop rather than block the terminal read
		}
	}
}

// Service captures the taps received since the last call. Returns false
// once the terminal has gone away.
func (t *Tap) Service() bool {
	// release the previous frame's taps
	for _, tap := range t.pending {
		t.inp.HandleKey(tap.key, false, tap.mod, false)
	}
	t.pending = t.pending[:0]

	for {
		select {
		case b, ok := <-t.keys:
			if !ok {
				return false
			}
			key, mod := translateByte(b)
			if key == codes.KeyNone {
				continue
			}
			t.inp.HandleKey(key, true, mod, false)
			t.pending = append(t.pending, tapKey{key: key, mod: mod})
		default:
			return true
		}
	}
}

// Restore puts the terminal back into canonical mode and stops the
// reader goroutine.
func (t *Tap) Restore() error {
	close(t.done)
	err := termios.Tcsetattr(t.tty.Fd(), termios.TCIFLUSH, &t.canAttr)
	if t.owned {
		t.tty.Close()
	}
	return err
}
