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

package input

import (
	"time"

	"github.com/kestrelgames/strobe/input/codes"
	"github.com/kestrelgames/strobe/logger"
	"github.com/kestrelgames/strobe/pool"
	"github.com/kestrelgames/strobe/ringbuf"
)

// number of key events that can arrive between two Update() calls before
// the oldest are dropped
const keyboardQueueLen = 256

// Keyboard is the device controller for the keyboard. The platform
// backend feeds it with HandleKey(); the frame loop drives it with
// Update() and queries it for the rest of the frame.
type Keyboard struct {
	m      *stateMachine
	events *ringbuf.Ring[*KeyEvent]
	pool   *pool.Pool[KeyEvent]

	// most recently reported modifier mask
	mods codes.Mod

	lastFrame uint64
	primed    bool

	verbose  bool
	diag     Diagnostics
	lastWarn time.Time

	// keys that have been reported as outside the vocabulary. each is
	// logged only once
	rejected map[codes.Key]bool

	// memoized list of currently held keys
	pressed      []codes.Key
	pressedStale bool
}

// NewKeyboard is the preferred method of initialisation of the Keyboard
// type.
func NewKeyboard() *Keyboard {
	k, _ := newKeyboard(keyboardQueueLen)
	return k
}

func newKeyboard(queueLen int) (*Keyboard, error) {
	events, err := ringbuf.New[*KeyEvent](queueLen)
	if err != nil {
		return nil, err
	}
	return &Keyboard{
		m:            newStateMachine(int(codes.KeyTotal)),
		events:       events,
		pool:         pool.New[KeyEvent](queueLen),
		pressed:      make([]codes.Key, 0, codes.KeyTotal),
		pressedStale: true,
	}, nil
}

// HandleKey captures one key press or release. It is called by the
// platform backend as events arrive and must never be called while
// Update() is running.
//
// OS auto-repeat events carry no state change and are discarded, although
// the modifier mask is still noted.
func (k *Keyboard) HandleKey(key codes.Key, down bool, mod codes.Mod, repeat bool) {
	if key < 0 || key >= codes.KeyTotal {
		k.diag.Rejected++
		if !k.rejected[key] {
			if k.rejected == nil {
				k.rejected = make(map[codes.Key]bool)
			}
			k.rejected[key] = true
			logger.Logf("keyboard", "discarding event for unknown key (%d)", int(key))
		}
		return
	}

	k.mods = mod

	if repeat {
		return
	}

	ev := k.pool.Acquire()
	ev.Key = key
	ev.Down = down
	ev.Mod = mod
	ev.Repeat = repeat
	ev.Time = time.Now()

	if evicted, ok := k.events.Push(ev); ok {
		k.pool.Release(evicted)
		k.dropped()
	}
}

// dropped notes a queue overflow. the log warning is throttled to one per
// second, the counter is not.
func (k *Keyboard) dropped() {
	k.diag.Dropped++
	if k.verbose && time.Since(k.lastWarn) >= time.Second {
		k.lastWarn = time.Now()
		logger.Logf("keyboard", "event queue overflow (%d dropped so far)", k.diag.Dropped)
	}
}

// Update reconciles buffered events into queryable state. Call once per
// frame, before any queries for that frame. Calling it a second time with
// the same frame number has no effect.
func (k *Keyboard) Update(frame uint64) {
	if k.primed && frame == k.lastFrame {
		return
	}
	k.primed = true
	k.lastFrame = frame

	// resolve the previous frame's edges before applying this frame's
	// events
	k.m.decay()

	// no capture pass: the keyboard is entirely push-driven

	for {
		ev, ok := k.events.Shift()
		if !ok {
			break
		}
		k.m.apply(int(ev.Key), ev.Down)
		k.diag.Processed++
		k.pool.Release(ev)
	}

	k.pressedStale = true
}

// Blur reconciles the controller with the loss of window focus: every
// held key is forced to JustReleased (decaying to Up on the next frame)
// and the event queue is emptied. Without this a key held during focus
// loss would appear stuck when focus returns, the matching release event
// having been sent elsewhere.
func (k *Keyboard) Blur() {
	k.m.sweep()
	for {
		ev, ok := k.events.Shift()
		if !ok {
			break
		}
		k.pool.Release(ev)
	}
	k.mods = codes.ModNone
	k.pressedStale = true
}

// IsDown returns true if the key is held. Keys outside the vocabulary
// report false.
func (k *Keyboard) IsDown(key codes.Key) bool {
	return k.m.isDown(int(key))
}

// IsUp returns true if the key is not held.
func (k *Keyboard) IsUp(key codes.Key) bool {
	return !k.m.isDown(int(key))
}

// WasJustPressed returns true if the key went down this frame.
func (k *Keyboard) WasJustPressed(key codes.Key) bool {
	return k.m.wasJustPressed(int(key))
}

// WasJustReleased returns true if the key went up this frame.
func (k *Keyboard) WasJustReleased(key codes.Key) bool {
	return k.m.wasJustReleased(int(key))
}

// KeyState returns the discrete state of the key. Keys outside the
// vocabulary report Up.
func (k *Keyboard) KeyState(key codes.Key) State {
	return k.m.stateOf(int(key))
}

// AnyDown returns true if any key at all is held.
func (k *Keyboard) AnyDown() bool {
	return k.m.down.Any()
}

// DownCount returns the number of held keys.
func (k *Keyboard) DownCount() int {
	return k.m.down.Count()
}

// Pressed returns the currently held keys in code order. The returned
// slice is reused by the next call and must not be retained.
func (k *Keyboard) Pressed() []codes.Key {
	if k.pressedStale {
		k.pressed = k.pressed[:0]
		k.m.down.ForEachSet(func(code int) {
			k.pressed = append(k.pressed, codes.Key(code))
		})
		k.pressedStale = false
	}
	return k.pressed
}

// Mods returns the modifier mask from the most recent key event.
func (k *Keyboard) Mods() codes.Mod {
	return k.mods
}

// SetVerbose turns the throttled queue overflow warnings on or off.
func (k *Keyboard) SetVerbose(verbose bool) {
	k.verbose = verbose
}

// Diagnostics returns the controller's event counters.
func (k *Keyboard) Diagnostics() Diagnostics {
	return k.diag
}

// PoolStats returns the usage counters of the controller's record pool.
func (k *Keyboard) PoolStats() pool.Stats {
	return k.pool.Stats()
}

func (k *Keyboard) debug(enabled bool) DeviceDebug {
	return DeviceDebug{
		Enabled:   enabled,
		Diag:      k.diag,
		Pool:      k.pool.Stats(),
		QueueLen:  k.events.Len(),
		QueueCap:  k.events.Cap(),
		DownCount: k.m.down.Count(),
	}
}
