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

// mouse motion arrives far more often than button changes so the mouse
// queue is deeper than the keyboard queue
const mouseQueueLen = 512

// Mapper translates window coordinates into whatever coordinate space
// the application works in. The rendering layer usually provides the
// implementation.
type Mapper interface {
	MapCoords(x float32, y float32) (float32, float32)
}

// identity mapping is used when no Mapper has been attached
type identityMapper struct{}

func (identityMapper) MapCoords(x float32, y float32) (float32, float32) {
	return x, y
}

// Mouse is the device controller for the mouse. Button state follows the
// same discrete state machine as the keyboard; position, position delta
// and wheel delta are analogue state refreshed once per frame.
type Mouse struct {
	m      *stateMachine
	events *ringbuf.Ring[*MouseEvent]
	pool   *pool.Pool[MouseEvent]

	mapper Mapper

	// position in mapped coordinates. prev values are overwritten once
	// per frame, at the top of Update(), and exist only to compute the
	// frame-to-frame delta
	x, y           float32
	prevX, prevY   float32
	deltaX, deltaY float32

	// wheel movement accumulated over the events of a single frame
	wheelX, wheelY, wheelZ float32

	lastFrame uint64
	primed    bool

	verbose  bool
	diag     Diagnostics
	lastWarn time.Time
	rejected map[codes.MouseButton]bool

	// memoized list of currently held buttons
	pressed      []codes.MouseButton
	pressedStale bool
}

// NewMouse is the preferred method of initialisation of the Mouse type.
func NewMouse() *Mouse {
	m, _ := newMouse(mouseQueueLen)
	return m
}

func newMouse(queueLen int) (*Mouse, error) {
	events, err := ringbuf.New[*MouseEvent](queueLen)
	if err != nil {
		return nil, err
	}
	return &Mouse{
		m:            newStateMachine(int(codes.MouseButtonTotal)),
		events:       events,
		pool:         pool.New[MouseEvent](queueLen),
		mapper:       identityMapper{},
		pressed:      make([]codes.MouseButton, 0, codes.MouseButtonTotal),
		pressedStale: true,
	}, nil
}

// AttachMapper sets the coordinate mapper used for all subsequent
// position updates. A nil Mapper restores the identity mapping.
func (ms *Mouse) AttachMapper(mapper Mapper) {
	if mapper == nil {
		mapper = identityMapper{}
	}
	ms.mapper = mapper
}

// HandleButton captures one mouse button press or release, along with the
// window position at which it happened.
func (ms *Mouse) HandleButton(button codes.MouseButton, down bool, x float32, y float32) {
	if button < 0 || button >= codes.MouseButtonTotal {
		ms.diag.Rejected++
		if !ms.rejected[button] {
			if ms.rejected == nil {
				ms.rejected = make(map[codes.MouseButton]bool)
			}
			ms.rejected[button] = true
			logger.Logf("mouse", "discarding event for unknown button (%d)", int(button))
		}
		return
	}

	ev := ms.pool.Acquire()
	ev.Kind = MouseButtonChange
	ev.Button = button
	ev.Down = down
	ev.X = x
	ev.Y = y
	ev.WheelX = 0
	ev.WheelY = 0
	ev.WheelZ = 0
	ev.Time = time.Now()
	ms.push(ev)
}

// HandleMotion captures mouse movement to a new window position.
func (ms *Mouse) HandleMotion(x float32, y float32) {
	ev := ms.pool.Acquire()
	ev.Kind = MouseMotion
	ev.Button = codes.MouseButtonNone
	ev.Down = false
	ev.X = x
	ev.Y = y
	ev.WheelX = 0
	ev.WheelY = 0
	ev.WheelZ = 0
	ev.Time = time.Now()
	ms.push(ev)
}

// HandleWheel captures wheel movement.
func (ms *Mouse) HandleWheel(deltaX float32, deltaY float32, deltaZ float32) {
	ev := ms.pool.Acquire()
	ev.Kind = MouseWheel
	ev.Button = codes.MouseButtonNone
	ev.Down = false
	ev.X = ms.x
	ev.Y = ms.y
	ev.WheelX = deltaX
	ev.WheelY = deltaY
	ev.WheelZ = deltaZ
	ev.Time = time.Now()
	ms.push(ev)
}

func (ms *Mouse) push(ev *MouseEvent) {
	if evicted, ok := ms.events.Push(ev); ok {
		ms.pool.Release(evicted)
		ms.diag.Dropped++
		if ms.verbose && time.Since(ms.lastWarn) >= time.Second {
			ms.lastWarn = time.Now()
			logger.Logf("mouse", "event queue overflow (%d dropped so far)", ms.diag.Dropped)
		}
	}
}

// Update reconciles buffered events into queryable state. Call once per
// frame. Calling it a second time with the same frame number has no
// effect.
func (ms *Mouse) Update(frame uint64) {
	if ms.primed && frame == ms.lastFrame {
		return
	}
	ms.primed = true
	ms.lastFrame = frame

	ms.m.decay()

	// capture pass: note where the cursor was at the start of the frame
	// and forget the previous frame's wheel movement
	ms.prevX = ms.x
	ms.prevY = ms.y
	ms.wheelX = 0
	ms.wheelY = 0
	ms.wheelZ = 0

	for {
		ev, ok := ms.events.Shift()
		if !ok {
			break
		}

		switch ev.Kind {
		case MouseButtonChange:
			ms.m.apply(int(ev.Button), ev.Down)
			ms.x, ms.y = ms.mapper.MapCoords(ev.X, ev.Y)
		case MouseMotion:
			ms.x, ms.y = ms.mapper.MapCoords(ev.X, ev.Y)
		case MouseWheel:
			ms.wheelX += ev.WheelX
			ms.wheelY += ev.WheelY
			ms.wheelZ += ev.WheelZ
		}

		ms.diag.Processed++
		ms.pool.Release(ev)
	}

	ms.deltaX = ms.x - ms.prevX
	ms.deltaY = ms.y - ms.prevY

	ms.pressedStale = true
}

// Blur reconciles the controller with the loss of window focus. Held
// buttons are forced to JustReleased, the event queue is emptied and the
// wheel and position deltas are zeroed. The cursor position itself is
// retained.
func (ms *Mouse) Blur() {
	ms.m.sweep()
	for {
		ev, ok := ms.events.Shift()
		if !ok {
			break
		}
		ms.pool.Release(ev)
	}
	ms.deltaX = 0
	ms.deltaY = 0
	ms.wheelX = 0
	ms.wheelY = 0
	ms.wheelZ = 0
	ms.pressedStale = true
}

// IsDown returns true if the button is held. Buttons outside the
// vocabulary report false.
func (ms *Mouse) IsDown(button codes.MouseButton) bool {
	return ms.m.isDown(int(button))
}

// IsUp returns true if the button is not held.
func (ms *Mouse) IsUp(button codes.MouseButton) bool {
	return !ms.m.isDown(int(button))
}

// WasJustPressed returns true if the button went down this frame.
func (ms *Mouse) WasJustPressed(button codes.MouseButton) bool {
	return ms.m.wasJustPressed(int(button))
}

// WasJustReleased returns true if the button went up this frame.
func (ms *Mouse) WasJustReleased(button codes.MouseButton) bool {
	return ms.m.wasJustReleased(int(button))
}

// ButtonState returns the discrete state of the button.
func (ms *Mouse) ButtonState(button codes.MouseButton) State {
	return ms.m.stateOf(int(button))
}

// AnyDown returns true if any button is held.
func (ms *Mouse) AnyDown() bool {
	return ms.m.down.Any()
}

// Pressed returns the currently held buttons in code order. The returned
// slice is reused by the next call and must not be retained.
func (ms *Mouse) Pressed() []codes.MouseButton {
	if ms.pressedStale {
		ms.pressed = ms.pressed[:0]
		ms.m.down.ForEachSet(func(code int) {
			ms.pressed = append(ms.pressed, codes.MouseButton(code))
		})
		ms.pressedStale = false
	}
	return ms.pressed
}

// Position returns the cursor position in mapped coordinates.
func (ms *Mouse) Position() (float32, float32) {
	return ms.x, ms.y
}

// Delta returns the cursor movement since the previous frame.
func (ms *Mouse) Delta() (float32, float32) {
	return ms.deltaX, ms.deltaY
}

// Wheel returns the wheel movement accumulated during the current frame.
func (ms *Mouse) Wheel() (float32, float32, float32) {
	return ms.wheelX, ms.wheelY, ms.wheelZ
}

// SetVerbose turns the throttled queue overflow warnings on or off.
func (ms *Mouse) SetVerbose(verbose bool) {
	ms.verbose = verbose
}

// Diagnostics returns the controller's event counters.
func (ms *Mouse) Diagnostics() Diagnostics {
	return ms.diag
}

// PoolStats returns the usage counters of the controller's record pool.
func (ms *Mouse) PoolStats() pool.Stats {
	return ms.pool.Stats()
}

func (ms *Mouse) debug(enabled bool) DeviceDebug {
	return DeviceDebug{
		Enabled:   enabled,
		Diag:      ms.diag,
		Pool:      ms.pool.Stats(),
		QueueLen:  ms.events.Len(),
		QueueCap:  ms.events.Cap(),
		DownCount: ms.m.down.Count(),
	}
}
