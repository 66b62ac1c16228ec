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

	"github.com/kestrelgames/strobe/curated"
	"github.com/kestrelgames/strobe/input/codes"
	"github.com/kestrelgames/strobe/logger"
	"github.com/kestrelgames/strobe/pool"
	"github.com/kestrelgames/strobe/ringbuf"
)

// MaxPads is the number of simultaneously tracked gamepads.
const MaxPads = 4

const gamepadQueueLen = 256

// Default deadzones. Thumbsticks need a larger deadzone than triggers,
// worn sticks in particular rarely centre at zero.
const (
	DefaultStickDeadzone   = 0.15
	DefaultTriggerDeadzone = 0.05
)

// InvalidDeadzone is returned when setting a deadzone outside [0, 1).
const InvalidDeadzone = "gamepad: invalid deadzone (%v)"

// PadSnapshot is the instantaneous state of one gamepad, as reported by a
// Poller once per frame.
type PadSnapshot struct {
	Connected bool
	Buttons   [codes.PadButtonTotal]bool
	Axes      [codes.PadAxisTotal]float32
}

// Poller supplies per-frame gamepad snapshots. Gamepads have no push
// callback model on most platforms so the controller polls them during
// its capture pass. Backends with a genuine event stream (the Linux
// joystick interface for example) skip the Poller and call the capture
// functions directly.
type Poller interface {
	PollPad(pad int) PadSnapshot
}

// state tracked per pad
type padState struct {
	connected bool
	m         *stateMachine

	// axesRaw is as reported by the backend. axes is deadzone-normalized
	// and is what the queries return. prevAxes is overwritten once per
	// frame to compute deltas
	axesRaw  [codes.PadAxisTotal]float32
	axes     [codes.PadAxisTotal]float32
	prevAxes [codes.PadAxisTotal]float32

	// memoized list of currently held buttons
	pressed      []codes.PadButton
	pressedStale bool
}

// Gamepad is the device controller for every tracked gamepad. Button
// state follows the same discrete state machine as the keyboard, one
// machine per pad; stick and trigger values are analogue state refreshed
// during the capture pass.
type Gamepad struct {
	pads   [MaxPads]padState
	poller Poller

	events *ringbuf.Ring[*PadEvent]
	pool   *pool.Pool[PadEvent]

	stickDeadzone   float32
	triggerDeadzone float32

	lastFrame uint64
	primed    bool

	verbose  bool
	diag     Diagnostics
	lastWarn time.Time
}

// NewGamepad is the preferred method of initialisation of the Gamepad
// type.
func NewGamepad() *Gamepad {
	gp, _ := newGamepad(gamepadQueueLen)
	return gp
}

func newGamepad(queueLen int) (*Gamepad, error) {
	events, err := ringbuf.New[*PadEvent](queueLen)
	if err != nil {
		return nil, err
	}
	gp := &Gamepad{
		events:          events,
		pool:            pool.New[PadEvent](queueLen),
		stickDeadzone:   DefaultStickDeadzone,
		triggerDeadzone: DefaultTriggerDeadzone,
	}
	for i := range gp.pads {
		gp.pads[i].m = newStateMachine(int(codes.PadButtonTotal))
		gp.pads[i].pressed = make([]codes.PadButton, 0, codes.PadButtonTotal)
		gp.pads[i].pressedStale = true
	}
	return gp, nil
}

// AttachPoller sets the source of per-frame pad snapshots. A nil Poller
// leaves the controller entirely push-driven.
func (gp *Gamepad) AttachPoller(poller Poller) {
	gp.poller = poller
}

// normalizeAxis rescales a raw axis value against a deadzone. Values
// inside the deadzone are neutral; outside it the remaining range is
// stretched back over [0, 1] so there is no discontinuity at the deadzone
// boundary.
func normalizeAxis(v float32, deadzone float32) float32 {
	av := v
	if av < 0 {
		av = -av
	}
	if av < deadzone {
		return 0
	}
	n := (av - deadzone) / (1 - deadzone)
	if n > 1 {
		n = 1
	}
	if v < 0 {
		return -n
	}
	return n
}

// HandleConnect captures the arrival of a pad.
func (gp *Gamepad) HandleConnect(pad int) {
	if pad < 0 || pad >= MaxPads {
		gp.diag.Rejected++
		return
	}
	if !gp.pads[pad].connected {
		gp.pads[pad].connected = true
		logger.Logf("gamepad", "pad %d connected", pad)
	}
}

// HandleDisconnect captures the removal of a pad. Held buttons are
// forced to JustReleased and the analogue axes are zeroed; subsequent
// queries for the pad simply report not connected.
func (gp *Gamepad) HandleDisconnect(pad int) {
	if pad < 0 || pad >= MaxPads {
		gp.diag.Rejected++
		return
	}
	if gp.pads[pad].connected {
		gp.clearPad(pad)
		gp.pads[pad].connected = false
		gp.purge(pad)
		logger.Logf("gamepad", "pad %d disconnected", pad)
	}
}

// purge discards any queued events for the pad. a press buffered before
// the pad was removed must never reach the state machine, the matching
// release will not arrive. events for other pads keep their order.
func (gp *Gamepad) purge(pad int) {
	for n := gp.events.Len(); n > 0; n-- {
		ev, _ := gp.events.Shift()
		if ev.Pad == pad {
			gp.pool.Release(ev)
		} else {
			gp.events.Push(ev)
		}
	}
}

// HandleButton captures one button press or release for a pad. Used by
// push-driven backends; polled backends let the capture pass synthesize
// these events from snapshot differences.
func (gp *Gamepad) HandleButton(pad int, button codes.PadButton, down bool) {
	if pad < 0 || pad >= MaxPads || button < 0 || button >= codes.PadButtonTotal {
		gp.diag.Rejected++
		return
	}

	ev := gp.pool.Acquire()
	ev.Pad = pad
	ev.Button = button
	ev.Down = down
	ev.Time = time.Now()

	if evicted, ok := gp.events.Push(ev); ok {
		gp.pool.Release(evicted)
		gp.dropped()
	}
}

// HandleAxis captures a new raw value for one analogue axis. The value is
// deadzone-normalized during the next Update().
func (gp *Gamepad) HandleAxis(pad int, axis codes.PadAxis, value float32) {
	if pad < 0 || pad >= MaxPads || axis < 0 || axis >= codes.PadAxisTotal {
		gp.diag.Rejected++
		return
	}
	// a pad that is not connected has no axes worth recording
	if !gp.pads[pad].connected {
		return
	}
	gp.pads[pad].axesRaw[axis] = value
}

func (gp *Gamepad) dropped() {
	gp.diag.Dropped++
	if gp.verbose && time.Since(gp.lastWarn) >= time.Second {
		gp.lastWarn = time.Now()
		logger.Logf("gamepad", "event queue overflow (%d dropped so far)", gp.diag.Dropped)
	}
}

// capture reconciles one pad with a freshly polled snapshot. Button
// differences are queued as synthetic events so that the drain pass
// treats polled and push-driven pads identically.
func (gp *Gamepad) capture(pad int, snap PadSnapshot) {
	p := &gp.pads[pad]

	if snap.Connected != p.connected {
		if snap.Connected {
			gp.HandleConnect(pad)
		} else {
			gp.HandleDisconnect(pad)
		}
	}
	if !snap.Connected {
		return
	}

	for b := 0; b < int(codes.PadButtonTotal); b++ {
		if snap.Buttons[b] != p.m.isDown(b) {
			gp.HandleButton(pad, codes.PadButton(b), snap.Buttons[b])
		}
	}

	p.axesRaw = snap.Axes
}

// Update reconciles snapshots and buffered events into queryable state.
// Call once per frame. Calling it a second time with the same frame
// number has no effect.
func (gp *Gamepad) Update(frame uint64) {
	if gp.primed && frame == gp.lastFrame {
		return
	}
	gp.primed = true
	gp.lastFrame = frame

	for i := range gp.pads {
		gp.pads[i].m.decay()
	}

	// capture pass: poll the hardware if a poller is attached, then
	// refresh the normalized axis values
	if gp.poller != nil {
		for i := range gp.pads {
			gp.capture(i, gp.poller.PollPad(i))
		}
	}
	for i := range gp.pads {
		p := &gp.pads[i]
		for a := range p.axes {
			p.prevAxes[a] = p.axes[a]
			deadzone := gp.stickDeadzone
			if codes.PadAxis(a).IsTrigger() {
				deadzone = gp.triggerDeadzone
			}
			p.axes[a] = normalizeAxis(p.axesRaw[a], deadzone)
		}
	}

	for {
		ev, ok := gp.events.Shift()
		if !ok {
			break
		}
		// purge() has already removed the events of a disconnecting pad
		// but a push backend may still queue events after the disconnect
		if gp.pads[ev.Pad].connected {
			gp.pads[ev.Pad].m.apply(int(ev.Button), ev.Down)
			gp.diag.Processed++
		}
		gp.pool.Release(ev)
	}

	for i := range gp.pads {
		gp.pads[i].pressedStale = true
	}
}

// clearPad forces every held button on the pad to JustReleased and zeroes
// the analogue state.
func (gp *Gamepad) clearPad(pad int) {
	p := &gp.pads[pad]
	p.m.sweep()
	for a := range p.axes {
		p.axesRaw[a] = 0
		p.axes[a] = 0
		p.prevAxes[a] = 0
	}
	p.pressedStale = true
}

// Blur reconciles the controller with the loss of window focus. Every
// pad's held buttons are forced to JustReleased, analogue state is
// zeroed and the event queue is emptied.
func (gp *Gamepad) Blur() {
	for i := range gp.pads {
		gp.clearPad(i)
	}
	for {
		ev, ok := gp.events.Shift()
		if !ok {
			break
		}
		gp.pool.Release(ev)
	}
}

// SetStickDeadzone sets the deadzone for the four stick axes. Valid
// values are in [0, 1).
func (gp *Gamepad) SetStickDeadzone(deadzone float32) error {
	if deadzone < 0 || deadzone >= 1 {
		return curated.Errorf(InvalidDeadzone, deadzone)
	}
	gp.stickDeadzone = deadzone
	return nil
}

// SetTriggerDeadzone sets the deadzone for the two trigger axes. Valid
// values are in [0, 1).
func (gp *Gamepad) SetTriggerDeadzone(deadzone float32) error {
	if deadzone < 0 || deadzone >= 1 {
		return curated.Errorf(InvalidDeadzone, deadzone)
	}
	gp.triggerDeadzone = deadzone
	return nil
}

// StickDeadzone returns the deadzone applied to the stick axes.
func (gp *Gamepad) StickDeadzone() float32 {
	return gp.stickDeadzone
}

// TriggerDeadzone returns the deadzone applied to the trigger axes.
func (gp *Gamepad) TriggerDeadzone() float32 {
	return gp.triggerDeadzone
}

// IsConnected returns true if the pad is currently connected. Pads
// outside [0, MaxPads) report false.
func (gp *Gamepad) IsConnected(pad int) bool {
	if pad < 0 || pad >= MaxPads {
		return false
	}
	return gp.pads[pad].connected
}

// IsDown returns true if the button on the pad is held.
func (gp *Gamepad) IsDown(pad int, button codes.PadButton) bool {
	if pad < 0 || pad >= MaxPads {
		return false
	}
	return gp.pads[pad].m.isDown(int(button))
}

// IsUp returns true if the button on the pad is not held.
func (gp *Gamepad) IsUp(pad int, button codes.PadButton) bool {
	return !gp.IsDown(pad, button)
}

// WasJustPressed returns true if the button on the pad went down this
// frame.
func (gp *Gamepad) WasJustPressed(pad int, button codes.PadButton) bool {
	if pad < 0 || pad >= MaxPads {
		return false
	}
	return gp.pads[pad].m.wasJustPressed(int(button))
}

// WasJustReleased returns true if the button on the pad went up this
// frame.
func (gp *Gamepad) WasJustReleased(pad int, button codes.PadButton) bool {
	if pad < 0 || pad >= MaxPads {
		return false
	}
	return gp.pads[pad].m.wasJustReleased(int(button))
}

// ButtonState returns the discrete state of the button on the pad.
func (gp *Gamepad) ButtonState(pad int, button codes.PadButton) State {
	if pad < 0 || pad >= MaxPads {
		return Up
	}
	return gp.pads[pad].m.stateOf(int(button))
}

// AnyDown returns true if any button on the pad is held.
func (gp *Gamepad) AnyDown(pad int) bool {
	if pad < 0 || pad >= MaxPads {
		return false
	}
	return gp.pads[pad].m.down.Any()
}

// Pressed returns the currently held buttons on the pad in code order.
// The returned slice is reused by the next call and must not be retained.
func (gp *Gamepad) Pressed(pad int) []codes.PadButton {
	if pad < 0 || pad >= MaxPads {
		return nil
	}
	p := &gp.pads[pad]
	if p.pressedStale {
		p.pressed = p.pressed[:0]
		p.m.down.ForEachSet(func(code int) {
			p.pressed = append(p.pressed, codes.PadButton(code))
		})
		p.pressedStale = false
	}
	return p.pressed
}

// Axis returns the deadzone-normalized value of the axis on the pad.
func (gp *Gamepad) Axis(pad int, axis codes.PadAxis) float32 {
	if pad < 0 || pad >= MaxPads || axis < 0 || axis >= codes.PadAxisTotal {
		return 0
	}
	return gp.pads[pad].axes[axis]
}

// AxisDelta returns the change in the normalized axis value since the
// previous frame.
func (gp *Gamepad) AxisDelta(pad int, axis codes.PadAxis) float32 {
	if pad < 0 || pad >= MaxPads || axis < 0 || axis >= codes.PadAxisTotal {
		return 0
	}
	return gp.pads[pad].axes[axis] - gp.pads[pad].prevAxes[axis]
}

// LeftStick returns the normalized position of the left thumbstick.
func (gp *Gamepad) LeftStick(pad int) (float32, float32) {
	return gp.Axis(pad, codes.PadAxisLeftX), gp.Axis(pad, codes.PadAxisLeftY)
}

// RightStick returns the normalized position of the right thumbstick.
func (gp *Gamepad) RightStick(pad int) (float32, float32) {
	return gp.Axis(pad, codes.PadAxisRightX), gp.Axis(pad, codes.PadAxisRightY)
}

// Triggers returns the normalized values of the two triggers.
func (gp *Gamepad) Triggers(pad int) (float32, float32) {
	return gp.Axis(pad, codes.PadAxisTriggerLeft), gp.Axis(pad, codes.PadAxisTriggerRight)
}

// SetVerbose turns the throttled queue overflow warnings on or off.
func (gp *Gamepad) SetVerbose(verbose bool) {
	gp.verbose = verbose
}

// Diagnostics returns the controller's event counters.
func (gp *Gamepad) Diagnostics() Diagnostics {
	return gp.diag
}

// PoolStats returns the usage counters of the controller's record pool.
func (gp *Gamepad) PoolStats() pool.Stats {
	return gp.pool.Stats()
}

func (gp *Gamepad) debug(enabled bool) DeviceDebug {
	d := DeviceDebug{
		Enabled:  enabled,
		Diag:     gp.diag,
		Pool:     gp.pool.Stats(),
		QueueLen: gp.events.Len(),
		QueueCap: gp.events.Cap(),
	}
	for i := range gp.pads {
		d.DownCount += gp.pads[i].m.down.Count()
	}
	return d
}
