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

package sdl

import (
	"github.com/kestrelgames/strobe/input"
	"github.com/kestrelgames/strobe/input/codes"
	"github.com/kestrelgames/strobe/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// the order matches the codes.PadButton vocabulary
var padButtonMap = [codes.PadButtonTotal]sdl.GameControllerButton{
	codes.PadButtonA:           sdl.CONTROLLER_BUTTON_A,
	codes.PadButtonB:           sdl.CONTROLLER_BUTTON_B,
	codes.PadButtonX:           sdl.CONTROLLER_BUTTON_X,
	codes.PadButtonY:           sdl.CONTROLLER_BUTTON_Y,
	codes.PadButtonBack:        sdl.CONTROLLER_BUTTON_BACK,
	codes.PadButtonGuide:       sdl.CONTROLLER_BUTTON_GUIDE,
	codes.PadButtonStart:       sdl.CONTROLLER_BUTTON_START,
	codes.PadButtonLeftStick:   sdl.CONTROLLER_BUTTON_LEFTSTICK,
	codes.PadButtonRightStick:  sdl.CONTROLLER_BUTTON_RIGHTSTICK,
	codes.PadButtonLeftBumper:  sdl.CONTROLLER_BUTTON_LEFTSHOULDER,
	codes.PadButtonRightBumper: sdl.CONTROLLER_BUTTON_RIGHTSHOULDER,
	codes.PadButtonDPadUp:      sdl.CONTROLLER_BUTTON_DPAD_UP,
	codes.PadButtonDPadDown:    sdl.CONTROLLER_BUTTON_DPAD_DOWN,
	codes.PadButtonDPadLeft:    sdl.CONTROLLER_BUTTON_DPAD_LEFT,
	codes.PadButtonDPadRight:   sdl.CONTROLLER_BUTTON_DPAD_RIGHT,
}

var padAxisMap = [codes.PadAxisTotal]sdl.GameControllerAxis{
	codes.PadAxisLeftX:        sdl.CONTROLLER_AXIS_LEFTX,
	codes.PadAxisLeftY:        sdl.CONTROLLER_AXIS_LEFTY,
	codes.PadAxisRightX:       sdl.CONTROLLER_AXIS_RIGHTX,
	codes.PadAxisRightY:       sdl.CONTROLLER_AXIS_RIGHTY,
	codes.PadAxisTriggerLeft:  sdl.CONTROLLER_AXIS_TRIGGERLEFT,
	codes.PadAxisTriggerRight: sdl.CONTROLLER_AXIS_TRIGGERRIGHT,
}

// openController claims the SDL game controller at the device index and
// binds it to the first free pad number.
func (p *Pump) openController(deviceIndex int) {
	pad := sdl.GameControllerOpen(deviceIndex)
	if pad == nil || !pad.Attached() {
		logger.Logf("sdl", "could not open game controller %d", deviceIndex)
		return
	}

	for i := range p.pads {
		if p.pads[i] == nil {
			p.pads[i] = pad
			logger.Logf("sdl", "gamepad: %s", pad.Joystick().Name())
			p.inp.HandlePadConnect(i)
			return
		}
	}

	// more controllers than pad numbers
	logger.Logf("sdl", "ignoring game controller %s, all pads in use", pad.Joystick().Name())
	pad.Close()
}

// closeController releases the game controller with the SDL instance id.
func (p *Pump) closeController(id sdl.JoystickID) {
	for i := range p.pads {
		if p.pads[i] != nil && p.pads[i].Joystick().InstanceID() == id {
			p.pads[i].Close()
			p.pads[i] = nil
			p.inp.HandlePadDisconnect(i)
			return
		}
	}
}

// PollPad implements the input.Poller interface. SDL reports axis values
// as int16 so they are rescaled to [-1, 1] here; deadzone handling is
// the input subsystem's job.
func (p *Pump) PollPad(pad int) input.PadSnapshot {
	var snap input.PadSnapshot

	if pad < 0 || pad >= input.MaxPads || p.pads[pad] == nil {
		return snap
	}

	ctrl := p.pads[pad]
	if !ctrl.Attached() {
		return snap
	}
	snap.Connected = true

	for b, sb := range padButtonMap {
		snap.Buttons[b] = ctrl.Button(sb) == sdl.PRESSED
	}
	for a, sa := range padAxisMap {
		snap.Axes[a] = float32(ctrl.Axis(sa)) / 32767
	}

	return snap
}
