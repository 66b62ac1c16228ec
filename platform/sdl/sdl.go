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

// Package sdl is the SDL2 platform backend. It owns the SDL window and
// translates the SDL event stream into capture calls on an input.Input
// instance.
//
// All functions in this package must be called from the main thread. The
// package calls runtime.LockOSThread() on initialisation for that reason.
package sdl

import (
	"fmt"
	"runtime"

	"github.com/kestrelgames/strobe/input"
	"github.com/kestrelgames/strobe/input/codes"
	"github.com/kestrelgames/strobe/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// Pump drives the SDL event loop. Call Service() once per frame, before
// input.Input.Update().
type Pump struct {
	inp    *input.Input
	window *sdl.Window

	// open game controllers indexed by the pad number given to the input
	// subsystem
	pads [input.MaxPads]*sdl.GameController

	quit bool
}

// NewPump is the preferred method of initialisation for the Pump type.
// The window is created hidden, call ShowWindow() when ready.
func NewPump(inp *input.Input, title string, width int32, height int32) (*Pump, error) {
	// the SDL package calls LockOSThread() but we call it here too. it
	// can't hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_EVENTS)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf("sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	p := &Pump{
		inp: inp,
	}

	p.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		width, height,
		sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE|sdl.WINDOW_HIDDEN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	// open any controllers that were connected before we initialised
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if sdl.IsGameController(i) {
			p.openController(i)
		}
	}

	// the input subsystem polls controllers through us during its
	// capture pass
	inp.Gamepad().AttachPoller(p)

	return p, nil
}

// ShowWindow makes the window visible.
func (p *Pump) ShowWindow() {
	p.window.Show()
}

// Destroy cleans up the SDL resources.
func (p *Pump) Destroy() error {
	for i := range p.pads {
		if p.pads[i] != nil {
			p.pads[i].Close()
			p.pads[i] = nil
		}
	}

	if p.window != nil {
		err := p.window.Destroy()
		if err != nil {
			return err
		}
		p.window = nil
	}
	sdl.Quit()

	return nil
}

// Quit returns true once a quit event has been received.
func (p *Pump) Quit() bool {
	return p.quit
}

// Service translates pending SDL events into capture calls. Call once
// per frame from the main thread, before input.Input.Update().
func (p *Pump) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			p.quit = true

		case *sdl.WindowEvent:
			switch ev.Event {
			case sdl.WINDOWEVENT_FOCUS_LOST:
				p.inp.Blur()
			case sdl.WINDOWEVENT_FOCUS_GAINED:
				p.inp.Focus()
			}

		case *sdl.KeyboardEvent:
			p.serviceKeyboard(ev)

		case *sdl.MouseButtonEvent:
			button := translateMouseButton(ev.Button)
			if button == codes.MouseButtonNone {
				logger.Logf("sdl", "unmapped mouse button (%d)", ev.Button)
				continue
			}
			p.inp.HandleMouseButton(button, ev.Type == sdl.MOUSEBUTTONDOWN,
				float32(ev.X), float32(ev.Y))

		case *sdl.MouseMotionEvent:
			p.inp.HandleMouseMotion(float32(ev.X), float32(ev.Y))

		case *sdl.MouseWheelEvent:
			// normalise for natural scrolling
			x := float32(ev.X)
			y := float32(ev.Y)
			if ev.Direction == sdl.MOUSEWHEEL_FLIPPED {
				x = -x
				y = -y
			}
			p.inp.HandleMouseWheel(x, y, 0)

		case *sdl.ControllerDeviceEvent:
			switch ev.Type {
			case sdl.CONTROLLERDEVICEADDED:
				p.openController(int(ev.Which))
			case sdl.CONTROLLERDEVICEREMOVED:
				p.closeController(sdl.JoystickID(ev.Which))
			}
		}
	}
}

func (p *Pump) serviceKeyboard(ev *sdl.KeyboardEvent) {
	key := translateScancode(ev.Keysym.Scancode)
	if key == codes.KeyNone {
		// an unmapped scancode is not an error, there are many keys
		// outside the vocabulary
		return
	}

	mod := codes.ModNone
	if ev.Keysym.Mod&(sdl.KMOD_LSHIFT|sdl.KMOD_RSHIFT) != 0 {
		mod |= codes.ModShift
	}
	if ev.Keysym.Mod&(sdl.KMOD_LCTRL|sdl.KMOD_RCTRL) != 0 {
		mod |= codes.ModCtrl
	}
	if ev.Keysym.Mod&(sdl.KMOD_LALT|sdl.KMOD_RALT) != 0 {
		mod |= codes.ModAlt
	}
	if ev.Keysym.Mod&(sdl.KMOD_LGUI|sdl.KMOD_RGUI) != 0 {
		mod |= codes.ModSuper
	}

	p.inp.HandleKey(key, ev.Type == sdl.KEYDOWN, mod, ev.Repeat != 0)
}

func translateMouseButton(button uint8) codes.MouseButton {
	switch button {
	case sdl.BUTTON_LEFT:
		return codes.MouseButtonLeft
	case sdl.BUTTON_MIDDLE:
		return codes.MouseButtonMiddle
	case sdl.BUTTON_RIGHT:
		return codes.MouseButtonRight
	case sdl.BUTTON_X1:
		return codes.MouseButtonX1
	case sdl.BUTTON_X2:
		return codes.MouseButtonX2
	}
	return codes.MouseButtonNone
}
