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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/kestrelgames/strobe/diagnostics"
	"github.com/kestrelgames/strobe/input"
	"github.com/kestrelgames/strobe/input/codes"
	"github.com/kestrelgames/strobe/logger"
	"github.com/kestrelgames/strobe/modalflag"
	"github.com/kestrelgames/strobe/platform/sdl"
	"github.com/kestrelgames/strobe/platform/termkeys"
	"github.com/kestrelgames/strobe/prefs"
	"github.com/kestrelgames/strobe/version"
)

// #mainthread
func main() {
	// SDL requires window and event handling to occur on the main thread.
	// every run mode is therefore serviced directly from main() rather
	// than from a goroutine.
	os.Exit(launch())
}

func launch() int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "TERM", "JOYSTICK", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "TERM":
		err = term(md)

	case "JOYSTICK":
		err = joystickMode(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)
		return 20
	}

	return 0
}

// applyPrefs loads the preferences file and applies it to the input
// subsystem. a missing file is not an error, the defaults apply.
func applyPrefs(inp *input.Input, path string) error {
	var err error

	if path == "" {
		path, err = prefs.DefaultPath()
		if err != nil {
			return err
		}
	}

	p := prefs.NewPrefs()
	err = p.Load(path)
	if err != nil {
		return err
	}

	return p.Apply(inp)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	fps := md.AddInt("fps", 60, "input polling frequency")
	width := md.AddInt("width", 640, "window width")
	height := md.AddInt("height", 480, "window height")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run statsview server at %s", diagnostics.Address))
	prefsFile := md.AddString("prefs", "", "path to preferences file")
	graph := md.AddString("debuggraph", "", "write debugging graph (dot format) to file on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		diagnostics.Launch(os.Stdout)
	}

	if *fps < 1 {
		return fmt.Errorf("fps must be a positive number")
	}

	inp := input.NewInput()

	err = applyPrefs(inp, *prefsFile)
	if err != nil {
		return err
	}

	pump, err := sdl.NewPump(inp, version.ApplicationName, int32(*width), int32(*height))
	if err != nil {
		return err
	}
	defer pump.Destroy()

	pump.ShowWindow()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	tick := time.NewTicker(time.Second / time.Duration(*fps))
	defer tick.Stop()

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case <-tick.C:
			pump.Service()
			if pump.Quit() {
				done = true
				break // select
			}

			inp.Update(inp.Frame() + 1)
			report(inp)

			// escape-to-quit is the host's default behavior for the
			// escape key and can be suppressed through the prevent
			// default registry
			if inp.KeyJustPressed(codes.KeyEscape) && !inp.PreventsDefaultKey(codes.KeyEscape) {
				done = true
			}
		}
	}

	if *graph != "" {
		f, err := os.Create(*graph)
		if err != nil {
			return err
		}
		defer f.Close()
		diagnostics.DumpDebugGraph(f, inp)
	}

	return nil
}

func term(md *modalflag.Modes) error {
	md.NewMode()

	fps := md.AddInt("fps", 30, "input polling frequency")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	prefsFile := md.AddString("prefs", "", "path to preferences file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *fps < 1 {
		return fmt.Errorf("fps must be a positive number")
	}

	inp := input.NewInput()

	err = applyPrefs(inp, *prefsFile)
	if err != nil {
		return err
	}

	tap, err := termkeys.New(inp, nil)
	if err != nil {
		return err
	}
	defer tap.Restore()

	fmt.Println("reading terminal keys. press escape or ctrl-c to quit")

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	tick := time.NewTicker(time.Second / time.Duration(*fps))
	defer tick.Stop()

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case <-tick.C:
			if !tap.Service() {
				done = true
				break // select
			}

			inp.Update(inp.Frame() + 1)
			report(inp)

			// escape-to-quit is the host's default behavior for the
			// escape key and can be suppressed through the prevent
			// default registry
			if inp.KeyJustPressed(codes.KeyEscape) && !inp.PreventsDefaultKey(codes.KeyEscape) {
				done = true
			}
		}
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	rev := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, revision := version.Version()
	fmt.Printf("%s (%s)\n", ver, version.ApplicationName)
	if *rev {
		fmt.Println(revision)
	}

	return nil
}

// report prints every input edge that occurred in the most recent frame.
func report(inp *input.Input) {
	for _, k := range inp.PressedKeys() {
		if inp.KeyJustPressed(k) {
			fmt.Printf("key down: %s (mods: %s)\n", k, inp.Mods())
		}
	}
	for k := codes.Key(0); k < codes.KeyTotal; k++ {
		if inp.KeyJustReleased(k) {
			fmt.Printf("key up: %s\n", k)
		}
	}

	for b := codes.MouseButton(0); b < codes.MouseButtonTotal; b++ {
		if inp.MouseButtonJustPressed(b) {
			x, y := inp.MousePosition()
			fmt.Printf("mouse down: %s (%.0f, %.0f)\n", b, x, y)
		}
		if inp.MouseButtonJustReleased(b) {
			fmt.Printf("mouse up: %s\n", b)
		}
	}

	if wx, wy, _ := inp.MouseWheel(); wx != 0 || wy != 0 {
		fmt.Printf("mouse wheel: (%.1f, %.1f)\n", wx, wy)
	}

	for pad := 0; pad < input.MaxPads; pad++ {
		if !inp.IsPadConnected(pad) {
			continue
		}
		for b := codes.PadButton(0); b < codes.PadButtonTotal; b++ {
			if inp.PadButtonJustPressed(pad, b) {
				fmt.Printf("pad %d down: %s\n", pad, b)
			}
			if inp.PadButtonJustReleased(pad, b) {
				fmt.Printf("pad %d up: %s\n", pad, b)
			}
		}
	}
}
