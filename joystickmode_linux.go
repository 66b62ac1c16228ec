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
// +build linux

package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/kestrelgames/strobe/input"
	"github.com/kestrelgames/strobe/logger"
	"github.com/kestrelgames/strobe/modalflag"
	"github.com/kestrelgames/strobe/platform/joystick"
)

// joystickMode reads gamepads through the Linux joystick interface
// without any window system at all.
func joystickMode(md *modalflag.Modes) error {
	md.NewMode()

	fps := md.AddInt("fps", 30, "input polling frequency")
	list := md.AddBool("list", false, "list joystick devices and exit")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	prefsFile := md.AddString("prefs", "", "path to preferences file")
	md.AdditionalHelp("Remaining arguments name the joystick devices to open (eg. /dev/input/js0). With no arguments every detected device is opened.")

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

	paths := md.RemainingArgs()
	if len(paths) == 0 {
		paths, err = joystick.Find()
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return fmt.Errorf("no joystick devices found")
		}
	}

	if *list {
		for _, path := range paths {
			fmt.Println(path)
		}
		return nil
	}

	if len(paths) > input.MaxPads {
		paths = paths[:input.MaxPads]
	}

	inp := input.NewInput()

	err = applyPrefs(inp, *prefsFile)
	if err != nil {
		return err
	}

	devices := make([]*joystick.Device, 0, len(paths))
	defer func() {
		for _, d := range devices {
			d.Close()
		}
	}()

	for i, path := range paths {
		d, err := joystick.Open(inp, i, path)
		if err != nil {
			return err
		}
		devices = append(devices, d)
		fmt.Printf("pad %d: %s (%s)\n", i, d.Name(), path)
	}

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
			live := devices[:0]
			for _, d := range devices {
				if d.Service() {
					live = append(live, d)
				}
			}
			devices = live
			if len(devices) == 0 {
				done = true
				break // select
			}

			inp.Update(inp.Frame() + 1)
			report(inp)
		}
	}

	return nil
}
