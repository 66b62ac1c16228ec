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

// Package input reconciles asynchronous, push-driven hardware events with
// the synchronous, once-per-frame polling model used by application code.
//
// It can be thought of as a translation layer between a platform backend
// (the SDL backend during development, so there will be a bias towards
// that system) and the game loop. The platform backend calls the
// Handle...() capture functions as events arrive; the game loop calls
// Update() once per frame and then queries state for the remainder of
// that frame.
//
// The promise made by the package is that edge state ("just pressed",
// "just released") is visible for exactly one frame, no matter how many
// raw events arrived and no matter how Update() is driven. Bursts of
// events beyond the per-frame queue capacity degrade by dropping the
// oldest events, never by blocking or growing without bound. The capture
// and query paths do not allocate.
//
// The Input type is the composition point. It owns one controller per
// device class (Keyboard, Mouse, Gamepad) and proxies a flat query
// surface. Construct it explicitly with NewInput() and pass it to
// whatever needs it; there is deliberately no package-level instance.
//
// Everything in this package expects a single thread of execution.
// Capture functions and Update() must never run concurrently. They may
// interleave freely between frames.
package input
