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
	"github.com/kestrelgames/strobe/bitvec"
)

// State is the discrete state of a single code. Exactly one State holds
// per code at any instant.
type State int

// The four discrete states. JustPressed implies the code is down,
// JustReleased implies it is up. A code moves
// Up -> JustPressed -> Down -> JustReleased -> Up.
const (
	Up State = iota
	Down
	JustPressed
	JustReleased
)

func (s State) String() string {
	switch s {
	case Up:
		return "up"
	case Down:
		return "down"
	case JustPressed:
		return "just pressed"
	case JustReleased:
		return "just released"
	}
	return "unknown"
}

// stateMachine tracks the discrete state of every code in one device's
// vocabulary. Three bit-vectors mirror the state array for O(1) bulk
// queries; the two representations are kept consistent at all times.
//
// Codes given to the machine have already been bounds-checked by the
// owning controller.
type stateMachine struct {
	total int

	down         *bitvec.Vector
	justPressed  *bitvec.Vector
	justReleased *bitvec.Vector

	state []State

	// codes whose edge state must decay to steady-state on the next
	// frame. the member array prevents duplicate entries without a search
	pending       []int
	pendingMember []bool
}

func newStateMachine(total int) *stateMachine {
	return &stateMachine{
		total:         total,
		down:          bitvec.NewVector(total),
		justPressed:   bitvec.NewVector(total),
		justReleased:  bitvec.NewVector(total),
		state:         make([]State, total),
		pending:       make([]int, 0, total),
		pendingMember: make([]bool, total),
	}
}

func (m *stateMachine) pend(code int) {
	if !m.pendingMember[code] {
		m.pendingMember[code] = true
		m.pending = append(m.pending, code)
	}
}

// decay resolves the previous frame's edges: JustPressed becomes Down and
// JustReleased becomes Up. Must be called before any of the current
// frame's events are applied, so that an edge is visible for exactly one
// frame.
func (m *stateMachine) decay() {
	for _, code := range m.pending {
		m.pendingMember[code] = false
		switch m.state[code] {
		case JustPressed:
			m.state[code] = Down
			m.justPressed.Set(code, false)
		case JustReleased:
			m.state[code] = Up
			m.justReleased.Set(code, false)
		}
	}
	m.pending = m.pending[:0]
}

// apply one raw press/release transition. Returns true if the discrete
// state changed.
//
// The transition table:
//
//	Up           + down -> JustPressed
//	JustReleased + down -> JustPressed
//	Down         + up   -> JustReleased
//	JustPressed  + up   -> JustReleased
//
// Everything else is ignored. In particular a down event for a code that
// is already down is debounced.
func (m *stateMachine) apply(code int, down bool) bool {
	s := m.state[code]

	if down {
		if s != Up && s != JustReleased {
			return false
		}
		m.justReleased.Set(code, false)
		m.justPressed.Set(code, true)
		m.down.Set(code, true)
		m.state[code] = JustPressed
		m.pend(code)
		return true
	}

	if s != Down && s != JustPressed {
		return false
	}
	m.justPressed.Set(code, false)
	m.justReleased.Set(code, true)
	m.down.Set(code, false)
	m.state[code] = JustReleased
	m.pend(code)
	return true
}

// sweep forces every held code to JustReleased. Used when window focus is
// lost and the matching release events may never arrive. Returns true if
// any code was affected.
func (m *stateMachine) sweep() bool {
	swept := false
	m.down.ForEachSet(func(code int) {
		m.justPressed.Set(code, false)
		m.justReleased.Set(code, true)
		m.state[code] = JustReleased
		m.pend(code)
		swept = true
	})
	m.down.Clear()
	return swept
}

// pendingCount is used by tests to check that edges are not retained.
func (m *stateMachine) pendingCount() int {
	return len(m.pending)
}

func (m *stateMachine) stateOf(code int) State {
	if code < 0 || code >= m.total {
		return Up
	}
	return m.state[code]
}

func (m *stateMachine) isDown(code int) bool {
	if code < 0 || code >= m.total {
		return false
	}
	return m.down.Get(code)
}

func (m *stateMachine) wasJustPressed(code int) bool {
	if code < 0 || code >= m.total {
		return false
	}
	return m.justPressed.Get(code)
}

func (m *stateMachine) wasJustReleased(code int) bool {
	if code < 0 || code >= m.total {
		return false
	}
	return m.justReleased.Get(code)
}
