// This file is part of Gopher800.
//
// Gopher800 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher800 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher800.  If not, see <https://www.gnu.org/licenses/>.

package govern

import "fmt"

// State indicates the session's state.
type State int

// List of possible session states.
//
// Uninitialised is the default state and is never re-entered once the
// session has started. Terminated is final.
const (
	Uninitialised State = iota
	Running
	DebugSuspended
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialised:
		return "Uninitialised"
	case Running:
		return "Running"
	case DebugSuspended:
		return "DebugSuspended"
	case Terminated:
		return "Terminated"
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// ValidTransition returns true if the session can move from one state to the
// other.
//
// Rules:
//
//  1. Uninitialised can only move to Running or Terminated
//
//  2. Running and DebugSuspended move to each other or to Terminated
//
//  3. Nothing leaves Terminated
func ValidTransition(from State, to State) bool {
	switch from {
	case Uninitialised:
		return to == Running || to == Terminated
	case Running:
		return to == DebugSuspended || to == Terminated
	case DebugSuspended:
		return to == Running || to == Terminated
	}
	return false
}
