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

// Mode is the way the frontend drives the emulation. The mode is chosen when
// the program starts and does not change.
type Mode int

// List of frontend modes.
const (
	ModeNone Mode = iota

	// frames are presented to a display at the television frame rate
	ModeRun

	// a fixed number of frames are run without a display
	ModeHeadless

	// the debugger is entered before the first frame
	ModeDebug

	// frames are run as quickly as possible and measured
	ModePerform
)

func (m Mode) String() string {
	switch m {
	case ModeRun:
		return "run"
	case ModeHeadless:
		return "headless"
	case ModeDebug:
		return "debug"
	case ModePerform:
		return "perform"
	}
	return "none"
}

// Interactive returns true if the mode accepts input from the user while the
// emulation is running.
func (m Mode) Interactive() bool {
	return m == ModeRun || m == ModeDebug
}
