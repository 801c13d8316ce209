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

// Package monitor lets an interactive debugger take control of the emulation
// part way through a frame.
//
// The Controller is a two state machine on top of the driver. Enter() asks
// the core to halt in its monitor and moves the session to the
// DebugSuspended state. While suspended the debugger can execute single
// instructions with SingleStep() and inspect the machine through the driver.
// Resume() returns the session to the Running state.
//
// No frames are produced while the session is suspended. The driver refuses
// to tick until Resume() has been called.
package monitor
