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

// Package debugger is a line oriented interface to the monitor. It is
// entered when the emulation is suspended and reads commands until the
// emulation is resumed or the session ends.
//
// Commands are not case sensitive. The HELP command lists the available
// commands.
//
// Commands read from the input can be echoed to the output. This is useful
// when the input is not a terminal, for example when the debugger is driven
// by a script.
package debugger
