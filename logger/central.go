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

package logger

import "io"

// the central logger is shared by every package. entries beyond the
// maximum are dropped from the front.
const maxCentral = 256

var central = NewLogger(maxCentral)

// Log adds an entry to the central logger.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf formats and adds an entry to the central logger.
func Logf(perm Permission, tag string, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// Clear the central logger.
func Clear() {
	central.Clear()
}

// Write every entry in the central logger.
func Write(output io.Writer) {
	central.Write(output)
}

// Tail writes the most recent entries in the central logger.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho writes new entries in the central logger to output as they are
// made. A nil writer stops the echo.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}
