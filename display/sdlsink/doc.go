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

// Package sdlsink is a display sink that presents frames in an SDL window
// through a streaming texture. The package also translates SDL events into
// display events for use by the glsink package.
//
// The package is only built with the sdl build tag. Without the tag, the
// sink is registered but creating it returns an error.
//
// It is registered with the display package under the name "sdl".
package sdlsink
