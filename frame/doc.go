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

// Package frame defines the records exchanged with the emulation core and the
// Exchange type that moves them.
//
// There is exactly one live Input and one live Output for a session. The Input
// is written by the frontend and read by the core at the start of every
// frame. It is overwritten, never queued. The Output is written by the core
// at the end of every frame and must be treated as read-only by the frontend
// until the next call to Step(). Use Output.Clone() to keep a copy that
// outlives the next step.
package frame
