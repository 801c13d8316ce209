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

// Package display defines the interface between the frame driver and the
// many ways a frame can be presented to the user.
//
// A Sink advertises what it can do with a set of Capability flags. Prepare()
// uses those flags to build a Frame containing only what the sink needs. For
// example, a sink that accepts indexed colours and the colour table directly
// does not cause RGBA conversion to happen.
//
// Sinks that produce input, such as a windowed display, also implement the
// InputSource interface. The events returned by Poll() are applied to the
// driver with Event.Apply().
//
// Implementations register themselves by name with Register() and are
// created with New(). The sub-packages of display contain the
// implementations.
package display
