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

// Package history keeps a sparse record of output snapshots, indexed by frame
// number, so that the emulation can be rewound to an earlier frame.
//
// A snapshot is retained for every frame that is a multiple of the retention
// interval and for the most recent frame. The snapshot of the most recent
// frame is forgotten as soon as a newer snapshot is recorded, unless its
// frame number is also a multiple of the interval. This guarantees that a
// search backwards from the live edge of the emulation always finds a
// snapshot if any have been recorded.
//
// Retained snapshots are deep copies. They are never changed once recorded
// and can be shared freely.
//
// The retention interval and an optional limit on the number of retained
// snapshots are preference values (history.interval and
// history.maxSnapshots).
package history
