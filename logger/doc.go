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

// Package logger is the central log for Gopher800. Entries are made up of a
// tag and a detail string. The tag is normally the name of the package making
// the entry:
//
//	logger.Logf(logger.Allow, "driver", "frame %d: history out of sync", fn)
//
// Repeated entries are collapsed into a single entry with a repeat count.
//
// The central log is bounded. Older entries are forgotten once the maximum
// number of entries has been reached. Entries can be echoed to an io.Writer as
// they are made with SetEcho(), which is how the command line program shows
// the log.
package logger
