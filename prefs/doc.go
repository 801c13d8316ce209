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

// Package prefs facilitates the storage of preferential values in the
// Gopher800 system. It is used for values that the user may want to change
// between sessions. For example, the history retention interval:
//
//	var interval prefs.Int
//	interval.Set(10)
//
//	dsk, err := prefs.NewDisk(paths.ResourcePath("", prefs.DefaultPrefsFile))
//	if err != nil {
//		return err
//	}
//	err = dsk.Add("history.interval", &interval)
//	if err != nil {
//		return err
//	}
//	err = dsk.Load(true)
//
// Values can be changed on the command line for the duration of a single
// session with the command line stack. See PushCommandLineStack(). Values set
// on the command line take precedence over values on disk and are never
// saved.
//
// Each prefs type can be given a hook function that is called after a new
// value has been set. This allows a package to react to changes in a value,
// for example by reallocating a buffer.
package prefs
