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

package prefs

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// preferences given on the command line override the values loaded from
// disk. groups are stacked so that a group can be discarded once the
// preferences it names have been loaded.
var commandLine struct {
	crit   sync.Mutex
	groups []map[string]Value
}

// PushCommandLineStack parses the string and adds the result as a new group
// of preferences. The string is a list of key/value pairs separated by
// semi-colons:
//
//	history.interval::5; history.maxSnapshots::100
//
// Malformed pairs are ignored.
func PushCommandLineStack(prefs string) {
	grp := make(map[string]Value)
	for _, pair := range strings.Split(prefs, ";") {
		key, value, ok := strings.Cut(pair, "::")
		if !ok || strings.Contains(value, "::") {
			continue
		}
		grp[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	commandLine.groups = append(commandLine.groups, grp)
}

// PopCommandLineStack discards the most recent group. The preferences in the
// group that were never used are returned in the same form accepted by
// PushCommandLineStack().
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	n := len(commandLine.groups)
	if n == 0 {
		return ""
	}
	grp := commandLine.groups[n-1]
	commandLine.groups = commandLine.groups[:n-1]

	keys := make([]string, 0, len(grp))
	for key := range grp {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	unused := make([]string, 0, len(grp))
	for _, key := range keys {
		unused = append(unused, fmt.Sprintf("%s::%v", key, grp[key]))
	}
	return strings.Join(unused, "; ")
}

// SizeCommandLineStack returns the number of groups on the stack.
func SizeCommandLineStack() int {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	return len(commandLine.groups)
}

// GetCommandLinePref returns the value for the key from the most recent
// group. A value can only be retrieved once.
func GetCommandLinePref(key string) (bool, Value) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	n := len(commandLine.groups)
	if n == 0 {
		return false, nil
	}

	grp := commandLine.groups[n-1]
	v, ok := grp[key]
	if ok {
		delete(grp, key)
	}
	return ok, v
}
