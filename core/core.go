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

package core

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gopher800/gopher800/curated"
	"github.com/gopher800/gopher800/frame"
)

// Sentinal error patterns.
const (
	UnknownCore = "unknown core: %v"
	NotStarted  = "core not started"
)

// Core is the interface to an emulation core.
type Core interface {
	frame.Core

	// start the emulation with the option tokens. the tokens are passed
	// unmodified to the core. the returned Output is the live output record
	Start(args []string) (*frame.Output, error)

	// execute exactly one instruction while the core is halted in the
	// monitor
	MonitorStep() error

	// leave the monitor. the next call to NextFrame() continues from where
	// the core was halted
	MonitorClear() error

	// mount the disk image in the numbered drive. drives are numbered from 1
	MountDisk(drive int, path string, readOnly bool) error

	// reboot the machine with the file. the type of file is detected by the
	// core
	RebootWithFile(path string) error

	// release all resources
	Close() error
}

// Creator is a function that creates a new instance of a Core.
type Creator func() Core

var registry = struct {
	crit     sync.Mutex
	creators map[string]Creator
}{
	creators: make(map[string]Creator),
}

// Register a Core creator with the name. Registering the same name twice
// panics.
func Register(name string, create Creator) {
	registry.crit.Lock()
	defer registry.crit.Unlock()

	if _, ok := registry.creators[name]; ok {
		panic(fmt.Sprintf("core: %s registered twice", name))
	}
	registry.creators[name] = create
}

// New creates an instance of the named Core.
func New(name string) (Core, error) {
	registry.crit.Lock()
	defer registry.crit.Unlock()

	create, ok := registry.creators[name]
	if !ok {
		return nil, curated.Errorf(UnknownCore, name)
	}
	return create(), nil
}

// Names returns the sorted list of registered cores.
func Names() []string {
	registry.crit.Lock()
	defer registry.crit.Unlock()

	n := make([]string, 0, len(registry.creators))
	for k := range registry.creators {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}
