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

package monitor

import (
	"github.com/gopher800/gopher800/curated"
	"github.com/gopher800/gopher800/driver"
	"github.com/gopher800/gopher800/frame"
	"github.com/gopher800/gopher800/govern"
	"github.com/gopher800/gopher800/logger"
)

// Sentinal error patterns.
const (
	AlreadySuspended = "already suspended"
	NotSuspended     = "not suspended"
)

// Controller governs the suspension of the emulation for the debugger.
type Controller struct {
	drv *driver.Driver
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController(drv *driver.Driver) *Controller {
	return &Controller{drv: drv}
}

// Suspended returns true if the session is suspended in the monitor.
func (mon *Controller) Suspended() bool {
	return mon.drv.State() == govern.DebugSuspended
}

// Enter the monitor. The session must be running. Entering the monitor while
// already suspended returns an AlreadySuspended error and changes nothing.
func (mon *Controller) Enter() error {
	if mon.Suspended() {
		return curated.Errorf(AlreadySuspended)
	}
	if mon.drv.State() != govern.Running {
		return curated.Errorf("monitor: %v", curated.Errorf(driver.NotRunning, mon.drv.State()))
	}

	err := mon.drv.SendSpecialKey(frame.SpecialMonitor)
	if err != nil {
		return curated.Errorf("monitor: %v", err)
	}

	err = mon.drv.Exchange().Halt()
	if err != nil {
		_ = mon.drv.ClearKeys()
		return curated.Errorf("monitor: %v", err)
	}

	err = mon.drv.Transition(govern.DebugSuspended)
	if err != nil {
		return curated.Errorf("monitor: %v", err)
	}

	err = mon.drv.Refresh()
	if err != nil {
		return curated.Errorf("monitor: %v", err)
	}

	logger.Logf(logger.Allow, "monitor", "entered: %s", mon.Summary())

	return nil
}

// SingleStep executes exactly one instruction and refreshes the registers.
func (mon *Controller) SingleStep() error {
	if !mon.Suspended() {
		return curated.Errorf(NotSuspended)
	}

	err := mon.drv.Core().MonitorStep()
	if err != nil {
		return curated.Errorf("monitor: %v", err)
	}

	err = mon.drv.Refresh()
	if err != nil {
		return curated.Errorf("monitor: %v", err)
	}

	return nil
}

// Resume the emulation. Any pending special-function input is cleared.
// Resuming when not suspended does nothing.
func (mon *Controller) Resume() error {
	if !mon.Suspended() {
		return nil
	}

	err := mon.drv.ClearKeys()
	if err != nil {
		return curated.Errorf("monitor: %v", err)
	}

	err = mon.drv.Core().MonitorClear()
	if err != nil {
		return curated.Errorf("monitor: %v", err)
	}

	err = mon.drv.Transition(govern.Running)
	if err != nil {
		return curated.Errorf("monitor: %v", err)
	}

	logger.Logf(logger.Allow, "monitor", "resumed: %s", mon.Summary())

	return nil
}

// Registers returns the current CPU registers.
func (mon *Controller) Registers() driver.CPU {
	return mon.drv.CPU()
}

// Summary returns a single line description of the CPU registers.
func (mon *Controller) Summary() string {
	return mon.drv.CPU().String()
}
