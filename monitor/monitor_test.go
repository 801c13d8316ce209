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

package monitor_test

import (
	"testing"

	"github.com/gopher800/gopher800/core"
	_ "github.com/gopher800/gopher800/core/synthetic"
	"github.com/gopher800/gopher800/curated"
	"github.com/gopher800/gopher800/driver"
	"github.com/gopher800/gopher800/frame"
	"github.com/gopher800/gopher800/govern"
	"github.com/gopher800/gopher800/history"
	"github.com/gopher800/gopher800/monitor"
	"github.com/gopher800/gopher800/statelayout"
	"github.com/gopher800/gopher800/test"
)

func newSession(t *testing.T) (*driver.Driver, *monitor.Controller) {
	t.Helper()

	c, err := core.New("synthetic")
	test.DemandSuccess(t, err)
	sch, err := statelayout.Atari800()
	test.DemandSuccess(t, err)
	hist, err := history.NewStore(false)
	test.DemandSuccess(t, err)

	drv := driver.NewDriver(c, sch, hist)
	test.DemandSuccess(t, drv.Start(nil))
	t.Cleanup(func() { _ = drv.Close() })

	for i := 0; i < 3; i++ {
		test.DemandSuccess(t, drv.Tick())
	}

	return drv, monitor.NewController(drv)
}

func TestEnter(t *testing.T) {
	drv, mon := newSession(t)

	test.DemandSuccess(t, mon.Enter())
	test.ExpectEquality(t, mon.Suspended(), true)
	test.ExpectEquality(t, drv.State(), govern.DebugSuspended)

	// no ticks while suspended
	err := drv.Tick()
	test.ExpectEquality(t, curated.Has(err, driver.NotRunning), true)

	err = mon.Enter()
	test.ExpectEquality(t, curated.Is(err, monitor.AlreadySuspended), true)
	test.ExpectEquality(t, drv.State(), govern.DebugSuspended)
}

func TestSingleStep(t *testing.T) {
	_, mon := newSession(t)

	err := mon.SingleStep()
	test.ExpectEquality(t, curated.Is(err, monitor.NotSuspended), true)

	test.DemandSuccess(t, mon.Enter())
	before := mon.Registers()
	test.DemandSuccess(t, mon.SingleStep())
	after := mon.Registers()
	test.ExpectInequality(t, before.PC, after.PC)
	test.ExpectEquality(t, mon.Summary(), after.String())
}

func TestResume(t *testing.T) {
	drv, mon := newSession(t)

	// resume when not suspended is a no-op
	test.ExpectSuccess(t, mon.Resume())
	test.ExpectEquality(t, drv.State(), govern.Running)

	test.DemandSuccess(t, mon.Enter())
	test.ExpectEquality(t, drv.Input().Special, frame.SpecialMonitor)
	test.DemandSuccess(t, mon.Resume())
	test.ExpectEquality(t, drv.State(), govern.Running)
	test.ExpectEquality(t, drv.Input().Special, frame.SpecialNone)
	test.ExpectSuccess(t, drv.Tick())
}

func TestAlternate(t *testing.T) {
	drv, mon := newSession(t)

	for i := 0; i < 20; i++ {
		test.DemandSuccess(t, mon.Enter(), i)
		test.DemandSuccess(t, mon.SingleStep(), i)
		test.DemandSuccess(t, mon.Resume(), i)
		test.ExpectEquality(t, drv.Input().Special, frame.SpecialNone, i)
		test.DemandSuccess(t, drv.Tick(), i)
	}

	test.ExpectEquality(t, drv.FrameCount(), 23)
}

func TestEnterBeforeStart(t *testing.T) {
	c, err := core.New("synthetic")
	test.DemandSuccess(t, err)
	sch, err := statelayout.Atari800()
	test.DemandSuccess(t, err)
	hist, err := history.NewStore(false)
	test.DemandSuccess(t, err)

	mon := monitor.NewController(driver.NewDriver(c, sch, hist))
	err = mon.Enter()
	test.ExpectEquality(t, curated.Has(err, driver.NotRunning), true)
}
