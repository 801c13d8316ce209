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

package performance_test

import (
	"strings"
	"testing"
	"time"

	"github.com/gopher800/gopher800/core"
	_ "github.com/gopher800/gopher800/core/synthetic"
	"github.com/gopher800/gopher800/curated"
	"github.com/gopher800/gopher800/driver"
	"github.com/gopher800/gopher800/history"
	"github.com/gopher800/gopher800/performance"
	"github.com/gopher800/gopher800/statelayout"
	"github.com/gopher800/gopher800/television"
	"github.com/gopher800/gopher800/test"
)

func TestCalcFPS(t *testing.T) {
	fps, acc := performance.CalcFPS(television.SpecPAL, 100, 4)
	test.ExpectApproximate(t, fps, 25.0, 0.001)
	test.ExpectApproximate(t, acc, 50.14, 0.01)

	fps, acc = performance.CalcFPS(television.SpecPAL, 100, 0)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, acc, 0.0)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu, Trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)
	test.ExpectEquality(t, p.String(), "CPU,TRACE")

	p, err = performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfileString("cpu,disk")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	c, err := core.New("synthetic")
	test.DemandSuccess(t, err)
	sch, err := statelayout.Atari800()
	test.DemandSuccess(t, err)
	hist, err := history.NewStore(false)
	test.DemandSuccess(t, err)

	drv := driver.NewDriver(c, sch, hist)
	test.DemandSuccess(t, drv.Start(nil))
	defer drv.Close()

	lt := performance.Leadtime
	performance.Leadtime = 10 * time.Millisecond
	defer func() { performance.Leadtime = lt }()

	var s strings.Builder
	err = performance.Check(&s, performance.ProfileNone, drv, television.SpecNTSC, true, "50ms")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(s.String(), "fps"), true, s.String())
	test.ExpectEquality(t, drv.FrameCount() > 0, true)

	err = performance.Check(&s, performance.ProfileNone, drv, television.SpecNTSC, true, "ten seconds")
	test.ExpectFailure(t, err)

	// check fails if the driver is not running
	test.DemandSuccess(t, drv.Close())
	err = performance.Check(&s, performance.ProfileNone, drv, television.SpecNTSC, true, "50ms")
	test.ExpectEquality(t, curated.Has(err, driver.NotRunning), true)
}
