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

package driver_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gopher800/gopher800/core"
	_ "github.com/gopher800/gopher800/core/synthetic"
	"github.com/gopher800/gopher800/curated"
	"github.com/gopher800/gopher800/driver"
	"github.com/gopher800/gopher800/frame"
	"github.com/gopher800/gopher800/govern"
	"github.com/gopher800/gopher800/history"
	"github.com/gopher800/gopher800/logger"
	"github.com/gopher800/gopher800/statelayout"
	"github.com/gopher800/gopher800/test"
)

func newDriver(t *testing.T, c core.Core) *driver.Driver {
	t.Helper()

	if c == nil {
		var err error
		c, err = core.New("synthetic")
		test.DemandSuccess(t, err)
	}

	sch, err := statelayout.Atari800()
	test.DemandSuccess(t, err)

	hist, err := history.NewStore(false)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, hist.Prefs.Interval.Set(10))

	return driver.NewDriver(c, sch, hist)
}

func startDriver(t *testing.T) *driver.Driver {
	t.Helper()
	drv := newDriver(t, nil)
	test.DemandSuccess(t, drv.Start(nil))
	t.Cleanup(func() { _ = drv.Close() })
	return drv
}

func tick(t *testing.T, drv *driver.Driver, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		test.DemandSuccess(t, drv.Tick())
	}
}

func TestNotRunning(t *testing.T) {
	drv := newDriver(t, nil)
	test.ExpectEquality(t, drv.State(), govern.Uninitialised)

	err := drv.Tick()
	test.ExpectEquality(t, curated.Has(err, driver.NotRunning), true)
	test.ExpectFailure(t, drv.SendChar('a'))

	test.DemandSuccess(t, drv.Start(nil))
	test.ExpectEquality(t, drv.State(), govern.Running)
	test.ExpectFailure(t, drv.Start(nil))

	test.DemandSuccess(t, drv.Close())
	test.ExpectEquality(t, drv.State(), govern.Terminated)
	test.ExpectSuccess(t, drv.Close())

	err = drv.Tick()
	test.ExpectEquality(t, curated.Has(err, driver.NotRunning), true)
}

func TestTickCount(t *testing.T) {
	drv := startDriver(t)

	for i := 1; i <= 25; i++ {
		test.DemandSuccess(t, drv.Tick())
		test.ExpectEquality(t, drv.FrameCount(), i)
		test.ExpectEquality(t, drv.FrameNumber(), i-1)
		test.ExpectEquality(t, drv.History.Len(), i)
	}
}

func TestFrameEvents(t *testing.T) {
	drv := startDriver(t)
	tick(t, drv, 3)

	var fired []int
	var order []string

	// scheduled during tick 4 and so fires during tick 6
	drv.Schedule(1, "during", func() {
		drv.Schedule(2, "during", func() {
			fired = append(fired, drv.FrameCount())
		})
	})

	drv.Schedule(3, "a", func() { order = append(order, "a") })
	drv.Schedule(3, "b", func() { order = append(order, "b") })

	tick(t, drv, 1)
	test.ExpectEquality(t, len(fired), 0)
	tick(t, drv, 1)
	test.ExpectEquality(t, len(fired), 0)
	tick(t, drv, 1)
	test.DemandEquality(t, len(fired), 1)
	test.ExpectEquality(t, fired[0], 6)
	test.ExpectEquality(t, strings.Join(order, ""), "ab")

	tick(t, drv, 5)
	test.ExpectEquality(t, len(fired), 1)
	test.ExpectEquality(t, len(drv.PendingEvents()), 0)
}

func TestSpecialKey(t *testing.T) {
	drv := startDriver(t)
	tick(t, drv, 3)

	test.DemandSuccess(t, drv.SendChar('x'))
	test.DemandSuccess(t, drv.SendSpecialKey(frame.SpecialColdstart))
	test.ExpectEquality(t, drv.Input().KeyChar, 0)
	test.ExpectEquality(t, len(drv.PendingEvents()), 1)

	tick(t, drv, 1)
	test.ExpectEquality(t, drv.Input().Special, frame.SpecialColdstart)

	tick(t, drv, 1)
	test.ExpectEquality(t, drv.Input().Special, frame.SpecialNone)

	// monitor requests are not cleared automatically
	test.DemandSuccess(t, drv.SendSpecialKey(frame.SpecialMonitor))
	test.ExpectEquality(t, len(drv.PendingEvents()), 0)
	test.DemandSuccess(t, drv.ClearKeys())
}

func TestInputs(t *testing.T) {
	drv := startDriver(t)

	test.DemandSuccess(t, drv.SetOption(true))
	test.DemandSuccess(t, drv.SetSelect(true))
	test.DemandSuccess(t, drv.SetStart(true))
	test.DemandSuccess(t, drv.SetJoystick(1, frame.JoyUpLeft, true))
	test.ExpectFailure(t, drv.SetJoystick(4, frame.JoyUp, false))
	test.DemandSuccess(t, drv.SetMouse(10, 20, 1))
	test.DemandSuccess(t, drv.SetArgs([]uint8{1}, "D1:"))
	test.DemandSuccess(t, drv.SendKeycode(0x3f))

	in := drv.Input()
	test.ExpectEquality(t, in.Option && in.Select && in.Start, true)
	test.ExpectEquality(t, in.Joy[1], frame.JoyUpLeft)
	test.ExpectEquality(t, in.Trig[1], true)
	test.ExpectEquality(t, in.MouseY, 20)
	test.ExpectEquality(t, in.ArgString, "D1:")
	test.ExpectEquality(t, in.KeyCode, 0x3f)
}

// start a session, tick ten times, then tick once more
func TestEndToEnd(t *testing.T) {
	drv := startDriver(t)

	tick(t, drv, 10)
	test.ExpectEquality(t, drv.FrameCount(), 10)
	test.ExpectInequality(t, drv.History.Get(0), nil)
	test.ExpectInequality(t, drv.History.Get(9), nil)
	for f := 1; f < 9; f++ {
		test.ExpectEquality(t, drv.History.Get(f), nil, f)
	}

	f, err := drv.PreviousHistory(10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, 9)

	tick(t, drv, 1)
	test.ExpectInequality(t, drv.History.Get(10), nil)
	test.ExpectEquality(t, drv.History.Get(9), nil)

	f, err = drv.PreviousHistory(10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, 0)

	f, err = drv.NextHistory(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, 10)
}

func TestRestore(t *testing.T) {
	drv := startDriver(t)
	tick(t, drv, 25)

	test.DemandSuccess(t, drv.SendSpecialKey(frame.SpecialWarmstart))
	test.ExpectFailure(t, drv.Restore(15))

	test.DemandSuccess(t, drv.Restore(10))
	test.ExpectEquality(t, drv.History.Len(), 11)
	test.ExpectEquality(t, drv.FrameCount(), 11)
	test.ExpectEquality(t, drv.FrameNumber(), 10)
	test.ExpectEquality(t, len(drv.PendingEvents()), 0)
	test.ExpectEquality(t, drv.History.Get(20), nil)

	// the X register of the synthetic core counts frames
	test.ExpectEquality(t, drv.CPU().X, 11)

	tick(t, drv, 1)
	test.ExpectEquality(t, drv.FrameNumber(), 11)
	test.ExpectEquality(t, drv.History.Len(), 12)

	// negative frames are ignored
	test.ExpectSuccess(t, drv.Restore(-1))
}

func TestConsistencyWarning(t *testing.T) {
	drv := startDriver(t)
	tick(t, drv, 3)

	logger.Clear()
	drv.History.Reset()
	tick(t, drv, 1)

	var b bytes.Buffer
	logger.Write(&b)
	test.ExpectEquality(t, strings.Contains(b.String(), "history out of sync"), true)
}

func TestCPU(t *testing.T) {
	drv := startDriver(t)
	test.ExpectEquality(t, drv.CPU(), driver.PowerOn)
	_, err := drv.RAM()
	test.ExpectFailure(t, err)

	tick(t, drv, 2)
	c := drv.CPU()
	test.ExpectEquality(t, c.X, 2)
	test.ExpectEquality(t, c.String()[:5], "A=aa ")

	ram, err := drv.RAM()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(ram), 65536)
}

func TestScreen(t *testing.T) {
	drv := startDriver(t)
	tick(t, drv, 12)

	live, err := drv.ColourIndexedScreen(-1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(live), frame.VideoSize)

	old, err := drv.ColourIndexedScreen(10)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, old[0], live[0])

	_, err = drv.ColourIndexedScreen(5)
	test.ExpectEquality(t, curated.Has(err, history.NotFound), true)
}

func TestSegments(t *testing.T) {
	drv := startDriver(t)
	test.ExpectEquality(t, len(drv.Segments()), 2)

	tick(t, drv, 1)
	segs := drv.Segments()
	test.DemandEquality(t, len(segs) > 2, true)
	test.ExpectEquality(t, segs[0].Label, "Video Frame")
	test.ExpectEquality(t, segs[1].Label, "Audio Data")
	test.ExpectEquality(t, segs[2].Label, "header")
	test.ExpectEquality(t, segs[2].Start, frame.StateOffset)
}

// a core that corrupts the state blob on the third frame
type corruptCore struct {
	core.Core
	frames int
}

func (c *corruptCore) NextFrame(in *frame.Input, out *frame.Output) error {
	err := c.Core.NextFrame(in, out)
	if err != nil {
		return err
	}
	c.frames++
	if c.frames == 3 {
		out.State = out.State[:len(out.State)-1]
	}
	return nil
}

func TestLayoutMismatch(t *testing.T) {
	c, err := core.New("synthetic")
	test.DemandSuccess(t, err)

	drv := newDriver(t, &corruptCore{Core: c})
	test.DemandSuccess(t, drv.Start(nil))

	tick(t, drv, 2)
	err = drv.Tick()
	test.ExpectEquality(t, curated.Has(err, statelayout.LayoutMismatch), true)
	test.ExpectEquality(t, drv.State(), govern.Terminated)
}
