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

package synthetic_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopher800/gopher800/core"
	"github.com/gopher800/gopher800/core/synthetic"
	"github.com/gopher800/gopher800/frame"
	"github.com/gopher800/gopher800/statelayout"
	"github.com/gopher800/gopher800/test"
)

func start(t *testing.T, args ...string) (core.Core, *frame.Output, *statelayout.Layout) {
	t.Helper()

	c, err := core.New("synthetic")
	test.DemandSuccess(t, err)

	out, err := c.Start(args)
	test.DemandSuccess(t, err)

	sch, err := statelayout.Atari800()
	test.DemandSuccess(t, err)

	l, err := statelayout.Decode(sch, out.State)
	test.DemandSuccess(t, err)

	return c, out, l
}

func TestStart(t *testing.T) {
	c, out, l := start(t, "-basic", "-banks", "4")
	defer c.Close()

	test.ExpectEquality(t, out.FrameNumber, 0)

	pc, err := l.Word(out.State, "cpu.PC")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pc, 0xfffc)

	basic, err := l.Byte(out.State, "atari.builtinBasic")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, basic, 1)

	_, ok := l.Offsets["ram.bank[3]"]
	test.ExpectSuccess(t, ok)

	_, err = c.Start(nil)
	test.ExpectFailure(t, err)
}

func TestStartOptions(t *testing.T) {
	c, err := core.New("synthetic")
	test.DemandSuccess(t, err)
	_, err = c.Start([]string{"-turbo"})
	test.ExpectFailure(t, err)

	c, err = core.New("synthetic")
	test.DemandSuccess(t, err)
	_, err = c.Start([]string{"-banks"})
	test.ExpectFailure(t, err)
}

func TestNextFrame(t *testing.T) {
	c, out, l := start(t)
	defer c.Close()

	in := frame.NewInput()
	in.KeyChar = 'A'
	in.Option = true
	test.DemandSuccess(t, c.NextFrame(&in, out))
	test.ExpectEquality(t, out.FrameNumber, 0)
	test.ExpectEquality(t, out.FrameFinished, true)
	test.DemandSuccess(t, l.Verify(out.State))

	ram, err := l.Slice(out.State, "ram.ram")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ram[0x02fc], 'A')
	test.ExpectEquality(t, ram[0xd01f], 0x03)

	// the test pattern scrolls with every frame
	first := out.Video[0]
	test.DemandSuccess(t, c.NextFrame(&in, out))
	test.ExpectInequality(t, out.Video[0], first)

	// video is made up of valid indexed colours and audio is a square wave
	test.ExpectEquality(t, out.Audio[0] == 0xa0 || out.Audio[0] == 0x60, true)
}

func TestColdstart(t *testing.T) {
	c, out, l := start(t)
	defer c.Close()

	in := frame.NewInput()
	in.Special = frame.SpecialColdstart
	test.DemandSuccess(t, c.NextFrame(&in, out))

	// eight single byte instructions (BRK) executed from the cold start
	// entry point
	pc, err := l.Word(out.State, "cpu.PC")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pc, 0xe477+8)
}

func TestMonitor(t *testing.T) {
	c, out, l := start(t)
	defer c.Close()

	in := frame.NewInput()
	test.DemandSuccess(t, c.NextFrame(&in, out))

	// a halt without the monitor code is refused
	test.ExpectFailure(t, c.Halt(&in))
	test.ExpectFailure(t, c.MonitorStep())

	in.Special = frame.SpecialMonitor
	test.DemandSuccess(t, c.Halt(&in))

	// no frames while halted
	test.ExpectFailure(t, c.NextFrame(&in, out))

	before, err := l.Word(out.State, "cpu.PC")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, c.MonitorStep())
	test.DemandSuccess(t, c.CurrentState(out))
	after, err := l.Word(out.State, "cpu.PC")
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, before, after)

	test.DemandSuccess(t, c.MonitorClear())
	in.ClearKeys()
	test.ExpectSuccess(t, c.NextFrame(&in, out))
}

func TestRestore(t *testing.T) {
	c, out, l := start(t)
	defer c.Close()

	in := frame.NewInput()
	for i := 0; i < 5; i++ {
		test.DemandSuccess(t, c.NextFrame(&in, out))
	}
	snapshot := out.Clone()

	for i := 0; i < 5; i++ {
		test.DemandSuccess(t, c.NextFrame(&in, out))
	}
	test.ExpectEquality(t, out.FrameNumber, 9)

	test.DemandSuccess(t, c.RestoreState(snapshot))
	test.DemandSuccess(t, c.NextFrame(&in, out))
	test.ExpectEquality(t, out.FrameNumber, 5)

	x, err := l.Byte(out.State, "cpu.X")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, x, 6)

	// a blob of the wrong shape is refused
	test.ExpectFailure(t, c.RestoreState(&frame.Output{State: []byte{0}}))
}

func TestDisks(t *testing.T) {
	c, out, l := start(t)
	defer c.Close()

	dir := t.TempDir()
	atr := filepath.Join(dir, "game.atr")
	test.DemandSuccess(t, os.WriteFile(atr, make([]byte, 720*128), 0o600))

	test.DemandSuccess(t, c.MountDisk(2, atr, true))
	test.ExpectFailure(t, c.MountDisk(9, atr, true))
	test.ExpectFailure(t, c.MountDisk(1, filepath.Join(dir, "missing.atr"), false))

	test.DemandSuccess(t, c.CurrentState(out))
	sectors, err := l.Word(out.State, "disks[1].sectors")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sectors, 720)
	ro, err := l.Byte(out.State, "disks[1].readOnly")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ro, 1)

	xex := filepath.Join(dir, "prog.xex")
	test.DemandSuccess(t, os.WriteFile(xex, []byte{0xa9, 0x00, 0xea}, 0o600))
	test.DemandSuccess(t, c.RebootWithFile(xex))
	test.DemandSuccess(t, c.CurrentState(out))
	pc, err := l.Word(out.State, "cpu.PC")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pc, 0x2000)
}

func TestRegistered(t *testing.T) {
	var _ core.Core = (*synthetic.Synthetic)(nil)

	found := false
	for _, n := range core.Names() {
		if n == "synthetic" {
			found = true
		}
	}
	test.ExpectSuccess(t, found)
}
