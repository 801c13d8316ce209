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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopher800/gopher800/govern"
	"github.com/gopher800/gopher800/prefs"
	"github.com/gopher800/gopher800/test"
)

// the preferences file is kept in the temporary directory
func workspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	test.DemandSuccess(t, os.Mkdir(".gopher800", 0o700))
	return dir
}

func TestHeadless(t *testing.T) {
	dir := workspace(t)

	app := newApp()
	out := &bytes.Buffer{}
	app.Writer = out

	err := app.Run([]string{"gopher800", "headless",
		"--frames", "10",
		"--snapshot-every", "5",
		"--snapshot-dir", "snaps",
		"--wav", "audio.wav",
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.TrimSpace(out.String()), "10 frames")

	snaps, err := filepath.Glob(filepath.Join(dir, "snaps", "*.bmp"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(snaps), 2)

	_, err = os.Stat(filepath.Join(dir, "audio.wav"))
	test.ExpectSuccess(t, err)

	data, err := os.ReadFile(filepath.Join(dir, ".gopher800", "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "history.interval :: "))
	test.ExpectSuccess(t, strings.Contains(string(data), "display.name :: terminal"))
}

func TestFrontendPrefs(t *testing.T) {
	workspace(t)

	prefs.PushCommandLineStack("run.speed::2; display.scale::3")
	defer prefs.PopCommandLineStack()

	p, err := newFrontendPrefs(true)
	test.DemandSuccess(t, err)
	test.ExpectApproximate(t, p.fps(50.0), 100.0, 0.001)
	test.ExpectEquality(t, p.Scale.Get().(int), 3)
	test.ExpectEquality(t, p.Display.String(), "terminal")

	test.ExpectSuccess(t, p.Speed.Set(0))
	test.ExpectApproximate(t, p.fps(50.0), 50.0, 0.001)

	test.ExpectFailure(t, p.Scale.Set(20))
}

func TestHeadlessWithoutFrames(t *testing.T) {
	workspace(t)

	app := newApp()
	app.Writer = &bytes.Buffer{}
	test.ExpectFailure(t, app.Run([]string{"gopher800", "headless"}))
}

func TestUnknownCore(t *testing.T) {
	workspace(t)

	app := newApp()
	app.Writer = &bytes.Buffer{}
	test.ExpectFailure(t, app.Run([]string{"gopher800", "--core", "nonexistent", "headless", "--frames", "1"}))
}

func TestTypeText(t *testing.T) {
	workspace(t)

	s, err := newSession(sessionConfig{mode: govern.ModeHeadless, core: "synthetic", display: "none"})
	test.DemandSuccess(t, err)

	s.typeText("AB")
	test.ExpectEquality(t, len(s.drv.PendingEvents()), 2)

	test.DemandSuccess(t, s.run(2, nil))
	ram, err := s.drv.RAM()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ram[0x02fc], 'A')

	test.DemandSuccess(t, s.run(4, nil))
	ram, err = s.drv.RAM()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ram[0x02fc], 'B')

	test.DemandSuccess(t, s.run(6, nil))
	test.ExpectEquality(t, len(s.drv.PendingEvents()), 0)

	smp, ok := s.stats.Latest()
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, smp.Frames >= 1 && smp.Frames <= 6)

	test.ExpectSuccess(t, s.close())
}

func TestDisassembleFile(t *testing.T) {
	dir := workspace(t)

	fn := filepath.Join(dir, "prog.bin")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0xa9, 0x10, 0x60}, 0o600))

	out := &bytes.Buffer{}
	test.DemandSuccess(t, disassembleFile(out, fn, 0x2000))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, strings.HasPrefix(lines[0], "2000"), true)
	test.ExpectEquality(t, strings.Contains(lines[0], "LDA"), true)
	test.ExpectEquality(t, strings.HasPrefix(lines[1], "2002"), true)
	test.ExpectEquality(t, strings.Contains(lines[1], "RTS"), true)
}

func TestDisasmOrigin(t *testing.T) {
	dir := workspace(t)

	fn := filepath.Join(dir, "prog.bin")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0xa9, 0x10, 0x60}, 0o600))

	for _, origin := range []string{"0x2000", "0X2000", "$2000", "8192"} {
		app := newApp()
		out := &bytes.Buffer{}
		app.Writer = out

		err := app.Run([]string{"gopher800", "disasm", "--origin", origin, fn})
		test.DemandSuccess(t, err, origin)
		test.ExpectEquality(t, strings.HasPrefix(out.String(), "2000"), true, origin)
	}

	for _, origin := range []string{"$10000", "2000h", ""} {
		app := newApp()
		app.Writer = &bytes.Buffer{}
		err := app.Run([]string{"gopher800", "disasm", "--origin", origin, fn})
		test.ExpectFailure(t, err, origin)
	}
}
