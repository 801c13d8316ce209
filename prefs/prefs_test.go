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

package prefs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopher800/gopher800/prefs"
	"github.com/gopher800/gopher800/test"
)

func TestIntRange(t *testing.T) {
	var v prefs.Int
	v.SetRange(1, 100)
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectFailure(t, v.Set(0))
	test.ExpectFailure(t, v.Set("101"))
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectFailure(t, v.Set("ten"))
}

func TestHookPost(t *testing.T) {
	var v prefs.Bool
	var seen bool
	v.SetHookPost(func(nv prefs.Value) error {
		seen = nv.(bool)
		return nil
	})
	test.ExpectSuccess(t, v.Set("TRUE"))
	test.ExpectEquality(t, seen, true)
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, seen, false)
}

func TestDiskRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	var interval prefs.Int
	var name prefs.String
	var scale prefs.Float

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dsk.Add("history.interval", &interval))
	test.DemandSuccess(t, dsk.Add("display.name", &name))
	test.DemandSuccess(t, dsk.Add("display.scale", &scale))
	test.ExpectFailure(t, dsk.Add("history.interval", &interval))

	// file does not exist yet so the current values are saved
	test.DemandSuccess(t, interval.Set(10))
	test.DemandSuccess(t, dsk.Load(true))
	_, err = os.Stat(fn)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, interval.Set(25))
	test.DemandSuccess(t, name.Set("sdl"))
	test.DemandSuccess(t, scale.Set(2.5))
	test.DemandSuccess(t, dsk.Save())

	var interval2 prefs.Int
	var scale2 prefs.Float
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dsk2.Add("history.interval", &interval2))
	test.DemandSuccess(t, dsk2.Add("display.scale", &scale2))
	test.DemandSuccess(t, dsk2.Load(false))
	test.ExpectEquality(t, interval2.Get().(int), 25)
	test.ExpectEquality(t, scale2.Get().(float64), 2.5)

	// saving from the second disk must preserve the key it does not know
	test.DemandSuccess(t, dsk2.Save())
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(data), prefs.WarningBoilerPlate))
	test.ExpectSuccess(t, strings.Contains(string(data), "display.name :: sdl"))
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("history.interval::5; foo::bar")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)

	ok, v := prefs.GetCommandLinePref("history.interval")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "5")

	// value is consumed
	ok, _ = prefs.GetCommandLinePref("history.interval")
	test.ExpectEquality(t, ok, false)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestCommandLineNotSaved(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	var interval prefs.Int
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dsk.Add("history.interval", &interval))
	test.DemandSuccess(t, interval.Set(10))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("history.interval::3")
	defer prefs.PopCommandLineStack()

	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, interval.Get().(int), 3)

	test.DemandSuccess(t, dsk.Save())
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "history.interval :: 10"))
}
