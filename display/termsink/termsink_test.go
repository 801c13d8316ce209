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

package termsink_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/gopher800/gopher800/display"
	"github.com/gopher800/gopher800/display/termsink"
	"github.com/gopher800/gopher800/frame"
	"github.com/gopher800/gopher800/television/colourgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSink(t *testing.T, w, h int) (*termsink.Termsink, tcell.SimulationScreen) {
	t.Helper()
	scr := tcell.NewSimulationScreen("UTF-8")
	trm, err := termsink.NewWithScreen(scr, display.Config{Title: "test"})
	require.NoError(t, err)
	scr.SetSize(w, h)
	t.Cleanup(func() { _ = trm.Close() })
	return trm, scr
}

func TestPresent(t *testing.T) {
	trm, scr := newSink(t, 42, 16)
	assert.True(t, trm.Capabilities().Has(display.CapIndexed|display.CapInput))

	tab := colourgen.NewNTSC()
	out := &frame.Output{FrameNumber: 7}
	for y := 0; y < frame.VideoHeight; y++ {
		for x := 0; x < frame.VideoWidth; x++ {
			if y < frame.VideoHeight/2 {
				out.Video[y*frame.VideoWidth+x] = 0x0f
			} else {
				out.Video[y*frame.VideoWidth+x] = 0x46
			}
		}
	}

	fr, err := display.Prepare(out, tab, trm.Capabilities())
	require.NoError(t, err)
	require.NoError(t, trm.Present(fr))

	r, g, b := tab.RGB(0x0f)
	white := tcell.NewRGBColor(int32(r), int32(g), int32(b))
	r, g, b = tab.RGB(0x46)
	red := tcell.NewRGBColor(int32(r), int32(g), int32(b))

	mainc, _, style, _ := scr.GetContent(0, 0)
	assert.Equal(t, '▀', mainc)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, white, fg)
	assert.Equal(t, white, bg)

	_, _, style, _ = scr.GetContent(0, 14)
	fg, _, _ = style.Decompose()
	assert.Equal(t, red, fg)

	// status line
	var status []rune
	for x := 0; x < 12; x++ {
		c, _, _, _ := scr.GetContent(x, 15)
		status = append(status, c)
	}
	assert.Equal(t, "test frame 7", string(status))
}

func TestPresentWithoutIndexed(t *testing.T) {
	trm, _ := newSink(t, 10, 10)
	assert.Error(t, trm.Present(display.Frame{}))
}

func TestPoll(t *testing.T) {
	trm, scr := newSink(t, 20, 10)

	scr.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	scr.InjectKey(tcell.KeyF4, 0, tcell.ModNone)
	scr.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	scr.InjectKey(tcell.KeyF5, 0, tcell.ModShift)

	ev := trm.Poll()
	require.Len(t, ev, 4)
	assert.Equal(t, display.Event{Kind: display.EventChar, Char: 'a'}, ev[0])
	assert.Equal(t, display.Event{Kind: display.EventConsole, Console: display.ConsoleStart, Pressed: true}, ev[1])
	assert.Equal(t, display.EventJoystick, ev[2].Kind)
	assert.Equal(t, frame.JoyUp, ev[2].Dir)
	assert.Equal(t, frame.SpecialColdstart, ev[3].Special)

	// console key and joystick are released on the next poll
	ev = trm.Poll()
	require.Len(t, ev, 2)
	assert.Equal(t, display.Event{Kind: display.EventConsole, Console: display.ConsoleStart, Pressed: false}, ev[0])
	assert.Equal(t, frame.JoyCentre, ev[1].Dir)

	assert.Empty(t, trm.Poll())

	scr.InjectKey(tcell.KeyF8, 0, tcell.ModNone)
	scr.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	ev = trm.Poll()
	require.Len(t, ev, 2)
	assert.Equal(t, display.EventMonitor, ev[0].Kind)
	assert.Equal(t, display.EventQuit, ev[1].Kind)
}
