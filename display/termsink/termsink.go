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

// Package termsink is a display sink that renders frames in a terminal with
// unicode half-block characters. Each character cell shows two rows of
// the frame. The frame is sampled to fit the size of the terminal.
//
// The sink also produces input. Printable keys are sent to the emulated
// keyboard, the cursor keys and the space bar operate joystick zero, F2 to
// F4 are the console keys and F5 is a warm start (shift-F5 a cold start).
// F8 requests the debugger and escape or ctrl-c ends the session.
//
// It is registered with the display package under the name "terminal".
package termsink

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/gopher800/gopher800/curated"
	"github.com/gopher800/gopher800/display"
	"github.com/gopher800/gopher800/frame"
)

func init() {
	display.Register("terminal", func(cfg display.Config) (display.Sink, error) {
		scr, err := tcell.NewScreen()
		if err != nil {
			return nil, curated.Errorf("termsink: %v", err)
		}
		return NewWithScreen(scr, cfg)
	})
}

const halfBlock = '▀'

// Termsink implements the display.Sink and display.InputSource interfaces.
type Termsink struct {
	screen tcell.Screen
	title  string

	joy *display.Joystick

	// terminals do not report key releases. keys that need a release are
	// released on the next call to Poll()
	pendingRelease []display.Event
	stickHeld      bool
}

// NewWithScreen creates a Termsink using the supplied screen. The screen is
// initialised by the function.
func NewWithScreen(scr tcell.Screen, cfg display.Config) (*Termsink, error) {
	err := scr.Init()
	if err != nil {
		return nil, curated.Errorf("termsink: %v", err)
	}

	trm := &Termsink{
		screen: scr,
		title:  cfg.Title,
		joy:    display.NewJoystick(0),
	}

	trm.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	trm.screen.Clear()

	return trm, nil
}

// Capabilities implements the display.Sink interface.
func (trm *Termsink) Capabilities() display.Capability {
	return display.CapIndexed | display.CapInput
}

// Present implements the display.Sink interface.
func (trm *Termsink) Present(fr display.Frame) error {
	if fr.Indexed == nil || fr.Table == nil {
		return curated.Errorf("termsink: frame %d has no indexed video", fr.Number)
	}

	cols, rows := trm.screen.Size()

	// bottom row is the status line
	rows--
	if cols < 1 || rows < 1 {
		return nil
	}

	stepX := (fr.Width + cols - 1) / cols
	stepY := (fr.Height + rows*2 - 1) / (rows * 2)

	for cy := 0; cy < rows; cy++ {
		top := cy * 2 * stepY
		bottom := top + stepY
		if top >= fr.Height {
			break
		}
		for cx := 0; cx < cols; cx++ {
			x := cx * stepX
			if x >= fr.Width {
				break
			}

			fg := trm.colour(fr, fr.Indexed[top*fr.Width+x])
			bg := tcell.ColorBlack
			if bottom < fr.Height {
				bg = trm.colour(fr, fr.Indexed[bottom*fr.Width+x])
			}

			trm.screen.SetContent(cx, cy, halfBlock, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}

	trm.status(rows, cols, fmt.Sprintf("%s frame %d", trm.title, fr.Number))
	trm.screen.Show()

	return nil
}

func (trm *Termsink) colour(fr display.Frame, idx uint8) tcell.Color {
	r, g, b := fr.Table.RGB(idx)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (trm *Termsink) status(row int, cols int, s string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	x := 0
	for _, r := range s {
		if x >= cols {
			break
		}
		trm.screen.SetContent(x, row, r, nil, style)
		x++
	}
	for ; x < cols; x++ {
		trm.screen.SetContent(x, row, ' ', nil, style)
	}
}

// Poll implements the display.InputSource interface.
func (trm *Termsink) Poll() []display.Event {
	events := trm.pendingRelease
	trm.pendingRelease = nil

	stick := false

	for trm.screen.HasPendingEvent() {
		switch ev := trm.screen.PollEvent().(type) {
		case *tcell.EventKey:
			e, ok := trm.key(ev)
			if !ok {
				continue
			}
			if e.Kind == display.EventJoystick {
				stick = true
			}
			events = append(events, e)
		case *tcell.EventResize:
			trm.screen.Sync()
		}
	}

	if trm.stickHeld && !stick {
		events = append(events, trm.joy.Centre())
	}
	trm.stickHeld = stick

	return events
}

func (trm *Termsink) key(ev *tcell.EventKey) (display.Event, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return display.Event{Kind: display.EventQuit}, true
	case tcell.KeyF8:
		return display.Event{Kind: display.EventMonitor}, true
	case tcell.KeyF5:
		if ev.Modifiers()&tcell.ModShift == tcell.ModShift {
			return display.Event{Kind: display.EventSpecial, Special: frame.SpecialColdstart}, true
		}
		return display.Event{Kind: display.EventSpecial, Special: frame.SpecialWarmstart}, true
	case tcell.KeyF2:
		return trm.console(display.ConsoleOption), true
	case tcell.KeyF3:
		return trm.console(display.ConsoleSelect), true
	case tcell.KeyF4:
		return trm.console(display.ConsoleStart), true
	case tcell.KeyUp:
		return trm.joy.Press(display.StickUp), true
	case tcell.KeyDown:
		return trm.joy.Press(display.StickDown), true
	case tcell.KeyLeft:
		return trm.joy.Press(display.StickLeft), true
	case tcell.KeyRight:
		return trm.joy.Press(display.StickRight), true
	case tcell.KeyEnter:
		return display.Event{Kind: display.EventChar, Char: '\n'}, true
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			return trm.joy.Fire(true), true
		}
		if r > 0 && r < 0x80 {
			return display.Event{Kind: display.EventChar, Char: uint8(r)}, true
		}
	}
	return display.Event{}, false
}

func (trm *Termsink) console(c display.Console) display.Event {
	trm.pendingRelease = append(trm.pendingRelease, display.Event{Kind: display.EventConsole, Console: c, Pressed: false})
	return display.Event{Kind: display.EventConsole, Console: c, Pressed: true}
}

// Close implements the display.Sink interface.
func (trm *Termsink) Close() error {
	trm.screen.Fini()
	return nil
}
