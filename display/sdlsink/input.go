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

//go:build sdl

package sdlsink

import (
	"strings"

	"github.com/gopher800/gopher800/display"
	"github.com/gopher800/gopher800/frame"
	"github.com/veandco/go-sdl2/sdl"
)

// Input translates SDL events into display events. Joystick zero is
// operated by the cursor keys and either control key.
type Input struct {
	joy *display.Joystick
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput() *Input {
	return &Input{joy: display.NewJoystick(0)}
}

var sticks = map[sdl.Keycode]uint8{
	sdl.K_UP:    display.StickUp,
	sdl.K_DOWN:  display.StickDown,
	sdl.K_LEFT:  display.StickLeft,
	sdl.K_RIGHT: display.StickRight,
}

var console = map[sdl.Keycode]display.Console{
	sdl.K_F2: display.ConsoleOption,
	sdl.K_F3: display.ConsoleSelect,
	sdl.K_F4: display.ConsoleStart,
}

// Translate a single SDL event. Events that have no meaning for the
// emulation are dropped.
func (inp *Input) Translate(ev sdl.Event) []display.Event {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return []display.Event{{Kind: display.EventQuit}}

	case *sdl.TextInputEvent:
		var out []display.Event
		for _, r := range strings.TrimRight(string(ev.Text[:]), "\x00") {
			if r > 0 && r < 0x80 {
				out = append(out, display.Event{Kind: display.EventChar, Char: uint8(r)})
			}
		}
		return out

	case *sdl.KeyboardEvent:
		sym := ev.Keysym.Sym
		down := ev.Type == sdl.KEYDOWN

		if s, ok := sticks[sym]; ok {
			if down {
				return []display.Event{inp.joy.Press(s)}
			}
			return []display.Event{inp.joy.Release(s)}
		}

		if c, ok := console[sym]; ok {
			return []display.Event{{Kind: display.EventConsole, Console: c, Pressed: down}}
		}

		switch sym {
		case sdl.K_LCTRL, sdl.K_RCTRL:
			return []display.Event{inp.joy.Fire(down)}
		}

		if !down || ev.Repeat != 0 {
			return nil
		}

		switch sym {
		case sdl.K_ESCAPE:
			return []display.Event{{Kind: display.EventQuit}}
		case sdl.K_F8:
			return []display.Event{{Kind: display.EventMonitor}}
		case sdl.K_F5:
			if sdl.GetModState()&sdl.KMOD_SHIFT != 0 {
				return []display.Event{{Kind: display.EventSpecial, Special: frame.SpecialColdstart}}
			}
			return []display.Event{{Kind: display.EventSpecial, Special: frame.SpecialWarmstart}}
		case sdl.K_RETURN:
			return []display.Event{{Kind: display.EventChar, Char: '\n'}}
		}
	}

	return nil
}
