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

package driver

import (
	"fmt"

	"github.com/gopher800/gopher800/curated"
	"github.com/gopher800/gopher800/frame"
)

// the number of ticks a warm or cold start key is held for
const specialKeyHold = 2

// Input returns the staged input. Changes to the returned Input are seen by
// the next tick. Returns nil if the session has not started.
func (d *Driver) Input() *frame.Input {
	if d.exchange == nil {
		return nil
	}
	return d.exchange.Input()
}

func (d *Driver) input() (*frame.Input, error) {
	if d.exchange == nil {
		return nil, curated.Errorf("driver: %v", curated.Errorf(NotRunning, d.state))
	}
	return d.exchange.Input(), nil
}

// SendChar stages an ASCII character.
func (d *Driver) SendChar(c uint8) error {
	in, err := d.input()
	if err != nil {
		return err
	}
	in.KeyChar = c
	in.KeyCode = 0
	in.Special = frame.SpecialNone
	return nil
}

// SendKeycode stages a raw keyboard code.
func (d *Driver) SendKeycode(code uint8) error {
	in, err := d.input()
	if err != nil {
		return err
	}
	in.KeyChar = 0
	in.KeyCode = code
	in.Special = frame.SpecialNone
	return nil
}

// SendSpecialKey stages a special-function code. Warm and cold starts are
// cleared automatically after two ticks.
func (d *Driver) SendSpecialKey(s frame.Special) error {
	in, err := d.input()
	if err != nil {
		return err
	}
	in.KeyChar = 0
	in.KeyCode = 0
	in.Special = s
	if s == frame.SpecialWarmstart || s == frame.SpecialColdstart {
		d.Schedule(specialKeyHold, fmt.Sprintf("clear %s", s), func() {
			_ = d.ClearKeys()
		})
	}
	return nil
}

// ClearKeys clears the keyboard and the special-function code.
func (d *Driver) ClearKeys() error {
	in, err := d.input()
	if err != nil {
		return err
	}
	in.ClearKeys()
	return nil
}

// SetOption sets the state of the OPTION console key.
func (d *Driver) SetOption(pressed bool) error {
	in, err := d.input()
	if err != nil {
		return err
	}
	in.Option = pressed
	return nil
}

// SetSelect sets the state of the SELECT console key.
func (d *Driver) SetSelect(pressed bool) error {
	in, err := d.input()
	if err != nil {
		return err
	}
	in.Select = pressed
	return nil
}

// SetStart sets the state of the START console key.
func (d *Driver) SetStart(pressed bool) error {
	in, err := d.input()
	if err != nil {
		return err
	}
	in.Start = pressed
	return nil
}

// SetJoystick sets the direction and trigger of the joystick in the port.
// Ports are numbered from zero.
func (d *Driver) SetJoystick(port int, dir uint8, trig bool) error {
	in, err := d.input()
	if err != nil {
		return err
	}
	if port < 0 || port >= frame.NumPorts {
		return curated.Errorf("driver: illegal joystick port (%d)", port)
	}
	in.Joy[port] = dir & 0x0f
	in.Trig[port] = trig
	return nil
}

// SetMouse sets the position and buttons of the mouse.
func (d *Driver) SetMouse(x, y uint8, buttons uint8) error {
	in, err := d.input()
	if err != nil {
		return err
	}
	in.MouseX = x
	in.MouseY = y
	in.MouseButtons = buttons
	return nil
}

// SetArgs sets the argument fields of the input.
func (d *Driver) SetArgs(args []uint8, s string) error {
	in, err := d.input()
	if err != nil {
		return err
	}
	err = in.SetArgs(args, s)
	if err != nil {
		return curated.Errorf("driver: %v", err)
	}
	return nil
}
