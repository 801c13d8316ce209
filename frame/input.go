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

package frame

import (
	"fmt"
)

// Dimensions of the video buffer. Each entry is an indexed colour.
const (
	VideoWidth  = 336
	VideoHeight = 240
	VideoSize   = VideoWidth * VideoHeight
)

// AudioSize is the number of 8-bit samples produced every frame.
const AudioSize = 2048

// ArgStringSize is the maximum length of Input.ArgString.
const ArgStringSize = 256

// Special is a special-function code delivered to the core through the
// Input record.
type Special uint8

// List of valid special-function codes.
const (
	SpecialNone      Special = 0
	SpecialWarmstart Special = 2
	SpecialColdstart Special = 3

	// halt the core and hand control to the monitor
	SpecialMonitor Special = 7
)

func (s Special) String() string {
	switch s {
	case SpecialNone:
		return "none"
	case SpecialWarmstart:
		return "warmstart"
	case SpecialColdstart:
		return "coldstart"
	case SpecialMonitor:
		return "monitor"
	}
	return fmt.Sprintf("special(%d)", uint8(s))
}

// Joystick direction values. The value is a bit pattern of the four switches
// with a set bit meaning the switch is open.
const (
	JoyCentre    uint8 = 0x0f
	JoyUp        uint8 = 0x0e
	JoyDown      uint8 = 0x0d
	JoyLeft      uint8 = 0x0b
	JoyRight     uint8 = 0x07
	JoyUpLeft    uint8 = JoyUp & JoyLeft
	JoyUpRight   uint8 = JoyUp & JoyRight
	JoyDownLeft  uint8 = JoyDown & JoyLeft
	JoyDownRight uint8 = JoyDown & JoyRight
)

// NumPorts is the number of joystick ports.
const NumPorts = 4

// Input is the record read by the core at the start of every frame.
type Input struct {
	KeyChar uint8
	KeyCode uint8
	Special Special

	Shift   bool
	Control bool

	// console keys
	Start  bool
	Select bool
	Option bool

	Joy  [NumPorts]uint8
	Trig [NumPorts]bool

	MouseX       uint8
	MouseY       uint8
	MouseButtons uint8
	MouseMode    uint8

	// arguments for special-function codes that require them
	ArgBytes  [8]uint8
	ArgString string
}

// NewInput returns an Input with all joysticks centred.
func NewInput() Input {
	var in Input
	for i := range in.Joy {
		in.Joy[i] = JoyCentre
	}
	return in
}

func (in Input) String() string {
	return fmt.Sprintf("char=%#02x code=%#02x special=%s", in.KeyChar, in.KeyCode, in.Special)
}

// ClearKeys resets the keyboard and the special-function code.
func (in *Input) ClearKeys() {
	in.KeyChar = 0
	in.KeyCode = 0
	in.Special = SpecialNone
}

// SetArgs sets the argument fields. The string must not be longer than
// ArgStringSize bytes.
func (in *Input) SetArgs(args []uint8, s string) error {
	if len(args) > len(in.ArgBytes) {
		return fmt.Errorf("frame: too many argument bytes (%d)", len(args))
	}
	if len(s) > ArgStringSize {
		return fmt.Errorf("frame: argument string too long (%d)", len(s))
	}
	in.ArgBytes = [8]uint8{}
	copy(in.ArgBytes[:], args)
	in.ArgString = s
	return nil
}
