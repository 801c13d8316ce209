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

package display

import (
	"fmt"

	"github.com/gopher800/gopher800/frame"
)

// EventKind identifies the type of an Event.
type EventKind int

// List of valid EventKind values.
const (
	// the user has asked to end the session
	EventQuit EventKind = iota

	// the user has asked for the debugger
	EventMonitor

	EventChar
	EventSpecial
	EventJoystick
	EventConsole
)

// Console identifies one of the console keys.
type Console int

// List of valid Console values.
const (
	ConsoleStart Console = iota
	ConsoleSelect
	ConsoleOption
)

// Event is a single input event produced by an InputSource.
type Event struct {
	Kind EventKind

	// EventChar
	Char uint8

	// EventSpecial
	Special frame.Special

	// EventJoystick
	Port int
	Dir  uint8
	Trig bool

	// EventConsole
	Console Console
	Pressed bool
}

func (ev Event) String() string {
	switch ev.Kind {
	case EventQuit:
		return "quit"
	case EventMonitor:
		return "monitor"
	case EventChar:
		return fmt.Sprintf("char %q", ev.Char)
	case EventSpecial:
		return fmt.Sprintf("special %s", ev.Special)
	case EventJoystick:
		return fmt.Sprintf("joystick %d: %02x trig=%v", ev.Port, ev.Dir, ev.Trig)
	case EventConsole:
		return fmt.Sprintf("console %d: %v", ev.Console, ev.Pressed)
	}
	return "unknown event"
}

// Target is the input surface that events are applied to. It is implemented
// by the frame driver.
type Target interface {
	SendChar(c uint8) error
	SendSpecialKey(s frame.Special) error
	SetJoystick(port int, dir uint8, trig bool) error
	SetStart(pressed bool) error
	SetSelect(pressed bool) error
	SetOption(pressed bool) error
}

// Apply the event to the target. Quit and monitor events are not input and
// are left for the caller to handle.
func (ev Event) Apply(t Target) error {
	switch ev.Kind {
	case EventChar:
		return t.SendChar(ev.Char)
	case EventSpecial:
		return t.SendSpecialKey(ev.Special)
	case EventJoystick:
		return t.SetJoystick(ev.Port, ev.Dir, ev.Trig)
	case EventConsole:
		switch ev.Console {
		case ConsoleStart:
			return t.SetStart(ev.Pressed)
		case ConsoleSelect:
			return t.SetSelect(ev.Pressed)
		case ConsoleOption:
			return t.SetOption(ev.Pressed)
		}
	}
	return nil
}

// Joystick bits. A joystick direction is active low so a set bit in the
// direction value means the switch is open.
const (
	StickUp    uint8 = 0x01
	StickDown  uint8 = 0x02
	StickLeft  uint8 = 0x04
	StickRight uint8 = 0x08
)

// Joystick accumulates key presses into a joystick direction value for
// sinks whose input is a keyboard.
type Joystick struct {
	Port int
	dir  uint8
	trig bool
}

// NewJoystick is the preferred method of initialisation for the Joystick
// type.
func NewJoystick(port int) *Joystick {
	return &Joystick{Port: port, dir: frame.JoyCentre}
}

// Press closes the switch for the direction.
func (j *Joystick) Press(stick uint8) Event {
	j.dir &^= stick
	return j.event()
}

// Release opens the switch for the direction.
func (j *Joystick) Release(stick uint8) Event {
	j.dir |= stick
	return j.event()
}

// Fire sets the state of the trigger.
func (j *Joystick) Fire(pressed bool) Event {
	j.trig = pressed
	return j.event()
}

// Centre releases every direction and the trigger.
func (j *Joystick) Centre() Event {
	j.dir = frame.JoyCentre
	j.trig = false
	return j.event()
}

func (j *Joystick) event() Event {
	return Event{Kind: EventJoystick, Port: j.Port, Dir: j.dir, Trig: j.trig}
}
