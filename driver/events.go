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

	"github.com/gopher800/gopher800/logger"
)

// FrameEvent is a callback that is deferred until a frame count is reached.
type FrameEvent struct {
	Trigger  int
	Label    string
	Callback func()
}

func (ev FrameEvent) String() string {
	return fmt.Sprintf("%s @ %d", ev.Label, ev.Trigger)
}

// Schedule a callback to run at the end of the tick that brings the frame
// count to the current count plus delay. A delay of zero or one runs the
// callback at the end of the next tick.
func (d *Driver) Schedule(delay int, label string, callback func()) {
	d.events = append(d.events, FrameEvent{
		Trigger:  d.frameCount + delay,
		Label:    label,
		Callback: callback,
	})
}

// PendingEvents returns a copy of the events that have yet to fire.
func (d *Driver) PendingEvents() []FrameEvent {
	p := make([]FrameEvent, len(d.events))
	copy(p, d.events)
	return p
}

// fire all events that are due, in insertion order. events scheduled by a
// callback are kept for a later tick
func (d *Driver) processEvents() {
	var due []FrameEvent
	waiting := d.events[:0:0]
	for _, ev := range d.events {
		if d.frameCount >= ev.Trigger {
			due = append(due, ev)
		} else {
			waiting = append(waiting, ev)
		}
	}
	d.events = waiting

	for _, ev := range due {
		logger.Logf(logger.Verbose, "driver", "frame event: %s", ev)
		ev.Callback()
	}
}
