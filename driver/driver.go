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

	"github.com/gopher800/gopher800/core"
	"github.com/gopher800/gopher800/curated"
	"github.com/gopher800/gopher800/frame"
	"github.com/gopher800/gopher800/govern"
	"github.com/gopher800/gopher800/history"
	"github.com/gopher800/gopher800/logger"
	"github.com/gopher800/gopher800/statelayout"
)

// Sentinal error patterns.
const (
	ConsistencyWarning = "history out of sync: has %d entries, expecting %d"
	NotRunning         = "not running: %v"
	IllegalTransition  = "illegal state transition: %v to %v"
)

// Driver advances the emulation and keeps the session state.
type Driver struct {
	core     core.Core
	exchange *frame.Exchange

	schema *statelayout.Schema
	layout *statelayout.Layout

	// history of output snapshots. the store should not be changed by any
	// other package while the session is running
	History *history.Store

	state govern.State

	// the number of ticks since the session started or since the most
	// recent restore
	frameCount int

	// deferred callbacks in insertion order
	events []FrameEvent
}

// NewDriver is the preferred method of initialisation for the Driver type.
func NewDriver(c core.Core, schema *statelayout.Schema, hist *history.Store) *Driver {
	return &Driver{
		core:    c,
		schema:  schema,
		History: hist,
		state:   govern.Uninitialised,
	}
}

func (d *Driver) String() string {
	return fmt.Sprintf("%s: tick %d", d.state, d.frameCount)
}

// Start the session. The option tokens are passed unmodified to the core.
func (d *Driver) Start(args []string) error {
	if d.state != govern.Uninitialised {
		return curated.Errorf("driver: %v", curated.Errorf(IllegalTransition, d.state, govern.Running))
	}

	out, err := d.core.Start(args)
	if err != nil {
		return curated.Errorf("driver: %v", err)
	}

	d.exchange = frame.NewExchange(d.core, out)
	d.History.Reset()
	d.state = govern.Running

	logger.Logf(logger.Allow, "driver", "session started with %v", args)

	return nil
}

// Close the session and release the core. Closing a closed session is not
// an error.
func (d *Driver) Close() error {
	if d.state == govern.Terminated {
		return nil
	}
	d.state = govern.Terminated
	d.events = nil

	err := d.core.Close()
	if err != nil {
		return curated.Errorf("driver: %v", err)
	}
	return nil
}

// State returns the current session state.
func (d *Driver) State() govern.State {
	return d.state
}

// Transition moves the session to the new state. Only the transitions
// allowed by govern.ValidTransition() are accepted.
func (d *Driver) Transition(to govern.State) error {
	if !govern.ValidTransition(d.state, to) {
		return curated.Errorf("driver: %v", curated.Errorf(IllegalTransition, d.state, to))
	}
	if to == govern.Terminated {
		return d.Close()
	}
	d.state = to
	return nil
}

// Tick advances the emulation by exactly one frame.
//
// The staged input is delivered to the core, the output is decoded, due frame
// events are fired and the output is recorded in the history.
func (d *Driver) Tick() error {
	if d.state != govern.Running {
		return curated.Errorf("driver: %v", curated.Errorf(NotRunning, d.state))
	}

	out, err := d.exchange.Step()
	if err != nil {
		return curated.Errorf("driver: %v", err)
	}

	d.frameCount++

	err = d.decode(out)
	if err != nil {
		_ = d.Close()
		return curated.Errorf("driver: %v", err)
	}

	d.processEvents()
	d.saveHistory(out)

	return nil
}

// decode the state blob. the layout is created on the first call and
// verified on every call after that
func (d *Driver) decode(out *frame.Output) error {
	if d.layout == nil {
		l, err := statelayout.Decode(d.schema, out.State)
		if err != nil {
			return err
		}
		d.layout = l
		logger.Logf(logger.Allow, "driver", "state layout: %s: %d bytes, %d names", l.Schema, l.Size, len(l.Names))
		return nil
	}
	return d.layout.Verify(out.State)
}

func (d *Driver) saveHistory(out *frame.Output) {
	fn := int(out.FrameNumber)
	if d.History.Len() != fn {
		logger.Log(logger.Allow, "driver", curated.Errorf(ConsistencyWarning, d.History.Len(), fn))
	}
	d.History.Record(fn, out)
}

// Refresh asks the core for its current state and decodes it. Used when the
// core has changed state outside of a tick, for example in the monitor.
func (d *Driver) Refresh() error {
	if d.exchange == nil {
		return curated.Errorf("driver: %v", curated.Errorf(NotRunning, d.state))
	}
	err := d.exchange.Refresh()
	if err != nil {
		return curated.Errorf("driver: %v", err)
	}
	err = d.decode(d.exchange.Output())
	if err != nil {
		_ = d.Close()
		return curated.Errorf("driver: %v", err)
	}
	return nil
}

// Core returns the emulation core.
func (d *Driver) Core() core.Core {
	return d.core
}

// Exchange returns the frame exchange. Returns nil if the session has not
// started.
func (d *Driver) Exchange() *frame.Exchange {
	return d.exchange
}

// Output returns the live output. Returns nil if the session has not
// started.
func (d *Driver) Output() *frame.Output {
	if d.exchange == nil {
		return nil
	}
	return d.exchange.Output()
}

// FrameCount returns the number of ticks since the session started or since
// the most recent restore.
func (d *Driver) FrameCount() int {
	return d.frameCount
}

// FrameNumber returns the frame number of the live output.
func (d *Driver) FrameNumber() int {
	if d.exchange == nil {
		return 0
	}
	return int(d.exchange.Output().FrameNumber)
}

// Layout returns the layout of the state blob. Returns nil before the first
// tick.
func (d *Driver) Layout() *statelayout.Layout {
	return d.layout
}

// Segments returns the segments of the raw output record: the video and
// audio buffers followed by the segments of the state blob.
func (d *Driver) Segments() []statelayout.Segment {
	var out frame.Output
	segs := out.Segments()
	if d.layout == nil {
		return segs
	}
	for _, s := range d.layout.Segments {
		s.Start += frame.StateOffset
		s.End += frame.StateOffset
		segs = append(segs, s)
	}
	return segs
}
