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
	"github.com/gopher800/gopher800/govern"
	"github.com/gopher800/gopher800/history"
	"github.com/gopher800/gopher800/logger"
)

// the session has started and has not terminated
func (d *Driver) active() error {
	if d.state == govern.Uninitialised || d.state == govern.Terminated {
		return curated.Errorf("driver: %v", curated.Errorf(NotRunning, d.state))
	}
	return nil
}

// LoadDisk mounts the disk image in the numbered drive. Drives are numbered
// from one.
func (d *Driver) LoadDisk(drive int, path string) error {
	if err := d.active(); err != nil {
		return err
	}
	err := d.core.MountDisk(drive, path, false)
	if err != nil {
		return curated.Errorf("driver: %v", err)
	}
	return nil
}

// RebootWithFile reboots the machine with the file. History is kept.
func (d *Driver) RebootWithFile(path string) error {
	if err := d.active(); err != nil {
		return err
	}
	err := d.core.RebootWithFile(path)
	if err != nil {
		return curated.Errorf("driver: %v", err)
	}
	return nil
}

// Restore the emulation to the snapshot recorded for the frame. Every entry
// in the history after the frame is forgotten, as are all pending frame
// events. A negative frame number is ignored. The session must be running.
func (d *Driver) Restore(frameNum int) error {
	if d.state != govern.Running {
		return curated.Errorf("driver: %v", curated.Errorf(NotRunning, d.state))
	}
	if frameNum < 0 {
		return nil
	}

	snapshot := d.History.Get(frameNum)
	if snapshot == nil {
		return curated.Errorf("driver: %v", curated.Errorf(history.NotFound, fmt.Sprintf("no snapshot for frame %d", frameNum)))
	}

	err := d.exchange.Restore(snapshot)
	if err != nil {
		return curated.Errorf("driver: %v", err)
	}

	d.History.TruncateAfter(frameNum)
	d.events = d.events[:0]
	d.frameCount = frameNum + 1

	err = d.decode(d.exchange.Output())
	if err != nil {
		_ = d.Close()
		return curated.Errorf("driver: %v", err)
	}

	logger.Logf(logger.Allow, "driver", "restored frame %d. %d entries remain in history", frameNum, d.History.Len())

	return nil
}

// PreviousHistory returns the frame number of the most recent snapshot before
// the cursor.
func (d *Driver) PreviousHistory(cursor int) (int, error) {
	f, err := d.History.FindPreviousNonEmpty(cursor)
	if err != nil {
		return -1, curated.Errorf("driver: %v", err)
	}
	return f, nil
}

// NextHistory returns the frame number of the earliest snapshot after the
// cursor.
func (d *Driver) NextHistory(cursor int) (int, error) {
	f, err := d.History.FindNextNonEmpty(cursor + 1)
	if err != nil {
		return -1, curated.Errorf("driver: %v", err)
	}
	return f, nil
}

// CPU is a copy of the CPU registers.
type CPU struct {
	A  uint8
	X  uint8
	Y  uint8
	S  uint8
	P  uint8
	PC uint16
}

func (c CPU) String() string {
	return fmt.Sprintf("A=%02x X=%02x Y=%02x SP=%02x FLAGS=%02x PC=%04x", c.A, c.X, c.Y, c.S, c.P, c.PC)
}

// PowerOn is the state of the CPU registers immediately after power on.
var PowerOn = CPU{A: 0xaa, P: 0x02, PC: 0xfffc}

// CPU returns the CPU registers recorded in the live output. Before the state
// blob has been decoded for the first time the power on values are returned.
func (d *Driver) CPU() CPU {
	if d.layout == nil || d.exchange == nil {
		return PowerOn
	}

	blob := d.exchange.Output().State

	var c CPU
	var err error
	if c.A, err = d.layout.Byte(blob, "cpu.A"); err != nil {
		return PowerOn
	}
	if c.X, err = d.layout.Byte(blob, "cpu.X"); err != nil {
		return PowerOn
	}
	if c.Y, err = d.layout.Byte(blob, "cpu.Y"); err != nil {
		return PowerOn
	}
	if c.S, err = d.layout.Byte(blob, "cpu.S"); err != nil {
		return PowerOn
	}
	if c.P, err = d.layout.Byte(blob, "cpu.P"); err != nil {
		return PowerOn
	}
	if c.PC, err = d.layout.Word(blob, "cpu.PC"); err != nil {
		return PowerOn
	}

	return c
}

// RAM returns the 64K of main memory recorded in the live output. The
// returned slice must not be modified.
func (d *Driver) RAM() ([]byte, error) {
	if d.layout == nil || d.exchange == nil {
		return nil, curated.Errorf("driver: state has not been decoded")
	}
	ram, err := d.layout.Slice(d.exchange.Output().State, "ram.ram")
	if err != nil {
		return nil, curated.Errorf("driver: %v", err)
	}
	return ram, nil
}

// ColourIndexedScreen returns the video buffer for the frame. A negative frame
// number returns the live video buffer. The returned slice must not be
// modified.
func (d *Driver) ColourIndexedScreen(frameNum int) ([]uint8, error) {
	if frameNum < 0 {
		if d.exchange == nil {
			return nil, curated.Errorf("driver: %v", curated.Errorf(NotRunning, d.state))
		}
		return d.exchange.Output().Video[:], nil
	}

	snapshot := d.History.Get(frameNum)
	if snapshot == nil {
		return nil, curated.Errorf("driver: %v", curated.Errorf(history.NotFound, fmt.Sprintf("no snapshot for frame %d", frameNum)))
	}
	return snapshot.Video[:], nil
}
