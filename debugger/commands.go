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

package debugger

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gopher800/gopher800/curated"
	"github.com/gopher800/gopher800/disassembly"
	"github.com/gopher800/gopher800/statelayout"
)

// maximum number of instructions executed by a single STEP command
const maxSteps = 65536

// MissingArgument is printed when a command requires more arguments.
const MissingArgument = "missing argument: %v"

// ParseNumber accepts decimal numbers and hexadecimal numbers with a $, 0x or
// 0X prefix. It is also used for addresses given on the command line.
func ParseNumber(s string) (int, error) {
	base := 10
	switch {
	case strings.HasPrefix(s, "$"):
		s = s[1:]
		base = 16
	case strings.HasPrefix(strings.ToLower(s), "0x"):
		s = s[2:]
		base = 16
	}
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, curated.Errorf("debugger: not a number (%s)", s)
	}
	return int(v), nil
}

func (dbg *Debugger) step(args []string) error {
	n := 1
	if len(args) > 0 {
		v, err := ParseNumber(args[0])
		if err != nil {
			return err
		}
		n = v
	}
	if n < 1 || n > maxSteps {
		return curated.Errorf("debugger: step count out of range (%d)", n)
	}

	for i := 0; i < n; i++ {
		err := dbg.mon.SingleStep()
		if err != nil {
			return err
		}
	}

	dbg.printLine(dbg.mon.Summary())

	ram, err := dbg.drv.RAM()
	if err != nil {
		return err
	}
	dbg.printLine(disassembly.Disassemble(ram, dbg.mon.Registers().PC).String())

	return nil
}

func (dbg *Debugger) peek(args []string) error {
	if len(args) < 1 {
		return curated.Errorf(MissingArgument, "address")
	}
	addr, err := ParseNumber(args[0])
	if err != nil {
		return err
	}
	count := 1
	if len(args) > 1 {
		count, err = ParseNumber(args[1])
		if err != nil {
			return err
		}
	}

	ram, err := dbg.drv.RAM()
	if err != nil {
		return err
	}
	if addr >= len(ram) {
		return curated.Errorf("debugger: address out of range ($%x)", addr)
	}
	if addr+count > len(ram) {
		count = len(ram) - addr
	}

	perRow := dbg.bytesPerRow()
	for row := addr; row < addr+count; row += perRow {
		var s strings.Builder
		s.WriteString(fmt.Sprintf("%04x:", row))
		for i := row; i < row+perRow && i < addr+count; i++ {
			s.WriteString(fmt.Sprintf(" %02x", ram[i]))
		}
		dbg.printLine(s.String())
	}

	return nil
}

// the number of bytes that fit on one line of the terminal, rounded down to a
// multiple of eight. sixteen if there is no terminal
func (dbg *Debugger) bytesPerRow() int {
	if dbg.term == nil {
		return 16
	}
	cols := int(dbg.term.Geometry().Cols)

	// each byte takes three columns after the five column address
	n := (cols - 5) / 3 / 8 * 8
	if n < 8 {
		return 8
	}
	return n
}

func (dbg *Debugger) field(args []string) error {
	if len(args) < 1 {
		return curated.Errorf(MissingArgument, "name")
	}
	name := args[0]

	l := dbg.drv.Layout()
	if l == nil {
		return curated.Errorf("debugger: state has not been decoded")
	}
	blob := dbg.drv.Output().State

	size, ok := l.LeafSize(name)
	if !ok {
		return curated.Errorf(statelayout.NameNotFound, name)
	}

	switch size {
	case 1:
		v, err := l.Byte(blob, name)
		if err != nil {
			return err
		}
		dbg.printLine(fmt.Sprintf("%s = $%02x (%d)", name, v, v))
	case 2:
		v, err := l.Word(blob, name)
		if err != nil {
			return err
		}
		dbg.printLine(fmt.Sprintf("%s = $%04x (%d)", name, v, v))
	case 4:
		v, err := l.Long(blob, name)
		if err != nil {
			return err
		}
		dbg.printLine(fmt.Sprintf("%s = $%08x (%d)", name, v, v))
	default:
		b, err := l.Slice(blob, name)
		if err != nil {
			return err
		}
		n := len(b)
		if n > 16 {
			n = 16
		}
		dbg.printLine(fmt.Sprintf("%s = % x (%d bytes)", name, b[:n], len(b)))
	}

	return nil
}

func (dbg *Debugger) disasm(args []string) error {
	addr := int(dbg.mon.Registers().PC)
	count := 8

	var err error
	if len(args) > 0 {
		addr, err = ParseNumber(args[0])
		if err != nil {
			return err
		}
	}
	if len(args) > 1 {
		count, err = ParseNumber(args[1])
		if err != nil {
			return err
		}
	}
	if addr > 0xffff {
		return curated.Errorf("debugger: address out of range ($%x)", addr)
	}

	ram, err := dbg.drv.RAM()
	if err != nil {
		return err
	}

	for _, e := range disassembly.Range(ram, uint16(addr), count) {
		dbg.printLine(e.String())
	}

	return nil
}

func (dbg *Debugger) segments() {
	for _, seg := range dbg.drv.Segments() {
		dbg.printLine(fmt.Sprintf("%s%s", strings.Repeat("  ", seg.Depth), seg))
	}
}

func (dbg *Debugger) history() {
	h := dbg.drv.History
	r := h.Retained()
	dbg.printLine(fmt.Sprintf("%d entries, %d snapshots, latest %d, interval %d", h.Len(), len(r), h.Latest(), h.Interval()))

	if len(r) == 0 {
		return
	}
	if len(r) > 12 {
		dbg.printLine(fmt.Sprintf("snapshots: %v ... %v", r[:6], r[len(r)-6:]))
		return
	}
	dbg.printLine(fmt.Sprintf("snapshots: %v", r))
}

func (dbg *Debugger) rewind(args []string) error {
	if len(args) < 1 {
		return curated.Errorf(MissingArgument, "frame")
	}
	f, err := ParseNumber(args[0])
	if err != nil {
		return err
	}

	// nearest snapshot at or before the requested frame
	target, err := dbg.drv.PreviousHistory(f + 1)
	if err != nil {
		return err
	}

	// restoration happens with the emulation running. the monitor is entered
	// again afterwards
	err = dbg.mon.Resume()
	if err != nil {
		return err
	}
	err = dbg.drv.Restore(target)
	if err != nil {
		return err
	}
	err = dbg.mon.Enter()
	if err != nil {
		return err
	}

	dbg.printLine(fmt.Sprintf("rewound to frame %d", target))
	dbg.printLine(dbg.mon.Summary())

	return nil
}

func (dbg *Debugger) memviz(args []string) (rerr error) {
	if len(args) < 1 {
		return curated.Errorf(MissingArgument, "file")
	}

	f, err := os.Create(args[0])
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("debugger: %v", err)
		}
	}()

	dbg.drv.History.Visualise(f)
	dbg.printLine(fmt.Sprintf("history written to %s", args[0]))

	return nil
}
