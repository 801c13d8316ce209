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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gopher800/gopher800/curated"
	"github.com/gopher800/gopher800/debugger/easyterm"
	"github.com/gopher800/gopher800/driver"
	"github.com/gopher800/gopher800/govern"
	"github.com/gopher800/gopher800/logger"
	"github.com/gopher800/gopher800/monitor"
)

// Debugger is the line oriented interface to the monitor.
type Debugger struct {
	drv *driver.Driver
	mon *monitor.Controller

	input  *bufio.Scanner
	output io.Writer

	// the terminal is put into canonical mode while the debugger is reading
	// commands. can be nil
	term *easyterm.Terminal

	// echo commands to the output after they have been read
	Echo bool

	// the prompt is printed before every command is read. it can be empty
	Prompt string
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type.
func NewDebugger(drv *driver.Driver, mon *monitor.Controller, input io.Reader, output io.Writer) *Debugger {
	return &Debugger{
		drv:    drv,
		mon:    mon,
		input:  bufio.NewScanner(input),
		output: output,
		Prompt: "> ",
	}
}

// SetTerminal sets the terminal whose mode is changed while the debugger is
// reading commands.
func (dbg *Debugger) SetTerminal(term *easyterm.Terminal) {
	dbg.term = term
}

// result of a single command
type result int

const (
	resultContinue result = iota
	resultResume
	resultQuit
)

// Run the debugger. The emulation is suspended if it is not already.
// Commands are read until the emulation is resumed or the session ends.
// Returns true if the session should end.
//
// The session should also end if the input is exhausted.
func (dbg *Debugger) Run() (bool, error) {
	if !dbg.mon.Suspended() {
		err := dbg.mon.Enter()
		if err != nil {
			return true, curated.Errorf("debugger: %v", err)
		}
	}

	if dbg.term != nil {
		dbg.term.CanonicalMode()
	}

	dbg.printLine(dbg.mon.Summary())

	for {
		if dbg.Prompt != "" {
			fmt.Fprint(dbg.output, dbg.Prompt)
		}

		if !dbg.input.Scan() {
			if err := dbg.input.Err(); err != nil {
				return true, curated.Errorf("debugger: %v", err)
			}
			return true, nil
		}

		line := dbg.input.Text()
		if dbg.Echo {
			dbg.printLine(line)
		}

		res, err := dbg.execute(line)
		if err != nil {
			dbg.printError(err)
		}

		// a fatal error during the command will have terminated the
		// session
		if dbg.drv.State() == govern.Terminated {
			return true, nil
		}

		switch res {
		case resultResume:
			// keypresses made while the emulation is running are not
			// echoed or left for the next debugger session
			if dbg.term != nil {
				_ = dbg.term.Flush()
				dbg.term.CBreakMode()
			}
			return false, nil
		case resultQuit:
			return true, nil
		}
	}
}

// execute a single command line
func (dbg *Debugger) execute(line string) (result, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return resultContinue, nil
	}

	cmd := strings.ToUpper(tokens[0])
	if a, ok := aliases[cmd]; ok {
		cmd = a
	}
	args := tokens[1:]

	logger.Logf(logger.Allow, "debugger", "%s %s", cmd, strings.Join(args, " "))

	switch cmd {
	case cmdQuit:
		return resultQuit, nil

	case cmdResume:
		err := dbg.mon.Resume()
		if err != nil {
			return resultContinue, err
		}
		return resultResume, nil

	case cmdHelp:
		var k string
		if len(args) > 0 {
			k = args[0]
		}
		dbg.printLine(printHelp(k))

	case cmdStep:
		return resultContinue, dbg.step(args)

	case cmdRegs:
		dbg.printLine(dbg.mon.Summary())

	case cmdFrame:
		dbg.printLine(fmt.Sprintf("frame count %d, frame number %d, %s", dbg.drv.FrameCount(), dbg.drv.FrameNumber(), dbg.drv.State()))

	case cmdPeek:
		return resultContinue, dbg.peek(args)

	case cmdField:
		return resultContinue, dbg.field(args)

	case cmdDisasm:
		return resultContinue, dbg.disasm(args)

	case cmdSegments:
		dbg.segments()

	case cmdHistory:
		dbg.history()

	case cmdRewind:
		return resultContinue, dbg.rewind(args)

	case cmdMemviz:
		return resultContinue, dbg.memviz(args)

	case cmdLog:
		n := 10
		if len(args) > 0 {
			v, err := ParseNumber(args[0])
			if err != nil {
				return resultContinue, err
			}
			n = v
		}
		logger.Tail(dbg.output, n)

	default:
		return resultContinue, curated.Errorf(UnknownCommand, tokens[0])
	}

	return resultContinue, nil
}

// UnknownCommand is printed for an unrecognised command.
const UnknownCommand = "unknown command: %v"

func (dbg *Debugger) printLine(s string) {
	fmt.Fprintln(dbg.output, s)
}

func (dbg *Debugger) printError(err error) {
	fmt.Fprintf(dbg.output, "* %v\n", err)
}
