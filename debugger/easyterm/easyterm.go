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

//go:build !windows

package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// TermGeometry is the size of the terminal in characters.
type TermGeometry struct {
	Rows uint16
	Cols uint16
}

// Terminal switches the debugger's terminal between line and character
// modes.
type Terminal struct {
	input  *os.File
	output *os.File

	// geometry is updated on every SIGWINCH
	geometry TermGeometry

	// the attributes of the terminal when Initialise() was called are
	// restored by CleanUp()
	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// stop the SIGWINCH handler and wait for it to finish
	stop chan struct{}
	done chan struct{}

	// guards geometry, which is written by the SIGWINCH handler
	mu sync.Mutex
}

// Initialise the terminal. The input file must be a real terminal.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: terminal requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: terminal requires an output file")
	}

	pt.input = inputFile
	pt.output = outputFile

	err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr)
	if err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	_ = pt.UpdateGeometry()

	pt.stop = make(chan struct{})
	pt.done = make(chan struct{})

	sigwinch := make(chan os.Signal, 1)
	signal.Notify(sigwinch, syscall.SIGWINCH)

	go func() {
		defer close(pt.done)
		defer signal.Stop(sigwinch)
		for {
			select {
			case <-sigwinch:
				_ = pt.UpdateGeometry()
			case <-pt.stop:
				return
			}
		}
	}()

	return nil
}

// CleanUp restores the terminal to the mode it was in when Initialise() was
// called and stops the signal handler.
func (pt *Terminal) CleanUp() {
	pt.CanonicalMode()
	close(pt.stop)
	<-pt.done
}

// UpdateGeometry queries the terminal for its current size.
func (pt *Terminal) UpdateGeometry() error {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	ws, err := unix.IoctlGetWinsize(int(pt.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return fmt.Errorf("easyterm: geometry: %w", err)
	}
	pt.geometry.Rows = ws.Row
	pt.geometry.Cols = ws.Col
	return nil
}

// Geometry returns the most recent size of the terminal.
func (pt *Terminal) Geometry() TermGeometry {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.geometry
}

// CanonicalMode puts the terminal into line-by-line mode with echo.
func (pt *Terminal) CanonicalMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// CBreakMode puts the terminal into character-by-character mode without
// echo. Signals are still generated by the terminal.
func (pt *Terminal) CBreakMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}

// Flush discards pending input and output.
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	return nil
}
