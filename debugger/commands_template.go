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
	"sort"
	"strings"
)

// debugger keywords
const (
	cmdQuit   = "QUIT"
	cmdResume = "RESUME"
	cmdHelp   = "HELP"

	cmdStep     = "STEP"
	cmdRegs     = "REGS"
	cmdFrame    = "FRAME"
	cmdPeek     = "PEEK"
	cmdField    = "FIELD"
	cmdDisasm   = "DISASM"
	cmdSegments = "SEGMENTS"
	cmdHistory  = "HISTORY"
	cmdRewind   = "REWIND"
	cmdMemviz   = "MEMVIZ"
	cmdLog      = "LOG"
)

// aliases for commonly used commands
var aliases = map[string]string{
	"Q":        cmdQuit,
	"EXIT":     cmdQuit,
	"C":        cmdResume,
	"CONTINUE": cmdResume,
	"S":        cmdStep,
	"CPU":      cmdRegs,
	"?":        cmdHelp,
}

var help = map[string]string{
	cmdQuit:     "End the emulation session",
	cmdResume:   "Resume the emulation",
	cmdHelp:     "List commands or show help for the named command",
	cmdStep:     "Execute one CPU instruction or the number of instructions given",
	cmdRegs:     "Display the current state of the CPU",
	cmdFrame:    "Display the current frame count and frame number",
	cmdPeek:     "Inspect memory. Address and count may be decimal, hex ($ or 0x prefix)",
	cmdField:    "Display the value of a named field in the emulation state",
	cmdDisasm:   "Disassemble instructions from the address (default is the PC)",
	cmdSegments: "List the segments of the output and emulation state",
	cmdHistory:  "Display information about the history of snapshots",
	cmdRewind:   "Restore the emulation to the snapshot nearest the frame number",
	cmdMemviz:   "Write a graphviz visualisation of the history to a file",
	cmdLog:      "Print the most recent entries of the log",
}

var usage = map[string]string{
	cmdStep:   "STEP [n]",
	cmdPeek:   "PEEK <address> [count]",
	cmdField:  "FIELD <name>",
	cmdDisasm: "DISASM [address] [count]",
	cmdRewind: "REWIND <frame>",
	cmdMemviz: "MEMVIZ <file>",
	cmdLog:    "LOG [count]",
	cmdHelp:   "HELP [command]",
}

func printHelp(keyword string) string {
	keyword = strings.ToUpper(keyword)
	if a, ok := aliases[keyword]; ok {
		keyword = a
	}

	if keyword != "" {
		h, ok := help[keyword]
		if !ok {
			return fmt.Sprintf("no help for %s", keyword)
		}
		u, ok := usage[keyword]
		if !ok {
			u = keyword
		}
		return fmt.Sprintf("%s\n  %s", u, h)
	}

	var k []string
	for c := range help {
		k = append(k, c)
	}
	sort.Strings(k)

	var s strings.Builder
	for i, c := range k {
		s.WriteString(fmt.Sprintf("%-10s", c))
		if i%6 == 5 {
			s.WriteString("\n")
		}
	}
	return strings.TrimRight(s.String(), " \n")
}
