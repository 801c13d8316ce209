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

// Package disassembly disassembles 6502 machine code found in the memory of
// the emulated machine.
//
// Disassembly is linear. It starts at the supplied address and makes no
// attempt to follow the flow of execution. This is sufficient for the
// debugger, which is only ever interested in the instructions at and
// immediately after the program counter.
//
//	e := disassembly.Disassemble(ram, pc)
//	fmt.Println(e)
//
// Opcode definitions are taken from the retrogolib package.
package disassembly
