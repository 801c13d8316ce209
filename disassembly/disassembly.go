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

package disassembly

import (
	"fmt"
	"strings"

	. "github.com/retroenv/retrogolib/nes/addressing"
	"github.com/retroenv/retrogolib/nes/cpu"
)

// Entry is a disassembled instruction.
type Entry struct {
	Address uint16

	// the bytes that make up the instruction, including the opcode. if the
	// instruction runs beyond the end of memory the Bytes field will be
	// shorter than Length
	Bytes  []byte
	Length int

	Operator string
	Operand  string

	// false if the opcode is not defined
	Defined bool

	// true if the instruction is a branch or a jump
	Branch bool
}

// Bytecode returns the bytes of the instruction as a string of hex values.
func (e Entry) Bytecode() string {
	s := make([]string, len(e.Bytes))
	for i, b := range e.Bytes {
		s[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(s, " ")
}

func (e Entry) String() string {
	if e.Operand == "" {
		return fmt.Sprintf("%04x  %-8s  %s", e.Address, e.Bytecode(), e.Operator)
	}
	return fmt.Sprintf("%04x  %-8s  %s %s", e.Address, e.Bytecode(), e.Operator, e.Operand)
}

// Length returns the number of bytes in the instruction beginning with the
// opcode. Undefined opcodes have a length of one.
func Length(opcode byte) int {
	op := cpu.Opcodes[opcode]
	if op.Instruction == nil {
		return 1
	}
	return modeLength(op.Addressing)
}

func modeLength(mode Mode) int {
	switch mode {
	case ImpliedAddressing, AccumulatorAddressing:
		return 1
	case AbsoluteAddressing, AbsoluteXAddressing, AbsoluteYAddressing, IndirectAddressing:
		return 3
	}
	return 2
}

// Disassemble the instruction at the address. Memory is addressed from zero.
func Disassemble(mem []byte, address uint16) Entry {
	e := Entry{
		Address: address,
	}

	if int(address) >= len(mem) {
		e.Operator = "???"
		e.Length = 1
		return e
	}

	op := cpu.Opcodes[mem[address]]
	if op.Instruction == nil {
		e.Bytes = []byte{mem[address]}
		e.Length = 1
		e.Operator = "???"
		return e
	}

	e.Defined = true
	e.Length = modeLength(op.Addressing)
	e.Operator = strings.ToUpper(op.Instruction.Name)

	end := int(address) + e.Length
	if end > len(mem) {
		end = len(mem)
	}
	e.Bytes = append([]byte{}, mem[address:end]...)

	if _, ok := cpu.BranchingInstructions[op.Instruction.Name]; ok {
		e.Branch = true
	}

	// the instruction is incomplete
	if len(e.Bytes) < e.Length {
		e.Operand = strings.Repeat("??", e.Length-1)
		return e
	}

	var operand uint16
	switch e.Length {
	case 2:
		operand = uint16(e.Bytes[1])
	case 3:
		operand = uint16(e.Bytes[2])<<8 | uint16(e.Bytes[1])
	}

	e.Operand = decorate(op.Addressing, address, operand)

	return e
}

// Range disassembles count instructions starting at address.
func Range(mem []byte, address uint16, count int) []Entry {
	r := make([]Entry, 0, count)
	for i := 0; i < count; i++ {
		e := Disassemble(mem, address)
		r = append(r, e)
		address += uint16(e.Length)
	}
	return r
}

// add decoration to operand according to the addressing mode
func decorate(mode Mode, address uint16, operand uint16) string {
	switch mode {
	case ImpliedAddressing:
		return ""
	case AccumulatorAddressing:
		return "A"
	case ImmediateAddressing:
		return fmt.Sprintf("#$%02x", operand)
	case ZeroPageAddressing:
		return fmt.Sprintf("$%02x", operand)
	case ZeroPageXAddressing:
		return fmt.Sprintf("$%02x,X", operand)
	case ZeroPageYAddressing:
		return fmt.Sprintf("$%02x,Y", operand)
	case AbsoluteAddressing:
		return fmt.Sprintf("$%04x", operand)
	case AbsoluteXAddressing:
		return fmt.Sprintf("$%04x,X", operand)
	case AbsoluteYAddressing:
		return fmt.Sprintf("$%04x,Y", operand)
	case IndirectAddressing:
		return fmt.Sprintf("($%04x)", operand)
	case IndirectXAddressing:
		return fmt.Sprintf("($%02x,X)", operand)
	case IndirectYAddressing:
		return fmt.Sprintf("($%02x),Y", operand)
	case RelativeAddressing:
		return fmt.Sprintf("$%04x", branchDestination(address, operand))
	}
	return fmt.Sprintf("$%x", operand)
}

// branch destination returns the branch operand as the address of the
// branched PC, rather than an offset value.
func branchDestination(address uint16, operand uint16) uint16 {
	// all 6502 branch instructions are 2 bytes in length
	pc := address + 2

	// sign extend the 8bit offset
	if operand&0x0080 == 0x0080 {
		operand |= 0xff00
	}

	return pc + operand
}
