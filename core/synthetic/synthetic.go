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

package synthetic

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gopher800/gopher800/core"
	"github.com/gopher800/gopher800/disassembly"
	"github.com/gopher800/gopher800/frame"
	"github.com/gopher800/gopher800/logger"
	"github.com/gopher800/gopher800/statelayout"
	"github.com/gopher800/gopher800/television"
)

func init() {
	core.Register("synthetic", func() core.Core {
		return &Synthetic{}
	})
}

// Machine types written to the atari.machineType field.
const (
	Machine800 = 0
	MachineXL  = 1
)

// Television modes written to the atari.tvMode field.
const (
	NTSC = 0
	PAL  = 1
)

// cpu values after power on
const (
	powerOnA  = 0xaa
	powerOnP  = 0x02
	powerOnPC = 0xfffc
)

// entry point of a warm start
const warmstartPC = 0xe474

// entry point of a cold start
const coldstartPC = 0xe477

// address at which a booted executable is loaded
const loadAddress = 0x2000

// number of instructions executed every frame
const instructionsPerFrame = 8

// number of 128 byte sectors in a single density disk image
const sectorSize = 128

// length of a period of the square wave in samples
const wavePeriod = 64

// Synthetic implements the core.Core interface.
type Synthetic struct {
	started bool
	halted  bool

	layout *statelayout.Layout

	// the state blob is the state of the core. registers are written to
	// the blob after every change
	state []byte

	// number of frames produced. the first frame is frame zero
	frames uint32

	a, x, y, s, p uint8
	pc            uint16
	cycles        uint32

	tvMode uint8
}

// Start implements the core.Core interface.
func (syn *Synthetic) Start(args []string) (*frame.Output, error) {
	if syn.started {
		return nil, fmt.Errorf("synthetic: already started")
	}

	sch, err := statelayout.Atari800()
	if err != nil {
		return nil, fmt.Errorf("synthetic: %w", err)
	}

	var basic bool
	var machine uint8 = Machine800
	var banks int
	var boot []string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-basic":
			basic = true
		case "-xl":
			machine = MachineXL
		case "-pal":
			syn.tvMode = PAL
		case "-ntsc":
			syn.tvMode = NTSC
		case "-banks":
			i++
			if i >= len(args) {
				return nil, fmt.Errorf("synthetic: -banks requires a value")
			}
			banks, err = strconv.Atoi(args[i])
			if err != nil || banks < 0 || banks > 255 {
				return nil, fmt.Errorf("synthetic: illegal number of banks (%s)", args[i])
			}
		default:
			if strings.HasPrefix(args[i], "-") {
				return nil, fmt.Errorf("synthetic: unknown option (%s)", args[i])
			}
			boot = append(boot, args[i])
		}
	}

	syn.layout, err = statelayout.Plan(sch, map[string]int{"ram.bankCount": banks})
	if err != nil {
		return nil, fmt.Errorf("synthetic: %w", err)
	}
	syn.state = make([]byte, syn.layout.Size)

	sig, err := syn.layout.Slice(syn.state, "header.signature")
	if err != nil {
		return nil, fmt.Errorf("synthetic: %w", err)
	}
	copy(sig, "ATARI800")

	err = errors.Join(
		syn.layout.PutByte(syn.state, "header.version", 1),
		syn.layout.PutByte(syn.state, "ram.bankCount", uint8(banks)),
		syn.layout.PutByte(syn.state, "atari.machineType", machine),
		syn.layout.PutByte(syn.state, "atari.tvMode", syn.tvMode),
		syn.layout.PutWord(syn.state, "atari.ramSizeKB", uint16(64+banks*16)),
		syn.layout.PutByte(syn.state, "atari.builtinBasic", boolToByte(basic)),
	)
	if err != nil {
		return nil, fmt.Errorf("synthetic: %w", err)
	}

	syn.a = powerOnA
	syn.p = powerOnP
	syn.pc = powerOnPC

	err = syn.commit()
	if err != nil {
		return nil, err
	}

	syn.started = true

	for _, b := range boot {
		err = syn.RebootWithFile(b)
		if err != nil {
			return nil, err
		}
	}

	out := &frame.Output{}
	err = syn.CurrentState(out)
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "synthetic", "started with %d bytes of state", len(syn.state))

	return out, nil
}

func boolToByte(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}

// commit the register values to the state blob
func (syn *Synthetic) commit() error {
	err := errors.Join(
		syn.layout.PutByte(syn.state, "cpu.A", syn.a),
		syn.layout.PutByte(syn.state, "cpu.X", syn.x),
		syn.layout.PutByte(syn.state, "cpu.Y", syn.y),
		syn.layout.PutByte(syn.state, "cpu.S", syn.s),
		syn.layout.PutByte(syn.state, "cpu.P", syn.p),
		syn.layout.PutWord(syn.state, "cpu.PC", syn.pc),
		syn.layout.PutLong(syn.state, "cpu.cycles", syn.cycles),
	)
	if err != nil {
		return fmt.Errorf("synthetic: %w", err)
	}
	return nil
}

// fetch the register values from the state blob
func (syn *Synthetic) fetch() error {
	var errs [8]error
	syn.a, errs[0] = syn.layout.Byte(syn.state, "cpu.A")
	syn.x, errs[1] = syn.layout.Byte(syn.state, "cpu.X")
	syn.y, errs[2] = syn.layout.Byte(syn.state, "cpu.Y")
	syn.s, errs[3] = syn.layout.Byte(syn.state, "cpu.S")
	syn.p, errs[4] = syn.layout.Byte(syn.state, "cpu.P")
	syn.pc, errs[5] = syn.layout.Word(syn.state, "cpu.PC")
	syn.cycles, errs[6] = syn.layout.Long(syn.state, "cpu.cycles")
	syn.tvMode, errs[7] = syn.layout.Byte(syn.state, "atari.tvMode")
	err := errors.Join(errs[:]...)
	if err != nil {
		return fmt.Errorf("synthetic: %w", err)
	}
	return nil
}

func (syn *Synthetic) ram() []byte {
	ram, _ := syn.layout.Slice(syn.state, "ram.ram")
	return ram
}

// execute a single instruction. the only effect is on the program counter
// and the cycle count
func (syn *Synthetic) step() {
	ram := syn.ram()
	syn.pc += uint16(disassembly.Length(ram[syn.pc]))
	syn.cycles += 2
}

func (syn *Synthetic) reset(cold bool) {
	if cold {
		clear(syn.ram())
		syn.pc = coldstartPC
		syn.a = 0
		syn.x = 0
		syn.y = 0
	} else {
		syn.pc = warmstartPC
	}
	syn.s = 0xff
	syn.p = 0x34
}

// NextFrame implements the frame.Core interface.
func (syn *Synthetic) NextFrame(in *frame.Input, out *frame.Output) error {
	if !syn.started {
		return fmt.Errorf("synthetic: %s", core.NotStarted)
	}
	if syn.halted {
		return fmt.Errorf("synthetic: halted in monitor")
	}

	switch in.Special {
	case frame.SpecialWarmstart:
		syn.reset(false)
	case frame.SpecialColdstart:
		syn.reset(true)
	}

	ram := syn.ram()

	// the keyboard and console registers
	if in.KeyChar != 0 {
		syn.a = in.KeyChar
		ram[0x02fc] = in.KeyChar
	} else if in.KeyCode != 0 {
		ram[0x02fc] = in.KeyCode
	}
	var consol uint8 = 0x07
	if in.Start {
		consol &^= 0x01
	}
	if in.Select {
		consol &^= 0x02
	}
	if in.Option {
		consol &^= 0x04
	}
	ram[0xd01f] = consol

	porta := in.Joy[0]&0x0f | in.Joy[1]<<4
	for i := 0; i < instructionsPerFrame; i++ {
		syn.step()
	}
	if syn.tvMode == PAL {
		syn.cycles += uint32(television.SpecPAL.CyclesPerFrame)
	} else {
		syn.cycles += uint32(television.SpecNTSC.CyclesPerFrame)
	}
	syn.x++

	syn.frames++

	err := errors.Join(
		syn.layout.PutByte(syn.state, "pia.PORTA", porta),
		syn.layout.PutByte(syn.state, "gtia.COLBK", uint8(syn.frames)),
		syn.layout.PutWord(syn.state, "antic.ypos", uint16(syn.frames%262)),
		syn.commit(),
	)
	if err != nil {
		return fmt.Errorf("synthetic: %w", err)
	}

	syn.video(out)
	syn.audio(out)
	out.FrameFinished = true
	out.BreakpointHit = false

	return syn.CurrentState(out)
}

// sixteen vertical bars of colour. the hue scrolls with the frame number
// and the luminance increases down the screen
func (syn *Synthetic) video(out *frame.Output) {
	for y := 0; y < frame.VideoHeight; y++ {
		lm := uint8(y * 16 / frame.VideoHeight)
		for x := 0; x < frame.VideoWidth; x++ {
			cr := uint8((x*16/frame.VideoWidth + int(syn.frames)) & 0x0f)
			out.Video[y*frame.VideoWidth+x] = cr<<4 | lm
		}
	}
}

func (syn *Synthetic) audio(out *frame.Output) {
	for i := range out.Audio {
		if (i+int(syn.frames)*frame.AudioSize)%wavePeriod < wavePeriod/2 {
			out.Audio[i] = 0xa0
		} else {
			out.Audio[i] = 0x60
		}
	}
}

// Halt implements the frame.Core interface.
func (syn *Synthetic) Halt(in *frame.Input) error {
	if !syn.started {
		return fmt.Errorf("synthetic: %s", core.NotStarted)
	}
	if in.Special != frame.SpecialMonitor {
		return fmt.Errorf("synthetic: halt requested with special code %s", in.Special)
	}
	syn.halted = true
	return nil
}

// CurrentState implements the frame.Core interface.
func (syn *Synthetic) CurrentState(out *frame.Output) error {
	if !syn.started && syn.state == nil {
		return fmt.Errorf("synthetic: %s", core.NotStarted)
	}
	out.FrameNumber = 0
	if syn.frames > 0 {
		out.FrameNumber = syn.frames - 1
	}
	if len(out.State) != len(syn.state) {
		out.State = make([]byte, len(syn.state))
	}
	copy(out.State, syn.state)
	return nil
}

// RestoreState implements the frame.Core interface.
func (syn *Synthetic) RestoreState(out *frame.Output) error {
	if !syn.started {
		return fmt.Errorf("synthetic: %s", core.NotStarted)
	}
	err := syn.layout.Verify(out.State)
	if err != nil {
		return fmt.Errorf("synthetic: %w", err)
	}
	copy(syn.state, out.State)
	syn.frames = out.FrameNumber + 1
	syn.halted = false
	return syn.fetch()
}

// MonitorStep implements the core.Core interface.
func (syn *Synthetic) MonitorStep() error {
	if !syn.halted {
		return fmt.Errorf("synthetic: not halted in monitor")
	}
	syn.step()
	return syn.commit()
}

// MonitorClear implements the core.Core interface.
func (syn *Synthetic) MonitorClear() error {
	syn.halted = false
	return nil
}

// MountDisk implements the core.Core interface.
func (syn *Synthetic) MountDisk(drive int, path string, readOnly bool) error {
	if !syn.started {
		return fmt.Errorf("synthetic: %s", core.NotStarted)
	}
	if drive < 1 || drive > 8 {
		return fmt.Errorf("synthetic: illegal drive number (%d)", drive)
	}

	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("synthetic: %w", err)
	}
	if fi.IsDir() {
		return fmt.Errorf("synthetic: %s is a directory", path)
	}

	d := fmt.Sprintf("disks[%d]", drive-1)
	err = errors.Join(
		syn.layout.PutByte(syn.state, d+".mounted", 1),
		syn.layout.PutByte(syn.state, d+".readOnly", boolToByte(readOnly)),
		syn.layout.PutWord(syn.state, d+".sectors", uint16(fi.Size()/sectorSize)),
	)
	if err != nil {
		return fmt.Errorf("synthetic: %w", err)
	}

	logger.Logf(logger.Allow, "synthetic", "mounted %s in D%d:", filepath.Base(path), drive)

	return nil
}

// RebootWithFile implements the core.Core interface. Disk images are mounted
// in the first drive. Any other file is loaded into RAM and executed.
func (syn *Synthetic) RebootWithFile(path string) error {
	if !syn.started {
		return fmt.Errorf("synthetic: %s", core.NotStarted)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".atr", ".xfd":
		err := syn.MountDisk(1, path, false)
		if err != nil {
			return err
		}
		syn.reset(true)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("synthetic: %w", err)
		}
		syn.reset(true)
		ram := syn.ram()
		copy(ram[loadAddress:], data)
		syn.pc = loadAddress
	}

	return syn.commit()
}

// Close implements the core.Core interface.
func (syn *Synthetic) Close() error {
	syn.started = false
	syn.halted = false
	return nil
}
