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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"
	"golang.org/x/term"

	"github.com/gopher800/gopher800/core"
	_ "github.com/gopher800/gopher800/core/synthetic"
	"github.com/gopher800/gopher800/curated"
	"github.com/gopher800/gopher800/debugger"
	"github.com/gopher800/gopher800/debugger/easyterm"
	"github.com/gopher800/gopher800/disassembly"
	"github.com/gopher800/gopher800/display"
	_ "github.com/gopher800/gopher800/display/glsink"
	_ "github.com/gopher800/gopher800/display/headless"
	_ "github.com/gopher800/gopher800/display/sdlsink"
	_ "github.com/gopher800/gopher800/display/termsink"
	"github.com/gopher800/gopher800/govern"
	"github.com/gopher800/gopher800/logger"
	"github.com/gopher800/gopher800/performance"
	"github.com/gopher800/gopher800/prefs"
	"github.com/gopher800/gopher800/statsview"
	"github.com/gopher800/gopher800/version"
	_ "github.com/gopher800/gopher800/wavwriter"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		os.Exit(10)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = strings.ToLower(version.ApplicationName)
	app.Usage = "Atari 800 emulator frontend"
	app.Version = version.String()

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "core",
			Value: "synthetic",
			Usage: fmt.Sprintf("emulation core (%s)", strings.Join(core.Names(), ", ")),
		},
		cli.StringFlag{
			Name:  "schema",
			Usage: "state layout schema file (the built in Atari800 schema is used by default)",
		},
		cli.StringFlag{
			Name:  "prefs",
			Usage: "preferences for this session in the form key::value; key::value",
		},
		cli.BoolFlag{
			Name:  "log",
			Usage: "echo log entries to stderr",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "log entries that are made every frame",
		},
		cli.BoolFlag{
			Name:  "statsview",
			Usage: fmt.Sprintf("run the statsview server on %s", statsview.Address),
		},
	}

	app.Before = func(c *cli.Context) error {
		if c.GlobalBool("log") {
			logger.SetEcho(os.Stderr)
		}
		logger.SetVerbose(c.GlobalBool("verbose"))
		if p := c.GlobalString("prefs"); p != "" {
			prefs.PushCommandLineStack(p)
		}
		if c.GlobalBool("statsview") && !statsview.Available() {
			return curated.Errorf("statsview not available in this build")
		}
		return nil
	}

	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "run the emulation with a display",
			ArgsUsage: "[core options]",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "display",
					Usage: fmt.Sprintf("display to use (%s). the display.name preference is used by default", strings.Join(display.Names(), ", ")),
				},
				cli.IntFlag{Name: "scale", Usage: "display scaling. the display.scale preference is used by default"},
				cli.StringFlag{Name: "wav", Usage: "record audio to wav file"},
				cli.StringSliceFlag{Name: "disk", Usage: "disk image to mount. repeat for further drives"},
				cli.StringFlag{Name: "type", Usage: "text to type once the emulation has started"},
				cli.BoolFlag{Name: "uncapped", Usage: "run without frame rate limit"},
			},
			Action: runAction,
		},
		{
			Name:      "headless",
			Usage:     "run the emulation for a fixed number of frames without a display",
			ArgsUsage: "[core options]",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "frames", Usage: "number of frames to run"},
				cli.IntFlag{Name: "snapshot-every", Usage: "write a bitmap every N frames"},
				cli.StringFlag{Name: "snapshot-dir", Value: ".", Usage: "directory for bitmaps"},
				cli.StringFlag{Name: "wav", Usage: "record audio to wav file"},
				cli.StringSliceFlag{Name: "disk", Usage: "disk image to mount. repeat for further drives"},
				cli.StringFlag{Name: "type", Usage: "text to type once the emulation has started"},
			},
			Action: headlessAction,
		},
		{
			Name:      "debug",
			Usage:     "start the emulation in the debugger",
			ArgsUsage: "[core options]",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "display",
					Value: "none",
					Usage: "display to use while the emulation is running",
				},
				cli.IntFlag{Name: "scale", Usage: "display scaling"},
				cli.StringSliceFlag{Name: "disk", Usage: "disk image to mount. repeat for further drives"},
			},
			Action: debugAction,
		},
		{
			Name:      "perform",
			Usage:     "measure the performance of the emulation",
			ArgsUsage: "[core options]",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "duration", Value: "5s", Usage: "duration of the measurement"},
				cli.BoolFlag{Name: "uncapped", Usage: "run without frame rate limit"},
				cli.StringFlag{Name: "profile", Value: "none", Usage: "profiles to write (cpu, mem, trace, all)"},
			},
			Action: performAction,
		},
		{
			Name:      "disasm",
			Usage:     "disassemble a binary file",
			ArgsUsage: "file",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "origin", Value: "0x2000", Usage: "load address of the file"},
			},
			Action: disasmAction,
		},
	}

	return app
}

func configFromContext(c *cli.Context, mode govern.Mode) sessionConfig {
	var statsOutput io.Writer
	if c.GlobalBool("statsview") {
		statsOutput = c.App.Writer
	}

	return sessionConfig{
		mode:        mode,
		statsOutput: statsOutput,
		core:    c.GlobalString("core"),
		schema:  c.GlobalString("schema"),
		args:    []string(c.Args()),
		disks:   c.StringSlice("disk"),
		scale:   c.Int("scale"),
		persist: true,
	}
}

func runAction(c *cli.Context) error {
	cfg := configFromContext(c, govern.ModeRun)
	cfg.display = c.String("display")
	cfg.wav = c.String("wav")

	s, err := newSession(cfg)
	if err != nil {
		return err
	}

	if t := c.String("type"); t != "" {
		s.typeText(t)
	}

	lim := s.newLimiter(c.Bool("uncapped"))
	if lim != nil {
		defer lim.Close()
	}

	err = s.run(0, lim)
	if cerr := s.close(); err == nil {
		err = cerr
	}
	return err
}

func headlessAction(c *cli.Context) error {
	frames := c.Int("frames")
	if frames <= 0 {
		return curated.Errorf("headless: number of frames must be specified")
	}

	cfg := configFromContext(c, govern.ModeHeadless)
	cfg.display = "none"
	cfg.wav = c.String("wav")
	cfg.snapshotEvery = c.Int("snapshot-every")
	cfg.snapshotDir = c.String("snapshot-dir")

	s, err := newSession(cfg)
	if err != nil {
		return err
	}

	if t := c.String("type"); t != "" {
		s.typeText(t)
	}

	err = s.run(frames, nil)
	if cerr := s.close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%d frames\n", s.drv.FrameCount())
	return nil
}

func debugAction(c *cli.Context) error {
	cfg := configFromContext(c, govern.ModeDebug)
	cfg.display = c.String("display")

	s, err := newSession(cfg)
	if err != nil {
		return err
	}

	s.dbg = debugger.NewDebugger(s.drv, s.mon, os.Stdin, c.App.Writer)

	if term.IsTerminal(int(os.Stdin.Fd())) {
		var et easyterm.Terminal
		err = et.Initialise(os.Stdin, os.Stdout)
		if err != nil {
			_ = s.close()
			return err
		}
		defer et.CleanUp()
		s.dbg.SetTerminal(&et)
	}

	err = debugSession(s)
	if cerr := s.close(); err == nil {
		err = cerr
	}
	return err
}

// the debugger is run before the first frame. the emulation runs in between
// debugger sessions
func debugSession(s *session) error {
	quit, err := s.dbg.Run()
	if err != nil || quit {
		return err
	}

	lim := s.newLimiter(false)
	if lim != nil {
		defer lim.Close()
	}

	return s.run(0, lim)
}

func performAction(c *cli.Context) error {
	profile, err := performance.ParseProfileString(c.String("profile"))
	if err != nil {
		return err
	}

	cfg := configFromContext(c, govern.ModePerform)
	cfg.display = "none"
	cfg.persist = false

	s, err := newSession(cfg)
	if err != nil {
		return err
	}

	err = performance.Check(c.App.Writer, profile, s.drv, s.spec, c.Bool("uncapped"), c.String("duration"))
	if cerr := s.close(); err == nil {
		err = cerr
	}
	return err
}

func disasmAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return curated.Errorf("disasm: a single file is required")
	}

	origin, err := debugger.ParseNumber(c.String("origin"))
	if err != nil {
		return curated.Errorf("disasm: %v", err)
	}
	if origin > 0xffff {
		return curated.Errorf("disasm: origin out of range ($%x)", origin)
	}

	return disassembleFile(c.App.Writer, c.Args().First(), uint16(origin))
}

func disassembleFile(output io.Writer, filename string, origin uint16) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf("disasm: %v", err)
	}

	mem := make([]byte, 0x10000)
	n := copy(mem[origin:], data)
	end := int(origin) + n

	addr := int(origin)
	for addr < end {
		e := disassembly.Disassemble(mem, uint16(addr))
		fmt.Fprintln(output, e.String())
		if e.Length == 0 {
			addr++
		} else {
			addr += e.Length
		}
	}

	return nil
}
