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
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gopher800/gopher800/core"
	"github.com/gopher800/gopher800/curated"
	"github.com/gopher800/gopher800/debugger"
	"github.com/gopher800/gopher800/display"
	"github.com/gopher800/gopher800/driver"
	"github.com/gopher800/gopher800/govern"
	"github.com/gopher800/gopher800/history"
	"github.com/gopher800/gopher800/logger"
	"github.com/gopher800/gopher800/monitor"
	"github.com/gopher800/gopher800/performance/limiter"
	"github.com/gopher800/gopher800/statelayout"
	"github.com/gopher800/gopher800/statsview"
	"github.com/gopher800/gopher800/television"
	"github.com/gopher800/gopher800/television/colourgen"
)

// sessionConfig is the configuration common to every mode that runs the
// emulation.
type sessionConfig struct {
	mode govern.Mode

	core   string
	schema string

	// option tokens passed to the core unmodified
	args []string

	// disk images mounted in drives one onwards
	disks []string

	// the display and scale preferences are used if these are not set. a
	// display of "none" means no display
	display string
	scale   int

	wav string

	snapshotDir   string
	snapshotEvery int

	// load and save preferences from disk
	persist bool

	// launch the statistics server and write its address here. nil if the
	// server is not wanted
	statsOutput io.Writer
}

type session struct {
	mode govern.Mode

	drv   *driver.Driver
	mon   *monitor.Controller
	prefs *frontendPrefs
	sink  *display.Multi
	table *colourgen.Table
	spec  *television.Specification
	stats *statsview.Emulation

	interrupt chan os.Signal

	// in the debug mode an interrupt enters the debugger rather than ending
	// the session
	dbg *debugger.Debugger
}

func newSession(cfg sessionConfig) (*session, error) {
	c, err := core.New(cfg.core)
	if err != nil {
		return nil, err
	}

	var sch *statelayout.Schema
	if cfg.schema == "" {
		sch, err = statelayout.Atari800()
	} else {
		sch, err = statelayout.LoadSchemaFile(cfg.schema)
	}
	if err != nil {
		return nil, err
	}

	fp, err := newFrontendPrefs(cfg.persist)
	if err != nil {
		return nil, err
	}

	hist, err := history.NewStore(cfg.persist)
	if err != nil {
		return nil, err
	}

	s := &session{
		mode:      cfg.mode,
		drv:       driver.NewDriver(c, sch, hist),
		prefs:     fp,
		sink:      display.NewMulti(),
		table:     colourgen.NewNTSC(),
		spec:      television.SpecNTSC,
		stats:     statsview.NewEmulation(time.Second),
		interrupt: make(chan os.Signal, 1),
	}
	s.mon = monitor.NewController(s.drv)

	for _, a := range cfg.args {
		if strings.EqualFold(a, "-pal") {
			s.spec = television.SpecPAL
		}
	}

	if cfg.display == "" {
		cfg.display = fp.Display.String()
	}
	if cfg.scale <= 0 {
		cfg.scale = fp.Scale.Get().(int)
	}

	dcfg := display.Config{
		Title:           "Gopher800",
		Scale:           cfg.scale,
		FramesPerSecond: s.spec.FramesPerSecond,
	}

	if !strings.EqualFold(cfg.display, "none") {
		snk, err := display.New(cfg.display, dcfg)
		if err != nil {
			return nil, err
		}
		s.sink.Add(snk)
	}

	if cfg.snapshotEvery > 0 {
		hcfg := dcfg
		hcfg.Path = cfg.snapshotDir
		hcfg.Every = cfg.snapshotEvery
		snk, err := display.New("headless", hcfg)
		if err != nil {
			_ = s.sink.Close()
			return nil, err
		}
		s.sink.Add(snk)
	}

	if cfg.wav != "" {
		wcfg := dcfg
		wcfg.Path = cfg.wav
		snk, err := display.New("wav", wcfg)
		if err != nil {
			_ = s.sink.Close()
			return nil, err
		}
		s.sink.Add(snk)
	}

	err = s.drv.Start(cfg.args)
	if err != nil {
		_ = s.sink.Close()
		return nil, err
	}

	for i, d := range cfg.disks {
		err = s.drv.LoadDisk(i+1, d)
		if err != nil {
			_ = s.close()
			return nil, err
		}
	}

	if cfg.statsOutput != nil {
		statsview.Launch(cfg.statsOutput, s.stats)
	}

	signal.Notify(s.interrupt, os.Interrupt)

	logger.Logf(logger.Allow, "session", "%s mode: %s started with %s (%s)", s.mode, cfg.core, sch, s.spec.ID)

	return s, nil
}

// close the session. history preferences are saved if they were loaded from
// disk.
func (s *session) close() error {
	signal.Stop(s.interrupt)

	err := s.sink.Close()
	if err != nil {
		_ = s.drv.Close()
		return err
	}

	err = s.drv.Close()
	if err != nil {
		return err
	}

	err = s.drv.History.Prefs.Save()
	if err != nil {
		return err
	}

	return s.prefs.save()
}

// the number of snapshots held by the history
func (s *session) snapshots() int {
	return len(s.drv.History.Retained())
}

// newLimiter returns a limiter for the television frame rate adjusted by the
// speed preference. Returns nil if the emulation should run uncapped.
func (s *session) newLimiter(uncapped bool) *limiter.FpsLimiter {
	if uncapped || s.prefs.Uncapped.Get().(bool) {
		return nil
	}
	return limiter.NewFPSLimiter(s.prefs.fps(s.spec.FramesPerSecond))
}

// typeText schedules the characters of the text to be sent to the emulated
// keyboard, one character every two frames.
func (s *session) typeText(text string) {
	for i, c := range []byte(text) {
		c := c
		s.drv.Schedule(2*i+1, "type", func() {
			_ = s.drv.SendChar(c)
			s.drv.Schedule(1, "release", func() {
				_ = s.drv.ClearKeys()
			})
		})
	}
}

// run the emulation until the number of frames has been reached or the
// session ends. a maxFrames value of zero means no limit. the limiter can
// be nil.
func (s *session) run(maxFrames int, lim *limiter.FpsLimiter) error {
	for {
		select {
		case <-s.interrupt:
			if s.dbg == nil {
				return nil
			}
			quit, err := s.dbg.Run()
			if err != nil || quit {
				return err
			}
		default:
		}

		if lim != nil {
			lim.Wait()
		}

		err := s.drv.Tick()
		if err != nil {
			return err
		}

		fr, err := display.Prepare(s.drv.Output(), s.table, s.sink.Capabilities())
		if err != nil {
			return err
		}
		err = s.sink.Present(fr)
		if err != nil {
			return err
		}

		s.stats.Update(time.Now(), s.drv.FrameCount(), s.snapshots)

		if maxFrames > 0 && s.drv.FrameCount() >= maxFrames {
			return nil
		}

		if !s.mode.Interactive() {
			continue
		}

		for _, ev := range s.sink.Poll() {
			switch ev.Kind {
			case display.EventQuit:
				return nil
			case display.EventMonitor:
				if s.dbg == nil {
					logger.Logf(logger.Allow, "session", "debugger not available in this mode")
					continue
				}
				quit, err := s.dbg.Run()
				if err != nil || quit {
					return err
				}
			default:
				err := ev.Apply(s.drv)
				if err != nil {
					return curated.Errorf("session: %v", err)
				}
			}
		}
	}
}
