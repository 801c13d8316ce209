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

package wavwriter

import (
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gopher800/gopher800/curated"
	"github.com/gopher800/gopher800/display"
	"github.com/gopher800/gopher800/frame"
	"github.com/gopher800/gopher800/logger"
	"github.com/gopher800/gopher800/television"
)

func init() {
	display.Register("wav", func(cfg display.Config) (display.Sink, error) {
		return New(cfg.Path, cfg.FramesPerSecond)
	})
}

// SampleFreq is the sample rate of the WAV file.
const SampleFreq = 44100

// WavWriter implements the display.Sink interface.
type WavWriter struct {
	filename string

	// the number of samples taken from the audio buffer of each frame
	samplesPerFrame int

	buffer []int
}

// New is the preferred method of initialisation for the WavWriter type. A
// frame rate of zero means the NTSC frame rate.
func New(filename string, fps float64) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: no filename")
	}
	if fps <= 0 {
		fps = television.SpecNTSC.FramesPerSecond
	}

	aw := &WavWriter{
		filename:        filename,
		samplesPerFrame: int(math.Round(SampleFreq / fps)),
		buffer:          make([]int, 0),
	}

	if aw.samplesPerFrame > frame.AudioSize {
		aw.samplesPerFrame = frame.AudioSize
	}

	return aw, nil
}

// Capabilities implements the display.Sink interface.
func (aw *WavWriter) Capabilities() display.Capability {
	return display.CapAudio
}

// Present implements the display.Sink interface.
func (aw *WavWriter) Present(fr display.Frame) error {
	return aw.SetAudio(fr.Audio)
}

// SetAudio adds the audio of one frame to the buffer.
func (aw *WavWriter) SetAudio(samples []uint8) error {
	if len(samples) < aw.samplesPerFrame {
		return curated.Errorf("wavwriter: short audio buffer (%d samples)", len(samples))
	}
	for _, s := range samples[:aw.samplesPerFrame] {
		aw.buffer = append(aw.buffer, int(s))
	}
	return nil
}

// Len returns the number of samples collected.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// Reset discards the collected samples.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
}

// Close implements the display.Sink interface. The collected samples are
// written to the file.
func (aw *WavWriter) Close() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleFreq, 8, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleFreq,
		},
		Data:           aw.buffer,
		SourceBitDepth: 8,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
