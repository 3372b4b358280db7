// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter allows writing of the sound channel output to disk as a
// WAV file. Note that audio data is buffered in memory in its entirity, and
// written to disk when EndMixing() is called. It is therefore probably only
// suitable for testing purposes.
//
// Each sound channel is written to its own channel in the WAV file. The
// channels are not mixed.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/environment"
	"github.com/gopherboy/gopherboy/hardware/clocks"
	"github.com/gopherboy/gopherboy/logger"
)

// the number of sound channels written to the file. one for each channel
// returned by hardware.Console.Step()
const numChannels = 2

// samples are written as unsigned 8 bit values
const bitDepth = 8

// the WAVE format code for integer PCM
const pcmFormat = 1

// channel output is in the range 0 to 15 and is scaled to the range of an 8
// bit sample
const sampleScale = 16

// WavWriter collects the output of the sound channels.
type WavWriter struct {
	env      *environment.Environment
	filename string

	// only one in every decimation calls to SetAudio() is kept
	decimation int
	count      int

	// interleaved samples
	buffer []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(env *environment.Environment, filename string, decimation int) (*WavWriter, error) {
	if decimation < 1 {
		return nil, curated.Errorf("wavwriter: decimation must be at least 1 (%d)", decimation)
	}

	aw := &WavWriter{
		env:        env,
		filename:   filename,
		decimation: decimation,
		buffer:     make([]int, 0),
	}

	return aw, nil
}

// SampleRate returns the sample rate of the WAV file.
func (aw *WavWriter) SampleRate() int {
	return clocks.TicksPerSec / aw.decimation
}

// SetAudio should be called with the output of every call to
// hardware.Console.Step().
func (aw *WavWriter) SetAudio(pulse uint8, noise uint8) {
	aw.count++
	if aw.count < aw.decimation {
		return
	}
	aw.count = 0

	aw.buffer = append(aw.buffer, int(pulse)*sampleScale, int(noise)*sampleScale)
}

// Len returns the number of samples in each channel.
func (aw *WavWriter) Len() int {
	return len(aw.buffer) / numChannels
}

// EndMixing writes the collected audio to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
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

	enc := wav.NewEncoder(f, aw.SampleRate(), bitDepth, numChannels, pcmFormat)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  aw.SampleRate(),
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(aw.env, "wavwriter", "writing audio to %s", aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	// the header is completed when the encoder is closed
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// Reset discards all collected audio.
func (aw *WavWriter) Reset() {
	aw.count = 0
	aw.buffer = aw.buffer[:0]
}
