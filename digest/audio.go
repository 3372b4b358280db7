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

package digest

import (
	"crypto/sha1"
	"fmt"
)

// the length of the buffer used to collect samples before they are hashed.
// each call to SetAudio() adds two samples
const audioBufferLength = 1024 * 2

// to allow us to create digests on audio streams longer than
// audioBufferLength, we'll stuff the previous digest value into the first part
// of the buffer array and make sure we include it when we create the next
// digest value
const audioBufferStart = sha1.Size

// Audio produces a digest of the output of the sound channels.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	dig := &Audio{
		buffer: make([]uint8, audioBufferStart+audioBufferLength),
	}
	dig.ResetDigest()
	return dig
}

// Hash implements digest.Digest interface. Samples that have not been
// flushed are included in the hash.
func (dig *Audio) Hash() string {
	if dig.bufferCt > audioBufferStart {
		return fmt.Sprintf("%x", sha1.Sum(dig.buffer[:dig.bufferCt]))
	}
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Audio) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}

// SetAudio should be called with the output of every call to
// hardware.Console.Step().
func (dig *Audio) SetAudio(pulse uint8, noise uint8) {
	dig.buffer[dig.bufferCt] = pulse
	dig.buffer[dig.bufferCt+1] = noise
	dig.bufferCt += 2

	if dig.bufferCt >= len(dig.buffer) {
		dig.flush()
	}
}

func (dig *Audio) flush() {
	dig.digest = sha1.Sum(dig.buffer)
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}
