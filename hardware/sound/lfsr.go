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

package sound

import (
	"fmt"

	"github.com/gopherboy/gopherboy/hardware/snapshot"
)

// the value of the shift register after a reset
const lfsrSeed = 0x7fff

// LFSR is the 15 bit linear feedback shift register of the noise channel.
type LFSR struct {
	state LFSRState
}

// LFSRState is the rewindable state of the LFSR.
type LFSRState struct {
	Value uint16
}

// Tag implements the snapshot.State interface.
func (s *LFSRState) Tag() snapshot.Tag {
	return snapshot.LFSR
}

// NewLFSR is the preferred method of initialisation for the LFSR type.
func NewLFSR() *LFSR {
	return &LFSR{
		state: LFSRState{
			Value: lfsrSeed,
		},
	}
}

func (lfsr *LFSR) String() string {
	return fmt.Sprintf("%015b", lfsr.state.Value)
}

// Start is called on power on.
func (lfsr *LFSR) Start() {
	lfsr.Reset()
}

// Reset the shift register to the seed value.
func (lfsr *LFSR) Reset() {
	lfsr.state.Value = lfsrSeed
}

// NextBit shifts the register and returns the new output bit. In narrow mode
// the feedback bit is also placed in bit 6.
func (lfsr *LFSR) NextBit(narrow bool) uint8 {
	v := lfsr.state.Value
	x := (v & 0x01) ^ ((v & 0x02) >> 1)
	v >>= 1
	v |= x << 14
	if narrow {
		v |= x << 6
	}
	lfsr.state.Value = v

	// the output is the inverse of bit 0
	return uint8(^v & 0x01)
}

// Snapshot implements the snapshot.Originator interface.
func (lfsr *LFSR) Snapshot() snapshot.State {
	s := lfsr.state
	return &s
}

// Restore implements the snapshot.Originator interface.
func (lfsr *LFSR) Restore(s snapshot.State) error {
	st, err := snapshot.As[*LFSRState](s, snapshot.LFSR)
	if err != nil {
		return err
	}
	lfsr.state = *st
	return nil
}
