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
	"github.com/gopherboy/gopherboy/hardware/snapshot"
)

// the divisor for each value of the divisor code in NR43
var divisors = [8]int{8, 16, 32, 48, 64, 80, 96, 112}

// PolynomialCounter clocks the LFSR of the noise channel.
type PolynomialCounter struct {
	state PolynomialState
}

// PolynomialState is the rewindable state of the PolynomialCounter.
type PolynomialState struct {
	ShiftedDivisor int
	Counter        int
}

// Tag implements the snapshot.State interface.
func (s *PolynomialState) Tag() snapshot.Tag {
	return snapshot.PolynomialCounter
}

// NewPolynomialCounter is the preferred method of initialisation for the
// PolynomialCounter type.
func NewPolynomialCounter() *PolynomialCounter {
	return &PolynomialCounter{}
}

// SetNR43 reacts to a write to the NR43 register. Bits 4 to 7 are the clock
// shift and bits 0 to 2 are the divisor code. Bit 3 selects the width of the
// LFSR and is not used by the counter.
func (pc *PolynomialCounter) SetNR43(data uint8) {
	shift := data >> 4
	pc.state.ShiftedDivisor = divisors[data&0x07] << shift
	pc.state.Counter = 1
}

// Tick advances the counter by one master clock cycle. Returns true if the
// counter has expired, in which case it is reloaded.
//
// The counter is inert until NR43 has been written.
func (pc *PolynomialCounter) Tick() bool {
	pc.state.Counter--
	if pc.state.Counter == 0 {
		pc.state.Counter = pc.state.ShiftedDivisor
		return true
	}
	return false
}

// Snapshot implements the snapshot.Originator interface.
func (pc *PolynomialCounter) Snapshot() snapshot.State {
	s := pc.state
	return &s
}

// Restore implements the snapshot.Originator interface.
func (pc *PolynomialCounter) Restore(s snapshot.State) error {
	st, err := snapshot.As[*PolynomialState](s, snapshot.PolynomialCounter)
	if err != nil {
		return err
	}
	pc.state = *st
	return nil
}
