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
	"github.com/gopherboy/gopherboy/hardware/clocks"
	"github.com/gopherboy/gopherboy/hardware/snapshot"
)

// the length counter is clocked at 256Hz
const lengthDivider = clocks.TicksPerSec / 256

// LengthCounter silences a channel once the programmed length has expired.
type LengthCounter struct {
	// the value loaded when a length of zero is written
	fullLength int

	state LengthState
}

// LengthState is the rewindable state of the LengthCounter.
type LengthState struct {
	Length  int
	Divider int
	Enabled bool
}

// Tag implements the snapshot.State interface.
func (s *LengthState) Tag() snapshot.Tag {
	return snapshot.LengthCounter
}

// NewLengthCounter is the preferred method of initialisation for the
// LengthCounter type.
func NewLengthCounter(fullLength int) *LengthCounter {
	return &LengthCounter{
		fullLength: fullLength,
	}
}

// Start is called on power on. The divider is set to half way through its
// period.
func (lc *LengthCounter) Start() {
	lc.state.Divider = 8192
}

// Reset the counter. Used by the GBC when the channel is started.
func (lc *LengthCounter) Reset() {
	lc.state.Enabled = true
	lc.state.Divider = 0
	lc.state.Length = 0
}

// Tick advances the counter by one master clock cycle.
func (lc *LengthCounter) Tick() {
	lc.state.Divider++
	if lc.state.Divider == lengthDivider {
		lc.state.Divider = 0
		if lc.state.Enabled && lc.state.Length > 0 {
			lc.state.Length--
		}
	}
}

// SetLength sets the remaining length. A length of zero loads the full
// length of the counter.
func (lc *LengthCounter) SetLength(length int) {
	if length == 0 {
		lc.state.Length = lc.fullLength
	} else {
		lc.state.Length = length
	}
}

// SetNR4 reacts to a write to the NRx4 register of the channel. Bit 6 enables
// the counter and bit 7 is the trigger.
//
// Enabling the counter while the divider is in the first half of its period
// clocks the counter an extra time. Triggering a counter that has expired
// reloads it.
func (lc *LengthCounter) SetNR4(data uint8) {
	enable := data&0x40 == 0x40
	trigger := data&0x80 == 0x80
	firstHalf := lc.state.Divider < lengthDivider/2

	if lc.state.Enabled {
		if lc.state.Length == 0 && trigger {
			if enable && firstHalf {
				lc.SetLength(lc.fullLength - 1)
			} else {
				lc.SetLength(lc.fullLength)
			}
		}
	} else if enable {
		if lc.state.Length > 0 && firstHalf {
			lc.state.Length--
		}
		if lc.state.Length == 0 && trigger && firstHalf {
			lc.SetLength(lc.fullLength - 1)
		}
	} else {
		if lc.state.Length == 0 && trigger {
			lc.SetLength(lc.fullLength)
		}
	}

	lc.state.Enabled = enable
}

// Value returns the remaining length.
func (lc *LengthCounter) Value() int {
	return lc.state.Length
}

// IsEnabled returns true if the counter is counting.
func (lc *LengthCounter) IsEnabled() bool {
	return lc.state.Enabled
}

// Snapshot implements the snapshot.Originator interface.
func (lc *LengthCounter) Snapshot() snapshot.State {
	s := lc.state
	return &s
}

// Restore implements the snapshot.Originator interface.
func (lc *LengthCounter) Restore(s snapshot.State) error {
	st, err := snapshot.As[*LengthState](s, snapshot.LengthCounter)
	if err != nil {
		return err
	}
	lc.state = *st
	return nil
}
