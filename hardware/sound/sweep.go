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

	"github.com/gopherboy/gopherboy/hardware/clocks"
	"github.com/gopherboy/gopherboy/hardware/snapshot"
)

// the sweep unit is clocked at 128Hz
const sweepDivider = clocks.TicksPerSec / 128

// the highest frequency value that can be represented in NRx3 and NRx4
const maxFrequency = 2047

// FrequencySweep modulates the frequency of the pulse channel.
//
// The unit keeps its own copy of the NR13 and NR14 registers and writes the
// new frequency back into them each time the sweep is applied. The channel
// reads the frequency from these copies.
type FrequencySweep struct {
	state SweepState
}

// SweepState is the rewindable state of the FrequencySweep.
type SweepState struct {
	// the fields of the NR10 register
	Period uint8
	Negate bool
	Shift  uint8

	Timer           int
	ShadowFrequency int

	// copies of the frequency registers
	NR13 uint8
	NR14 uint8

	Divider int

	Overflow       bool
	CounterEnabled bool

	// a frequency calculation has been made in negate mode since the last
	// trigger
	Negging bool
}

// Tag implements the snapshot.State interface.
func (s *SweepState) Tag() snapshot.Tag {
	return snapshot.FrequencySweep
}

// NewFrequencySweep is the preferred method of initialisation for the
// FrequencySweep type.
func NewFrequencySweep() *FrequencySweep {
	return &FrequencySweep{}
}

func (sw *FrequencySweep) String() string {
	return fmt.Sprintf("period=%d negate=%v shift=%d shadow=%#03x", sw.state.Period, sw.state.Negate, sw.state.Shift, sw.state.ShadowFrequency)
}

// Start is called on power on. The sweep is idle until the next trigger.
func (sw *FrequencySweep) Start() {
	sw.state.CounterEnabled = false
	sw.state.Divider = 8192
}

// Trigger is called when the channel is triggered.
func (sw *FrequencySweep) Trigger() {
	sw.state.Negging = false
	sw.state.Overflow = false

	sw.state.ShadowFrequency = int(sw.state.NR13) | int(sw.state.NR14&0x07)<<8
	sw.state.Timer = sw.timerPeriod()
	sw.state.CounterEnabled = sw.state.Period != 0 || sw.state.Shift != 0

	// the result is discarded. the calculation is made only to detect an
	// immediate overflow
	if sw.state.Shift > 0 {
		_ = sw.calculate()
	}
}

// a period of zero is treated as a period of eight by the timer
func (sw *FrequencySweep) timerPeriod() int {
	if sw.state.Period == 0 {
		return 8
	}
	return int(sw.state.Period)
}

// SetNR10 reacts to a write to the NR10 register. Bits 4 to 6 are the period,
// bit 3 is the negate flag and bits 0 to 2 are the shift.
//
// Clearing the negate flag after a calculation has been made in negate mode
// disables the channel.
func (sw *FrequencySweep) SetNR10(data uint8) {
	sw.state.Period = (data >> 4) & 0x07
	sw.state.Negate = data&0x08 == 0x08
	sw.state.Shift = data & 0x07
	if sw.state.Negging && !sw.state.Negate {
		sw.state.Overflow = true
	}
}

// SetNR13 reacts to a write to the NR13 register.
func (sw *FrequencySweep) SetNR13(data uint8) {
	sw.state.NR13 = data
}

// SetNR14 reacts to a write to the NR14 register. Bit 7 triggers the sweep.
func (sw *FrequencySweep) SetNR14(data uint8) {
	sw.state.NR14 = data
	if data&0x80 == 0x80 {
		sw.Trigger()
	}
}

// NR13 returns the copy of the NR13 register.
func (sw *FrequencySweep) NR13() uint8 {
	return sw.state.NR13
}

// NR14 returns the copy of the NR14 register.
func (sw *FrequencySweep) NR14() uint8 {
	return sw.state.NR14
}

// Tick advances the sweep by one master clock cycle.
func (sw *FrequencySweep) Tick() {
	sw.state.Divider++
	if sw.state.Divider != sweepDivider {
		return
	}
	sw.state.Divider = 0

	if !sw.state.CounterEnabled {
		return
	}

	sw.state.Timer--
	if sw.state.Timer != 0 {
		return
	}
	sw.state.Timer = sw.timerPeriod()

	if sw.state.Period == 0 {
		return
	}

	freq := sw.calculate()
	if !sw.state.Overflow && sw.state.Shift != 0 {
		sw.state.ShadowFrequency = freq
		sw.state.NR13 = uint8(freq & 0xff)
		sw.state.NR14 = uint8((freq & 0x700) >> 8)

		// overflow is checked again against the new frequency
		_ = sw.calculate()
	}
}

// calculate the next frequency and check for overflow. the shadow frequency
// is not changed.
func (sw *FrequencySweep) calculate() int {
	freq := sw.state.ShadowFrequency >> sw.state.Shift
	if sw.state.Negate {
		freq = sw.state.ShadowFrequency - freq
		sw.state.Negging = true
	} else {
		freq = sw.state.ShadowFrequency + freq
	}
	if freq > maxFrequency {
		sw.state.Overflow = true
	}
	return freq
}

// IsEnabled returns false if the sweep has overflowed. The pulse channel is
// disabled when the sweep is not enabled.
func (sw *FrequencySweep) IsEnabled() bool {
	return !sw.state.Overflow
}

// CounterEnabled returns true if the sweep is running.
func (sw *FrequencySweep) CounterEnabled() bool {
	return sw.state.CounterEnabled
}

// Negging returns true if a calculation has been made in negate mode since
// the last trigger.
func (sw *FrequencySweep) Negging() bool {
	return sw.state.Negging
}

// Overflow returns true if the sweep has overflowed since the last trigger.
func (sw *FrequencySweep) Overflow() bool {
	return sw.state.Overflow
}

// Snapshot implements the snapshot.Originator interface.
func (sw *FrequencySweep) Snapshot() snapshot.State {
	s := sw.state
	return &s
}

// Restore implements the snapshot.Originator interface.
func (sw *FrequencySweep) Restore(s snapshot.State) error {
	st, err := snapshot.As[*SweepState](s, snapshot.FrequencySweep)
	if err != nil {
		return err
	}
	sw.state = *st
	return nil
}
