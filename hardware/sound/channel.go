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

	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/hardware/memory/bus"
	"github.com/gopherboy/gopherboy/hardware/snapshot"
)

// the number of registers in the window of each channel
const numRegisters = 5

// register indexes inside the window of a channel
const (
	nrx0 = iota
	nrx1
	nrx2
	nrx3
	nrx4
)

// channel contains the registers and flags common to every sound channel.
type channel struct {
	label  string
	origin uint16

	// GBC hardware resets the length counter when the channel is started
	gbc bool

	length *LengthCounter

	registers      [numRegisters]uint8
	channelEnabled bool
	dacEnabled     bool
}

// ChannelState is the rewindable state of the registers and flags common to
// every sound channel.
type ChannelState struct {
	Registers      [numRegisters]uint8
	ChannelEnabled bool
	DACEnabled     bool
	Length         *LengthState
}

// Tag implements the snapshot.State interface.
func (s *ChannelState) Tag() snapshot.Tag {
	return snapshot.Channel
}

func newChannel(label string, origin uint16, fullLength int, gbc bool) channel {
	return channel{
		label:  label,
		origin: origin,
		gbc:    gbc,
		length: NewLengthCounter(fullLength),
	}
}

func (ch *channel) String() string {
	return fmt.Sprintf("%s: % x", ch.label, ch.registers)
}

// Label implements the bus.Label interface.
func (ch *channel) Label() string {
	return ch.label
}

// Accepts implements the bus.AddressSpace interface.
func (ch *channel) Accepts(address uint16) bool {
	return address >= ch.origin && address-ch.origin < numRegisters
}

// Read implements the bus.AddressSpace interface.
func (ch *channel) Read(address uint16) (uint8, error) {
	if !ch.Accepts(address) {
		return 0, curated.Errorf(bus.OutOfRange, address)
	}
	return ch.registers[address-ch.origin], nil
}

// store the data in the register at the address and return the register
// index
func (ch *channel) store(address uint16, data uint8) (int, error) {
	if !ch.Accepts(address) {
		return 0, curated.Errorf(bus.OutOfRange, address)
	}
	reg := int(address - ch.origin)
	ch.registers[reg] = data
	return reg, nil
}

// writeNR4 handles the parts of an NRx4 write common to every channel.
// Returns true if the write triggers the channel.
func (ch *channel) writeNR4(data uint8) bool {
	ch.length.SetNR4(data)
	if data&0x80 == 0x80 {
		ch.channelEnabled = ch.dacEnabled
		return true
	}
	return false
}

// writeDAC sets the DAC from a write to the NRx2 register. The DAC is
// enabled if any of the top five bits are set. Disabling the DAC disables
// the channel.
func (ch *channel) writeDAC(data uint8) {
	ch.dacEnabled = data&0xf8 != 0
	ch.channelEnabled = ch.channelEnabled && ch.dacEnabled
}

// startLength is called when the channel is started.
func (ch *channel) startLength() {
	if ch.gbc {
		ch.length.Reset()
	}
	ch.length.Start()
}

// updateLength ticks the length counter and disables the channel if the
// length has expired. Returns whether the channel is enabled.
func (ch *channel) updateLength() bool {
	ch.length.Tick()
	if !ch.length.IsEnabled() {
		return ch.channelEnabled
	}
	if ch.channelEnabled && ch.length.Value() == 0 {
		ch.channelEnabled = false
	}
	return ch.channelEnabled
}

// frequency returns the period of the channel as described by the
// frequency value in the NRx3 and NRx4 registers.
func frequency(nr3 uint8, nr4 uint8) int {
	return 2048 - (int(nr3) | int(nr4&0x07)<<8)
}

// Stop disables the channel.
func (ch *channel) Stop() {
	ch.channelEnabled = false
}

// IsEnabled returns true if the channel and the DAC are both enabled.
func (ch *channel) IsEnabled() bool {
	return ch.channelEnabled && ch.dacEnabled
}

// DACEnabled returns true if the DAC of the channel is enabled.
func (ch *channel) DACEnabled() bool {
	return ch.dacEnabled
}

// Length returns the length counter of the channel.
func (ch *channel) Length() *LengthCounter {
	return ch.length
}

func (ch *channel) snapshot() *ChannelState {
	return &ChannelState{
		Registers:      ch.registers,
		ChannelEnabled: ch.channelEnabled,
		DACEnabled:     ch.dacEnabled,
		Length:         ch.length.Snapshot().(*LengthState),
	}
}

// check the state and every nested state without changing the channel
func (ch *channel) check(s *ChannelState) error {
	if _, err := snapshot.As[*ChannelState](s, snapshot.Channel); err != nil {
		return err
	}
	_, err := snapshot.As[*LengthState](s.Length, snapshot.LengthCounter)
	return err
}

// restore a state that has already been checked
func (ch *channel) restore(s *ChannelState) {
	ch.registers = s.Registers
	ch.channelEnabled = s.ChannelEnabled
	ch.dacEnabled = s.DACEnabled
	ch.length.state = *s.Length
}
