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

// Package undocumented implements the undocumented registers found only in
// the Game Boy Color. The registers have no known function but programs can
// detect the GBC by probing the bits that are writable.
//
//	FF6C	bit 0 writable, bits 1-7 always set
//	FF72	fully writable
//	FF73	fully writable
//	FF74	fully writable
//	FF75	bits 4-6 writable, other bits read 0x8f
//	FF76	accepted, writes ignored
package undocumented

import (
	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/hardware/memory/bus"
	"github.com/gopherboy/gopherboy/hardware/memory/memorymap"
	"github.com/gopherboy/gopherboy/hardware/memory/ram"
	"github.com/gopherboy/gopherboy/hardware/snapshot"
)

const (
	fixed6C = uint8(0xfe)
	mask6C  = uint8(0x01)
	fixed75 = uint8(0x8f)
	mask75  = uint8(0x70)
)

// Registers is the undocumented register block.
type Registers struct {
	ram *ram.RAM
	r6C uint8
}

// State is the rewindable state of the undocumented registers.
type State struct {
	RAM *ram.State
	R6C uint8
}

// Tag implements the snapshot.State interface.
func (s *State) Tag() snapshot.Tag {
	return snapshot.Undocumented
}

// NewRegisters is the preferred method of initialisation for the Registers
// type.
func NewRegisters() *Registers {
	reg := &Registers{
		ram: ram.NewRAM(memorymap.OriginUndocumented, memorymap.UndocumentedSize),
		r6C: fixed6C,
	}

	// the addresses are known to be in range
	_ = reg.ram.Write(memorymap.Undocumented74, 0xff)
	_ = reg.ram.Write(memorymap.Undocumented75, fixed75)

	return reg
}

// Label implements the bus.Label interface.
func (reg *Registers) Label() string {
	return "Undocumented GBC"
}

// Accepts implements the bus.AddressSpace interface.
func (reg *Registers) Accepts(address uint16) bool {
	return address == memorymap.Undocumented6C || reg.ram.Accepts(address)
}

// Read implements the bus.AddressSpace interface.
func (reg *Registers) Read(address uint16) (uint8, error) {
	if address == memorymap.Undocumented6C {
		return reg.r6C, nil
	}
	if reg.ram.Accepts(address) {
		return reg.ram.Read(address)
	}
	return 0, curated.Errorf(bus.OutOfRange, address)
}

// Write implements the bus.AddressSpace interface.
func (reg *Registers) Write(address uint16, data uint8) error {
	switch address {
	case memorymap.Undocumented6C:
		reg.r6C = fixed6C | (data & mask6C)
	case memorymap.Undocumented72, memorymap.Undocumented73, memorymap.Undocumented74:
		return reg.ram.Write(address, data)
	case memorymap.Undocumented75:
		return reg.ram.Write(address, fixed75|(data&mask75))
	default:
		if !reg.Accepts(address) {
			return curated.Errorf(bus.OutOfRange, address)
		}
	}
	return nil
}

// Snapshot implements the snapshot.Originator interface.
func (reg *Registers) Snapshot() snapshot.State {
	return &State{
		RAM: reg.ram.Snapshot().(*ram.State),
		R6C: reg.r6C,
	}
}

// Restore implements the snapshot.Originator interface.
func (reg *Registers) Restore(s snapshot.State) error {
	st, err := snapshot.As[*State](s, snapshot.Undocumented)
	if err != nil {
		return err
	}

	// a nil *ram.State must be passed as a nil State for the check to fail
	var rs snapshot.State
	if st.RAM != nil {
		rs = st.RAM
	}
	if err := reg.ram.Restore(rs); err != nil {
		return err
	}

	reg.r6C = st.R6C
	return nil
}
