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

// Package ram implements a raw block of addressable bytes. It is used by
// every memory area that is nothing more than storage.
package ram

import (
	"encoding/hex"
	"fmt"

	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/hardware/memory/bus"
	"github.com/gopherboy/gopherboy/hardware/snapshot"
)

// RAM is a block of memory starting at the origin address.
type RAM struct {
	origin uint16
	state  *State
}

// State is the rewindable state of a RAM block.
type State struct {
	Data []uint8
}

// Tag implements the snapshot.State interface.
func (s *State) Tag() snapshot.Tag {
	return snapshot.RAM
}

// NewRAM is the preferred method of initialisation for the RAM type. The
// block must fit inside the 16bit address space.
func NewRAM(origin uint16, size int) *RAM {
	if size <= 0 || int(origin)+size > 0x10000 {
		panic(fmt.Sprintf("ram: block of %d bytes does not fit at %#04x", size, origin))
	}

	return &RAM{
		origin: origin,
		state: &State{
			Data: make([]uint8, size),
		},
	}
}

func (ram *RAM) String() string {
	return hex.Dump(ram.state.Data)
}

// Label implements the bus.Label interface.
func (ram *RAM) Label() string {
	return fmt.Sprintf("RAM %#04x-%#04x", ram.origin, ram.Memtop())
}

// Origin returns the first address of the block.
func (ram *RAM) Origin() uint16 {
	return ram.origin
}

// Memtop returns the last address of the block.
func (ram *RAM) Memtop() uint16 {
	return ram.origin + uint16(len(ram.state.Data)-1)
}

// Size of the block in bytes.
func (ram *RAM) Size() int {
	return len(ram.state.Data)
}

// Accepts implements the bus.AddressSpace interface.
func (ram *RAM) Accepts(address uint16) bool {
	return address >= ram.origin && int(address-ram.origin) < len(ram.state.Data)
}

// Read implements the bus.AddressSpace interface.
func (ram *RAM) Read(address uint16) (uint8, error) {
	if !ram.Accepts(address) {
		return 0, curated.Errorf(bus.OutOfRange, address)
	}
	return ram.state.Data[address-ram.origin], nil
}

// Write implements the bus.AddressSpace interface.
func (ram *RAM) Write(address uint16, data uint8) error {
	if !ram.Accepts(address) {
		return curated.Errorf(bus.OutOfRange, address)
	}
	ram.state.Data[address-ram.origin] = data
	return nil
}

// Snapshot implements the snapshot.Originator interface.
func (ram *RAM) Snapshot() snapshot.State {
	n := &State{
		Data: make([]uint8, len(ram.state.Data)),
	}
	copy(n.Data, ram.state.Data)
	return n
}

// Restore implements the snapshot.Originator interface.
func (ram *RAM) Restore(s snapshot.State) error {
	st, err := snapshot.As[*State](s, snapshot.RAM)
	if err != nil {
		return err
	}
	if len(st.Data) != len(ram.state.Data) {
		return curated.Errorf(snapshot.InvalidType,
			fmt.Sprintf("ram of %d bytes", len(st.Data)),
			fmt.Sprintf("ram of %d bytes", len(ram.state.Data)))
	}
	copy(ram.state.Data, st.Data)
	return nil
}
