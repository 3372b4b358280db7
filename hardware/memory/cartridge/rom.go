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

package cartridge

import (
	"fmt"

	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/hardware/memory/bus"
	"github.com/gopherboy/gopherboy/hardware/memory/memorymap"
	"github.com/gopherboy/gopherboy/hardware/snapshot"
)

// Rom is the controller for cartridges without any bank switching hardware.
// The first 32k of the image is mapped into the ROM area. The cartridge RAM
// area is accepted but there is no RAM and reads always return zero.
//
// The image is never changed and so there is no rewindable state.
type Rom struct {
	mappingID string

	// the image is padded to the full size of the ROM area
	rom []uint8
}

// NewRom is the preferred method of initialisation for the Rom type. The
// data is copied and can be safely reused by the caller.
func NewRom(data []uint8) (*Rom, error) {
	cart := &Rom{
		mappingID: "ROM",
	}

	if len(data) == 0 {
		return nil, curated.Errorf(EmptyImage, cart.mappingID)
	}

	cart.rom = make([]uint8, int(memorymap.MemtopCartROM)+1)
	copy(cart.rom, data)

	return cart, nil
}

func (cart *Rom) String() string {
	return fmt.Sprintf("%s [%d bytes]", cart.mappingID, len(cart.rom))
}

// ID implements the MemoryController interface.
func (cart *Rom) ID() string {
	return cart.mappingID
}

// Label implements the bus.Label interface.
func (cart *Rom) Label() string {
	return "Cartridge " + cart.mappingID
}

// Accepts implements the bus.AddressSpace interface.
func (cart *Rom) Accepts(address uint16) bool {
	return address <= memorymap.MemtopCartROM ||
		(address >= memorymap.OriginCartRAM && address <= memorymap.MemtopCartRAM)
}

// Read implements the bus.AddressSpace interface.
func (cart *Rom) Read(address uint16) (uint8, error) {
	if address <= memorymap.MemtopCartROM {
		return cart.rom[address], nil
	}
	if address >= memorymap.OriginCartRAM && address <= memorymap.MemtopCartRAM {
		return 0, nil
	}
	return 0, curated.Errorf(bus.OutOfRange, address)
}

// Write implements the bus.AddressSpace interface. Writes to either area are
// ignored.
func (cart *Rom) Write(address uint16, data uint8) error {
	if !cart.Accepts(address) {
		return curated.Errorf(bus.OutOfRange, address)
	}
	return nil
}

// Snapshot implements the snapshot.Originator interface. The Rom controller
// has no mutable state and the returned State is always nil.
func (cart *Rom) Snapshot() snapshot.State {
	return nil
}

// Restore implements the snapshot.Originator interface. Only a nil State is
// accepted.
func (cart *Rom) Restore(s snapshot.State) error {
	return snapshot.Check(s, snapshot.None)
}
