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

// Package cartridge implements the memory controllers found in Game Boy
// cartridges. A memory controller maps the cartridge ROM, and any RAM the
// cartridge has, into the address space.
//
// Selecting the controller for a cartridge file is the job of the
// cartridge loader and is not done here.
package cartridge

import (
	"github.com/gopherboy/gopherboy/hardware/memory/bus"
	"github.com/gopherboy/gopherboy/hardware/snapshot"
)

// MemoryController is implemented by all cartridge memory controllers.
type MemoryController interface {
	bus.AddressSpace
	snapshot.Originator

	// ID is a short name for the controller type.
	ID() string
}

// EmptyImage is returned when a controller is created with no data.
const EmptyImage = "cartridge: %s: empty cartridge image"
