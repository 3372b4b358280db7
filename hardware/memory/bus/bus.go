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

// Package bus defines the memory bus concept. For an explanation see the
// memory package documentation.
package bus

// AddressSpace is implemented by every hardware component that is visible on
// the memory bus. The set of addresses that a component accepts is fixed
// when the component is created.
//
// Read() and Write() return an error for addresses that the component does
// not accept. The memory bus never routes such an address to a component so
// the error indicates a misconfiguration. Writes to an accepted address that
// is read-only, or to read-only bits of an address, are absorbed without
// error.
type AddressSpace interface {
	Accepts(address uint16) bool
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// DebuggerBus defines the meta-operations for the memory bus. Think of these
// functions as "debugging" functions, that is operations outside of the
// normal operation of the machine. Unlike Read() and Write() they return an
// error for unmapped addresses.
type DebuggerBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}

// Label is implemented by components that have a name suitable for
// presenting to the user.
type Label interface {
	Label() string
}

// OutOfRange is the error pattern used when an address is given to a
// component that does not accept it.
const OutOfRange = "bus: address out of range: %#04x"
