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

// Package memory implements the Game Boy memory bus. The bus sub-package
// defines the interfaces used by the memory bus and the memorymap package
// defines the fixed address ranges.
//
// The memory is made up of areas. An area is any component that implements
// the bus.AddressSpace interface. The areas are supplied when the Memory is
// created and are fixed for the lifetime of the Memory.
//
//	                 ---- Cartridge
//	                |
//	                |---- Sound Mode 1
//	                |
//	CPU ---- bus ---*---- Sound Mode 4
//	                |
//	                |---- Undocumented GBC registers
//	                |
//	                 ---- ...
//
// The asterisk indicates the address decoder. When the Memory is created the
// decoder asks every area whether it accepts every address. An address that
// is accepted by more than one area is a configuration error and the Memory
// will not be created.
//
// Areas that also implement the snapshot.Originator interface take part in
// the Memory snapshot.
package memory
