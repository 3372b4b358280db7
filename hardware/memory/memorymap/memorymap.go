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

// Package memorymap names the fixed address ranges of the Game Boy memory
// map. Origin values are inclusive and Memtop values are inclusive.
package memorymap

// cartridge areas.
const (
	OriginCartROM = uint16(0x0000)
	MemtopCartROM = uint16(0x7fff)
	OriginCartRAM = uint16(0xa000)
	MemtopCartRAM = uint16(0xbfff)
)

// sound mode 1 (pulse with frequency sweep). NR10 to NR14.
const (
	OriginPulse = uint16(0xff10)
	MemtopPulse = uint16(0xff14)
)

// sound mode 4 (noise). the first address of the window is not used by the
// hardware but is accepted by the channel so that the five register layout
// is the same for every channel. NR40 (unused) to NR44.
const (
	OriginNoise = uint16(0xff1f)
	MemtopNoise = uint16(0xff23)
)

// undocumented GBC registers. a single register and a contiguous block.
const (
	Undocumented6C      = uint16(0xff6c)
	OriginUndocumented  = uint16(0xff72)
	MemtopUndocumented  = uint16(0xff76)
	Undocumented72      = uint16(0xff72)
	Undocumented73      = uint16(0xff73)
	Undocumented74      = uint16(0xff74)
	Undocumented75      = uint16(0xff75)
	UndocumentedSize    = int(MemtopUndocumented-OriginUndocumented) + 1
)

// Memtop is the top of the address space.
const Memtop = uint16(0xffff)
