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

// Package hardware is the base package for the Game Boy emulation. It and its
// sub-packages contain everything required for a headless emulation of the
// memory bus and sound generators.
//
// The Console type is the root of the emulation. It owns the memory bus and
// every component attached to it. Step() advances the components by one
// master clock cycle in a fixed order.
//
// The Console implements the snapshot.Originator interface. The Console
// State contains the state of the memory bus, which in turn nests the state
// of every stateful component on the bus.
package hardware
