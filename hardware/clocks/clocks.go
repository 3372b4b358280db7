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

// Package clocks defines the master clock of the emulated hardware and the
// derived rates used by the slower internal dividers.
package clocks

// TicksPerSec is the master clock rate in Hz. Every stateful component is
// ticked once per master clock cycle.
const TicksPerSec = 4194304

// TicksPerFrame is the number of master clock cycles in one video frame.
const TicksPerFrame = 70224
