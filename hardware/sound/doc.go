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

// Package sound implements the sound generators of the Game Boy APU. Each
// sound channel is a bus.AddressSpace covering its five register window and
// is advanced by calling Tick() once per master clock cycle. The value
// returned by Tick() is the output sample of the channel for that cycle, in
// the range 0 to 15.
//
// The channels are built from small independent units:
//
//	LengthCounter      silences the channel after a programmable duration
//	VolumeEnvelope     steps the volume up or down at a programmable rate
//	FrequencySweep     modulates the frequency of the pulse channel
//	PolynomialCounter  clocks the LFSR of the noise channel
//	LFSR               the pseudo-random bit stream of the noise channel
//
// Every unit implements the snapshot.Originator interface. The channels nest
// the states of their units in their own state and validate every nested
// state before any unit is changed.
//
// Only sound mode 1 (Pulse) and sound mode 4 (Noise) are implemented.
package sound
