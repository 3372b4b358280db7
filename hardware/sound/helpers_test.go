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

package sound_test

import (
	"testing"

	"github.com/gopherboy/gopherboy/hardware/memory/bus"
	"github.com/gopherboy/gopherboy/test"
)

func write(t *testing.T, area bus.AddressSpace, address uint16, data uint8) {
	t.Helper()
	test.DemandSuccess(t, area.Write(address, data))
}

func read(t *testing.T, area bus.AddressSpace, address uint16) uint8 {
	t.Helper()
	v, err := area.Read(address)
	test.DemandSuccess(t, err)
	return v
}

type ticker interface {
	Tick() uint8
}

// run the channel for the number of ticks and return the output samples
func run(ch ticker, n int) []uint8 {
	out := make([]uint8, n)
	for i := range out {
		out[i] = ch.Tick()
	}
	return out
}

func expectSamples(t *testing.T, a []uint8, b []uint8) {
	t.Helper()
	test.DemandEquality(t, len(a), len(b))
	for i := range a {
		if !test.ExpectEquality(t, a[i], b[i], i) {
			return
		}
	}
}
