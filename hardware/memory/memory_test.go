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

package memory_test

import (
	"strings"
	"testing"

	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/hardware/memory"
	"github.com/gopherboy/gopherboy/hardware/memory/bus"
	"github.com/gopherboy/gopherboy/hardware/memory/cartridge"
	"github.com/gopherboy/gopherboy/hardware/memory/ram"
	"github.com/gopherboy/gopherboy/hardware/memory/undocumented"
	"github.com/gopherboy/gopherboy/hardware/snapshot"
	"github.com/gopherboy/gopherboy/test"
)

func newCart(t *testing.T) *cartridge.Rom {
	t.Helper()
	data := make([]uint8, 0x8000)
	for i := range data {
		data[i] = uint8(i)
	}
	cart, err := cartridge.NewRom(data)
	test.DemandSuccess(t, err)
	return cart
}

func TestNoOverlap(t *testing.T) {
	areas := []bus.AddressSpace{
		newCart(t),
		ram.NewRAM(0xc000, 0x2000),
		undocumented.NewRegisters(),
		ram.NewRAM(0xff80, 0x7f),
	}

	mem, err := memory.NewMemory(nil, areas...)
	test.DemandSuccess(t, err)

	// exactly one area accepts every mapped address and the decoder agrees
	for a := 0; a <= 0xffff; a++ {
		address := uint16(a)
		n := 0
		var accepted bus.AddressSpace
		for _, area := range areas {
			if area.Accepts(address) {
				accepted = area
				n++
			}
		}
		test.DemandEquality(t, n <= 1, true, address)

		area, ok := mem.Area(address)
		test.ExpectEquality(t, ok, n == 1, address)
		if ok {
			test.ExpectEquality(t, area, accepted, address)
		}
	}
}

func TestOverlap(t *testing.T) {
	_, err := memory.NewMemory(nil, newCart(t), ram.NewRAM(0xa000, 0x10))
	test.ExpectSuccess(t, curated.Is(err, memory.Overlap))
	test.ExpectEquality(t, err.Error(), "memory: address 0xa000 accepted by Cartridge ROM and RAM 0xa000-0xa00f")

	_, err = memory.NewMemory(nil, ram.NewRAM(0xff70, 4), undocumented.NewRegisters())
	test.ExpectSuccess(t, curated.Is(err, memory.Overlap))
}

func TestDispatch(t *testing.T) {
	wram := ram.NewRAM(0xc000, 0x2000)
	mem, err := memory.NewMemory(nil, newCart(t), wram, undocumented.NewRegisters())
	test.DemandSuccess(t, err)

	v, err := mem.Read(0x0123)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x23)

	test.ExpectSuccess(t, mem.Write(0xc010, 0x99))
	v, _ = wram.Read(0xc010)
	test.ExpectEquality(t, v, 0x99)

	v, err = mem.Read(0xff6c)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xfe)

	// unmapped addresses
	v, err = mem.Read(0xe000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xff)
	test.ExpectSuccess(t, mem.Write(0xe000, 0x00))

	// debugger bus
	v, err = mem.Peek(0xc010)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x99)
	_, err = mem.Peek(0xe000)
	test.ExpectSuccess(t, curated.Is(err, memory.Unmapped))
	test.ExpectSuccess(t, mem.Poke(0xc011, 0x98))
	v, _ = wram.Read(0xc011)
	test.ExpectEquality(t, v, 0x98)
	err = mem.Poke(0xe000, 0x00)
	test.ExpectSuccess(t, curated.Is(err, memory.Unmapped))
}

func TestString(t *testing.T) {
	mem, err := memory.NewMemory(nil, newCart(t), undocumented.NewRegisters())
	test.DemandSuccess(t, err)

	s := mem.String()
	test.ExpectEquality(t, s, strings.Join([]string{
		"0x0000-0x7fff Cartridge ROM",
		"0xa000-0xbfff Cartridge ROM",
		"0xff6c-0xff6c Undocumented GBC",
		"0xff72-0xff76 Undocumented GBC",
		"",
	}, "\n"))
}

func TestSnapshot(t *testing.T) {
	wram := ram.NewRAM(0xc000, 0x2000)
	reg := undocumented.NewRegisters()
	mem, err := memory.NewMemory(nil, newCart(t), wram, reg)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, mem.Write(0xc000, 0x01))
	test.ExpectSuccess(t, mem.Write(0xff6c, 0x01))

	s := mem.Snapshot()
	test.ExpectEquality(t, s.Tag(), snapshot.Memory)

	test.ExpectSuccess(t, mem.Write(0xc000, 0x02))
	test.ExpectSuccess(t, mem.Write(0xff6c, 0x00))

	test.DemandSuccess(t, mem.Restore(s))
	v, _ := mem.Read(0xc000)
	test.ExpectEquality(t, v, 0x01)
	v, _ = mem.Read(0xff6c)
	test.ExpectEquality(t, v, 0xff)

	// restore into a freshly constructed memory of the same configuration
	fresh, err := memory.NewMemory(nil, newCart(t), ram.NewRAM(0xc000, 0x2000), undocumented.NewRegisters())
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, fresh.Restore(s))
	v, _ = fresh.Read(0xc000)
	test.ExpectEquality(t, v, 0x01)
}

func TestSnapshotMismatch(t *testing.T) {
	mem, err := memory.NewMemory(nil, newCart(t), ram.NewRAM(0xc000, 0x2000), undocumented.NewRegisters())
	test.DemandSuccess(t, err)

	// different number of areas
	other, err := memory.NewMemory(nil, newCart(t), ram.NewRAM(0xc000, 0x2000))
	test.DemandSuccess(t, err)
	err = mem.Restore(other.Snapshot())
	test.ExpectSuccess(t, curated.Is(err, snapshot.InvalidType))

	// same number of areas but in a different order
	other, err = memory.NewMemory(nil, newCart(t), undocumented.NewRegisters(), ram.NewRAM(0xc000, 0x2000))
	test.DemandSuccess(t, err)
	err = mem.Restore(other.Snapshot())
	test.ExpectSuccess(t, curated.Has(err, snapshot.InvalidType))

	// not a memory state
	err = mem.Restore(undocumented.NewRegisters().Snapshot())
	test.ExpectSuccess(t, curated.Is(err, snapshot.InvalidType))
}

func TestSnapshotRollback(t *testing.T) {
	wram := ram.NewRAM(0xc000, 0x10)
	hram := ram.NewRAM(0xff80, 0x10)
	mem, err := memory.NewMemory(nil, wram, hram)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, mem.Write(0xc000, 0x01))

	// the second area has a different size. the tag is correct so the
	// failure is found only during the restore of the second area
	other, err := memory.NewMemory(nil, ram.NewRAM(0xc000, 0x10), ram.NewRAM(0xff80, 0x20))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, other.Write(0xc000, 0x02))

	err = mem.Restore(other.Snapshot())
	test.ExpectSuccess(t, curated.Has(err, snapshot.InvalidType))

	// the first area has been returned to its original state
	v, _ := mem.Read(0xc000)
	test.ExpectEquality(t, v, 0x01)
}

// latchState is the state of a latch area.
type latchState struct {
	Value uint8
}

func (s *latchState) Tag() snapshot.Tag {
	return snapshot.RAM
}

// latch is a single register area that refuses to restore once the allowed
// number of restores has been used.
type latch struct {
	address uint16
	value   uint8
	allowed int
}

func (l *latch) Label() string {
	return "latch"
}

func (l *latch) Accepts(address uint16) bool {
	return address == l.address
}

func (l *latch) Read(_ uint16) (uint8, error) {
	return l.value, nil
}

func (l *latch) Write(_ uint16, data uint8) error {
	l.value = data
	return nil
}

func (l *latch) Snapshot() snapshot.State {
	return &latchState{Value: l.value}
}

func (l *latch) Restore(s snapshot.State) error {
	if l.allowed == 0 {
		return curated.Errorf("latch: restore refused")
	}
	l.allowed--
	st, err := snapshot.As[*latchState](s, snapshot.RAM)
	if err != nil {
		return err
	}
	l.value = st.Value
	return nil
}

func TestSnapshotRollbackFailure(t *testing.T) {
	first := &latch{address: 0xc000, allowed: 1}
	second := &latch{address: 0xc001}
	mem, err := memory.NewMemory(nil, first, second)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, mem.Write(0xc000, 0x01))
	s := mem.Snapshot()
	test.ExpectSuccess(t, mem.Write(0xc000, 0x02))

	// the second area refuses its state and then the first area refuses to
	// return to its previous state. both failures are reported
	err = mem.Restore(s)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, "memory: %s: %v: %v"))
	test.ExpectSuccess(t, curated.Has(err, memory.RollbackFailed))
	test.ExpectSuccess(t, curated.Has(err, "latch: restore refused"))
}
