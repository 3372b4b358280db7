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

package memory

import (
	"fmt"
	"strings"

	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/environment"
	"github.com/gopherboy/gopherboy/hardware/memory/bus"
	"github.com/gopherboy/gopherboy/hardware/snapshot"
	"github.com/gopherboy/gopherboy/logger"
)

// Overlap is the error pattern used when more than one area accepts the
// same address.
const Overlap = "memory: address %#04x accepted by %s and %s"

// Unmapped is the error pattern used by Peek() and Poke() for addresses
// that are not accepted by any area.
const Unmapped = "memory: address %#04x is not mapped"

// RollbackFailed is the error pattern used when an area can not be returned
// to its previous state after a failed Restore().
const RollbackFailed = "memory: rollback of %s failed: %v"

// the value returned by Read() for an unmapped address.
const openBus = uint8(0xff)

// the index value of an unmapped address in the decode table.
const noArea = -1

// Memory is the address decoder for the memory bus.
type Memory struct {
	env *environment.Environment

	// areas in the order they were supplied to NewMemory()
	areas []bus.AddressSpace

	// index into areas for every address in the address space
	decode []int16
}

// State is the rewindable state of Memory. Each entry is the state of the
// area at the same position in the list of areas. Areas that do not
// implement snapshot.Originator have a nil entry.
type State struct {
	Areas []snapshot.State
}

// Tag implements the snapshot.State interface.
func (s *State) Tag() snapshot.Tag {
	return snapshot.Memory
}

// NewMemory is the preferred method of initialisation for the Memory type.
// Returns an error if any address is accepted by more than one area.
func NewMemory(env *environment.Environment, areas ...bus.AddressSpace) (*Memory, error) {
	mem := &Memory{
		env:    env,
		areas:  areas,
		decode: make([]int16, 0x10000),
	}

	for a := range mem.decode {
		mem.decode[a] = noArea
		address := uint16(a)
		for i, area := range mem.areas {
			if !area.Accepts(address) {
				continue
			}
			if mem.decode[a] != noArea {
				return nil, curated.Errorf(Overlap, address, label(mem.areas[mem.decode[a]]), label(area))
			}
			mem.decode[a] = int16(i)
		}
	}

	logger.Logf(env, "memory", "%d areas on the memory bus", len(mem.areas))

	return mem, nil
}

func label(area bus.AddressSpace) string {
	if l, ok := area.(bus.Label); ok {
		return l.Label()
	}
	return fmt.Sprintf("%T", area)
}

func (mem *Memory) String() string {
	s := strings.Builder{}

	// list each run of consecutive addresses accepted by the same area
	start := 0
	for a := 1; a <= len(mem.decode); a++ {
		if a < len(mem.decode) && mem.decode[a] == mem.decode[start] {
			continue
		}
		if mem.decode[start] != noArea {
			s.WriteString(fmt.Sprintf("%#04x-%#04x %s\n", start, a-1, label(mem.areas[mem.decode[start]])))
		}
		start = a
	}

	return s.String()
}

// Area returns the area that accepts the address. Returns false if no area
// accepts the address.
func (mem *Memory) Area(address uint16) (bus.AddressSpace, bool) {
	i := mem.decode[address]
	if i == noArea {
		return nil, false
	}
	return mem.areas[i], true
}

// Read is an implementation of bus.AddressSpace. Unmapped addresses return
// the open bus value.
func (mem *Memory) Read(address uint16) (uint8, error) {
	area, ok := mem.Area(address)
	if !ok {
		return openBus, nil
	}
	return area.Read(address)
}

// Write is an implementation of bus.AddressSpace. Writes to unmapped
// addresses are ignored.
func (mem *Memory) Write(address uint16, data uint8) error {
	area, ok := mem.Area(address)
	if !ok {
		return nil
	}
	return area.Write(address, data)
}

// Accepts is an implementation of bus.AddressSpace. The Memory accepts
// every address in the address space.
func (mem *Memory) Accepts(_ uint16) bool {
	return true
}

// Peek is an implementation of bus.DebuggerBus.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	area, ok := mem.Area(address)
	if !ok {
		return 0, curated.Errorf(Unmapped, address)
	}
	return area.Read(address)
}

// Poke is an implementation of bus.DebuggerBus.
func (mem *Memory) Poke(address uint16, data uint8) error {
	area, ok := mem.Area(address)
	if !ok {
		return curated.Errorf(Unmapped, address)
	}
	return area.Write(address, data)
}

// Snapshot implements the snapshot.Originator interface.
func (mem *Memory) Snapshot() snapshot.State {
	s := &State{
		Areas: make([]snapshot.State, len(mem.areas)),
	}
	for i, area := range mem.areas {
		if o, ok := area.(snapshot.Originator); ok {
			s.Areas[i] = o.Snapshot()
		}
	}
	return s
}

// Restore implements the snapshot.Originator interface. The tag of every
// area state is checked before any area is changed.
func (mem *Memory) Restore(s snapshot.State) error {
	st, err := mem.check(s)
	if err != nil {
		return err
	}

	// areas can still refuse a state with the correct tag. if that happens
	// the areas that have already been restored are returned to the state
	// they were in before the call to Restore()
	prev := mem.Snapshot().(*State)

	for i, area := range mem.areas {
		if o, ok := area.(snapshot.Originator); ok {
			if err := o.Restore(st.Areas[i]); err != nil {
				if rerr := mem.rollback(prev, i); rerr != nil {
					return curated.Errorf("memory: %s: %v: %v", label(area), err, rerr)
				}
				return curated.Errorf("memory: %s: %v", label(area), err)
			}
		}
	}

	logger.Logf(mem.env, "memory", "restored %d areas", len(mem.areas))

	return nil
}

// rollback returns the first n areas to the state they were in before the
// call to Restore(). every area is attempted and the first error returned.
func (mem *Memory) rollback(prev *State, n int) error {
	var rerr error
	for j := range n {
		if o, ok := mem.areas[j].(snapshot.Originator); ok {
			if err := o.Restore(prev.Areas[j]); err != nil {
				logger.Logf(mem.env, "memory", "rollback of %s failed: %v", label(mem.areas[j]), err)
				if rerr == nil {
					rerr = curated.Errorf(RollbackFailed, label(mem.areas[j]), err)
				}
			}
		}
	}
	return rerr
}

// check that the state is compatible with the memory configuration. the tag
// of each area state is compared with the tag of a fresh snapshot of the
// area.
func (mem *Memory) check(s snapshot.State) (*State, error) {
	st, err := snapshot.As[*State](s, snapshot.Memory)
	if err != nil {
		return nil, err
	}

	if len(st.Areas) != len(mem.areas) {
		return nil, curated.Errorf(snapshot.InvalidType,
			fmt.Sprintf("memory with %d areas", len(st.Areas)),
			fmt.Sprintf("memory with %d areas", len(mem.areas)))
	}

	for i, area := range mem.areas {
		var want snapshot.Tag
		if o, ok := area.(snapshot.Originator); ok {
			want = snapshot.TagOf(o.Snapshot())
		}
		if err := snapshot.Check(st.Areas[i], want); err != nil {
			return nil, curated.Errorf("memory: %s: %v", label(area), err)
		}
	}

	return st, nil
}
