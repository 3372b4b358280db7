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

// Package snapshot defines the protocol by which every stateful hardware
// component captures and restores its complete internal state.
//
// A State is an opaque value that carries a Tag. The set of tags is closed
// and declared in this package, one for each component type. A component
// will only restore from a State that carries its own tag. Composite
// components nest the states of their children and restore by delegating to
// each child in turn.
//
// States are owned by the caller that requested them. A component never
// keeps a reference to a State it has produced or restored from.
package snapshot

import (
	"fmt"
	"reflect"

	"github.com/gopherboy/gopherboy/curated"
)

// Tag identifies the type of component that produced a State.
type Tag int

// List of valid Tag values.
const (
	None Tag = iota
	RAM
	Memory
	Undocumented
	LengthCounter
	VolumeEnvelope
	PolynomialCounter
	LFSR
	FrequencySweep
	Channel
	Noise
	Pulse
	Console
)

func (t Tag) String() string {
	switch t {
	case None:
		return "none"
	case RAM:
		return "ram"
	case Memory:
		return "memory"
	case Undocumented:
		return "undocumented"
	case LengthCounter:
		return "length counter"
	case VolumeEnvelope:
		return "volume envelope"
	case PolynomialCounter:
		return "polynomial counter"
	case LFSR:
		return "lfsr"
	case FrequencySweep:
		return "frequency sweep"
	case Channel:
		return "channel"
	case Noise:
		return "noise"
	case Pulse:
		return "pulse"
	case Console:
		return "console"
	}
	return fmt.Sprintf("unknown tag (%d)", int(t))
}

// State is the captured state of a single component at a single instant.
type State interface {
	Tag() Tag
}

// Originator is implemented by every stateful component.
type Originator interface {
	// Snapshot captures the complete mutable state. Snapshot must not change
	// the state of the component in any way
	Snapshot() State

	// Restore sets the state of the component to the captured state. The
	// State must have been produced by a component of the same type and
	// configuration
	Restore(State) error
}

// InvalidType is returned by Restore() when the State was captured from an
// incompatible component.
const InvalidType = "snapshot: invalid snapshot type: %v (wanted %v)"

// TagOf returns the tag of the state. A nil state has the tag None.
func TagOf(s State) Tag {
	if s == nil {
		return None
	}
	return s.Tag()
}

// Check that the state carries the wanted tag.
func Check(s State, want Tag) error {
	if TagOf(s) != want {
		return curated.Errorf(InvalidType, TagOf(s), want)
	}
	return nil
}

// As checks the tag of the state and returns it as the concrete state type
// that the tag implies.
func As[T State](s State, want Tag) (T, error) {
	var z T

	if err := Check(s, want); err != nil {
		return z, err
	}

	t, ok := s.(T)
	if !ok {
		return z, curated.Errorf(InvalidType, fmt.Sprintf("%T", s), want)
	}

	// a nil pointer of the correct type carries the correct tag
	if v := reflect.ValueOf(t); v.Kind() == reflect.Pointer && v.IsNil() {
		return z, curated.Errorf(InvalidType, fmt.Sprintf("nil %T", s), want)
	}

	return t, nil
}
