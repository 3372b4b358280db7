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

package sound

import (
	"github.com/gopherboy/gopherboy/hardware/clocks"
	"github.com/gopherboy/gopherboy/hardware/snapshot"
)

// VolumeEnvelope steps the volume of a channel.
type VolumeEnvelope struct {
	state EnvelopeState
}

// EnvelopeState is the rewindable state of the VolumeEnvelope.
type EnvelopeState struct {
	// the fields of the NRx2 register
	InitialVolume int
	Direction     int
	Period        int

	Volume   int
	Divider  int
	Finished bool
}

// Tag implements the snapshot.State interface.
func (s *EnvelopeState) Tag() snapshot.Tag {
	return snapshot.VolumeEnvelope
}

// NewVolumeEnvelope is the preferred method of initialisation for the
// VolumeEnvelope type.
func NewVolumeEnvelope() *VolumeEnvelope {
	return &VolumeEnvelope{}
}

// SetNR2 reacts to a write to the NRx2 register of the channel.
func (env *VolumeEnvelope) SetNR2(data uint8) {
	env.state.InitialVolume = int(data >> 4)
	if data&0x08 == 0x08 {
		env.state.Direction = 1
	} else {
		env.state.Direction = -1
	}
	env.state.Period = int(data & 0x07)
}

// Start is called on power on.
func (env *VolumeEnvelope) Start() {
	env.state.Finished = true
	env.state.Divider = 8192
}

// Trigger is called when the channel is triggered.
func (env *VolumeEnvelope) Trigger() {
	env.state.Volume = env.state.InitialVolume
	env.state.Divider = 0
	env.state.Finished = false
}

// Tick advances the envelope by one master clock cycle. The envelope stops
// once the volume reaches the limit in the direction of travel.
func (env *VolumeEnvelope) Tick() {
	if env.state.Finished {
		return
	}

	if (env.state.Volume == 0 && env.state.Direction == -1) || (env.state.Volume == 15 && env.state.Direction == 1) {
		env.state.Finished = true
		return
	}

	env.state.Divider++
	if env.state.Divider == env.state.Period*clocks.TicksPerSec/64 {
		env.state.Divider = 0
		env.state.Volume += env.state.Direction
	}
}

// Volume returns the current volume. If the envelope period is zero the
// initial volume is returned.
func (env *VolumeEnvelope) Volume() int {
	if env.state.Period > 0 {
		return env.state.Volume
	}
	return env.state.InitialVolume
}

// Snapshot implements the snapshot.Originator interface.
func (env *VolumeEnvelope) Snapshot() snapshot.State {
	s := env.state
	return &s
}

// Restore implements the snapshot.Originator interface.
func (env *VolumeEnvelope) Restore(s snapshot.State) error {
	st, err := snapshot.As[*EnvelopeState](s, snapshot.VolumeEnvelope)
	if err != nil {
		return err
	}
	env.state = *st
	return nil
}
