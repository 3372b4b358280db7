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
	"github.com/gopherboy/gopherboy/hardware/memory/memorymap"
	"github.com/gopherboy/gopherboy/hardware/snapshot"
)

// Noise is sound mode 4. The output is a pseudo-random bit stream produced
// by the LFSR at a rate set by the polynomial counter.
type Noise struct {
	channel

	envelope   *VolumeEnvelope
	polynomial *PolynomialCounter
	lfsr       *LFSR

	// the most recent bit drawn from the LFSR
	lastResult uint8
}

// NoiseState is the rewindable state of the Noise channel.
type NoiseState struct {
	Channel    *ChannelState
	Envelope   *EnvelopeState
	Polynomial *PolynomialState
	LFSR       *LFSRState
	LastResult uint8
}

// Tag implements the snapshot.State interface.
func (s *NoiseState) Tag() snapshot.Tag {
	return snapshot.Noise
}

// NewNoise is the preferred method of initialisation for the Noise type.
func NewNoise(gbc bool) *Noise {
	return &Noise{
		channel:    newChannel("Sound Mode 4", memorymap.OriginNoise, 64, gbc),
		envelope:   NewVolumeEnvelope(),
		polynomial: NewPolynomialCounter(),
		lfsr:       NewLFSR(),
	}
}

// Start is called on power on.
func (n *Noise) Start() {
	n.startLength()
	n.lfsr.Start()
	n.envelope.Start()
}

func (n *Noise) trigger() {
	n.lfsr.Reset()
	n.envelope.Trigger()
}

// Tick advances the channel by one master clock cycle and returns the output
// sample.
func (n *Noise) Tick() uint8 {
	n.envelope.Tick()

	if !n.updateLength() {
		return 0
	}
	if !n.dacEnabled {
		return 0
	}

	// bit 3 of NR43 selects the narrow width of the LFSR
	if n.polynomial.Tick() {
		n.lastResult = n.lfsr.NextBit(n.registers[nrx3]&0x08 == 0x08)
	}

	return n.lastResult * uint8(n.envelope.Volume())
}

// Write implements the bus.AddressSpace interface.
func (n *Noise) Write(address uint16, data uint8) error {
	reg, err := n.store(address, data)
	if err != nil {
		return err
	}

	switch reg {
	case nrx1:
		n.length.SetLength(64 - int(data&0x3f))
	case nrx2:
		n.envelope.SetNR2(data)
		n.writeDAC(data)
	case nrx3:
		n.polynomial.SetNR43(data)
	case nrx4:
		if n.writeNR4(data) {
			n.trigger()
		}
	}

	return nil
}

// Snapshot implements the snapshot.Originator interface.
func (n *Noise) Snapshot() snapshot.State {
	return &NoiseState{
		Channel:    n.channel.snapshot(),
		Envelope:   n.envelope.Snapshot().(*EnvelopeState),
		Polynomial: n.polynomial.Snapshot().(*PolynomialState),
		LFSR:       n.lfsr.Snapshot().(*LFSRState),
		LastResult: n.lastResult,
	}
}

// Restore implements the snapshot.Originator interface. The channel is not
// changed unless every nested state is valid.
func (n *Noise) Restore(s snapshot.State) error {
	st, err := snapshot.As[*NoiseState](s, snapshot.Noise)
	if err != nil {
		return err
	}

	if err := n.channel.check(st.Channel); err != nil {
		return err
	}
	env, err := snapshot.As[*EnvelopeState](st.Envelope, snapshot.VolumeEnvelope)
	if err != nil {
		return err
	}
	poly, err := snapshot.As[*PolynomialState](st.Polynomial, snapshot.PolynomialCounter)
	if err != nil {
		return err
	}
	lfsr, err := snapshot.As[*LFSRState](st.LFSR, snapshot.LFSR)
	if err != nil {
		return err
	}

	n.channel.restore(st.Channel)
	n.envelope.state = *env
	n.polynomial.state = *poly
	n.lfsr.state = *lfsr
	n.lastResult = st.LastResult

	return nil
}
