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
	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/hardware/memory/bus"
	"github.com/gopherboy/gopherboy/hardware/memory/memorymap"
	"github.com/gopherboy/gopherboy/hardware/snapshot"
)

// the wave patterns for each duty cycle setting in NR11. bit 0 is the first
// step of the pattern
var dutyPatterns = [4]uint8{0b00000001, 0b10000001, 0b10000111, 0b01111110}

// Pulse is sound mode 1. A square wave with a selectable duty cycle and a
// frequency sweep.
type Pulse struct {
	channel

	sweep    *FrequencySweep
	envelope *VolumeEnvelope

	// counts down to the next step of the wave pattern
	freqDivider int

	// the current step of the wave pattern and the output at that step
	step       int
	lastOutput uint8
}

// PulseState is the rewindable state of the Pulse channel.
type PulseState struct {
	Channel     *ChannelState
	Sweep       *SweepState
	Envelope    *EnvelopeState
	FreqDivider int
	Step        int
	LastOutput  uint8
}

// Tag implements the snapshot.State interface.
func (s *PulseState) Tag() snapshot.Tag {
	return snapshot.Pulse
}

// NewPulse is the preferred method of initialisation for the Pulse type.
func NewPulse(gbc bool) *Pulse {
	return &Pulse{
		channel:  newChannel("Sound Mode 1", memorymap.OriginPulse, 64, gbc),
		sweep:    NewFrequencySweep(),
		envelope: NewVolumeEnvelope(),
	}
}

// Start is called on power on.
func (p *Pulse) Start() {
	p.step = 0
	p.startLength()
	p.sweep.Start()
	p.envelope.Start()
}

func (p *Pulse) trigger() {
	p.step = 0
	p.freqDivider = 1
	p.envelope.Trigger()
}

// Sweep returns the frequency sweep unit of the channel.
func (p *Pulse) Sweep() *FrequencySweep {
	return p.sweep
}

// the frequency registers are read from the copies in the sweep unit
func (p *Pulse) nr3() uint8 {
	return p.sweep.NR13()
}

func (p *Pulse) nr4() uint8 {
	return p.registers[nrx4]&0xf8 | p.sweep.NR14()&0x07
}

// Tick advances the channel by one master clock cycle and returns the output
// sample.
func (p *Pulse) Tick() uint8 {
	p.envelope.Tick()

	// the length counter and the sweep are ticked even if the channel is
	// already disabled
	enabled := p.updateLength()
	enabled = p.updateSweep() && enabled
	enabled = p.dacEnabled && enabled
	if !enabled {
		return 0
	}

	p.freqDivider--
	if p.freqDivider == 0 {
		p.freqDivider = frequency(p.nr3(), p.nr4()) * 4
		p.lastOutput = (dutyPatterns[p.registers[nrx1]>>6] >> p.step) & 0x01
		p.step = (p.step + 1) % 8
	}

	return p.lastOutput * uint8(p.envelope.Volume())
}

// updateSweep ticks the sweep unit and disables the channel if the sweep has
// overflowed. Returns whether the channel is enabled.
func (p *Pulse) updateSweep() bool {
	p.sweep.Tick()
	if p.channelEnabled && !p.sweep.IsEnabled() {
		p.channelEnabled = false
	}
	return p.channelEnabled
}

// Read implements the bus.AddressSpace interface.
func (p *Pulse) Read(address uint16) (uint8, error) {
	if !p.Accepts(address) {
		return 0, curated.Errorf(bus.OutOfRange, address)
	}

	switch int(address - p.origin) {
	case nrx3:
		return p.nr3(), nil
	case nrx4:
		return p.nr4(), nil
	}

	return p.channel.Read(address)
}

// Write implements the bus.AddressSpace interface.
func (p *Pulse) Write(address uint16, data uint8) error {
	reg, err := p.store(address, data)
	if err != nil {
		return err
	}

	switch reg {
	case nrx0:
		p.sweep.SetNR10(data)
	case nrx1:
		p.length.SetLength(64 - int(data&0x3f))
	case nrx2:
		p.envelope.SetNR2(data)
		p.writeDAC(data)
	case nrx3:
		p.sweep.SetNR13(data)
	case nrx4:
		if p.writeNR4(data) {
			p.trigger()
		}
		p.sweep.SetNR14(data)
	}

	return nil
}

// Snapshot implements the snapshot.Originator interface.
func (p *Pulse) Snapshot() snapshot.State {
	return &PulseState{
		Channel:     p.channel.snapshot(),
		Sweep:       p.sweep.Snapshot().(*SweepState),
		Envelope:    p.envelope.Snapshot().(*EnvelopeState),
		FreqDivider: p.freqDivider,
		Step:        p.step,
		LastOutput:  p.lastOutput,
	}
}

// Restore implements the snapshot.Originator interface. The channel is not
// changed unless every nested state is valid.
func (p *Pulse) Restore(s snapshot.State) error {
	st, err := snapshot.As[*PulseState](s, snapshot.Pulse)
	if err != nil {
		return err
	}

	if err := p.channel.check(st.Channel); err != nil {
		return err
	}
	sw, err := snapshot.As[*SweepState](st.Sweep, snapshot.FrequencySweep)
	if err != nil {
		return err
	}
	env, err := snapshot.As[*EnvelopeState](st.Envelope, snapshot.VolumeEnvelope)
	if err != nil {
		return err
	}

	p.channel.restore(st.Channel)
	p.sweep.state = *sw
	p.envelope.state = *env
	p.freqDivider = st.FreqDivider
	p.step = st.Step
	p.lastOutput = st.LastOutput

	return nil
}
