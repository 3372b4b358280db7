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

package hardware

import (
	"fmt"
	"io"

	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/environment"
	"github.com/gopherboy/gopherboy/hardware/clocks"
	"github.com/gopherboy/gopherboy/hardware/memory"
	"github.com/gopherboy/gopherboy/hardware/memory/bus"
	"github.com/gopherboy/gopherboy/hardware/memory/cartridge"
	"github.com/gopherboy/gopherboy/hardware/memory/undocumented"
	"github.com/gopherboy/gopherboy/hardware/snapshot"
	"github.com/gopherboy/gopherboy/hardware/sound"
	"github.com/gopherboy/gopherboy/logger"
)

// Console is the main container for the emulated components.
type Console struct {
	env *environment.Environment

	Mem  *memory.Memory
	Cart cartridge.MemoryController

	Pulse *sound.Pulse
	Noise *sound.Noise

	// only present when emulating the GBC
	Undocumented *undocumented.Registers

	// number of master clock cycles since power on
	ticks uint64
}

// State is the rewindable state of the Console.
type State struct {
	Mem   *memory.State
	Ticks uint64
}

// Tag implements the snapshot.State interface.
func (s *State) Tag() snapshot.Tag {
	return snapshot.Console
}

// NoEnvironment is the error pattern used when a Console is created without
// an environment.
const NoEnvironment = "console: no environment"

// NoCartridge is the error pattern used when a Console is created without a
// cartridge.
const NoCartridge = "console: no cartridge"

// NewConsole creates a new Console and everything associated with the
// hardware. The cartridge is attached to the memory bus along with the sound
// generators and, if the GBC preference is set, the undocumented GBC
// registers.
//
// The environment is required because it carries the preferences. A nil
// environment or a nil cartridge is an error.
func NewConsole(env *environment.Environment, cart cartridge.MemoryController) (*Console, error) {
	if env == nil || env.Prefs == nil {
		return nil, curated.Errorf(NoEnvironment)
	}
	if cart == nil {
		return nil, curated.Errorf(NoCartridge)
	}

	gbc := env.Prefs.GBC.Get().(bool)

	con := &Console{
		env:   env,
		Cart:  cart,
		Pulse: sound.NewPulse(gbc),
		Noise: sound.NewNoise(gbc),
	}

	areas := []bus.AddressSpace{con.Cart, con.Pulse, con.Noise}
	if gbc {
		con.Undocumented = undocumented.NewRegisters()
		areas = append(areas, con.Undocumented)
	}

	var err error

	con.Mem, err = memory.NewMemory(env, areas...)
	if err != nil {
		return nil, err
	}

	con.Reset()

	return con, nil
}

// Reset emulates power on of the sound hardware. The tick count is set to
// zero.
func (con *Console) Reset() {
	con.Pulse.Start()
	con.Noise.Start()
	con.ticks = 0

	logger.Logf(con.env, "console", "reset (%s cartridge)", con.Cart.ID())
}

// Step advances the emulation by one master clock cycle. Returns the output
// sample of each sound channel.
func (con *Console) Step() (pulse uint8, noise uint8) {
	pulse = con.Pulse.Tick()
	noise = con.Noise.Tick()
	con.ticks++
	return pulse, noise
}

// Ticks returns the number of master clock cycles since power on.
func (con *Console) Ticks() uint64 {
	return con.ticks
}

// Frame returns the number of complete video frames since power on.
func (con *Console) Frame() int {
	return int(con.ticks / clocks.TicksPerFrame)
}

// Snapshot implements the snapshot.Originator interface.
func (con *Console) Snapshot() snapshot.State {
	return &State{
		Mem:   con.Mem.Snapshot().(*memory.State),
		Ticks: con.ticks,
	}
}

// Restore implements the snapshot.Originator interface. Either the complete
// state is restored or nothing is changed.
func (con *Console) Restore(s snapshot.State) error {
	st, err := snapshot.As[*State](s, snapshot.Console)
	if err != nil {
		return err
	}

	if err := con.Mem.Restore(st.Mem); err != nil {
		return curated.Errorf("console: %v", err)
	}
	con.ticks = st.Ticks

	logger.Logf(con.env, "console", "restored to tick %d", con.ticks)

	return nil
}

// Dump writes a summary of the console for debugging. The memory map, the
// tick count and the central log are written. A positive logEntries value
// limits the log to the most recent entries.
func (con *Console) Dump(w io.Writer, logEntries int) {
	io.WriteString(w, "memory map\n")
	io.WriteString(w, con.Mem.String())
	io.WriteString(w, fmt.Sprintf("\nticks %d (frame %d)\n", con.ticks, con.Frame()))

	io.WriteString(w, "\nlog\n")
	if logEntries > 0 {
		logger.Tail(w, logEntries)
	} else {
		logger.Write(w)
	}
}

// DumpState writes the capture graph of the current console state in DOT
// format.
func (con *Console) DumpState(w io.Writer) {
	snapshot.Visualise(w, con.Snapshot())
}
