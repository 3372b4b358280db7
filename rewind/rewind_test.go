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

package rewind_test

import (
	"testing"

	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/environment"
	"github.com/gopherboy/gopherboy/hardware"
	"github.com/gopherboy/gopherboy/hardware/clocks"
	"github.com/gopherboy/gopherboy/hardware/memory/cartridge"
	"github.com/gopherboy/gopherboy/hardware/snapshot"
	"github.com/gopherboy/gopherboy/rewind"
	"github.com/gopherboy/gopherboy/test"
)

// a minimal emulation. the value changes independently of the frame number
type counter struct {
	frame int
	value int
}

type counterState struct {
	frame int
	value int
}

func (s *counterState) Tag() snapshot.Tag {
	return snapshot.Console
}

func (c *counter) Frame() int {
	return c.frame
}

func (c *counter) Snapshot() snapshot.State {
	return &counterState{frame: c.frame, value: c.value}
}

func (c *counter) Restore(s snapshot.State) error {
	st, err := snapshot.As[*counterState](s, snapshot.Console)
	if err != nil {
		return err
	}
	c.frame = st.frame
	c.value = st.value
	return nil
}

func (c *counter) advance(r *rewind.Rewind, n int) {
	for range n {
		c.frame++
		c.value += 10
		r.RecordFrame()
	}
}

func newEnv(t *testing.T) *environment.Environment {
	t.Helper()
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	return env
}

func TestRecord(t *testing.T) {
	c := &counter{}
	r := rewind.NewRewind(newEnv(t), c)
	test.ExpectEquality(t, r.Len(), 1)
	test.ExpectEquality(t, r.Peek(), "0 (reset)*")

	c.advance(r, 5)
	test.ExpectEquality(t, r.Len(), 6)
	test.ExpectEquality(t, r.GetFrames(), rewind.Frames{Start: 0, End: 5, Current: 5})
	test.ExpectEquality(t, r.Peek(), "0 (reset) 1 2 3 4 5*")
	test.ExpectEquality(t, r.String(), "6 entries: 0 to 5 (current 5)")
}

func TestGotoFrame(t *testing.T) {
	c := &counter{}
	r := rewind.NewRewind(newEnv(t), c)
	c.advance(r, 5)

	fn, err := r.GotoFrame(3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, 3)
	test.ExpectEquality(t, c.frame, 3)
	test.ExpectEquality(t, c.value, 30)
	test.ExpectEquality(t, r.Peek(), "0 (reset) 1 2 3* 4 5")

	// the timeline is unchanged
	test.ExpectEquality(t, r.Len(), 6)

	// out of range frames
	fn, err = r.GotoFrame(-10)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, 0)
	test.ExpectEquality(t, c.value, 0)

	fn, err = r.GotoFrame(100)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, 5)
	test.ExpectEquality(t, c.value, 50)

	// the entry is not changed by running the emulation after restoring it
	_, err = r.GotoFrame(2)
	test.DemandSuccess(t, err)
	c.value = 1000
	_, err = r.GotoFrame(2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.value, 20)

	fn, err = r.GotoLast()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, 5)
}

func TestTruncate(t *testing.T) {
	c := &counter{}
	r := rewind.NewRewind(newEnv(t), c)
	c.advance(r, 5)

	_, err := r.GotoFrame(2)
	test.DemandSuccess(t, err)

	// recording a new frame forgets the entries after the current entry
	c.value = 1000
	c.advance(r, 1)
	test.ExpectEquality(t, r.Len(), 4)
	test.ExpectEquality(t, r.Peek(), "0 (reset) 1 2 3*")

	c.value = 0
	_, err = r.GotoFrame(3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.value, 1010)
}

func TestMaxEntries(t *testing.T) {
	env := newEnv(t)
	c := &counter{}
	r := rewind.NewRewind(env, c)
	c.advance(r, 3)
	test.DemandEquality(t, r.Len(), 4)

	// changing the preference resets the timeline
	test.DemandSuccess(t, env.Prefs.RewindMaxEntries.Set(3))
	test.ExpectEquality(t, r.Len(), 1)
	test.ExpectEquality(t, r.Peek(), "3 (reset)*")

	c.advance(r, 5)
	test.ExpectEquality(t, r.Len(), 3)
	test.ExpectEquality(t, r.GetFrames(), rewind.Frames{Start: 6, End: 8, Current: 8})

	fn, err := r.GotoFrame(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, 6)
}

func TestFrequency(t *testing.T) {
	env := newEnv(t)
	test.DemandSuccess(t, env.Prefs.RewindFrequency.Set(2))

	c := &counter{}
	r := rewind.NewRewind(env, c)
	c.advance(r, 6)
	test.ExpectEquality(t, r.Peek(), "0 (reset) 2 4 6*")

	// the nearest earlier entry is restored
	fn, err := r.GotoFrame(5)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, 4)
}

func TestSameFrame(t *testing.T) {
	c := &counter{}
	r := rewind.NewRewind(newEnv(t), c)
	c.advance(r, 2)

	// recording the same frame again replaces the entry
	c.value = 99
	r.RecordFrame()
	test.ExpectEquality(t, r.Len(), 3)

	c.value = 0
	_, err := r.GotoLast()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.value, 99)
}

type broken struct {
	counter
}

func (b *broken) Restore(s snapshot.State) error {
	return curated.Errorf(snapshot.InvalidType, snapshot.TagOf(s), snapshot.Pulse)
}

func TestRestoreError(t *testing.T) {
	b := &broken{}
	r := rewind.NewRewind(newEnv(t), b)
	_, err := r.GotoFrame(0)
	test.ExpectSuccess(t, curated.Has(err, snapshot.InvalidType))
}

func TestConsole(t *testing.T) {
	env := newEnv(t)
	cart, err := cartridge.NewRom([]uint8{0x00})
	test.DemandSuccess(t, err)
	con, err := hardware.NewConsole(env, cart)
	test.DemandSuccess(t, err)

	r := rewind.NewRewind(env, con)

	test.DemandSuccess(t, con.Mem.Write(0xff21, 0xf0))
	test.DemandSuccess(t, con.Mem.Write(0xff22, 0x00))
	test.DemandSuccess(t, con.Mem.Write(0xff23, 0x80))

	// run three frames and record the output of the third
	var out []uint8
	for frame := range 3 {
		for range clocks.TicksPerFrame {
			_, noise := con.Step()
			if frame == 2 {
				out = append(out, noise)
			}
		}
		r.RecordFrame()
	}
	test.DemandEquality(t, r.GetFrames().End, 3)

	fn, err := r.GotoFrame(2)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, fn, 2)
	test.ExpectEquality(t, con.Frame(), 2)

	for i := range clocks.TicksPerFrame {
		_, noise := con.Step()
		if !test.ExpectEquality(t, noise, out[i], i) {
			break
		}
	}
}
