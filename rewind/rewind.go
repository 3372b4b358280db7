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

// Package rewind keeps a timeline of emulation snapshots. An entry is
// recorded at the end of every frame, or every Nth frame as set by the
// rewind.frequency preference, and the emulation can be returned to any
// frame in the timeline.
//
// The number of entries in the timeline is limited by the rewind.maxentries
// preference. When the timeline is full the earliest entry is forgotten.
//
// Returning to a frame does not change the timeline but the entries after
// the restored entry are forgotten when the next entry is recorded.
package rewind

import (
	"fmt"
	"strings"

	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/environment"
	"github.com/gopherboy/gopherboy/hardware/snapshot"
	"github.com/gopherboy/gopherboy/logger"
	"github.com/gopherboy/gopherboy/prefs"
)

// Emulation is the part of the emulation that the timeline acts upon.
type Emulation interface {
	snapshot.Originator

	// the number of complete frames since power on
	Frame() int
}

// Empty is the error pattern used when an operation requires at least one
// entry in the timeline.
const Empty = "rewind: timeline is empty"

type entryLevel int

const (
	// the entry was recorded by Reset()
	levelReset entryLevel = iota

	// the entry was recorded by RecordFrame()
	levelFrame
)

// an entry in the timeline.
type entry struct {
	level entryLevel
	frame int
	state snapshot.State
}

func (e *entry) String() string {
	if e.level == levelReset {
		return fmt.Sprintf("%d (reset)", e.frame)
	}
	return fmt.Sprintf("%d", e.frame)
}

// Rewind is the timeline of emulation snapshots.
type Rewind struct {
	env       *environment.Environment
	emulation Emulation

	// entries is a ring. the number of entries that can be stored is one
	// less than the length of the slice
	entries []*entry
	start   int
	end     int

	// the most recently recorded or restored entry
	curr int
}

// NewRewind is the preferred method of initialisation for the Rewind type.
// The timeline is reset and contains one entry.
func NewRewind(env *environment.Environment, emulation Emulation) *Rewind {
	r := &Rewind{
		env:       env,
		emulation: emulation,
	}

	// changing the maximum number of entries starts a new timeline
	env.Prefs.RewindMaxEntries.SetHookPost(func(_ prefs.Value) error {
		r.Reset()
		return nil
	})

	r.Reset()

	return r
}

func (r *Rewind) maxEntries() int {
	n := r.env.Prefs.RewindMaxEntries.Get().(int)
	if n < 1 {
		n = 1
	}
	return n
}

func (r *Rewind) frequency() int {
	n := r.env.Prefs.RewindFrequency.Get().(int)
	if n < 1 {
		n = 1
	}
	return n
}

// Reset the timeline. The current state of the emulation is the first entry.
func (r *Rewind) Reset() {
	r.entries = make([]*entry, r.maxEntries()+1)
	r.start = 0
	r.end = 0
	r.curr = len(r.entries) - 1

	r.append(&entry{
		level: levelReset,
		frame: r.emulation.Frame(),
		state: r.emulation.Snapshot(),
	})

	logger.Logf(r.env, "rewind", "timeline reset with space for %d entries", r.maxEntries())
}

// RecordFrame should be called at the end of every frame. An entry is added
// to the timeline if the frame number is a multiple of the rewind frequency.
// Any entries after the current entry are forgotten.
func (r *Rewind) RecordFrame() {
	frame := r.emulation.Frame()
	if frame%r.frequency() != 0 {
		return
	}

	e := &entry{
		level: levelFrame,
		frame: frame,
		state: r.emulation.Snapshot(),
	}

	// the future is forgotten
	for i := r.next(r.curr); i != r.end; i = r.next(i) {
		r.entries[i] = nil
	}
	r.end = r.next(r.curr)

	// replace the current entry if it is for the same frame
	if r.entries[r.curr].frame == frame {
		r.entries[r.curr] = e
		return
	}

	r.append(e)
}

func (r *Rewind) next(idx int) int {
	idx++
	if idx >= len(r.entries) {
		idx = 0
	}
	return idx
}

func (r *Rewind) append(e *entry) {
	r.curr = r.next(r.curr)
	r.entries[r.curr] = e

	r.end = r.next(r.curr)

	// forget the earliest entry if the timeline is full
	if r.end == r.start {
		r.entries[r.start] = nil
		r.start = r.next(r.start)
	}
}

// Len returns the number of entries in the timeline.
func (r *Rewind) Len() int {
	n := r.end - r.start
	if n < 0 {
		n += len(r.entries)
	}
	return n
}

// the entry at position i of the timeline, where zero is the earliest entry.
func (r *Rewind) index(i int) int {
	return (r.start + i) % len(r.entries)
}

// Frames describes the extent of the timeline.
type Frames struct {
	Start   int
	End     int
	Current int
}

// GetFrames returns the frame numbers of the earliest, latest and current
// entries.
func (r *Rewind) GetFrames() Frames {
	return Frames{
		Start:   r.entries[r.start].frame,
		End:     r.entries[r.index(r.Len()-1)].frame,
		Current: r.entries[r.curr].frame,
	}
}

// GotoFrame restores the latest entry for a frame not later than the
// requested frame. A frame earlier than the start of the timeline restores
// the earliest entry. Returns the frame number of the restored entry.
func (r *Rewind) GotoFrame(frame int) (int, error) {
	n := r.Len()
	if n == 0 {
		return 0, curated.Errorf(Empty)
	}

	// binary search for the last entry with a frame not later than the
	// requested frame
	found := 0
	s := 0
	e := n - 1
	for s <= e {
		m := (s + e) / 2
		if r.entries[r.index(m)].frame <= frame {
			found = m
			s = m + 1
		} else {
			e = m - 1
		}
	}

	return r.plumb(r.index(found))
}

// GotoLast restores the latest entry in the timeline.
func (r *Rewind) GotoLast() (int, error) {
	n := r.Len()
	if n == 0 {
		return 0, curated.Errorf(Empty)
	}
	return r.plumb(r.index(n - 1))
}

func (r *Rewind) plumb(idx int) (int, error) {
	e := r.entries[idx]

	// components copy the state when restoring so the entry can be
	// restored again later
	if err := r.emulation.Restore(e.state); err != nil {
		return 0, curated.Errorf("rewind: %v", err)
	}
	r.curr = idx

	logger.Logf(r.env, "rewind", "restored frame %s", e)

	return e.frame, nil
}

// Peek returns a summary of the timeline. The current entry is marked with
// an asterisk.
func (r *Rewind) Peek() string {
	s := strings.Builder{}
	for i := range r.Len() {
		idx := r.index(i)
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(r.entries[idx].String())
		if idx == r.curr {
			s.WriteString("*")
		}
	}
	return s.String()
}

func (r *Rewind) String() string {
	f := r.GetFrames()
	return fmt.Sprintf("%d entries: %d to %d (current %d)", r.Len(), f.Start, f.End, f.Current)
}
