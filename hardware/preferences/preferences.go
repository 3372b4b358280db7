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

// Package preferences holds the configuration of the emulated hardware.
package preferences

import (
	"fmt"

	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/prefs"
)

// Preferences for the emulated hardware.
type Preferences struct {
	// emulate the Game Boy Color. the GBC only register block is mapped into
	// the address space and sound channel length counters are reset when
	// the sound hardware is started
	GBC prefs.Bool

	// maximum number of entries in the rewind timeline
	RewindMaxEntries prefs.Int

	// number of frames between each rewind entry
	RewindFrequency prefs.Int
}

func (p *Preferences) String() string {
	return fmt.Sprintf("hardware.gbc::%s; rewind.maxentries::%s; rewind.frequency::%s",
		p.GBC.String(), p.RewindMaxEntries.String(), p.RewindFrequency.String())
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are set to their defaults and then to any value
// found in the top group of the prefs command line stack.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	for key, v := range map[string]interface {
		Set(prefs.Value) error
	}{
		"hardware.gbc":      &p.GBC,
		"rewind.maxentries": &p.RewindMaxEntries,
		"rewind.frequency":  &p.RewindFrequency,
	} {
		if ok, val := prefs.GetCommandLinePref(key); ok {
			if err := v.Set(val); err != nil {
				return nil, curated.Errorf("preferences: %s: %v", key, err)
			}
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.GBC.Set(false)
	_ = p.RewindMaxEntries.Set(100)
	_ = p.RewindFrequency.Set(1)
}
