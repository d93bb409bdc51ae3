// This file is part of Mango.
//
// Mango is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mango is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mango.  If not, see <https://www.gnu.org/licenses/>.

// Package preferences contains the preferences for the emulated hardware.
// Values are stored in the global preferences file under the "hardware"
// prefix.
package preferences

import (
	"github.com/mangoemu/mango/curated"
	"github.com/mangoemu/mango/prefs"
	"github.com/mangoemu/mango/resources"
)

// Preferences for the emulated SNES.
type Preferences struct {
	dsk *prefs.Disk

	// the value used to fill work RAM and cartridge RAM when there is no
	// quirk for the loaded cartridge
	DefaultRAMFill prefs.Int

	// preferences for the cartridge
	Cartridge *Cartridge
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file if it
// exists.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	// fill values are bytes
	p.DefaultRAMFill.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 || v.(int) > 0xff {
			return curated.Errorf("preferences: ram fill value out of range (%#x)", v)
		}
		return nil
	})

	err = p.dsk.Add("hardware.ramfill", &p.DefaultRAMFill)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(false)
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	p.Cartridge, err = newCartridgePreferences(pth)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values. Cartridge preferences
// are also reverted if they have been created.
func (p *Preferences) SetDefaults() {
	p.DefaultRAMFill.Set(0x00)
	if p.Cartridge != nil {
		p.Cartridge.SetDefaults()
	}
}

// Load hardware preferences from disk.
func (p *Preferences) Load() error {
	if err := p.dsk.Load(false); err != nil {
		return err
	}
	return p.Cartridge.Load()
}

// Save hardware preferences to disk.
func (p *Preferences) Save() error {
	if err := p.dsk.Save(); err != nil {
		return err
	}
	return p.Cartridge.Save()
}
