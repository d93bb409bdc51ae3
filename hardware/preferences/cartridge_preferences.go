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

package preferences

import (
	"github.com/mangoemu/mango/curated"
	"github.com/mangoemu/mango/prefs"
)

// Cartridge preferences.
type Cartridge struct {
	dsk *prefs.Disk

	// use the fill value from the quirks table for cartridges that need it
	RAMFillQuirks prefs.Bool

	// write battery RAM to disk when the emulation ends
	BatteryAutoSave prefs.Bool
}

func (p *Cartridge) String() string {
	return p.dsk.String()
}

func newCartridgePreferences(pth string) (*Cartridge, error) {
	p := &Cartridge{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.cartridge.ramFillQuirks", &p.RAMFillQuirks)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.cartridge.batteryAutoSave", &p.BatteryAutoSave)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(false)
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Cartridge) SetDefaults() {
	p.RAMFillQuirks.Set(true)
	p.BatteryAutoSave.Set(true)
}

// Load cartridge preferences from disk.
func (p *Cartridge) Load() error {
	return p.dsk.Load(false)
}

// Save cartridge preferences to disk.
func (p *Cartridge) Save() error {
	return p.dsk.Save()
}
