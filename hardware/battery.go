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

package hardware

// HasBattery returns true if the attached cartridge has battery backed RAM.
func (snes *SNES) HasBattery() bool {
	return snes.Mem.Cart.HasBattery()
}

// SaveBattery copies the battery backed RAM of the cartridge to dst. If dst
// is nil, only the size of the RAM is returned.
func (snes *SNES) SaveBattery(dst []byte) (int, error) {
	return snes.Mem.Cart.SaveBattery(dst)
}

// LoadBattery replaces the battery backed RAM of the cartridge. The length of
// src must be the same as the size returned by SaveBattery(nil).
func (snes *SNES) LoadBattery(src []byte) error {
	return snes.Mem.Cart.LoadBattery(src)
}
