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

package cartridge

import (
	"github.com/mangoemu/mango/curated"
)

// Sentinal error patterns.
const (
	NoBattery           = "cartridge: no battery"
	BatterySizeMismatch = "cartridge: battery size mismatch (expected %d bytes, got %d)"
)

// SaveBattery copies the battery backed RAM to dst. If dst is nil, only the
// size of the RAM is returned. Otherwise dst must be at least that size.
//
// Returns the NoBattery error if the cartridge has no battery.
func (cart *Cartridge) SaveBattery(dst []byte) (int, error) {
	if !cart.hasBattery {
		return 0, curated.Errorf(NoBattery)
	}

	if dst == nil {
		return len(cart.ram), nil
	}

	if len(dst) < len(cart.ram) {
		return 0, curated.Errorf(BatterySizeMismatch, len(cart.ram), len(dst))
	}

	return copy(dst, cart.ram), nil
}

// LoadBattery copies src to the battery backed RAM. The length of src must
// be the same as the RAM size. If an error is returned the RAM is unchanged.
//
// Returns the NoBattery error if the cartridge has no battery.
func (cart *Cartridge) LoadBattery(src []byte) error {
	if !cart.hasBattery {
		return curated.Errorf(NoBattery)
	}

	if len(src) != len(cart.ram) {
		return curated.Errorf(BatterySizeMismatch, len(cart.ram), len(src))
	}

	copy(cart.ram, src)

	return nil
}
