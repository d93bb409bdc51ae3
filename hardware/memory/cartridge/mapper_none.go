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
	"github.com/mangoemu/mango/hardware/memory/cartridge/mapper"
	"github.com/mangoemu/mango/hardware/state"
)

// none implements the mapper.CartMapper interface. It is used when there is
// no cartridge attached.
type none struct{}

// Layout implements the mapper.CartMapper interface.
func (cart *none) Layout() mapper.Layout {
	return mapper.LayoutNone
}

// Read implements the mapper.CartMapper interface.
func (cart *none) Read(_ uint8, _ uint16, openBus uint8) uint8 {
	return openBus
}

// Write implements the mapper.CartMapper interface.
func (cart *none) Write(_ uint8, _ uint16, _ uint8) {
}

// Reset implements the mapper.CartMapper interface.
func (cart *none) Reset() {
}

// HandleState implements the mapper.CartMapper interface.
func (cart *none) HandleState(_ *state.Handler) {
}
