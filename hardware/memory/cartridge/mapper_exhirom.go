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

// exHiROM implements the mapper.CartMapper interface. The layout is the same
// as HiROM except that banks 0x00 to 0x7f map the second 4MB of the ROM.
type exHiROM struct {
	memory
}

func newExHiROM(rom []uint8, ram []uint8) *exHiROM {
	return &exHiROM{
		memory: newMemory(rom, ram),
	}
}

// Layout implements the mapper.CartMapper interface.
func (cart *exHiROM) Layout() mapper.Layout {
	return mapper.LayoutExHiROM
}

// Read implements the mapper.CartMapper interface.
func (cart *exHiROM) Read(bank uint8, addr uint16, openBus uint8) uint8 {
	if cart.hasRAM() && hiROMRAMWindow(bank, addr) {
		return cart.ram[hiROMRAMIndex(bank, addr)&cart.ramMask]
	}

	var half uint32
	if bank < 0x80 {
		half = 0x400000
	}

	bank &= 0x7f
	if addr >= 0x8000 || bank >= 0x40 {
		return cart.rom[(uint32(bank&0x3f)<<16|half|uint32(addr))&cart.romMask]
	}

	return openBus
}

// Write implements the mapper.CartMapper interface.
func (cart *exHiROM) Write(bank uint8, addr uint16, data uint8) {
	writeHiROM(&cart.memory, bank, addr, data)
}

// Reset implements the mapper.CartMapper interface.
func (cart *exHiROM) Reset() {
}

// HandleState implements the mapper.CartMapper interface.
func (cart *exHiROM) HandleState(sh *state.Handler) {
	cart.handleState(sh)
}
