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

// the save RAM window for HiROM and ExHiROM is at 0x6000 to 0x7fff in banks
// 0x00 to 0x3f and 0x80 to 0xbf.
func hiROMRAMWindow(bank uint8, addr uint16) bool {
	return bank&0x7f < 0x40 && addr >= 0x6000 && addr < 0x8000
}

func hiROMRAMIndex(bank uint8, addr uint16) uint32 {
	return uint32(bank&0x3f)<<13 | uint32(addr&0x1fff)
}

// hiROM implements the mapper.CartMapper interface.
type hiROM struct {
	memory
}

func newHiROM(rom []uint8, ram []uint8) *hiROM {
	return &hiROM{
		memory: newMemory(rom, ram),
	}
}

// Layout implements the mapper.CartMapper interface.
func (cart *hiROM) Layout() mapper.Layout {
	return mapper.LayoutHiROM
}

// Read implements the mapper.CartMapper interface.
func (cart *hiROM) Read(bank uint8, addr uint16, openBus uint8) uint8 {
	if cart.hasRAM() && hiROMRAMWindow(bank, addr) {
		return cart.ram[hiROMRAMIndex(bank, addr)&cart.ramMask]
	}

	bank &= 0x7f
	if addr >= 0x8000 || bank >= 0x40 {
		return cart.rom[(uint32(bank&0x3f)<<16|uint32(addr))&cart.romMask]
	}

	return openBus
}

// Write implements the mapper.CartMapper interface.
func (cart *hiROM) Write(bank uint8, addr uint16, data uint8) {
	writeHiROM(&cart.memory, bank, addr, data)
}

// writeHiROM is shared by the HiROM and ExHiROM mappers.
func writeHiROM(m *memory, bank uint8, addr uint16, data uint8) {
	if m.hasRAM() && hiROMRAMWindow(bank, addr) {
		m.ram[hiROMRAMIndex(bank, addr)&m.ramMask] = data
	}
}

// Reset implements the mapper.CartMapper interface.
func (cart *hiROM) Reset() {
}

// HandleState implements the mapper.CartMapper interface.
func (cart *hiROM) HandleState(sh *state.Handler) {
	cart.handleState(sh)
}
