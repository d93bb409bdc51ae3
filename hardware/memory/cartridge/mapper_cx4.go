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

// cx4ROM implements the mapper.CartMapper interface. The layout is LoROM with
// the coprocessor registers at 0x6000 to 0x7fff in banks 0x00 to 0x3f and
// 0x80 to 0xbf.
type cx4ROM struct {
	memory
	coproc mapper.Coprocessor
}

func newCX4ROM(rom []uint8, ram []uint8, coproc mapper.Coprocessor) *cx4ROM {
	return &cx4ROM{
		memory: newMemory(rom, ram),
		coproc: coproc,
	}
}

// Layout implements the mapper.CartMapper interface.
func (cart *cx4ROM) Layout() mapper.Layout {
	return mapper.LayoutCX4
}

func cx4Window(bank uint8, addr uint16) bool {
	return bank&0x7f < 0x40 && addr >= 0x6000 && addr < 0x8000
}

// unlike LoROM, the save RAM is always limited to the lower half of the bank
func (cart *cx4ROM) isRAM(bank uint8, addr uint16) bool {
	return cart.hasRAM() && loROMRAMBank(bank) && addr < 0x8000
}

// Read implements the mapper.CartMapper interface.
func (cart *cx4ROM) Read(bank uint8, addr uint16, openBus uint8) uint8 {
	if cx4Window(bank, addr) {
		return cart.coproc.Read(addr)
	}

	if cart.isRAM(bank, addr) {
		return cart.ram[loROMRAMIndex(bank, addr)&cart.ramMask]
	}

	bank &= 0x7f
	if addr >= 0x8000 || bank >= 0x40 {
		return cart.rom[loROMIndex(bank, addr)&cart.romMask]
	}

	return openBus
}

// Write implements the mapper.CartMapper interface.
func (cart *cx4ROM) Write(bank uint8, addr uint16, data uint8) {
	if cx4Window(bank, addr) {
		cart.coproc.Write(addr, data)
	}

	if cart.isRAM(bank, addr) {
		cart.ram[loROMRAMIndex(bank, addr)&cart.ramMask] = data
	}
}

// Reset implements the mapper.CartMapper interface. The coprocessor is put
// into its power-on state. RAM is untouched.
func (cart *cx4ROM) Reset() {
	cart.coproc.Init()
	cart.coproc.Reset()
}

// HandleState implements the mapper.CartMapper interface.
func (cart *cx4ROM) HandleState(sh *state.Handler) {
	cart.handleState(sh)
	cart.coproc.HandleState(sh)
}
