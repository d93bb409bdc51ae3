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

// memory is the ROM and RAM as seen by a mapper. the slices are owned by the
// Cartridge type. both sizes are powers of two and the masks are used to
// mirror addresses over the memory.
type memory struct {
	rom     []uint8
	romMask uint32
	ram     []uint8
	ramMask uint32
}

func newMemory(rom []uint8, ram []uint8) memory {
	m := memory{
		rom:     rom,
		romMask: uint32(len(rom) - 1),
		ram:     ram,
	}
	if len(ram) > 0 {
		m.ramMask = uint32(len(ram) - 1)
	}
	return m
}

func (m *memory) hasRAM() bool {
	return len(m.ram) > 0
}

func (m *memory) handleState(sh *state.Handler) {
	if m.hasRAM() {
		sh.ByteArray(m.ram)
	}
}

// banks 0x70 to 0x7d and 0xf0 to 0xff contain the save RAM in a LoROM
// cartridge. the same test is used for reads and writes.
func loROMRAMBank(bank uint8) bool {
	return (bank >= 0x70 && bank < 0x7e) || bank >= 0xf0
}

// index into RAM for the LoROM save RAM window.
func loROMRAMIndex(bank uint8, addr uint16) uint32 {
	return uint32(bank&0x0f)<<15 | uint32(addr)
}

// index into ROM for LoROM. the bank should have the top bit cleared.
func loROMIndex(bank uint8, addr uint16) uint32 {
	return uint32(bank)<<15 | uint32(addr&0x7fff)
}

// loROM implements the mapper.CartMapper interface.
type loROM struct {
	memory

	// ROMs of 2MB or more use the upper half of the RAM banks for ROM
	largeROM bool
}

func newLoROM(rom []uint8, ram []uint8) *loROM {
	return &loROM{
		memory:   newMemory(rom, ram),
		largeROM: len(rom) >= 0x200000,
	}
}

// Layout implements the mapper.CartMapper interface.
func (cart *loROM) Layout() mapper.Layout {
	return mapper.LayoutLoROM
}

func (cart *loROM) isRAM(bank uint8, addr uint16) bool {
	return cart.hasRAM() && loROMRAMBank(bank) && (!cart.largeROM || addr < 0x8000)
}

// Read implements the mapper.CartMapper interface.
func (cart *loROM) Read(bank uint8, addr uint16, openBus uint8) uint8 {
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
func (cart *loROM) Write(bank uint8, addr uint16, data uint8) {
	if cart.isRAM(bank, addr) {
		cart.ram[loROMRAMIndex(bank, addr)&cart.ramMask] = data
	}
}

// Reset implements the mapper.CartMapper interface.
func (cart *loROM) Reset() {
}

// HandleState implements the mapper.CartMapper interface.
func (cart *loROM) HandleState(sh *state.Handler) {
	cart.handleState(sh)
}
