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

package memory

import (
	"github.com/mangoemu/mango/environment"
	"github.com/mangoemu/mango/hardware/memory/bus"
	"github.com/mangoemu/mango/hardware/memory/cartridge"
	"github.com/mangoemu/mango/hardware/memory/memorymap"
	"github.com/mangoemu/mango/hardware/state"
)

// Memory is the monolithic representation of the memory in the SNES. It
// implements the bus.CPUBus and bus.DebuggerBus interfaces.
type Memory struct {
	env *environment.Environment

	// the cartridge is always present. it may have nothing attached
	Cart *cartridge.Cartridge

	// the registers of the other chips in the IO area. reads from the IO area
	// return the open bus value if IO is nil
	IO bus.IOBus

	// work RAM
	WRAM []uint8

	// the address used by the WRAM port registers. only the lower 17 bits are
	// used
	wramPort uint32

	// the last value seen on the data bus
	openBus uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(env *environment.Environment) *Memory {
	return &Memory{
		env:  env,
		Cart: cartridge.NewCartridge(env),
		WRAM: make([]uint8, memorymap.WRAMSize),
	}
}

// Reset the memory system. A hard reset fills WRAM with the fill value
// chosen by the cartridge. The cartridge is not reset.
func (mem *Memory) Reset(hard bool) {
	if hard {
		fill := mem.Cart.RAMFill()
		for i := range mem.WRAM {
			mem.WRAM[i] = fill
		}
	}
	mem.wramPort = 0
	mem.openBus = 0
}

// OpenBus returns the last value seen on the data bus.
func (mem *Memory) OpenBus() uint8 {
	return mem.openBus
}

// Read implements the bus.CPUBus interface.
func (mem *Memory) Read(address uint32) uint8 {
	mapped, area := memorymap.MapAddress(address)

	var data uint8

	switch area {
	case memorymap.WRAM:
		data = mem.WRAM[mapped]
	case memorymap.IO:
		data = mem.readIO(uint16(mapped))
	default:
		bank, addr := memorymap.Split(mapped)
		data = mem.Cart.Read(bank, addr, mem.openBus)
	}

	mem.openBus = data

	return data
}

func (mem *Memory) readIO(addr uint16) uint8 {
	switch addr {
	case memorymap.WMDATA:
		data := mem.WRAM[mem.wramPort]
		mem.wramPort = (mem.wramPort + 1) & (memorymap.WRAMSize - 1)
		return data
	case memorymap.WMADDL, memorymap.WMADDM, memorymap.WMADDH:
		// write only
		return mem.openBus
	}

	if mem.IO == nil {
		return mem.openBus
	}

	return mem.IO.IORead(addr, mem.openBus)
}

// Write implements the bus.CPUBus interface.
func (mem *Memory) Write(address uint32, data uint8) {
	mem.openBus = data

	mapped, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.WRAM:
		mem.WRAM[mapped] = data
	case memorymap.IO:
		mem.writeIO(uint16(mapped), data)
	default:
		bank, addr := memorymap.Split(mapped)
		mem.Cart.Write(bank, addr, data)
	}
}

func (mem *Memory) writeIO(addr uint16, data uint8) {
	switch addr {
	case memorymap.WMDATA:
		mem.WRAM[mem.wramPort] = data
		mem.wramPort = (mem.wramPort + 1) & (memorymap.WRAMSize - 1)
		return
	case memorymap.WMADDL:
		mem.wramPort = (mem.wramPort & 0x1ff00) | uint32(data)
		return
	case memorymap.WMADDM:
		mem.wramPort = (mem.wramPort & 0x100ff) | uint32(data)<<8
		return
	case memorymap.WMADDH:
		mem.wramPort = (mem.wramPort & 0x0ffff) | uint32(data&0x01)<<16
		return
	}

	if mem.IO != nil {
		mem.IO.IOWrite(addr, data)
	}
}

// Peek implements the bus.DebuggerBus interface.
func (mem *Memory) Peek(address uint32) uint8 {
	mapped, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.WRAM:
		return mem.WRAM[mapped]
	case memorymap.IO:
		return mem.openBus
	}

	bank, addr := memorymap.Split(mapped)
	return mem.Cart.Read(bank, addr, mem.openBus)
}

// Poke implements the bus.DebuggerBus interface. Pokes to the IO area are
// ignored.
func (mem *Memory) Poke(address uint32, value uint8) {
	mapped, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.WRAM:
		mem.WRAM[mapped] = value
	case memorymap.Cartridge:
		bank, addr := memorymap.Split(mapped)
		mem.Cart.Write(bank, addr, value)
	}
}

// HandleState saves or restores the open bus value, the WRAM port address
// and the contents of WRAM. The cartridge is not included.
func (mem *Memory) HandleState(sh *state.Handler) {
	sh.Bytes(&mem.openBus)
	sh.Ints(&mem.wramPort)
	sh.ByteArray(mem.WRAM)
	mem.wramPort &= memorymap.WRAMSize - 1
}
