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

// register ranges in the IO area.
const (
	originPPU = 0x2100
	memtopPPU = 0x213f
	originAPU = 0x2140
	memtopAPU = 0x217f
	originCPU = 0x4200
	memtopCPU = 0x43ff

	joyser0 = 0x4016
	joyser1 = 0x4017
)

// IORead implements the bus.IOBus interface.
func (snes *SNES) IORead(address uint16, openBus uint8) uint8 {
	switch {
	case address >= originPPU && address <= memtopPPU:
		return snes.PPU.IORead(address, openBus)
	case address >= originAPU && address <= memtopAPU:
		return snes.APU.IORead(address, openBus)
	case address >= originCPU && address <= memtopCPU:
		return snes.CPU.IORead(address, openBus)
	case address == joyser0:
		return snes.Input.Players[0].Read() | openBus&0xfc
	case address == joyser1:
		return snes.Input.Players[1].Read() | openBus&0xe0 | 0x1c
	}
	return openBus
}

// IOWrite implements the bus.IOBus interface.
func (snes *SNES) IOWrite(address uint16, data uint8) {
	switch {
	case address >= originPPU && address <= memtopPPU:
		snes.PPU.IOWrite(address, data)
	case address >= originAPU && address <= memtopAPU:
		snes.APU.IOWrite(address, data)
	case address >= originCPU && address <= memtopCPU:
		snes.CPU.IOWrite(address, data)
	case address == joyser0:
		snes.Input.Latch(data&0x01 == 0x01)
	}
}
