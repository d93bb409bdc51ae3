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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case WRAM:
		return "WRAM"
	case IO:
		return "IO"
	case Cartridge:
		return "Cartridge"
	}

	return "undefined"
}

// The different memory areas in the SNES.
const (
	Undefined Area = iota
	WRAM
	IO
	Cartridge
)

// WRAM is 128KB and fills banks 0x7e and 0x7f. The first 8KB is mirrored in
// the system banks.
const (
	WRAMBank    = uint8(0x7e)
	WRAMSize    = 0x20000
	WRAMMirror  = uint16(0x2000)
	OriginWRAM  = uint32(0x7e0000)
	MemtopWRAM  = uint32(0x7fffff)
	MemtopBanks = uint32(0xffffff)
)

// The register area in the system banks.
const (
	OriginIO = uint16(0x2000)
	MemtopIO = uint16(0x5fff)
)

// The WRAM port registers. These are in the IO area but are handled by the
// memory system.
const (
	WMDATA = uint16(0x2180)
	WMADDL = uint16(0x2181)
	WMADDM = uint16(0x2182)
	WMADDH = uint16(0x2183)
)

// Split an address into the bank and the address within the bank.
func Split(address uint32) (uint8, uint16) {
	return uint8(address >> 16), uint16(address)
}

// Join a bank and an address into a 24 bit address.
func Join(bank uint8, addr uint16) uint32 {
	return uint32(bank)<<16 | uint32(addr)
}

// IsSystemBank returns true for the banks that contain the WRAM mirror and
// the IO area. The system banks are 0x00 to 0x3f and 0x80 to 0xbf.
func IsSystemBank(bank uint8) bool {
	return bank&0x40 == 0x00
}

// MapAddress translates the address argument to the area of memory that
// responds to it. The returned address is normalised for that area.
func MapAddress(address uint32) (uint32, Area) {
	address &= MemtopBanks
	bank, addr := Split(address)

	if bank&0xfe == WRAMBank {
		return address - OriginWRAM, WRAM
	}

	if IsSystemBank(bank) {
		if addr < WRAMMirror {
			return uint32(addr), WRAM
		}
		if addr >= OriginIO && addr <= MemtopIO {
			return uint32(addr), IO
		}
	}

	return address, Cartridge
}

// IsArea returns true if the address is in the specificied area.
func IsArea(address uint32, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
