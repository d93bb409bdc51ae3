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

// Package memory implements the 24 bit address bus of the SNES.
//
//	                     IO bus
//	                        |
//	CPU ---- cpu bus ---- MEMORY ---- Cartridge
//	                        |
//	                  debugger bus
//
// Addresses are decoded by the memorymap package. Work RAM (WRAM) is owned by
// the Memory type, as is the WRAM port used to access WRAM through the IO
// area. The remaining IO registers are forwarded to the IOBus. Everything
// else is passed to the cartridge, which decides what responds to the address.
//
// The value last seen on the data bus is remembered as the open bus value.
// It is passed to the cartridge and to the IOBus so that unmapped addresses
// return the same value as the real hardware.
package memory
