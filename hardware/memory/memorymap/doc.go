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

// Package memorymap facilitates the translation of addresses on the 24 bit
// address bus to the area of memory that responds to them.
//
// The address is made up of an 8 bit bank and a 16 bit address within the
// bank. The MapAddress() function returns the Area for an address along with
// the address normalised for that area. For WRAM, the normalised address is
// the index into the 128KB of work RAM. For the IO area it is the 16 bit
// register address. Cartridge addresses are returned unchanged because the
// cartridge mapper decides what to do with them.
package memorymap
