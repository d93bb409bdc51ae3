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

// Package null contains stand-ins for the SNES chips that are not emulated:
// the CPU, the PPU and the APU. The stand-ins have no state, do not respond to
// their registers and produce a black picture and silent audio.
//
// They allow the cartridge and the memory system to be driven, and save
// states to be created, without a full emulation of the console.
package null
