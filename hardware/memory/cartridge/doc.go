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

// Package cartridge implements the SNES cartridge. It identifies the layout
// of a ROM from the internal header, prepares the ROM and RAM, and decodes
// accesses to the cartridge address space.
//
// ROM dumps do not reliably identify their own layout. Fingerprint() scores
// the six possible header locations and chooses the most plausible. The
// locations are:
//
//	0x7fc0		LoROM
//	0x81c0		LoROM with 512 byte copier header
//	0xffc0		HiROM
//	0x101c0		HiROM with copier header
//	0x40ffc0	ExHiROM
//	0x4101c0	ExHiROM with copier header
//
// The ROM is padded to a power of two size by mirroring, in the way the
// hardware address decoding mirrors an odd sized ROM. All address decoding
// relies on the ROM and RAM sizes being powers of two.
//
// Supported layouts are LoROM, HiROM, ExHiROM and CX4 (a LoROM cartridge with
// a coprocessor register window). Each layout is implemented by a type that
// satisfies the mapper.CartMapper interface. The Cartridge type delegates to
// the mapper for the current layout.
//
// Cartridge RAM is assumed to be battery backed and is never cleared by a
// reset. It is only replaced when a new ROM is attached.
package cartridge
