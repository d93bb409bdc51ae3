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

// Package bus defines the memory bus concept. For an explanation see the
// memory package documentation.
package bus

// CPUBus defines the operations for the memory system when accessed from the
// CPU. The address is the full 24 bit address. Every read updates the open bus
// value.
type CPUBus interface {
	Read(address uint32) uint8
	Write(address uint32, data uint8)
}

// IOBus defines the operations for the registers of the chips that are mapped
// into the IO area of the system banks. The openBus value is returned by
// IORead() for addresses that the chips do not respond to, or for bits in a
// register that are not driven.
type IOBus interface {
	IORead(address uint16, openBus uint8) uint8
	IOWrite(address uint16, data uint8)
}

// DebuggerBus defines the meta-operations for the memory system. Think of
// these functions as "debugging" functions, that is operations outside of the
// normal operation of the machine. Peek() does not update the open bus value
// and does not read from the IO area.
type DebuggerBus interface {
	Peek(address uint32) uint8
	Poke(address uint32, value uint8)
}
