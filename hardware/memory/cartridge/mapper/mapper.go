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

// Package mapper contains the interfaces implemented by the cartridge
// mappers and by cartridge coprocessors.
package mapper

import (
	"github.com/mangoemu/mango/hardware/state"
)

// Layout is the address decoding convention used by a cartridge.
type Layout uint8

// List of valid Layout values. The numeric values are stored in save states.
const (
	LayoutNone Layout = iota
	LayoutLoROM
	LayoutHiROM
	LayoutExHiROM
	LayoutCX4
)

// MaxLayout is the largest supported Layout value.
const MaxLayout = LayoutCX4

func (l Layout) String() string {
	switch l {
	case LayoutNone:
		return "(none)"
	case LayoutLoROM:
		return "LoROM"
	case LayoutHiROM:
		return "HiROM"
	case LayoutExHiROM:
		return "ExHiROM"
	case LayoutCX4:
		return "CX4"
	}
	return "unsupported"
}

// CartMapper implementations decode accesses to the cartridge address space
// for a single cartridge layout. The ROM and RAM are owned by the Cartridge
// type in the parent package.
type CartMapper interface {
	Layout() Layout

	// read from the cartridge. the openBus value is returned for addresses
	// that the cartridge does not respond to
	Read(bank uint8, addr uint16, openBus uint8) uint8

	// write to the cartridge. writes to ROM or to unmapped addresses are
	// ignored
	Write(bank uint8, addr uint16, data uint8)

	// reset volatile areas of the cartridge. cartridge RAM is not volatile
	Reset()

	// save or restore the cartridge RAM and any coprocessor state
	HandleState(sh *state.Handler)
}

// Coprocessor is implemented by chips on the cartridge that are accessed
// through a register window.
type Coprocessor interface {
	// put the coprocessor into the power-on state
	Init()
	Reset()

	// access the register window. the address is the full 16 bit address
	Read(addr uint16) uint8
	Write(addr uint16, data uint8)

	HandleState(sh *state.Handler)
}
