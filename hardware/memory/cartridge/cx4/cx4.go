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

// Package cx4 implements the register window of the CX4 coprocessor. The
// coprocessor program is not executed. The window behaves as storage so that
// the CX4 mapper and the save state format can be exercised.
package cx4

import (
	"github.com/mangoemu/mango/hardware/state"
)

// the register window is 0x6000 to 0x7fff.
const (
	windowOrigin = 0x6000
	windowSize   = 0x2000

	// the register area is at the top of the window. the rest of the window is
	// coprocessor data RAM
	registersOrigin = 0x1f40
)

// CX4 implements the mapper.Coprocessor interface.
type CX4 struct {
	window [windowSize]uint8
}

// NewCX4 is the preferred method of initialisation for the CX4 type.
func NewCX4() *CX4 {
	c := &CX4{}
	c.Init()
	return c
}

// Init implements the mapper.Coprocessor interface.
func (c *CX4) Init() {
	clear(c.window[:])
}

// Reset implements the mapper.Coprocessor interface. Only the registers are
// cleared.
func (c *CX4) Reset() {
	clear(c.window[registersOrigin:])
}

// Read implements the mapper.Coprocessor interface.
func (c *CX4) Read(addr uint16) uint8 {
	return c.window[(addr-windowOrigin)&(windowSize-1)]
}

// Write implements the mapper.Coprocessor interface.
func (c *CX4) Write(addr uint16, data uint8) {
	c.window[(addr-windowOrigin)&(windowSize-1)] = data
}

// HandleState implements the mapper.Coprocessor interface.
func (c *CX4) HandleState(sh *state.Handler) {
	sh.ByteArray(c.window[:])
}
