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

package input

import (
	"github.com/mangoemu/mango/hardware/state"
)

// the type of peripheral. only the joypad is supported.
const typeJoypad = 0x01

// Controller is the standard SNES joypad. The button state is loaded into a
// 16 bit shift register when the latch line is high. Each read returns the
// lowest bit of the register and shifts a one into the top.
type Controller struct {
	kind uint8

	latchLine bool

	// the buttons that are currently pressed. bit positions are given by the
	// Button type
	currentState uint16

	// the shift register read by the console
	latchedState uint16
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController() *Controller {
	return &Controller{
		kind: typeJoypad,
	}
}

// Reset the controller. The current button state is not changed.
func (c *Controller) Reset() {
	c.latchLine = false
	c.latchedState = 0
}

// SetButton changes the state of a button.
func (c *Controller) SetButton(b Button, pressed bool) {
	if pressed {
		c.currentState |= 1 << b
	} else {
		c.currentState &^= 1 << b
	}
}

// Pressed returns true if the button is currently pressed.
func (c *Controller) Pressed(b Button) bool {
	return c.currentState&(1<<b) != 0
}

// Latch sets the latch line. The button state is copied into the shift
// register while the line is high.
func (c *Controller) Latch(v bool) {
	c.latchLine = v
	if c.latchLine {
		c.latchedState = c.currentState
	}
}

// Read the next bit from the shift register.
func (c *Controller) Read() uint8 {
	if c.latchLine {
		c.latchedState = c.currentState
	}
	v := uint8(c.latchedState & 0x01)
	c.latchedState >>= 1
	c.latchedState |= 0x8000
	return v
}

// HandleState saves or restores the state of the controller.
func (c *Controller) HandleState(sh *state.Handler) {
	sh.Bytes(&c.kind)
	sh.Bools(&c.latchLine)
	sh.Words(&c.currentState, &c.latchedState)
}
