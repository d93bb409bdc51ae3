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

// Package state is the positional binary codec used for save states. A
// Handler is created in one of three modes and the same sequence of calls is
// made on it by the components being saved or restored:
//
//	func (c *Component) HandleState(sh *state.Handler) {
//		sh.Bools(&c.flag)
//		sh.Bytes(&c.register)
//		sh.Words(&c.address, &c.latch)
//	}
//
// In Saving mode the values are appended to a growing buffer. In Loading mode
// the same number of bytes are consumed from the buffer and written into the
// variables. In Verifying mode the bytes are consumed and compared with the
// variables, which are never written.
//
// There is no schema in the data. The order of calls is the format and it
// must be identical for saving and loading. All values are little-endian.
//
// Reading past the end of the buffer sets the Overrun() flag. Values that
// cannot be read in full are left untouched and all subsequent reads are
// ignored.
package state
