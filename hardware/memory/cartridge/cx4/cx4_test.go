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

package cx4_test

import (
	"testing"

	"github.com/mangoemu/mango/hardware/memory/cartridge/cx4"
	"github.com/mangoemu/mango/hardware/memory/cartridge/mapper"
	"github.com/mangoemu/mango/hardware/state"
	"github.com/mangoemu/mango/test"
)

func TestRegisters(t *testing.T) {
	var c mapper.Coprocessor = cx4.NewCX4()

	c.Write(0x6000, 0x11)
	c.Write(0x7f50, 0x22)
	test.ExpectEquality(t, c.Read(0x6000), uint8(0x11))
	test.ExpectEquality(t, c.Read(0x7f50), uint8(0x22))

	// reset clears registers only
	c.Reset()
	test.ExpectEquality(t, c.Read(0x6000), uint8(0x11))
	test.ExpectEquality(t, c.Read(0x7f50), uint8(0x00))

	// init clears everything
	c.Init()
	test.ExpectEquality(t, c.Read(0x6000), uint8(0x00))
}

func TestState(t *testing.T) {
	c := cx4.NewCX4()
	c.Write(0x6123, 0x99)

	sh := state.NewSaver()
	c.HandleState(sh)
	test.ExpectEquality(t, sh.Offset(), 0x2000)

	d := cx4.NewCX4()
	d.HandleState(state.NewLoader(sh.Data()))
	test.ExpectEquality(t, d.Read(0x6123), uint8(0x99))
}
