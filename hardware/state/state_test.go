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

package state_test

import (
	"testing"

	"github.com/mangoemu/mango/hardware/state"
	"github.com/mangoemu/mango/test"
)

type component struct {
	flags   [10]bool
	reg     uint8
	addr    uint16
	counter uint32
	cycles  uint64
	ram     [16]uint8
}

func (c *component) HandleState(sh *state.Handler) {
	sh.Bools(&c.flags[0], &c.flags[1], &c.flags[2], &c.flags[3], &c.flags[4],
		&c.flags[5], &c.flags[6], &c.flags[7], &c.flags[8], &c.flags[9])
	sh.Bytes(&c.reg)
	sh.Words(&c.addr)
	sh.Ints(&c.counter)
	sh.Longs(&c.cycles)
	sh.ByteArray(c.ram[:])
}

func newComponent() *component {
	c := &component{
		reg:     0x12,
		addr:    0x3456,
		counter: 0x789abcde,
		cycles:  0x0123456789abcdef,
	}
	c.flags[0] = true
	c.flags[3] = true
	c.flags[9] = true
	for i := range c.ram {
		c.ram[i] = uint8(i * 3)
	}
	return c
}

func TestLayout(t *testing.T) {
	c := newComponent()

	sh := state.NewSaver()
	c.HandleState(sh)

	// 2 bytes of packed bools, 1 byte, 2 bytes, 4 bytes, 8 bytes, 16 bytes
	test.ExpectEquality(t, sh.Offset(), 33)

	d := sh.Data()
	test.DemandEquality(t, len(d), 33)
	test.ExpectEquality(t, d[0], uint8(0x09))
	test.ExpectEquality(t, d[1], uint8(0x02))
	test.ExpectEquality(t, d[2], uint8(0x12))

	// little-endian
	test.ExpectEquality(t, d[3], uint8(0x56))
	test.ExpectEquality(t, d[4], uint8(0x34))
	test.ExpectEquality(t, d[5], uint8(0xde))
	test.ExpectEquality(t, d[8], uint8(0x78))
	test.ExpectEquality(t, d[9], uint8(0xef))
	test.ExpectEquality(t, d[16], uint8(0x01))
	test.ExpectEquality(t, d[32], uint8(45))
}

func TestRoundTrip(t *testing.T) {
	c := newComponent()

	sh := state.NewSaver()
	c.HandleState(sh)

	var r component
	ld := state.NewLoader(sh.Data())
	r.HandleState(ld)
	test.ExpectSuccess(t, !ld.Overrun())
	test.ExpectEquality(t, ld.Remaining(), 0)
	test.ExpectEquality(t, r, *c)
}

func TestVerify(t *testing.T) {
	c := newComponent()

	sh := state.NewSaver()
	c.HandleState(sh)

	// identical values
	vr := state.NewVerifier(sh.Data())
	c.HandleState(vr)
	test.ExpectSuccess(t, !vr.Mismatch())
	test.ExpectSuccess(t, !vr.Overrun())

	// verification never writes to the values
	var r component
	vr = state.NewVerifier(sh.Data())
	r.HandleState(vr)
	test.ExpectSuccess(t, vr.Mismatch())
	test.ExpectEquality(t, r, component{})
}

func TestOverrun(t *testing.T) {
	c := newComponent()

	sh := state.NewSaver()
	c.HandleState(sh)

	// truncate the data part way through the counter field
	var r component
	ld := state.NewLoader(sh.Data()[:7])
	r.HandleState(ld)
	test.ExpectSuccess(t, ld.Overrun())
	test.ExpectEquality(t, r.addr, c.addr)

	// values that could not be read are untouched
	test.ExpectEquality(t, r.counter, uint32(0))
	test.ExpectEquality(t, r.cycles, uint64(0))
	test.ExpectEquality(t, r.ram[1], uint8(0))
}

func TestPlaceInt(t *testing.T) {
	sh := state.NewSaver()

	var a, b, c uint32 = 1, 2, 3
	sh.Ints(&a, &b, &c)
	sh.PlaceInt(4, 0xaabbccdd)

	var x, y, z uint32
	ld := state.NewLoader(sh.Data())
	ld.Ints(&x, &y, &z)
	test.ExpectEquality(t, x, uint32(1))
	test.ExpectEquality(t, y, uint32(0xaabbccdd))
	test.ExpectEquality(t, z, uint32(3))

	// placing outside the written data has no effect
	sh.PlaceInt(10, 0xffffffff)
	test.ExpectEquality(t, sh.Offset(), 12)
}
