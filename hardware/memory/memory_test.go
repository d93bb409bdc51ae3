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

package memory_test

import (
	"os"
	"testing"

	"github.com/mangoemu/mango/environment"
	"github.com/mangoemu/mango/hardware/memory"
	"github.com/mangoemu/mango/hardware/memory/cartridge/testrom"
	"github.com/mangoemu/mango/hardware/state"
	"github.com/mangoemu/mango/test"
)

func newMemory(t *testing.T, h testrom.Header) *memory.Memory {
	t.Helper()

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	t.Cleanup(func() { os.Chdir(wd) })
	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()

	mem := memory.NewMemory(env)

	data := make([]byte, 0x8000)
	testrom.Write(data, 0x7fc0, h)
	test.DemandSuccess(t, mem.Cart.Attach(data))

	return mem
}

// ioBus records the most recent write and returns a fixed value for reads.
type ioBus struct {
	addr uint16
	data uint8
}

func (io *ioBus) IORead(addr uint16, openBus uint8) uint8 {
	if addr == 0x4016 {
		return openBus&0xfc | 0x01
	}
	return openBus
}

func (io *ioBus) IOWrite(addr uint16, data uint8) {
	io.addr = addr
	io.data = data
}

func TestWRAM(t *testing.T) {
	mem := newMemory(t, testrom.Header{})

	mem.Write(0x7e0010, 0x12)
	test.ExpectEquality(t, mem.WRAM[0x0010], uint8(0x12))
	test.ExpectEquality(t, mem.Read(0x000010), uint8(0x12))
	test.ExpectEquality(t, mem.Read(0x800010), uint8(0x12))
	test.ExpectEquality(t, mem.Read(0x3f0010), uint8(0x12))

	// the second WRAM bank is not mirrored
	mem.Write(0x7f0010, 0x34)
	test.ExpectEquality(t, mem.WRAM[0x10010], uint8(0x34))
	test.ExpectEquality(t, mem.Read(0x000010), uint8(0x12))

	// no mirror outside of the system banks
	mem.Write(0x400010, 0x56)
	test.ExpectEquality(t, mem.WRAM[0x0010], uint8(0x12))
}

func TestOpenBus(t *testing.T) {
	mem := newMemory(t, testrom.Header{})

	mem.Write(0x7e0000, 0xab)
	test.ExpectEquality(t, mem.Read(0x7e0000), uint8(0xab))

	// unmapped cartridge address
	test.ExpectEquality(t, mem.Read(0x006000), uint8(0xab))

	// ROM read changes the open bus value
	test.ExpectEquality(t, mem.Read(0x008000), uint8(0x78))
	test.ExpectEquality(t, mem.OpenBus(), uint8(0x78))

	// IO area with nothing attached
	test.ExpectEquality(t, mem.Read(0x004016), uint8(0x78))

	// writes also drive the bus
	mem.Write(0x006000, 0x11)
	test.ExpectEquality(t, mem.OpenBus(), uint8(0x11))

	// peek does not change the open bus
	test.ExpectEquality(t, mem.Peek(0x008000), uint8(0x78))
	test.ExpectEquality(t, mem.OpenBus(), uint8(0x11))
}

func TestIOBus(t *testing.T) {
	mem := newMemory(t, testrom.Header{})
	io := &ioBus{}
	mem.IO = io

	mem.Write(0x7e0000, 0xf0)
	mem.Read(0x7e0000)
	test.ExpectEquality(t, mem.Read(0x004016), uint8(0xf1))
	test.ExpectEquality(t, mem.Read(0x804016), uint8(0xf1))

	mem.Write(0x002100, 0x8f)
	test.ExpectEquality(t, io.addr, uint16(0x2100))
	test.ExpectEquality(t, io.data, uint8(0x8f))

	// pokes do not reach the IO bus
	mem.Poke(0x002101, 0x01)
	test.ExpectEquality(t, io.addr, uint16(0x2100))
}

func TestWRAMPort(t *testing.T) {
	mem := newMemory(t, testrom.Header{})
	io := &ioBus{}
	mem.IO = io

	mem.Write(0x002181, 0x34)
	mem.Write(0x002182, 0x12)
	mem.Write(0x002183, 0xff)
	mem.Write(0x002180, 0x99)
	mem.Write(0x002180, 0x98)
	test.ExpectEquality(t, mem.WRAM[0x11234], uint8(0x99))
	test.ExpectEquality(t, mem.WRAM[0x11235], uint8(0x98))

	// the port registers are handled by memory and not the IO bus
	test.ExpectEquality(t, io.addr, uint16(0x0000))

	// port address wraps at the end of WRAM
	mem.WRAM[0x1ffff] = 0x77
	mem.WRAM[0x00000] = 0x66
	mem.Write(0x002181, 0xff)
	mem.Write(0x002182, 0xff)
	mem.Write(0x002183, 0x01)
	test.ExpectEquality(t, mem.Read(0x002180), uint8(0x77))
	test.ExpectEquality(t, mem.Read(0x002180), uint8(0x66))
}

func TestReset(t *testing.T) {
	mem := newMemory(t, testrom.Header{Name: "DEATH BRADE"})

	mem.Write(0x7e0000, 0x12)
	mem.Reset(false)
	test.ExpectEquality(t, mem.WRAM[0], uint8(0x12))
	test.ExpectEquality(t, mem.OpenBus(), uint8(0x00))

	mem.Reset(true)
	for i := range mem.WRAM {
		if !test.ExpectEquality(t, mem.WRAM[i], uint8(0xff), i) {
			break
		}
	}
}

func TestState(t *testing.T) {
	mem := newMemory(t, testrom.Header{})

	mem.Write(0x7e0100, 0x42)
	mem.Write(0x002181, 0x00)
	mem.Write(0x002182, 0x01)
	mem.Write(0x002183, 0x00)

	sh := state.NewSaver()
	mem.HandleState(sh)
	test.ExpectEquality(t, sh.Offset(), 1+4+0x20000)
	saved := sh.Data()

	mem.Reset(true)
	test.ExpectEquality(t, mem.WRAM[0x100], uint8(0x00))

	sh = state.NewLoader(saved)
	mem.HandleState(sh)
	test.ExpectEquality(t, sh.Remaining(), 0)
	test.ExpectEquality(t, mem.WRAM[0x100], uint8(0x42))
	test.ExpectEquality(t, mem.OpenBus(), uint8(0x00))

	// the WRAM port address is restored
	test.ExpectEquality(t, mem.Read(0x002180), uint8(0x42))
}
