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

package cartridge_test

import (
	"os"
	"testing"

	"github.com/mangoemu/mango/curated"
	"github.com/mangoemu/mango/environment"
	"github.com/mangoemu/mango/hardware/memory/cartridge"
	"github.com/mangoemu/mango/hardware/memory/cartridge/mapper"
	"github.com/mangoemu/mango/hardware/memory/cartridge/testrom"
	"github.com/mangoemu/mango/hardware/state"
	"github.com/mangoemu/mango/test"
)

// newEnvironment creates an environment with default preferences. the
// working directory is changed to a temporary directory for the duration of
// the test so that no preferences file is read or written.
func newEnvironment(t *testing.T) *environment.Environment {
	t.Helper()

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	t.Cleanup(func() { os.Chdir(wd) })
	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()

	return env
}

// newROM returns zeroed ROM data with a single header.
func newROM(size int, location int, h testrom.Header) []byte {
	data := make([]byte, size)
	testrom.Write(data, location, h)
	return data
}

func TestLoROMAttach(t *testing.T) {
	cart := cartridge.NewCartridge(newEnvironment(t))
	test.ExpectSuccess(t, cart.IsEjected())
	test.ExpectEquality(t, cart.Layout(), mapper.LayoutNone)

	data := newROM(0x8000, 0x7fc0, testrom.Header{Name: "TEST"})
	test.DemandSuccess(t, cart.Attach(data))

	test.ExpectFailure(t, cart.IsEjected())
	test.ExpectEquality(t, cart.Layout(), mapper.LayoutLoROM)
	test.ExpectEquality(t, cart.ROMSize(), 0x8000)
	test.ExpectEquality(t, cart.RAMSize(), 0)
	test.ExpectFailure(t, cart.HasBattery())
	test.ExpectEquality(t, cart.Header.Name, "TEST")
	test.ExpectEquality(t, cart.Header.Location, 0x7fc0)
	test.ExpectEquality(t, cart.Header.Score, 47)

	test.ExpectEquality(t, cart.Summary(), "LoROM rom (NTSC)\n\"TEST\"\n32K banks: 1, ramsize: 0, coprocessor: 0")

	// reset vector as seen through the mapper
	test.ExpectEquality(t, cart.Read(0x00, 0xfffc, 0), uint8(0x00))
	test.ExpectEquality(t, cart.Read(0x00, 0xfffd, 0), uint8(0x80))
	test.ExpectEquality(t, cart.Read(0x80, 0x8000, 0), uint8(0x78))

	cart.Eject()
	test.ExpectSuccess(t, cart.IsEjected())
	test.ExpectEquality(t, cart.Read(0x00, 0x8000, 0x12), uint8(0x12))
}

func TestHiROMAttach(t *testing.T) {
	cart := cartridge.NewCartridge(newEnvironment(t))

	data := newROM(0x30000, 0xffc0, testrom.Header{
		Name:   "HIGH",
		Chips:  0x02,
		RAMExp: 0x01,
		Region: 0x02,
	})
	test.DemandSuccess(t, cart.Attach(data))

	test.ExpectEquality(t, cart.Layout(), mapper.LayoutHiROM)
	test.ExpectEquality(t, cart.ROMSize(), 0x40000)
	test.ExpectEquality(t, cart.RAMSize(), 0x800)
	test.ExpectSuccess(t, cart.HasBattery())
	test.ExpectSuccess(t, cart.Header.PAL)

	test.ExpectEquality(t, cart.Summary(), "HiROM rom (PAL)\n\"HIGH\"\n64K banks: 4, ramsize: 2048 (battery-backed), coprocessor: 0")
}

// the reset vector and the instruction at the reset vector are the strongest
// indicators of a genuine header.
func TestScoring(t *testing.T) {
	data := newROM(0x8000, 0x7fc0, testrom.Header{})
	good := cartridge.ReadHeader(data, 0x7fc0)
	test.ExpectEquality(t, good.Score, 47)

	// a reset vector of zero points to the same opcode location
	data[0x7ffc] = 0x00
	data[0x7ffd] = 0x00
	bad := cartridge.ReadHeader(data, 0x7fc0)
	test.ExpectEquality(t, good.Score-bad.Score, 28)

	// BRK at the reset vector
	data = newROM(0x8000, 0x7fc0, testrom.Header{Opcode: 0x00})
	data[0] = 0x00
	test.ExpectEquality(t, cartridge.ReadHeader(data, 0x7fc0).Score, 35)

	// invalid checksum
	data = newROM(0x8000, 0x7fc0, testrom.Header{BadChecksum: true})
	test.ExpectEquality(t, cartridge.ReadHeader(data, 0x7fc0).Score, 33)

	// the opcode is found by following the reset vector
	data = newROM(0x8000, 0x7fc0, testrom.Header{ResetVector: 0x9000, Opcode: 0x5c})
	test.ExpectEquality(t, data[0x1000], uint8(0x5c))
	test.ExpectEquality(t, cartridge.ReadHeader(data, 0x7fc0).Score, 44)

	// candidates that don't fit are not evaluated
	headers := cartridge.ScoreHeaders(make([]byte, 0x8000))
	test.ExpectSuccess(t, headers[0].Evaluated)
	for _, h := range headers[1:] {
		test.ExpectFailure(t, h.Evaluated)
		test.ExpectEquality(t, h.Score, -50)
	}
}

func TestCopierHeader(t *testing.T) {
	cart := cartridge.NewCartridge(newEnvironment(t))

	data := newROM(0x8200, 0x81c0, testrom.Header{Name: "COPIER"})
	test.DemandSuccess(t, cart.Attach(data))

	test.ExpectEquality(t, cart.Layout(), mapper.LayoutLoROM)
	test.ExpectEquality(t, cart.Header.Location, 0x81c0)
	test.ExpectEquality(t, cart.ROMSize(), 0x8000)
	test.ExpectEquality(t, cart.Read(0x00, 0x8000, 0), uint8(0x78))
}

// a tie between the headered HiROM location and the headered ExHiROM location
// is won by ExHiROM.
func TestExHiROMTie(t *testing.T) {
	cart := cartridge.NewCartridge(newEnvironment(t))

	data := make([]byte, 0x410200)
	testrom.Write(data, 0x101c0, testrom.Header{Name: "HIROM"})
	testrom.Write(data, 0x4101c0, testrom.Header{Name: "EXHIROM"})

	headers := cartridge.ScoreHeaders(data)
	test.ExpectEquality(t, headers[3].Score, headers[5].Score)

	test.DemandSuccess(t, cart.Attach(data))
	test.ExpectEquality(t, cart.Layout(), mapper.LayoutExHiROM)
	test.ExpectEquality(t, cart.Header.Location, 0x4101c0)
	test.ExpectEquality(t, cart.Header.Name, "EXHIROM")

	// copier header removed and padded to 8MB
	test.ExpectEquality(t, cart.ROMSize(), 0x800000)
}

func TestRomTooSmall(t *testing.T) {
	cart := cartridge.NewCartridge(newEnvironment(t))

	err := cart.Attach(make([]byte, 0x7fff))
	test.ExpectSuccess(t, curated.Is(err, cartridge.RomTooSmall))
	test.ExpectSuccess(t, cart.IsEjected())

	// a failed attach leaves the previous cartridge in place
	test.DemandSuccess(t, cart.Attach(newROM(0x8000, 0x7fc0, testrom.Header{Name: "FIRST"})))
	err = cart.Attach(nil)
	test.ExpectSuccess(t, curated.Is(err, cartridge.RomTooSmall))
	test.ExpectEquality(t, cart.Layout(), mapper.LayoutLoROM)
	test.ExpectEquality(t, cart.Header.Name, "FIRST")
	test.ExpectEquality(t, cart.ROMSize(), 0x8000)
}

func TestCX4Override(t *testing.T) {
	cart := cartridge.NewCartridge(newEnvironment(t))

	// version 3 header
	data := newROM(0x8000, 0x7fc0, testrom.Header{
		Name:          "MEGAMAN X2",
		Maker:         0x33,
		Coprocessor:   0x0f,
		ExCoprocessor: 0x10,
	})
	test.DemandSuccess(t, cart.Attach(data))
	test.ExpectEquality(t, cart.Layout(), mapper.LayoutCX4)
	test.ExpectEquality(t, cart.Header.HeaderVersion, 3)

	// coprocessor registers are mapped after reset
	cart.Reset()
	cart.Write(0x00, 0x7f40, 0x5a)
	test.ExpectEquality(t, cart.Read(0x00, 0x7f40, 0), uint8(0x5a))
	test.ExpectEquality(t, cart.Read(0x00, 0x8000, 0), uint8(0x78))

	// version 2 header
	data = newROM(0x8000, 0x7fc0, testrom.Header{
		Name:          "MEGAMAN X3",
		ExCoprocessor: 0x10,
	})
	data[0x7fc0+0x14] = 0x00
	test.DemandSuccess(t, cart.Attach(data))
	test.ExpectEquality(t, cart.Layout(), mapper.LayoutCX4)
	test.ExpectEquality(t, cart.Header.HeaderVersion, 2)

	// the byte is ignored in a version 1 header
	data = newROM(0x8000, 0x7fc0, testrom.Header{
		Name:          "MEGAMAN X",
		ExCoprocessor: 0x10,
	})
	test.DemandSuccess(t, cart.Attach(data))
	test.ExpectEquality(t, cart.Layout(), mapper.LayoutLoROM)
	test.ExpectEquality(t, cart.Header.HeaderVersion, 1)
}

func TestRAMSizeClamp(t *testing.T) {
	cart := cartridge.NewCartridge(newEnvironment(t))

	data := newROM(0x8000, 0x7fc0, testrom.Header{Chips: 0x01, RAMExp: 0x0a})
	test.DemandSuccess(t, cart.Attach(data))
	test.ExpectEquality(t, cart.Header.RAMSize, uint32(0x100000))
	test.ExpectEquality(t, cart.RAMSize(), 0x80000)

	// RAM size is ignored if the chips nibble indicates no RAM
	data = newROM(0x8000, 0x7fc0, testrom.Header{Chips: 0x00, RAMExp: 0x03})
	test.DemandSuccess(t, cart.Attach(data))
	test.ExpectEquality(t, cart.RAMSize(), 0)
}

func TestBattery(t *testing.T) {
	cart := cartridge.NewCartridge(newEnvironment(t))

	data := newROM(0x8000, 0x7fc0, testrom.Header{Chips: 0x02, RAMExp: 0x01})
	test.DemandSuccess(t, cart.Attach(data))

	n, err := cart.SaveBattery(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0x800)

	cart.Write(0x70, 0x0000, 0xaa)
	cart.Write(0x70, 0x07ff, 0xbb)

	buf := make([]byte, n)
	n, err = cart.SaveBattery(buf)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0x800)
	test.ExpectEquality(t, buf[0x000], uint8(0xaa))
	test.ExpectEquality(t, buf[0x7ff], uint8(0xbb))

	// destination too small
	_, err = cart.SaveBattery(make([]byte, 0x10))
	test.ExpectSuccess(t, curated.Is(err, cartridge.BatterySizeMismatch))

	// a source of the wrong size leaves RAM unchanged
	err = cart.LoadBattery(make([]byte, 0x400))
	test.ExpectSuccess(t, curated.Is(err, cartridge.BatterySizeMismatch))
	test.ExpectEquality(t, cart.Read(0x70, 0x0000, 0), uint8(0xaa))

	buf[0] = 0xcc
	test.ExpectSuccess(t, cart.LoadBattery(buf))
	test.ExpectEquality(t, cart.Read(0x70, 0x0000, 0), uint8(0xcc))

	// RAM without a battery
	data = newROM(0x8000, 0x7fc0, testrom.Header{Chips: 0x01, RAMExp: 0x01})
	test.DemandSuccess(t, cart.Attach(data))
	test.ExpectFailure(t, cart.HasBattery())
	_, err = cart.SaveBattery(nil)
	test.ExpectSuccess(t, curated.Is(err, cartridge.NoBattery))
	err = cart.LoadBattery(make([]byte, 0x800))
	test.ExpectSuccess(t, curated.Is(err, cartridge.NoBattery))
}

func TestRAMFill(t *testing.T) {
	env := newEnvironment(t)
	cart := cartridge.NewCartridge(env)

	data := newROM(0x8000, 0x7fc0, testrom.Header{Name: "DEATH BRADE", Chips: 0x01, RAMExp: 0x01})
	test.DemandSuccess(t, cart.Attach(data))
	test.ExpectEquality(t, cart.RAMFill(), uint8(0xff))
	test.ExpectEquality(t, cart.Read(0x70, 0x0123, 0), uint8(0xff))

	// quirks can be disabled
	test.DemandSuccess(t, env.Prefs.Cartridge.RAMFillQuirks.Set(false))
	test.DemandSuccess(t, cart.Attach(data))
	test.ExpectEquality(t, cart.RAMFill(), uint8(0x00))
	test.ExpectEquality(t, cart.Read(0x70, 0x0123, 0), uint8(0x00))

	// the default value is used for cartridges without a quirk
	test.DemandSuccess(t, env.Prefs.Cartridge.RAMFillQuirks.Set(true))
	test.DemandSuccess(t, env.Prefs.DefaultRAMFill.Set(0x55))
	data = newROM(0x8000, 0x7fc0, testrom.Header{Name: "ORDINARY", Chips: 0x01, RAMExp: 0x01})
	test.DemandSuccess(t, cart.Attach(data))
	test.ExpectEquality(t, cart.RAMFill(), uint8(0x55))
	test.ExpectEquality(t, cart.Read(0x70, 0x0123, 0), uint8(0x55))
}

func TestHeaderName(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{raw: "PLAIN", expected: "PLAIN"},
		{raw: "AB\x01CD", expected: "AB.CD"},
		{raw: "AB\x01 CD", expected: "AB. CD"},
		{raw: "ABC\x7f", expected: "ABC."},
		{raw: "AB  \x00", expected: "AB  ."},
		{raw: "\xff\xfe", expected: ".."},
	}

	for _, tt := range tests {
		data := newROM(0x8000, 0x7fc0, testrom.Header{Name: tt.raw})
		h := cartridge.ReadHeader(data, 0x7fc0)
		test.ExpectEquality(t, h.Name, tt.expected, tt.raw)
	}
}

func TestHeaderVersion(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(data []byte)
		check   func(t *testing.T, h cartridge.Header)
	}{
		{
			name:    "version 1",
			prepare: func(data []byte) {},
			check: func(t *testing.T, h cartridge.Header) {
				test.ExpectEquality(t, h.HeaderVersion, 1)
				test.ExpectEquality(t, h.MakerCode, "")
				test.ExpectEquality(t, h.GameCode, "")
				test.ExpectEquality(t, h.ExCoprocessor, uint8(0))
			},
		},
		{
			name: "version 2",
			prepare: func(data []byte) {
				data[0x7fc0+0x14] = 0x00
				data[0x7fbf] = 0x10
			},
			check: func(t *testing.T, h cartridge.Header) {
				test.ExpectEquality(t, h.HeaderVersion, 2)
				test.ExpectEquality(t, h.ExCoprocessor, uint8(0x10))
				test.ExpectEquality(t, h.MakerCode, "")
				test.ExpectEquality(t, h.FlashSize, uint32(0))
			},
		},
		{
			name: "version 3",
			prepare: func(data []byte) {
				data[0x7fc0+0x1a] = 0x33
				copy(data[0x7fb0:], "01SNSE")
				data[0x7fbc] = 0x03
				data[0x7fbd] = 0x05
				data[0x7fbe] = 0x07
				data[0x7fbf] = 0x10
			},
			check: func(t *testing.T, h cartridge.Header) {
				test.ExpectEquality(t, h.HeaderVersion, 3)
				test.ExpectEquality(t, h.MakerCode, "01")
				test.ExpectEquality(t, h.GameCode, "SNSE")
				test.ExpectEquality(t, h.FlashSize, uint32(0x2000))
				test.ExpectEquality(t, h.ExRAMSize, uint32(0x8000))
				test.ExpectEquality(t, h.SpecialVersion, uint8(7))
				test.ExpectEquality(t, h.ExCoprocessor, uint8(0x10))
			},
		},
		{
			name: "version 3 with unprintable codes",
			prepare: func(data []byte) {
				data[0x7fc0+0x1a] = 0x33
				copy(data[0x7fb0:], "0\x00SN\x80E")
			},
			check: func(t *testing.T, h cartridge.Header) {
				test.ExpectEquality(t, h.HeaderVersion, 3)
				test.ExpectEquality(t, h.MakerCode, "0.")
				test.ExpectEquality(t, h.GameCode, "SN.E")
				test.ExpectEquality(t, h.FlashSize, uint32(0x400))
				test.ExpectEquality(t, h.ExRAMSize, uint32(0x400))
				test.ExpectEquality(t, h.SpecialVersion, uint8(0))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := newROM(0x8000, 0x7fc0, testrom.Header{Name: "VERSIONS"})
			tt.prepare(data)
			tt.check(t, cartridge.ReadHeader(data, 0x7fc0))
		})
	}
}

func TestRAMFillQuirks(t *testing.T) {
	tests := []struct {
		name  string
		value uint8
		ok    bool
	}{
		{name: "DEATH BRADE", value: 0xff, ok: true},
		{name: "POWERDRIVE", value: 0xff, ok: true},
		{name: "ASHITANO JOE", value: 0x3f, ok: true},
		{name: "SUCCESS JOE", value: 0x3f, ok: true},
		{name: "SUCCESS JOE ", ok: false},
		{name: "success joe", ok: false},
		{name: "ORDINARY", ok: false},
	}

	for _, tt := range tests {
		v, ok := cartridge.RAMFillQuirk(tt.name)
		test.ExpectEquality(t, ok, tt.ok, tt.name)
		test.ExpectEquality(t, v, tt.value, tt.name)
	}

	// the header name has trailing spaces removed before the lookup
	env := newEnvironment(t)
	for _, name := range []string{"ASHITANO JOE", "SUCCESS JOE"} {
		cart := cartridge.NewCartridge(env)
		data := newROM(0x8000, 0x7fc0, testrom.Header{Name: name, Chips: 0x01, RAMExp: 0x01})
		test.DemandSuccess(t, cart.Attach(data))
		test.ExpectEquality(t, cart.RAMFill(), uint8(0x3f), name)
		test.ExpectEquality(t, cart.Read(0x70, 0x0123, 0), uint8(0x3f), name)
	}
}

func TestState(t *testing.T) {
	env := newEnvironment(t)
	cart := cartridge.NewCartridge(env)

	data := newROM(0x8000, 0x7fc0, testrom.Header{Chips: 0x02, RAMExp: 0x01})
	test.DemandSuccess(t, cart.Attach(data))
	cart.Write(0x70, 0x0010, 0x11)

	sh := state.NewSaver()
	test.ExpectSuccess(t, cart.HandleTypeState(sh))
	cart.HandleState(sh)
	saved := sh.Data()

	cart.Write(0x70, 0x0010, 0x22)

	sh = state.NewVerifier(saved)
	test.ExpectSuccess(t, cart.HandleTypeState(sh))
	cart.HandleState(sh)
	test.ExpectEquality(t, sh.Remaining(), 0)
	test.ExpectEquality(t, cart.Read(0x70, 0x0010, 0), uint8(0x22))

	sh = state.NewLoader(saved)
	test.ExpectSuccess(t, cart.HandleTypeState(sh))
	cart.HandleState(sh)
	test.ExpectEquality(t, cart.Read(0x70, 0x0010, 0), uint8(0x11))

	// a cartridge with a different ROM size does not match
	other := cartridge.NewCartridge(env)
	test.DemandSuccess(t, other.Attach(newROM(0x10000, 0x7fc0, testrom.Header{Chips: 0x02, RAMExp: 0x01})))
	sh = state.NewLoader(saved)
	test.ExpectFailure(t, other.HandleTypeState(sh))
}
