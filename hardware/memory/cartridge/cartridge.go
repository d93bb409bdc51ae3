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

package cartridge

import (
	"fmt"
	"strings"

	"github.com/mangoemu/mango/curated"
	"github.com/mangoemu/mango/environment"
	"github.com/mangoemu/mango/hardware/memory/cartridge/cx4"
	"github.com/mangoemu/mango/hardware/memory/cartridge/mapper"
	"github.com/mangoemu/mango/hardware/state"
	"github.com/mangoemu/mango/logger"
)

// the largest RAM that any layout can address. a LoROM cartridge addresses
// 16 banks of 32KB.
const maxRAMSize = 0x80000

// Cartridge defines the information and operations for a SNES cartridge.
type Cartridge struct {
	env *environment.Environment

	// the header chosen when the ROM was attached
	Header Header

	// the mapper for the current layout
	mapper mapper.CartMapper

	// the ROM and RAM are shared with the mapper. neither slice is ever
	// reallocated while it is attached
	rom []uint8
	ram []uint8

	hasBattery bool

	// the value uninitialised RAM was filled with
	ramFill uint8

	// creates the coprocessor for CX4 cartridges. can be replaced before a
	// call to Attach()
	NewCoprocessor func() mapper.Coprocessor
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The new cartridge has no ROM attached.
func NewCartridge(env *environment.Environment) *Cartridge {
	cart := &Cartridge{
		env: env,
		NewCoprocessor: func() mapper.Coprocessor {
			return cx4.NewCX4()
		},
	}
	cart.Eject()
	return cart
}

func (cart *Cartridge) String() string {
	return cart.Summary()
}

// Summary returns a description of the attached cartridge over three lines.
func (cart *Cartridge) Summary() string {
	if cart.IsEjected() {
		return "no cartridge attached"
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s rom (%s)\n", cart.mapper.Layout(), cart.Header.RegionName()))
	s.WriteString(fmt.Sprintf("%q\n", cart.Header.Name))

	bankSize := 0x8000
	if cart.Header.Location >= 0xffc0 {
		bankSize = 0x10000
	}

	var battery string
	if cart.hasBattery {
		battery = " (battery-backed)"
	}

	s.WriteString(fmt.Sprintf("%dK banks: %d, ramsize: %d%s, coprocessor: %x",
		bankSize/1024, len(cart.rom)/bankSize, len(cart.ram), battery, cart.Header.ExCoprocessor))

	return s.String()
}

// Eject removes the ROM and RAM from the cartridge.
func (cart *Cartridge) Eject() {
	cart.Header = Header{}
	cart.mapper = &none{}
	cart.rom = nil
	cart.ram = nil
	cart.hasBattery = false
	cart.ramFill = 0x00
}

// IsEjected returns true if no ROM is attached.
func (cart *Cartridge) IsEjected() bool {
	return cart.mapper.Layout() == mapper.LayoutNone
}

// Attach ROM data to the cartridge. The layout is decided by Fingerprint()
// and the ROM is padded to a power of two. Cartridge RAM is created and
// filled with the fill value for the cartridge.
//
// If an error is returned the cartridge is unchanged.
func (cart *Cartridge) Attach(data []byte) error {
	h, data, err := Fingerprint(data)
	if err != nil {
		return err
	}

	rom := padROM(data)

	ramSize := min(h.CartRAMSize(), maxRAMSize)
	fill := cart.fillValue(h.Name)

	var ram []uint8
	if ramSize > 0 {
		ram = make([]uint8, ramSize)
		for i := range ram {
			ram[i] = fill
		}
	}

	var m mapper.CartMapper
	switch h.Layout {
	case mapper.LayoutLoROM:
		m = newLoROM(rom, ram)
	case mapper.LayoutHiROM:
		m = newHiROM(rom, ram)
	case mapper.LayoutExHiROM:
		m = newExHiROM(rom, ram)
	case mapper.LayoutCX4:
		m = newCX4ROM(rom, ram, cart.NewCoprocessor())
	default:
		return curated.Errorf(UnsupportedCartridgeType, h.Layout)
	}

	cart.Header = h
	cart.mapper = m
	cart.rom = rom
	cart.ram = ram
	cart.hasBattery = h.HasBattery
	cart.ramFill = fill

	for _, l := range strings.Split(cart.Summary(), "\n") {
		logger.Log(cart.env, "cartridge", l)
	}

	return nil
}

// fillValue returns the value that uninitialised RAM should be filled with
// for the named cartridge.
func (cart *Cartridge) fillValue(name string) uint8 {
	if cart.env.Prefs.Cartridge.RAMFillQuirks.Get().(bool) {
		if v, ok := RAMFillQuirk(name); ok {
			return v
		}
	}
	return uint8(cart.env.Prefs.DefaultRAMFill.Get().(int))
}

// RAMFill returns the value that uninitialised RAM was filled with when the
// ROM was attached.
func (cart *Cartridge) RAMFill() uint8 {
	return cart.ramFill
}

// Layout returns the layout of the attached cartridge.
func (cart *Cartridge) Layout() mapper.Layout {
	return cart.mapper.Layout()
}

// HasBattery returns true if the cartridge RAM is battery backed.
func (cart *Cartridge) HasBattery() bool {
	return cart.hasBattery
}

// ROMSize returns the size of the ROM after padding.
func (cart *Cartridge) ROMSize() int {
	return len(cart.rom)
}

// RAMSize returns the size of the cartridge RAM. Zero if there is no RAM.
func (cart *Cartridge) RAMSize() int {
	return len(cart.ram)
}

// Read from the cartridge address space. The openBus value is returned if
// the cartridge does not respond to the address.
func (cart *Cartridge) Read(bank uint8, addr uint16, openBus uint8) uint8 {
	return cart.mapper.Read(bank, addr, openBus)
}

// Write to the cartridge address space.
func (cart *Cartridge) Write(bank uint8, addr uint16, data uint8) {
	cart.mapper.Write(bank, addr, data)
}

// Reset volatile areas of the cartridge. RAM is not cleared.
func (cart *Cartridge) Reset() {
	cart.mapper.Reset()
}

// HandleState saves or restores the cartridge RAM and coprocessor state.
func (cart *Cartridge) HandleState(sh *state.Handler) {
	cart.mapper.HandleState(sh)
}

// HandleTypeState saves or checks the layout and memory sizes of the
// cartridge. It is used to make sure a save state is for the attached
// cartridge. When not saving, the result is true if the stored values match
// the cartridge. The cartridge itself is never changed.
//
// For a Verifying handler a difference is recorded by the handler's
// Mismatch() flag.
func (cart *Cartridge) HandleTypeState(sh *state.Handler) bool {
	layout := uint8(cart.mapper.Layout())
	romSize := uint32(len(cart.rom))
	ramSize := uint32(len(cart.ram))

	l, r, a := layout, romSize, ramSize
	sh.Bytes(&l)
	sh.Ints(&r, &a)

	return !sh.Overrun() && l == layout && r == romSize && a == ramSize
}
