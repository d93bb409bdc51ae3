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

package null

import (
	"github.com/mangoemu/mango/hardware/state"
)

// CPU implements the hardware.CPU interface.
type CPU struct{}

// Reset implements the hardware.CPU interface.
func (cpu *CPU) Reset(_ bool) {
}

// IORead implements the bus.IOBus interface.
func (cpu *CPU) IORead(_ uint16, openBus uint8) uint8 {
	return openBus
}

// IOWrite implements the bus.IOBus interface.
func (cpu *CPU) IOWrite(_ uint16, _ uint8) {
}

// HandleState implements the hardware.CPU interface.
func (cpu *CPU) HandleState(_ *state.Handler) {
}

// PPU implements the hardware.PPU interface.
type PPU struct{}

// Reset implements the hardware.PPU interface.
func (ppu *PPU) Reset(_ bool) {
}

// IORead implements the bus.IOBus interface.
func (ppu *PPU) IORead(_ uint16, openBus uint8) uint8 {
	return openBus
}

// IOWrite implements the bus.IOBus interface.
func (ppu *PPU) IOWrite(_ uint16, _ uint8) {
}

// PutPixels implements the hardware.PPU interface. Every pixel is opaque
// black.
func (ppu *PPU) PutPixels(pixels []uint8) {
	for i := 0; i+3 < len(pixels); i += 4 {
		pixels[i] = 0x00
		pixels[i+1] = 0x00
		pixels[i+2] = 0x00
		pixels[i+3] = 0xff
	}
}

// HandleState implements the hardware.PPU interface.
func (ppu *PPU) HandleState(_ *state.Handler) {
}

// APU implements the hardware.APU interface.
type APU struct{}

// Reset implements the hardware.APU interface.
func (apu *APU) Reset(_ bool) {
}

// IORead implements the bus.IOBus interface.
func (apu *APU) IORead(_ uint16, openBus uint8) uint8 {
	return openBus
}

// IOWrite implements the bus.IOBus interface.
func (apu *APU) IOWrite(_ uint16, _ uint8) {
}

// GetSamples implements the hardware.APU interface. The samples are silent.
func (apu *APU) GetSamples(samples []int16, n int) {
	clear(samples[:min(len(samples), n*2)])
}

// HandleState implements the hardware.APU interface.
func (apu *APU) HandleState(_ *state.Handler) {
}
