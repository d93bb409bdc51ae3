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

package hardware

import (
	"github.com/mangoemu/mango/hardware/memory/bus"
	"github.com/mangoemu/mango/hardware/state"
)

// CPU defines the operations required of the CPU. The CPU also owns the
// internal registers in the 0x4200 to 0x43ff range, including DMA.
type CPU interface {
	bus.IOBus
	Reset(hard bool)
	HandleState(sh *state.Handler)
}

// PPU defines the operations required of the picture processing unit. The
// PPU registers are 0x2100 to 0x213f.
type PPU interface {
	bus.IOBus
	Reset(hard bool)

	// the pixels are 512x480 RGBA
	PutPixels(pixels []uint8)

	HandleState(sh *state.Handler)
}

// APU defines the operations required of the audio processing unit. The APU
// ports are 0x2140 to 0x217f.
type APU interface {
	bus.IOBus
	Reset(hard bool)

	// n stereo samples are written to the slice. the slice must have room
	// for 2*n values
	GetSamples(samples []int16, n int)

	HandleState(sh *state.Handler)
}

// AudioMixer implementations receive the audio produced by every frame.
type AudioMixer interface {
	// samples are interleaved stereo
	SetAudio(samples []int16) error

	// EndMixing is called when the emulation ends
	EndMixing() error

	// Reset is called when the emulation is reset
	Reset()
}
