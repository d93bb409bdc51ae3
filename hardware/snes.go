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
	"github.com/mangoemu/mango/environment"
	"github.com/mangoemu/mango/hardware/input"
	"github.com/mangoemu/mango/hardware/memory"
	"github.com/mangoemu/mango/hardware/null"
)

// PixelsSize is the size of the slice required by SetPixels().
const PixelsSize = 512 * 480 * 4

// SNES struct is the main container for the emulated components of the SNES.
type SNES struct {
	Env *environment.Environment

	Mem   *memory.Memory
	CPU   CPU
	PPU   PPU
	APU   APU
	Input *input.Input

	// timing of the console. set from the cartridge header when a ROM is
	// loaded
	PALTiming bool

	// the number of master clock cycles since reset and the cycle at which
	// the APU was last synchronised
	Cycles    uint64
	SyncCycle uint64

	// the number of frames since reset
	Frame uint32

	mixers  []AudioMixer
	samples []int16
}

// NewSNES creates a new SNES and everything associated with the hardware.
// The CPU, PPU and APU are the stand-ins from the null package. They can be
// replaced before a ROM is loaded.
func NewSNES(env *environment.Environment) *SNES {
	snes := &SNES{
		Env:   env,
		Mem:   memory.NewMemory(env),
		CPU:   &null.CPU{},
		PPU:   &null.PPU{},
		APU:   &null.APU{},
		Input: input.NewInput(),
	}
	snes.Mem.IO = snes
	return snes
}

func (snes *SNES) String() string {
	return snes.Mem.Cart.String()
}

// LoadROM attaches ROM data to the cartridge and performs a hard reset. If
// an error is returned the previous cartridge and the state of the SNES are
// unchanged.
func (snes *SNES) LoadROM(data []byte) error {
	if err := snes.Mem.Cart.Attach(data); err != nil {
		return err
	}

	snes.Reset(true)
	snes.PALTiming = snes.Mem.Cart.Header.PAL

	return nil
}

// Reset the SNES. A hard reset is the same as turning the power off and on.
// A soft reset is the same as pressing the reset button. Cartridge RAM is
// never cleared.
func (snes *SNES) Reset(hard bool) {
	snes.CPU.Reset(hard)
	snes.APU.Reset(hard)
	snes.PPU.Reset(hard)
	snes.Input.Reset()
	snes.Mem.Cart.Reset()
	snes.Mem.Reset(hard)

	snes.Cycles = 0
	snes.SyncCycle = 0
	snes.Frame = 0

	for _, m := range snes.mixers {
		m.Reset()
	}
}

// SetButtonState changes the state of a button on the controller of one of
// the two players. Player 0 is the first controller. Any other value is the
// second controller.
func (snes *SNES) SetButtonState(player int, button int, pressed bool) {
	p := 1
	if player == 0 {
		p = 0
	}
	snes.Input.Players[p].SetButton(input.Button(button), pressed)
}

// SetPixels fills the pixels slice with the current picture. See PixelsSize.
func (snes *SNES) SetPixels(pixels []uint8) {
	snes.PPU.PutPixels(pixels)
}

// SetSamples fills the samples slice with n stereo samples from the APU.
func (snes *SNES) SetSamples(samples []int16, n int) {
	snes.APU.GetSamples(samples, n)
}

// AddAudioMixer adds a mixer to receive the audio of every frame.
func (snes *SNES) AddAudioMixer(m AudioMixer) {
	snes.mixers = append(snes.mixers, m)
}

// EndMixing should be called when the emulation ends. Errors from the mixers
// are returned after every mixer has been ended.
func (snes *SNES) EndMixing() error {
	var err error
	for _, m := range snes.mixers {
		if e := m.EndMixing(); e != nil && err == nil {
			err = e
		}
	}
	snes.mixers = snes.mixers[:0]
	return err
}
