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
	"github.com/mangoemu/mango/curated"
	"github.com/mangoemu/mango/govern"
	"github.com/mangoemu/mango/hardware/clocks"
)

// RunFrame advances the emulation by one frame. Events pushed to the Input
// are handled at the start of the frame. The audio for the frame is passed to
// every attached AudioMixer.
func (snes *SNES) RunFrame() error {
	if err := snes.Input.HandlePushed(); err != nil {
		return err
	}

	snes.Cycles += clocks.FrameCycles(snes.PALTiming)
	snes.SyncCycle = snes.Cycles
	snes.Frame++

	if len(snes.mixers) == 0 {
		return nil
	}

	n := clocks.FrameSamples(snes.PALTiming)
	if cap(snes.samples) < n*2 {
		snes.samples = make([]int16, n*2)
	}
	snes.samples = snes.samples[:n*2]
	snes.APU.GetSamples(snes.samples, n)

	for _, m := range snes.mixers {
		if err := m.SetAudio(snes.samples); err != nil {
			return curated.Errorf("snes: %v", err)
		}
	}

	return nil
}

// RunForFrameCount sets emulator running for the specified number of frames.
// The continueCheck function is called after every frame. It can be nil.
//
// A Paused state from continueCheck stops the emulation from advancing but
// continueCheck will still be called.
func (snes *SNES) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	var err error

	frame := 0
	state := govern.Running

	for frame < numFrames && state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			if err := snes.RunFrame(); err != nil {
				return err
			}
			frame++
		case govern.Paused:
		default:
			return curated.Errorf("snes: unsupported emulation state (%s) in RunForFrameCount() function", state)
		}

		state, err = continueCheck(frame)
		if err != nil {
			return err
		}
	}

	return nil
}
