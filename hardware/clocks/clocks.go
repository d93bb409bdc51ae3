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

// Package clocks defines the constant values that define the speed of the
// master clock in the SNES console and the timing of a frame.
//
// The master clock drives every other chip. A frame is a fixed number of
// master clock cycles, which differs between NTSC and PAL consoles. The audio
// sample rate is the same for both but the number of samples in a frame is
// not.
package clocks

// Master clock frequency in MHz.
const (
	NTSC = 21.477272
	PAL  = 21.281370
)

// The number of master clock cycles in a frame.
const (
	NTSCFrameCycles = 357368
	PALFrameCycles  = 425568
)

// SampleFreq is the output frequency of the audio unit in Hz.
const SampleFreq = 32040

// The number of stereo samples produced in a frame.
const (
	NTSCFrameSamples = 534
	PALFrameSamples  = 641
)

// FrameCycles returns the number of master clock cycles in a frame for the
// console type.
func FrameCycles(pal bool) uint64 {
	if pal {
		return PALFrameCycles
	}
	return NTSCFrameCycles
}

// FrameSamples returns the number of stereo audio samples in a frame for the
// console type.
func FrameSamples(pal bool) int {
	if pal {
		return PALFrameSamples
	}
	return NTSCFrameSamples
}

// FrameRate returns the number of frames per second for the console type.
func FrameRate(pal bool) float64 {
	if pal {
		return PAL * 1000000 / PALFrameCycles
	}
	return NTSC * 1000000 / NTSCFrameCycles
}
