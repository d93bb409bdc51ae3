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

// Package testrom creates synthetic ROM data with an internal header at a
// chosen location. It is used by tests that need a ROM with predictable
// layout and contents.
package testrom

// Header describes the fields written by Build(). The zero value describes
// a plausible LoROM header with no RAM.
type Header struct {
	Name string

	// the speed nibble is set to 2 unless SlowROM is true
	SlowROM bool

	Type        uint8
	Coprocessor uint8
	Chips       uint8

	ROMExp uint8
	RAMExp uint8
	Region uint8
	Maker  uint8

	// checksum is valid unless BadChecksum is true
	BadChecksum bool

	// the reset vector is 0x8000 if zero
	ResetVector uint16

	// the opcode written at the reset vector target. SEI if zero
	Opcode uint8

	// written immediately before the header if non-zero. it is only read by
	// the cartridge package if the header is a version 2 or 3 header
	ExCoprocessor uint8
}

// Fill sets every byte of the data to a value derived from the offset. The
// pattern differs in every 32KB bank so that mapping errors are visible.
func Fill(data []byte) {
	for i := range data {
		data[i] = uint8(i) ^ uint8(i>>8) ^ uint8(i>>15)*0x35
	}
}

// Build returns ROM data of the specified size with the header written at
// location. The rest of the data is filled by Fill().
func Build(size int, location int, h Header) []byte {
	data := make([]byte, size)
	Fill(data)
	Write(data, location, h)
	return data
}

// Write a header at location in the data.
func Write(data []byte, location int, h Header) {
	name := []byte(h.Name)
	for i := 0; i < 21; i++ {
		if i < len(name) {
			data[location+i] = name[i]
		} else {
			data[location+i] = ' '
		}
	}

	speed := uint8(0x20)
	if h.SlowROM {
		speed = 0x00
	}
	data[location+0x15] = speed | h.Type&0x0f
	data[location+0x16] = h.Coprocessor<<4 | h.Chips&0x0f
	data[location+0x17] = h.ROMExp
	data[location+0x18] = h.RAMExp
	data[location+0x19] = h.Region
	data[location+0x1a] = h.Maker
	data[location+0x1b] = 0x00

	checksum := uint16(0x1234)
	complement := ^checksum
	if h.BadChecksum {
		complement = checksum
	}
	data[location+0x1c] = uint8(complement)
	data[location+0x1d] = uint8(complement >> 8)
	data[location+0x1e] = uint8(checksum)
	data[location+0x1f] = uint8(checksum >> 8)

	if h.ExCoprocessor != 0 {
		data[location-1] = h.ExCoprocessor
	}

	reset := h.ResetVector
	if reset == 0 {
		reset = 0x8000
	}
	data[location+0x3c] = uint8(reset)
	data[location+0x3d] = uint8(reset >> 8)

	opcode := h.Opcode
	if opcode == 0 {
		opcode = 0x78
	}
	loc := location + 0x40 - 0x8000 + int(reset&0x7fff)
	if loc >= 0 && loc < len(data) {
		data[loc] = opcode
	}
}
