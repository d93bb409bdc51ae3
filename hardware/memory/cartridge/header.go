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

	"github.com/mangoemu/mango/hardware/memory/cartridge/mapper"
)

// the length of the cartridge name in the header.
const nameLength = 21

// Header is the information in the internal cartridge header. Not all ROMs
// have a genuine header at any given location so the values might be
// meaningless. The Score field indicates how plausible the header is.
type Header struct {
	// the offset of the header in the ROM data, including any copier header
	Location int

	// whether the header has been read. headers at locations beyond the end
	// of the data are never read
	Evaluated bool

	// printable ASCII only. trailing spaces are removed
	Name string

	Speed       uint8
	Type        uint8
	Coprocessor uint8
	Chips       uint8

	ROMSize uint32
	RAMSize uint32

	Region  uint8
	Maker   uint8
	Version uint8

	ChecksumComplement uint16
	Checksum           uint16

	// the version of the header format. fields that follow are only present
	// in version 2 and 3 headers
	HeaderVersion int

	MakerCode      string
	GameCode       string
	FlashSize      uint32
	ExRAMSize      uint32
	SpecialVersion uint8
	ExCoprocessor  uint8

	PAL        bool
	Layout     mapper.Layout
	HasBattery bool

	Score int
}

func (h Header) String() string {
	if !h.Evaluated {
		return fmt.Sprintf("%#06x: not evaluated", h.Location)
	}
	return fmt.Sprintf("%#06x: %-21q %-7s score %d", h.Location, h.Name, h.Layout, h.Score)
}

// RegionName returns the video standard implied by the region byte.
func (h Header) RegionName() string {
	if h.PAL {
		return "PAL"
	}
	return "NTSC"
}

// CartRAMSize is the amount of RAM on the cartridge. The RAM size in the
// header is only valid if the chips nibble indicates the presence of RAM.
func (h Header) CartRAMSize() uint32 {
	if h.Chips > 0 {
		return h.RAMSize
	}
	return 0
}

// printable replaces characters that are not printable ASCII with a period.
func printable(b []byte) string {
	s := strings.Builder{}
	for _, ch := range b {
		if ch >= 0x20 && ch < 0x7f {
			s.WriteByte(ch)
		} else {
			s.WriteByte('.')
		}
	}
	return s.String()
}

// sizeFromExponent converts the size byte used in the header to a size in
// bytes. values that would overflow result in zero.
func sizeFromExponent(e uint8) uint32 {
	if e > 21 {
		return 0
	}
	return 0x400 << e
}

// ReadHeader reads and scores the header at the specified location. The data
// must be large enough to contain the header. The score is measured from
// zero.
func ReadHeader(data []byte, location int) Header {
	h := Header{
		Location:  location,
		Evaluated: true,
	}

	h.Name = strings.TrimRight(printable(data[location:location+nameLength]), " ")

	h.Speed = data[location+0x15] >> 4
	h.Type = data[location+0x15] & 0x0f
	h.Coprocessor = data[location+0x16] >> 4
	h.Chips = data[location+0x16] & 0x0f
	h.HasBattery = h.Chips == 0x02 || h.Chips == 0x05 || h.Chips == 0x06
	h.ROMSize = sizeFromExponent(data[location+0x17])
	h.RAMSize = sizeFromExponent(data[location+0x18])
	h.Region = data[location+0x19]
	h.Maker = data[location+0x1a]
	h.Version = data[location+0x1b]
	h.ChecksumComplement = uint16(data[location+0x1d])<<8 | uint16(data[location+0x1c])
	h.Checksum = uint16(data[location+0x1f])<<8 | uint16(data[location+0x1e])

	h.HeaderVersion = 1
	if h.Maker == 0x33 {
		h.HeaderVersion = 3
		h.MakerCode = printable(data[location-0x10 : location-0x10+2])
		h.GameCode = printable(data[location-0x0e : location-0x0e+4])
		h.FlashSize = sizeFromExponent(data[location-4])
		h.ExRAMSize = sizeFromExponent(data[location-3])
		h.SpecialVersion = data[location-2]
		h.ExCoprocessor = data[location-1]
	} else if data[location+0x14] == 0 {
		h.HeaderVersion = 2
		h.ExCoprocessor = data[location-1]
	}

	h.PAL = (h.Region >= 0x02 && h.Region <= 0x0c) || h.Region == 0x11

	switch {
	case location > 0x400000:
		h.Layout = mapper.LayoutExHiROM
	case location < 0x9000:
		h.Layout = mapper.LayoutLoROM
	default:
		h.Layout = mapper.LayoutHiROM
	}

	h.Score = score(data, location, h)

	return h
}

// score the plausibility of a header. the data is the full ROM data, which is
// needed to check the first instruction after reset.
func score(data []byte, location int, h Header) int {
	var s int

	if h.Speed == 2 || h.Speed == 3 {
		s += 5
	} else {
		s -= 4
	}

	if h.Type <= 3 || h.Type == 5 {
		s += 5
	} else {
		s -= 2
	}

	if h.Coprocessor <= 5 || h.Coprocessor >= 0x0e {
		s += 5
	} else {
		s -= 2
	}

	if h.Chips <= 6 || h.Chips == 0x09 || h.Chips == 0x0a {
		s += 5
	} else {
		s -= 2
	}

	if h.Region <= 0x14 {
		s += 5
	} else {
		s -= 2
	}

	if uint32(h.Checksum)+uint32(h.ChecksumComplement) == 0xffff {
		s += 8
	} else {
		s -= 6
	}

	resetVector := uint16(data[location+0x3c]) | uint16(data[location+0x3d])<<8
	if resetVector >= 0x8000 {
		s += 8
	} else {
		s -= 20
	}

	// the first instruction executed after reset
	opcodeLocation := location + 0x40 - 0x8000 + int(resetVector&0x7fff)
	if opcodeLocation < 0 || opcodeLocation >= len(data) {
		s -= 14
		return s
	}

	switch data[opcodeLocation] {
	case 0x78, 0x18:
		// SEI, CLC (as part of CLC XCE)
		s += 6
	case 0x4c, 0x5c, 0x9c:
		// JMP, JML, STZ
		s += 3
	case 0x00, 0xff, 0xdb:
		// BRK, SBC long, STP
		s -= 6
	}

	return s
}
