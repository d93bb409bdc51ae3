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
	"github.com/mangoemu/mango/curated"
	"github.com/mangoemu/mango/hardware/memory/cartridge/mapper"
)

// Sentinal error patterns.
const (
	RomTooSmall              = "cartridge: rom too small (%d bytes)"
	UnsupportedCartridgeType = "cartridge: unsupported type (%d)"
)

// the smallest ROM that can be loaded.
const minROMSize = 0x8000

// the size of a copier header.
const copierHeaderSize = 0x200

// NumCandidates is the number of possible header locations.
const NumCandidates = 6

// the score given to a header location that is not evaluated because the
// data is too small.
const unevaluatedScore = -50

// candidate header locations. odd numbered entries are the same as the
// preceeding entry but allow for a copier header.
var candidates = [NumCandidates]struct {
	location  int
	minLength int
}{
	{location: 0x7fc0, minLength: 0x8000},
	{location: 0x81c0, minLength: 0x8200},
	{location: 0xffc0, minLength: 0x10000},
	{location: 0x101c0, minLength: 0x10200},
	{location: 0x40ffc0, minLength: 0x410000},
	{location: 0x4101c0, minLength: 0x410200},
}

// ScoreHeaders reads and scores the header at each of the candidate
// locations. Candidates that cannot fit in the data are not evaluated and
// have a score of -50.
func ScoreHeaders(data []byte) [NumCandidates]Header {
	var headers [NumCandidates]Header
	for i, c := range candidates {
		if len(data) >= c.minLength {
			headers[i] = ReadHeader(data, c.location)
		} else {
			headers[i] = Header{
				Location: c.location,
				Score:    unevaluatedScore,
			}
		}
	}
	return headers
}

// selectHeader returns the index of the most plausible header. candidates are
// considered from the last to the first so that on a tie the later candidate
// is chosen. this means ExHiROM is preferred over HiROM for ROMs with a
// plausible header in both places.
//
// the first candidate is chosen if no candidate has a positive score.
func selectHeader(headers [NumCandidates]Header) int {
	var max int
	var selected int
	for i := NumCandidates - 1; i >= 0; i-- {
		if headers[i].Score > max {
			max = headers[i].Score
			selected = i
		}
	}
	return selected
}

// Fingerprint chooses the most plausible header in the ROM data. It returns
// the header and the ROM data with any copier header removed. The data is
// not copied.
func Fingerprint(data []byte) (Header, []byte, error) {
	if len(data) < minROMSize {
		return Header{}, nil, curated.Errorf(RomTooSmall, len(data))
	}

	headers := ScoreHeaders(data)
	selected := selectHeader(headers)
	h := headers[selected]

	if selected&0x01 == 0x01 {
		data = data[copierHeaderSize:]
	}

	if h.Layout > mapper.MaxLayout {
		return Header{}, nil, curated.Errorf(UnsupportedCartridgeType, h.Layout)
	}

	if h.ExCoprocessor == 0x10 {
		h.Layout = mapper.LayoutCX4
	}

	return h, data, nil
}
