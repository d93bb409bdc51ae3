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

package memorymap

import (
	"fmt"
	"strings"
)

// no area boundary falls within a block of this size.
const summaryStep = 0x1000

// Summary returns a single multiline string detailing all the areas in memory.
// Useful for reference.
func Summary() string {
	var area, current Area
	var a, sa uint32

	s := strings.Builder{}

	// look up area of first address in memory
	_, current = MapAddress(0)

	// for every block in the address space...
	for a = summaryStep; a <= MemtopBanks; a += summaryStep {
		// ...get the area name of that block.
		_, area = MapAddress(a)

		// if the area has changed print out the summary line...
		if area != current {
			s.WriteString(fmt.Sprintf("%06x -> %06x\t%s\n", sa, a-1, current.String()))

			// ...update current area and start address of the area
			current = area
			sa = a
		}
	}

	// write last line of summary
	s.WriteString(fmt.Sprintf("%06x -> %06x\t%s\n", sa, MemtopBanks, current.String()))

	return s.String()
}
