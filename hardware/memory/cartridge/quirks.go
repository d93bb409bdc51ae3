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

// some games behave incorrectly if uninitialised RAM is zero. the table is
// keyed by the name in the cartridge header.
var ramFillQuirks = map[string]uint8{
	"DEATH BRADE":  0xff,
	"POWERDRIVE":   0xff,
	"ASHITANO JOE": 0x3f,
	"SUCCESS JOE":  0x3f,
}

// RAMFillQuirk returns the RAM fill value for the named cartridge. Returns
// false if the cartridge has no special requirement.
func RAMFillQuirk(name string) (uint8, bool) {
	v, ok := ramFillQuirks[name]
	return v, ok
}
