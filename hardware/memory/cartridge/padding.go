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

// padROM returns a copy of the data with a size that is a power of two. The
// smallest size is 32KB.
//
// The additional space is filled by mirroring. Each set bit in the original
// length, from least significant, is a hole that is filled by repeating the
// block of the same size immediately before it. For example, a 48KB ROM
// padded to 64KB has the last 16KB of the original data repeated.
func padROM(data []byte) []byte {
	size := minROMSize
	for size < len(data) {
		size <<= 1
	}

	padded := make([]byte, size)
	copy(padded, data)

	length := len(data)
	if length == 0 {
		return padded
	}

	for test := 1; length != size; test <<= 1 {
		if length&test == test {
			copy(padded[length:length+test], padded[length-test:length])
			length += test
		}
	}

	return padded
}
