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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Packages that raise curated errors declare those patterns
// as exported string constants. For example, the cartridge package:
//
//	const RomTooSmall = "cartridge: rom too small (%d bytes)"
//
//	err := curated.Errorf(cartridge.RomTooSmall, len(data))
//
//	if curated.Is(err, cartridge.RomTooSmall) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("snes: %v", err)
//
//	if curated.Has(f, cartridge.RomTooSmall) {
//		fmt.Println("true")
//	}
//
// Note that in this example, a call to Is() would fail because error f does
// not match that pattern. It is "wrapped" inside the pattern "snes: %v".
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference as being 'expected' and
// 'unexpected' errors depending on how we choose to handle the result of the
// function call.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. The message for an error created like this:
//
//	curated.Errorf("battery: %v", curated.Errorf("battery: %v", "no battery"))
//
// will be:
//
//	battery: no battery
//
// and not:
//
//	battery: battery: no battery
//
// For the purposes of this package we think of chains as being composed of
// parts separted by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
package curated
