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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a method of handling program modes (and sub-modes)
// and allows different flags for each mode.
//
// Arguments are given to the Modes type with NewArgs() and then Parse() is
// called with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "INFO", "PEEK")
//	p, err := md.Parse()
//
// Flags are added before the call to Parse() in the same way as the flag
// package:
//
//	frames := md.AddInt("frames", 60, "number of frames to run")
//
// After parsing, Mode() returns the selected sub-mode. The first sub-mode
// added is the default and is selected if the first non-flag argument is not
// a sub-mode. The arguments after the sub-mode are parsed by calling
// NewMode() followed by another call to Parse(). This can continue for as
// many levels of sub-mode as required. The full list of modes encountered is
// returned by Path().
//
// Sub-mode comparisons are case insensitive. Help is handled automatically
// with the -help flag, in which case Parse() returns ParseHelp.
package modalflag
