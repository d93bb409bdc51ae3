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

// Package cartridgeloader is used to specify the ROM data that is to be
// attached to the emulated SNES.
//
// When the cartridge is ready to be loaded into the emulator, the Load()
// function should be used. Load() handles loading of data from local files,
// from files inside zip archives, and from HTTP. If the filename names an
// archive rather than a file inside the archive then the first file in the
// archive with a recognised ROM extension is used.
//
//	cl := cartridgeloader.NewLoader("roms/collection.zip/demo.sfc")
//	err := cl.Load()
//
// The data is not interpreted in any way. Copier headers and the layout of
// the ROM are dealt with by the cartridge package.
package cartridgeloader
