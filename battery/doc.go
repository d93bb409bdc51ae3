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

// Package battery stores the battery backed RAM of a cartridge on disk. The
// files are kept in the "battery" directory of the resources path and are
// named after the cartridge.
//
// Failures are logged rather than returned. A missing or damaged battery file
// is not fatal to the emulation; the cartridge simply starts with fresh RAM.
package battery
