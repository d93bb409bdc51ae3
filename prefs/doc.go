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

// Package prefs facilitates the storage of preferential values in the
// emulator. Values are added to a Disk instance with a key and the Disk can
// then be saved to or loaded from a file on disk.
//
// The file format is one key/value pair per line, separated by " :: ". The
// file begins with WarningBoilerPlate.
//
// Values can be overridden from the command line with the "command line
// stack". A group of key/value pairs is pushed onto the stack with
// PushCommandLineStack() and the values are applied when a preference with a
// matching key is added to a Disk.
package prefs
