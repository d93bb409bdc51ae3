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

// Package archivefs allows files inside archives to be addressed as though
// the archive was a directory. For example, the path:
//
//	roms/collection.zip/games/demo.sfc
//
// refers to the file games/demo.sfc inside the zip file roms/collection.zip.
// Only zip archives are currently supported.
package archivefs

import "io"

// Open and return an io.ReadSeeker for the specified filename. Filename can
// be inside an archive supported by archivefs.
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and
// any errors.
func Open(filename string) (io.ReadSeeker, int, error) {
	var afs Path
	err := afs.Set(filename)
	if err != nil {
		return nil, 0, err
	}
	defer afs.Close()
	return afs.Open()
}
