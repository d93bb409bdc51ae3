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

package archivefs_test

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/mangoemu/mango/archivefs"
	"github.com/mangoemu/mango/test"
)

// createTestDir creates a directory containing a plain file and a zip file
// with a nested directory.
func createTestDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "testfile"), []byte("testfile contents\n"), 0o600))

	f, err := os.Create(filepath.Join(dir, "testarchive.zip"))
	test.DemandSuccess(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, n := range []string{"archivefile1", "archivefile2", "archivedir/archivefile3", "archivedir/archivedir2/archivefile4"} {
		w, err := zw.Create(n)
		test.DemandSuccess(t, err)
		_, err = fmt.Fprintf(w, "%s contents\n", filepath.Base(n))
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, zw.Close())

	return dir
}

func TestArchivefsPath(t *testing.T) {
	dir := createTestDir(t)

	var afs archivefs.Path
	defer afs.Close()

	// non-existant file
	err := afs.Set(filepath.Join(dir, "foo"))
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, afs.String(), "")

	// a real directory
	err = afs.Set(dir)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, !afs.InArchive())

	entries, err := afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[testarchive.zip testfile]")

	// a real file. List() returns the containing directory
	err = afs.Set(filepath.Join(dir, "testfile"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, !afs.IsDir())
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(entries), 2)

	// a real archive
	path := filepath.Join(dir, "testarchive.zip")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[archivedir archivefile1 archivefile2]")

	// directory in archive
	err = afs.Set(filepath.Join(path, "archivedir"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, afs.InArchive())

	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[archivedir2 archivefile3]")

	// file in archive
	err = afs.Set(filepath.Join(path, "archivedir", "archivefile3"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, !afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())
}

func TestArchivefsOpen(t *testing.T) {
	dir := createTestDir(t)

	r, sz, err := archivefs.Open(filepath.Join(dir, "testarchive.zip", "archivefile1"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sz, 22)
	d, err := io.ReadAll(r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), "archivefile1 contents\n")

	// directories cannot be opened
	_, _, err = archivefs.Open(filepath.Join(dir, "testarchive.zip"))
	test.ExpectFailure(t, err)
}

func TestExtensions(t *testing.T) {
	test.ExpectSuccess(t, archivefs.IsArchiveExt("roms.ZIP"))
	test.ExpectSuccess(t, !archivefs.IsArchiveExt("game.sfc"))
	test.ExpectEquality(t, archivefs.RemoveArchiveExt("roms.zip/game.sfc"), "roms/game.sfc")
}
