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

package archivefs

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mangoemu/mango/curated"
)

// Node represents a single entry in a directory listing.
type Node struct {
	Name string

	// an archive is also considered to be a directory
	IsDir     bool
	IsArchive bool
}

func (n Node) String() string {
	return n.Name
}

// Path represents a single destination in the file system.
type Path struct {
	current string
	isDir   bool

	zf *zip.ReadCloser

	// the path inside the zip file is split into the directory and the file.
	// paths inside a zip file always use forward slashes
	inZipPath string
	inZipFile string
}

// String returns the current path.
func (afs Path) String() string {
	return afs.current
}

// Base returns the last element of the current path.
func (afs Path) Base() string {
	return filepath.Base(afs.current)
}

// IsDir returns true if Path is currently set to a directory. The root of an
// archive is treated as a directory.
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if path is currently inside an archive.
func (afs Path) InArchive() bool {
	return afs.zf != nil
}

// Open and return an io.ReadSeeker for the filename previously set by the
// Set() function.
func (afs Path) Open() (io.ReadSeeker, int, error) {
	if afs.isDir {
		return nil, 0, curated.Errorf("archivefs: open: %s is a directory", afs.current)
	}

	if afs.zf != nil {
		f, err := afs.zf.Open(path.Join(afs.inZipPath, afs.inZipFile))
		if err != nil {
			return nil, 0, curated.Errorf("archivefs: open: %v", err)
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, 0, curated.Errorf("archivefs: open: %v", err)
		}

		return bytes.NewReader(b), len(b), nil
	}

	f, err := os.Open(afs.current)
	if err != nil {
		return nil, 0, curated.Errorf("archivefs: open: %v", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, curated.Errorf("archivefs: open: %v", err)
	}

	return f, int(info.Size()), nil
}

// Close any open zip files and reset path.
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inZipPath = ""
	afs.inZipFile = ""
	if afs.zf != nil {
		afs.zf.Close()
		afs.zf = nil
	}
}

// List returns the child entries for the current path location. If the
// current path is a file then the list will be the contents of the
// containing directory. Directories are listed first and names are sorted
// case insensitively.
func (afs *Path) List() ([]Node, error) {
	var ent []Node

	if afs.zf != nil {
		seen := make(map[string]bool)

		for _, f := range afs.zf.File {
			name := strings.TrimSuffix(f.Name, "/")
			dir := path.Dir(name)
			if dir == "." {
				dir = ""
			}

			// zip files do not always have entries for directories so we
			// infer them from the file names
			if afs.inZipPath != "" {
				if !strings.HasPrefix(dir+"/", afs.inZipPath+"/") {
					continue
				}
				dir = strings.TrimPrefix(strings.TrimPrefix(dir, afs.inZipPath), "/")
				name = strings.TrimPrefix(name, afs.inZipPath+"/")
			}

			if dir != "" {
				top := strings.Split(dir, "/")[0]
				if !seen[top] {
					seen[top] = true
					ent = append(ent, Node{Name: top, IsDir: true})
				}
				continue
			}

			if seen[name] {
				continue
			}
			seen[name] = true
			ent = append(ent, Node{Name: name, IsDir: f.FileInfo().IsDir()})
		}
	} else {
		dir := afs.current
		if !afs.isDir {
			dir = filepath.Dir(dir)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return []Node{}, curated.Errorf("archivefs: list: %v", err)
		}

		for _, d := range entries {
			// using os.Stat() so that links to directories are followed
			fi, err := os.Stat(filepath.Join(dir, d.Name()))
			if err != nil {
				continue
			}

			if fi.IsDir() {
				ent = append(ent, Node{Name: d.Name(), IsDir: true})
			} else if IsArchiveExt(d.Name()) {
				ent = append(ent, Node{Name: d.Name(), IsDir: true, IsArchive: true})
			} else {
				ent = append(ent, Node{Name: d.Name()})
			}
		}
	}

	sort.SliceStable(ent, func(i int, j int) bool {
		if ent[i].IsDir != ent[j].IsDir {
			return ent[i].IsDir
		}
		return strings.ToLower(ent[i].Name) < strings.ToLower(ent[j].Name)
	})

	return ent, nil
}

// Set the path. Path elements that are zip files are opened and subsequent
// elements are looked for inside the archive.
func (afs *Path) Set(pth string) error {
	afs.Close()

	pth = filepath.Clean(pth)
	lst := strings.Split(pth, string(filepath.Separator))

	// strings.Split() removes the leading separator of an absolute path
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	var current string

	for _, l := range lst {
		current = filepath.Join(current, l)

		if afs.zf != nil {
			p := path.Join(afs.inZipPath, l)

			zf, err := afs.zf.Open(p)
			if err != nil {
				afs.Close()
				return curated.Errorf("archivefs: set: %v", err)
			}

			zfi, err := zf.Stat()
			zf.Close()
			if err != nil {
				afs.Close()
				return curated.Errorf("archivefs: set: %v", err)
			}

			afs.isDir = zfi.IsDir()
			if afs.isDir {
				afs.inZipPath = p
				afs.inZipFile = ""
			} else {
				afs.inZipFile = l
			}
			continue
		}

		fi, err := os.Stat(current)
		if err != nil {
			afs.Close()
			return curated.Errorf("archivefs: set: %v", err)
		}

		afs.isDir = fi.IsDir()
		if afs.isDir {
			continue
		}

		afs.zf, err = zip.OpenReader(current)
		if err == nil {
			// the root of an archive is considered to be a directory
			afs.isDir = true
			continue
		}

		if !errors.Is(err, zip.ErrFormat) {
			return curated.Errorf("archivefs: set: %v", err)
		}
	}

	afs.current = filepath.Clean(current)

	return nil
}
