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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/mangoemu/mango/archivefs"
	"github.com/mangoemu/mango/curated"
)

// Loader is used to specify the cartridge to use when loading a ROM into the
// SNES.
type Loader struct {
	// filename of cartridge to load. can be a URL or a path that passes
	// through an archive
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns the filename without the path, extension or any archive
// component. It is used to name battery files.
func (cl Loader) ShortName() string {
	n := filepath.Base(archivefs.RemoveArchiveExt(cl.Filename))
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Filenames with an http or https scheme are
// fetched over the network. Anything else is treated as a local path.
//
// Calling Load() when data has already been loaded has no effect.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(cl.Filename); err == nil {
		scheme = u.Scheme
	}

	var data []byte
	var err error

	switch scheme {
	case "http", "https":
		data, err = loadHTTP(cl.Filename)
	case "file", "":
		data, err = loadFile(cl.Filename)
	default:
		// single letter schemes are drive letters on windows
		if len(scheme) == 1 {
			data, err = loadFile(cl.Filename)
		} else {
			err = fmt.Errorf("unsupported URL scheme (%s)", scheme)
		}
	}
	if err != nil {
		return curated.Errorf("cartridgeloader: %v", err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf("cartridgeloader: %v", "unexpected hash value")
	}

	cl.Hash = hash
	cl.Data = data

	return nil
}

func loadHTTP(filename string) ([]byte, error) {
	resp, err := http.Get(filename)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

func loadFile(filename string) ([]byte, error) {
	var afs archivefs.Path
	defer afs.Close()

	if err := afs.Set(filename); err != nil {
		return nil, err
	}

	// pick the first ROM file in an archive if the archive itself was named
	if afs.IsDir() && afs.InArchive() {
		ent, err := afs.List()
		if err != nil {
			return nil, err
		}

		var found bool
		for _, e := range ent {
			if !e.IsDir && IsROMExt(e.Name) {
				if err := afs.Set(filepath.Join(filename, e.Name)); err != nil {
					return nil, err
				}
				found = true
				break
			}
		}

		if !found {
			return nil, fmt.Errorf("no ROM file in archive (%s)", filename)
		}
	}

	r, _, err := afs.Open()
	if err != nil {
		return nil, err
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	return io.ReadAll(r)
}
