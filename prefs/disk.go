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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mangoemu/mango/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written to the head of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand while the emulator is running ***"

// NoPrefsFile is returned by Load() when the preferences file does not exist.
// It is not a serious error and callers will normally ignore it.
const NoPrefsFile = "prefs: no prefs file (%s)"

// the separator between key and value in the preferences file.
const keySep = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref

	// values displaced by the command line stack, keyed by preference name.
	// these are the values that Save() writes and that Load() updates in
	// place of the live preference
	displaced map[string]string
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:      path,
		entries:   make(map[string]pref),
		displaced: make(map[string]string),
	}, nil
}

// Add preference value to list of values to store/load from disk. If the
// command line stack has a value for the key it is applied immediately and
// takes precedence over any value loaded from disk for the lifetime of the
// Disk instance. The command line value is never saved.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, keySep) {
		return curated.Errorf("prefs: illegal key name (%s)", key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		displaced := p.String()
		if err := p.Set(v); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
		dsk.displaced[key] = displaced
	}

	return nil
}

// Reset all preferences to the default (zero) value.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// String returns the list of preferences in the same format as the file.
func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Save current preference values to disk. Entries in the file that are not
// part of this Disk instance are preserved.
func (dsk *Disk) Save() error {
	lines, err := dsk.read()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for k, p := range dsk.entries {
		if v, ok := dsk.displaced[k]; ok {
			lines[k] = v
		} else {
			lines[k] = p.String()
		}
	}

	keys := make([]string, 0, len(lines))
	for k := range lines {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, lines[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. Keys in the file that have not been added
// to the Disk instance are ignored.
//
// The saveOnFail flag causes the current values to be saved to disk if the
// preferences file does not exist yet.
func (dsk *Disk) Load(saveOnFail bool) error {
	lines, err := dsk.read()
	if err != nil {
		if curated.Is(err, NoPrefsFile) && saveOnFail {
			return dsk.Save()
		}
		return err
	}

	for k, v := range lines {
		if _, ok := dsk.displaced[k]; ok {
			dsk.displaced[k] = v
			continue
		}
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	return nil
}

// read the preferences file into a map of raw strings.
func (dsk *Disk) read() (map[string]string, error) {
	lines := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return lines, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return lines, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line is the boilerplate warning
	if scanner.Scan() && scanner.Text() != WarningBoilerPlate {
		return lines, curated.Errorf("prefs: not a valid prefs file (%s)", dsk.path)
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), keySep, 2)
		if len(kv) != 2 {
			continue
		}
		lines[kv[0]] = kv[1]
	}

	if err := scanner.Err(); err != nil {
		return lines, curated.Errorf("prefs: %v", err)
	}

	return lines, nil
}
