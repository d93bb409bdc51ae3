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

package battery

import (
	"os"

	"github.com/mangoemu/mango/environment"
	"github.com/mangoemu/mango/logger"
	"github.com/mangoemu/mango/resources"
)

const batteryPath = "battery"

const batteryExt = ".srm"

// Battery is implemented by the SNES type in the hardware package.
type Battery interface {
	HasBattery() bool
	SaveBattery(dst []byte) (int, error)
	LoadBattery(src []byte) error
}

// Filename returns the path of the battery file for the named cartridge.
func Filename(name string) (string, error) {
	return resources.JoinPath(batteryPath, name+batteryExt)
}

// Read the battery file for the named cartridge. Returns true if the battery
// RAM has been replaced by the contents of the file.
func Read(env *environment.Environment, b Battery, name string) bool {
	if !b.HasBattery() {
		return false
	}

	fn, err := Filename(name)
	if err != nil {
		logger.Logf(env, "battery", "could not load battery file: %v", err)
		return false
	}

	data, err := os.ReadFile(fn)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Logf(env, "battery", "no battery file for %s", name)
		} else {
			logger.Logf(env, "battery", "could not load battery file: %v", err)
		}
		return false
	}

	err = b.LoadBattery(data)
	if err != nil {
		logger.Logf(env, "battery", "could not load battery file: %v", err)
		return false
	}

	logger.Logf(env, "battery", "battery file loaded from %s", fn)

	return true
}

// Write the battery RAM to the battery file for the named cartridge. Returns
// true if the file was written.
func Write(env *environment.Environment, b Battery, name string) bool {
	if !b.HasBattery() {
		return false
	}

	fn, err := Filename(name)
	if err != nil {
		logger.Logf(env, "battery", "could not write battery file: %v", err)
		return false
	}

	n, err := b.SaveBattery(nil)
	if err != nil {
		logger.Logf(env, "battery", "could not write battery file: %v", err)
		return false
	}

	data := make([]byte, n)
	_, err = b.SaveBattery(data)
	if err != nil {
		logger.Logf(env, "battery", "could not write battery file: %v", err)
		return false
	}

	err = os.WriteFile(fn, data, 0o600)
	if err != nil {
		logger.Logf(env, "battery", "could not write battery file: %v", err)
		return false
	}

	logger.Logf(env, "battery", "battery file saved to %s", fn)

	return true
}
