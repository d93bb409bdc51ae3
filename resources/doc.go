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

// Package resources contains functions to prepare paths for mango resources,
// such as the preferences file and battery backed save files.
//
// The JoinPath() function returns the correct path to the resource
// directory/file specified in the arguments. It handles the creation of
// directories as required but does not otherwise touch or create files.
//
// The base path depends on how the binary was built. For builds with the
// "release" build tag the base path is in the user's configuration
// directory. On modern Linux systems that would be something like:
//
//	/home/user/.config/mango/
//
// For non-release builds the base path is in the current working directory:
//
//	.mango
//
// In both cases, if a directory named "mango_resources" exists in the
// current working directory then that is used instead. This is the portable
// path and is useful for running the emulator from removable media.
package resources
