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

// Package input coordinates input into the SNES. There are two sources of
// input:
//
// 1) Immediate input from the user, by calling HandleEvent()
// 2) Pushed events, from a different goroutine, by calling PushEvent()
//
// Pushed events are queued and handled by the emulation goroutine when
// HandlePushed() is called. The SNES does this once per frame.
//
// Input is delivered to one of the two controller ports. The Controller type
// is the standard SNES joypad. The controllers are read serially by the
// program on the console through the IO registers at 0x4016 and 0x4017.
package input
