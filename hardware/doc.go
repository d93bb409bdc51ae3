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

// Package hardware is the base package for the SNES emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The SNES type is the root of the emulation and contains external references
// to all the SNES sub-systems. From here, the emulation can either be started
// to run continuously (with optional callback to check for continuation); or
// it can be stepped frame by frame.
//
// The CPU, PPU and APU are defined by interfaces. The null package contains
// implementations that do nothing. The cartridge, the memory system and the
// controllers are always emulated.
//
// The complete state of the emulation can be saved with SaveState() and
// restored with LoadState(). The battery backed RAM of the cartridge can be
// accessed with SaveBattery() and LoadBattery().
package hardware
