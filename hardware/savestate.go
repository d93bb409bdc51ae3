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

package hardware

import (
	"github.com/mangoemu/mango/curated"
	"github.com/mangoemu/mango/hardware/state"
)

// Sentinal error patterns.
const (
	StateFormatMismatch    = "snes: save state format mismatch"
	StateCartridgeMismatch = "snes: save state is for a different cartridge"
)

// the save state header. the length field is at offset 8 and is filled in
// after the rest of the state has been saved.
const (
	stateMagic   = 0x4653534c
	stateVersion = 2
	lengthOffset = 8
)

// handleState saves, loads or verifies the state of every component. the
// order of the components is part of the save state format.
func (snes *SNES) handleState(sh *state.Handler) {
	sh.Bools(&snes.PALTiming)
	sh.Longs(&snes.Cycles, &snes.SyncCycle)
	sh.Ints(&snes.Frame)
	snes.Mem.HandleState(sh)
	snes.CPU.HandleState(sh)
	snes.APU.HandleState(sh)
	snes.PPU.HandleState(sh)
	snes.Input.HandleState(sh)
	snes.Mem.Cart.HandleState(sh)
}

// SaveState returns the complete state of the emulation.
func (snes *SNES) SaveState() []byte {
	sh := state.NewSaver()

	magic := uint32(stateMagic)
	version := uint32(stateVersion)
	var length uint32
	sh.Ints(&magic, &version, &length)

	snes.Mem.Cart.HandleTypeState(sh)
	snes.handleState(sh)

	sh.PlaceInt(lengthOffset, uint32(sh.Offset()))

	return sh.Data()
}

// readStateHeader reads the header and the cartridge record. the returned
// handler is positioned at the start of the component states.
func (snes *SNES) readStateHeader(sh *state.Handler, size int) error {
	var magic, version, length uint32
	sh.Ints(&magic, &version, &length)
	if sh.Overrun() || magic != stateMagic || version != stateVersion || int(length) != size {
		return curated.Errorf(StateFormatMismatch)
	}

	match := snes.Mem.Cart.HandleTypeState(sh)
	if sh.Overrun() {
		return curated.Errorf(StateFormatMismatch)
	}
	if !match {
		return curated.Errorf(StateCartridgeMismatch)
	}

	return nil
}

// LoadState restores the state of the emulation from data previously
// created by SaveState(). The state must have been saved with the same
// cartridge attached.
//
// The data is checked in full before anything is changed. If an error is
// returned the emulation is unchanged.
func (snes *SNES) LoadState(data []byte) error {
	// the verifying pass makes sure the data is exactly the right size
	// without changing anything
	vh := state.NewVerifier(data)
	if err := snes.readStateHeader(vh, len(data)); err != nil {
		return err
	}
	snes.handleState(vh)
	if vh.Overrun() || vh.Remaining() != 0 {
		return curated.Errorf(StateFormatMismatch)
	}

	sh := state.NewLoader(data)
	if err := snes.readStateHeader(sh, len(data)); err != nil {
		return err
	}
	snes.handleState(sh)

	return nil
}
