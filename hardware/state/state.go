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

package state

import (
	"encoding/binary"
	"fmt"
)

// Mode specifies what a Handler does with the values passed to it.
type Mode int

// List of valid Mode values.
const (
	Saving Mode = iota
	Loading
	Verifying
)

func (m Mode) String() string {
	switch m {
	case Saving:
		return "saving"
	case Loading:
		return "loading"
	case Verifying:
		return "verifying"
	}
	return "unknown"
}

// Handler implements the save state codec.
type Handler struct {
	mode   Mode
	data   []byte
	offset int

	overrun  bool
	mismatch bool
}

// the initial capacity of the buffer used when saving. the buffer will grow
// as required
const initialCapacity = 0x40000

// NewSaver returns a Handler in Saving mode with an empty buffer.
func NewSaver() *Handler {
	return &Handler{
		mode: Saving,
		data: make([]byte, 0, initialCapacity),
	}
}

// NewLoader returns a Handler in Loading mode. The data is not copied.
func NewLoader(data []byte) *Handler {
	return &Handler{
		mode: Loading,
		data: data,
	}
}

// NewVerifier returns a Handler in Verifying mode. The data is not copied.
func NewVerifier(data []byte) *Handler {
	return &Handler{
		mode: Verifying,
		data: data,
	}
}

func (sh *Handler) String() string {
	return fmt.Sprintf("%s: %d of %d bytes", sh.mode, sh.offset, len(sh.data))
}

// Mode returns the mode of the handler.
func (sh *Handler) Mode() Mode {
	return sh.mode
}

// Saving returns true if the handler is in Saving mode.
func (sh *Handler) Saving() bool {
	return sh.mode == Saving
}

// Offset returns the cursor position. For a Saving handler this is also the
// size of the data.
func (sh *Handler) Offset() int {
	return sh.offset
}

// Data returns the buffer. For a Saving handler this is the data saved so
// far.
func (sh *Handler) Data() []byte {
	if sh.mode == Saving {
		return sh.data[:sh.offset]
	}
	return sh.data
}

// Remaining returns the number of bytes that have not yet been consumed. It
// is always zero for a Saving handler.
func (sh *Handler) Remaining() int {
	if sh.mode == Saving {
		return 0
	}
	return len(sh.data) - sh.offset
}

// Overrun returns true if an attempt was made to read past the end of the
// data.
func (sh *Handler) Overrun() bool {
	return sh.overrun
}

// Mismatch returns true if a Verifying handler has encountered a value that
// differs from the data.
func (sh *Handler) Mismatch() bool {
	return sh.mismatch
}

// next returns the next n bytes of the buffer. for a Saving handler the
// buffer is extended. returns nil if the data has been overrun.
func (sh *Handler) next(n int) []byte {
	if sh.mode == Saving {
		sh.data = append(sh.data, make([]byte, n)...)
		b := sh.data[sh.offset : sh.offset+n]
		sh.offset += n
		return b
	}

	if sh.overrun || sh.offset+n > len(sh.data) {
		sh.overrun = true
		return nil
	}

	b := sh.data[sh.offset : sh.offset+n]
	sh.offset += n
	return b
}

// Bools handles any number of boolean values. The values are packed eight
// to a byte, least significant bit first.
func (sh *Handler) Bools(v ...*bool) {
	for len(v) > 0 {
		n := min(len(v), 8)

		b := sh.next(1)
		if b == nil {
			return
		}

		for i := 0; i < n; i++ {
			switch sh.mode {
			case Saving:
				if *v[i] {
					b[0] |= 1 << i
				}
			case Loading:
				*v[i] = b[0]&(1<<i) != 0
			case Verifying:
				sh.mismatch = sh.mismatch || *v[i] != (b[0]&(1<<i) != 0)
			}
		}

		v = v[n:]
	}
}

// Bytes handles any number of 8-bit values.
func (sh *Handler) Bytes(v ...*uint8) {
	for _, p := range v {
		b := sh.next(1)
		if b == nil {
			return
		}

		switch sh.mode {
		case Saving:
			b[0] = *p
		case Loading:
			*p = b[0]
		case Verifying:
			sh.mismatch = sh.mismatch || *p != b[0]
		}
	}
}

// Words handles any number of 16-bit values.
func (sh *Handler) Words(v ...*uint16) {
	for _, p := range v {
		b := sh.next(2)
		if b == nil {
			return
		}

		switch sh.mode {
		case Saving:
			binary.LittleEndian.PutUint16(b, *p)
		case Loading:
			*p = binary.LittleEndian.Uint16(b)
		case Verifying:
			sh.mismatch = sh.mismatch || *p != binary.LittleEndian.Uint16(b)
		}
	}
}

// Ints handles any number of 32-bit values.
func (sh *Handler) Ints(v ...*uint32) {
	for _, p := range v {
		b := sh.next(4)
		if b == nil {
			return
		}

		switch sh.mode {
		case Saving:
			binary.LittleEndian.PutUint32(b, *p)
		case Loading:
			*p = binary.LittleEndian.Uint32(b)
		case Verifying:
			sh.mismatch = sh.mismatch || *p != binary.LittleEndian.Uint32(b)
		}
	}
}

// Longs handles any number of 64-bit values.
func (sh *Handler) Longs(v ...*uint64) {
	for _, p := range v {
		b := sh.next(8)
		if b == nil {
			return
		}

		switch sh.mode {
		case Saving:
			binary.LittleEndian.PutUint64(b, *p)
		case Loading:
			*p = binary.LittleEndian.Uint64(b)
		case Verifying:
			sh.mismatch = sh.mismatch || *p != binary.LittleEndian.Uint64(b)
		}
	}
}

// ByteArray handles a fixed length array of bytes. The length of the array
// is not stored.
func (sh *Handler) ByteArray(v []uint8) {
	b := sh.next(len(v))
	if b == nil {
		return
	}

	switch sh.mode {
	case Saving:
		copy(b, v)
	case Loading:
		copy(v, b)
	case Verifying:
		for i := range v {
			if v[i] != b[i] {
				sh.mismatch = true
				break
			}
		}
	}
}

// PlaceInt writes a 32-bit value at an absolute offset in the data of a
// Saving handler. The offset must be in the part of the buffer that has
// already been written. It has no effect on other handlers.
func (sh *Handler) PlaceInt(offset int, v uint32) {
	if sh.mode != Saving || offset < 0 || offset+4 > sh.offset {
		return
	}
	binary.LittleEndian.PutUint32(sh.data[offset:], v)
}
