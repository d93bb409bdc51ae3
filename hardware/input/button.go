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

package input

// Button identifies a button on the SNES joypad. The value is the bit
// position of the button in the controller's shift register.
type Button int

// List of valid Button values.
const (
	B Button = iota
	Y
	Select
	Start
	Up
	Down
	Left
	Right
	A
	X
	L
	R
	NumButtons
)

func (b Button) String() string {
	switch b {
	case B:
		return "B"
	case Y:
		return "Y"
	case Select:
		return "Select"
	case Start:
		return "Start"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case A:
		return "A"
	case X:
		return "X"
	case L:
		return "L"
	case R:
		return "R"
	}
	return "unknown button"
}
