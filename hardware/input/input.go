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

import (
	"github.com/mangoemu/mango/curated"
	"github.com/mangoemu/mango/hardware/state"
)

// Sentinal error patterns.
const (
	UnknownPlayer = "input: unknown player (%d)"
	QueueFull     = "input: pushed event queue is full: input dropped"
)

// NumPlayers is the number of controller ports.
const NumPlayers = 2

// Event describes a change of state of a single button.
type Event struct {
	Player  int
	Button  Button
	Pressed bool
}

// the number of events that can be waiting in the pushed queue.
const pushedQueueLen = 64

// Input handles all forms of input into the SNES.
type Input struct {
	Players [NumPlayers]*Controller

	// events pushed onto the input queue
	pushed chan Event
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput() *Input {
	inp := &Input{
		pushed: make(chan Event, pushedQueueLen),
	}
	for i := range inp.Players {
		inp.Players[i] = NewController()
	}
	return inp
}

// Reset both controllers.
func (inp *Input) Reset() {
	for _, p := range inp.Players {
		p.Reset()
	}
}

// HandleEvent changes the state of a button on one of the controllers.
func (inp *Input) HandleEvent(ev Event) error {
	if ev.Player < 0 || ev.Player >= NumPlayers {
		return curated.Errorf(UnknownPlayer, ev.Player)
	}
	inp.Players[ev.Player].SetButton(ev.Button, ev.Pressed)
	return nil
}

// PushEvent pushes an Event onto the queue. Will drop the event and return
// an error if queue is full. It is safe to call PushEvent() from any
// goroutine.
func (inp *Input) PushEvent(ev Event) error {
	select {
	case inp.pushed <- ev:
	default:
		return curated.Errorf(QueueFull)
	}
	return nil
}

// HandlePushed handles all events waiting in the pushed queue. Should only
// be called from the emulation goroutine.
func (inp *Input) HandlePushed() error {
	for {
		select {
		case ev := <-inp.pushed:
			if err := inp.HandleEvent(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// Latch sets the latch line of both controllers. The latch line is shared by
// the two ports.
func (inp *Input) Latch(v bool) {
	for _, p := range inp.Players {
		p.Latch(v)
	}
}

// HandleState saves or restores the state of both controllers.
func (inp *Input) HandleState(sh *state.Handler) {
	for _, p := range inp.Players {
		p.HandleState(sh)
	}
}
