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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/mangoemu/mango/battery"
	"github.com/mangoemu/mango/cartridgeloader"
	"github.com/mangoemu/mango/curated"
	"github.com/mangoemu/mango/environment"
	"github.com/mangoemu/mango/govern"
	"github.com/mangoemu/mango/hardware"
	"github.com/mangoemu/mango/hardware/clocks"
	"github.com/mangoemu/mango/hardware/memory/cartridge"
	"github.com/mangoemu/mango/hardware/memory/memorymap"
	"github.com/mangoemu/mango/logger"
	"github.com/mangoemu/mango/modalflag"
	"github.com/mangoemu/mango/prefs"
	"github.com/mangoemu/mango/statsview"
	"github.com/mangoemu/mango/version"
	"github.com/mangoemu/mango/wavwriter"
)

// exit values.
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. returns the value
// to use with os.Exit().
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "INFO", "PEEK", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "INFO":
		err = info(md)

	case "PEEK":
		err = peek(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// newEmulation creates the main emulation and loads the cartridge into it.
func newEmulation(filename string) (*hardware.SNES, cartridgeloader.Loader, error) {
	cl := cartridgeloader.NewLoader(filename)

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return nil, cl, err
	}

	snes := hardware.NewSNES(env)

	err = cl.Load()
	if err != nil {
		return nil, cl, err
	}

	err = snes.LoadROM(cl.Data)
	if err != nil {
		return nil, cl, err
	}

	return snes, cl, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	frames := md.AddInt("frames", 60, "number of frames to run")
	wav := md.AddString("wav", "", "record audio to wav file")
	loadState := md.AddString("loadstate", "", "restore save state from file before running")
	saveState := md.AddString("savestate", "", "write save state to file after running")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsviewAvailable()))
	prefsStr := md.AddString("prefs", "", "preferences for this run. eg. \"hardware.ramfill::255\"")
	echo := md.AddBool("log", false, "echo log to output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *echo {
		logger.SetEcho(md.Output)
		defer logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	// command line preferences are consumed when the preferences are created
	// by newEmulation()
	if *prefsStr != "" {
		prefs.PushCommandLineStack(*prefsStr)
	}

	snes, cl, err := newEmulation(md.GetArg(0))

	if *prefsStr != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "mango", "unused preferences: %s", unused)
		}
	}

	if err != nil {
		return err
	}

	battery.Read(snes.Env, snes, cl.ShortName())

	if *loadState != "" {
		data, err := os.ReadFile(*loadState)
		if err != nil {
			return curated.Errorf("mango: %v", err)
		}
		err = snes.LoadState(data)
		if err != nil {
			return err
		}
	}

	if *wav != "" {
		aw, err := wavwriter.New(*wav)
		if err != nil {
			return err
		}
		snes.AddAudioMixer(aw)
	}

	// ctrl-c ends the emulation cleanly
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	err = snes.RunForFrameCount(*frames, func(_ int) (govern.State, error) {
		select {
		case <-intChan:
			return govern.Ending, nil
		default:
		}
		return govern.Running, nil
	})

	// audio is written even if the emulation ended with an error
	if mixErr := snes.EndMixing(); err == nil {
		err = mixErr
	}
	if err != nil {
		return err
	}

	if *saveState != "" {
		err = os.WriteFile(*saveState, snes.SaveState(), 0o600)
		if err != nil {
			return curated.Errorf("mango: %v", err)
		}
	}

	if snes.Env.Prefs.Cartridge.BatteryAutoSave.Get().(bool) {
		battery.Write(snes.Env, snes, cl.ShortName())
	}

	fmt.Fprintf(md.Output, "ran %d frames (%.2fs)\n", snes.Frame,
		float64(snes.Frame)/clocks.FrameRate(snes.PALTiming))

	return nil
}

func statsviewAvailable() string {
	if statsview.Available() {
		return "available"
	}
	return "not available in this build"
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	headers := md.AddBool("headers", false, "list all candidate headers")
	memvizFile := md.AddString("memviz", "", "write graphviz description of the cartridge header to file")
	memoryMap := md.AddBool("memorymap", false, "show the memory map of the console")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *memoryMap {
		fmt.Fprint(md.Output, memorymap.Summary())
		if len(md.RemainingArgs()) == 0 {
			return nil
		}
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	snes, cl, err := newEmulation(md.GetArg(0))
	if err != nil {
		return err
	}

	fmt.Fprintln(md.Output, snes.Mem.Cart.Summary())
	fmt.Fprintf(md.Output, "sha1: %s\n", cl.Hash)

	if *headers {
		for i, h := range cartridge.ScoreHeaders(cl.Data) {
			fmt.Fprintf(md.Output, "%d %s\n", i, h)
		}
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return curated.Errorf("mango: %v", err)
		}
		defer f.Close()
		memviz.Map(f, &snes.Mem.Cart.Header)
	}

	return nil
}

func peek(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	count := 16

	switch len(md.RemainingArgs()) {
	case 0, 1:
		return fmt.Errorf("cartridge and address required for %s mode", md)
	case 2:
	case 3:
		count, err = strconv.Atoi(md.GetArg(2))
		if err != nil || count < 1 {
			return fmt.Errorf("count must be a positive number")
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	address, err := parseAddress(md.GetArg(1))
	if err != nil {
		return err
	}

	snes, _, err := newEmulation(md.GetArg(0))
	if err != nil {
		return err
	}

	s := strings.Builder{}
	for i := 0; i < count; i++ {
		a := (address + uint32(i)) & memorymap.MemtopBanks
		if i%16 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			bank, addr := memorymap.Split(a)
			s.WriteString(fmt.Sprintf("%02x:%04x ", bank, addr))
		}
		s.WriteString(fmt.Sprintf(" %02x", snes.Mem.Peek(a)))
	}
	s.WriteString("\n")

	fmt.Fprint(md.Output, s.String())

	return nil
}

// parseAddress accepts an address in the form bank:addr, with both parts in
// hexadecimal. the bank can be omitted.
func parseAddress(s string) (uint32, error) {
	var bank uint64
	var err error

	b, a, ok := strings.Cut(s, ":")
	if ok {
		bank, err = strconv.ParseUint(b, 16, 8)
		if err != nil {
			return 0, fmt.Errorf("bank is not valid: %s", b)
		}
	} else {
		a = b
	}

	addr, err := strconv.ParseUint(a, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("address is not valid: %s", a)
	}

	return memorymap.Join(uint8(bank), uint16(addr)), nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(md.Output, r)
	}

	return nil
}
