package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/pkg/profile"

	"github.com/nevisdale/m6502/internal/cpu"
	"github.com/nevisdale/m6502/internal/mem"
	"github.com/nevisdale/m6502/internal/script"
	"github.com/nevisdale/m6502/internal/translate"
	"github.com/nevisdale/m6502/internal/ui"
)

var f = translate.From

type config struct {
	image      string
	org        uint16
	script     string
	cycles     int
	monitor    bool
	profileDir string
}

func main() {
	var cfg config
	var org string

	flag.StringVar(&cfg.image, "image", "", "raw binary image to load")
	flag.StringVar(&org, "org", "0x0000", "address to load the image at")
	flag.StringVar(&cfg.script, "script", "", "Starlark setup script, run after the image is loaded")
	flag.IntVar(&cfg.cycles, "cycles", 0, "cycle budget for one Execute call")
	flag.BoolVar(&cfg.monitor, "ui", false, "open the monitor window instead of running once")
	flag.StringVar(&cfg.profileDir, "profile", "", "write a CPU profile to this directory")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	orgAddr, err := strconv.ParseUint(org, 0, 16)
	if err != nil {
		log.Fatalf("%v: -org: %v", os.Args[0], err)
	}
	cfg.org = uint16(orgAddr)

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}

func run(cfg config, out io.Writer) error {
	if cfg.profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.profileDir), profile.Quiet).Stop()
	}

	m := mem.New()
	c := cpu.New()
	setup := func() error {
		c.Reset(m)
		if cfg.image != "" {
			n, err := m.LoadImageFile(cfg.image, cfg.org)
			if err != nil {
				return fmt.Errorf("%v: %w", cfg.image, err)
			}
			log.Print(f("loaded %d bytes at $%04X", n, cfg.org))
		}
		if cfg.script != "" {
			if err := script.Run(cfg.script, nil, m, c); err != nil {
				return err
			}
		}
		return nil
	}

	if cfg.monitor {
		u, err := ui.New(c, m, cfg.cycles, setup)
		if err != nil {
			return err
		}
		return ui.RunUI(u)
	}

	if err := setup(); err != nil {
		return err
	}

	used, err := c.Execute(cfg.cycles, m)
	printState(out, c, used)
	return err
}

func printState(out io.Writer, c *cpu.CPU, cycles int) {
	fmt.Fprintln(out, f("cpu.A: $%02X", c.A))
	fmt.Fprintln(out, f("cpu.X: $%02X", c.X))
	fmt.Fprintln(out, f("cpu.Y: $%02X", c.Y))
	fmt.Fprintln(out, f("cpu.PC: $%04X", c.PC))
	fmt.Fprintln(out, f("cpu.SP: $%04X", c.SP))
	fmt.Fprintln(out, f("cpu.P: %v", c.P))
	fmt.Fprintln(out, f("cycles: %d", cycles))
}
