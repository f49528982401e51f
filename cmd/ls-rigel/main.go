// Command ls-rigel shows where the Sun, the Moon, the planets and catalog
// stars and pulsars are in the sky of an observer.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-rigel/internal/catalog"
	"github.com/litescript/ls-rigel/internal/config"
	"github.com/litescript/ls-rigel/internal/coords"
	"github.com/litescript/ls-rigel/internal/logging"
	"github.com/litescript/ls-rigel/internal/state"
	"github.com/litescript/ls-rigel/internal/ui"
)

// options holds the command line after parsing. Settings flags override
// the configuration file only when given.
type options struct {
	configPath string
	at         string
	summary    bool
	nearest    string

	set map[string]bool
	cfg config.Config
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("ls-rigel", flag.ContinueOnError)
	opts := &options{set: make(map[string]bool)}
	flagCfg := config.Default()

	fs.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&opts.at, "time", "", "Observation time, RFC 3339 (default now)")
	fs.Float64Var(&flagCfg.Observer.Lon, "lon", flagCfg.Observer.Lon, "Observer longitude, degrees east")
	fs.Float64Var(&flagCfg.Observer.Lat, "lat", flagCfg.Observer.Lat, "Observer latitude, degrees north")
	fs.Float64Var(&flagCfg.View.Az, "az", flagCfg.View.Az, "Projection centre azimuth, degrees")
	fs.Float64Var(&flagCfg.View.Alt, "alt", flagCfg.View.Alt, "Projection centre altitude, degrees")
	fs.Float64Var(&flagCfg.View.FOV, "fov", flagCfg.View.FOV, "Field of view, degrees")
	fs.Float64Var(&flagCfg.View.Radius, "radius", flagCfg.View.Radius, "Nearest-object search radius on the projection plane")
	fs.StringVar(&flagCfg.Catalog.HYG, "hyg", "", "HYG v3 star database CSV (default embedded)")
	fs.StringVar(&flagCfg.Catalog.Asterisms, "asterisms", "", "Asterism file (default embedded)")
	fs.StringVar(&flagCfg.Catalog.Pulsars, "pulsars", "", "Pulsar catalog (default embedded)")
	fs.StringVar(&flagCfg.LogLevel, "log-level", flagCfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.BoolVar(&opts.summary, "summary", false, "Print a text report instead of the TUI")
	fs.StringVar(&opts.nearest, "nearest", "", "Report the object nearest to az,alt (degrees)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return nil, err
		}
	}
	opts.cfg = overlay(cfg, flagCfg, opts.set)
	if err := opts.cfg.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// overlay copies the explicitly set flag values onto cfg.
func overlay(cfg, flags config.Config, set map[string]bool) config.Config {
	fields := map[string]func(){
		"lon":       func() { cfg.Observer.Lon = flags.Observer.Lon },
		"lat":       func() { cfg.Observer.Lat = flags.Observer.Lat },
		"az":        func() { cfg.View.Az = flags.View.Az },
		"alt":       func() { cfg.View.Alt = flags.View.Alt },
		"fov":       func() { cfg.View.FOV = flags.View.FOV },
		"radius":    func() { cfg.View.Radius = flags.View.Radius },
		"hyg":       func() { cfg.Catalog.HYG = flags.Catalog.HYG },
		"asterisms": func() { cfg.Catalog.Asterisms = flags.Catalog.Asterisms },
		"pulsars":   func() { cfg.Catalog.Pulsars = flags.Catalog.Pulsars },
		"log-level": func() { cfg.LogLevel = flags.LogLevel },
	}
	for name, apply := range fields {
		if set[name] {
			apply()
		}
	}
	return cfg
}

func run(opts *options) error {
	cfg := opts.cfg
	logger := logging.New(logging.ParseLevel(cfg.LogLevel))

	when := time.Now()
	if opts.at != "" {
		t, err := time.Parse(time.RFC3339, opts.at)
		if err != nil {
			return fmt.Errorf("parse -time: %w", err)
		}
		when = t
	}

	where, err := cfg.ObserverLocation()
	if err != nil {
		return err
	}
	center, err := cfg.Center()
	if err != nil {
		return err
	}

	cat, err := catalog.Load(cfg.Catalog, logger)
	if err != nil {
		return err
	}

	stateMgr := state.NewManager(state.Config{
		Time:     when,
		Where:    where,
		Center:   center,
		FOV:      cfg.View.FOV,
		Radius:   cfg.View.Radius,
		CacheTTL: cfg.CacheTTL,
	}, cat, logger)

	// Headless mode: no TUI
	headless := opts.summary || opts.nearest != "" || !term.IsTerminal(int(os.Stdout.Fd()))
	if headless {
		var target *coords.Horizontal
		if opts.nearest != "" {
			h, err := parseAzAlt(opts.nearest)
			if err != nil {
				return err
			}
			target = &h
		}
		return writeReport(os.Stdout, stateMgr.Snapshot(), target)
	}

	p := tea.NewProgram(ui.New(stateMgr), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
