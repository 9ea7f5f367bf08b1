package app

import (
	"log"

	"floating-nodes/internal/nodes"

	"github.com/spf13/pflag"
)

// Options represents the command-line parameters for the application.
type Options struct {
	ConfigPath string
	Seed       int64
	TPS        int
	Title      string
	Overlay    bool

	width         int
	height        int
	count         int
	interactive   bool
	drop          bool
	dropAmount    int
	dropLimit     int
	outOfBound    bool
	movementEvery float64
	paused        bool

	fs *pflag.FlagSet
}

// NewOptions returns Options populated with sensible defaults.
func NewOptions() *Options {
	return &Options{Seed: 42, TPS: 60, Title: "Floating Nodes"}
}

// Bind attaches the options to the provided FlagSet.
func (o *Options) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ConfigPath, "config", "c", o.ConfigPath, "YAML configuration file")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "seed for node placement and movement")
	fs.IntVar(&o.TPS, "tps", o.TPS, "ticks per second")
	fs.StringVar(&o.Title, "title", o.Title, "window title")
	fs.BoolVar(&o.Overlay, "overlay", o.Overlay, "show the diagnostics overlay at start")

	fs.IntVar(&o.width, "width", 0, "surface width in pixels")
	fs.IntVar(&o.height, "height", 0, "surface height in pixels")
	fs.IntVarP(&o.count, "nodes", "n", 0, "initial node count (default derived from surface size)")
	fs.BoolVar(&o.interactive, "interactive", false, "show a node under the pointer")
	fs.BoolVar(&o.drop, "drop", false, "drop nodes on click")
	fs.IntVar(&o.dropAmount, "drop-amount", nodes.DefaultDropAmount, "nodes dropped per click")
	fs.IntVar(&o.dropLimit, "drop-limit", 0, "maximum dropped nodes kept (0 keeps all)")
	fs.BoolVar(&o.outOfBound, "out-of-bound", false, "relocate nodes that leave the surface")
	fs.Float64Var(&o.movementEvery, "movement-update-time", nodes.DefaultMovementUpdateTime, "seconds between direction changes")
	fs.BoolVar(&o.paused, "paused", false, "start with animation paused")
	o.fs = fs
}

// Config loads the configuration file, if any, applies flags that were set
// explicitly and validates the result.
func (o *Options) Config() (nodes.Config, error) {
	cfg := nodes.DefaultConfig()
	if o.ConfigPath != "" {
		loaded, err := nodes.LoadConfig(o.ConfigPath)
		if err != nil {
			return cfg, err
		}
		log.Printf("loaded config from %s", o.ConfigPath)
		cfg = loaded
	}
	o.Apply(&cfg)
	return cfg, cfg.Validate()
}

// Apply overwrites the fields of cfg whose flags were changed on the command line.
func (o *Options) Apply(cfg *nodes.Config) {
	if o.fs == nil {
		return
	}
	changed := o.fs.Changed
	if changed("width") {
		cfg.Width = o.width
	}
	if changed("height") {
		cfg.Height = o.height
	}
	if changed("nodes") {
		n := o.count
		cfg.InitialNodeCount = &n
	}
	if changed("interactive") {
		cfg.EnableInteraction = o.interactive
	}
	if changed("drop") {
		cfg.EnableNodeDrop = o.drop
	}
	if changed("drop-amount") {
		cfg.NodeDropParams.Amount = o.dropAmount
	}
	if changed("drop-limit") {
		cfg.NodeDropParams.Limit = o.dropLimit
	}
	if changed("out-of-bound") {
		cfg.EnableOutOfBound = o.outOfBound
	}
	if changed("movement-update-time") {
		cfg.MovementUpdateTime = o.movementEvery
	}
	if changed("paused") {
		cfg.PauseAnimation = o.paused
	}
}
