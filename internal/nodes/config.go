package nodes

import (
	"fmt"
	"io"
	"math"
	"os"

	"floating-nodes/internal/render"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultMovementUpdateTime is the number of seconds between heading
	// resamples.
	DefaultMovementUpdateTime = 0.7
	// DefaultDropAmount is the number of nodes one pointer press spawns.
	DefaultDropAmount = 1

	nodeDensity = 2.5
)

// DropParams controls click-to-spawn nodes.
type DropParams struct {
	Amount int `yaml:"amount"`
	// Limit caps the number of dropped nodes kept alive; zero disables it.
	Limit      int    `yaml:"limit"`
	NodeParams Params `yaml:"node_params"`
}

// Config holds every option of a node field.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// InitialNodeCount overrides the population derived from the surface size.
	InitialNodeCount *int   `yaml:"initial_node_count,omitempty"`
	NodeParams       Params `yaml:"node_params"`

	EnableInteraction     bool   `yaml:"enable_interaction"`
	InteractiveNodeParams Params `yaml:"interactive_node_params"`

	EnableNodeDrop bool       `yaml:"enable_node_drop"`
	NodeDropParams DropParams `yaml:"node_drop_params"`

	MovementUpdateTime float64 `yaml:"movement_update_time"`
	EnableOutOfBound   bool    `yaml:"enable_out_of_bound"`
	PauseAnimation     bool    `yaml:"pause_animation"`

	Background render.RGBA `yaml:"background"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:                 960,
		Height:                540,
		NodeParams:            DefaultParams(),
		InteractiveNodeParams: DefaultParams(),
		NodeDropParams: DropParams{
			Amount:     DefaultDropAmount,
			NodeParams: DefaultParams(),
		},
		MovementUpdateTime: DefaultMovementUpdateTime,
		Background:         render.RGBA{255, 255, 255, 1},
	}
}

// NodeCount returns the size of the initial population: the explicit count
// when set, otherwise 2.5 times the square root of width plus height,
// rounded up.
func (c Config) NodeCount() int {
	if c.InitialNodeCount != nil {
		return *c.InitialNodeCount
	}
	return int(math.Ceil(nodeDensity * math.Sqrt(float64(c.Width+c.Height))))
}

// DropAmount returns how many nodes a pointer press spawns.
func (c Config) DropAmount() int {
	if c.NodeDropParams.Amount <= 0 {
		return DefaultDropAmount
	}
	return c.NodeDropParams.Amount
}

// Validate reports the first invalid option as a *ConfigError.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return configErr("width", "must be positive, got %d", c.Width)
	}
	if c.Height <= 0 {
		return configErr("height", "must be positive, got %d", c.Height)
	}
	if c.InitialNodeCount != nil && *c.InitialNodeCount < 0 {
		return configErr("initial_node_count", "must not be negative, got %d", *c.InitialNodeCount)
	}
	if !(c.MovementUpdateTime > 0) {
		return configErr("movement_update_time", "must be positive, got %v", c.MovementUpdateTime)
	}
	if c.NodeDropParams.Amount < 0 {
		return configErr("node_drop_params.amount", "must not be negative, got %d", c.NodeDropParams.Amount)
	}
	if c.NodeDropParams.Limit < 0 {
		return configErr("node_drop_params.limit", "must not be negative, got %d", c.NodeDropParams.Limit)
	}
	if err := validateRGBA("background", c.Background); err != nil {
		return err
	}
	if err := c.NodeParams.validate("node_params"); err != nil {
		return err
	}
	if err := c.InteractiveNodeParams.validate("interactive_node_params"); err != nil {
		return err
	}
	return c.NodeDropParams.NodeParams.validate("node_drop_params.node_params")
}

func (p Params) validate(prefix string) error {
	field := func(name string) string { return prefix + "." + name }

	if err := validateRGBA(field("color"), p.Color); err != nil {
		return err
	}
	if p.Speed < 0 || math.IsNaN(p.Speed) {
		return configErr(field("speed"), "must not be negative, got %v", p.Speed)
	}
	if p.Radius != nil {
		if *p.Radius < 0 {
			return configErr(field("radius"), "must not be negative, got %d", *p.Radius)
		}
	} else {
		if p.RadiusRange.Min < 0 {
			return configErr(field("radius_range.min"), "must not be negative, got %d", p.RadiusRange.Min)
		}
		if p.RadiusRange.Max < p.RadiusRange.Min {
			return configErr(field("radius_range"), "max %d below min %d", p.RadiusRange.Max, p.RadiusRange.Min)
		}
	}
	if p.ConnectionSize < 0 {
		return configErr(field("connection_size"), "must not be negative, got %v", p.ConnectionSize)
	}
	for i, v := range p.ConnectionColor {
		if v < 0 || v > 255 {
			return configErr(field("connection_color"), "component %d out of [0,255]: %v", i, v)
		}
	}
	if !(p.ConnectionThreshold > 0) {
		return configErr(field("connection_threshold"), "must be positive, got %v", p.ConnectionThreshold)
	}
	if p.ConnectionAlphaDivisor == 0 {
		return configErr(field("connection_alpha_divisor"), "must not be zero")
	}
	if a := p.ConnectionStaticAlpha; a != nil && (*a < 0 || *a > 1) {
		return configErr(field("connection_static_alpha"), "out of [0,1]: %v", *a)
	}
	return nil
}

func validateRGBA(field string, c render.RGBA) error {
	for i := 0; i < 3; i++ {
		if c[i] < 0 || c[i] > 255 {
			return configErr(field, "component %d out of [0,255]: %v", i, c[i])
		}
	}
	if c[3] < 0 || c[3] > 1 {
		return configErr(field, "alpha out of [0,1]: %v", c[3])
	}
	return nil
}

// LoadConfig reads a YAML file on top of DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path as YAML.
func SaveConfig(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// WriteYAML encodes cfg to w.
func (c Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
