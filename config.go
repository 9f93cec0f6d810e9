package evolve

import (
	"math"
	"strings"
)

// ToolConfig is the shared cmd tool configuration: where run history lives
// and how the engine advances generations.
type ToolConfig struct {
	Persistence *PersistenceConfig `toml:"persistence"`
	Engine      *EngineConfig      `toml:"engine"`
	Seed        int64              `toml:"seed"`
}

// FitnessFunc scores an Individual. Higher is better. The engine calls it
// exactly once per newly constructed Individual and caches the result; it
// must return the same value for the same variable values.
type FitnessFunc func(*Individual) float64

// Encoding controls how generated and mutated values are treated: integer
// encoding rounds every draw to the nearest whole number, real encoding
// keeps the raw uniform draw.
type Encoding byte

const (
	EncodingInteger Encoding = iota
	EncodingReal
)

// ParseEncoding resolves an encoding name, case-insensitive. Anything that
// isn't "real" resolves to integer, the default.
func ParseEncoding(name string) Encoding {
	switch strings.ToLower(name) {
	case "real":
		return EncodingReal
	default:
		return EncodingInteger
	}
}

// Interval is the closed value domain [Min, Max] shared by every variable.
type Interval struct {
	Min float64 `toml:"min"`
	Max float64 `toml:"max"`
}

// IndividualConfig is the immutable description of the problem: the variable
// specification (named, or variable-length positional), the value interval,
// the numeric encoding, and the fitness function. Fitness cannot come from a
// config file; tools bind it by name through the fitness registry.
type IndividualConfig struct {
	VariableNames       []string    `toml:"variable_names"`
	VariableLength      bool        `toml:"variable_length"`
	MaxIndividualLength int         `toml:"max_individual_length"`
	Interval            *Interval   `toml:"interval"`
	Encoding            string      `toml:"encoding"`
	Fitness             FitnessFunc `toml:"-"`
}

// Validate checks the construction-time invariants. All violations are
// *ConfigurationError.
func (c *IndividualConfig) Validate() error {
	if c.Fitness == nil {
		return newConfigurationError("fitness function must be set")
	}
	if c.Interval == nil {
		return newConfigurationError("interval must be set")
	}
	if math.IsNaN(c.Interval.Min) || math.IsNaN(c.Interval.Max) {
		return newConfigurationError("interval bounds must be numeric")
	}
	if c.Interval.Min > c.Interval.Max {
		return newConfigurationError("interval min [%v] exceeds max [%v]",
			c.Interval.Min, c.Interval.Max)
	}
	if !c.VariableLength && len(c.VariableNames) == 0 {
		return newConfigurationError("at least one variable name or variable_length must be set")
	}
	return nil
}

func (c *IndividualConfig) encoding() Encoding {
	return ParseEncoding(c.Encoding)
}

func (c *IndividualConfig) maxLength() int {
	if c.MaxIndividualLength <= 0 {
		return DefaultMaxIndividualLength
	}
	return c.MaxIndividualLength
}

// randomValue draws uniformly from the interval, rounding to the nearest
// integer under integer encoding.
func (c *IndividualConfig) randomValue() float64 {
	v := c.Interval.Min + rng.Float64()*(c.Interval.Max-c.Interval.Min)
	if c.encoding() == EncodingInteger {
		return math.Round(v)
	}
	return v
}

// boundValue picks one of the two interval bounds with equal probability,
// rounded under integer encoding.
func (c *IndividualConfig) boundValue() float64 {
	v := c.Interval.Min
	if rng.Intn(2) == 1 {
		v = c.Interval.Max
	}
	if c.encoding() == EncodingInteger {
		return math.Round(v)
	}
	return v
}
