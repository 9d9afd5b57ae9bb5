package bridge

import "github.com/kbukum/pariter/validation"

const (
	DefaultSplitThreshold = 1024.0
	DefaultMinLen         = 1
	DefaultMaxDepth       = 32
)

// Config controls split granularity.
type Config struct {
	// SplitThreshold is the producer cost above which a range is split.
	SplitThreshold float64 `yaml:"split_threshold" mapstructure:"split_threshold" validate:"gte=0"`
	// MinLen is the length a range must exceed to be split.
	MinLen int `yaml:"min_len" mapstructure:"min_len" validate:"gte=1"`
	// MaxDepth bounds the split recursion.
	MaxDepth int `yaml:"max_depth" mapstructure:"max_depth" validate:"gte=1,lte=64"`
}

// ApplyDefaults fills zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.SplitThreshold == 0 {
		c.SplitThreshold = DefaultSplitThreshold
	}
	if c.MinLen == 0 {
		c.MinLen = DefaultMinLen
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = DefaultMaxDepth
	}
}

// Validate checks the configuration after defaults are applied.
func (c *Config) Validate() error {
	return validation.Validate(c)
}
