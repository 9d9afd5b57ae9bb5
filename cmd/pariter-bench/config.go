package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kbukum/pariter/bridge"
	"github.com/kbukum/pariter/config"
	"github.com/kbukum/pariter/errors"
	"github.com/kbukum/pariter/observability"
	"github.com/kbukum/pariter/producer"
	"github.com/kbukum/pariter/validation"
	"github.com/kbukum/pariter/version"
)

const (
	serviceName = "pariter-bench"
	envPrefix   = "PARITER"
)

type benchConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Workload   string `yaml:"workload" mapstructure:"workload" validate:"oneof=enumerate zip dot"`
	Size       int    `yaml:"size" mapstructure:"size" validate:"gte=1"`
	CostPolicy string `yaml:"cost_policy" mapstructure:"cost_policy"`

	Bridge        bridge.Config        `yaml:"bridge" mapstructure:"bridge"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`

	policy producer.CostPolicy
}

func (c *benchConfig) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	c.Bridge.ApplyDefaults()
	if c.Observability.ServiceName == "" {
		c.Observability.ServiceName = c.Name
	}
	if c.Observability.ServiceVersion == "" {
		c.Observability.ServiceVersion = c.Version
	}
	if c.Observability.Environment == "" {
		c.Observability.Environment = c.Environment
	}
	c.Observability.ApplyDefaults()
}

func (c *benchConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	policy, err := producer.ParseCostPolicy(c.CostPolicy)
	if err != nil {
		return err
	}
	c.policy = policy
	return nil
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"workload":        "workload",
	"size":            "size",
	"cost-policy":     "cost_policy",
	"split-threshold": "bridge.split_threshold",
	"min-len":         "bridge.min_len",
	"max-depth":       "bridge.max_depth",
	"telemetry":       "observability.enabled",
	"otlp-endpoint":   "observability.endpoint",
	"log-level":       "logging.level",
	"log-format":      "logging.format",
}

type cliOptions struct {
	configFile  string
	showVersion bool
}

func newFlagSet(stderr io.Writer) (*pflag.FlagSet, *cliOptions) {
	opts := &cliOptions{}
	fs := pflag.NewFlagSet(serviceName, pflag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVarP(&opts.configFile, "config", "c", "", "path to a YAML config file")
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	fs.StringP("workload", "w", "enumerate", "workload to run: enumerate, zip or dot")
	fs.IntP("size", "n", 1<<20, "number of generated items")
	fs.String("cost-policy", "sum", "zip cost policy: sum or max")
	fs.Float64("split-threshold", bridge.DefaultSplitThreshold, "producer cost above which ranges are split")
	fs.Int("min-len", bridge.DefaultMinLen, "ranges longer than this are split")
	fs.Int("max-depth", bridge.DefaultMaxDepth, "maximum split depth")
	fs.Bool("telemetry", false, "export traces and metrics over OTLP HTTP")
	fs.String("otlp-endpoint", "", "OTLP HTTP endpoint host:port")
	fs.String("log-level", "", "log level (trace, debug, info, warn, error)")
	fs.String("log-format", "", "log format (console or json)")
	return fs, opts
}

// loadConfig parses args and merges flags, environment and the config file.
// It returns pflag.ErrHelp when usage was requested.
func loadConfig(args []string, stderr io.Writer) (*benchConfig, *cliOptions, error) {
	fs, opts := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil, nil, err
		}
		return nil, nil, errors.InvalidInput("args", err.Error())
	}
	if opts.showVersion {
		return nil, opts, nil
	}

	v := viper.New()
	v.SetDefault("name", serviceName)
	v.SetDefault("version", version.Get().Short())
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, nil, fmt.Errorf("binding flag %s: %w", flag, err)
		}
	}

	loaderOpts := []config.LoaderOption{config.WithViper(v), config.WithEnvPrefix(envPrefix)}
	if opts.configFile != "" {
		if _, err := os.Stat(opts.configFile); err != nil {
			return nil, nil, errors.InvalidConfig("config file not readable").WithCause(err)
		}
		loaderOpts = append(loaderOpts, config.WithConfigFile(opts.configFile))
	}

	var cfg benchConfig
	if err := config.LoadConfig(serviceName, &cfg, loaderOpts...); err != nil {
		return nil, nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return &cfg, opts, nil
}
