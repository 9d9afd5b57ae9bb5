// Package config loads service configuration from a YAML file, a .env file,
// environment variables and command-line flags.
//
// It uses Viper underneath. Precedence from highest to lowest is: flags bound
// on the Viper passed with WithViper, environment variables, the config file.
//
// # Usage
//
//	type AppConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Bridge bridge.Config  `yaml:"bridge" mapstructure:"bridge"`
//	}
//
//	var cfg AppConfig
//	err := config.LoadConfig("pariter-bench", &cfg, config.WithEnvPrefix("PARITER"))
//
// With prefix PARITER, the variable PARITER_BRIDGE_SPLIT_THRESHOLD sets
// bridge.split_threshold.
package config
