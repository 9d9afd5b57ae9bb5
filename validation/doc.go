// Package validation validates configuration structs using struct tags.
//
//	type Config struct {
//	    MinLen int `mapstructure:"min_len" validate:"gte=1"`
//	}
//	err := validation.Validate(cfg)
//
// Failures are returned as an *errors.AppError with code INVALID_CONFIG.
// Field paths use mapstructure tag names, so they match the keys a user
// writes in config files and environment variables.
package validation
