package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the parsed values against their struct tags
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}
	return nil
}

// Warnings lists settings that are legal but risky. Callers log them at startup.
func (c *Config) Warnings() []string {
	var warnings []string

	switch c.APIKey {
	case ExampleAPIKey:
		warnings = append(warnings, WarnMsgExampleAPIKey)
	case "":
		warnings = append(warnings, WarnMsgNoAPIKey)
	}

	if c.IsProduction() {
		for _, origin := range c.AllowedOrigins {
			if origin == WildcardOrigin {
				warnings = append(warnings, WarnMsgWildcardOrigins)
				break
			}
		}
		if c.RNGSeed != nil {
			warnings = append(warnings, WarnMsgFixedSeed)
		}
	}

	return warnings
}
