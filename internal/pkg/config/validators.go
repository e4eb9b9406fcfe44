// internal/pkg/config/validators.go
package config

import (
	"fmt"
)

// ProductionValidator performs strict validation for production environments
type ProductionValidator struct{}

// Validate rejects insecure or placeholder settings that are tolerable in
// development but not in production.
func (v *ProductionValidator) Validate(cfg *Config) error {
	if cfg.Database.SSLMode == "disable" {
		return fmt.Errorf("database SSL must be enabled in production")
	}
	if len(cfg.Security.AllowedOrigins) == 0 {
		return fmt.Errorf("allowed origins must be configured in production")
	}
	for _, origin := range cfg.Security.AllowedOrigins {
		if origin == "*" {
			return fmt.Errorf("wildcard origin (*) not allowed in production")
		}
	}
	if cfg.Directory.ClientSecret == "" {
		return fmt.Errorf("directory client secret must be set in production")
	}
	return nil
}
