package config

import (
	"fmt"
	"net/url"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("auth token TTLs must be > 0")
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.AI.validate(); err != nil {
		return fmt.Errorf("ai: %w", err)
	}

	if c.Summary.MaxTokens <= 0 {
		return fmt.Errorf("summary.max_tokens must be > 0 (got %d)", c.Summary.MaxTokens)
	}
	if err := validateRetention(c.Summary); err != nil {
		return err
	}

	if c.RateLimit.AuthPerMinute < 0 || c.RateLimit.SummaryPerMinute < 0 {
		return fmt.Errorf("rate_limit values must be >= 0")
	}

	return validatePool(c.Database)
}

// Validate checks the settings maintenance commands depend on.
func (c *MaintenanceConfig) Validate() error {
	if err := validateRetention(c.Summary); err != nil {
		return err
	}
	return validatePool(c.Database)
}

func validateRetention(s SummaryConfig) error {
	if s.PendingRetention <= 0 {
		return fmt.Errorf("summary.pending_retention must be > 0 (got %v)", s.PendingRetention)
	}
	return nil
}

func validatePool(d DatabaseConfig) error {
	if d.MinConns > d.MaxConns {
		return fmt.Errorf("database.min_conns (%d) exceeds max_conns (%d)", d.MinConns, d.MaxConns)
	}
	return nil
}

func (a *AIConfig) validate() error {
	if a.APIKey == "" {
		return fmt.Errorf("api_key is required")
	}
	if _, err := url.ParseRequestURI(a.BaseURL); err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if a.Model == "" {
		return fmt.Errorf("model is required")
	}
	if a.Temperature < 0 || a.Temperature > 1 {
		return fmt.Errorf("temperature must be in [0, 1] (got %v)", a.Temperature)
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", a.Timeout)
	}
	return nil
}
