package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	switch c.Draft.Store {
	case DraftStoreMemory:
	case DraftStorePostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required when draft.store is %q", DraftStorePostgres)
		}
	default:
		return fmt.Errorf("draft.store must be %q or %q (got %q)", DraftStoreMemory, DraftStorePostgres, c.Draft.Store)
	}

	if c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be positive (got %d)", c.RateLimit.PerMinute)
	}

	return nil
}
