package config

import "fmt"

func validate(c *Config) error {
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be > 0")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("page size must be >= 1")
	}
	if c.MaxPages < 1 {
		return fmt.Errorf("max pages must be >= 1")
	}
	if c.BulkSize < 1 {
		return fmt.Errorf("bulk size must be >= 1")
	}
	if c.JitterMax < c.JitterMin {
		return fmt.Errorf("jitter max must be >= jitter min")
	}
	return nil
}
