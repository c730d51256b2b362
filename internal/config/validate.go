package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks cross-field constraints that tag-level validation
// cannot express. It collects all problems into a single error.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port: must be in (0, 65535], got %d", c.Server.Port))
	}
	if c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, fmt.Errorf("database: min_conns (%d) exceeds max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns))
	}
	if len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, errors.New("auth.jwt_secret: must be at least 32 characters"))
	}
	if c.Search.Enabled {
		if strings.TrimSpace(c.Search.URL) == "" {
			errs = append(errs, errors.New("search.url: required when search is enabled"))
		}
		if strings.TrimSpace(c.Search.APIKey) == "" {
			errs = append(errs, errors.New("search.api_key: required when search is enabled"))
		}
	}
	if c.Curation.MaxItemsPerList <= 0 {
		errs = append(errs, errors.New("curation.max_items_per_list: must be positive"))
	}
	if c.Curation.SearchResultLimit <= 0 {
		errs = append(errs, errors.New("curation.search_result_limit: must be positive"))
	}

	return errors.Join(errs...)
}
