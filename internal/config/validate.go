package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535] (got %d)", c.Server.Port)
	}

	if err := c.Upstream.validate(); err != nil {
		return fmt.Errorf("upstream: %w", err)
	}

	if strings.TrimSpace(c.Service.Name) == "" {
		return fmt.Errorf("service.name must not be empty")
	}

	if c.Ops.Enabled() && strings.TrimSpace(c.Ops.Addr) == "" {
		return fmt.Errorf("ops.addr must be set when ops is enabled")
	}

	return nil
}

func (u *UpstreamConfig) validate() error {
	parsed, err := url.Parse(u.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("base_url must be an http(s) URL (got %q)", u.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("base_url must include a host (got %q)", u.BaseURL)
	}
	if u.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", u.Timeout)
	}
	if u.MaxIdleConns < 0 {
		return fmt.Errorf("max_idle_conns must be >= 0 (got %d)", u.MaxIdleConns)
	}
	return nil
}
