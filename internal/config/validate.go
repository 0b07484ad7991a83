package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes))
	}

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Errorf("log.level must be debug, info, warn or error (got %q)", c.Log.Level))
	}
	if f := strings.ToLower(c.Log.Format); f != "json" && f != "text" {
		errs = append(errs, fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format))
	}

	if err := validateURL("bolls.base_url", c.Bolls.BaseURL, true); err != nil {
		errs = append(errs, err)
	}
	if c.Bolls.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("bolls.timeout must be > 0 (got %s)", c.Bolls.Timeout))
	}

	if err := validateURL("llm.groq_base_url", c.LLM.GroqBaseURL, true); err != nil {
		errs = append(errs, err)
	}
	if err := validateURL("llm.claude_base_url", c.LLM.ClaudeBaseURL, false); err != nil {
		errs = append(errs, err)
	}
	if c.LLM.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("llm.timeout must be > 0 (got %s)", c.LLM.Timeout))
	}

	if c.Data.CrossRefPopularPath == "" {
		errs = append(errs, errors.New("data.crossref_popular_path is required"))
	}
	if c.Data.CrossRefFullPath == "" {
		errs = append(errs, errors.New("data.crossref_full_path is required"))
	}

	if c.Enrich.Workers < 1 || c.Enrich.Workers > 64 {
		errs = append(errs, fmt.Errorf("enrich.workers must be in 1..64 (got %d)", c.Enrich.Workers))
	}
	if c.Enrich.LookupTimeout <= 0 {
		errs = append(errs, fmt.Errorf("enrich.lookup_timeout must be > 0 (got %s)", c.Enrich.LookupTimeout))
	}

	return errors.Join(errs...)
}

func validateURL(field, raw string, required bool) error {
	if raw == "" {
		if required {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL (got %q)", field, raw)
	}
	return nil
}
