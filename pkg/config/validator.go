package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ConfigValidator validates configuration with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs validation, stopping at the first error
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateServer(); err != nil {
		return fmt.Errorf("server validation failed: %w", err)
	}

	if err := v.validateAPI(); err != nil {
		return fmt.Errorf("api validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateServer() error {
	s := v.cfg.Server
	if s == nil {
		return NewValidationError("server", "", ErrMissingRequiredField)
	}

	port, err := strconv.Atoi(s.HTTPPort)
	if err != nil || port < 1 || port > 65535 {
		return NewValidationError("server", "http_port", fmt.Errorf("%w: %q is not a valid port", ErrInvalidValue, s.HTTPPort))
	}
	if s.SessionTTL <= 0 {
		return NewValidationError("server", "session_ttl", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if s.CleanupInterval <= 0 {
		return NewValidationError("server", "cleanup_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if s.SubmitTimeout <= 0 {
		return NewValidationError("server", "submit_timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}

	return nil
}

func (v *ConfigValidator) validateAPI() error {
	a := v.cfg.API
	if a == nil {
		return NewValidationError("api", "", ErrMissingRequiredField)
	}

	if a.BaseURL == "" {
		return NewValidationError("api", "base_url", ErrMissingRequiredField)
	}
	u, err := url.Parse(a.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return NewValidationError("api", "base_url", fmt.Errorf("%w: %q must be an absolute http(s) URL", ErrInvalidValue, a.BaseURL))
	}

	for field, path := range map[string]string{
		"process_path": a.ProcessPath,
		"info_path":    a.InfoPath,
		"detect_path":  a.DetectPath,
	} {
		if !strings.HasPrefix(path, "/") {
			return NewValidationError("api", field, fmt.Errorf("%w: %q must start with /", ErrInvalidValue, path))
		}
	}

	if !a.Encoding.IsValid() {
		return NewValidationError("api", "encoding", fmt.Errorf("%w: %q", ErrInvalidValue, a.Encoding))
	}
	if a.Timeout <= 0 {
		return NewValidationError("api", "timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if a.InfoCacheTTL <= 0 {
		return NewValidationError("api", "info_cache_ttl", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}

	return nil
}
