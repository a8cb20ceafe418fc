package config

import "github.com/ufal/maskit-web/pkg/render"

// Config is the umbrella configuration object returned by Initialize.
type Config struct {
	configDir string

	// HTTP server and session lifecycle
	Server *ServerConfig

	// Remote MasKIT / SouDeC service
	API *APIConfig

	// Toggle state of a freshly created session
	Display render.DisplayOptions
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Default returns the built-in configuration, used when no maskit.yaml exists.
func Default() *Config {
	return &Config{
		Server:  DefaultServerConfig(),
		API:     DefaultAPIConfig(),
		Display: render.DefaultDisplayOptions(),
	}
}
