package config

import "time"

// DefaultBaseURL is the public MasKIT deployment.
const DefaultBaseURL = "https://quest.ms.mff.cuni.cz"

// ServerConfig controls the HTTP server and the in-memory sessions it keeps.
type ServerConfig struct {
	// HTTPPort is the port the web server listens on.
	HTTPPort string `yaml:"http_port"`

	// SessionTTL is how long an idle session is kept before it is pruned.
	SessionTTL time.Duration `yaml:"session_ttl"`

	// CleanupInterval is how often idle sessions are pruned.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`

	// SubmitTimeout bounds a single submission to the remote service,
	// including the time the remote side needs to process the text.
	SubmitTimeout time.Duration `yaml:"submit_timeout"`
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		HTTPPort:        "8080",
		SessionTTL:      2 * time.Hour,
		CleanupInterval: 10 * time.Minute,
		SubmitTimeout:   5 * time.Minute,
	}
}

// APIConfig describes how to reach the remote service.
type APIConfig struct {
	BaseURL     string `yaml:"base_url"`
	ProcessPath string `yaml:"process_path"`
	InfoPath    string `yaml:"info_path"`
	DetectPath  string `yaml:"detect_path"`

	// Timeout is the HTTP client timeout for a single request.
	Timeout time.Duration `yaml:"timeout"`

	// Encoding selects how request fields are sent.
	Encoding Encoding `yaml:"encoding"`

	// NormalizeInput applies Unicode NFC to submitted text.
	NormalizeInput bool `yaml:"normalize_input"`

	// InfoCacheTTL is how long the version/features answer is reused.
	InfoCacheTTL time.Duration `yaml:"info_cache_ttl"`
}

// DefaultAPIConfig returns the built-in remote service defaults.
func DefaultAPIConfig() *APIConfig {
	return &APIConfig{
		BaseURL:      DefaultBaseURL,
		ProcessPath:  "/maskit/api/process",
		InfoPath:     "/maskit/api/info",
		DetectPath:   "/soudec/api/detect",
		Timeout:      5 * time.Minute,
		Encoding:     EncodingForm,
		InfoCacheTTL: 5 * time.Minute,
	}
}

// DisplayYAMLConfig holds the initial toggle state. Pointers distinguish an
// explicit false from an omitted key.
type DisplayYAMLConfig struct {
	ShowOriginals    *bool `yaml:"show_originals,omitempty"`
	ShowHighlighting *bool `yaml:"show_highlighting,omitempty"`
}
