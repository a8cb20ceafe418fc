package maskit

import (
	"context"
	"log/slog"
	"time"
)

// Unknown is reported for version and features when the service is unreachable.
const Unknown = "unknown"

// ServerInfo is the status line shown next to the input form.
type ServerInfo struct {
	Version  string `json:"version"`
	Features string `json:"features"`
	Online   bool   `json:"online"`
}

// Service wraps the client with the caching and fail-open policies the web
// front end needs.
type Service struct {
	client *Client
	info   *Cache[InfoResponse]
	logger *slog.Logger
}

// NewService creates a Service. The info answer is reused for infoTTL.
func NewService(client *Client, infoTTL time.Duration) *Service {
	if infoTTL <= 0 {
		infoTTL = time.Minute
	}
	return &Service{
		client: client,
		info:   NewCache[InfoResponse](infoTTL),
		logger: slog.Default().With("component", "maskit-service"),
	}
}

// Process submits text for anonymization. Errors are returned to the caller;
// there is no retry.
func (s *Service) Process(ctx context.Context, req ProcessRequest) (*ProcessResponse, error) {
	return s.client.Process(ctx, req)
}

// Detect submits text for source detection.
func (s *Service) Detect(ctx context.Context, req ProcessRequest) (*ProcessResponse, error) {
	return s.client.Detect(ctx, req)
}

// ServerInfo returns the version and feature list of the remote service.
// A failed lookup is not an error: the service is reported offline with
// unknown version, and nothing is cached so the next call retries.
func (s *Service) ServerInfo(ctx context.Context) ServerInfo {
	if cached, ok := s.info.Get(s.client.opts.BaseURL); ok {
		return ServerInfo{Version: cached.Version, Features: cached.Features, Online: true}
	}

	info, err := s.client.Info(ctx)
	if err != nil {
		s.logger.Warn("Failed to fetch server info", "error", err)
		return ServerInfo{Version: Unknown, Features: Unknown, Online: false}
	}

	s.info.Set(s.client.opts.BaseURL, *info)
	return ServerInfo{Version: info.Version, Features: info.Features, Online: true}
}
