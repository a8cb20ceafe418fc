// Package maskit is a client for the MasKIT anonymization service and the
// related SouDeC source detection service.
package maskit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/ufal/maskit-web/pkg/config"
	"github.com/ufal/maskit-web/pkg/version"
)

const (
	endpointProcess = "process"
	endpointInfo    = "info"
	endpointDetect  = "detect"

	// maxErrorBody caps how much of an error response is kept.
	maxErrorBody = 64 << 10
)

// Recorder observes remote calls. Implemented by the metrics package.
type Recorder interface {
	ObserveRemoteCall(endpoint, outcome string, elapsed time.Duration)
}

// Options configure a Client.
type Options struct {
	BaseURL     string
	ProcessPath string
	InfoPath    string
	DetectPath  string

	Timeout        time.Duration
	Encoding       config.Encoding
	NormalizeInput bool

	Recorder Recorder
}

// OptionsFromConfig builds client options from the api configuration section.
func OptionsFromConfig(cfg *config.APIConfig) Options {
	return Options{
		BaseURL:        cfg.BaseURL,
		ProcessPath:    cfg.ProcessPath,
		InfoPath:       cfg.InfoPath,
		DetectPath:     cfg.DetectPath,
		Timeout:        cfg.Timeout,
		Encoding:       cfg.Encoding,
		NormalizeInput: cfg.NormalizeInput,
	}
}

// Client calls the remote REST API. It holds no per-request state and is
// safe for concurrent use.
type Client struct {
	httpClient *http.Client
	opts       Options
	logger     *slog.Logger
}

// NewClient creates a client. Zero values in opts fall back to the built-in
// configuration defaults.
func NewClient(opts Options) *Client {
	defaults := config.DefaultAPIConfig()
	if opts.BaseURL == "" {
		opts.BaseURL = defaults.BaseURL
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	if opts.ProcessPath == "" {
		opts.ProcessPath = defaults.ProcessPath
	}
	if opts.InfoPath == "" {
		opts.InfoPath = defaults.InfoPath
	}
	if opts.DetectPath == "" {
		opts.DetectPath = defaults.DetectPath
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaults.Timeout
	}
	if opts.Encoding == "" {
		opts.Encoding = defaults.Encoding
	}

	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		opts:       opts,
		logger:     slog.Default().With("component", "maskit-client", "base_url", opts.BaseURL),
	}
}

// Process submits text for anonymization.
func (c *Client) Process(ctx context.Context, req ProcessRequest) (*ProcessResponse, error) {
	return c.submit(ctx, endpointProcess, c.opts.ProcessPath, req, true)
}

// Detect submits text to the SouDeC source detection endpoint. The
// randomize and classes options do not apply there and are not sent.
func (c *Client) Detect(ctx context.Context, req ProcessRequest) (*ProcessResponse, error) {
	req.Randomize, req.Classes = false, false
	return c.submit(ctx, endpointDetect, c.opts.DetectPath, req, false)
}

// Info asks the service for its version and supported features.
func (c *Client) Info(ctx context.Context) (*InfoResponse, error) {
	var info InfoResponse
	if err := c.post(ctx, endpointInfo, c.opts.InfoPath, []field{{key: "info", flag: true}}, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) submit(ctx context.Context, endpoint, path string, req ProcessRequest, withFlags bool) (*ProcessResponse, error) {
	req = req.WithDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if c.opts.NormalizeInput {
		req.Text = norm.NFC.String(req.Text)
	}

	c.logger.Debug("Submitting text",
		"endpoint", endpoint,
		"input", req.Input,
		"output", req.Output,
		"randomize", req.Randomize,
		"classes", req.Classes,
		"bytes", len(req.Text))

	var resp ProcessResponse
	if err := c.post(ctx, endpoint, path, req.fields(withFlags), &resp); err != nil {
		return nil, err
	}
	resp.Format = req.Output
	return &resp, nil
}

func (c *Client) post(ctx context.Context, endpoint, path string, fields []field, out any) error {
	start := time.Now()
	outcome := "error"
	defer func() {
		if c.opts.Recorder != nil {
			c.opts.Recorder.ObserveRemoteCall(endpoint, outcome, time.Since(start))
		}
	}()

	body, contentType, err := encodeBody(c.opts.Encoding, fields)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.Full())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call %s endpoint: %w: %w", endpoint, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		outcome = "http_error"
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(data)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		outcome = "decode_error"
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}

	outcome = "ok"
	return nil
}

func encodeBody(encoding config.Encoding, fields []field) (io.Reader, string, error) {
	switch encoding {
	case config.EncodingJSON:
		obj := make(map[string]any, len(fields))
		for _, f := range fields {
			if f.flag {
				obj[f.key] = nil
			} else {
				obj[f.key] = f.value
			}
		}
		data, err := json.Marshal(obj)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json; charset=UTF-8", nil

	case config.EncodingMultipart:
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		for _, f := range fields {
			if err := w.WriteField(f.key, f.value); err != nil {
				return nil, "", err
			}
		}
		if err := w.Close(); err != nil {
			return nil, "", err
		}
		return &buf, w.FormDataContentType(), nil

	default:
		values := url.Values{}
		for _, f := range fields {
			values.Add(f.key, f.value)
		}
		return strings.NewReader(values.Encode()), "application/x-www-form-urlencoded; charset=UTF-8", nil
	}
}
