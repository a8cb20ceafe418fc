package maskit

import (
	"strings"

	"github.com/ufal/maskit-web/pkg/render"
)

// InputFormat is the `input` parameter of the remote service.
type InputFormat string

const (
	// InputText is running text tokenized by the service.
	InputText InputFormat = "txt"
	// InputPresegmented is text with one sentence per line.
	InputPresegmented InputFormat = "presegmented"
)

// IsValid checks if the input format is accepted by the service.
func (f InputFormat) IsValid() bool {
	return f == InputText || f == InputPresegmented
}

// ProcessRequest is one submission to the process or detect endpoint.
type ProcessRequest struct {
	Text   string        `json:"text"`
	Input  InputFormat   `json:"input,omitempty"`
	Output render.Format `json:"output,omitempty"`

	// Randomize replaces personal data with random values of the same kind.
	Randomize bool `json:"randomize,omitempty"`
	// Classes replaces personal data with the names of their classes.
	Classes bool `json:"classes,omitempty"`
}

// WithDefaults fills the formats the service would assume when omitted.
func (r ProcessRequest) WithDefaults() ProcessRequest {
	if r.Input == "" {
		r.Input = InputText
	}
	if r.Output == "" {
		r.Output = render.FormatText
	}
	return r
}

// Validate checks the request before it is sent.
func (r ProcessRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return &ValidationError{Field: "text", Err: ErrEmptyText}
	}
	if r.Input != "" && !r.Input.IsValid() {
		return &ValidationError{Field: "input", Err: ErrUnsupportedFormat}
	}
	if r.Output != "" && !r.Output.Known() {
		return &ValidationError{Field: "output", Err: ErrUnsupportedFormat}
	}
	if r.Randomize && r.Classes {
		return &ValidationError{Field: "randomize", Err: ErrConflictingOptions}
	}
	return nil
}

// field is a single request parameter. Flags are sent present but empty.
type field struct {
	key   string
	value string
	flag  bool
}

func (r ProcessRequest) fields(withFlags bool) []field {
	fields := []field{
		{key: "text", value: r.Text},
		{key: "input", value: string(r.Input)},
		{key: "output", value: string(r.Output)},
	}
	if withFlags && r.Randomize {
		fields = append(fields, field{key: "randomize", flag: true})
	}
	if withFlags && r.Classes {
		fields = append(fields, field{key: "classes", flag: true})
	}
	return fields
}

// ProcessResponse is the JSON answer of the process and detect endpoints.
type ProcessResponse struct {
	Result string `json:"result"`
	// Stats is an HTML overview of the detected entities, passed through as is.
	Stats string `json:"stats"`

	// Format is the output format that was requested.
	Format render.Format `json:"-"`
}

// ProcessedResult returns the annotated text as a renderer input.
func (r *ProcessResponse) ProcessedResult() render.ProcessedResult {
	return render.ProcessedResult{Content: r.Result, Format: r.Format}
}

// InfoResponse is the JSON answer of the info endpoint.
type InfoResponse struct {
	Version  string `json:"version"`
	Features string `json:"features"`
}
