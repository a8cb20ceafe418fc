package api

import "github.com/ufal/maskit-web/pkg/render"

// RenderRequest is the body of POST /api/render. Unset toggles fall back to
// the configured display defaults.
type RenderRequest struct {
	Content          string `json:"content"`
	Format           string `json:"format"`
	ShowOriginals    *bool  `json:"show_originals,omitempty"`
	ShowHighlighting *bool  `json:"show_highlighting,omitempty"`
	Display          bool   `json:"display,omitempty"`
}

// SubmitRequest is the body of POST /api/sessions/:id/submit.
type SubmitRequest struct {
	Text      string `json:"text"`
	Input     string `json:"input,omitempty"`
	Output    string `json:"output,omitempty"`
	Randomize bool   `json:"randomize,omitempty"`
	Classes   bool   `json:"classes,omitempty"`
	// Detect routes the text to the source detection service instead.
	Detect bool `json:"detect,omitempty"`
}

// OptionsRequest is the body of PUT /api/sessions/:id/options. Unset
// toggles keep their current value.
type OptionsRequest struct {
	ShowOriginals    *bool `json:"show_originals,omitempty"`
	ShowHighlighting *bool `json:"show_highlighting,omitempty"`
}

func applyToggles(opts render.DisplayOptions, originals, highlighting *bool) render.DisplayOptions {
	if originals != nil {
		opts.ShowOriginals = *originals
	}
	if highlighting != nil {
		opts.ShowHighlighting = *highlighting
	}
	return opts
}
