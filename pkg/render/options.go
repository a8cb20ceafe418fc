package render

// DisplayOptions are the two independent output toggles.
type DisplayOptions struct {
	ShowOriginals    bool `json:"show_originals" yaml:"show_originals"`
	ShowHighlighting bool `json:"show_highlighting" yaml:"show_highlighting"`
}

// DefaultDisplayOptions returns the state of a freshly loaded page: originals
// and highlighting both shown.
func DefaultDisplayOptions() DisplayOptions {
	return DisplayOptions{ShowOriginals: true, ShowHighlighting: true}
}

// ProcessedResult is one response of the remote service. It is never
// modified after creation; every variant is re-derived from it.
type ProcessedResult struct {
	Content string `json:"content"`
	Format  Format `json:"format"`
}
