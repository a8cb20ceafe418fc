// Package render turns the annotated output of the anonymization service into
// the variant selected by the display toggles.
//
// Two stages exist and always run in the same order:
//  1. originals: drop the bracketed original values
//  2. highlighting: unwrap highlighted replacements to plain text
//
// The order matters for HTML where an original may sit inside a highlighted
// replacement.
package render

import "strings"

// Render returns the variant of result selected by opts. This is the form
// used for saving; it never modifies result.
func Render(result ProcessedResult, opts DisplayOptions) string {
	content := result.Content
	if content == "" {
		return ""
	}
	for _, f := range pipeline(opts) {
		if f.AppliesTo(result.Format) {
			content = f.Apply(content, result.Format)
		}
	}
	return content
}

// RenderForDisplay is Render plus the on-screen line break conversion for the
// text dialect: each newline is followed by a <br> marker.
func RenderForDisplay(result ProcessedResult, opts DisplayOptions) string {
	out := Render(result, opts)
	if result.Format == FormatText {
		out = strings.ReplaceAll(out, "\n", "\n<br>")
	}
	return out
}

// Variant names the combination of toggles, e.g. for metrics labels.
func Variant(opts DisplayOptions) string {
	switch {
	case opts.ShowOriginals && opts.ShowHighlighting:
		return "full"
	case opts.ShowHighlighting:
		return "no_originals"
	case opts.ShowOriginals:
		return "no_highlighting"
	default:
		return "plain"
	}
}

func pipeline(opts DisplayOptions) []Filter {
	var filters []Filter
	if !opts.ShowOriginals {
		filters = append(filters, originalsFilter{})
	}
	if !opts.ShowHighlighting {
		filters = append(filters, highlightingFilter{})
	}
	return filters
}
