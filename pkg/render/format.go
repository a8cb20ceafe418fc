package render

import "strings"

// Format is the markup dialect of a processed result, as requested from the
// remote service via its `output` parameter.
type Format string

const (
	// FormatText is plain text where replaced values carry their original as
	// REPLACEMENT_[ORIGINAL].
	FormatText Format = "txt"
	// FormatHTML is an HTML fragment with colour-marked replacements.
	FormatHTML Format = "html"
	// FormatCoNLLU is accepted by the remote service but carries no markup the
	// renderer understands; it is passed through untouched.
	FormatCoNLLU Format = "conllu"
)

// ParseFormat normalizes a user supplied format name.
func ParseFormat(s string) Format {
	return Format(strings.ToLower(strings.TrimSpace(s)))
}

// Recognized reports whether the renderer knows how to filter this dialect.
func (f Format) Recognized() bool {
	return f == FormatText || f == FormatHTML
}

// Known reports whether the remote service accepts f as an output format.
func (f Format) Known() bool {
	return f.Recognized() || f == FormatCoNLLU
}

// ContentType returns the MIME type used when the result is saved.
func (f Format) ContentType() string {
	if f == FormatHTML {
		return "text/html; charset=utf-8"
	}
	return "text/plain; charset=utf-8"
}

// FileName returns base with the format as its extension.
func (f Format) FileName(base string) string {
	return base + "." + string(f)
}
