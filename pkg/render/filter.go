package render

import "regexp"

const (
	// ClassOriginal marks the bracketed original value in the HTML dialect.
	ClassOriginal = "orig-brackets"
	// ClassReplacement marks the inserted replacement text in the HTML dialect.
	ClassReplacement = "replacement-text"
)

// originalTextPattern matches an original value in the text dialect.
// Originals containing a literal "]" are cut short at that bracket.
var originalTextPattern = regexp.MustCompile(`_\[[^\]]*\]`)

// Filter is a single stage of the output pipeline.
type Filter interface {
	// Name identifies the stage in logs and metrics.
	Name() string

	// AppliesTo reports whether the stage has anything to do for format.
	AppliesTo(format Format) bool

	// Apply returns the filtered content. It must never fail: on malformed
	// input the content is returned unchanged.
	Apply(content string, format Format) string
}

// originalsFilter removes original values.
type originalsFilter struct{}

func (originalsFilter) Name() string { return "originals" }

func (originalsFilter) AppliesTo(format Format) bool { return format.Recognized() }

func (originalsFilter) Apply(content string, format Format) string {
	switch format {
	case FormatText:
		return originalTextPattern.ReplaceAllString(content, "")
	case FormatHTML:
		return editMarkup(content, func(f *Fragment) { f.RemoveByClass(ClassOriginal) })
	}
	return content
}

// highlightingFilter turns highlighted replacements into plain text.
// The text dialect carries no highlighting.
type highlightingFilter struct{}

func (highlightingFilter) Name() string { return "highlighting" }

func (highlightingFilter) AppliesTo(format Format) bool { return format == FormatHTML }

func (highlightingFilter) Apply(content string, format Format) string {
	if format != FormatHTML {
		return content
	}
	return editMarkup(content, func(f *Fragment) { f.UnwrapByClass(ClassReplacement) })
}

// editMarkup parses content, applies edit and serializes the result.
// Parse or serialization failures leave content unchanged.
func editMarkup(content string, edit func(*Fragment)) string {
	frag, err := ParseFragment(content)
	if err != nil {
		return content
	}
	edit(frag)
	out, err := frag.String()
	if err != nil {
		return content
	}
	return out
}
