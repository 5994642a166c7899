package readers

import (
	"slices"
	"strings"
)

const (
	// DefaultSectionMarker prefixes the lines that open a new section
	DefaultSectionMarker = "# section:"

	// DefaultCommentPrefix prefixes comment lines
	DefaultCommentPrefix = "#"

	// SectionSupported lists readers known to work
	SectionSupported = "supported"

	// SectionShouldWork lists readers expected to work but not tested
	SectionShouldWork = "shouldwork"
)

// LineKind classifies a single config line
type LineKind int

const (
	LineBlank LineKind = iota
	LineSectionHeader
	LineComment
	LineReader
)

// String returns the string representation of the line kind
func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineSectionHeader:
		return "section-header"
	case LineComment:
		return "comment"
	case LineReader:
		return "reader"
	default:
		return "unknown"
	}
}

// Options controls how a config is interpreted
type Options struct {
	SectionMarker    string
	CommentPrefix    string
	AcceptedSections []string
}

// DefaultOptions returns the options matching the upstream CCID config format
func DefaultOptions() Options {
	return Options{
		SectionMarker:    DefaultSectionMarker,
		CommentPrefix:    DefaultCommentPrefix,
		AcceptedSections: []string{SectionSupported, SectionShouldWork},
	}
}

// withDefaults fills unset fields from DefaultOptions
func (o Options) withDefaults() Options {
	defaults := DefaultOptions()
	if o.SectionMarker == "" {
		o.SectionMarker = defaults.SectionMarker
	}
	if o.CommentPrefix == "" {
		o.CommentPrefix = defaults.CommentPrefix
	}
	if len(o.AcceptedSections) == 0 {
		o.AcceptedSections = defaults.AcceptedSections
	}
	return o
}

// Entry is a parsed reader description line
type Entry struct {
	VendorID  string
	ProductID string
	Name      string

	// Section and Line are filled in by Extract
	Section string
	Line    int
}

// Result holds the outcome of an extraction. Both slices keep the order in
// which names were first seen.
type Result struct {
	Accepted []string
	Rejected []string

	seen map[string]struct{}
}

func newResult() *Result {
	return &Result{seen: make(map[string]struct{})}
}

// add records name under the accepted or rejected list unless it was seen
// before. It reports whether the name was new.
func (r *Result) add(name string, accepted bool) bool {
	if _, ok := r.seen[name]; ok {
		return false
	}
	r.seen[name] = struct{}{}
	if accepted {
		r.Accepted = append(r.Accepted, name)
	} else {
		r.Rejected = append(r.Rejected, name)
	}
	return true
}

// Sorted returns a sorted copy of the accepted names
func (r *Result) Sorted() []string {
	sorted := slices.Clone(r.Accepted)
	slices.Sort(sorted)
	return sorted
}

// Render returns the sorted accepted names joined by newlines, without a
// trailing newline.
func (r *Result) Render() string {
	return strings.Join(r.Sorted(), "\n")
}
