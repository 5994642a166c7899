package readers

import (
	"strings"

	"github.com/ccid-tools/readerlist/pkg/errors"
)

// readerFieldCount is the number of colon separated fields of a reader line.
// The name is the last field and may itself contain colons.
const readerFieldCount = 3

// ClassifyLine determines what kind of line this is. The line must already
// have its line terminator removed.
func ClassifyLine(line string, opts Options) LineKind {
	opts = opts.withDefaults()

	switch {
	case strings.TrimSpace(line) == "":
		return LineBlank
	case strings.HasPrefix(line, opts.SectionMarker):
		return LineSectionHeader
	case strings.HasPrefix(line, opts.CommentPrefix):
		return LineComment
	default:
		return LineReader
	}
}

// ParseSectionHeader extracts the section title from a header line
func ParseSectionHeader(line string, opts Options) (string, error) {
	opts = opts.withDefaults()

	title := strings.TrimSpace(strings.TrimPrefix(line, opts.SectionMarker))
	if title == "" {
		return "", errors.New(errors.ErrMalformedSectionHeader,
			"failed to extract section title from the CCID supported readers config").
			WithDetail("text", line)
	}
	return title, nil
}

// ParseEntry parses a "vendor_id:product_id:name" reader description
func ParseEntry(line string) (Entry, error) {
	parts := strings.SplitN(line, ":", readerFieldCount)
	if len(parts) != readerFieldCount {
		return Entry{}, errors.Newf(errors.ErrMalformedReaderLine,
			"failed to parse the reader description from the CCID supported readers config: %q", line).
			WithDetail("text", line)
	}

	return Entry{
		VendorID:  parts[0],
		ProductID: parts[1],
		Name:      parts[2],
	}, nil
}
