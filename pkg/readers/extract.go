package readers

import (
	"bufio"
	"io"
	"strings"

	"github.com/ccid-tools/readerlist/pkg/errors"
	"github.com/ccid-tools/readerlist/pkg/logging"
)

// Extract reads a CCID supported readers config and returns the accepted and
// rejected reader names in first-seen order.
func Extract(r io.Reader, opts Options) (*Result, error) {
	logger := logging.GetLogger("readers")
	opts = opts.withDefaults()

	accepted := make(map[string]struct{}, len(opts.AcceptedSections))
	for _, section := range opts.AcceptedSections {
		accepted[section] = struct{}{}
	}

	result := newResult()
	currentSection := ""
	lineNo := 0

	br := bufio.NewReader(r)
	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, errors.Wrap(readErr, errors.ErrFileAccess,
				"failed to read the CCID supported readers config")
		}
		if raw == "" && readErr == io.EOF {
			break
		}
		lineNo++
		line := strings.TrimRight(raw, "\r\n")

		switch ClassifyLine(line, opts) {
		case LineBlank, LineComment:
		case LineSectionHeader:
			title, err := ParseSectionHeader(line, opts)
			if err != nil {
				return nil, withLine(err, lineNo)
			}
			currentSection = title
			logger.Trace().Int("line", lineNo).Str("section", title).Msg("Entering section")
		case LineReader:
			entry, err := ParseEntry(line)
			if err != nil {
				return nil, withLine(err, lineNo)
			}
			if currentSection == "" {
				return nil, errors.New(errors.ErrReaderBeforeSection,
					"unexpected reader definition met in the CCID supported readers config before any section title").
					WithDetail("line", lineNo).
					WithDetail("text", line)
			}
			entry.Section = currentSection
			entry.Line = lineNo

			_, isAccepted := accepted[entry.Section]
			if !result.add(entry.Name, isAccepted) {
				logger.Trace().Int("line", lineNo).Str("name", entry.Name).Msg("Skipping duplicate reader")
			}
		}

		if readErr == io.EOF {
			break
		}
	}

	if len(result.Accepted) == 0 {
		return nil, errors.New(errors.ErrNoSupportedReaders,
			"no supported USB devices were extracted from the CCID supported readers config").
			WithDetail("ignored", len(result.Rejected))
	}

	logger.Info().
		Int("supported", len(result.Accepted)).
		Int("ignored", len(result.Rejected)).
		Msg("Extracted supported USB devices from the CCID supported readers config")

	return result, nil
}

// ExtractString runs Extract over text and renders the accepted names
func ExtractString(text string, opts Options) (string, error) {
	result, err := Extract(strings.NewReader(text), opts)
	if err != nil {
		return "", err
	}
	return result.Render(), nil
}

func withLine(err error, lineNo int) error {
	if codedErr, ok := err.(*errors.Error); ok {
		return codedErr.WithDetail("line", lineNo)
	}
	return err
}
