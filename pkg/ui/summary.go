package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ccid-tools/readerlist/pkg/ui/output/styles"
)

// Summary describes a finished generation run
type Summary struct {
	Source    string `json:"source"`
	Target    string `json:"target"`
	Supported int    `json:"supported"`
	Ignored   int    `json:"ignored"`
}

// Message returns the one line human readable summary
func (s Summary) Message() string {
	return fmt.Sprintf("Extracted %d supported USB devices from the CCID supported readers config, and ignored %d items.",
		s.Supported, s.Ignored)
}

// RenderSummary writes the summary to w in the given format. FormatAuto must
// be resolved by the caller; it renders as text.
func RenderSummary(w io.Writer, s Summary, format Format) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(s)
	case FormatTerminal:
		_, err := fmt.Fprintf(w, "%s %s\n",
			styles.GetStyle("Success").Render("✓"),
			s.Message()+" "+styles.GetStyle("FilePath").Render(s.Target))
		return err
	default:
		_, err := fmt.Fprintf(w, "%s Wrote %s.\n", s.Message(), s.Target)
		return err
	}
}
