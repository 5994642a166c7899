package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ccid-tools/readerlist/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSummary(t *testing.T) {
	summary := ui.Summary{
		Source:    "supported_readers.txt",
		Target:    "readers.txt",
		Supported: 5,
		Ignored:   2,
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ui.RenderSummary(&buf, summary, ui.FormatText))
		assert.Equal(t,
			"Extracted 5 supported USB devices from the CCID supported readers config, and ignored 2 items. Wrote readers.txt.\n",
			buf.String())
	})

	t.Run("terminal", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ui.RenderSummary(&buf, summary, ui.FormatTerminal))
		assert.Contains(t, buf.String(), "Extracted 5 supported USB devices")
		assert.Contains(t, buf.String(), "readers.txt")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ui.RenderSummary(&buf, summary, ui.FormatJSON))

		var decoded ui.Summary
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, summary, decoded)
	})
}
