package palette_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdresser/devtools/internal/palette"
)

func TestWriteHTML(t *testing.T) {
	colors := []palette.Dominant{
		{Color: palette.Color{R: 255}, Count: 100},
		{Color: palette.Color{G: 128}, Count: 50},
	}

	path := filepath.Join(t.TempDir(), "palette.html")
	require.NoError(t, palette.WriteHTML(colors, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)

	assert.Equal(t, 2, strings.Count(html, `class="color-card"`))

	// Each swatch embeds the exact hex code it was computed from.
	assert.Contains(t, html, "background-color: #ff0000;")
	assert.Contains(t, html, "background-color: #008000;")
	assert.Contains(t, html, ">#ff0000<")
	assert.Contains(t, html, "Red #1")
	assert.Contains(t, html, "Green #2")
	assert.Contains(t, html, "RGB(255, 0, 0)")
	assert.Contains(t, html, "copyToClipboard")
}

func TestWriteHTMLEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.html")
	require.NoError(t, palette.WriteHTML(nil, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "color-card")
}

func TestWriteHTMLBadPath(t *testing.T) {
	err := palette.WriteHTML(nil, filepath.Join(t.TempDir(), "no", "dir.html"))
	assert.Error(t, err)
}
