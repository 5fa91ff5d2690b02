package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	assert.Contains(t, content, "# verbosity = 0")
	assert.Contains(t, content, `# color = "auto"`)
	assert.Contains(t, content, "[styles]")

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "[styles]" {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "#"), "line not commented: %q", line)
	}
}

func TestCommentOutConfigValues(t *testing.T) {
	in := "# header\n\nkey = 1\n[section]\n  nested = \"x\""
	want := "# header\n\n# key = 1\n[section]\n#   nested = \"x\""
	assert.Equal(t, want, commentOutConfigValues(in))
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(&Config{
		Verbosity: 1,
		Color:     "never",
		Spinner:   "dots",
		Styles:    map[string]string{"success": "bold green"},
	})
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "verbosity = 1")
	assert.Contains(t, out, "color = 'never'")
	assert.Contains(t, out, "[styles]")
	assert.Contains(t, out, "success = 'bold green'")
}
