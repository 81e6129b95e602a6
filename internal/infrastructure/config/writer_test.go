package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionHeaders(content string) []string {
	var sections []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	return sections
}

func TestWriteConfigOrdered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"[database]",
		"[gamepad]",
		"[hint]",
		"[keyboard]",
		"[logging]",
		"[navigation]",
		"[pointer]",
		"[scroll]",
	}, sectionHeaders(string(content)))
	assert.Contains(t, string(content), "nav_delay_ms = 150")
	assert.Contains(t, string(content), "duration_ms = 6000")
}

func TestWriteConfigOrdered_Nil(t *testing.T) {
	assert.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "x.toml")))
}

func TestSortTOMLSections(t *testing.T) {
	input := `[scroll]
top_margin = 120

[hint]
show_once = true

[scroll.extra]
x = 1

[gamepad]
deadzone = 0.5
`

	result := sortTOMLSections(input)

	assert.Equal(t, []string{"[gamepad]", "[hint]", "[scroll]", "[scroll.extra]"}, sectionHeaders(result))
	assert.True(t, strings.HasSuffix(result, "\n"))
	assert.False(t, strings.HasSuffix(result, "\n\n"))
}
