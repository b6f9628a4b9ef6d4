/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package provision

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTemplateSource_ReadsFileURI(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stack.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Resources: {}\n"), 0o644))

	source := &FileTemplateSource{}
	content, err := source.Read("file://" + path)

	require.NoError(t, err)
	assert.Equal(t, "Resources: {}\n", content)
}

func TestFileTemplateSource_ReportsMissingFile(t *testing.T) {
	source := &FileTemplateSource{}
	_, err := source.Read("file:///never/written.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "/never/written.yaml")
}

func TestSprigTemplateRenderer_RendersResolvedValues(t *testing.T) {
	renderer := NewSprigTemplateRenderer()

	out, err := renderer.Render(
		`InstanceType: {{ index . "instance-type" | upper }}`,
		map[string]interface{}{"instance-type": "t2.micro"},
	)

	require.NoError(t, err)
	assert.Equal(t, "InstanceType: T2.MICRO", out)
}

func TestSprigTemplateRenderer_RejectsInvalidSyntax(t *testing.T) {
	renderer := NewSprigTemplateRenderer()

	_, err := renderer.Render("{{ unterminated", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse template")
}

func TestSprigTemplateRenderer_FailsOnMissingKeys(t *testing.T) {
	renderer := NewSprigTemplateRenderer()

	_, err := renderer.Render("{{ .absent }}", map[string]interface{}{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute template")
}
