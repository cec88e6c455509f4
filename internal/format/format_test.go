package format

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdlcforge/makefwd/internal/model"
	"github.com/sdlcforge/makefwd/internal/target"
)

func sampleModel() *model.ForwardingModel {
	return &model.ForwardingModel{
		Directories: []model.Directory{
			{
				Makefile: target.Makefile{ExecPath: "/proj/service-a"},
				Targets:  []target.Target{{Path: "build"}, {Path: "test"}},
			},
		},
		Collisions: []model.Collision{
			{
				Name: "build",
				Directories: []target.Makefile{
					{ExecPath: "/proj/service-a"},
					{ExecPath: "/proj/service-b"},
				},
			},
		},
	}
}

func TestNewFormatterDispatchesOnName(t *testing.T) {
	for _, name := range []string{"text", "txt", "", "json", "markdown", "md"} {
		f, err := NewFormatter(name, nil)
		require.NoError(t, err, name)
		assert.NotNil(t, f)
	}
}

func TestNewFormatterUnknownNameErrors(t *testing.T) {
	_, err := NewFormatter("yaml", nil)
	assert.Error(t, err)
}

func TestTextFormatterRendersDirectoriesAndCollisions(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(nil)
	require.NoError(t, f.Render(sampleModel(), &buf))

	out := buf.String()
	assert.Contains(t, out, "/proj/service-a:")
	assert.Contains(t, out, "- build")
	assert.Contains(t, out, "Collisions:")
	assert.Contains(t, out, "build: /proj/service-a, /proj/service-b")
}

func TestTextFormatterNilModelErrors(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(nil)
	assert.Error(t, f.Render(nil, &buf))
}

func TestTextFormatterColorUsesEscapeCodes(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(&FormatterConfig{UseColor: true})
	require.NoError(t, f.Render(sampleModel(), &buf))
	assert.Contains(t, buf.String(), "\033[")
}

func TestJSONFormatterRendersValidStructure(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(nil)
	require.NoError(t, f.Render(sampleModel(), &buf))

	out := buf.String()
	assert.Contains(t, out, `"execPath": "/proj/service-a"`)
	assert.Contains(t, out, `"targets"`)
	assert.Contains(t, out, `"collisions"`)
}

func TestMarkdownFormatterRendersHeadingsAndTable(t *testing.T) {
	var buf bytes.Buffer
	f := NewMarkdownFormatter(nil)
	require.NoError(t, f.Render(sampleModel(), &buf))

	out := buf.String()
	assert.Contains(t, out, "## /proj/service-a")
	assert.Contains(t, out, "`build`")
	assert.Contains(t, out, "| Target | Directories |")
}

func TestFormatMetadataContentTypesAndExtensions(t *testing.T) {
	text := NewTextFormatter(nil)
	assert.Equal(t, "text/plain", text.ContentType())
	assert.Equal(t, ".txt", text.DefaultExtension())

	jsonF := NewJSONFormatter(nil)
	assert.Equal(t, "application/json", jsonF.ContentType())
	assert.Equal(t, ".json", jsonF.DefaultExtension())

	md := NewMarkdownFormatter(nil)
	assert.Equal(t, "text/markdown", md.ContentType())
	assert.Equal(t, ".md", md.DefaultExtension())
}
