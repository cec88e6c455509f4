package format

import (
	"encoding/json"
	"io"

	"github.com/sdlcforge/makefwd/internal/model"
)

// JSONFormatter generates JSON output for programmatic consumption.
type JSONFormatter struct {
	config *FormatterConfig
}

// NewJSONFormatter creates a new JSONFormatter with the given configuration.
func NewJSONFormatter(config *FormatterConfig) *JSONFormatter {
	return &JSONFormatter{config: normalizeConfig(config)}
}

type jsonOutput struct {
	Directories []jsonDirectory `json:"directories"`
	Collisions  []jsonCollision `json:"collisions,omitempty"`
}

type jsonDirectory struct {
	ExecPath string   `json:"execPath"`
	FilePath string   `json:"filePath"`
	Targets  []string `json:"targets"`
}

type jsonCollision struct {
	Name        string   `json:"name"`
	Directories []string `json:"directories"`
}

// Render marshals fm to JSON with 2-space indentation.
func (f *JSONFormatter) Render(fm *model.ForwardingModel, w io.Writer) error {
	if fm == nil {
		return errNilModel("json")
	}

	output := jsonOutput{
		Directories: make([]jsonDirectory, 0, len(fm.Directories)),
	}

	for _, dir := range fm.Directories {
		jd := jsonDirectory{
			ExecPath: dir.Makefile.ExecPath,
			FilePath: dir.Makefile.FilePath,
			Targets:  make([]string, len(dir.Targets)),
		}
		for i, tgt := range dir.Targets {
			jd.Targets[i] = tgt.Path
		}
		output.Directories = append(output.Directories, jd)
	}

	for _, c := range fm.Collisions {
		dirs := make([]string, len(c.Directories))
		for i, mf := range c.Directories {
			dirs[i] = mf.ExecPath
		}
		output.Collisions = append(output.Collisions, jsonCollision{Name: c.Name, Directories: dirs})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// ContentType returns the MIME type for JSON format.
func (f *JSONFormatter) ContentType() string {
	return "application/json"
}

// DefaultExtension returns the default file extension for JSON format.
func (f *JSONFormatter) DefaultExtension() string {
	return ".json"
}
