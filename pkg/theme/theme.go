// Package theme holds the slider's appearance configuration as an
// explicit struct, loadable from a YAML file. The core never reads it;
// only rendering collaborators do.
package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme names the colors and stroke parameters of one slider skin.
// Colors are hex strings understood by the rendering backends.
type Theme struct {
	Name string `yaml:"name"`

	TrackColor    string `yaml:"track_color"`
	ProgressColor string `yaml:"progress_color"`
	StrokeColor   string `yaml:"stroke_color"`
	ThumbColor    string `yaml:"thumb_color"`
	LabelColor    string `yaml:"label_color"`

	StrokeWidth float64 `yaml:"stroke_width"`
	Padding     float64 `yaml:"padding"`
}

// Default is a dark palette in the Dracula family.
func Default() Theme {
	return Theme{
		Name:          "default",
		TrackColor:    "#44475A",
		ProgressColor: "#BD93F9",
		StrokeColor:   "#6272A4",
		ThumbColor:    "#F8F8F2",
		LabelColor:    "#F8F8F2",
		StrokeWidth:   2,
		Padding:       24,
	}
}

// Load reads a theme file, filling unset fields from the default.
func Load(path string) (Theme, error) {
	th := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return th, fmt.Errorf("theme: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &th); err != nil {
		return th, fmt.Errorf("theme: parse %s: %w", path, err)
	}
	if th.StrokeWidth <= 0 {
		th.StrokeWidth = Default().StrokeWidth
	}
	if th.Padding < 0 {
		th.Padding = 0
	}
	return th, nil
}

// Save writes the theme to a YAML file.
func Save(path string, th Theme) error {
	data, err := yaml.Marshal(th)
	if err != nil {
		return fmt.Errorf("theme: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("theme: write %s: %w", path, err)
	}
	return nil
}
