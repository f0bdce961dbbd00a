package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/kalavine/vslider/pkg/slider"
	"github.com/kalavine/vslider/pkg/theme"
)

// Export writes a snapshot of the frame in every format implied by the
// base path: given "out.svg" or "out.png" it writes that one file,
// given a path without a known extension it writes both formats side by
// side. The formats render concurrently.
func Export(base string, f slider.Frame, s *slider.Slider, th theme.Theme) error {
	var targets []string
	switch strings.ToLower(filepath.Ext(base)) {
	case ".svg", ".png":
		targets = []string{base}
	default:
		targets = []string{base + ".svg", base + ".png"}
	}

	var g errgroup.Group
	for _, path := range targets {
		g.Go(func() error {
			return exportOne(path, f, s, th)
		})
	}
	return g.Wait()
}

func exportOne(path string, f slider.Frame, s *slider.Slider, th theme.Theme) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer out.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		err = WriteSVG(out, f, s, th)
	case ".png":
		err = EncodePNG(out, f, s, th)
	default:
		err = fmt.Errorf("render: unsupported format %q", filepath.Ext(path))
	}
	if err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("render: close %s: %w", path, err)
	}
	return nil
}
