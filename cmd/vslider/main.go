package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/kalavine/vslider/pkg/elastic"
	"github.com/kalavine/vslider/pkg/logging"
	"github.com/kalavine/vslider/pkg/ratio"
	"github.com/kalavine/vslider/pkg/render"
	"github.com/kalavine/vslider/pkg/slider"
	"github.com/kalavine/vslider/pkg/theme"
	"github.com/kalavine/vslider/pkg/track"
	"github.com/kalavine/vslider/pkg/ui"
	"github.com/kalavine/vslider/pkg/watcher"
)

func main() {
	help := flag.Bool("help", false, "Show help")
	version := flag.Bool("version", false, "Show version")
	minVal := flag.Float64("min", 0, "Range lower bound")
	maxVal := flag.Float64("max", 100, "Range upper bound")
	step := flag.Float64("step", 0, "Step size (0 = continuous)")
	themePath := flag.String("theme", "", "Theme YAML file")
	watch := flag.Bool("watch", false, "Reload the theme file on change")
	export := flag.String("export", "", "Render a snapshot to this path (.svg/.png) and exit")
	exportValue := flag.Float64("export-value", 50, "Value to render when exporting")
	setup := flag.Bool("setup", false, "Interactive configuration before starting")
	flag.Parse()

	if *help {
		fmt.Println("Usage: vslider [options]")
		fmt.Println("\nA vertical slider control demo.")
		flag.PrintDefaults()
		os.Exit(0)
	}
	if *version {
		fmt.Println("vslider version 0.1.0")
		os.Exit(0)
	}

	logCloser, err := logging.Setup(logging.Config{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	cfg := demoConfig{
		rng:  ratio.Range{Lower: *minVal, Upper: *maxVal},
		step: *step,
		props: elastic.Properties{
			OffsetSize:        6,
			CompressionFactor: 0.2,
			ExpansionFactor:   0.3,
		},
	}
	if cfg.rng.Upper <= cfg.rng.Lower {
		fmt.Fprintln(os.Stderr, "Error: -max must be greater than -min")
		os.Exit(1)
	}

	th := theme.Default()
	if *themePath != "" {
		th, err = theme.Load(*themePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading theme: %v\n", err)
			os.Exit(1)
		}
	}

	if *setup {
		if err := runSetup(&cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Setup aborted: %v\n", err)
			os.Exit(1)
		}
	}

	if *export != "" {
		if !cfg.rng.Contains(*exportValue) {
			fmt.Fprintln(os.Stderr, "Error: -export-value must lie within -min..-max")
			os.Exit(1)
		}
		if err := exportSnapshot(*export, cfg, *exportValue, th); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *export)
		os.Exit(0)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "vslider needs a terminal; use -export for headless rendering.")
		os.Exit(1)
	}

	m := ui.NewAppModel(cfg.rng, cfg.step, cfg.props, th)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if *watch && *themePath != "" {
		w, err := watcher.WatchTheme(*themePath, 0, func(th theme.Theme) {
			p.Send(ui.ThemeMsg{Theme: th})
		})
		if err != nil {
			slog.Warn("theme watch unavailable", "err", err)
		} else {
			defer w.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running vslider: %v\n", err)
		os.Exit(1)
	}
}

// exportSnapshot renders one frame headlessly at the given value.
func exportSnapshot(path string, cfg demoConfig, value float64, th theme.Theme) error {
	s := slider.New(slider.Config{
		Range:        cfg.rng,
		Step:         cfg.step,
		Thickness:    60,
		ThumbLength:  70,
		CornerRadius: 30,
		Elastic:      cfg.props,
		Behavior:     track.FixedBehavior(300),
	})
	s.SetValue(value)
	return render.Export(path, s.Frame(), s, th)
}
