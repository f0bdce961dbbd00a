package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/kalavine/vslider/pkg/elastic"
	"github.com/kalavine/vslider/pkg/ratio"
)

// demoConfig is what the flags and the setup form both feed.
type demoConfig struct {
	rng   ratio.Range
	step  float64
	props elastic.Properties
}

// runSetup walks the user through the demo configuration in place of
// flags.
func runSetup(cfg *demoConfig) error {
	lower := strconv.FormatFloat(cfg.rng.Lower, 'g', -1, 64)
	upper := strconv.FormatFloat(cfg.rng.Upper, 'g', -1, 64)
	step := strconv.FormatFloat(cfg.step, 'g', -1, 64)
	overdrag := true

	floatField := func(title string, value *string) *huh.Input {
		return huh.NewInput().
			Title(title).
			Value(value).
			Validate(func(s string) error {
				_, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return fmt.Errorf("not a number: %q", s)
				}
				return nil
			})
	}

	form := huh.NewForm(
		huh.NewGroup(
			floatField("Range lower bound", &lower),
			floatField("Range upper bound", &upper),
			floatField("Step (0 = continuous)", &step),
			huh.NewConfirm().
				Title("Elastic overdrag feedback?").
				Value(&overdrag),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	lo, _ := strconv.ParseFloat(lower, 64)
	hi, _ := strconv.ParseFloat(upper, 64)
	st, _ := strconv.ParseFloat(step, 64)
	if hi <= lo {
		return fmt.Errorf("upper bound %g must be greater than lower bound %g", hi, lo)
	}
	cfg.rng = ratio.Range{Lower: lo, Upper: hi}
	cfg.step = st
	if !overdrag {
		cfg.props = elastic.Properties{}
	}
	return nil
}
