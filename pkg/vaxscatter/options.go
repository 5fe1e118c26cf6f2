// Package vaxscatter builds the vaccination-vs-cases scatter chart.
package vaxscatter

import (
	"fmt"
	"time"

	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/chart"
	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/models"
)

// Variant selects how the chart is sized.
type Variant string

const (
	// VariantFixed draws a fixed-size chart and ignores window resizes.
	VariantFixed Variant = "fixed"
	// VariantResponsive sizes the chart from the window and rebuilds it on resize.
	VariantResponsive Variant = "responsive"
)

// Default data locations per variant.
const (
	FixedDataPath      = "state_stats.csv"
	ResponsiveDataPath = "assets/data/state_stats.csv"
)

// Options configures chart building and serving.
type Options struct {
	// Variant specifies the sizing behaviour (fixed, responsive).
	Variant Variant `yaml:"variant"`
	// DataPath is a CSV/xlsx path or URL.
	// If empty, defaults to the variant's conventional location.
	DataPath string `yaml:"data"`
	// Addr is the listen address of the chart server.
	Addr string `yaml:"addr"`
	// Width and Height are the SVG size of the fixed variant and the
	// initial size of the responsive one.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Margin surrounds the plot area.
	Margin models.Margin `yaml:"margin"`
	// Radius is the circle radius in pixels.
	Radius float64 `yaml:"radius"`
	// Duration is the length of the axis-switch animation.
	Duration time.Duration `yaml:"duration"`
	// ResizeFactor divides the window size in the responsive variant.
	ResizeFactor float64 `yaml:"resize_factor"`
	// Ticks is the requested tick count per axis.
	Ticks int `yaml:"ticks"`
}

// DefaultOptions returns default chart options.
func DefaultOptions() Options {
	return Options{
		Variant:      VariantFixed,
		Addr:         ":8080",
		Width:        960,
		Height:       500,
		Margin:       models.Margin{Top: 20, Right: 40, Bottom: 80, Left: 100},
		Radius:       18,
		Duration:     time.Second,
		ResizeFactor: 1.2,
		Ticks:        10,
	}
}

// Source returns the data location to load.
func (o Options) Source() string {
	if o.DataPath != "" {
		return o.DataPath
	}
	if o.Variant == VariantResponsive {
		return ResponsiveDataPath
	}
	return FixedDataPath
}

// IsResponsive reports whether the chart follows the window size.
func (o Options) IsResponsive() bool {
	return o.Variant == VariantResponsive
}

// SizeForWindow returns the SVG size for a browser window. The fixed
// variant always returns Width x Height.
func (o Options) SizeForWindow(windowWidth, windowHeight int) (int, int) {
	if !o.IsResponsive() || windowWidth <= 0 || windowHeight <= 0 {
		return o.Width, o.Height
	}
	return int(float64(windowWidth) / o.ResizeFactor), int(float64(windowHeight) / o.ResizeFactor)
}

// Layout returns the chart geometry for an SVG of the given size.
func (o Options) Layout(width, height int) chart.Layout {
	return chart.Layout{
		Width:    width,
		Height:   height,
		Margin:   o.Margin,
		Radius:   o.Radius,
		Ticks:    o.Ticks,
		Duration: o.Duration.Seconds(),
	}
}

// Validate checks that the options describe a drawable chart.
func (o Options) Validate() error {
	switch o.Variant {
	case VariantFixed, VariantResponsive:
	default:
		return fmt.Errorf("%w: %q (must be fixed or responsive)", ErrInvalidVariant, o.Variant)
	}
	if o.Width <= o.Margin.Left+o.Margin.Right || o.Height <= o.Margin.Top+o.Margin.Bottom {
		return fmt.Errorf("%w: %dx%d leaves no room inside the margins", ErrInvalidSize, o.Width, o.Height)
	}
	if o.ResizeFactor <= 0 {
		return fmt.Errorf("%w: resize factor %v", ErrInvalidSize, o.ResizeFactor)
	}
	if o.Duration < 0 {
		return fmt.Errorf("negative animation duration: %v", o.Duration)
	}
	return nil
}
