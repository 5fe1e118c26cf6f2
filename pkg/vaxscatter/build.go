package vaxscatter

import (
	"context"

	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/chart"
	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/parser"
)

// Build loads the data source and computes the initial chart state for an
// SVG of the given size. A load failure aborts the build; nothing is retried.
func Build(ctx context.Context, opts Options, width, height int) (chart.State, error) {
	records, err := parser.Load(ctx, opts.Source())
	if err != nil {
		return chart.State{}, err
	}

	return chart.NewState(records, opts.Layout(width, height)), nil
}
