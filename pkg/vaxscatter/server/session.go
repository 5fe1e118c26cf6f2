// Package server hosts the interactive chart over HTTP.
package server

import (
	"bytes"
	"context"
	"log"
	"sync"

	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter"
	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/chart"
	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/models"
	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/render"
)

// Loader builds a fresh chart state for an SVG of the given size.
type Loader func(ctx context.Context, width, height int) (chart.State, error)

// Session owns the single chart a server shows. Select and Resize are
// serialized on the session; loads run outside the lock.
type Session struct {
	opts vaxscatter.Options
	load Loader

	mu    sync.Mutex
	state chart.State
	// gen counts rebuilds so a load that finishes late can be recognized.
	gen uint64
}

// NewSession loads the data source and builds the initial chart. A load
// failure is returned as is; no chart exists without data.
func NewSession(ctx context.Context, opts vaxscatter.Options, load Loader) (*Session, error) {
	if load == nil {
		load = func(ctx context.Context, width, height int) (chart.State, error) {
			return vaxscatter.Build(ctx, opts, width, height)
		}
	}

	state, err := load(ctx, opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}

	return &Session{opts: opts, load: load, state: state}, nil
}

// Options returns the options the session was created with.
func (s *Session) Options() vaxscatter.Options {
	return s.opts
}

// Snapshot returns the current chart state.
func (s *Session) Snapshot() chart.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SVG renders the current chart without animation.
func (s *Session) SVG() ([]byte, error) {
	return paint(s.Snapshot(), nil)
}

// Select switches the x axis field. When field is already shown, changed is
// false and no SVG is produced. Otherwise the returned SVG animates from the
// positions of the previous field.
func (s *Session) Select(field models.Field) (svg []byte, changed bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed, err := chart.Select(s.state, field)
	if err != nil || !changed {
		return nil, false, err
	}

	tr := chart.Diff(s.state, next)
	s.state = next
	log.Printf("Switched x axis to %s", field)

	svg, err = paint(next, &tr)
	return svg, true, err
}

// Resize tears the chart down and rebuilds it for a browser window, with a
// fresh load and the default field. A rebuild overtaken by a newer one
// returns vaxscatter.ErrStaleRebuild and leaves the newer chart in place.
// The fixed variant ignores the window and returns the current chart.
func (s *Session) Resize(ctx context.Context, windowWidth, windowHeight int) ([]byte, error) {
	if !s.opts.IsResponsive() {
		return s.SVG()
	}

	width, height := s.opts.SizeForWindow(windowWidth, windowHeight)

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	next, err := s.load(ctx, width, height)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		log.Printf("Discarding rebuild %d for %dx%d, rebuild %d is newer", gen, width, height, s.gen)
		return nil, vaxscatter.ErrStaleRebuild
	}
	s.state = next
	log.Printf("Rebuilt chart at %dx%d", width, height)

	return paint(next, nil)
}

func paint(state chart.State, tr *models.Transition) ([]byte, error) {
	var buf bytes.Buffer
	if err := render.SVG(&buf, chart.Compose(state), tr); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
