package parser

import (
	"errors"
	"fmt"
)

// ErrNoRecords indicates a source without any data rows.
var ErrNoRecords = errors.New("no records")

// ErrMissingColumn indicates a required header is absent.
var ErrMissingColumn = errors.New("missing column")

// Load stages reported by LoadError.
const (
	StageFetch = "fetch"
	StageParse = "parse"
)

// LoadError represents a failure while fetching or parsing a data source.
type LoadError struct {
	Source string
	Stage  string // "fetch", "parse"
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error for %q at %s stage: %v", e.Source, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(source, stage string, err error) *LoadError {
	return &LoadError{
		Source: source,
		Stage:  stage,
		Err:    err,
	}
}
