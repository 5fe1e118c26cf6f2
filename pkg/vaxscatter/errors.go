package vaxscatter

import "errors"

// ErrInvalidVariant indicates an unknown sizing variant.
var ErrInvalidVariant = errors.New("invalid variant")

// ErrInvalidSize indicates a chart size that leaves no plot area.
var ErrInvalidSize = errors.New("invalid chart size")

// ErrStaleRebuild indicates a rebuild that was overtaken by a newer one.
var ErrStaleRebuild = errors.New("rebuild superseded by a newer resize")
