package curation

import "errors"

var (
	// ErrNoStations means the candidate source produced an empty pool, so
	// there is nothing for the model to curate.
	ErrNoStations = errors.New("no stations available")

	// ErrMissingContent means the provider responded but the completion
	// carried no usable text.
	ErrMissingContent = errors.New("provider response contained no content")
)
