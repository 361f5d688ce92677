package domain

import "errors"

var (
	// ErrNotFound signals a missing movie.
	ErrNotFound = errors.New("movie not found")
	// ErrEmptyCatalog signals that no movies were loaded.
	ErrEmptyCatalog = errors.New("no movie data available")
	// ErrMalformedInput signals an unreadable or invalid dataset.
	ErrMalformedInput = errors.New("malformed input")
	// ErrInvalidQuery signals a missing or invalid request parameter.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrSynonymProviderError signals a synonym source failure.
	ErrSynonymProviderError = errors.New("synonym provider error")
)
