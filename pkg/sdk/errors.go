package cinedex

import "github.com/kailas-cloud/cinedex/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound       = domain.ErrNotFound
	ErrEmptyCatalog   = domain.ErrEmptyCatalog
	ErrMalformedInput = domain.ErrMalformedInput
	ErrInvalidQuery   = domain.ErrInvalidQuery
)
