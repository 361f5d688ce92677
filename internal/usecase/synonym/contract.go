package synonym

import "github.com/kailas-cloud/cinedex/internal/domain"

// Source is a named synonym provider (thesaurus, language model, ...).
type Source interface {
	domain.SynonymSource
	Name() string
}
