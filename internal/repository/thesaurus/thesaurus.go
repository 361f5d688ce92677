// Package thesaurus is a WordNet-style lexical database: synsets of lemmas,
// indexed by part of speech, with base-form reduction of inflected words.
// It reads a bundled YAML subset or a full WordNet dict directory.
package thesaurus

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/cinedex/internal/domain"
	"github.com/kailas-cloud/cinedex/internal/domain/terms"
)

//go:embed default.yaml
var defaultData []byte

// Part-of-speech tags, as used in WordNet.
const (
	Noun      = "n"
	Verb      = "v"
	Adjective = "a"
	Satellite = "s" // adjective satellite, indexed with adjectives
	Adverb    = "r"
)

// Synset is one sense: the lemmas that share it.
type Synset struct {
	POS    string   `yaml:"pos"`
	Lemmas []string `yaml:"lemmas"`
}

// Exceptions lists irregular inflections per part of speech:
// pos -> inflected form -> base forms ("children" -> ["child"]).
type Exceptions map[string]map[string][]string

type document struct {
	Synsets    []Synset   `yaml:"synsets"`
	Exceptions Exceptions `yaml:"exceptions"`
}

// Thesaurus maps words to the synsets they belong to. Read-only after construction.
type Thesaurus struct {
	synsets    []Synset
	index      map[string]map[string][]int // pos -> lower-cased lemma -> synset positions
	exceptions Exceptions                  // pos -> lower-cased inflection -> base forms
}

// Default returns the bundled thesaurus.
func Default() (*Thesaurus, error) {
	return Parse(defaultData)
}

// Load reads a thesaurus from path. A directory is read as a WordNet dict
// directory (see LoadWordNet), anything else as a YAML document.
func Load(path string) (*Thesaurus, error) {
	info, err := os.Stat(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: read thesaurus %s: %w", domain.ErrMalformedInput, path, err)
	}
	if info.IsDir() {
		return LoadWordNet(path)
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: read thesaurus %s: %w", domain.ErrMalformedInput, path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("thesaurus %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a YAML thesaurus document.
func Parse(data []byte) (*Thesaurus, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse thesaurus: %w", domain.ErrMalformedInput, err)
	}
	for i, s := range doc.Synsets {
		if indexPOS(s.POS) == "" {
			return nil, fmt.Errorf("%w: synset %d: unknown part of speech %q", domain.ErrMalformedInput, i, s.POS)
		}
		if len(s.Lemmas) == 0 {
			return nil, fmt.Errorf("%w: synset %d has no lemmas", domain.ErrMalformedInput, i)
		}
	}
	for pos := range doc.Exceptions {
		if indexPOS(pos) == "" {
			return nil, fmt.Errorf("%w: exceptions: unknown part of speech %q", domain.ErrMalformedInput, pos)
		}
	}
	return New(doc.Synsets, doc.Exceptions), nil
}

// New builds a Thesaurus from synsets and irregular inflections. Entries with
// an unknown part of speech are ignored. exceptions may be nil.
func New(synsets []Synset, exceptions Exceptions) *Thesaurus {
	t := &Thesaurus{
		synsets:    synsets,
		index:      make(map[string]map[string][]int),
		exceptions: make(Exceptions),
	}
	for pos, forms := range exceptions {
		pos = indexPOS(pos)
		if pos == "" {
			continue
		}
		if t.exceptions[pos] == nil {
			t.exceptions[pos] = make(map[string][]string, len(forms))
		}
		for inflected, bases := range forms {
			key := terms.Lower(inflected)
			for _, b := range bases {
				t.exceptions[pos][key] = append(t.exceptions[pos][key], terms.Lower(b))
			}
		}
	}
	for i, s := range synsets {
		pos := indexPOS(s.POS)
		if pos == "" {
			continue
		}
		if t.index[pos] == nil {
			t.index[pos] = make(map[string][]int)
		}
		for _, lemma := range s.Lemmas {
			key := terms.Lower(lemma)
			t.index[pos][key] = append(t.index[pos][key], i)
		}
	}
	return t
}

// Len returns the number of synsets.
func (t *Thesaurus) Len() int { return len(t.synsets) }

// Name identifies the source in logs and metrics.
func (t *Thesaurus) Name() string { return "thesaurus" }

// Synonyms returns every lemma, lower-cased, of every synset that contains the
// word or one of its base forms, across all parts of speech.
// Unknown words yield an empty set.
func (t *Thesaurus) Synonyms(_ context.Context, word string) (terms.Set, error) {
	out := terms.New()
	word = terms.Lower(word)
	if word == "" {
		return out, nil
	}

	for _, pos := range []string{Noun, Verb, Adjective, Adverb} {
		for _, form := range t.morphy(word, pos) {
			for _, i := range t.index[pos][form] {
				for _, lemma := range t.synsets[i].Lemmas {
					out.Add(lemma)
				}
			}
		}
	}
	return out, nil
}

func (t *Thesaurus) has(pos, lemma string) bool {
	_, ok := t.index[pos][lemma]
	return ok
}

func indexPOS(pos string) string {
	switch pos {
	case Noun, Verb, Adjective, Adverb:
		return pos
	case Satellite:
		return Adjective
	default:
		return ""
	}
}
