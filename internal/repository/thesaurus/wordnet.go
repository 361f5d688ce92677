package thesaurus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kailas-cloud/cinedex/internal/domain"
)

// WordNet dict file names per part of speech.
var wordnetFiles = []struct {
	pos, data, exc string
}{
	{Noun, "data.noun", "noun.exc"},
	{Verb, "data.verb", "verb.exc"},
	{Adjective, "data.adj", "adj.exc"},
	{Adverb, "data.adv", "adv.exc"},
}

// LoadWordNet reads a WordNet 3.x dict directory: the synsets of data.noun,
// data.verb, data.adj and data.adv, and the morphological exception lists
// noun.exc, verb.exc, adj.exc and adv.exc. Missing files are skipped; a
// directory without any synset fails.
func LoadWordNet(dir string) (*Thesaurus, error) {
	var synsets []Synset
	exceptions := make(Exceptions)

	for _, f := range wordnetFiles {
		ss, err := readWordNetFile(filepath.Join(dir, f.data), parseDataLine)
		if err != nil {
			return nil, err
		}
		synsets = append(synsets, ss...)

		exc, err := readWordNetFile(filepath.Join(dir, f.exc), parseExceptionLine)
		if err != nil {
			return nil, err
		}
		for _, e := range exc {
			if exceptions[f.pos] == nil {
				exceptions[f.pos] = make(map[string][]string)
			}
			exceptions[f.pos][e.inflected] = append(exceptions[f.pos][e.inflected], e.bases...)
		}
	}

	if len(synsets) == 0 {
		return nil, fmt.Errorf("%w: wordnet %s: no data files", domain.ErrMalformedInput, dir)
	}
	return New(synsets, exceptions), nil
}

func readWordNetFile[T any](path string, parse func(string) (T, bool, error)) ([]T, error) {
	f, err := os.Open(filepath.Clean(path))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", domain.ErrMalformedInput, path, err)
	}
	defer f.Close()

	out, err := scanWordNet(f, parse)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

func scanWordNet[T any](r io.Reader, parse func(string) (T, bool, error)) ([]T, error) {
	var out []T
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for n := 1; sc.Scan(); n++ {
		v, ok, err := parse(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", domain.ErrMalformedInput, n, err)
		}
		if ok {
			out = append(out, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedInput, err)
	}
	return out, nil
}

// parseDataLine reads "offset lex_filenum ss_type w_cnt word lex_id [word lex_id...] ...".
// Lines starting with a space are the license header.
func parseDataLine(line string) (Synset, bool, error) {
	if line == "" || line[0] == ' ' {
		return Synset{}, false, nil
	}
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return Synset{}, false, fmt.Errorf("short synset record")
	}
	pos := fields[2]
	if indexPOS(pos) == "" {
		return Synset{}, false, fmt.Errorf("unknown synset type %q", pos)
	}
	count, err := strconv.ParseUint(fields[3], 16, 8)
	if err != nil {
		return Synset{}, false, fmt.Errorf("word count %q: %w", fields[3], err)
	}
	if count == 0 || len(fields) < 4+2*int(count) {
		return Synset{}, false, fmt.Errorf("word count %d does not match record", count)
	}

	lemmas := make([]string, 0, count)
	for i := 0; i < int(count); i++ {
		lemmas = append(lemmas, stripMarker(fields[4+2*i]))
	}
	return Synset{POS: pos, Lemmas: lemmas}, true, nil
}

// stripMarker drops an adjective position marker: "galore(ip)" -> "galore".
func stripMarker(word string) string {
	if i := strings.IndexByte(word, '('); i > 0 && strings.HasSuffix(word, ")") {
		return word[:i]
	}
	return word
}

type exception struct {
	inflected string
	bases     []string
}

// parseExceptionLine reads "inflected base [base...]".
func parseExceptionLine(line string) (exception, bool, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 0:
		return exception{}, false, nil
	case 1:
		return exception{}, false, fmt.Errorf("exception %q has no base form", fields[0])
	}
	return exception{inflected: fields[0], bases: fields[1:]}, true, nil
}
