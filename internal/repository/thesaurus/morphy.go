package thesaurus

import "strings"

// detachment is a WordNet suffix rule: strip suffix, append ending.
type detachment struct {
	suffix, ending string
}

var detachments = map[string][]detachment{
	Noun: {
		{"s", ""},
		{"ses", "s"},
		{"ves", "f"},
		{"xes", "x"},
		{"zes", "z"},
		{"ches", "ch"},
		{"shes", "sh"},
		{"men", "man"},
		{"ies", "y"},
	},
	Verb: {
		{"s", ""},
		{"ies", "y"},
		{"es", "e"},
		{"es", ""},
		{"ed", "e"},
		{"ed", ""},
		{"ing", "e"},
		{"ing", ""},
	},
	Adjective: {
		{"er", ""},
		{"est", ""},
		{"er", "e"},
		{"est", "e"},
	},
}

// morphy returns the base forms of word for pos that exist in the database,
// each once. An exception list entry wins over the suffix rules. Otherwise
// the word itself and one round of detachments are tried, and further rounds
// run over the detached forms until one of them is known.
func (t *Thesaurus) morphy(word, pos string) []string {
	if bases, ok := t.exceptions[pos][word]; ok {
		return t.known(pos, append([]string{word}, bases...))
	}

	seen := map[string]struct{}{word: {}}
	forms := detach([]string{word}, pos, seen)
	if found := t.known(pos, append([]string{word}, forms...)); len(found) > 0 {
		return found
	}
	for len(forms) > 0 {
		forms = detach(forms, pos, seen)
		if found := t.known(pos, forms); len(found) > 0 {
			return found
		}
	}
	return nil
}

// detach applies every rule for pos to every form, skipping forms already
// produced so repeated rounds terminate.
func detach(forms []string, pos string, seen map[string]struct{}) []string {
	var out []string
	for _, f := range forms {
		for _, d := range detachments[pos] {
			base, ok := strings.CutSuffix(f, d.suffix)
			if !ok || base == "" {
				continue
			}
			base += d.ending
			if _, dup := seen[base]; dup {
				continue
			}
			seen[base] = struct{}{}
			out = append(out, base)
		}
	}
	return out
}

func (t *Thesaurus) known(pos string, forms []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(forms))
	for _, f := range forms {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		if t.has(pos, f) {
			out = append(out, f)
		}
	}
	return out
}
