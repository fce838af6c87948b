// Package corpus holds the immutable verb, conjugation and sentence datasets
// the quiz engine reads from. A Corpus is built once and shared by reference;
// nothing mutates it after New returns, so concurrent readers need no locking.
package corpus

import (
	"slices"

	"github.com/heartmarshall/sanskrit-verbgame/internal/domain"
)

// Slot is one parsed paradigm entry: a person/number pair and its suffix.
type Slot struct {
	domain.PersonNumber
	Suffix string
}

// Stats summarises the loaded datasets for startup logs and health checks.
type Stats struct {
	Verbs         int      `json:"verbs"`
	Sentences     int      `json:"sentences"`
	Paradigms     int      `json:"paradigms"`
	MalformedKeys int      `json:"malformed_keys"`
	Tenses        []string `json:"tenses"`
}

type verbKey struct {
	root  string
	class string
}

type paradigmKey struct {
	tense domain.Tense
	class string
}

// Corpus is the read-only dataset context.
type Corpus struct {
	verbs     []domain.VerbEntry
	verbIndex map[verbKey]int
	paradigms map[paradigmKey][]Slot
	tenses    []string
	malformed int
	sentences []domain.Sentence
}

// New builds a Corpus from already materialised datasets. The inputs are
// copied, so later changes by the caller do not leak into the corpus.
// Paradigm keys that do not parse into a person/number pair are skipped.
func New(verbs []domain.VerbEntry, table domain.ConjugationTable, sentences []domain.Sentence) *Corpus {
	c := &Corpus{
		verbs:     slices.Clone(verbs),
		verbIndex: make(map[verbKey]int, len(verbs)),
		paradigms: make(map[paradigmKey][]Slot),
		sentences: slices.Clone(sentences),
	}

	// First entry wins for duplicate (root, class) pairs.
	for i, v := range c.verbs {
		k := verbKey{root: v.Root, class: v.Class}
		if _, ok := c.verbIndex[k]; !ok {
			c.verbIndex[k] = i
		}
	}

	for tense, classes := range table {
		c.tenses = append(c.tenses, string(tense))
		for class, suffixes := range classes {
			slots := make([]Slot, 0, len(suffixes))
			for key, suffix := range suffixes {
				pn, ok := domain.ParsePersonNumber(key)
				if !ok {
					c.malformed++
					continue
				}
				slots = append(slots, Slot{PersonNumber: pn, Suffix: suffix})
			}
			slices.SortFunc(slots, func(a, b Slot) int {
				return paradigmIndex(a.PersonNumber) - paradigmIndex(b.PersonNumber)
			})
			c.paradigms[paradigmKey{tense: tense, class: class}] = slots
		}
	}
	slices.Sort(c.tenses)

	return c
}

// Empty returns a corpus with no data.
func Empty() *Corpus {
	return New(nil, nil, nil)
}

func paradigmIndex(pn domain.PersonNumber) int {
	return slices.Index(domain.Paradigm, pn)
}

// FindVerb returns the verb entry matching root and class.
func (c *Corpus) FindVerb(root, class string) (domain.VerbEntry, bool) {
	i, ok := c.verbIndex[verbKey{root: root, class: class}]
	if !ok {
		return domain.VerbEntry{}, false
	}
	return c.verbs[i], true
}

// Paradigm returns the suffix slots for a tense and class in canonical
// person/number order (1sg .. 3pl). The returned slice must not be modified.
func (c *Corpus) Paradigm(tense domain.Tense, class string) []Slot {
	return c.paradigms[paradigmKey{tense: tense, class: class}]
}

// HasVerbs reports whether any verb entries are loaded.
func (c *Corpus) HasVerbs() bool { return len(c.verbs) > 0 }

// HasConjugations reports whether the conjugation table has any tense.
func (c *Corpus) HasConjugations() bool { return len(c.tenses) > 0 }

// SentenceCount returns the number of example sentences.
func (c *Corpus) SentenceCount() int { return len(c.sentences) }

// Sentence returns the i-th example sentence.
func (c *Corpus) Sentence(i int) domain.Sentence { return c.sentences[i] }

// Verbs returns a copy of the verb entries.
func (c *Corpus) Verbs() []domain.VerbEntry { return slices.Clone(c.verbs) }

// Sentences returns a copy of the example sentences.
func (c *Corpus) Sentences() []domain.Sentence { return slices.Clone(c.sentences) }

// Stats returns counts describing the corpus.
func (c *Corpus) Stats() Stats {
	return Stats{
		Verbs:         len(c.verbs),
		Sentences:     len(c.sentences),
		Paradigms:     len(c.paradigms),
		MalformedKeys: c.malformed,
		Tenses:        slices.Clone(c.tenses),
	}
}
