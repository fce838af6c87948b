package domain

import "strings"

// Halant is the Devanagari virama that suppresses a consonant's inherent vowel.
const Halant = "्"

// Tense identifies a conjugation table section.
type Tense string

const (
	TensePresent Tense = "present"
	TensePast    Tense = "past"
	TenseFuture  Tense = "future"
)

func (t Tense) String() string { return string(t) }

// ClassFourP is the paradigm whose present-tense suffixes attach to the unreduced stem.
const ClassFourP = "4P"

// Person is the grammatical person as stored in the datasets ("1", "2", "3").
type Person string

const (
	PersonFirst  Person = "1"
	PersonSecond Person = "2"
	PersonThird  Person = "3"
)

func (p Person) String() string { return string(p) }

func (p Person) IsValid() bool {
	switch p {
	case PersonFirst, PersonSecond, PersonThird:
		return true
	}
	return false
}

// Label returns the English name of the person, e.g. "First person".
func (p Person) Label() string {
	switch p {
	case PersonFirst:
		return "First person"
	case PersonSecond:
		return "Second person"
	case PersonThird:
		return "Third person"
	}
	return "Unknown person"
}

// Number is the grammatical number ("sg", "du", "pl").
type Number string

const (
	NumberSingular Number = "sg"
	NumberDual     Number = "du"
	NumberPlural   Number = "pl"
)

func (n Number) String() string { return string(n) }

func (n Number) IsValid() bool {
	switch n {
	case NumberSingular, NumberDual, NumberPlural:
		return true
	}
	return false
}

// Label returns the English name of the number, e.g. "singular".
func (n Number) Label() string {
	switch n {
	case NumberSingular:
		return "singular"
	case NumberDual:
		return "dual"
	case NumberPlural:
		return "plural"
	}
	return "unknown number"
}

// PersonNumber is one slot of the person/number paradigm.
type PersonNumber struct {
	Person Person
	Number Number
}

// Key returns the composite table key, e.g. "3_sg".
func (pn PersonNumber) Key() string {
	return string(pn.Person) + "_" + string(pn.Number)
}

// Label returns e.g. "Third person singular".
func (pn PersonNumber) Label() string {
	return pn.Person.Label() + " " + pn.Number.Label()
}

// ParsePersonNumber parses a composite key such as "1_du".
// The second return value is false for malformed keys.
func ParsePersonNumber(key string) (PersonNumber, bool) {
	parts := strings.Split(key, "_")
	if len(parts) != 2 {
		return PersonNumber{}, false
	}
	pn := PersonNumber{Person: Person(parts[0]), Number: Number(parts[1])}
	if !pn.Person.IsValid() || !pn.Number.IsValid() {
		return PersonNumber{}, false
	}
	return pn, true
}

// Paradigm lists every person/number slot in canonical order (1sg .. 3pl).
var Paradigm = []PersonNumber{
	{PersonFirst, NumberSingular}, {PersonFirst, NumberDual}, {PersonFirst, NumberPlural},
	{PersonSecond, NumberSingular}, {PersonSecond, NumberDual}, {PersonSecond, NumberPlural},
	{PersonThird, NumberSingular}, {PersonThird, NumberDual}, {PersonThird, NumberPlural},
}

// VerbEntry is a dictionary verb with its optional tense-specific stems.
type VerbEntry struct {
	Root       string  `json:"root"`
	Class      string  `json:"verb_class"`
	Meaning    string  `json:"meaning"`
	FutureStem *string `json:"future_stem,omitempty"`
	PastStem   *string `json:"past_stem,omitempty"`
}

// ConjugationTable maps tense -> verb class -> person/number key -> suffix.
// Suffixes use "A" as a placeholder for a vowel elided on attachment.
type ConjugationTable map[Tense]map[string]map[string]string

// Suffixes returns the raw key/suffix pairs for a tense and class, or nil.
func (t ConjugationTable) Suffixes(tense Tense, class string) map[string]string {
	return t[tense][class]
}

// Tenses returns the tenses present in the table.
func (t ConjugationTable) Tenses() []Tense {
	tenses := make([]Tense, 0, len(t))
	for tense := range t {
		tenses = append(tenses, tense)
	}
	return tenses
}
