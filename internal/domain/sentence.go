package domain

// Subject is the grammatical subject of an example sentence.
type Subject struct {
	Form   string `json:"form"`
	Person Person `json:"person"`
	Number Number `json:"number"`
}

// PersonNumber returns the subject's paradigm slot.
func (s Subject) PersonNumber() PersonNumber {
	return PersonNumber{Person: s.Person, Number: s.Number}
}

// SentenceVerb is the verb occurring in an example sentence.
// Form is the surface form and the ground-truth quiz answer.
type SentenceVerb struct {
	Root    string `json:"root"`
	Class   string `json:"class"`
	Meaning string `json:"meaning,omitempty"`
	Form    string `json:"form"`
}

// Object is the optional grammatical object of an example sentence.
type Object struct {
	Form   string `json:"form"`
	Root   string `json:"root,omitempty"`
	Gender string `json:"gender,omitempty"`
	Number string `json:"number,omitempty"`
}

// Sentence is one example sentence of the corpus.
//
// Text is the normalized form used for token matching. Original keeps the
// text as it appeared in the dataset and is what explanations quote.
type Sentence struct {
	Text     string       `json:"sentence"`
	Subject  Subject      `json:"subject"`
	Verb     SentenceVerb `json:"verb"`
	Object   *Object      `json:"object"`
	Tense    Tense        `json:"tense"`
	Original string       `json:"-"`
}

// HasObject reports whether the sentence carries an object with at least one
// field set. An object with only a root still counts.
func (s Sentence) HasObject() bool {
	return s.Object != nil && *s.Object != (Object{})
}

// DisplayText returns the sentence as written in the dataset, falling back to
// the normalized text.
func (s Sentence) DisplayText() string {
	if s.Original != "" {
		return s.Original
	}
	return s.Text
}
