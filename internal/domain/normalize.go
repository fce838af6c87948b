package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText prepares dataset text for exact token comparison:
//   - applies Unicode NFC, so precomposed and combining diacritics compare equal
//   - trims leading/trailing whitespace
//   - compresses whitespace runs into one space
//
// Case is preserved.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(norm.NFC.String(text)), " ")
}

// NormalizeSentence returns s with every textual field normalized. The raw
// text is kept in Original the first time a sentence passes through.
func NormalizeSentence(s Sentence) Sentence {
	if s.Original == "" {
		s.Original = s.Text
	}
	s.Text = NormalizeText(s.Text)
	s.Subject.Form = NormalizeText(s.Subject.Form)
	s.Verb.Root = NormalizeText(s.Verb.Root)
	s.Verb.Form = NormalizeText(s.Verb.Form)
	if s.Object != nil {
		obj := *s.Object
		obj.Form = NormalizeText(obj.Form)
		obj.Root = NormalizeText(obj.Root)
		s.Object = &obj
	}
	return s
}

// NormalizeVerb returns v with its root and stems normalized.
func NormalizeVerb(v VerbEntry) VerbEntry {
	v.Root = NormalizeText(v.Root)
	v.FutureStem = normalizePtr(v.FutureStem)
	v.PastStem = normalizePtr(v.PastStem)
	return v
}

func normalizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	n := NormalizeText(*s)
	return &n
}
