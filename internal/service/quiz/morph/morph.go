// Package morph derives conjugated surface forms from verb stems and paradigm suffixes.
// Everything here is pure: same inputs, same output, no I/O.
package morph

import (
	"strings"

	"github.com/heartmarshall/sanskrit-verbgame/internal/corpus"
	"github.com/heartmarshall/sanskrit-verbgame/internal/domain"
)

// elisionMarker stands in, inside stored suffixes, for a vowel that vanishes on attachment.
const elisionMarker = "A"

// ResolveStem picks the stem a suffix attaches to for the given tense.
//
// future + future_stem -> future_stem, past + past_stem -> past_stem, otherwise
// the root. A trailing halant is then dropped, except for present-tense 4P
// verbs whose suffixes attach to the unreduced stem.
func ResolveStem(entry domain.VerbEntry, tense domain.Tense) string {
	stem := entry.Root
	switch {
	case tense == domain.TenseFuture && present(entry.FutureStem):
		stem = *entry.FutureStem
	case tense == domain.TensePast && present(entry.PastStem):
		stem = *entry.PastStem
	}

	if !(tense == domain.TensePresent && entry.Class == domain.ClassFourP) {
		stem = strings.TrimSuffix(stem, domain.Halant)
	}
	return stem
}

func present(s *string) bool { return s != nil && *s != "" }

// Synthesize attaches suffix to stem, removing every elision marker from the suffix.
// The stem is never altered.
func Synthesize(stem, suffix string) string {
	return stem + strings.ReplaceAll(suffix, elisionMarker, "")
}

// Form is a synthesized surface form for one paradigm slot.
type Form struct {
	domain.PersonNumber
	Surface string
}

// Conjugate synthesizes one form per slot, in slot order.
func Conjugate(entry domain.VerbEntry, tense domain.Tense, slots []corpus.Slot) []Form {
	if len(slots) == 0 {
		return nil
	}
	stem := ResolveStem(entry, tense)
	forms := make([]Form, 0, len(slots))
	for _, s := range slots {
		forms = append(forms, Form{PersonNumber: s.PersonNumber, Surface: Synthesize(stem, s.Suffix)})
	}
	return forms
}
