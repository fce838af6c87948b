package quiz

import (
	"slices"
	"strings"

	"github.com/heartmarshall/sanskrit-verbgame/internal/domain"
)

// Blank replaces the verb token of text with domain.BlankMarker.
//
// The first whitespace-separated token equal to verbForm is replaced. When the
// form does not occur verbatim (external sandhi changed it), the last token is
// replaced instead, so the result always holds exactly one marker even if it
// sometimes blanks the wrong word.
func Blank(text, verbForm string) string {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return domain.BlankMarker
	}

	i := slices.Index(tokens, verbForm)
	if i < 0 {
		i = len(tokens) - 1
	}
	tokens[i] = domain.BlankMarker

	return strings.Join(tokens, " ")
}
