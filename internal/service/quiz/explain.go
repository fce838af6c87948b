package quiz

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/sanskrit-verbgame/internal/domain"
)

const missingMeaning = "N/A"

// Compose builds the explanation shown after answering and the hint shown before.
func Compose(s domain.Sentence, correct string) (explanation, hint string) {
	label := s.Subject.PersonNumber().Label()

	meaning := s.Verb.Meaning
	if meaning == "" {
		meaning = missingMeaning
	}

	object := "This verb does not require an object. "
	if s.HasObject() {
		object = "This verb requires an object. "
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The subject '%s' is in %s form. ", s.Subject.Form, strings.ToLower(label))
	fmt.Fprintf(&b, "The verb root is '%s', which belongs to class %s and means '%s'. ", s.Verb.Root, s.Verb.Class, meaning)
	b.WriteString(object)
	fmt.Fprintf(&b, "The correct verb form is '%s' to match the subject. ", correct)
	fmt.Fprintf(&b, "The full sentence is: %s", s.DisplayText())

	hint = fmt.Sprintf("Hint: Subject '%s' is %s.", s.Subject.Form, label)

	return b.String(), hint
}
