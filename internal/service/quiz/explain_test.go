package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/sanskrit-verbgame/internal/domain"
)

func TestCompose_WithObject(t *testing.T) {
	t.Parallel()

	s := domain.Sentence{
		Text:    "रामः वनं गच्छति",
		Subject: domain.Subject{Form: "रामः", Person: domain.PersonThird, Number: domain.NumberSingular},
		Verb:    domain.SentenceVerb{Root: "गम्", Class: "1P", Meaning: "to go", Form: "गच्छति"},
		Object:  &domain.Object{Form: "वनं"},
		Tense:   domain.TensePresent,
	}

	explanation, hint := Compose(s, "गच्छति")

	assert.Equal(t,
		"The subject 'रामः' is in third person singular form. "+
			"The verb root is 'गम्', which belongs to class 1P and means 'to go'. "+
			"This verb requires an object. "+
			"The correct verb form is 'गच्छति' to match the subject. "+
			"The full sentence is: रामः वनं गच्छति",
		explanation)
	assert.Equal(t, "Hint: Subject 'रामः' is Third person singular.", hint)
}

func TestCompose_WithoutObjectAndMeaning(t *testing.T) {
	t.Parallel()

	s := domain.Sentence{
		Text:    "यूयं नृत्यथ",
		Subject: domain.Subject{Form: "यूयं", Person: domain.PersonSecond, Number: domain.NumberPlural},
		Verb:    domain.SentenceVerb{Root: "नृत्", Class: "4P", Form: "नृत्यथ"},
	}

	explanation, hint := Compose(s, "नृत्यथ")

	assert.Contains(t, explanation, "is in second person plural form.")
	assert.Contains(t, explanation, "means 'N/A'.")
	assert.Contains(t, explanation, "This verb does not require an object.")
	assert.Equal(t, "Hint: Subject 'यूयं' is Second person plural.", hint)
}

func TestCompose_QuotesOriginalSentence(t *testing.T) {
	t.Parallel()

	s := domain.NormalizeSentence(domain.Sentence{
		Text:    "rāmaḥ  vanam   gacchati",
		Subject: domain.Subject{Form: "rāmaḥ", Person: domain.PersonThird, Number: domain.NumberSingular},
		Verb:    domain.SentenceVerb{Root: "gam", Class: "1P", Form: "gacchati"},
		Object:  &domain.Object{Root: "vana"},
	})

	explanation, _ := Compose(s, "gacchati")

	assert.Equal(t, "rāmaḥ vanam gacchati", s.Text)
	assert.Contains(t, explanation, "The full sentence is: rāmaḥ  vanam   gacchati")
	assert.Contains(t, explanation, "This verb requires an object.")
}

func TestCompose_Deterministic(t *testing.T) {
	t.Parallel()

	s := domain.Sentence{
		Text:    "आवां पठावः",
		Subject: domain.Subject{Form: "आवां", Person: domain.PersonFirst, Number: domain.NumberDual},
		Verb:    domain.SentenceVerb{Root: "पठ्", Class: "1P", Meaning: "to read", Form: "पठावः"},
	}

	e1, h1 := Compose(s, "पठावः")
	e2, h2 := Compose(s, "पठावः")

	assert.Equal(t, e1, e2)
	assert.Equal(t, h1, h2)
	assert.Equal(t, "Hint: Subject 'आवां' is First person dual.", h1)
}
