package domain

import "testing"

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  gacchati  ", want: "gacchati"},
		{name: "case preserved", input: "Rāmaḥ", want: "Rāmaḥ"},
		{name: "compress multiple spaces", input: "rāmaḥ   vanam", want: "rāmaḥ vanam"},
		{name: "tabs and newlines", input: "\trāmaḥ\n vanam \t", want: "rāmaḥ vanam"},
		{name: "combining macron composed", input: "ra\u0304mah\u0323", want: "r\u0101ma\u1e25"},
		{name: "combining dot below composed", input: "pat\u0323hati", want: "pa\u1e6dhati"},
		{name: "devanagari unchanged", input: "गच्छति", want: "गच्छति"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeText(tt.input); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeSentence(t *testing.T) {
	t.Parallel()

	in := Sentence{
		Text:    " ra\u0304ma\u1e25  vanam gacchati ",
		Subject: Subject{Form: "ra\u0304ma\u1e25", Person: PersonThird, Number: NumberSingular},
		Verb:    SentenceVerb{Root: "gam", Class: "1P", Form: "gacchati "},
		Object:  &Object{Form: " vanam"},
		Tense:   TensePresent,
	}

	got := NormalizeSentence(in)

	if got.Text != "rāmaḥ vanam gacchati" {
		t.Errorf("Text = %q", got.Text)
	}
	if got.Original != in.Text {
		t.Errorf("Original = %q, want raw %q", got.Original, in.Text)
	}
	if again := NormalizeSentence(got); again.Original != in.Text {
		t.Errorf("second pass Original = %q, want raw %q", again.Original, in.Text)
	}
	if got.Subject.Form != "rāmaḥ" {
		t.Errorf("Subject.Form = %q", got.Subject.Form)
	}
	if got.Verb.Form != "gacchati" {
		t.Errorf("Verb.Form = %q", got.Verb.Form)
	}
	if got.Object.Form != "vanam" {
		t.Errorf("Object.Form = %q", got.Object.Form)
	}
	if in.Object.Form != " vanam" {
		t.Error("input object was modified")
	}
}

func TestNormalizeVerb(t *testing.T) {
	t.Parallel()

	future := "gamiṣy "
	got := NormalizeVerb(VerbEntry{Root: " gam", Class: "1P", FutureStem: &future})

	if got.Root != "gam" {
		t.Errorf("Root = %q", got.Root)
	}
	if got.FutureStem == nil || *got.FutureStem != "gamiṣy" {
		t.Errorf("FutureStem = %v", got.FutureStem)
	}
	if got.PastStem != nil {
		t.Errorf("PastStem = %v, want nil", got.PastStem)
	}
	if future != "gamiṣy " {
		t.Error("input stem was modified")
	}
}
