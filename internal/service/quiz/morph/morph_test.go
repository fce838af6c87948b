package morph

import (
	"testing"

	"github.com/heartmarshall/sanskrit-verbgame/internal/corpus"
	"github.com/heartmarshall/sanskrit-verbgame/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestResolveStem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry domain.VerbEntry
		tense domain.Tense
		want  string
	}{
		{
			name:  "present drops halant",
			entry: domain.VerbEntry{Root: "X्", Class: "1P"},
			tense: domain.TensePresent,
			want:  "X",
		},
		{
			name:  "present 4P keeps halant",
			entry: domain.VerbEntry{Root: "X्", Class: "4P"},
			tense: domain.TensePresent,
			want:  "X्",
		},
		{
			name:  "future 4P drops halant",
			entry: domain.VerbEntry{Root: "X्", Class: "4P"},
			tense: domain.TenseFuture,
			want:  "X",
		},
		{
			name:  "future uses future stem",
			entry: domain.VerbEntry{Root: "गम्", Class: "1P", FutureStem: ptr("गमिष्य्")},
			tense: domain.TenseFuture,
			want:  "गमिष्य",
		},
		{
			name:  "past uses past stem",
			entry: domain.VerbEntry{Root: "गम्", Class: "1P", PastStem: ptr("अगच्छ")},
			tense: domain.TensePast,
			want:  "अगच्छ",
		},
		{
			name:  "future without future stem falls back to root",
			entry: domain.VerbEntry{Root: "पठ्", Class: "1P", PastStem: ptr("अपठ")},
			tense: domain.TenseFuture,
			want:  "पठ",
		},
		{
			name:  "empty past stem falls back to root",
			entry: domain.VerbEntry{Root: "पठ्", Class: "1P", PastStem: ptr("")},
			tense: domain.TensePast,
			want:  "पठ",
		},
		{
			name:  "present ignores tense stems",
			entry: domain.VerbEntry{Root: "gam", Class: "1P", FutureStem: ptr("gamiṣy"), PastStem: ptr("agaccha")},
			tense: domain.TensePresent,
			want:  "gam",
		},
		{
			name:  "only one trailing halant is dropped",
			entry: domain.VerbEntry{Root: "X््", Class: "1P"},
			tense: domain.TensePresent,
			want:  "X्",
		},
		{
			name:  "unknown tense uses root",
			entry: domain.VerbEntry{Root: "X्", Class: "4P", FutureStem: ptr("Y")},
			tense: domain.Tense("perfect"),
			want:  "X",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ResolveStem(tt.entry, tt.tense); got != tt.want {
				t.Errorf("ResolveStem(%+v, %q) = %q, want %q", tt.entry, tt.tense, got, tt.want)
			}
		})
	}
}

func TestSynthesize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		stem, suffix, want string
	}{
		{"gam", "Ati", "gamti"},
		{"gam", "ti", "gamti"},
		{"gam", "AAnti", "gamnti"},
		{"gacch", "", "gacch"},
		{"RAma", "Ati", "RAmati"}, // stem markers are kept
		{"पठ", "Aति", "पठति"},
	}

	for _, tt := range tests {
		if got := Synthesize(tt.stem, tt.suffix); got != tt.want {
			t.Errorf("Synthesize(%q, %q) = %q, want %q", tt.stem, tt.suffix, got, tt.want)
		}
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	t.Parallel()

	for range 100 {
		if got := Synthesize("gam", "Ati"); got != "gamti" {
			t.Fatalf("Synthesize returned %q", got)
		}
	}
}

func TestConjugate(t *testing.T) {
	t.Parallel()

	slots := []corpus.Slot{
		{PersonNumber: domain.PersonNumber{Person: domain.PersonFirst, Number: domain.NumberSingular}, Suffix: "Aami"},
		{PersonNumber: domain.PersonNumber{Person: domain.PersonThird, Number: domain.NumberSingular}, Suffix: "Ati"},
	}

	forms := Conjugate(domain.VerbEntry{Root: "पठ्", Class: "1P"}, domain.TensePresent, slots)

	if len(forms) != 2 {
		t.Fatalf("got %d forms, want 2", len(forms))
	}
	if forms[0].Surface != "पठami" || forms[0].Key() != "1_sg" {
		t.Errorf("forms[0] = %+v", forms[0])
	}
	if forms[1].Surface != "पठti" || forms[1].Key() != "3_sg" {
		t.Errorf("forms[1] = %+v", forms[1])
	}

	if Conjugate(domain.VerbEntry{Root: "x"}, domain.TensePresent, nil) != nil {
		t.Error("Conjugate with no slots should return nil")
	}
}
