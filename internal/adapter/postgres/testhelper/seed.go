package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/sanskrit-verbgame/internal/domain"
)

// ResetCorpus empties every corpus table.
func ResetCorpus(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), `TRUNCATE verbs, conjugations, sentences`); err != nil {
		t.Fatalf("testhelper: truncate corpus: %v", err)
	}
}

// SeedVerb inserts one verb row and returns it.
func SeedVerb(t *testing.T, pool *pgxpool.Pool, root, class, meaning string) domain.VerbEntry {
	t.Helper()

	v := domain.VerbEntry{Root: root, Class: class, Meaning: meaning}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO verbs (id, root, verb_class, meaning) VALUES ($1, $2, $3, $4)`,
		uuid.New(), v.Root, v.Class, v.Meaning,
	)
	if err != nil {
		t.Fatalf("testhelper: seed verb %s/%s: %v", root, class, err)
	}
	return v
}

// SeedSuffix inserts one conjugation suffix.
func SeedSuffix(t *testing.T, pool *pgxpool.Pool, tense domain.Tense, class, key, suffix string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO conjugations (tense, verb_class, person_number, suffix) VALUES ($1, $2, $3, $4)`,
		string(tense), class, key, suffix,
	)
	if err != nil {
		t.Fatalf("testhelper: seed suffix %s/%s/%s: %v", tense, class, key, err)
	}
}

// SeedSentence inserts a present-tense sentence without an object at position.
func SeedSentence(t *testing.T, pool *pgxpool.Pool, position int, text, verbForm string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO sentences (id, position, text, tense, verb_form) VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), position, text, string(domain.TensePresent), verbForm,
	)
	if err != nil {
		t.Fatalf("testhelper: seed sentence %d: %v", position, err)
	}
}
