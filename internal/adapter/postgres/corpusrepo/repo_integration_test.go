package corpusrepo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	postgres "github.com/heartmarshall/sanskrit-verbgame/internal/adapter/postgres"
	"github.com/heartmarshall/sanskrit-verbgame/internal/adapter/postgres/corpusrepo"
	"github.com/heartmarshall/sanskrit-verbgame/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/sanskrit-verbgame/internal/domain"
)

// Integration tests share one database and truncate it, so they run serially.

func TestRepo_Integration_RoundTrip(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	testhelper.ResetCorpus(t, pool)
	repo := corpusrepo.New(pool)
	ctx := context.Background()

	future := "gamiṣy"
	verbs := []domain.VerbEntry{
		{Root: "gam", Class: "1P", Meaning: "to go", FutureStem: &future},
		{Root: "nṛt", Class: "4P", Meaning: "to dance"},
	}
	n, err := repo.BulkInsertVerbs(ctx, verbs)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	table := domain.ConjugationTable{
		domain.TensePresent: {"1P": {"3_sg": "Ati", "3_pl": "Anti", "x_y": "?"}},
	}
	n, err = repo.BulkInsertConjugations(ctx, table)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	sentences := []domain.Sentence{
		{
			Text:    "rāmaḥ vanam gacchati",
			Subject: domain.Subject{Form: "rāmaḥ", Person: domain.PersonThird, Number: domain.NumberSingular},
			Verb:    domain.SentenceVerb{Root: "gam", Class: "1P", Meaning: "to go", Form: "gacchati"},
			Object:  &domain.Object{Form: "vanam"},
			Tense:   domain.TensePresent,
		},
		{
			Text:  "te gacchanti",
			Verb:  domain.SentenceVerb{Root: "gam", Class: "1P", Form: "gacchanti"},
			Tense: domain.TensePresent,
		},
	}
	n, err = repo.BulkInsertSentences(ctx, 0, sentences)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	c, err := repo.Load(ctx)
	require.NoError(t, err)

	stats := c.Stats()
	assert.Equal(t, 2, stats.Verbs)
	assert.Equal(t, 2, stats.Sentences)
	assert.Equal(t, 1, stats.MalformedKeys)

	gam, ok := c.FindVerb("gam", "1P")
	require.True(t, ok)
	require.NotNil(t, gam.FutureStem)
	assert.Equal(t, future, *gam.FutureStem)

	loaded := c.Sentences()
	assert.Equal(t, "rāmaḥ vanam gacchati", loaded[0].Text)
	assert.True(t, loaded[0].HasObject())
	assert.False(t, loaded[1].HasObject())
}

func TestRepo_Integration_BulkInsertIdempotent(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	testhelper.ResetCorpus(t, pool)
	repo := corpusrepo.New(pool)
	ctx := context.Background()

	verbs := []domain.VerbEntry{{Root: "paṭh", Class: "1P", Meaning: "to read"}}

	first, err := repo.BulkInsertVerbs(ctx, verbs)
	require.NoError(t, err)
	second, err := repo.BulkInsertVerbs(ctx, verbs)
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, 0, second)
}

func TestRepo_Integration_TruncateInTx(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	testhelper.ResetCorpus(t, pool)
	testhelper.SeedVerb(t, pool, "gam", "1P", "to go")
	testhelper.SeedSentence(t, pool, 0, "sa gacchati", "gacchati")

	repo := corpusrepo.New(pool)
	txm := postgres.NewTxManager(pool)
	ctx := context.Background()

	err := txm.RunInTx(ctx, func(ctx context.Context) error {
		if err := repo.Truncate(ctx); err != nil {
			return err
		}
		_, err := repo.BulkInsertSentences(ctx, 0, []domain.Sentence{
			{Text: "aham paṭhāmi", Verb: domain.SentenceVerb{Form: "paṭhāmi"}},
		})
		return err
	})
	require.NoError(t, err)

	c, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, c.HasVerbs())
	require.Equal(t, 1, c.SentenceCount())
	assert.Equal(t, "aham paṭhāmi", c.Sentence(0).Text)
}
