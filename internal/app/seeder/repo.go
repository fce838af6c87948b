// Package seeder imports the JSON datasets into PostgreSQL.
package seeder

import (
	"context"

	"github.com/heartmarshall/sanskrit-verbgame/internal/domain"
)

// CorpusBulkRepo defines the batch repository contract consumed by the pipeline.
// Implemented by corpusrepo.Repo.
type CorpusBulkRepo interface {
	// Batch inserts. ON CONFLICT DO NOTHING; the count excludes skipped rows.
	BulkInsertVerbs(ctx context.Context, verbs []domain.VerbEntry) (int, error)
	BulkInsertConjugations(ctx context.Context, table domain.ConjugationTable) (int, error)
	BulkInsertSentences(ctx context.Context, offset int, sentences []domain.Sentence) (int, error)

	Truncate(ctx context.Context) error
}

// DatasetSource reads the raw datasets. Implemented by dataset.Loader.
type DatasetSource interface {
	LoadVerbs(ctx context.Context) ([]domain.VerbEntry, error)
	LoadConjugations(ctx context.Context) (domain.ConjugationTable, error)
	LoadSentences(ctx context.Context) ([]domain.Sentence, error)
}

// TxRunner runs fn in a transaction. Implemented by postgres.TxManager.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
