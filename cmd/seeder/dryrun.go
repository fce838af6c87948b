package main

import (
	"context"
	"errors"

	"github.com/heartmarshall/sanskrit-verbgame/internal/domain"
)

// dryRunRepo stands in for the database when --dry-run is set. The pipeline
// never writes in dry-run mode, so reaching any method is a bug.
type dryRunRepo struct{}

var errDryRun = errors.New("dry run: database writes are disabled")

func (dryRunRepo) BulkInsertVerbs(context.Context, []domain.VerbEntry) (int, error) {
	return 0, errDryRun
}

func (dryRunRepo) BulkInsertConjugations(context.Context, domain.ConjugationTable) (int, error) {
	return 0, errDryRun
}

func (dryRunRepo) BulkInsertSentences(context.Context, int, []domain.Sentence) (int, error) {
	return 0, errDryRun
}

func (dryRunRepo) Truncate(context.Context) error { return errDryRun }
