package corpusrepo

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/sanskrit-verbgame/internal/adapter/postgres"
	"github.com/heartmarshall/sanskrit-verbgame/internal/domain"
)

// ---------------------------------------------------------------------------
// Batch insert methods (pgx.Batch API)
// ---------------------------------------------------------------------------

// BulkInsertVerbs inserts verbs using pgx.Batch. Existing (root, class)
// pairs are skipped via ON CONFLICT DO NOTHING.
// Returns the number of actually inserted rows.
func (r *Repo) BulkInsertVerbs(ctx context.Context, verbs []domain.VerbEntry) (int, error) {
	if len(verbs) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, v := range verbs {
		batch.Queue(
			`INSERT INTO verbs (id, root, verb_class, meaning, future_stem, past_stem)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (root, verb_class) DO NOTHING`,
			uuid.New(), v.Root, v.Class, v.Meaning, nilIfEmpty(v.FutureStem), nilIfEmpty(v.PastStem),
		)
	}

	return r.sendBatchExec(ctx, "verbs", batch)
}

// BulkInsertConjugations inserts every suffix of table. Existing
// (tense, class, person_number) keys are skipped.
func (r *Repo) BulkInsertConjugations(ctx context.Context, table domain.ConjugationTable) (int, error) {
	batch := &pgx.Batch{}
	for _, tense := range slices.Sorted(maps.Keys(table)) {
		classes := table[tense]
		for _, class := range slices.Sorted(maps.Keys(classes)) {
			suffixes := classes[class]
			for _, key := range slices.Sorted(maps.Keys(suffixes)) {
				batch.Queue(
					`INSERT INTO conjugations (tense, verb_class, person_number, suffix)
					 VALUES ($1, $2, $3, $4)
					 ON CONFLICT (tense, verb_class, person_number) DO NOTHING`,
					string(tense), class, key, suffixes[key],
				)
			}
		}
	}
	if batch.Len() == 0 {
		return 0, nil
	}

	return r.sendBatchExec(ctx, "conjugations", batch)
}

// BulkInsertSentences inserts sentences at positions offset, offset+1, ...
// Positions already taken are skipped, so re-running a seed is idempotent.
func (r *Repo) BulkInsertSentences(ctx context.Context, offset int, sentences []domain.Sentence) (int, error) {
	if len(sentences) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for i, s := range sentences {
		var objForm, objRoot, objGender, objNumber *string
		if s.Object != nil {
			objForm = &s.Object.Form
			objRoot = &s.Object.Root
			objGender = &s.Object.Gender
			objNumber = &s.Object.Number
		}

		batch.Queue(
			`INSERT INTO sentences (id, position, text, tense,
			     subject_form, subject_person, subject_number,
			     verb_root, verb_class, verb_meaning, verb_form,
			     object_form, object_root, object_gender, object_number)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			 ON CONFLICT (position) DO NOTHING`,
			uuid.New(), offset+i, s.DisplayText(), string(s.Tense),
			s.Subject.Form, string(s.Subject.Person), string(s.Subject.Number),
			s.Verb.Root, s.Verb.Class, s.Verb.Meaning, s.Verb.Form,
			objForm, objRoot, objGender, objNumber,
		)
	}

	return r.sendBatchExec(ctx, "sentences", batch)
}

// Truncate removes every corpus row.
func (r *Repo) Truncate(ctx context.Context) error {
	if _, err := r.q(ctx).Exec(ctx, `TRUNCATE verbs, conjugations, sentences`); err != nil {
		return postgres.MapError(err, "corpus", "")
	}
	return nil
}

// sendBatchExec sends a pgx.Batch and counts affected rows from Exec results.
func (r *Repo) sendBatchExec(ctx context.Context, entity string, batch *pgx.Batch) (int, error) {
	results := r.q(ctx).SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, postgres.MapError(fmt.Errorf("batch exec: %w", err), entity, "")
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

func nilIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
