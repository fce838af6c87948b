// Package corpusrepo stores the verb, conjugation and sentence datasets in
// PostgreSQL and rebuilds an in-memory corpus from them.
package corpusrepo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/sanskrit-verbgame/internal/adapter/postgres"
	"github.com/heartmarshall/sanskrit-verbgame/internal/corpus"
	"github.com/heartmarshall/sanskrit-verbgame/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides corpus persistence.
type Repo struct {
	db postgres.Querier
}

// New creates a Repo. db is used unless a transaction is stored in the context.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// ---------------------------------------------------------------------------
// Rows
// ---------------------------------------------------------------------------

type verbRow struct {
	Root       string  `db:"root"`
	VerbClass  string  `db:"verb_class"`
	Meaning    string  `db:"meaning"`
	FutureStem *string `db:"future_stem"`
	PastStem   *string `db:"past_stem"`
}

type conjugationRow struct {
	Tense        string `db:"tense"`
	VerbClass    string `db:"verb_class"`
	PersonNumber string `db:"person_number"`
	Suffix       string `db:"suffix"`
}

type sentenceRow struct {
	Text          string  `db:"text"`
	Tense         string  `db:"tense"`
	SubjectForm   string  `db:"subject_form"`
	SubjectPerson string  `db:"subject_person"`
	SubjectNumber string  `db:"subject_number"`
	VerbRoot      string  `db:"verb_root"`
	VerbClass     string  `db:"verb_class"`
	VerbMeaning   string  `db:"verb_meaning"`
	VerbForm      string  `db:"verb_form"`
	ObjectForm    *string `db:"object_form"`
	ObjectRoot    *string `db:"object_root"`
	ObjectGender  *string `db:"object_gender"`
	ObjectNumber  *string `db:"object_number"`
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// LoadVerbs returns all verb entries ordered by class and root.
func (r *Repo) LoadVerbs(ctx context.Context) ([]domain.VerbEntry, error) {
	query, args, err := psql.
		Select("root", "verb_class", "meaning", "future_stem", "past_stem").
		From("verbs").
		OrderBy("verb_class", "root").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build verbs query: %w", err)
	}

	var rows []verbRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "verbs", "")
	}

	verbs := make([]domain.VerbEntry, 0, len(rows))
	for _, row := range rows {
		verbs = append(verbs, domain.VerbEntry{
			Root:       row.Root,
			Class:      row.VerbClass,
			Meaning:    row.Meaning,
			FutureStem: row.FutureStem,
			PastStem:   row.PastStem,
		})
	}
	return verbs, nil
}

// LoadConjugations returns the conjugation table. Person/number keys are
// returned verbatim; malformed ones are left for the corpus to skip.
func (r *Repo) LoadConjugations(ctx context.Context) (domain.ConjugationTable, error) {
	query, args, err := psql.
		Select("tense", "verb_class", "person_number", "suffix").
		From("conjugations").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build conjugations query: %w", err)
	}

	var rows []conjugationRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "conjugations", "")
	}

	table := make(domain.ConjugationTable)
	for _, row := range rows {
		tense := domain.Tense(row.Tense)
		if table[tense] == nil {
			table[tense] = make(map[string]map[string]string)
		}
		if table[tense][row.VerbClass] == nil {
			table[tense][row.VerbClass] = make(map[string]string)
		}
		table[tense][row.VerbClass][row.PersonNumber] = row.Suffix
	}
	return table, nil
}

// LoadSentences returns all sentences in dataset order.
func (r *Repo) LoadSentences(ctx context.Context) ([]domain.Sentence, error) {
	query, args, err := psql.
		Select(
			"text", "tense",
			"subject_form", "subject_person", "subject_number",
			"verb_root", "verb_class", "verb_meaning", "verb_form",
			"object_form", "object_root", "object_gender", "object_number",
		).
		From("sentences").
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sentences query: %w", err)
	}

	var rows []sentenceRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "sentences", "")
	}

	sentences := make([]domain.Sentence, 0, len(rows))
	for _, row := range rows {
		sentences = append(sentences, toDomainSentence(row))
	}
	return sentences, nil
}

// Load reads every table and builds a corpus.
func (r *Repo) Load(ctx context.Context) (*corpus.Corpus, error) {
	verbs, err := r.LoadVerbs(ctx)
	if err != nil {
		return nil, err
	}
	table, err := r.LoadConjugations(ctx)
	if err != nil {
		return nil, err
	}
	sentences, err := r.LoadSentences(ctx)
	if err != nil {
		return nil, err
	}
	return corpus.New(verbs, table, sentences), nil
}

func toDomainSentence(row sentenceRow) domain.Sentence {
	s := domain.Sentence{
		Text: row.Text,
		Subject: domain.Subject{
			Form:   row.SubjectForm,
			Person: domain.Person(row.SubjectPerson),
			Number: domain.Number(row.SubjectNumber),
		},
		Verb: domain.SentenceVerb{
			Root:    row.VerbRoot,
			Class:   row.VerbClass,
			Meaning: row.VerbMeaning,
			Form:    row.VerbForm,
		},
		Tense: domain.Tense(row.Tense),
	}
	if row.ObjectForm != nil {
		s.Object = &domain.Object{
			Form:   *row.ObjectForm,
			Root:   deref(row.ObjectRoot),
			Gender: deref(row.ObjectGender),
			Number: deref(row.ObjectNumber),
		}
	}
	// Rows hold the dataset text verbatim.
	return domain.NormalizeSentence(s)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
