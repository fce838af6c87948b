// Package dataset loads the verb, conjugation and sentence corpora from JSON
// files on disk.
package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/sanskrit-verbgame/internal/config"
	"github.com/heartmarshall/sanskrit-verbgame/internal/corpus"
	"github.com/heartmarshall/sanskrit-verbgame/internal/domain"
)

// Loader resolves dataset files through an ordered list of directories.
type Loader struct {
	dirs  []string
	files map[string]string
	log   *slog.Logger
}

// NewLoader creates a Loader from corpus configuration.
func NewLoader(log *slog.Logger, cfg config.CorpusConfig) *Loader {
	return &Loader{
		dirs: cfg.Dirs(),
		files: map[string]string{
			Verbs:        cfg.VerbsFile,
			Conjugations: cfg.ConjugationsFile,
			Sentences:    cfg.SentencesFile,
		},
		log: log,
	}
}

// Resolve returns the first existing path for the named dataset.
func (l *Loader) Resolve(name string) (string, error) {
	file, ok := l.files[name]
	if !ok {
		return "", fmt.Errorf("unknown dataset %q", name)
	}
	for _, dir := range l.dirs {
		path := filepath.Join(dir, file)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}
	return "", fmt.Errorf("dataset %s: %s not found in %v: %w", name, file, l.dirs, domain.ErrNotFound)
}

// Load reads all three datasets concurrently and builds a corpus.
//
// A dataset that is missing or fails validation is logged and left empty so
// the service can still start. Entries that fail their record schema are
// skipped and counted. Only context cancellation is returned as an error.
func (l *Loader) Load(ctx context.Context) (*corpus.Corpus, error) {
	var (
		verbs     []domain.VerbEntry
		table     domain.ConjugationTable
		sentences []domain.Sentence

		skippedVerbs, skippedSentences int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, n, err := l.loadVerbs(gctx)
		verbs, skippedVerbs = v, n
		return l.degrade(gctx, Verbs, err)
	})
	g.Go(func() error {
		t, err := l.LoadConjugations(gctx)
		table = t
		return l.degrade(gctx, Conjugations, err)
	})
	g.Go(func() error {
		s, n, err := l.loadSentences(gctx)
		sentences, skippedSentences = s, n
		return l.degrade(gctx, Sentences, err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := corpus.New(verbs, table, sentences)
	stats := c.Stats()
	l.log.InfoContext(ctx, "corpus loaded",
		slog.Int("verbs", stats.Verbs),
		slog.Int("sentences", stats.Sentences),
		slog.Int("paradigms", stats.Paradigms),
		slog.Int("malformed_keys", stats.MalformedKeys),
		slog.Int("skipped_records", skippedVerbs+skippedSentences),
		slog.Any("tenses", stats.Tenses),
	)
	return c, nil
}

func (l *Loader) degrade(ctx context.Context, name string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	l.log.WarnContext(ctx, "dataset unavailable, continuing without it",
		slog.String("dataset", name),
		slog.String("error", err.Error()),
	)
	return nil
}

// LoadVerbs reads verbs.json. The file maps a verb class to its verb list;
// the class is copied onto every entry.
func (l *Loader) LoadVerbs(ctx context.Context) ([]domain.VerbEntry, error) {
	verbs, _, err := l.loadVerbs(ctx)
	return verbs, err
}

func (l *Loader) loadVerbs(ctx context.Context) ([]domain.VerbEntry, int, error) {
	raw, err := l.read(ctx, Verbs)
	if err != nil {
		return nil, 0, err
	}
	verbs, skipped, err := ParseVerbs(raw)
	if err != nil {
		return nil, 0, err
	}
	l.logSkipped(ctx, Verbs, skipped)
	return verbs, len(skipped), nil
}

// LoadConjugations reads conjugations.json.
func (l *Loader) LoadConjugations(ctx context.Context) (domain.ConjugationTable, error) {
	raw, err := l.read(ctx, Conjugations)
	if err != nil {
		return nil, err
	}
	var table domain.ConjugationTable
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("dataset %s: decode: %w", Conjugations, err)
	}
	for _, classes := range table {
		for _, suffixes := range classes {
			for key, suffix := range suffixes {
				suffixes[key] = domain.NormalizeText(suffix)
			}
		}
	}
	return table, nil
}

// LoadSentences reads sentences.json. Text fields are NFC-normalized so the
// verb form and its token in the sentence compare byte for byte.
func (l *Loader) LoadSentences(ctx context.Context) ([]domain.Sentence, error) {
	sentences, _, err := l.loadSentences(ctx)
	return sentences, err
}

func (l *Loader) loadSentences(ctx context.Context) ([]domain.Sentence, int, error) {
	raw, err := l.read(ctx, Sentences)
	if err != nil {
		return nil, 0, err
	}
	sentences, skipped, err := ParseSentences(raw)
	if err != nil {
		return nil, 0, err
	}
	l.logSkipped(ctx, Sentences, skipped)
	return sentences, len(skipped), nil
}

func (l *Loader) logSkipped(ctx context.Context, name string, skipped []SkippedRecord) {
	if len(skipped) == 0 {
		return
	}
	l.log.WarnContext(ctx, "dataset records skipped",
		slog.String("dataset", name),
		slog.Int("skipped", len(skipped)),
		slog.String("first", skipped[0].Location),
		slog.String("error", skipped[0].Err.Error()),
	)
}

func (l *Loader) read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := l.Resolve(name)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: read %s: %w", name, path, err)
	}
	if err := Validate(name, raw); err != nil {
		return nil, fmt.Errorf("dataset %s: %s: %w", name, path, err)
	}

	l.log.DebugContext(ctx, "dataset file resolved",
		slog.String("dataset", name),
		slog.String("path", path),
		slog.Int("bytes", len(raw)),
	)
	return raw, nil
}

// SkippedRecord is a dataset entry dropped because it failed its record schema.
type SkippedRecord struct {
	Location string // JSON pointer into the file, e.g. "/3" or "/1P/verbs/0"
	Err      error
}

type verbGroup struct {
	Verbs []json.RawMessage `json:"verbs"`
}

// ParseVerbs decodes the class-grouped verbs document. Classes are visited in
// sorted order so the result is stable. Invalid entries are returned as skipped.
func ParseVerbs(raw []byte) ([]domain.VerbEntry, []SkippedRecord, error) {
	var groups map[string]verbGroup
	if err := json.Unmarshal(raw, &groups); err != nil {
		return nil, nil, fmt.Errorf("dataset %s: decode: %w", Verbs, err)
	}

	var (
		verbs   []domain.VerbEntry
		skipped []SkippedRecord
	)
	for _, class := range slices.Sorted(maps.Keys(groups)) {
		for i, rec := range groups[class].Verbs {
			var v domain.VerbEntry
			if err := decodeRecord(Verbs, rec, &v); err != nil {
				skipped = append(skipped, SkippedRecord{
					Location: fmt.Sprintf("/%s/verbs/%d", class, i),
					Err:      err,
				})
				continue
			}
			v.Class = class
			verbs = append(verbs, domain.NormalizeVerb(v))
		}
	}
	return verbs, skipped, nil
}

// ParseSentences decodes the sentences array, normalizing every kept entry.
// Invalid entries are returned as skipped.
func ParseSentences(raw []byte) ([]domain.Sentence, []SkippedRecord, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, nil, fmt.Errorf("dataset %s: decode: %w", Sentences, err)
	}

	sentences := make([]domain.Sentence, 0, len(records))
	var skipped []SkippedRecord
	for i, rec := range records {
		var s domain.Sentence
		if err := decodeRecord(Sentences, rec, &s); err != nil {
			skipped = append(skipped, SkippedRecord{Location: fmt.Sprintf("/%d", i), Err: err})
			continue
		}
		sentences = append(sentences, domain.NormalizeSentence(s))
	}
	return sentences, skipped, nil
}

func decodeRecord(name string, rec json.RawMessage, dst any) error {
	if err := ValidateRecord(name, rec); err != nil {
		return err
	}
	if err := json.Unmarshal(rec, dst); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
