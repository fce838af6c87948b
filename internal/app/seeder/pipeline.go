package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/heartmarshall/sanskrit-verbgame/internal/domain"
)

// Phase names in canonical execution order.
const (
	PhaseVerbs        = "verbs"
	PhaseConjugations = "conjugations"
	PhaseSentences    = "sentences"
)

var allPhases = []string{PhaseVerbs, PhaseConjugations, PhaseSentences}

const defaultBatchSize = 500

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Read     int
	Inserted int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline orchestrates the seeding phases.
type Pipeline struct {
	log     *slog.Logger
	repo    CorpusBulkRepo
	src     DatasetSource
	tx      TxRunner
	cfg     Config
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo CorpusBulkRepo, src DatasetSource, tx TxRunner, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		repo:    repo,
		src:     src,
		tx:      tx,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase failed.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run, still in canonical order.
//
// With Replace the tables are truncated and every phase runs inside one
// transaction; any phase failure rolls the whole run back.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun, err := selectPhases(phases)
	if err != nil {
		return err
	}

	if !p.cfg.Replace || p.cfg.DryRun {
		p.runPhases(ctx, toRun)
		p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
		return nil
	}

	if len(toRun) != len(allPhases) {
		return fmt.Errorf("replace requires all phases, got %v", toRun)
	}
	if p.tx == nil {
		return errors.New("replace requires a transaction runner")
	}

	err = p.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := p.repo.Truncate(txCtx); err != nil {
			return fmt.Errorf("truncate corpus: %w", err)
		}
		p.log.Info("corpus tables truncated")

		p.runPhases(txCtx, toRun)
		if p.HasErrors() {
			return errors.New("phase failed, rolling back")
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace corpus: %w", err)
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)), slog.Bool("replaced", true))
	return nil
}

func selectPhases(phases []string) ([]string, error) {
	if len(phases) == 0 {
		return allPhases, nil
	}

	filter := make(map[string]bool, len(phases))
	for _, ph := range phases {
		if !slices.Contains(allPhases, ph) {
			return nil, fmt.Errorf("unknown phase %q (known: %v)", ph, allPhases)
		}
		filter[ph] = true
	}

	var filtered []string
	for _, ph := range allPhases {
		if filter[ph] {
			filtered = append(filtered, ph)
		}
	}
	return filtered, nil
}

func (p *Pipeline) runPhases(ctx context.Context, phases []string) {
	for _, phase := range phases {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case PhaseVerbs:
			result = p.runVerbs(ctx)
		case PhaseConjugations:
			result = p.runConjugations(ctx)
		case PhaseSentences:
			result = p.runSentences(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			continue
		}
		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("read", result.Read),
			slog.Int("inserted", result.Inserted),
			slog.Int("skipped", result.Skipped),
			slog.Duration("duration", result.Duration),
		)
	}
}

func (p *Pipeline) runVerbs(ctx context.Context) PhaseResult {
	verbs, err := p.src.LoadVerbs(ctx)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("read verbs: %w", err)}
	}
	if p.cfg.DryRun {
		return PhaseResult{Read: len(verbs), Skipped: len(verbs)}
	}

	inserted, err := batchProcess(verbs, p.cfg.BatchSize, func(batch []domain.VerbEntry) (int, error) {
		return p.repo.BulkInsertVerbs(ctx, batch)
	})
	if err != nil {
		return PhaseResult{Read: len(verbs), Inserted: inserted, Err: fmt.Errorf("insert verbs: %w", err)}
	}
	return PhaseResult{Read: len(verbs), Inserted: inserted, Skipped: len(verbs) - inserted}
}

func (p *Pipeline) runConjugations(ctx context.Context) PhaseResult {
	table, err := p.src.LoadConjugations(ctx)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("read conjugations: %w", err)}
	}

	paradigms := splitTable(table)
	total := 0
	for _, pt := range paradigms {
		total += suffixCount(pt)
	}
	if p.cfg.DryRun {
		return PhaseResult{Read: total, Skipped: total}
	}

	// One paradigm has at most nine suffixes, so batches are sized in paradigms.
	batchSize := max(1, p.cfg.BatchSize/len(domain.Paradigm))
	inserted, err := batchProcess(paradigms, batchSize, func(batch []domain.ConjugationTable) (int, error) {
		return p.repo.BulkInsertConjugations(ctx, mergeTables(batch))
	})
	if err != nil {
		return PhaseResult{Read: total, Inserted: inserted, Err: fmt.Errorf("insert conjugations: %w", err)}
	}
	return PhaseResult{Read: total, Inserted: inserted, Skipped: total - inserted}
}

func (p *Pipeline) runSentences(ctx context.Context) PhaseResult {
	sentences, err := p.src.LoadSentences(ctx)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("read sentences: %w", err)}
	}
	if p.cfg.DryRun {
		return PhaseResult{Read: len(sentences), Skipped: len(sentences)}
	}

	offset := 0
	inserted, err := batchProcess(sentences, p.cfg.BatchSize, func(batch []domain.Sentence) (int, error) {
		n, err := p.repo.BulkInsertSentences(ctx, offset, batch)
		offset += len(batch)
		return n, err
	})
	if err != nil {
		return PhaseResult{Read: len(sentences), Inserted: inserted, Err: fmt.Errorf("insert sentences: %w", err)}
	}
	return PhaseResult{Read: len(sentences), Inserted: inserted, Skipped: len(sentences) - inserted}
}

// splitTable returns one single-paradigm table per (tense, class), sorted.
func splitTable(table domain.ConjugationTable) []domain.ConjugationTable {
	var out []domain.ConjugationTable
	for _, tense := range slices.Sorted(maps.Keys(table)) {
		for _, class := range slices.Sorted(maps.Keys(table[tense])) {
			out = append(out, domain.ConjugationTable{
				tense: {class: table[tense][class]},
			})
		}
	}
	return out
}

func mergeTables(tables []domain.ConjugationTable) domain.ConjugationTable {
	merged := make(domain.ConjugationTable)
	for _, t := range tables {
		for tense, classes := range t {
			if merged[tense] == nil {
				merged[tense] = make(map[string]map[string]string)
			}
			maps.Copy(merged[tense], classes)
		}
	}
	return merged
}

func suffixCount(table domain.ConjugationTable) int {
	n := 0
	for _, classes := range table {
		for _, suffixes := range classes {
			n += len(suffixes)
		}
	}
	return n
}

// batchProcess splits items into chunks of batchSize and calls fn for each
// chunk. It stops at the first error and returns the count so far.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
