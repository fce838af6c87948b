// Package distractor produces wrong-but-plausible answer options for a verb form.
//
// Two strategies run as an ordered fallback chain: morphological synthesis across
// the verb's paradigm, then sampling verb forms from other corpus sentences.
// The first strategy that succeeds supplies all distractors of a call; results
// of different strategies are never merged.
package distractor

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/sanskrit-verbgame/internal/corpus"
	"github.com/heartmarshall/sanskrit-verbgame/internal/domain"
	"github.com/heartmarshall/sanskrit-verbgame/internal/service/quiz/morph"
	"github.com/heartmarshall/sanskrit-verbgame/pkg/randutil"
)

const (
	// MaxDistractors caps the number of wrong options per question.
	MaxDistractors = 3
	// FallbackSentences is how many sentences the corpus strategy draws from.
	FallbackSentences = 10
)

// Strategy names the source of a distractor set.
type Strategy string

const (
	StrategyMorphological Strategy = "morphological"
	StrategyCorpus        Strategy = "corpus"
	StrategyNone          Strategy = "none"
)

func (s Strategy) String() string { return string(s) }

var (
	ErrNoConjugations = errors.New("conjugation table is empty")
	ErrNoVerbs        = errors.New("verb list is empty")
	ErrNoParadigm     = errors.New("no paradigm for tense and class")
)

// Request describes the question the distractors are built for.
type Request struct {
	CorrectForm string
	Root        string
	Class       string
	Tense       domain.Tense
}

// Result is the outcome of one Sample call.
type Result struct {
	Forms    []string
	Strategy Strategy
	// FallbackReason holds why earlier strategies in the chain were skipped.
	FallbackReason error
}

// strategy is one link of the fallback chain. A non-nil error hands over to the next link.
type strategy interface {
	Name() Strategy
	Distractors(req Request, rng randutil.Rand) ([]string, error)
}

// Sampler runs the strategy chain.
type Sampler struct {
	chain []strategy
	log   *slog.Logger
}

// NewSampler creates a Sampler over c with the morphological strategy first
// and corpus sampling as fallback.
func NewSampler(log *slog.Logger, c *corpus.Corpus) *Sampler {
	return &Sampler{
		chain: []strategy{NewMorphological(c), NewCorpusSampling(c)},
		log:   log,
	}
}

// Sample returns up to MaxDistractors forms, none equal to req.CorrectForm.
// It never fails: if every strategy errors the result is empty.
func (s *Sampler) Sample(req Request, rng randutil.Rand) Result {
	var reasons []error
	for _, st := range s.chain {
		forms, err := run(st, req, rng)
		if err == nil {
			return Result{Forms: forms, Strategy: st.Name(), FallbackReason: errors.Join(reasons...)}
		}
		s.log.Debug("distractor strategy unavailable",
			slog.String("strategy", st.Name().String()),
			slog.String("root", req.Root),
			slog.String("class", req.Class),
			slog.String("tense", req.Tense.String()),
			slog.String("reason", err.Error()),
		)
		reasons = append(reasons, fmt.Errorf("%s: %w", st.Name(), err))
	}
	return Result{Strategy: StrategyNone, FallbackReason: errors.Join(reasons...)}
}

// run calls st and converts a panic into an error so the chain can continue.
func run(st strategy, req Request, rng randutil.Rand) (forms []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			forms, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	return st.Distractors(req, rng)
}

// Morphological synthesizes every form of the verb's paradigm for the tense and
// draws from those that differ from the correct form.
type Morphological struct {
	corpus *corpus.Corpus
}

// NewMorphological creates the synthesis strategy over c.
func NewMorphological(c *corpus.Corpus) Morphological { return Morphological{corpus: c} }

func (Morphological) Name() Strategy { return StrategyMorphological }

// Distractors fails when conjugation or verb data is missing. A verb absent
// from the verb list is conjugated from its bare root.
func (m Morphological) Distractors(req Request, rng randutil.Rand) ([]string, error) {
	if !m.corpus.HasConjugations() {
		return nil, ErrNoConjugations
	}
	if !m.corpus.HasVerbs() {
		return nil, ErrNoVerbs
	}
	slots := m.corpus.Paradigm(req.Tense, req.Class)
	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: %s/%s", ErrNoParadigm, req.Tense, req.Class)
	}

	entry, ok := m.corpus.FindVerb(req.Root, req.Class)
	if !ok {
		entry = domain.VerbEntry{Root: req.Root, Class: req.Class}
	}

	// Equal surface forms from different slots are kept as separate candidates.
	var candidates []string
	for _, f := range morph.Conjugate(entry, req.Tense, slots) {
		if f.Surface != req.CorrectForm {
			candidates = append(candidates, f.Surface)
		}
	}
	return randutil.Sample(rng, candidates, MaxDistractors), nil
}

// CorpusSampling takes verb forms from randomly drawn corpus sentences.
type CorpusSampling struct {
	corpus *corpus.Corpus
}

// NewCorpusSampling creates the corpus strategy over c.
func NewCorpusSampling(c *corpus.Corpus) CorpusSampling { return CorpusSampling{corpus: c} }

func (CorpusSampling) Name() Strategy { return StrategyCorpus }

// Distractors draws up to FallbackSentences distinct sentences and then up to
// MaxDistractors of their verb forms that differ from the correct form.
func (cs CorpusSampling) Distractors(req Request, rng randutil.Rand) ([]string, error) {
	n := cs.corpus.SentenceCount()
	k := min(FallbackSentences, n)
	if k == 0 {
		return nil, nil
	}

	var wrong []string
	for _, ix := range rng.Perm(n)[:k] {
		if form := cs.corpus.Sentence(ix).Verb.Form; form != req.CorrectForm {
			wrong = append(wrong, form)
		}
	}
	return randutil.Sample(rng, wrong, MaxDistractors), nil
}
