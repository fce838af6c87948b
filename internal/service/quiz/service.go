package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/sanskrit-verbgame/internal/corpus"
	"github.com/heartmarshall/sanskrit-verbgame/internal/domain"
	"github.com/heartmarshall/sanskrit-verbgame/internal/service/quiz/distractor"
	"github.com/heartmarshall/sanskrit-verbgame/pkg/randutil"
)

// Stage is a step of quiz assembly. Failures report the last stage reached.
type Stage string

const (
	StageIdle           Stage = "idle"
	StageSentenceChosen Stage = "sentence_chosen"
	StageOptionsBuilt   Stage = "options_built"
	StageAssembled      Stage = "assembled"
	StageUnavailable    Stage = "unavailable"
)

func (s Stage) String() string { return string(s) }

// maxOptions bounds the option list: the correct form plus distractors.
const maxOptions = 1 + distractor.MaxDistractors

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service assembles quiz items from an immutable corpus. It holds no mutable
// state; Generate is safe for concurrent use.
type Service struct {
	corpus  *corpus.Corpus
	sampler *distractor.Sampler
	newRand randutil.Factory
	log     *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithRandFactory replaces the per-call random source factory.
// Tests pass randutil.Seeded for reproducible items.
func WithRandFactory(f randutil.Factory) Option {
	return func(s *Service) { s.newRand = f }
}

// NewService creates a quiz Service over c.
func NewService(log *slog.Logger, c *corpus.Corpus, opts ...Option) *Service {
	s := &Service{
		corpus:  c,
		sampler: distractor.NewSampler(log, c),
		newRand: randutil.NewPCG(),
		log:     log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate builds one quiz item from a uniformly chosen sentence.
//
// It returns domain.ErrNoDataAvailable when the corpus has no sentences; any
// other failure, panics included, is returned as a *domain.GenerationError.
func (s *Service) Generate(ctx context.Context) (item *domain.QuizItem, err error) {
	n := s.corpus.SentenceCount()
	if n == 0 {
		s.log.WarnContext(ctx, "quiz unavailable", slog.String("stage", StageUnavailable.String()))
		return nil, domain.ErrNoDataAvailable
	}

	stage := StageIdle
	defer func() {
		if r := recover(); r != nil {
			item, err = nil, s.fail(ctx, stage, fmt.Errorf("panic: %v", r))
		}
	}()

	// One generator per call; it is never shared with another goroutine.
	rng := s.newRand()

	sentence := s.corpus.Sentence(rng.IntN(n))
	stage = StageSentenceChosen

	if err := validateSentence(sentence); err != nil {
		return nil, s.fail(ctx, stage, err)
	}
	correct := sentence.Verb.Form

	blanked := Blank(sentence.Text, correct)

	res := s.sampler.Sample(distractor.Request{
		CorrectForm: correct,
		Root:        sentence.Verb.Root,
		Class:       sentence.Verb.Class,
		Tense:       sentence.Tense,
	}, rng)
	options := buildOptions(correct, res.Forms, rng)
	stage = StageOptionsBuilt

	explanation, hint := Compose(sentence, correct)
	stage = StageAssembled

	s.log.DebugContext(ctx, "quiz generated",
		slog.String("stage", stage.String()),
		slog.String("strategy", res.Strategy.String()),
		slog.Int("options", len(options)),
		slog.String("tense", sentence.Tense.String()),
	)

	return &domain.QuizItem{
		Sentence:    blanked,
		Options:     options,
		Correct:     correct,
		Explanation: explanation,
		Hint:        hint,
	}, nil
}

func (s *Service) fail(ctx context.Context, stage Stage, err error) error {
	genErr := domain.NewGenerationError(stage.String(), err)
	s.log.WarnContext(ctx, "quiz generation failed",
		slog.String("stage", stage.String()),
		slog.String("error", err.Error()),
	)
	return genErr
}

// buildOptions puts the correct form first, appends distractors up to
// maxOptions in total, then shuffles the whole list.
func buildOptions(correct string, distractors []string, rng randutil.Rand) []string {
	options := make([]string, 0, maxOptions)
	options = append(options, correct)
	options = append(options, distractors[:min(len(distractors), maxOptions-1)]...)
	randutil.Shuffle(rng, options)
	return options
}

func validateSentence(s domain.Sentence) error {
	var errs []domain.FieldError

	if strings.TrimSpace(s.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "sentence", Message: "required"})
	}
	if s.Verb.Form == "" {
		errs = append(errs, domain.FieldError{Field: "verb.form", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
