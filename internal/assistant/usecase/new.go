package usecase

import (
	"context"
	"time"

	"school-assistant/internal/assistant"
	contentRepo "school-assistant/internal/content/repository"
	"school-assistant/internal/gate"
	"school-assistant/internal/grounding"
	"school-assistant/internal/intent"
	"school-assistant/internal/model"
	"school-assistant/internal/prompt"
	"school-assistant/internal/retrieval"
	pkgLog "school-assistant/pkg/log"
	"school-assistant/pkg/metrics"
)

// Generator produces model text for a prompt.
type Generator interface {
	Generate(ctx context.Context, p model.Prompt) (string, error)
}

// Messages are the fixed texts of the non-model terminals.
type Messages struct {
	GenericGreeting string
	// NamedGreeting takes the caller's first name as its only verb.
	NamedGreeting string
	Apology       string
	Clarification string
	SubjectPrompt string
	FAQFallback   string
	VideosHeading string
	NoVideos      string
}

// Config configures the use case.
type Config struct {
	Messages   Messages
	FAQ        map[model.FAQTopic]assistant.FAQAnswer
	VideoLimit int
}

// Deps are the pipeline stages.
type Deps struct {
	Classifier intent.Classifier
	Gate       *gate.Gate
	Retriever  retrieval.Retriever
	Assembler  prompt.Assembler
	Generator  Generator
	Verifier   *grounding.Verifier
	Videos     contentRepo.Reader
}

type implUseCase struct {
	deps Deps
	cfg  Config
	rec  metrics.Recorder
	now  func() time.Time
	l    pkgLog.Logger
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates the assistant UseCase.
func New(deps Deps, cfg Config, rec metrics.Recorder, l pkgLog.Logger) assistant.UseCase {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &implUseCase{
		deps: deps,
		cfg:  withDefaults(cfg),
		rec:  rec,
		now:  time.Now,
		l:    l,
	}
}

func withDefaults(cfg Config) Config {
	m := &cfg.Messages
	if m.GenericGreeting == "" {
		m.GenericGreeting = DefaultGenericGreeting
	}
	if m.NamedGreeting == "" {
		m.NamedGreeting = DefaultNamedGreeting
	}
	if m.Apology == "" {
		m.Apology = DefaultApology
	}
	if m.Clarification == "" {
		m.Clarification = DefaultClarification
	}
	if m.SubjectPrompt == "" {
		m.SubjectPrompt = DefaultSubjectPrompt
	}
	if m.FAQFallback == "" {
		m.FAQFallback = DefaultFAQFallback
	}
	if m.VideosHeading == "" {
		m.VideosHeading = DefaultVideosHeading
	}
	if m.NoVideos == "" {
		m.NoVideos = DefaultNoVideos
	}
	if cfg.VideoLimit <= 0 {
		cfg.VideoLimit = DefaultVideoLimit
	}
	return cfg
}
