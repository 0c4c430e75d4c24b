package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"school-assistant/internal/assistant"
	contentRepo "school-assistant/internal/content/repository"
	"school-assistant/internal/extract"
	"school-assistant/internal/gate"
	"school-assistant/internal/generation"
	"school-assistant/internal/grounding"
	"school-assistant/internal/intent"
	"school-assistant/internal/model"
	"school-assistant/internal/prompt"
	"school-assistant/internal/retrieval"
	"school-assistant/pkg/datemath"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type mockRetriever struct {
	out   model.Context
	err   error
	calls []retrieval.Request
}

func (m *mockRetriever) Retrieve(ctx context.Context, req retrieval.Request) (model.Context, error) {
	m.calls = append(m.calls, req)
	return m.out, m.err
}

type mockGenerator struct {
	text    string
	err     error
	prompts []model.Prompt
}

func (m *mockGenerator) Generate(ctx context.Context, p model.Prompt) (string, error) {
	m.prompts = append(m.prompts, p)
	return m.text, m.err
}

type mockVideos struct {
	videos []model.Video
	err    error
	opts   []contentRepo.ListVideosOptions
}

func (m *mockVideos) Search(ctx context.Context, opt contentRepo.SearchOptions) ([]model.ContentRecord, error) {
	return nil, nil
}

func (m *mockVideos) ListVideos(ctx context.Context, opt contentRepo.ListVideosOptions) ([]model.Video, error) {
	m.opts = append(m.opts, opt)
	return m.videos, m.err
}

type mockRecorder struct {
	intents  []string
	outcomes []string
}

func (m *mockRecorder) Intent(c string)          { m.intents = append(m.intents, c) }
func (m *mockRecorder) Outcome(o string)         { m.outcomes = append(m.outcomes, o) }
func (m *mockRecorder) GenerationAttempt(string) {}
func (m *mockRecorder) SourceFailure(string)     {}
func (m *mockRecorder) ContextTokens(int)        {}

// ── Test Helpers ───────────────────────────────────────────────────────────

type testEnv struct {
	uc        assistant.UseCase
	retriever *mockRetriever
	generator *mockGenerator
	videos    *mockVideos
	rec       *mockRecorder
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	parser, err := datemath.NewParser("Asia/Kolkata")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	now := time.Date(2025, time.February, 10, 9, 0, 0, 0, parser.Location())
	l := &mockLogger{}

	env := &testEnv{
		retriever: &mockRetriever{},
		generator: &mockGenerator{},
		videos:    &mockVideos{},
		rec:       &mockRecorder{},
	}
	deps := Deps{
		Classifier: intent.New(extract.New(parser), l).WithClock(func() time.Time { return now }),
		Gate:       gate.New(gate.Messages{}),
		Retriever:  env.retriever,
		Assembler:  prompt.New(prompt.Persona{Name: "Ava", SchoolName: "Greenwood"}, parser, l),
		Generator:  env.generator,
		Verifier:   grounding.New(grounding.Config{Location: parser.Location()}, l),
		Videos:     env.videos,
	}
	cfg := Config{
		FAQ: map[model.FAQTopic]assistant.FAQAnswer{
			model.FAQLocation: {Text: "We are at 12 Park Road.", AuxKind: model.AuxMap, AuxURL: "https://maps.example.org/greenwood"},
			model.FAQFees:     {Text: "Fees are listed on the website."},
		},
	}
	uc := New(deps, cfg, env.rec, l).(*implUseCase)
	uc.now = func() time.Time { return now }
	env.uc = uc
	return env
}

func student() model.Caller {
	return model.Caller{Authenticated: true, Role: model.RoleStudent, GradeLabel: "Grade 8", FirstName: "Asha"}
}

func ceContext() model.Context {
	d := time.Date(2020, time.December, 16, 0, 0, 0, 0, time.UTC)
	return model.Context{Candidates: []model.Candidate{{
		Title: "CE-1: ENGLISH: 16/12/2020",
		Date:  &d,
		Link:  "https://x/y",
		Kind:  model.CandidateCoursework,
	}}}
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestAnswer_Greeting(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		caller    model.Caller
		want      string
	}{
		{"anonymous hi", "hi", model.Anonymous(), DefaultGenericGreeting},
		{"empty", "   ", model.Anonymous(), DefaultGenericGreeting},
		{"named", "hello", student(), "Hello Asha! How can I help you today?"},
		{"unauthenticated name ignored", "hi", model.Caller{FirstName: "Asha"}, DefaultGenericGreeting},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			resp, err := env.uc.Answer(context.Background(), assistant.AnswerInput{Utterance: tt.utterance, Caller: tt.caller})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.Text != tt.want || resp.Outcome != model.OutcomeGreeting {
				t.Errorf("resp = %+v, want %q", resp, tt.want)
			}
			if len(env.generator.prompts) != 0 || len(env.retriever.calls) != 0 {
				t.Errorf("greeting touched the pipeline: %d generations, %d retrievals", len(env.generator.prompts), len(env.retriever.calls))
			}
		})
	}
}

func TestAnswer_GateRunsBeforeRetrieval(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		caller    model.Caller
		want      string
	}{
		{"anonymous coursework", "any assignments due tomorrow", model.Anonymous(), gate.DefaultSignInMessage},
		{"anonymous holidays", "holidays in october", model.Anonymous(), gate.DefaultSignInMessage},
		{"anonymous homework help", "help me with my homework", model.Anonymous(), gate.DefaultSignInMessage},
		{"unlinked teacher roster", "list of students in my class", model.Caller{Authenticated: true, Role: model.RoleTeacher}, gate.DefaultConnectMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			resp, err := env.uc.Answer(context.Background(), assistant.AnswerInput{Utterance: tt.utterance, Caller: tt.caller})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.Outcome != model.OutcomeGateTerminal || resp.Text != tt.want {
				t.Errorf("resp = %+v", resp)
			}
			if len(env.retriever.calls) != 0 {
				t.Errorf("retriever called %d times", len(env.retriever.calls))
			}
		})
	}
}

func TestAnswer_GroundedCoursework(t *testing.T) {
	env := newTestEnv(t)
	env.retriever.out = ceContext()
	env.generator.text = "You have CE-1: ENGLISH: 16/12/2020 pending. Open it here: https://x/y"

	resp, err := env.uc.Answer(context.Background(), assistant.AnswerInput{Utterance: "any assignments due tomorrow", Caller: student()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Outcome != model.OutcomeModelText || resp.Text != env.generator.text {
		t.Errorf("resp = %+v", resp)
	}
	if got := env.retriever.calls[0].Intent.Category; got != model.CategoryCoursework {
		t.Errorf("retrieval intent = %s", got)
	}
	if len(env.rec.outcomes) != 1 || env.rec.outcomes[0] != string(model.OutcomeModelText) {
		t.Errorf("outcomes = %v", env.rec.outcomes)
	}
}

func TestAnswer_FabricatedLinkFallsBack(t *testing.T) {
	env := newTestEnv(t)
	env.retriever.out = ceContext()
	env.generator.text = "Your English assignment is here: [link]"

	resp, err := env.uc.Answer(context.Background(), assistant.AnswerInput{Utterance: "any assignments due tomorrow", Caller: student()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Outcome != model.OutcomeFallbackRender {
		t.Fatalf("outcome = %s", resp.Outcome)
	}
	if !strings.Contains(resp.Text, "CE-1: ENGLISH: 16/12/2020") || !strings.Contains(resp.Text, "https://x/y") {
		t.Errorf("fallback text = %q", resp.Text)
	}
}

func TestAnswer_NothingFoundSkipsModel(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.uc.Answer(context.Background(), assistant.AnswerInput{Utterance: "latest announcements", Caller: student()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != grounding.NothingFound(model.CategoryAnnouncement) {
		t.Errorf("text = %q", resp.Text)
	}
	if len(env.generator.prompts) != 0 {
		t.Errorf("model called for an empty result")
	}
}

func TestAnswer_ExhaustedGenerationApologises(t *testing.T) {
	env := newTestEnv(t)
	env.generator.err = fmt.Errorf("%w: provider said no", generation.ErrGenerationExhausted)

	resp, err := env.uc.Answer(context.Background(), assistant.AnswerInput{Utterance: "what is photosynthesis", Caller: model.Anonymous()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Outcome != model.OutcomeApology || resp.Text != DefaultApology {
		t.Errorf("resp = %+v", resp)
	}
	if strings.Contains(resp.Text, "provider") {
		t.Errorf("provider error leaked")
	}
}

func TestAnswer_CancelledContext(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	env.generator.err = context.Canceled

	_, err := env.uc.Answer(ctx, assistant.AnswerInput{Utterance: "what is photosynthesis"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if len(env.rec.outcomes) != 0 {
		t.Errorf("outcome recorded for a cancelled request")
	}
}

func TestAnswer_Translation(t *testing.T) {
	t.Run("no prior answer asks for clarification", func(t *testing.T) {
		env := newTestEnv(t)
		resp, err := env.uc.Answer(context.Background(), assistant.AnswerInput{
			Utterance: "translate the last answer to hindi",
			History:   []model.Turn{{Role: model.TurnUser, Content: "hello"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Outcome != model.OutcomeClarification || resp.Text != DefaultClarification {
			t.Errorf("resp = %+v", resp)
		}
		if len(env.generator.prompts) != 0 {
			t.Errorf("model called without a prior answer")
		}
	})

	t.Run("prior answer is sent to the model", func(t *testing.T) {
		env := newTestEnv(t)
		env.generator.text = "आपका होमवर्क जमा करने की तारीख कल है।"
		history := []model.Turn{
			{Role: model.TurnUser, Content: "hi"},
			{Role: model.TurnAssistant, Content: "Hello! How can I help?"},
			{Role: model.TurnUser, Content: "when is my homework due"},
			{Role: model.TurnAssistant, Content: "Your homework is due tomorrow."},
		}
		resp, err := env.uc.Answer(context.Background(), assistant.AnswerInput{
			Utterance: "translate the last answer to hindi",
			History:   history,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Outcome != model.OutcomeModelText {
			t.Fatalf("outcome = %s", resp.Outcome)
		}
		p := env.generator.prompts[0]
		if len(p.History) != 3 || p.History[len(p.History)-1].Content != "Your homework is due tomorrow." {
			t.Errorf("history = %+v", p.History)
		}
	})
}

func TestAnswer_StaticFAQ(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.uc.Answer(context.Background(), assistant.AnswerInput{Utterance: "where is the school located"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Outcome != model.OutcomeStaticFAQ || resp.Text != "We are at 12 Park Road." {
		t.Errorf("resp = %+v", resp)
	}
	if resp.Aux == nil || resp.Aux.Kind != model.AuxMap || resp.Aux.URL != "https://maps.example.org/greenwood" {
		t.Errorf("aux = %+v", resp.Aux)
	}

	resp, _ = env.uc.Answer(context.Background(), assistant.AnswerInput{Utterance: "academic calendar"})
	if resp.Text != DefaultFAQFallback || resp.Aux != nil {
		t.Errorf("unconfigured topic resp = %+v", resp)
	}
	if len(env.retriever.calls) != 0 || len(env.generator.prompts) != 0 {
		t.Errorf("FAQ touched the pipeline")
	}
}

func TestAnswer_Videos(t *testing.T) {
	env := newTestEnv(t)
	env.videos.videos = []model.Video{{Title: "Science Fair 2024", URL: "https://videos.example.org/fair"}}

	resp, err := env.uc.Answer(context.Background(), assistant.AnswerInput{Utterance: "show me science experiment videos"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Outcome != model.OutcomeVideos || resp.Aux == nil || len(resp.Aux.Videos) != 1 {
		t.Fatalf("resp = %+v", resp)
	}
	if !strings.Contains(resp.Text, "https://videos.example.org/fair") {
		t.Errorf("text = %q", resp.Text)
	}
	kw := env.videos.opts[0].Keywords
	if len(kw) != 2 || kw[0] != "science" || kw[1] != "experiment" {
		t.Errorf("keywords = %v", kw)
	}

	env.videos.videos = nil
	env.videos.err = errors.New("redis down")
	resp, err = env.uc.Answer(context.Background(), assistant.AnswerInput{Utterance: "show me science experiment videos"})
	if err != nil || resp.Text != DefaultNoVideos || resp.Aux != nil {
		t.Errorf("resp = %+v, err = %v", resp, err)
	}
}

func TestAnswer_HomeworkHelpAsksForSubject(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.uc.Answer(context.Background(), assistant.AnswerInput{Utterance: "help me with my homework", Caller: student()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Outcome != model.OutcomeClarification || resp.Text != DefaultSubjectPrompt {
		t.Errorf("resp = %+v", resp)
	}
	if len(env.rec.intents) != 1 || env.rec.intents[0] != string(model.CategoryHomeworkHelpNoSubject) {
		t.Errorf("intents = %v", env.rec.intents)
	}
}
