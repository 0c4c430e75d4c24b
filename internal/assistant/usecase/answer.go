package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"school-assistant/internal/assistant"
	"school-assistant/internal/grounding"
	"school-assistant/internal/model"
	"school-assistant/internal/prompt"
	"school-assistant/internal/retrieval"
)

func (uc *implUseCase) Answer(ctx context.Context, in assistant.AnswerInput) (model.Response, error) {
	now := uc.now()

	var it model.Intent
	if strings.TrimSpace(in.Utterance) == "" {
		uc.l.Debugf(ctx, "%s: %v, routing to greeting", LogPrefixAnswer, assistant.ErrValidationEmpty)
		it = model.Intent{Category: model.CategoryGreeting}
	} else {
		it = uc.deps.Classifier.Classify(ctx, in.Utterance)
	}
	uc.rec.Intent(string(it.Category))

	resp, err := uc.resolve(ctx, it, in, now)
	if err != nil {
		return model.Response{}, err
	}
	uc.rec.Outcome(string(resp.Outcome))
	return resp, nil
}

func (uc *implUseCase) resolve(ctx context.Context, it model.Intent, in assistant.AnswerInput, now time.Time) (model.Response, error) {
	if err := uc.deps.Gate.Check(in.Caller, it); err != nil {
		uc.l.Infof(ctx, "%s: %v", LogPrefixAnswer, fmt.Errorf("%w: %v", assistant.ErrAuthorizationRequired, err))
		return model.Response{Text: uc.deps.Gate.Message(err), Outcome: model.OutcomeGateTerminal}, nil
	}

	switch it.Category {
	case model.CategoryGreeting:
		return uc.greeting(in.Caller), nil
	case model.CategoryStaticFAQ:
		return uc.faq(it.FAQTopic), nil
	case model.CategoryVideo:
		return uc.videos(ctx, in.Utterance)
	case model.CategoryHomeworkHelpNoSubject:
		return model.Response{Text: uc.cfg.Messages.SubjectPrompt, Outcome: model.OutcomeClarification}, nil
	}

	return uc.synthesize(ctx, it, in, now)
}

// synthesize runs retrieval, prompt assembly, generation and grounding.
func (uc *implUseCase) synthesize(ctx context.Context, it model.Intent, in assistant.AnswerInput, now time.Time) (model.Response, error) {
	retrieved, err := uc.deps.Retriever.Retrieve(ctx, retrieval.Request{
		Intent:            it,
		Caller:            in.Caller,
		Utterance:         in.Utterance,
		CachedContentHint: in.CachedContentHint,
		Now:               now,
	})
	if err != nil {
		return model.Response{}, err
	}

	if it.Category.IsDataGrounded() && len(retrieved.Candidates) == 0 {
		return model.Response{Text: grounding.NothingFound(it.Category), Outcome: model.OutcomeFallbackRender}, nil
	}

	p, err := uc.deps.Assembler.Assemble(ctx, prompt.Input{
		Intent:    it,
		Caller:    in.Caller,
		Context:   retrieved,
		History:   in.History,
		Utterance: in.Utterance,
		Now:       now,
	})
	if err != nil {
		if errors.Is(err, prompt.ErrNoPriorAnswer) {
			return model.Response{Text: uc.cfg.Messages.Clarification, Outcome: model.OutcomeClarification}, nil
		}
		uc.l.Errorf(ctx, "%s: assemble: %v", LogPrefixAnswer, err)
		return uc.apology(), nil
	}

	text, err := uc.deps.Generator.Generate(ctx, p)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return model.Response{}, ctxErr
		}
		uc.l.Warnf(ctx, "%s: %v", LogPrefixAnswer, err)
		return uc.apology(), nil
	}

	return uc.deps.Verifier.Finalize(ctx, it.Category, text, retrieved.Candidates), nil
}

func (uc *implUseCase) apology() model.Response {
	return model.Response{Text: uc.cfg.Messages.Apology, Outcome: model.OutcomeApology}
}
