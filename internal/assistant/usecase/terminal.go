package usecase

import (
	"context"
	"fmt"
	"strings"

	"school-assistant/internal/assistant"
	contentRepo "school-assistant/internal/content/repository"
	"school-assistant/internal/extract"
	"school-assistant/internal/model"
)

func (uc *implUseCase) greeting(caller model.Caller) model.Response {
	text := uc.cfg.Messages.GenericGreeting
	if name := strings.TrimSpace(caller.FirstName); caller.Authenticated && name != "" {
		text = fmt.Sprintf(uc.cfg.Messages.NamedGreeting, name)
	}
	return model.Response{Text: text, Outcome: model.OutcomeGreeting}
}

func (uc *implUseCase) faq(topic model.FAQTopic) model.Response {
	ans, ok := uc.cfg.FAQ[topic]
	if !ok || ans.Text == "" {
		return model.Response{Text: uc.cfg.Messages.FAQFallback, Outcome: model.OutcomeStaticFAQ}
	}

	resp := model.Response{Text: ans.Text, Outcome: model.OutcomeStaticFAQ}
	if ans.AuxKind != "" && ans.AuxURL != "" {
		resp.Aux = &model.AuxiliaryPayload{Kind: ans.AuxKind, URL: ans.AuxURL}
	}
	return resp
}

// videos lists cached video links whose titles share words with the
// utterance. The list is rendered as is; the model is not involved.
func (uc *implUseCase) videos(ctx context.Context, utterance string) (model.Response, error) {
	var found []model.Video
	if uc.deps.Videos != nil {
		var err error
		found, err = uc.deps.Videos.ListVideos(ctx, contentRepo.ListVideosOptions{
			Keywords: videoKeywords(utterance),
			Limit:    uc.cfg.VideoLimit,
		})
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return model.Response{}, ctxErr
			}
			uc.l.Warnf(ctx, "%s: %v: %v", LogPrefixVideos, assistant.ErrSourceUnavailable, err)
			found = nil
		}
	}

	if len(found) == 0 {
		return model.Response{Text: uc.cfg.Messages.NoVideos, Outcome: model.OutcomeVideos}, nil
	}

	var sb strings.Builder
	sb.WriteString(uc.cfg.Messages.VideosHeading)
	for i, v := range found {
		fmt.Fprintf(&sb, "\n\n%d. %s\n   %s", i+1, v.Title, v.URL)
	}
	return model.Response{
		Text:    sb.String(),
		Aux:     &model.AuxiliaryPayload{Kind: model.AuxVideos, Videos: found},
		Outcome: model.OutcomeVideos,
	}, nil
}

func videoKeywords(utterance string) []string {
	var out []string
	for _, w := range extract.Tokens(extract.Normalize(utterance)) {
		if len(w) > 1 && !videoStopwords[w] {
			out = append(out, w)
		}
	}
	return out
}
