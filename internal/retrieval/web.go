package retrieval

import (
	"context"

	contentRepo "school-assistant/internal/content/repository"
	"school-assistant/internal/extract"
	"school-assistant/internal/model"
)

// topics maps the utterance to at most two cached-content topics.
func topics(in model.Intent, normalized string) []string {
	var out []string
	if in.Category == model.CategoryPersonLookup {
		out = append(out, peopleTopic)
	}
	for _, t := range topicTable {
		if len(out) >= maxTopics {
			break
		}
		if t.topic == peopleTopic && len(out) > 0 && out[0] == peopleTopic {
			continue
		}
		if t.re.MatchString(normalized) {
			out = append(out, t.topic)
		}
	}
	if len(out) == 0 {
		out = append(out, defaultTopic)
	}
	return out
}

// keywords are the content words of the utterance plus the person asked about.
func keywords(in model.Intent, normalized string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(w string) {
		if len(w) < 3 || keywordStopwords[w] || seen[w] {
			return
		}
		seen[w] = true
		out = append(out, w)
	}
	if name := in.Entities.PersonName; name != "" {
		for _, w := range extract.Tokens(extract.Normalize(name)) {
			add(w)
		}
	}
	for _, w := range extract.Tokens(normalized) {
		add(w)
	}
	return out
}

func (o *Orchestrator) web(ctx context.Context, req Request) (*section, error) {
	if o.deps.Content == nil {
		return nil, ErrSourceUnavailable
	}
	normalized := extract.Normalize(req.Utterance)
	records, err := o.deps.Content.Search(ctx, contentRepo.SearchOptions{
		Topics:   topics(req.Intent, normalized),
		Keywords: keywords(req.Intent, normalized),
		Limit:    webRecordLimit,
	})
	if err != nil {
		return nil, err
	}
	return &section{source: model.SourceContent, web: records}, nil
}
