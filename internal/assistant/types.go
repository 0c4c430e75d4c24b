package assistant

import "school-assistant/internal/model"

// AnswerInput is one inbound chat request.
type AnswerInput struct {
	Utterance         string
	Caller            model.Caller
	History           []model.Turn
	CachedContentHint string
}

// FAQAnswer is a configured canned answer, optionally with a map or
// calendar link attached.
type FAQAnswer struct {
	Text    string
	AuxKind model.AuxKind
	AuxURL  string
}
