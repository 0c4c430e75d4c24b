package assistant

import (
	"context"

	"school-assistant/internal/model"
)

// UseCase answers one utterance end to end.
type UseCase interface {
	// Answer always yields a Response unless ctx is cancelled.
	Answer(ctx context.Context, input AnswerInput) (model.Response, error)
}
