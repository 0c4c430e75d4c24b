package prompt

import (
	"context"

	"school-assistant/internal/model"
	"school-assistant/pkg/datemath"
	"school-assistant/pkg/log"
)

// Persona is the configured identity of the assistant.
type Persona struct {
	Name            string
	SchoolName      string
	Facts           []string
	Tone            string
	FormattingRules []string
}

// Assembler builds prompts for one school.
type Assembler interface {
	Assemble(ctx context.Context, in Input) (model.Prompt, error)
}

type implAssembler struct {
	persona Persona
	dates   *datemath.Parser
	l       log.Logger
}

// New creates an Assembler.
func New(persona Persona, dates *datemath.Parser, l log.Logger) Assembler {
	return &implAssembler{persona: persona, dates: dates, l: l}
}
