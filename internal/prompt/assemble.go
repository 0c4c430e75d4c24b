package prompt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"school-assistant/internal/model"
)

// Input is everything a prompt is built from.
type Input struct {
	Intent    model.Intent
	Caller    model.Caller
	Context   model.Context
	History   []model.Turn
	Utterance string
	Now       time.Time
}

func (a *implAssembler) Assemble(ctx context.Context, in Input) (model.Prompt, error) {
	history, err := window(in.Intent.Category, in.History)
	if err != nil {
		return model.Prompt{}, err
	}

	var sb strings.Builder
	a.writePersona(&sb)
	sb.WriteString("\n\n")
	writePersonalization(&sb, in.Caller)
	sb.WriteString("\n\n")
	sb.WriteString(a.timeContext(in.Now))
	if d := directive(in.Intent); d != "" {
		sb.WriteString("\n\n[INSTRUCTIONS]\n")
		sb.WriteString(d)
	}

	p := model.Prompt{
		System:    sb.String(),
		Context:   serialize(in.Context),
		History:   history,
		Utterance: in.Utterance,
	}
	a.l.Debugf(ctx, "%s: category=%s history=%d context_chars=%d",
		LogPrefixAssemble, in.Intent.Category, len(history), len(p.Context))
	return p, nil
}

func (a *implAssembler) writePersona(sb *strings.Builder) {
	name := a.persona.Name
	if name == "" {
		name = "the school assistant"
	}
	if a.persona.SchoolName != "" {
		fmt.Fprintf(sb, "You are %s, the virtual assistant of %s.", name, a.persona.SchoolName)
	} else {
		fmt.Fprintf(sb, "You are %s.", name)
	}
	if a.persona.Tone != "" {
		fmt.Fprintf(sb, " Your tone is %s.", a.persona.Tone)
	}
	if len(a.persona.Facts) > 0 {
		sb.WriteString("\n\n[SCHOOL FACTS]")
		for _, f := range a.persona.Facts {
			sb.WriteString("\n- ")
			sb.WriteString(f)
		}
	}
	if len(a.persona.FormattingRules) > 0 {
		sb.WriteString("\n\n[FORMATTING]")
		for _, r := range a.persona.FormattingRules {
			sb.WriteString("\n- ")
			sb.WriteString(r)
		}
	}
}

func writePersonalization(sb *strings.Builder, c model.Caller) {
	sb.WriteString("[USER]\n")
	if !c.Authenticated {
		sb.WriteString("The user is not signed in.")
		return
	}
	who := "The user"
	if c.FirstName != "" {
		who = "The user, " + c.FirstName + ","
	}
	switch c.Role {
	case model.RoleStudent:
		if c.GradeLabel != "" {
			fmt.Fprintf(sb, "%s is a student in %s.", who, c.GradeLabel)
		} else {
			fmt.Fprintf(sb, "%s is a student.", who)
		}
	case model.RoleTeacher:
		if c.Department != "" {
			fmt.Fprintf(sb, "%s is a teacher in the %s department.", who, c.Department)
		} else {
			fmt.Fprintf(sb, "%s is a teacher.", who)
		}
	case model.RoleParent:
		fmt.Fprintf(sb, "%s is a parent.", who)
	default:
		fmt.Fprintf(sb, "%s is signed in.", who)
	}
	if c.FirstName != "" {
		sb.WriteString(" Address them by first name when it feels natural.")
	}
}

func (a *implAssembler) timeContext(now time.Time) string {
	if now.IsZero() {
		now = time.Now()
	}
	now = now.In(a.dates.Location())
	weekStart, weekEnd := a.dates.Week(now)
	return fmt.Sprintf(TimeContextTemplate,
		now.Format(DateFormatISO),
		now.Weekday().String(),
		weekStart.Format(DateFormatISO),
		weekEnd.Format(DateFormatISO),
		now.AddDate(0, 0, 1).Format(DateFormatISO),
	)
}

func directive(in model.Intent) string {
	d, ok := directives[in.Category]
	if !ok {
		return ""
	}
	if in.Category == model.CategoryTranslation {
		lang := in.TargetLanguage
		if lang == "" {
			lang = defaultTargetLanguage
		}
		return fmt.Sprintf(d, lang)
	}
	return d
}

// window picks the history messages sent with the prompt.
func window(category model.Category, history []model.Turn) ([]model.Turn, error) {
	switch {
	case category.IsDataGrounded():
		return nil, nil
	case category == model.CategoryTranslation:
		last := -1
		for i := len(history) - 1; i >= 0; i-- {
			if history[i].Role == model.TurnAssistant && strings.TrimSpace(history[i].Content) != "" {
				last = i
				break
			}
		}
		if last < 0 {
			return nil, ErrNoPriorAnswer
		}
		start := max(len(history)-TranslationHistory, 0)
		if last < start {
			start = last
		}
		end := min(start+TranslationHistory, len(history))
		return history[start:end], nil
	}
	if len(history) <= DefaultHistory {
		return history, nil
	}
	return history[len(history)-DefaultHistory:], nil
}

// serialize renders each non-empty context section as a labelled JSON block.
func serialize(c model.Context) string {
	var sb strings.Builder
	section := func(label string, v any) {
		data, err := json.Marshal(v)
		if err != nil {
			return
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(label)
		sb.WriteString(":\n")
		sb.Write(data)
	}
	if len(c.Courses) > 0 {
		section("COURSES", c.Courses)
	}
	if len(c.Events) > 0 {
		section("EVENTS", c.Events)
	}
	if c.WebHint != "" {
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString("PAGE:\n")
		sb.WriteString(c.WebHint)
	}
	if len(c.Web) > 0 {
		section("WEB", c.Web)
	}
	if len(c.Exams) > 0 {
		section("EXAMS", c.Exams)
	}
	if sb.Len() == 0 {
		return ""
	}
	return "[CONTEXT]\n" + sb.String()
}
