package grounding

import (
	"fmt"
	"strings"

	"school-assistant/internal/model"
)

// Render formats candidates without the model: a heading, then one block per
// candidate with title, optional description, date and link. Equal input
// always yields byte-identical output.
func (v *Verifier) Render(category model.Category, candidates []model.Candidate) string {
	if len(candidates) == 0 {
		return NothingFound(category)
	}

	heading, ok := headings[category]
	if !ok {
		heading = defaultHeading
	}

	var sb strings.Builder
	sb.WriteString(heading)
	for i, c := range candidates {
		sb.WriteString("\n\n")
		fmt.Fprintf(&sb, "%d. %s", i+1, strings.TrimSpace(c.Title))
		if c.Course != "" {
			fmt.Fprintf(&sb, " (%s)", c.Course)
		}
		if d := shorten(c.Description); d != "" {
			sb.WriteString("\n   ")
			sb.WriteString(d)
		}
		if c.Date != nil && !c.Date.IsZero() {
			sb.WriteString("\n   Date: ")
			sb.WriteString(c.Date.In(v.loc).Format(dateLayout))
		}
		if c.Link != "" {
			sb.WriteString("\n   Link: ")
			sb.WriteString(c.Link)
		}
	}
	return sb.String()
}

// NothingFound is the fixed answer for a data question with no records.
func NothingFound(category model.Category) string {
	if s, ok := nothingFound[category]; ok {
		return s
	}
	return defaultNothingFound
}

func shorten(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= maxDescriptionRunes {
		return s
	}
	return strings.TrimSpace(string(r[:maxDescriptionRunes])) + "…"
}
