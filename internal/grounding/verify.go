package grounding

import (
	"fmt"
	"strings"

	"school-assistant/internal/model"
)

// Verify checks model text against the candidates it was given. It fails
// when no candidate title appears in the text, when the text carries a
// placeholder link or a made-up topic phrase, or when it cites a URL that is
// neither a candidate link nor an allowed prefix.
func (v *Verifier) Verify(text string, candidates []model.Candidate) error {
	folded := fold(text)

	found := false
	for _, c := range candidates {
		if t := fold(c.Title); t != "" && strings.Contains(folded, t) {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: no candidate title cited", ErrGroundingViolation)
	}

	if m := placeholderLinkRe.FindString(text); m != "" {
		return fmt.Errorf("%w: placeholder link %q", ErrGroundingViolation, m)
	}

	for _, m := range syntheticTopicRe.FindAllString(text, -1) {
		if !mentionedByCandidate(fold(m), candidates) {
			return fmt.Errorf("%w: synthetic phrase %q", ErrGroundingViolation, m)
		}
	}

	links := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if c.Link != "" {
			links[trimURL(c.Link)] = true
		}
	}
	for _, u := range urlRe.FindAllString(text, -1) {
		u = trimURL(u)
		if links[u] || v.allowed(u) {
			continue
		}
		return fmt.Errorf("%w: unknown link %q", ErrGroundingViolation, u)
	}
	return nil
}

func (v *Verifier) allowed(u string) bool {
	for _, p := range v.allowedURLs {
		if p != "" && strings.HasPrefix(u, p) {
			return true
		}
	}
	return false
}

func mentionedByCandidate(phrase string, candidates []model.Candidate) bool {
	for _, c := range candidates {
		if strings.Contains(fold(c.Title), phrase) || strings.Contains(fold(c.Description), phrase) {
			return true
		}
	}
	return false
}

// fold lower-cases and collapses whitespace so line wrapping and case do not
// hide a verbatim citation.
func fold(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func trimURL(u string) string {
	return strings.TrimRight(u, ".,;:!?*_")
}
