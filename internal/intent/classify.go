package intent

import (
	"context"

	"school-assistant/internal/extract"
	"school-assistant/internal/model"
)

// features are computed once per utterance and shared by every rule.
type features struct {
	text     string
	tokens   []string
	entities model.EntitySet
}

type rule struct {
	name  string
	match func(f features) bool
	build func(f features) model.Intent
}

// Classify determines the intent of utterance.
func (c *RuleClassifier) Classify(ctx context.Context, utterance string) model.Intent {
	text := extract.Normalize(utterance)
	f := features{
		text:     text,
		tokens:   extract.Tokens(text),
		entities: c.extractor.Extract(utterance, c.now()),
	}

	for _, r := range c.rules {
		if !r.match(f) {
			continue
		}
		out := r.build(f)
		out.Entities = f.entities
		c.l.Infof(ctx, "%s: rule=%s category=%s", LogPrefixClassify, r.name, out.Category)
		return out
	}

	// The last rule always matches; this is unreachable with defaultRules.
	return model.Intent{Category: model.CategoryGeneral, Entities: f.entities}
}

func defaultRules() []rule {
	return []rule{
		{name: RuleGreeting, match: isGreeting, build: only(model.CategoryGreeting)},
		{name: RuleTranslation, match: isTranslation, build: buildTranslation},
		{name: RuleExam, match: isExam, build: only(model.CategoryExamSchedule)},
		{name: RuleStaticFAQ, match: func(f features) bool { _, ok := faqTopic(f); return ok }, build: buildFAQ},
		{name: RuleHomeworkHelp, match: isHomeworkHelp, build: only(model.CategoryHomeworkHelpNoSubject)},
		{name: RuleRoster, match: func(f features) bool { return rosterRe.MatchString(f.text) }, build: buildRoster},
		{name: RuleCoursework, match: isCoursework, build: buildCoursework},
		{name: RuleAnnouncement, match: func(f features) bool { return announcementRe.MatchString(f.text) }, build: only(model.CategoryAnnouncement)},
		{name: RuleCalendar, match: isCalendar, build: buildCalendar},
		{name: RulePerson, match: isPerson, build: only(model.CategoryPersonLookup)},
		{name: RuleVideo, match: isVideo, build: only(model.CategoryVideo)},
		{name: RuleGeneral, match: func(features) bool { return true }, build: only(model.CategoryGeneral)},
	}
}

func only(category model.Category) func(features) model.Intent {
	return func(features) model.Intent {
		return model.Intent{Category: category}
	}
}

func isGreeting(f features) bool {
	if len(f.tokens) == 0 {
		return true
	}
	if len(f.tokens) > maxGreetingTokens {
		return false
	}
	joined := f.tokens[0]
	if len(f.tokens) == 2 {
		joined += " " + f.tokens[1]
	}
	return greetingRe.MatchString(joined)
}

func isTranslation(f features) bool {
	if translateRe.MatchString(f.text) {
		return true
	}
	return languageRe.MatchString(f.text) && backReferenceRe.MatchString(f.text)
}

func buildTranslation(f features) model.Intent {
	out := model.Intent{Category: model.CategoryTranslation}
	if m := languageRe.FindStringSubmatch(f.text); m != nil {
		out.TargetLanguage = titleLanguage(m[1])
	} else if m := anyLanguageRe.FindStringSubmatch(f.text); m != nil {
		out.TargetLanguage = titleLanguage(m[1])
	}
	return out
}

func titleLanguage(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

func isExam(f features) bool {
	if examRe.MatchString(f.text) {
		return true
	}
	return weekdayRe.MatchString(f.text) && dayScheduleRe.MatchString(f.text)
}

func faqTopic(f features) (model.FAQTopic, bool) {
	for _, p := range faqTopicPatterns {
		if p.skipWhenPerson && f.entities.PersonName != "" {
			continue
		}
		if p.re.MatchString(f.text) {
			return p.topic, true
		}
	}
	return "", false
}

// buildFAQ re-routes to a content lookup when the caller explicitly asks for
// an article about the topic.
func buildFAQ(f features) model.Intent {
	if articleQualifierRe.MatchString(f.text) {
		return model.Intent{Category: model.CategoryGeneral}
	}
	topic, _ := faqTopic(f)
	return model.Intent{Category: model.CategoryStaticFAQ, FAQTopic: topic}
}

func isHomeworkHelp(f features) bool {
	return homeworkHelpRe.MatchString(f.text) && homeworkWordRe.MatchString(f.text) && !f.entities.HasSubject()
}

func buildRoster(f features) model.Intent {
	target := model.RosterStudents
	if rosterTeacherRe.MatchString(f.text) {
		target = model.RosterTeachers
	}
	return model.Intent{Category: model.CategoryRoster, RosterTarget: target}
}

// isCoursework needs a strong cue. A weak work-type word ("test", "notes")
// counts only with an ownership or time cue, and never in an explanation
// request.
func isCoursework(f features) bool {
	if courseworkRe.MatchString(f.text) || extract.StrongWorkType(f.text) {
		return true
	}
	if f.entities.WorkTypeFilter == model.WorkTypeAny || explanatoryRe.MatchString(f.text) {
		return false
	}
	return ownershipRe.MatchString(f.text) || len(f.entities.DateRanges) > 0 || f.entities.LatestCount != nil
}

func buildCoursework(f features) model.Intent {
	return model.Intent{Category: model.CategoryCoursework, WorkType: f.entities.WorkTypeFilter}
}

func isCalendar(f features) bool {
	return holidayRe.MatchString(f.text) || eventRe.MatchString(f.text)
}

func buildCalendar(f features) model.Intent {
	target := model.CalendarEvents
	if holidayRe.MatchString(f.text) {
		target = model.CalendarHolidays
	}
	return model.Intent{Category: model.CategoryCalendar, CalendarTarget: target}
}

func isPerson(f features) bool {
	return personStemRe.MatchString(f.text) || f.entities.PersonName != ""
}

func isVideo(f features) bool {
	return videoRe.MatchString(f.text) && !explanatoryRe.MatchString(f.text)
}
