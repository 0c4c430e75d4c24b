package prompt

import "school-assistant/internal/model"

// Log prefixes
const (
	LogPrefixAssemble = "internal.prompt.Assemble"
)

// History windows, in messages.
const (
	DefaultHistory     = 1
	TranslationHistory = 3
)

const DateFormatISO = "2006-01-02"

const TimeContextTemplate = `[TIME CONTEXT]
- Today: %s (%s)
- This week: %s to %s
- Tomorrow: %s
Resolve relative dates such as "this week" or "tomorrow" against these values.`

const groundingRules = `Use only titles, names, dates and links that appear in CONTEXT and copy them exactly.
Never invent items, dates or links, and never write placeholder links such as "[link]" or "example.com".
If CONTEXT has nothing that answers the question, say that nothing was found.`

// Intent-specific directives appended to the system prompt.
var directives = map[model.Category]string{
	model.CategoryCoursework: groundingRules + `
List each coursework item with its title, due date and link. Mention submission state when it is given.`,
	model.CategoryAnnouncement: groundingRules + `
Start each announcement with its opening sentence copied exactly as in CONTEXT, then summarise the rest in one or two sentences. Keep its date and link.`,
	model.CategoryRoster: groundingRules + `
List the people by course. Do not add email addresses or phone numbers that are not in CONTEXT.`,
	model.CategoryCalendar: groundingRules + `
Mention each event with its exact date. Do not mention events on other dates.`,
	model.CategoryExamSchedule: `Answer from the EXAMS excerpts, naming the document each detail comes from.
If the schedule asked about is not in CONTEXT, say it has not been published yet and suggest checking with the class teacher.`,
	model.CategoryPersonLookup: `Describe the person only from what WEB says about them.
If they are not mentioned, say you do not have information about them. Do not guess roles or qualifications.`,
	model.CategoryGeneral: `Answer from WEB when it is relevant. Keep the answer short and suggest contacting the school office when unsure.`,
	model.CategoryHomeworkHelpNoSubject: `The user wants homework help but did not say the subject.
Ask which subject and topic the homework is about. Do not start solving anything yet.`,
	model.CategoryTranslation: `Translate your previous answer into %s.
Keep names, titles, links and numbers unchanged and output only the translation.`,
}

const defaultTargetLanguage = "the language the user asked for"
