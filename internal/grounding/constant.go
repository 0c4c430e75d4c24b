package grounding

import (
	"regexp"

	"school-assistant/internal/model"
)

// Log prefixes
const (
	LogPrefixFinalize = "internal.grounding.Finalize"
)

const (
	dateLayout          = "Mon, 02 Jan 2006"
	maxDescriptionRunes = 200
)

var (
	urlRe = regexp.MustCompile(`https?://[^\s<>()\[\]"'` + "`" + `]+`)

	placeholderLinkRe = regexp.MustCompile(`(?i)(?:https?://(?:www\.)?(?:example\.(?:com|org|net)|link\.com|url\.com|yourlink|your-link|placeholder)[^\s]*|\[(?:link|url|here|insert[^\]]*|[^\]]*link here)\]|\((?:link|url)\)|<(?:link|url)>|\{(?:link|url)\})`)

	syntheticTopicRe = regexp.MustCompile(`(?i)\b(?:(?:topic|assignment|chapter|lesson|unit|quiz|worksheet|event) (?:\d+|x|one|two|three)\b|sample (?:assignment|topic|event|quiz)|untitled(?: assignment| event)?|lorem ipsum|\[(?:title|topic|event name|assignment name)\])`)
)

var headings = map[model.Category]string{
	model.CategoryCoursework:   "Here is the coursework I found:",
	model.CategoryAnnouncement: "Here are the announcements I found:",
	model.CategoryRoster:       "Here are the people I found in your classes:",
	model.CategoryCalendar:     "Here is what is on the school calendar:",
}

var nothingFound = map[model.Category]string{
	model.CategoryCoursework:   "I could not find any matching coursework in your classes.",
	model.CategoryAnnouncement: "I could not find any matching announcements in your classes.",
	model.CategoryRoster:       "I could not find anyone matching that in your classes.",
	model.CategoryCalendar:     "There is nothing on the school calendar for those dates.",
}

const (
	defaultHeading      = "Here is what I found:"
	defaultNothingFound = "I could not find anything matching that."
)
