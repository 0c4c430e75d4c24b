package intent

import (
	"regexp"

	"school-assistant/internal/model"
)

// Log prefixes
const (
	LogPrefixClassify = "internal.intent.Classify"
)

// Rule names, used in logs and metrics.
const (
	RuleGreeting     = "greeting"
	RuleTranslation  = "translation"
	RuleExam         = "exam_timetable"
	RuleStaticFAQ    = "static_faq"
	RuleHomeworkHelp = "homework_help"
	RuleRoster       = "roster"
	RuleCoursework   = "coursework"
	RuleAnnouncement = "announcement"
	RuleCalendar     = "calendar"
	RulePerson       = "person_lookup"
	RuleVideo        = "video"
	RuleGeneral      = "general"
)

const maxGreetingTokens = 2

var (
	greetingRe = regexp.MustCompile(`^(?:hi+|hello+|hey+|hiya|helo|namaste|namaskar|greetings|yo|hola|good (?:morning|afternoon|evening)|(?:hi|hello|hey) (?:there|bot|all))$`)

	translateRe     = regexp.MustCompile(`\btranslat(?:e|ed|ion)\b`)
	languageRe      = regexp.MustCompile(`\b(?:in|into|to) (hindi|english|marathi|gujarati|tamil|telugu|kannada|malayalam|bengali|bangla|punjabi|urdu|odia|sanskrit|french|spanish|german|arabic)\b`)
	backReferenceRe = regexp.MustCompile(`\b(?:that|this|it|above|previous|same|your (?:answer|reply|response)|the (?:answer|reply|response)|last (?:answer|reply|response|message))\b`)
	anyLanguageRe   = regexp.MustCompile(`\b(hindi|english|marathi|gujarati|tamil|telugu|kannada|malayalam|bengali|bangla|punjabi|urdu|odia|sanskrit|french|spanish|german|arabic)\b`)

	examRe        = regexp.MustCompile(`\b(?:exams?|examz|exm|exms|examination|examinations|timetable|timetables|time table|time-table|timetabel|timetble|timtable|datesheet|date sheet|question papers?|sample papers?|previous year papers?|unit tests?|mid ?terms?|midterms|half yearly|annual exams?|final exams?|finals|periodic tests?|board exams?)\b`)
	weekdayRe     = regexp.MustCompile(`\b(?:monday|tuesday|wednesday|thursday|friday|saturday|mon|tue|tues|wed|thu|thurs|fri|sat)\b`)
	dayScheduleRe = regexp.MustCompile(`\b(?:schedule|shedule|schedul|periods?|classes|lectures?)\b`)

	articleQualifierRe = regexp.MustCompile(`\b(?:articles?|blogs?|news|stories|story|write ?up)\b`)

	homeworkHelpRe = regexp.MustCompile(`\b(?:help|assist|explain|solve|stuck|do my|guide me)\b`)
	homeworkWordRe = regexp.MustCompile(`\b(?:homework|hw|home work|assignment)\b`)

	rosterRe        = regexp.MustCompile(`\b(?:who (?:are|is) (?:the |my |our )?(?:teachers?|students?|classmates?|class teacher)|list (?:of )?(?:all )?(?:the )?(?:teachers?|students?|classmates?)|(?:teachers?|students?|classmates?) (?:in|of|for) (?:my|our|the|this|class|grade)|how many students|my (?:teachers|classmates|students)|roster|who teaches)\b`)
	rosterTeacherRe = regexp.MustCompile(`\b(?:teachers?|teaches|faculty|class teacher)\b`)

	courseworkRe   = regexp.MustCompile(`\b(?:due|pending|submit|submitted|submission|submissions|coursework|classwork|class work|deadlines?|to do|todo|missing work|graded)\b`)
	ownershipRe    = regexp.MustCompile(`\b(?:my|our|upcoming|latest|recent|newest|new|assigned|given|posted|uploaded|shared)\b`)
	announcementRe = regexp.MustCompile(`\b(?:announcements?|announced|notices?|circulars?|updates?|posted|stream)\b`)
	holidayRe      = regexp.MustCompile(`\b(?:holidays?|vacations?|day off|days off|school (?:closed|open)|is (?:there )?school (?:on|tomorrow|today)|winter break|summer break|diwali break|festival)\b`)
	eventRe        = regexp.MustCompile(`\b(?:events?|calendar|functions?|celebrations?|annual day|sports day|ptm|parent teacher meetings?|meetings?|trips?|picnic|competitions?|fest|fair|happening|happened|what's on|whats on)\b`)

	personStemRe = regexp.MustCompile(`\b(?:who is|who's|whos|tell me about|information about|info about|details of|details about)\b`)

	videoRe       = regexp.MustCompile(`\b(?:videos?|youtube|clips?|recordings?|watch)\b`)
	explanatoryRe = regexp.MustCompile(`\b(?:explain|explanation|what is|what are|how (?:does|do|to|is)|why|meaning of|define|definition|concept of|teach me|learn about)\b`)
)

type faqTopicPattern struct {
	topic model.FAQTopic
	re    *regexp.Regexp
	// skipWhenPerson avoids routing "contact details of Mr X" to the school contact answer.
	skipWhenPerson bool
}

// Ordered: the first matching topic wins.
var faqTopicPatterns = []faqTopicPattern{
	{topic: model.FAQFees, re: regexp.MustCompile(`\b(?:fees?|fee structure|tuition|school fees|fee payment)\b`)},
	{topic: model.FAQAdmission, re: regexp.MustCompile(`\b(?:admissions?|enrol(?:l)?ments?|enrol(?:l)?|how to join|apply for admission)\b`)},
	{topic: model.FAQContact, re: regexp.MustCompile(`\b(?:contact|phone number|email address|helpline|call the school|reach the office)\b`), skipWhenPerson: true},
	{topic: model.FAQLocation, re: regexp.MustCompile(`\b(?:where is (?:the )?school|school (?:location|address)|address|location|directions?|how to reach|how do i reach|map)\b`)},
	{topic: model.FAQTimings, re: regexp.MustCompile(`\b(?:school timings?|school hours|timings?|what time does (?:the )?school (?:start|open|close|end)|working hours|office hours)\b`)},
	{topic: model.FAQUniform, re: regexp.MustCompile(`\b(?:uniforms?|dress code)\b`)},
	{topic: model.FAQTransport, re: regexp.MustCompile(`\b(?:transport|transportation|school bus|bus routes?|bus timings?|bus service|van)\b`)},
	{topic: model.FAQAcademicCalendar, re: regexp.MustCompile(`\b(?:academic calendar|school calendar|annual calendar|yearly calendar|academic year plan)\b`)},
}
