package usecase

// Log prefixes
const (
	LogPrefixAnswer = "internal.assistant.usecase.Answer"
	LogPrefixVideos = "internal.assistant.usecase.videos"
)

const (
	DefaultGenericGreeting = "Hello! I am the school assistant. Ask me about your classes, coursework, the school calendar or anything about the school."
	DefaultNamedGreeting   = "Hello %s! How can I help you today?"
	DefaultApology         = "Sorry, I could not put together an answer right now. Please try again in a moment."
	DefaultClarification   = "Which answer would you like me to translate? I could not find an earlier reply in this conversation."
	DefaultSubjectPrompt   = "Sure, I can help with homework. Which subject is it for?"
	DefaultFAQFallback     = "Please contact the school office for details on that."
	DefaultVideosHeading   = "Here are some videos you might like:"
	DefaultNoVideos        = "I could not find any school videos for that right now."
	DefaultVideoLimit      = 5
)

var videoStopwords = map[string]bool{
	"video": true, "videos": true, "show": true, "me": true, "send": true, "watch": true,
	"some": true, "any": true, "please": true, "the": true, "a": true, "an": true, "of": true,
	"school": true, "can": true, "i": true, "you": true, "share": true, "clip": true, "clips": true,
}
