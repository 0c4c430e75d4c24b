package model

// Prompt is the assembled input of one completion call.
type Prompt struct {
	// System holds persona, personalization, time context and directives.
	System string
	// Context is the serialized retrieval context, empty when nothing was retrieved.
	Context   string
	History   []Turn
	Utterance string
}
