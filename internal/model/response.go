package model

// AuxKind tags the auxiliary payload.
type AuxKind string

const (
	AuxMap      AuxKind = "map"
	AuxCalendar AuxKind = "calendar"
	AuxVideos   AuxKind = "videos"
)

// AuxiliaryPayload is optional structured data sent alongside the text.
type AuxiliaryPayload struct {
	Kind   AuxKind `json:"kind"`
	URL    string  `json:"url,omitempty"`
	Videos []Video `json:"videos,omitempty"`
}

// Outcome names the terminal state that produced a response.
type Outcome string

const (
	OutcomeModelText      Outcome = "model_text"
	OutcomeFallbackRender Outcome = "fallback_render"
	OutcomeApology        Outcome = "apology"
	OutcomeGateTerminal   Outcome = "gate_terminal"
	OutcomeStaticFAQ      Outcome = "static_faq"
	OutcomeGreeting       Outcome = "greeting"
	OutcomeClarification  Outcome = "clarification"
	OutcomeVideos         Outcome = "videos"
)

// Response is what the pipeline returns to the delivery layer.
type Response struct {
	Text    string
	Aux     *AuxiliaryPayload
	Outcome Outcome
}
