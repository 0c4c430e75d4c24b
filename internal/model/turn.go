package model

// TurnRole identifies who produced a history message.
type TurnRole string

const (
	TurnUser      TurnRole = "user"
	TurnAssistant TurnRole = "assistant"
)

// Turn is one message of the prior conversation, oldest first.
type Turn struct {
	Role    TurnRole `json:"role"`
	Content string   `json:"content"`
}
