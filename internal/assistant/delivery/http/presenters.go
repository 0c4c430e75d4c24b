package http

import (
	"strings"

	"school-assistant/internal/assistant"
	"school-assistant/internal/model"
)

// --- Request DTOs ---

type callerProfileReq struct {
	Authenticated    bool   `json:"authenticated"`
	Role             string `json:"role"`
	GradeLabel       string `json:"grade_label"        binding:"max=64"`
	HasLinkedAccount bool   `json:"has_linked_account"`
	UserID           string `json:"user_id"            binding:"max=128"`
	FirstName        string `json:"first_name"         binding:"max=128"`
	Department       string `json:"department"         binding:"max=128"`
}

type turnReq struct {
	Role    string `json:"role"    binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"max=8000"`
}

type chatReq struct {
	Utterance           string            `json:"utterance"            binding:"max=2000"`
	CallerProfile       *callerProfileReq `json:"caller_profile"`
	ConversationHistory []turnReq         `json:"conversation_history" binding:"max=50,dive"`
	CachedContentHint   string            `json:"cached_content_hint"  binding:"max=20000"`
}

func (r chatReq) validate() error { return nil }

func (r chatReq) toInput() assistant.AnswerInput {
	in := assistant.AnswerInput{
		Utterance:         r.Utterance,
		Caller:            model.Anonymous(),
		CachedContentHint: r.CachedContentHint,
	}
	if p := r.CallerProfile; p != nil {
		in.Caller = model.Caller{
			Authenticated:    p.Authenticated,
			Role:             model.ParseRole(strings.ToLower(strings.TrimSpace(p.Role))),
			GradeLabel:       p.GradeLabel,
			HasLinkedAccount: p.HasLinkedAccount,
			UserID:           p.UserID,
			FirstName:        p.FirstName,
			Department:       p.Department,
		}
	}
	for _, t := range r.ConversationHistory {
		in.History = append(in.History, model.Turn{Role: model.TurnRole(t.Role), Content: t.Content})
	}
	return in
}

// --- Response DTOs ---

type videoResp struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type auxResp struct {
	Kind   string      `json:"kind"`
	URL    string      `json:"url,omitempty"`
	Videos []videoResp `json:"videos,omitempty"`
}

type chatResp struct {
	Text    string   `json:"text"`
	Aux     *auxResp `json:"aux,omitempty"`
	Outcome string   `json:"outcome"`
}

func (h *handler) newChatResp(resp model.Response) chatResp {
	out := chatResp{Text: resp.Text, Outcome: string(resp.Outcome)}
	if resp.Aux != nil {
		aux := &auxResp{Kind: string(resp.Aux.Kind), URL: resp.Aux.URL}
		for _, v := range resp.Aux.Videos {
			aux.Videos = append(aux.Videos, videoResp{Title: v.Title, URL: v.URL})
		}
		out.Aux = aux
	}
	return out
}
