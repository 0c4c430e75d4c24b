package gate

import (
	"errors"

	"school-assistant/internal/model"
)

var (
	ErrSignInRequired   = errors.New("sign in required")
	ErrAccountNotLinked = errors.New("teacher account not linked")
)

const (
	DefaultSignInMessage  = "Please sign in to see your classes, coursework and school calendar. I can still answer general questions about the school."
	DefaultConnectMessage = "Please connect your own Google Classroom account to see your classes, coursework and announcements."
)

// Messages are the fixed texts returned when a request is denied.
type Messages struct {
	SignIn  string
	Connect string
}

// Gate decides whether a caller may run an intent before any store is touched.
type Gate struct {
	msgs Messages
}

func New(msgs Messages) *Gate {
	if msgs.SignIn == "" {
		msgs.SignIn = DefaultSignInMessage
	}
	if msgs.Connect == "" {
		msgs.Connect = DefaultConnectMessage
	}
	return &Gate{msgs: msgs}
}

// Check returns nil when the request may proceed. Otherwise it returns
// ErrSignInRequired or ErrAccountNotLinked.
func (g *Gate) Check(caller model.Caller, in model.Intent) error {
	if !caller.Authenticated {
		switch in.Category {
		case model.CategoryRoster, model.CategoryCoursework, model.CategoryAnnouncement,
			model.CategoryCalendar, model.CategoryHomeworkHelpNoSubject:
			return ErrSignInRequired
		}
		return nil
	}

	if caller.Role == model.RoleTeacher && !caller.HasLinkedAccount {
		switch in.Category {
		case model.CategoryRoster, model.CategoryCoursework, model.CategoryAnnouncement:
			return ErrAccountNotLinked
		}
	}
	return nil
}

// Message maps a Check error to the text shown to the caller.
func (g *Gate) Message(err error) string {
	switch {
	case errors.Is(err, ErrSignInRequired):
		return g.msgs.SignIn
	case errors.Is(err, ErrAccountNotLinked):
		return g.msgs.Connect
	}
	return ""
}
