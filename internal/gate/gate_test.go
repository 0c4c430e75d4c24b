package gate

import (
	"errors"
	"testing"

	"school-assistant/internal/model"
)

func TestCheck(t *testing.T) {
	g := New(Messages{})

	student := model.Caller{Authenticated: true, Role: model.RoleStudent}
	unlinkedTeacher := model.Caller{Authenticated: true, Role: model.RoleTeacher}
	linkedTeacher := model.Caller{Authenticated: true, Role: model.RoleTeacher, HasLinkedAccount: true}

	tests := []struct {
		name     string
		caller   model.Caller
		category model.Category
		want     error
	}{
		{"anonymous coursework", model.Anonymous(), model.CategoryCoursework, ErrSignInRequired},
		{"anonymous roster", model.Anonymous(), model.CategoryRoster, ErrSignInRequired},
		{"anonymous announcement", model.Anonymous(), model.CategoryAnnouncement, ErrSignInRequired},
		{"anonymous calendar", model.Anonymous(), model.CategoryCalendar, ErrSignInRequired},
		{"anonymous homework help", model.Anonymous(), model.CategoryHomeworkHelpNoSubject, ErrSignInRequired},
		{"anonymous faq", model.Anonymous(), model.CategoryStaticFAQ, nil},
		{"anonymous general", model.Anonymous(), model.CategoryGeneral, nil},
		{"anonymous person", model.Anonymous(), model.CategoryPersonLookup, nil},
		{"student coursework", student, model.CategoryCoursework, nil},
		{"unlinked teacher roster", unlinkedTeacher, model.CategoryRoster, ErrAccountNotLinked},
		{"unlinked teacher coursework", unlinkedTeacher, model.CategoryCoursework, ErrAccountNotLinked},
		{"unlinked teacher announcement", unlinkedTeacher, model.CategoryAnnouncement, ErrAccountNotLinked},
		{"unlinked teacher calendar", unlinkedTeacher, model.CategoryCalendar, nil},
		{"linked teacher roster", linkedTeacher, model.CategoryRoster, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.Check(tt.caller, model.Intent{Category: tt.category})
			if !errors.Is(err, tt.want) {
				t.Errorf("Check() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	g := New(Messages{SignIn: "sign in please"})

	if got := g.Message(ErrSignInRequired); got != "sign in please" {
		t.Errorf("Message(ErrSignInRequired) = %q", got)
	}
	if got := g.Message(ErrAccountNotLinked); got != DefaultConnectMessage {
		t.Errorf("Message(ErrAccountNotLinked) = %q", got)
	}
	if got := g.Message(nil); got != "" {
		t.Errorf("Message(nil) = %q, want empty", got)
	}
}
