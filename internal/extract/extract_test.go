package extract_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"school-assistant/internal/extract"
	"school-assistant/internal/model"
)

func TestSubjects(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"maths and science homework", []string{"MATH", "SCIENCE"}},
		{"Social Studies project", []string{"SST"}},
		{"any Physics or chem quiz?", []string{"CHEMISTRY", "PHYSICS"}},
		{"what is due tomorrow", nil},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, extract.Subjects(tt.text)); diff != "" {
			t.Errorf("Subjects(%q) mismatch (-want +got):\n%s", tt.text, diff)
		}
	}
}

func TestMatchesSubject(t *testing.T) {
	if !extract.MatchesSubject("Grade 8 - Mathematics", []string{"MATH"}) {
		t.Error("expected Mathematics course to match MATH")
	}
	if extract.MatchesSubject("Grade 8 - English", []string{"MATH"}) {
		t.Error("expected English course not to match MATH")
	}
	if !extract.MatchesSubject("anything", nil) {
		t.Error("no subject filter should match everything")
	}
}

func intPtr(i int) *int { return &i }

func TestGrade(t *testing.T) {
	tests := []struct {
		text string
		want *int
	}{
		{"class 8 students", intPtr(8)},
		{"who teaches 10th grade", intPtr(10)},
		{"g7 timetable", intPtr(7)},
		{"Std. 5 homework", intPtr(5)},
		{"grade 13 fees", nil},
		{"what is due", nil},
	}
	for _, tt := range tests {
		got := extract.Grade(tt.text)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Grade(%q) mismatch (-want +got):\n%s", tt.text, diff)
		}
	}
}

func TestNormalizeGradeLabel(t *testing.T) {
	tests := []struct {
		label string
		want  *int
	}{
		{"Grade VIII", intPtr(8)},
		{"8th", intPtr(8)},
		{"Class 8-B", intPtr(8)},
		{"8A", intPtr(8)},
		{"XII", intPtr(12)},
		{"12", intPtr(12)},
		{"", nil},
		{"Staff", nil},
	}
	for _, tt := range tests {
		got := extract.NormalizeGradeLabel(tt.label)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("NormalizeGradeLabel(%q) mismatch (-want +got):\n%s", tt.label, diff)
		}
	}
}

func TestPersonName(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Who is Anita Sharma?", "Anita Sharma"},
		{"tell me about ravi kumar", "Ravi Kumar"},
		{"who is mrs desai from the science department", "Desai"},
		{"who is the principal", ""},
		{"tell me about the fees", ""},
		{"What Is The Homework", ""},
		{"who is my class teacher", ""},
		{"who is Jane in class 8", "Jane"},
		{"tell me about June", ""},
	}
	for _, tt := range tests {
		if got := extract.PersonName(tt.text); got != tt.want {
			t.Errorf("PersonName(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestWorkType(t *testing.T) {
	tests := map[string]model.WorkType{
		"any quiz this week":         model.WorkTypeQuiz,
		"pending assignments":        model.WorkTypeAssignment,
		"study material for physics": model.WorkTypeMaterial,
		"questions posted today":     model.WorkTypeQuestion,
		"what is due":                model.WorkTypeAny,
	}
	for text, want := range tests {
		if got := extract.WorkType(text); got != want {
			t.Errorf("WorkType(%q) = %q, want %q", text, got, want)
		}
	}
}

func TestStrongWorkType(t *testing.T) {
	tests := map[string]bool{
		"pending assignments":                    true,
		"any quiz this week":                     true,
		"maths notes":                            true,
		"physics test next week":                 true,
		"I have a question about photosynthesis": false,
		"notes on the french revolution":         false,
		"what resources does the library have":   false,
	}
	for text, want := range tests {
		if got := extract.StrongWorkType(text); got != want {
			t.Errorf("StrongWorkType(%q) = %v, want %v", text, got, want)
		}
	}
}

func TestLatestCount(t *testing.T) {
	tests := []struct {
		text string
		want *int
	}{
		{"latest 3 assignments", intPtr(3)},
		{"last 5 announcements", intPtr(5)},
		{"2 most recent posts", intPtr(2)},
		{"the latest announcement", intPtr(1)},
		{"latest announcements", nil},
		{"events last week", nil},
	}
	for _, tt := range tests {
		got := extract.LatestCount(tt.text)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("LatestCount(%q) mismatch (-want +got):\n%s", tt.text, diff)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := extract.Normalize("  Café   RÉSUMÉ  "); got != "cafe resume" {
		t.Errorf("Normalize() = %q", got)
	}
}
