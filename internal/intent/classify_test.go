package intent_test

import (
	"context"
	"testing"
	"time"

	"school-assistant/internal/extract"
	"school-assistant/internal/intent"
	"school-assistant/internal/model"
	"school-assistant/pkg/datemath"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func newClassifier(t *testing.T) *intent.RuleClassifier {
	t.Helper()
	parser, err := datemath.NewParser("Asia/Kolkata")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	now := time.Date(2025, time.February, 10, 9, 0, 0, 0, parser.Location())
	return intent.New(extract.New(parser), &mockLogger{}).WithClock(func() time.Time { return now })
}

func TestClassify(t *testing.T) {
	c := newClassifier(t)

	tests := []struct {
		text     string
		category model.Category
	}{
		{"", model.CategoryGreeting},
		{"hi", model.CategoryGreeting},
		{"Good morning", model.CategoryGreeting},
		{"hi what is due", model.CategoryCoursework},
		{"translate the last answer to hindi", model.CategoryTranslation},
		{"say that in hindi", model.CategoryTranslation},
		{"is there hindi homework", model.CategoryCoursework},
		{"when is the maths exam", model.CategoryExamSchedule},
		{"monday schedule", model.CategoryExamSchedule},
		{"what is the timetabel", model.CategoryExamSchedule},
		{"what are the school fees", model.CategoryStaticFAQ},
		{"article about school fees", model.CategoryGeneral},
		{"where is the school located", model.CategoryStaticFAQ},
		{"academic calendar", model.CategoryStaticFAQ},
		{"what is the contact number of the school", model.CategoryStaticFAQ},
		{"contact details of Mr Sharma", model.CategoryPersonLookup},
		{"help me with my homework", model.CategoryHomeworkHelpNoSubject},
		{"help me with my maths homework", model.CategoryCoursework},
		{"who are my teachers", model.CategoryRoster},
		{"list of students in my class", model.CategoryRoster},
		{"any assignments due tomorrow", model.CategoryCoursework},
		{"latest announcements", model.CategoryAnnouncement},
		{"holidays in october", model.CategoryCalendar},
		{"events on 21 feb", model.CategoryCalendar},
		{"who is Anita Sharma", model.CategoryPersonLookup},
		{"show me science experiment videos", model.CategoryVideo},
		{"explain photosynthesis video", model.CategoryGeneral},
		{"what is photosynthesis", model.CategoryGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := c.Classify(context.Background(), tt.text)
			if got.Category != tt.category {
				t.Errorf("Classify(%q) = %s, want %s", tt.text, got.Category, tt.category)
			}
		})
	}
}

func TestClassify_WorkWordsInOrdinaryQuestions(t *testing.T) {
	c := newClassifier(t)

	tests := []struct {
		text       string
		coursework bool
	}{
		{"I have a question about photosynthesis", false},
		{"can you give me some notes on the french revolution", false},
		{"what resources does the school library have", false},
		{"explain newton's laws, I have a test tomorrow", false},
		{"maths notes", true},
		{"is there a test tomorrow", true},
		{"my science project", true},
		{"latest study material", true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := c.Classify(context.Background(), tt.text)
			if (got.Category == model.CategoryCoursework) != tt.coursework {
				t.Errorf("Classify(%q) = %s, coursework want %v", tt.text, got.Category, tt.coursework)
			}
		})
	}
}

func TestClassify_Qualifiers(t *testing.T) {
	c := newClassifier(t)
	ctx := context.Background()

	if got := c.Classify(ctx, "translate the last answer to hindi"); got.TargetLanguage != "Hindi" {
		t.Errorf("TargetLanguage = %q, want Hindi", got.TargetLanguage)
	}
	if got := c.Classify(ctx, "who are my teachers"); got.RosterTarget != model.RosterTeachers {
		t.Errorf("RosterTarget = %q, want teacher", got.RosterTarget)
	}
	if got := c.Classify(ctx, "list of students in my class"); got.RosterTarget != model.RosterStudents {
		t.Errorf("RosterTarget = %q, want student", got.RosterTarget)
	}
	if got := c.Classify(ctx, "holidays in october"); got.CalendarTarget != model.CalendarHolidays {
		t.Errorf("CalendarTarget = %q, want holiday", got.CalendarTarget)
	}
	if got := c.Classify(ctx, "any quiz this week"); got.WorkType != model.WorkTypeQuiz {
		t.Errorf("WorkType = %q, want QUIZ", got.WorkType)
	}
	if got := c.Classify(ctx, "where is the school located"); got.FAQTopic != model.FAQLocation {
		t.Errorf("FAQTopic = %q, want location", got.FAQTopic)
	}

	got := c.Classify(ctx, "events on 21 feb")
	if len(got.Entities.DateRanges) != 1 {
		t.Fatalf("DateRanges = %v, want one range", got.Entities.DateRanges)
	}
	if d := got.Entities.DateRanges[0].Start; d.Month() != time.February || d.Day() != 21 || d.Year() != 2025 {
		t.Errorf("DateRanges[0].Start = %v, want 2025-02-21", d)
	}
}
