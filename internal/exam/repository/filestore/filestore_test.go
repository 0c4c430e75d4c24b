package filestore

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"school-assistant/internal/exam/repository"
)

type mockLogger struct{ warns int }

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   { m.warns++ }
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func intPtr(v int) *int { return &v }

func newStore(t *testing.T, files map[string]string) (afero.Fs, *mockLogger) {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile %s: %v", path, err)
		}
	}
	return fs, &mockLogger{}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		rel         string
		wantGrade   *int
		wantSubject string
		wantKind    string
		wantTeacher string
	}{
		{"grade-8/maths/mr-sharma/unit-test-2_datesheet.txt", intPtr(8), "MATH", repository.KindDatesheet, "sharma"},
		{"class_10/science/sample paper 2024.md", intPtr(10), "SCIENCE", repository.KindSamplePaper, ""},
		{"12/physics/syllabus.txt", intPtr(12), "PHYSICS", repository.KindSyllabus, ""},
		{"school/annual-exam-timetable.txt", nil, "", repository.KindTimetable, ""},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			got := describe(tt.rel)
			if (got.Grade == nil) != (tt.wantGrade == nil) || (got.Grade != nil && *got.Grade != *tt.wantGrade) {
				t.Errorf("Grade = %v, want %v", got.Grade, tt.wantGrade)
			}
			if got.Subject != tt.wantSubject {
				t.Errorf("Subject = %q, want %q", got.Subject, tt.wantSubject)
			}
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", got.Kind, tt.wantKind)
			}
			if got.Teacher != tt.wantTeacher {
				t.Errorf("Teacher = %q, want %q", got.Teacher, tt.wantTeacher)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	fs, l := newStore(t, map[string]string{
		"/exams/grade-8/maths/unit-test-datesheet.txt":   "Unit Test 2\n\n  Maths: 14 March",
		"/exams/grade-9/maths/unit-test-datesheet.txt":   "Grade 9 maths on 15 March",
		"/exams/grade-8/science/unit-test-datesheet.txt": "Science: 17 March",
		"/exams/annual-exam-timetable.md":                "# Annual exams start 1 April",
		"/exams/grade-8/notes.docx":                      "ignored extension",
	})
	repo := New(fs, Config{Root: "/exams"}, l)

	got, err := repo.Search(context.Background(), repository.SearchOptions{Grade: intPtr(8), Subject: "MATH"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 document, got %d: %+v", len(got), got)
	}
	if got[0].Excerpt != "Unit Test 2 Maths: 14 March" {
		t.Errorf("Excerpt = %q", got[0].Excerpt)
	}

	got, err = repo.Search(context.Background(), repository.SearchOptions{Grade: intPtr(8)})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	// two grade 8 files plus the school-wide timetable, graded first
	if len(got) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(got))
	}
	if got[2].Grade != nil || !strings.Contains(got[2].Excerpt, "Annual exams") {
		t.Errorf("expected school-wide timetable last, got %+v", got[2])
	}
}

func TestSearch_LimitAndExcerpt(t *testing.T) {
	fs, l := newStore(t, map[string]string{
		"/exams/a-timetable.txt": strings.Repeat("word ", 100),
		"/exams/b-timetable.txt": "short",
	})
	repo := New(fs, Config{Root: "/exams", ExcerptRunes: 20}, l)

	got, err := repo.Search(context.Background(), repository.SearchOptions{Kind: repository.KindTimetable, Limit: 1})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 document, got %d", len(got))
	}
	if got[0].Excerpt != "word word word word …" {
		t.Errorf("Excerpt = %q", got[0].Excerpt)
	}
}

func TestSearch_SkipsUnreadablePDF(t *testing.T) {
	fs, l := newStore(t, map[string]string{
		"/exams/grade-8/datesheet.pdf": "not really a pdf",
		"/exams/grade-8/datesheet.txt": "Maths on Monday",
	})
	repo := New(fs, Config{Root: "/exams"}, l)

	got, err := repo.Search(context.Background(), repository.SearchOptions{Grade: intPtr(8)})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].Excerpt != "Maths on Monday" {
		t.Errorf("unexpected documents %+v", got)
	}
	if l.warns != 1 {
		t.Errorf("expected one warning, got %d", l.warns)
	}
}

func TestSearch_MissingRoot(t *testing.T) {
	fs, l := newStore(t, nil)
	repo := New(fs, Config{Root: "/nowhere"}, l)

	if _, err := repo.Search(context.Background(), repository.SearchOptions{}); err == nil {
		t.Fatal("expected error for missing root")
	}
}
