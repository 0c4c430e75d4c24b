package model

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Course is a class section from the structured store.
type Course struct {
	ID      string `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Section string `json:"section,omitempty" db:"section"`
	Room    string `json:"room,omitempty" db:"room"`
	Link    string `json:"link,omitempty" db:"link"`

	Teachers      []Person       `json:"teachers,omitempty" db:"-"`
	Students      []Person       `json:"students,omitempty" db:"-"`
	Coursework    []Coursework   `json:"coursework,omitempty" db:"-"`
	Announcements []Announcement `json:"announcements,omitempty" db:"-"`
}

// Person is a course member.
type Person struct {
	CourseID string `json:"-" db:"course_id"`
	UserID   string `json:"-" db:"user_id"`
	Name     string `json:"name" db:"full_name"`
	Email    string `json:"email,omitempty" db:"email"`
	Role     Role   `json:"-" db:"role"`
}

// Coursework is an assignment, quiz, material or question posted to a course.
type Coursework struct {
	ID          string     `json:"-" db:"id"`
	CourseID    string     `json:"-" db:"course_id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description,omitempty" db:"description"`
	WorkType    WorkType   `json:"work_type,omitempty" db:"work_type"`
	DueAt       *time.Time `json:"due,omitempty" db:"due_at"`
	CreatedAt   time.Time  `json:"created,omitempty" db:"created_at"`
	Link        string     `json:"link,omitempty" db:"link"`
	MaxPoints   *float64   `json:"max_points,omitempty" db:"max_points"`

	Submission *Submission `json:"submission,omitempty" db:"-"`
}

// Submission is the caller's own state for a coursework item.
type Submission struct {
	CourseworkID string   `json:"-" db:"coursework_id"`
	State        string   `json:"state" db:"state"`
	Late         bool     `json:"late,omitempty" db:"late"`
	Grade        *float64 `json:"grade,omitempty" db:"assigned_grade"`
}

// Announcement is a course stream post.
type Announcement struct {
	ID        string    `json:"-" db:"id"`
	CourseID  string    `json:"-" db:"course_id"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"created" db:"created_at"`
	Link      string    `json:"link,omitempty" db:"link"`
}

// maxAnnouncementTitle caps the runes of an announcement title.
const maxAnnouncementTitle = 60

// Title is the opening sentence of the announcement, cut at a word boundary
// after maxAnnouncementTitle runes. It is always a prefix of Text.
func (a Announcement) Title() string {
	title := a.Text
	if i := strings.IndexByte(title, '\n'); i >= 0 {
		title = title[:i]
	}
	for i := 0; i+1 < len(title); i++ {
		switch title[i] {
		case '.', '!', '?':
			if title[i+1] == ' ' && i >= minSentenceLen {
				title = title[:i+1]
			}
		}
	}
	title = strings.TrimSpace(title)
	if utf8.RuneCountInString(title) <= maxAnnouncementTitle {
		return title
	}
	cut := title[:runeOffset(title, maxAnnouncementTitle)]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,;:-")
}

// minSentenceLen keeps "Mr. Rao" and "Dr. Iyer" from ending a title.
const minSentenceLen = 12

func runeOffset(s string, n int) int {
	count := 0
	for i := range s {
		if count == n {
			return i
		}
		count++
	}
	return len(s)
}

// Event is a school calendar entry.
type Event struct {
	ID          string    `json:"-" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description,omitempty" db:"description"`
	Location    string    `json:"location,omitempty" db:"location"`
	StartAt     time.Time `json:"start" db:"start_at"`
	EndAt       time.Time `json:"end" db:"end_at"`
	Link        string    `json:"link,omitempty" db:"link"`
	IsHoliday   bool      `json:"holiday,omitempty" db:"is_holiday"`
}
