package repository

import (
	"context"

	"school-assistant/internal/model"
)

// Reader is read-only access to the synced classroom store.
type Reader interface {
	CourseReader
	CourseworkReader
	EventReader
}

// CourseReader lists courses and their members.
type CourseReader interface {
	ListCourses(ctx context.Context, opt ListCoursesOptions) ([]model.Course, error)
	ListMembers(ctx context.Context, opt ListMembersOptions) ([]model.Person, error)
}

// CourseworkReader lists what was posted to courses.
type CourseworkReader interface {
	ListCoursework(ctx context.Context, opt ListCourseworkOptions) ([]model.Coursework, error)
	ListSubmissions(ctx context.Context, opt ListSubmissionsOptions) ([]model.Submission, error)
	ListAnnouncements(ctx context.Context, opt ListAnnouncementsOptions) ([]model.Announcement, error)
}

// EventReader lists school calendar entries.
type EventReader interface {
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, error)
}
