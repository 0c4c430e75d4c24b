package repository

import (
	"time"

	"school-assistant/internal/model"
)

// ListCoursesOptions filters courses. Empty fields are not applied.
type ListCoursesOptions struct {
	UserID    string // only courses the user is a member of
	CourseIDs []string
}

// ListMembersOptions filters course members.
type ListMembersOptions struct {
	CourseIDs []string
	Role      model.Role
}

// ListCourseworkOptions filters coursework. From and To bound the due date,
// or the creation date for items without one.
type ListCourseworkOptions struct {
	CourseIDs []string
	WorkType  model.WorkType
	From      *time.Time
	To        *time.Time
	Limit     uint64
}

// ListSubmissionsOptions selects one user's submissions.
type ListSubmissionsOptions struct {
	UserID        string
	CourseworkIDs []string
}

// ListAnnouncementsOptions filters announcements by course and creation date.
type ListAnnouncementsOptions struct {
	CourseIDs []string
	From      *time.Time
	To        *time.Time
	Limit     uint64
}

// ListEventsOptions selects events overlapping [From, To].
type ListEventsOptions struct {
	From         *time.Time
	To           *time.Time
	HolidaysOnly bool
	Limit        uint64
}
