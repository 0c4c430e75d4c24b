package model

// Role is the caller's role in the school.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleParent  Role = "parent"
	RoleUnknown Role = "unknown"
)

// ParseRole maps free text to a Role. Unrecognised values become RoleUnknown.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleStudent, RoleTeacher, RoleParent:
		return Role(s)
	default:
		return RoleUnknown
	}
}

// Caller is the identity and profile of whoever sent the utterance.
type Caller struct {
	Authenticated    bool
	Role             Role
	GradeLabel       string
	HasLinkedAccount bool

	UserID     string
	FirstName  string
	Department string
}

// Anonymous is the caller used for public channels.
func Anonymous() Caller {
	return Caller{Role: RoleUnknown}
}

// IsStudent reports whether the caller is an authenticated student.
func (c Caller) IsStudent() bool {
	return c.Authenticated && c.Role == RoleStudent
}
