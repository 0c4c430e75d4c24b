package retrieval

import (
	"time"

	classroomRepo "school-assistant/internal/classroom/repository"
	contentRepo "school-assistant/internal/content/repository"
	examRepo "school-assistant/internal/exam/repository"
	"school-assistant/internal/holiday"
	"school-assistant/pkg/datemath"
	"school-assistant/pkg/log"
	"school-assistant/pkg/metrics"
	"school-assistant/pkg/tokens"
)

// Config bounds what one retrieval may read and return.
type Config struct {
	BudgetTokens     int
	SourceTimeout    time.Duration
	WebTokens        int
	PersonWebTokens  int
	CourseworkCap    int
	AnnouncementCap  int
	EventCap         int
	MemberCap        int
	ExamCap          int
	FetchLimit       uint64
	EventLookahead   time.Duration
	HolidayLookahead time.Duration
}

// Deps are the read-only sources. A nil source is treated as unavailable.
type Deps struct {
	Classroom classroomRepo.Reader
	Content   contentRepo.Reader
	Exams     examRepo.Reader
	Holidays  holiday.Source
}

// Orchestrator queries the sources an intent needs concurrently and packs
// the results into a budgeted Context.
type Orchestrator struct {
	deps    Deps
	cfg     Config
	dates   *datemath.Parser
	counter tokens.Counter
	metrics metrics.Recorder
	l       log.Logger
}

var _ Retriever = (*Orchestrator)(nil)

// New creates an Orchestrator. Zero config values take the package defaults.
func New(deps Deps, cfg Config, dates *datemath.Parser, counter tokens.Counter, rec metrics.Recorder, l log.Logger) *Orchestrator {
	if counter == nil {
		counter = tokens.Estimator{}
	}
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Orchestrator{
		deps:    deps,
		cfg:     withDefaults(cfg),
		dates:   dates,
		counter: counter,
		metrics: rec,
		l:       l,
	}
}

func withDefaults(cfg Config) Config {
	if cfg.BudgetTokens <= 0 {
		cfg.BudgetTokens = DefaultBudgetTokens
	}
	if cfg.SourceTimeout <= 0 {
		cfg.SourceTimeout = DefaultSourceTimeout
	}
	if cfg.WebTokens <= 0 {
		cfg.WebTokens = DefaultWebTokens
	}
	if cfg.PersonWebTokens <= 0 {
		cfg.PersonWebTokens = DefaultPersonWebTokens
	}
	if cfg.CourseworkCap <= 0 {
		cfg.CourseworkCap = DefaultCourseworkCap
	}
	if cfg.AnnouncementCap <= 0 {
		cfg.AnnouncementCap = DefaultAnnouncementCap
	}
	if cfg.EventCap <= 0 {
		cfg.EventCap = DefaultEventCap
	}
	if cfg.MemberCap <= 0 {
		cfg.MemberCap = DefaultMemberCap
	}
	if cfg.ExamCap <= 0 {
		cfg.ExamCap = DefaultExamCap
	}
	if cfg.FetchLimit == 0 {
		cfg.FetchLimit = DefaultFetchLimit
	}
	if cfg.EventLookahead <= 0 {
		cfg.EventLookahead = DefaultEventLookahead
	}
	if cfg.HolidayLookahead <= 0 {
		cfg.HolidayLookahead = DefaultHolidayLookahead
	}
	return cfg
}
