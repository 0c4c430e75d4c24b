package holiday

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"school-assistant/internal/model"
	"school-assistant/pkg/log"
)

const (
	DefaultTTL       = 12 * time.Hour
	DefaultCacheSize = 8
	maxEventsPerYear = 250
	fetchTimeout     = 10 * time.Second

	LogPrefixHolidays = "internal.holiday.Holidays"
)

// Config configures the holiday cache.
type Config struct {
	CalendarID string
	TTL        time.Duration
	Size       int
	Location   *time.Location
}

type implSource struct {
	lister     Lister
	calendarID string
	loc        *time.Location
	years      *expirable.LRU[int, []model.Event]
	group      singleflight.Group
	l          log.Logger
}

var _ Source = (*implSource)(nil)

// New creates a read-through holiday cache. Holidays are fetched one calendar
// year at a time and kept for cfg.TTL.
func New(lister Lister, cfg Config, l log.Logger) Source {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &implSource{
		lister:     lister,
		calendarID: cfg.CalendarID,
		loc:        cfg.Location,
		years:      expirable.NewLRU[int, []model.Event](cfg.Size, nil, cfg.TTL),
		l:          l,
	}
}
