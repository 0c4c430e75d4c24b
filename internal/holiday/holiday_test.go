package holiday

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"school-assistant/pkg/gcalendar"
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

type mockLister struct {
	calls  atomic.Int32
	err    error
	delay  time.Duration
	events map[int][]gcalendar.Event
}

func (m *mockLister) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	m.calls.Add(1)
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.events[req.TimeMin.Year()], nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func allDay(summary string, start time.Time, days int) gcalendar.Event {
	return gcalendar.Event{
		Summary:   summary,
		StartTime: start,
		EndTime:   start.AddDate(0, 0, days).Add(-time.Second),
		AllDay:    true,
	}
}

func TestHolidays(t *testing.T) {
	lister := &mockLister{events: map[int][]gcalendar.Event{
		2025: {
			allDay("Republic Day", day(2025, time.January, 26), 1),
			allDay("Holi", day(2025, time.March, 14), 1),
			allDay("Christmas", day(2025, time.December, 25), 1),
		},
		2026: {
			allDay("New Year", day(2026, time.January, 1), 1),
		},
	}}
	src := New(lister, Config{Location: time.UTC}, &mockLogger{})
	ctx := context.Background()

	t.Run("filters by range", func(t *testing.T) {
		got, err := src.Holidays(ctx, day(2025, time.March, 1), day(2025, time.March, 31))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Title != "Holi" || !got[0].IsHoliday {
			t.Fatalf("got %+v, want Holi", got)
		}
	})

	t.Run("served from cache", func(t *testing.T) {
		before := lister.calls.Load()
		if _, err := src.Holidays(ctx, day(2025, time.January, 1), day(2025, time.January, 31)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lister.calls.Load() != before {
			t.Errorf("expected cached read, got %d new calls", lister.calls.Load()-before)
		}
	})

	t.Run("spans years", func(t *testing.T) {
		got, err := src.Holidays(ctx, day(2025, time.December, 20), day(2026, time.January, 5))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].Title != "Christmas" || got[1].Title != "New Year" {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("reversed bounds", func(t *testing.T) {
		got, err := src.Holidays(ctx, day(2025, time.March, 31), day(2025, time.March, 1))
		if err != nil || len(got) != 1 {
			t.Fatalf("got %+v, %v", got, err)
		}
	})
}

func TestHolidays_Error(t *testing.T) {
	lister := &mockLister{err: errors.New("boom")}
	src := New(lister, Config{}, &mockLogger{})

	_, err := src.Holidays(context.Background(), day(2025, time.May, 1), day(2025, time.May, 2))
	if !errors.Is(err, ErrFailedToFetch) {
		t.Fatalf("err = %v, want ErrFailedToFetch", err)
	}

	// failures are not cached
	lister.err = nil
	if _, err := src.Holidays(context.Background(), day(2025, time.May, 1), day(2025, time.May, 2)); err != nil {
		t.Fatalf("unexpected error after recovery: %v", err)
	}
	if got := lister.calls.Load(); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestHolidays_ConcurrentMissesShareFetch(t *testing.T) {
	lister := &mockLister{delay: 50 * time.Millisecond, events: map[int][]gcalendar.Event{
		2025: {allDay("Holi", day(2025, time.March, 14), 1)},
	}}
	src := New(lister, Config{}, &mockLogger{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := src.Holidays(context.Background(), day(2025, time.March, 1), day(2025, time.March, 31)); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := lister.calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestHolidays_CancelledCallerDoesNotFailWaiters(t *testing.T) {
	lister := &mockLister{delay: 100 * time.Millisecond, events: map[int][]gcalendar.Event{
		2025: {allDay("Holi", day(2025, time.March, 14), 1)},
	}}
	src := New(lister, Config{}, &mockLogger{})

	firstCtx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := src.Holidays(firstCtx, day(2025, time.March, 1), day(2025, time.March, 31))
		firstErr <- err
	}()

	time.Sleep(20 * time.Millisecond)
	type result struct {
		n   int
		err error
	}
	waiter := make(chan result, 1)
	go func() {
		events, err := src.Holidays(context.Background(), day(2025, time.March, 1), day(2025, time.March, 31))
		waiter <- result{n: len(events), err: err}
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	if err := <-firstErr; !errors.Is(err, ErrFailedToFetch) {
		t.Errorf("cancelled caller err = %v, want ErrFailedToFetch", err)
	}
	res := <-waiter
	if res.err != nil {
		t.Fatalf("waiter err = %v", res.err)
	}
	if res.n != 1 {
		t.Errorf("waiter got %d holidays, want 1", res.n)
	}
	if calls := lister.calls.Load(); calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
