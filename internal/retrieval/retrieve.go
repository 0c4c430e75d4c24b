package retrieval

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"school-assistant/internal/model"
)

// section is what one source returned before budgeting.
type section struct {
	source  model.Source
	courses []model.Course
	events  []model.Event
	web     []model.ContentRecord
	exams   []model.ExamDocument
}

func (s *section) empty() bool {
	return len(s.courses) == 0 && len(s.events) == 0 && len(s.web) == 0 && len(s.exams) == 0
}

// Retrieve queries every planned source concurrently, each under its own
// timeout. A failing source is logged and omitted; only cancellation of ctx
// is returned as an error.
func (o *Orchestrator) Retrieve(ctx context.Context, req Request) (model.Context, error) {
	plan := planFor(req.Intent)
	if len(plan) == 0 {
		return model.Context{}, nil
	}
	if req.Now.IsZero() {
		req.Now = time.Now()
	}
	req.Now = req.Now.In(o.dates.Location())

	sections := make([]*section, len(plan))
	var failed []model.Source

	g, gctx := errgroup.WithContext(ctx)
	errs := make([]error, len(plan))
	for i, src := range plan {
		i, src := i, src
		g.Go(func() error {
			sctx, cancel := context.WithTimeout(gctx, o.cfg.SourceTimeout)
			defer cancel()

			sec, err := o.fetch(sctx, src, req)
			if err != nil {
				errs[i] = err
				return nil
			}
			sections[i] = sec
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return model.Context{}, err
	}

	for i, err := range errs {
		if err == nil {
			continue
		}
		o.l.Warnf(ctx, "%s: source %s unavailable: %v", LogPrefixRetrieve, plan[i], err)
		o.metrics.SourceFailure(string(plan[i]))
		failed = append(failed, plan[i])
	}

	out := o.assemble(ctx, req, sections)
	out.Omitted = append(failed, out.Omitted...)
	o.metrics.ContextTokens(out.Size())
	o.l.Debugf(ctx, "%s: category=%s sources=%v tokens=%d omitted=%v",
		LogPrefixRetrieve, req.Intent.Category, plan, out.Size(), out.Omitted)
	return out, nil
}

func (o *Orchestrator) fetch(ctx context.Context, src model.Source, req Request) (*section, error) {
	switch src {
	case model.SourceCoursework:
		return o.coursework(ctx, req)
	case model.SourceAnnouncements:
		return o.announcements(ctx, req)
	case model.SourceMembers:
		return o.members(ctx, req)
	case model.SourceEvents:
		return o.events(ctx, req)
	case model.SourceHolidays:
		return o.holidays(ctx, req)
	case model.SourceContent:
		return o.web(ctx, req)
	case model.SourceExams:
		return o.exams(ctx, req)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownSource, src)
}
