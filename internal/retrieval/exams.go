package retrieval

import (
	"context"

	examRepo "school-assistant/internal/exam/repository"
	"school-assistant/internal/extract"
	"school-assistant/internal/model"
)

type examDetector func(req Request, normalized string, opt *examRepo.SearchOptions)

// Ordered like the intent table; each detector fills one field at most once.
var examDetectors = []examDetector{
	func(req Request, _ string, opt *examRepo.SearchOptions) {
		opt.Grade = gradeFilter(req)
	},
	func(req Request, _ string, opt *examRepo.SearchOptions) {
		if codes := req.Intent.Entities.SubjectCodes; len(codes) > 0 {
			opt.Subject = codes[0]
		}
	},
	func(_ Request, normalized string, opt *examRepo.SearchOptions) {
		if m := teacherNameRe.FindStringSubmatch(normalized); m != nil {
			opt.Teacher = m[1]
		}
	},
	func(_ Request, normalized string, opt *examRepo.SearchOptions) {
		opt.Kind = examRepo.KindOf(normalized)
	},
}

func examQuery(req Request, limit int) examRepo.SearchOptions {
	normalized := extract.Normalize(req.Utterance)
	opt := examRepo.SearchOptions{Limit: limit}
	for _, detect := range examDetectors {
		detect(req, normalized, &opt)
	}
	return opt
}

func (o *Orchestrator) exams(ctx context.Context, req Request) (*section, error) {
	if o.deps.Exams == nil {
		return nil, ErrSourceUnavailable
	}
	opt := examQuery(req, o.cfg.ExamCap)
	docs, err := o.deps.Exams.Search(ctx, opt)
	if err != nil {
		return nil, err
	}
	// A kind word that no file name carries should not hide the grade's papers.
	if len(docs) == 0 && opt.Kind != "" {
		opt.Kind = ""
		if docs, err = o.deps.Exams.Search(ctx, opt); err != nil {
			return nil, err
		}
	}
	return &section{source: model.SourceExams, exams: docs}, nil
}
