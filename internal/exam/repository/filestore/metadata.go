package filestore

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"school-assistant/internal/exam/repository"
	"school-assistant/internal/extract"
	"school-assistant/internal/model"
)

var (
	bareGradeRe   = regexp.MustCompile(`^(\d{1,2})$`)
	teacherPrefix = regexp.MustCompile(`^(?:mr|mrs|ms|miss|dr|sir|madam|teacher)\s+(.+)$`)
	separatorRe   = regexp.MustCompile(`[_\-.]+`)
)

var supportedExt = map[string]bool{".pdf": true, ".txt": true, ".md": true}

// describe derives document metadata from the path segments below root.
func describe(rel string) model.ExamDocument {
	doc := model.ExamDocument{Path: rel}

	segments := strings.Split(filepath.ToSlash(rel), "/")
	base := segments[len(segments)-1]
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	doc.Title = strings.TrimSpace(separatorRe.ReplaceAllString(stem, " "))

	for i, seg := range segments {
		if i == len(segments)-1 {
			seg = stem
		}
		words := strings.TrimSpace(separatorRe.ReplaceAllString(extract.Normalize(seg), " "))

		if doc.Grade == nil {
			if g := extract.Grade(words); g != nil {
				doc.Grade = g
			} else if m := bareGradeRe.FindStringSubmatch(words); m != nil {
				if g, _ := strconv.Atoi(m[1]); g >= 1 && g <= 12 {
					doc.Grade = &g
				}
			}
		}
		if doc.Subject == "" {
			if codes := extract.Subjects(words); len(codes) > 0 {
				doc.Subject = codes[0]
			}
		}
		if doc.Kind == "" {
			doc.Kind = repository.KindOf(words)
		}
		if doc.Teacher == "" && i < len(segments)-1 {
			if m := teacherPrefix.FindStringSubmatch(words); m != nil {
				doc.Teacher = m[1]
			}
		}
	}
	return doc
}

func matches(doc model.ExamDocument, opt repository.SearchOptions) bool {
	if opt.Grade != nil && doc.Grade != nil && *doc.Grade != *opt.Grade {
		return false
	}
	if opt.Subject != "" && doc.Subject != opt.Subject {
		return false
	}
	if opt.Teacher != "" && !strings.Contains(doc.Teacher, strings.ToLower(opt.Teacher)) {
		return false
	}
	if opt.Kind != "" && doc.Kind != opt.Kind {
		return false
	}
	return true
}
