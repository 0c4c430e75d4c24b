package filestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/spf13/afero"

	"school-assistant/internal/exam/repository"
	"school-assistant/internal/model"
)

// Search walks the store and returns matching documents with text excerpts,
// graded documents first, then by path.
func (r *implRepository) Search(ctx context.Context, opt repository.SearchOptions) ([]model.ExamDocument, error) {
	var docs []model.ExamDocument
	var infos []os.FileInfo

	err := afero.Walk(r.fs, r.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if info.IsDir() || !supportedExt[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		rel, relErr := filepath.Rel(r.root, path)
		if relErr != nil {
			rel = path
		}
		doc := describe(rel)
		doc.Path = path
		if matches(doc, opt) {
			docs = append(docs, doc)
			infos = append(infos, info)
		}
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "exam/repository/filestore.Search: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToWalk, err)
	}

	idx := make([]int, len(docs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		da, db := docs[idx[a]], docs[idx[b]]
		if (da.Grade != nil) != (db.Grade != nil) {
			return da.Grade != nil
		}
		return da.Path < db.Path
	})

	var out []model.ExamDocument
	for _, i := range idx {
		if opt.Limit > 0 && len(out) >= opt.Limit {
			break
		}
		text, err := r.text(docs[i].Path, infos[i])
		if err != nil {
			r.l.Warnf(ctx, "exam/repository/filestore.Search: skip %s: %v", docs[i].Path, err)
			continue
		}
		doc := docs[i]
		doc.Excerpt = excerpt(text, r.excerptRunes)
		out = append(out, doc)
	}
	return out, nil
}

func (r *implRepository) text(path string, info os.FileInfo) (string, error) {
	key := fmt.Sprintf("%s@%d", path, info.ModTime().UnixNano())
	if t, ok := r.texts.Get(key); ok {
		return t, nil
	}

	var text string
	var err error
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err = r.pdfText(path, info.Size())
	} else {
		var b []byte
		b, err = afero.ReadFile(r.fs, path)
		text = string(b)
	}
	if err != nil {
		return "", err
	}

	r.texts.Add(key, text)
	return text, nil
}

func (r *implRepository) pdfText(path string, size int64) (text string, err error) {
	f, err := r.fs.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	// the pdf reader panics on some malformed files
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("malformed pdf: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(f, size)
	if err != nil {
		return "", err
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	b, err := io.ReadAll(plain)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// excerpt collapses whitespace and cuts text to at most n runes.
func excerpt(text string, n int) string {
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return string(runes[:n]) + "…"
}
