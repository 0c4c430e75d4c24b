package filestore

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/spf13/afero"

	"school-assistant/internal/exam/repository"
	"school-assistant/pkg/log"
)

const (
	DefaultExcerptRunes = 1500
	textCacheSize       = 256
	textCacheTTL        = 30 * time.Minute
)

// Config configures the file store.
type Config struct {
	Root         string
	ExcerptRunes int
}

type implRepository struct {
	fs           afero.Fs
	root         string
	excerptRunes int
	texts        *expirable.LRU[string, string]
	l            log.Logger
}

// New creates an exam Reader over fs. Extracted texts are cached by path and
// modification time.
func New(fs afero.Fs, cfg Config, l log.Logger) repository.Reader {
	if cfg.ExcerptRunes <= 0 {
		cfg.ExcerptRunes = DefaultExcerptRunes
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}
	return &implRepository{
		fs:           fs,
		root:         cfg.Root,
		excerptRunes: cfg.ExcerptRunes,
		texts:        expirable.NewLRU[string, string](textCacheSize, nil, textCacheTTL),
		l:            l,
	}
}
