package postgre

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"school-assistant/internal/classroom/repository"
	"school-assistant/pkg/log"
)

// DB is the subset of pgxpool.Pool the repository needs.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type implRepository struct {
	db  DB
	l   log.Logger
	sql sq.StatementBuilderType
}

// New creates a Postgres-backed classroom Reader.
func New(db DB, l log.Logger) repository.Reader {
	if db == nil {
		panic("classroom/repository/postgre: db is required")
	}
	return &implRepository{
		db:  db,
		l:   l,
		sql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("classroom/repository/postgre.%s", method)
}
