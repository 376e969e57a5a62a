package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"srportal/internal/core/port"
)

// where accumulates AND-ed conditions with positional arguments. Each clause
// carries a single %d verb that receives its placeholder number.
type where struct {
	clauses []string
	args    []any
}

func (w *where) add(clause string, arg any) {
	w.args = append(w.args, arg)
	w.clauses = append(w.clauses, fmt.Sprintf(clause, len(w.args)))
}

// search adds a case-insensitive substring match on column.
func (w *where) search(column, term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}
	w.add(column+` ILIKE '%%' || $%d::text || '%%'`, escapeLike(term))
}

func (w *where) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(w.clauses, " AND ")
}

// limit appends the page bounds and returns the LIMIT/OFFSET clause.
func (w *where) limit(p port.Page) string {
	p = p.Normalize()
	w.args = append(w.args, p.Limit, p.Offset)
	return fmt.Sprintf("LIMIT $%d OFFSET $%d", len(w.args)-1, len(w.args))
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// inTx runs fn in a transaction that is committed when fn succeeds and
// rolled back otherwise.
func inTx(ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) (err error) {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()
	return fn(tx)
}
