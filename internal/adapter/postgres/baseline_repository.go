package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"srportal/internal/core/domain"
)

// BaselineRepository implements port.BaselineRepository for every
// domain.BaselineKind. Table and column names come from the kind and are
// always quoted as identifiers.
type BaselineRepository struct {
	pool *pgxpool.Pool
}

func NewBaselineRepository(pool *pgxpool.Pool) *BaselineRepository {
	return &BaselineRepository{pool: pool}
}

func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func (r *BaselineRepository) entityQuery(kind domain.BaselineKind, cond string) string {
	return fmt.Sprintf(`SELECT %s, client_id, %s FROM %s WHERE %s`,
		ident(kind.IDColumn), ident(kind.NameColumn), ident(kind.EntityTable), cond)
}

func (r *BaselineRepository) GetEntity(ctx context.Context, kind domain.BaselineKind, id int64) (*domain.BaselineEntity, error) {
	var e domain.BaselineEntity
	query := r.entityQuery(kind, ident(kind.IDColumn)+" = $1")
	err := r.pool.QueryRow(ctx, query, id).Scan(&e.ID, &e.ClientID, &e.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ResolveEntities matches names case-insensitively.
func (r *BaselineRepository) ResolveEntities(ctx context.Context, kind domain.BaselineKind, ids []int64, names []string) ([]domain.BaselineEntity, error) {
	if len(ids) == 0 && len(names) == 0 {
		return nil, nil
	}
	lowered := make([]string, len(names))
	for i, n := range names {
		lowered[i] = strings.ToLower(n)
	}
	query := r.entityQuery(kind, fmt.Sprintf(`%s = ANY($1::bigint[]) OR lower(%s) = ANY($2::text[]) ORDER BY 1`,
		ident(kind.IDColumn), ident(kind.NameColumn)))

	rows, err := r.pool.Query(ctx, query, ids, lowered)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.BaselineEntity])
}

// ListBaselines returns the rows of one entity in calendar order.
func (r *BaselineRepository) ListBaselines(ctx context.Context, kind domain.BaselineKind, entityID int64) ([]domain.Baseline, error) {
	query := fmt.Sprintf(`
        SELECT %[1]s, day_of_week, hour_of_day, baseline_session, baseline_sales
        FROM %[2]s
        WHERE %[1]s = $1
        ORDER BY array_position($2::text[], day_of_week), hour_of_day`,
		ident(kind.IDColumn), ident(kind.Table))

	rows, err := r.pool.Query(ctx, query, entityID, domain.DaysOfWeek)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Baseline])
}

// ReplaceBaselines deletes the stored rows occupying the same slots as rows
// and copies rows in, inside one transaction.
func (r *BaselineRepository) ReplaceBaselines(ctx context.Context, kind domain.BaselineKind, rows []domain.Baseline) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	ids := make([]int64, len(rows))
	days := make([]string, len(rows))
	hours := make([]int32, len(rows))
	for i, b := range rows {
		ids[i], days[i], hours[i] = b.EntityID, b.DayOfWeek, int32(b.HourOfDay)
	}

	var copied int64
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, fmt.Sprintf(`
            DELETE FROM %s
            WHERE (%s, day_of_week, hour_of_day) IN (
                SELECT * FROM unnest($1::bigint[], $2::text[], $3::int[])
            )`, ident(kind.Table), ident(kind.IDColumn)), ids, days, hours)
		if err != nil {
			return fmt.Errorf("delete replaced baselines: %w", err)
		}

		copied, err = tx.CopyFrom(ctx,
			pgx.Identifier{kind.Table},
			[]string{kind.IDColumn, "day_of_week", "hour_of_day", "baseline_session", "baseline_sales"},
			pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
				b := rows[i]
				return []any{b.EntityID, b.DayOfWeek, int32(b.HourOfDay), b.Session, b.Sales}, nil
			}),
		)
		if err != nil {
			return fmt.Errorf("copy baselines: %w", err)
		}
		return nil
	})
	return copied, err
}
