package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"srportal/internal/core/domain"
	"srportal/internal/core/port"
)

// PricingRepository implements port.PricingRepository.
type PricingRepository struct {
	pool *pgxpool.Pool
}

func NewPricingRepository(pool *pgxpool.Pool) *PricingRepository {
	return &PricingRepository{pool: pool}
}

func (r *PricingRepository) ListPricingSheets(ctx context.Context, f port.PricingSheetFilter) ([]domain.PricingSheet, error) {
	var w where
	w.search("price_date::text", f.Search)
	query := fmt.Sprintf(`SELECT price_date, note FROM sr_pricing_sheets %s ORDER BY price_date DESC %s`, w.String(), w.limit(f.Page))

	rows, err := r.pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.PricingSheet])
}

func (r *PricingRepository) GetPricingSheet(ctx context.Context, date time.Time) (*domain.PricingSheet, error) {
	var s domain.PricingSheet
	err := r.pool.QueryRow(ctx, `SELECT price_date, note FROM sr_pricing_sheets WHERE price_date = $1`, date).
		Scan(&s.Date, &s.Note)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PricingRepository) NextPricingDate(ctx context.Context, date time.Time) (*time.Time, error) {
	var next *time.Time
	err := r.pool.QueryRow(ctx, `SELECT min(price_date) FROM sr_pricing_sheets WHERE price_date > $1`, date).Scan(&next)
	return next, err
}

func (r *PricingRepository) CreatePricingSheet(ctx context.Context, s *domain.PricingSheet) error {
	tag, err := r.pool.Exec(ctx, `INSERT INTO sr_pricing_sheets (price_date, note) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		s.Date, s.Note)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrAlreadyExists
	}
	return nil
}

func (r *PricingRepository) ListStations(ctx context.Context) ([]domain.Station, error) {
	rows, err := r.pool.Query(ctx, `SELECT station_id, station_name FROM sr_stations ORDER BY station_name, station_id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Station])
}

func (r *PricingRepository) ListSalesHouses(ctx context.Context) ([]domain.SalesHouse, error) {
	rows, err := r.pool.Query(ctx, `SELECT sales_house_id, sales_house_name FROM sr_sales_houses ORDER BY sales_house_name, sales_house_id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.SalesHouse])
}

func (r *PricingRepository) ListHours(ctx context.Context) ([]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT hour FROM hours ORDER BY hour`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int])
}

func (r *PricingRepository) ListDurations(ctx context.Context) ([]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT duration_seconds FROM spot_duration ORDER BY duration_seconds`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int])
}

const stationPriceSelect = `
        SELECT p.price_id, p.price_date, p.station_id, p.start_hour, p.end_hour, p.duration,
               p.sales_house_id, p.cost_type, p.cost, s.station_name, h.sales_house_name
        FROM sr_station_prices p
        JOIN sr_stations s ON s.station_id = p.station_id
        LEFT JOIN sr_sales_houses h ON h.sales_house_id = p.sales_house_id`

func scanStationPrice(row pgx.CollectableRow) (domain.StationPrice, error) {
	var (
		p    domain.StationPrice
		cost float64
	)
	err := row.Scan(&p.ID, &p.PriceDate, &p.StationID, &p.StartHour, &p.EndHour, &p.Duration,
		&p.SalesHouseID, &p.CostType, &cost, &p.StationName, &p.SalesHouseName)
	p.Cost = decimal.NewFromFloat(cost)
	return p, err
}

func (r *PricingRepository) ListStationPrices(ctx context.Context, f port.StationPriceFilter) ([]domain.StationPrice, error) {
	var w where
	if f.PriceDate != nil {
		w.add("p.price_date = $%d", *f.PriceDate)
	}
	if f.StationID != nil {
		w.add("p.station_id = $%d", *f.StationID)
	}
	query := fmt.Sprintf(`%s %s ORDER BY p.price_id %s`, stationPriceSelect, w.String(), w.limit(f.Page))

	rows, err := r.pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanStationPrice)
}

func (r *PricingRepository) PricesForDate(ctx context.Context, date time.Time) ([]domain.StationPrice, error) {
	rows, err := r.pool.Query(ctx, stationPriceSelect+` WHERE p.price_date = $1 ORDER BY p.price_id DESC`, date)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanStationPrice)
}

// InsertStationPrices creates the sheets the rows refer to when missing and
// copies the rows in slice order so that later rows get higher ids.
func (r *PricingRepository) InsertStationPrices(ctx context.Context, prices []domain.StationPrice) (int64, error) {
	if len(prices) == 0 {
		return 0, nil
	}
	dates := make([]time.Time, len(prices))
	for i, p := range prices {
		dates[i] = p.PriceDate
	}

	var copied int64
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
            INSERT INTO sr_pricing_sheets (price_date, note)
            SELECT DISTINCT d, 'Imported' FROM unnest($1::date[]) AS d
            ON CONFLICT (price_date) DO NOTHING`, dates)
		if err != nil {
			return fmt.Errorf("create pricing sheets: %w", err)
		}

		copied, err = tx.CopyFrom(ctx,
			pgx.Identifier{"sr_station_prices"},
			[]string{"price_date", "station_id", "start_hour", "end_hour", "duration", "sales_house_id", "cost_type", "cost"},
			pgx.CopyFromSlice(len(prices), func(i int) ([]any, error) {
				p := prices[i]
				return []any{p.PriceDate, p.StationID, p.StartHour, p.EndHour, p.Duration, p.SalesHouseID, p.CostType, p.Cost.InexactFloat64()}, nil
			}),
		)
		if err != nil {
			return fmt.Errorf("copy station prices: %w", err)
		}
		return nil
	})
	return copied, err
}

const breakColumns = `break_id, station_id, break_datetime, spot_duration, sales_house_id, price_id`

func (r *PricingRepository) ListBreaks(ctx context.Context, f port.BreakFilter) ([]domain.Break, error) {
	var w where
	if f.From != nil {
		w.add("break_datetime >= $%d", *f.From)
	}
	if f.Before != nil {
		w.add("break_datetime < $%d", *f.Before)
	}
	if f.StationID != nil {
		w.add("station_id = $%d", *f.StationID)
	}
	query := fmt.Sprintf(`SELECT %s FROM sr_breaks %s ORDER BY break_datetime, break_id %s`, breakColumns, w.String(), w.limit(f.Page))

	rows, err := r.pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Break])
}

// BreaksInWindow returns every break airing inside w, unpaginated.
func (r *PricingRepository) BreaksInWindow(ctx context.Context, w domain.PricingWindow) ([]domain.Break, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT `+breakColumns+`
        FROM sr_breaks
        WHERE break_datetime >= $1 AND ($2::timestamp IS NULL OR break_datetime < $2)
        ORDER BY break_id`, w.Start, w.Next)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Break])
}

func (r *PricingRepository) AssignBreakPrices(ctx context.Context, assignments []domain.PriceAssignment) error {
	if len(assignments) == 0 {
		return nil
	}
	breakIDs := make([]int64, len(assignments))
	priceIDs := make([]int64, len(assignments))
	for i, a := range assignments {
		breakIDs[i], priceIDs[i] = a.BreakID, a.PriceID
	}

	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
            UPDATE sr_breaks b
            SET price_id = v.price_id
            FROM unnest($1::bigint[], $2::bigint[]) AS v(break_id, price_id)
            WHERE b.break_id = v.break_id`, breakIDs, priceIDs)
		if err != nil {
			return err
		}
		if tag.RowsAffected() != int64(len(assignments)) {
			return fmt.Errorf("updated %d of %d breaks", tag.RowsAffected(), len(assignments))
		}
		return nil
	})
}
